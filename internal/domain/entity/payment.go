package entity

import "github.com/shopspring/decimal"

// Estados de pago usados por las pantallas de cobro.
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
)

// Payment registro de cobro. La captura en sí la hace un widget de checkout externo;
// aquí solo se lee y actualiza el registro.
type Payment struct {
	ID                string          `json:"_id,omitempty"`
	CustomerName      string          `json:"customerName"`
	Amount            decimal.Decimal `json:"amount"`
	Date              string          `json:"date"`
	Status            string          `json:"status"`
	RazorpayPaymentID string          `json:"razorpayPaymentId,omitempty"`
}
