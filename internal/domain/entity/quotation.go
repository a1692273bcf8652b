package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una cotización.
const (
	QuotationStatusDraft    = "Draft"
	QuotationStatusSent     = "Sent"
	QuotationStatusAccepted = "Accepted"
	QuotationStatusDeclined = "Declined"
)

// QuotationStatuses lista cerrada de estados aceptados por el validador.
var QuotationStatuses = []string{
	QuotationStatusDraft,
	QuotationStatusSent,
	QuotationStatusAccepted,
	QuotationStatusDeclined,
}

// IsValidQuotationStatus indica si s pertenece al enum de estados.
func IsValidQuotationStatus(s string) bool {
	for _, st := range QuotationStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// LineItem representa una línea facturable de la cotización.
// Las tasas SGST/CGST se guardan por línea y se agregan por separado a nivel
// documento; nunca entran en Total.
type LineItem struct {
	Description string          `json:"item"`
	TaxCode     string          `json:"hsnSac"` // HSN/SAC
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
	TaxRateA    decimal.Decimal `json:"sgst"` // porcentaje
	TaxRateB    decimal.Decimal `json:"igst"` // porcentaje (se imprime como CGST)
	Total       decimal.Decimal `json:"total"` // Quantity * UnitPrice
}

// Quotation representa la cotización tal como la guarda el store remoto.
// Invariantes: SubTotal == Σ Items[i].Total; Total == SubTotal + TaxTotalA + TaxTotalB.
type Quotation struct {
	ID         string          `json:"_id,omitempty"`
	Number     string          `json:"number"`
	ClientID   string          `json:"clientId,omitempty"` // referencia estable al Customer
	ClientName string          `json:"client"`             // referencia legada por nombre
	Date       time.Time       `json:"date"`
	ExpireDate time.Time       `json:"expireDate"`
	Status     string          `json:"status"`
	Year       string          `json:"year"`
	Currency   string          `json:"currency"`
	Note       string          `json:"note"`
	Items      []LineItem      `json:"items"`
	SubTotal   decimal.Decimal `json:"subTotal"`
	TaxTotalA  decimal.Decimal `json:"sgstTotal"`
	TaxTotalB  decimal.Decimal `json:"cgstTotal"`
	Tax        decimal.Decimal `json:"tax"` // TaxTotalA + TaxTotalB, campo legado
	Total      decimal.Decimal `json:"total"`
}
