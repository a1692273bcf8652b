package entity

import "github.com/shopspring/decimal"

// Expense gasto registrado. Date se conserva como la envía el store (YYYY-MM-DD o ISO).
type Expense struct {
	ID          string          `json:"_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
}
