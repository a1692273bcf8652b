package entity

// RecordID identificador asignado por el store (campo _id).
func (c Customer) RecordID() string  { return c.ID }
func (q Quotation) RecordID() string { return q.ID }
func (l Lead) RecordID() string      { return l.ID }
func (e Expense) RecordID() string   { return e.ID }
func (p Payment) RecordID() string   { return p.ID }
