package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// LeadRepository prospectos.
type LeadRepository interface {
	RecordRepository[entity.Lead]
}

// ExpenseRepository gastos.
type ExpenseRepository interface {
	RecordRepository[entity.Expense]
}

// PaymentRepository pagos más las rutas derivadas que expone el store.
type PaymentRepository interface {
	RecordRepository[entity.Payment]
	// CustomerNames nombres distintos de clientes con cotizaciones (GET /api/payments/customers).
	CustomerNames(ctx context.Context) ([]string, error)
	// QuotationsByCustomer cotizaciones de un cliente por nombre.
	QuotationsByCustomer(ctx context.Context, customerName string) ([]entity.Quotation, error)
	// PaymentsByCustomer pagos de un cliente por nombre.
	PaymentsByCustomer(ctx context.Context, customerName string) ([]entity.Payment, error)
}
