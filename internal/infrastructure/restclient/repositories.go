package restclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// Nombres de recurso del store.
const (
	ResourceCustomers  = "customers"
	ResourceQuotations = "quotations"
	ResourceLeads      = "leads"
	ResourceExpenses   = "expenses"
	ResourcePayments   = "payments"
)

var (
	_ repository.CustomerRepository  = (*Collection[entity.Customer])(nil)
	_ repository.QuotationRepository = (*Collection[entity.Quotation])(nil)
	_ repository.LeadRepository      = (*Collection[entity.Lead])(nil)
	_ repository.ExpenseRepository   = (*Collection[entity.Expense])(nil)
	_ repository.PaymentRepository   = (*PaymentRepository)(nil)
)

// NewCustomerRepository clientes.
func NewCustomerRepository(c *Client) *Collection[entity.Customer] {
	return NewCollection[entity.Customer](c, ResourceCustomers)
}

// NewQuotationRepository cotizaciones.
func NewQuotationRepository(c *Client) *Collection[entity.Quotation] {
	return NewCollection[entity.Quotation](c, ResourceQuotations)
}

// NewLeadRepository prospectos.
func NewLeadRepository(c *Client) *Collection[entity.Lead] {
	return NewCollection[entity.Lead](c, ResourceLeads)
}

// NewExpenseRepository gastos.
func NewExpenseRepository(c *Client) *Collection[entity.Expense] {
	return NewCollection[entity.Expense](c, ResourceExpenses)
}

// PaymentRepository pagos con las rutas derivadas por cliente.
type PaymentRepository struct {
	*Collection[entity.Payment]
}

// NewPaymentRepository pagos.
func NewPaymentRepository(c *Client) *PaymentRepository {
	return &PaymentRepository{Collection: NewCollection[entity.Payment](c, ResourcePayments)}
}

// CustomerNames GET /api/payments/customers.
func (r *PaymentRepository) CustomerNames(ctx context.Context) ([]string, error) {
	var out []string
	if err := r.client.Do(ctx, http.MethodGet, resourcePath(ResourcePayments, "customers"), nil, &out); err != nil {
		return nil, fmt.Errorf("listar clientes con pagos: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// QuotationsByCustomer GET /api/payments/quotations/{name}.
func (r *PaymentRepository) QuotationsByCustomer(ctx context.Context, customerName string) ([]entity.Quotation, error) {
	var out []entity.Quotation
	if err := r.client.Do(ctx, http.MethodGet, resourcePath(ResourcePayments, "quotations", customerName), nil, &out); err != nil {
		return nil, fmt.Errorf("cotizaciones de %q: %w", customerName, err)
	}
	if out == nil {
		out = []entity.Quotation{}
	}
	return out, nil
}

// PaymentsByCustomer GET /api/payments/customer/{name}.
func (r *PaymentRepository) PaymentsByCustomer(ctx context.Context, customerName string) ([]entity.Payment, error) {
	var out []entity.Payment
	if err := r.client.Do(ctx, http.MethodGet, resourcePath(ResourcePayments, "customer", customerName), nil, &out); err != nil {
		return nil, fmt.Errorf("pagos de %q: %w", customerName, err)
	}
	if out == nil {
		out = []entity.Payment{}
	}
	return out, nil
}
