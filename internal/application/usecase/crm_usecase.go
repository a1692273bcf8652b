package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// Estados de prospecto que ofrece la pantalla de leads.
var LeadStatuses = []string{"New", "Contacted", "Qualified", "Lost"}

// NewLeadUseCase prospectos: nombre y email válidos.
func NewLeadUseCase(repo repository.LeadRepository) *RecordUseCase[entity.Lead] {
	return NewRecordUseCase[entity.Lead](repo, func(l *entity.Lead) error {
		l.Name = strings.TrimSpace(l.Name)
		if l.Name == "" {
			return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		if _, err := mail.ParseAddress(l.Email); err != nil {
			return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
		}
		if l.Status == "" {
			l.Status = LeadStatuses[0]
		}
		return nil
	})
}

// NewExpenseUseCase gastos: descripción, monto positivo y fecha.
func NewExpenseUseCase(repo repository.ExpenseRepository) *RecordUseCase[entity.Expense] {
	return NewRecordUseCase[entity.Expense](repo, func(e *entity.Expense) error {
		if strings.TrimSpace(e.Description) == "" {
			return fmt.Errorf("%w: la descripción es obligatoria", domain.ErrInvalidInput)
		}
		if !e.Amount.IsPositive() {
			return fmt.Errorf("%w: el monto debe ser mayor a cero", domain.ErrInvalidInput)
		}
		if strings.TrimSpace(e.Date) == "" {
			return fmt.Errorf("%w: la fecha es obligatoria", domain.ErrInvalidInput)
		}
		return nil
	})
}

// PaymentUseCase pagos: CRUD más las consultas por cliente.
type PaymentUseCase struct {
	*RecordUseCase[entity.Payment]
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso de pagos.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{
		RecordUseCase: NewRecordUseCase[entity.Payment](repo, validatePayment),
		repo:          repo,
	}
}

// CustomerNames clientes distintos con cotizaciones.
func (uc *PaymentUseCase) CustomerNames(ctx context.Context) ([]string, error) {
	return uc.repo.CustomerNames(ctx)
}

// QuotationsByCustomer cotizaciones de un cliente.
func (uc *PaymentUseCase) QuotationsByCustomer(ctx context.Context, name string) ([]entity.Quotation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: cliente vacío", domain.ErrInvalidInput)
	}
	list, err := uc.repo.QuotationsByCustomer(ctx, name)
	if err != nil {
		return nil, err
	}
	for i := range list {
		quotation.Stamp(&list[i])
	}
	return list, nil
}

// PaymentsByCustomer pagos de un cliente.
func (uc *PaymentUseCase) PaymentsByCustomer(ctx context.Context, name string) ([]entity.Payment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: cliente vacío", domain.ErrInvalidInput)
	}
	return uc.repo.PaymentsByCustomer(ctx, name)
}

func validatePayment(p *entity.Payment) error {
	if strings.TrimSpace(p.CustomerName) == "" {
		return fmt.Errorf("%w: el cliente es obligatorio", domain.ErrInvalidInput)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: el monto debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if p.Status == "" {
		p.Status = entity.PaymentStatusPending
	}
	if p.Status != entity.PaymentStatusPending && p.Status != entity.PaymentStatusCompleted {
		return fmt.Errorf("%w: estado de pago %q no válido", domain.ErrInvalidInput, p.Status)
	}
	return nil
}
