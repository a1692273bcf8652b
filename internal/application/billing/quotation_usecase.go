package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
	"github.com/jhoicas/Cotizador-api/pkg/retry"
)

// QuotationUseCase casos de uso de cotizaciones: el borrador se valida y se arma
// localmente; el store remoto solo recibe documentos con totales ya estampados.
type QuotationUseCase struct {
	repo      repository.QuotationRepository
	customers repository.CustomerRepository
	register  QuotationRegisterGenerator
	policy    retry.Policy
	log       *logger.Logger
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	repo repository.QuotationRepository,
	customers repository.CustomerRepository,
	register QuotationRegisterGenerator,
	policy retry.Policy,
	log *logger.Logger,
) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, customers: customers, register: register, policy: policy, log: log.Component("quotations")}
}

// List lista las cotizaciones del store.
func (uc *QuotationUseCase) List(ctx context.Context) ([]entity.Quotation, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	uc.restampAll(list)
	return list, nil
}

// ListAfterMutation relee la lista justo después de una escritura; si llega vacía
// reintenta según la política acotada antes de aceptarla.
func (uc *QuotationUseCase) ListAfterMutation(ctx context.Context) ([]entity.Quotation, error) {
	attempts := 0
	list, err := retry.FetchAfterMutation(ctx, uc.policy, func(ctx context.Context) ([]entity.Quotation, error) {
		attempts++
		return uc.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	if attempts > 1 {
		uc.log.Debug().Int("attempts", attempts).Int("count", len(list)).Msg("lista releída tras escritura")
	}
	uc.restampAll(list)
	return list, nil
}

// Get obtiene una cotización.
func (uc *QuotationUseCase) Get(ctx context.Context, id string) (*entity.Quotation, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.restamp(q)
	return q, nil
}

// Preview cálculo en vivo sobre el borrador (totales por fila y agregados).
func (uc *QuotationUseCase) Preview(d quotation.Draft) quotation.Preview {
	return quotation.PreviewDraft(d)
}

// Operaciones de edición de filas del borrador.
const (
	ItemOpAdd    = "add"
	ItemOpRemove = "remove"
	ItemOpSet    = "set"
)

// EditItems aplica una edición de fila al borrador y devuelve el borrador resultante.
// Quitar la última fila devuelve domain.ErrLastLineItem y deja el borrador igual.
func (uc *QuotationUseCase) EditItems(d quotation.Draft, op string, index int, field string, value quotation.FormValue) (quotation.Draft, error) {
	items := append([]quotation.ItemDraft(nil), d.Items...)
	switch op {
	case ItemOpAdd:
		items = quotation.AddItem(items)
	case ItemOpRemove:
		out, err := quotation.RemoveItem(items, index)
		if err != nil {
			return d, err
		}
		items = out
	case ItemOpSet:
		if _, err := quotation.SetItemField(items, index, field, value); err != nil {
			return d, err
		}
	default:
		return d, fmt.Errorf("%w: operación de fila desconocida %q", domain.ErrInvalidInput, op)
	}
	d.Items = items
	return d, nil
}

// Validate corre la compuerta de validación sin tocar la red.
func (uc *QuotationUseCase) Validate(d quotation.Draft) quotation.ValidationErrors {
	return quotation.Validate(d)
}

// Create valida, resuelve el cliente, estampa totales y persiste.
// Un borrador inválido devuelve *quotation.ValidationError y nunca llega al store.
func (uc *QuotationUseCase) Create(ctx context.Context, d quotation.Draft) (*entity.Quotation, error) {
	q, err := uc.build(ctx, d)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, q)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("number", q.Number).Str("total", q.Total.StringFixed(2)).Msg("cotización creada")
	uc.restamp(created)
	return created, nil
}

// Update igual que Create sobre un registro existente.
func (uc *QuotationUseCase) Update(ctx context.Context, id string, d quotation.Draft) (*entity.Quotation, error) {
	q, err := uc.build(ctx, d)
	if err != nil {
		return nil, err
	}
	q.ID = id
	updated, err := uc.repo.Update(ctx, id, q)
	if err != nil {
		return nil, err
	}
	uc.restamp(updated)
	return updated, nil
}

// Delete elimina la cotización.
func (uc *QuotationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Register genera el .xlsx con todas las cotizaciones.
func (uc *QuotationUseCase) Register(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	b, err := uc.register.GenerateRegister(list)
	if err != nil {
		return nil, fmt.Errorf("registro de cotizaciones: %w", err)
	}
	return b, nil
}

// restamp recalcula los totales de un registro leído del store. Los registros
// antiguos guardaban impuestos en cero; la deriva se registra y se corrige.
func (uc *QuotationUseCase) restamp(q *entity.Quotation) {
	if q == nil {
		return
	}
	if err := quotation.CheckConsistency(q); err != nil {
		uc.log.Warn().Err(err).Str("quotation", q.ID).Msg("totales del store recalculados")
	}
	quotation.Stamp(q)
}

func (uc *QuotationUseCase) restampAll(list []entity.Quotation) {
	for i := range list {
		uc.restamp(&list[i])
	}
}

func (uc *QuotationUseCase) build(ctx context.Context, d quotation.Draft) (*entity.Quotation, error) {
	if err := quotation.Validate(d).Err(); err != nil {
		return nil, err
	}
	client, err := uc.resolveClient(ctx, d.ClientID.String(), d.Client.String())
	if err != nil {
		return nil, err
	}
	return quotation.Build(d, client)
}

// resolveClient consulta los clientes para fijar el id estable. Si la consulta falla
// por algo distinto de credenciales se conserva la referencia del borrador.
func (uc *QuotationUseCase) resolveClient(ctx context.Context, id, name string) (*entity.Customer, error) {
	customers, err := uc.customers.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
		uc.log.Warn().Err(err).Str("client", name).Msg("no se pudo resolver el cliente; se guarda la referencia por nombre")
		return nil, nil
	}
	return quotation.ResolveClient(customers, id, name), nil
}
