package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	"github.com/jhoicas/Cotizador-api/pkg/gstin"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in entity.Customer) (*entity.Customer, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	in.ID = ""
	return uc.repo.Create(ctx, &in)
}

// List lista clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]entity.Customer, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.repo.GetByID(ctx, id)
}

// Update actualiza un cliente existente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in entity.Customer) (*entity.Customer, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	in.ID = id
	return uc.repo.Update(ctx, id, &in)
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func validateCustomer(c *entity.Customer) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	if c.Type == "" {
		c.Type = entity.CustomerTypePeople
	}
	if c.Type != entity.CustomerTypePeople && c.Type != entity.CustomerTypeCompany {
		return fmt.Errorf("%w: tipo de cliente %q no válido", domain.ErrInvalidInput, c.Type)
	}
	if c.TaxID != "" {
		if err := gstin.Validate(c.TaxID); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		c.TaxID = gstin.Normalize(c.TaxID)
	}
	return nil
}
