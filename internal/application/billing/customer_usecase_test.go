package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

func TestCustomerUseCase_CreateNormaliza(t *testing.T) {
	repo := newCustomerRepo()
	uc := billing.NewCustomerUseCase(repo)

	c, err := uc.Create(context.Background(), entity.Customer{Name: "  Acme Traders ", TaxID: "27aapfu0939f1zv"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", c.Name)
	assert.Equal(t, entity.CustomerTypePeople, c.Type)
	assert.Equal(t, "27AAPFU0939F1ZV", c.TaxID)
}

func TestCustomerUseCase_Rechazos(t *testing.T) {
	uc := billing.NewCustomerUseCase(newCustomerRepo())
	cases := map[string]entity.Customer{
		"sin nombre":     {Name: " "},
		"tipo inválido":  {Name: "Acme", Type: "Robot"},
		"gstin inválido": {Name: "Acme", TaxID: "27AAPFU0939F1Z5"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCustomerUseCase_UpdateValida(t *testing.T) {
	repo := newCustomerRepo(entity.Customer{ID: "c-1", Name: "Acme"})
	uc := billing.NewCustomerUseCase(repo)

	_, err := uc.Update(context.Background(), "c-1", entity.Customer{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	c, err := uc.Update(context.Background(), "c-1", entity.Customer{Name: "Acme Ltd", Type: entity.CustomerTypeCompany})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", c.Name)
}
