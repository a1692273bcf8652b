package billing_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
	"github.com/jhoicas/Cotizador-api/pkg/retry"
)

func draft() quotation.Draft {
	return quotation.Draft{
		Number: "Q-001", Client: "Acme Traders", Date: "2024-03-01", ExpireDate: "2024-03-31", Status: "Draft",
		Items: []quotation.ItemDraft{{Item: "Design", HSNSAC: "9983", Quantity: "2", Price: "500", SGST: "9", IGST: "9"}},
	}
}

func fastPolicy() retry.Policy { return retry.Policy{MaxAttempts: 3, Delay: time.Millisecond} }

func TestQuotationUseCase_CreateEstampaYResuelveCliente(t *testing.T) {
	quotes := newQuotationRepo()
	customers := newCustomerRepo(entity.Customer{ID: "c-9", Name: "Acme Traders"})
	uc := billing.NewQuotationUseCase(quotes, customers, &fakeRegister{}, fastPolicy(), nil)

	created, err := uc.Create(context.Background(), draft())
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "c-9", created.ClientID)
	assert.Equal(t, "1180.00", created.Total.StringFixed(2))
	require.NoError(t, quotation.CheckConsistency(created))
}

func TestQuotationUseCase_BorradorInvalidoNoLlegaAlStore(t *testing.T) {
	quotes := newQuotationRepo()
	customers := newCustomerRepo()
	uc := billing.NewQuotationUseCase(quotes, customers, &fakeRegister{}, fastPolicy(), nil)

	d := draft()
	d.Items[0].Quantity = "0"
	_, err := uc.Create(context.Background(), d)

	var verr *quotation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "items[0].quantity")
	assert.Empty(t, quotes.items)
	assert.Equal(t, 0, customers.lists, "ni siquiera consulta clientes")
}

func TestQuotationUseCase_ClientesCaidosConservaNombre(t *testing.T) {
	quotes := newQuotationRepo()
	customers := newCustomerRepo()
	customers.listErr = errors.New("timeout")
	uc := billing.NewQuotationUseCase(quotes, customers, &fakeRegister{}, fastPolicy(), nil)

	created, err := uc.Create(context.Background(), draft())
	require.NoError(t, err)
	assert.Empty(t, created.ClientID)
	assert.Equal(t, "Acme Traders", created.ClientName)
}

func TestQuotationUseCase_SesionInvalidaAlResolverCliente(t *testing.T) {
	customers := newCustomerRepo()
	customers.listErr = domain.ErrUnauthorized
	uc := billing.NewQuotationUseCase(newQuotationRepo(), customers, &fakeRegister{}, fastPolicy(), nil)

	_, err := uc.Create(context.Background(), draft())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestQuotationUseCase_ListAfterMutationReintenta(t *testing.T) {
	quotes := newQuotationRepo(entity.Quotation{ID: "q-1", Number: "Q-001"})
	quotes.emptyLists = 2
	uc := billing.NewQuotationUseCase(quotes, newCustomerRepo(), &fakeRegister{}, fastPolicy(), nil)

	list, err := uc.ListAfterMutation(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 3, quotes.lists)
}

func TestQuotationUseCase_ListNormalNoReintenta(t *testing.T) {
	quotes := newQuotationRepo()
	uc := billing.NewQuotationUseCase(quotes, newCustomerRepo(), &fakeRegister{}, fastPolicy(), nil)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 1, quotes.lists)
}

func TestQuotationUseCase_UpdateYDelete(t *testing.T) {
	quotes := newQuotationRepo(entity.Quotation{ID: "q-1", Number: "Q-001"})
	uc := billing.NewQuotationUseCase(quotes, newCustomerRepo(), &fakeRegister{}, fastPolicy(), nil)

	d := draft()
	d.Number = "Q-001-R1"
	updated, err := uc.Update(context.Background(), "q-1", d)
	require.NoError(t, err)
	assert.Equal(t, "q-1", updated.ID)
	assert.Equal(t, "Q-001-R1", updated.Number)

	require.NoError(t, uc.Delete(context.Background(), "q-1"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "q-1"), domain.ErrNotFound)
}

func TestQuotationUseCase_Register(t *testing.T) {
	reg := &fakeRegister{}
	quotes := newQuotationRepo(entity.Quotation{ID: "q-1"}, entity.Quotation{ID: "q-2"})
	uc := billing.NewQuotationUseCase(quotes, newCustomerRepo(), reg, fastPolicy(), nil)

	b, err := uc.Register(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "xlsx", string(b))
	assert.Len(t, reg.got, 2)
}

func TestQuotationUseCase_PreviewYValidate(t *testing.T) {
	uc := billing.NewQuotationUseCase(newQuotationRepo(), newCustomerRepo(), &fakeRegister{}, fastPolicy(), nil)
	p := uc.Preview(draft())
	assert.Equal(t, "1180.00", p.Aggregates.Total.StringFixed(2))
	assert.True(t, uc.Validate(draft()).OK())
}

func TestQuotationUseCase_EditItems(t *testing.T) {
	uc := billing.NewQuotationUseCase(newQuotationRepo(), newCustomerRepo(), &fakeRegister{}, fastPolicy(), nil)
	d := draft()

	d, err := uc.EditItems(d, billing.ItemOpAdd, 0, "", "")
	require.NoError(t, err)
	require.Len(t, d.Items, 2)

	d, err = uc.EditItems(d, billing.ItemOpSet, 1, quotation.FieldQuantity, "3")
	require.NoError(t, err)
	assert.Equal(t, quotation.FormValue("3"), d.Items[1].Quantity)

	d, err = uc.EditItems(d, billing.ItemOpRemove, 0, "", "")
	require.NoError(t, err)
	require.Len(t, d.Items, 1)

	_, err = uc.EditItems(d, billing.ItemOpRemove, 0, "", "")
	assert.ErrorIs(t, err, domain.ErrLastLineItem)

	_, err = uc.EditItems(d, "rename", 0, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// legacyQuotation registro guardado con impuestos en cero pese a las tasas 9/9.
func legacyQuotation() entity.Quotation {
	return entity.Quotation{
		ID: "q-1", Number: "Q-001", ClientName: "Acme Traders",
		Items: []entity.LineItem{{
			Description: "Design", TaxCode: "998314", Quantity: decimal.NewFromInt(2),
			UnitPrice: decimal.NewFromInt(500), TaxRateA: decimal.NewFromInt(9), TaxRateB: decimal.NewFromInt(9),
			Total: decimal.NewFromInt(1000),
		}},
		SubTotal: decimal.NewFromInt(1000),
		Total:    decimal.NewFromInt(1000),
	}
}

func TestQuotationUseCase_LecturasRecalculanTotales(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})
	quotes := newQuotationRepo(legacyQuotation())
	uc := billing.NewQuotationUseCase(quotes, newCustomerRepo(), &fakeRegister{}, fastPolicy(), log)

	got, err := uc.Get(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, "90.00", got.TaxTotalA.StringFixed(2))
	assert.Equal(t, "90.00", got.TaxTotalB.StringFixed(2))
	assert.Equal(t, "1180.00", got.Total.StringFixed(2))
	require.NoError(t, quotation.CheckConsistency(got))
	assert.Contains(t, buf.String(), "totales del store recalculados")

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1180.00", list[0].Total.StringFixed(2))

	after, err := uc.ListAfterMutation(context.Background())
	require.NoError(t, err)
	require.Len(t, after, 1)
	require.NoError(t, quotation.CheckConsistency(&after[0]))
}
