package quotation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
)

func validDraft() quotation.Draft {
	return quotation.Draft{
		Number:     "Q-001",
		Client:     "Acme Traders",
		Date:       "2024-03-01",
		ExpireDate: "2024-03-31",
		Status:     "Draft",
		Currency:   "INR",
		Items: []quotation.ItemDraft{
			{Item: "Design", HSNSAC: "9983", Quantity: "2", Price: "500", SGST: "9", IGST: "9"},
		},
	}
}

func TestValidate_BorradorValido(t *testing.T) {
	errs := quotation.Validate(validDraft())
	assert.True(t, errs.OK(), "errores inesperados: %v", errs)
	assert.NoError(t, errs.Err())
}

func TestValidate_Rechazos(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(d *quotation.Draft)
		field string
		msg   string
	}{
		{"sin número", func(d *quotation.Draft) { d.Number = "  " }, "number", "Number is required"},
		{"sin cliente", func(d *quotation.Draft) { d.Client = "" }, "client", "Client is required"},
		{"sin fecha", func(d *quotation.Draft) { d.Date = "" }, "date", "Date is required"},
		{"sin vencimiento", func(d *quotation.Draft) { d.ExpireDate = "" }, "expireDate", "Expire Date is required"},
		{"fecha ilegible", func(d *quotation.Draft) { d.Date = "31/02/2024" }, "date", "Valid date is required"},
		{"estado fuera del enum", func(d *quotation.Draft) { d.Status = "Paid" }, "status", "Invalid status"},
		{"sin ítems", func(d *quotation.Draft) { d.Items = nil }, "items", "At least one item is required"},
		{"descripción vacía", func(d *quotation.Draft) { d.Items[0].Item = "" }, "items[0].item", "Item name is required"},
		{"HSN vacío", func(d *quotation.Draft) { d.Items[0].HSNSAC = "" }, "items[0].hsnSac", "HSN/SAC is required"},
		{"cantidad cero", func(d *quotation.Draft) { d.Items[0].Quantity = "0" }, "items[0].quantity", "Valid quantity is required"},
		{"cantidad negativa", func(d *quotation.Draft) { d.Items[0].Quantity = "-1" }, "items[0].quantity", "Valid quantity is required"},
		{"cantidad no numérica", func(d *quotation.Draft) { d.Items[0].Quantity = "dos" }, "items[0].quantity", "Valid quantity is required"},
		{"precio cero", func(d *quotation.Draft) { d.Items[0].Price = "0" }, "items[0].price", "Valid price is required"},
		{"precio negativo", func(d *quotation.Draft) { d.Items[0].Price = "-10" }, "items[0].price", "Valid price is required"},
		{"tasa negativa", func(d *quotation.Draft) { d.Items[0].IGST = "-5" }, "items[0].igst", "Tax rate cannot be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.edit(&d)
			errs := quotation.Validate(d)
			require.Contains(t, errs, tc.field)
			assert.Equal(t, tc.msg, errs[tc.field])
		})
	}
}

func TestValidate_ClientePorIdBasta(t *testing.T) {
	d := validDraft()
	d.Client = ""
	d.ClientID = "c-1"
	assert.True(t, quotation.Validate(d).OK())
}

func TestValidate_TasaNoNumericaSeAcepta(t *testing.T) {
	d := validDraft()
	d.Items[0].SGST = "n/a"
	assert.True(t, quotation.Validate(d).OK())
}

func TestValidate_ClavesPorIndice(t *testing.T) {
	d := validDraft()
	d.Items = append(d.Items, quotation.ItemDraft{Item: "Hosting", HSNSAC: "9984", Quantity: "1"})
	errs := quotation.Validate(d)
	assert.Equal(t, []string{"items[1].price"}, errs.Fields())
}

func TestValidationErrors_ErrEnvuelveInvalidInput(t *testing.T) {
	d := validDraft()
	d.Number = ""
	err := quotation.Validate(d).Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *quotation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Number is required", verr.Fields["number"])
}
