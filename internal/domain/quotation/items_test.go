package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
)

func TestRemoveItem_UnicaLineaRechazada(t *testing.T) {
	items := quotation.NewDraft().Items
	require.Len(t, items, 1)

	out, err := quotation.RemoveItem(items, 0)
	require.ErrorIs(t, err, domain.ErrLastLineItem)
	assert.Len(t, out, 1)
}

func TestRemoveItem_NuncaBajaDeUno(t *testing.T) {
	items := quotation.NewDraft().Items
	items = quotation.AddItem(items)
	items = quotation.AddItem(items)
	require.Len(t, items, 3)

	var err error
	for i := 0; i < 5; i++ {
		items, err = quotation.RemoveItem(items, 0)
		if err != nil {
			require.ErrorIs(t, err, domain.ErrLastLineItem)
		}
		require.GreaterOrEqual(t, len(items), 1)
	}
	assert.Len(t, items, 1)
}

func TestRemoveItem_ConservaOrden(t *testing.T) {
	items := []quotation.ItemDraft{{Item: "a"}, {Item: "b"}, {Item: "c"}}
	out, err := quotation.RemoveItem(items, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, quotation.FormValue("a"), out[0].Item)
	assert.Equal(t, quotation.FormValue("c"), out[1].Item)
	// el slice original no se modifica
	assert.Equal(t, quotation.FormValue("b"), items[1].Item)
}

func TestRemoveItem_IndiceFueraDeRango(t *testing.T) {
	items := []quotation.ItemDraft{{}, {}}
	_, err := quotation.RemoveItem(items, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = quotation.RemoveItem(items, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetItemField_RecalculaTotalDeFila(t *testing.T) {
	items := quotation.NewDraft().Items

	total, err := quotation.SetItemField(items, 0, quotation.FieldQuantity, "2")
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	total, err = quotation.SetItemField(items, 0, quotation.FieldPrice, "500")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", total.StringFixed(2))

	// cambiar tasas no altera el total de línea
	total, err = quotation.SetItemField(items, 0, quotation.FieldSGST, "9")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", total.StringFixed(2))
}

func TestSetItemField_CampoDesconocido(t *testing.T) {
	items := quotation.NewDraft().Items
	_, err := quotation.SetItemField(items, 0, "discount", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreviewDraft_TasaNoNumericaCuentaComoCero(t *testing.T) {
	d := quotation.NewDraft()
	d.Items[0] = quotation.ItemDraft{Item: "Design", HSNSAC: "9983", Quantity: "2", Price: "500", SGST: "abc", IGST: ""}

	p := quotation.PreviewDraft(d)
	require.Len(t, p.Lines, 1)
	assert.Equal(t, "1000.00", p.Lines[0].StringFixed(2))
	assert.True(t, p.Aggregates.TaxTotalA.IsZero())
	assert.True(t, p.Aggregates.TaxTotalB.IsZero())
	assert.Equal(t, "1000.00", p.Aggregates.Total.StringFixed(2))
}

func TestFormValue_AceptaNumerosYStrings(t *testing.T) {
	var it quotation.ItemDraft
	require.NoError(t, it.Item.UnmarshalJSON([]byte(`"Design"`)))
	require.NoError(t, it.Quantity.UnmarshalJSON([]byte(`2`)))
	require.NoError(t, it.Price.UnmarshalJSON([]byte(`499.99`)))
	require.NoError(t, it.SGST.UnmarshalJSON([]byte(`null`)))

	assert.Equal(t, "Design", it.Item.String())
	assert.Equal(t, "2", it.Quantity.String())
	assert.Equal(t, "499.99", it.Price.String())
	assert.Equal(t, "", it.SGST.String())
	assert.Error(t, it.IGST.UnmarshalJSON([]byte(`{}`)))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "quotation_Q-001.pdf", quotation.ExportFilename("Q-001"))
	assert.Equal(t, "quotation_N/A.pdf", quotation.ExportFilename("  "))
}
