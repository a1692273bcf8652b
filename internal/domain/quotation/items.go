package quotation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// Campos editables de una fila.
const (
	FieldItem     = "item"
	FieldHSNSAC   = "hsnSac"
	FieldQuantity = "quantity"
	FieldPrice    = "price"
	FieldSGST     = "sgst"
	FieldIGST     = "igst"
)

// AddItem agrega una fila vacía al final.
func AddItem(items []ItemDraft) []ItemDraft {
	return append(items, ItemDraft{})
}

// RemoveItem elimina la fila index. Rechaza quitar la última fila restante:
// la lista nunca baja de un elemento.
func RemoveItem(items []ItemDraft, index int) ([]ItemDraft, error) {
	if index < 0 || index >= len(items) {
		return items, fmt.Errorf("%w: índice de línea %d fuera de rango", domain.ErrInvalidInput, index)
	}
	if len(items) <= 1 {
		return items, domain.ErrLastLineItem
	}
	out := make([]ItemDraft, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

// SetItemField edita un campo de la fila index y devuelve el total recalculado de esa fila.
func SetItemField(items []ItemDraft, index int, field string, value FormValue) (decimal.Decimal, error) {
	if index < 0 || index >= len(items) {
		return decimal.Zero, fmt.Errorf("%w: índice de línea %d fuera de rango", domain.ErrInvalidInput, index)
	}
	it := &items[index]
	switch field {
	case FieldItem:
		it.Item = value
	case FieldHSNSAC:
		it.HSNSAC = value
	case FieldQuantity:
		it.Quantity = value
	case FieldPrice:
		it.Price = value
	case FieldSGST:
		it.SGST = value
	case FieldIGST:
		it.IGST = value
	default:
		return decimal.Zero, fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, field)
	}
	return ComputeLine(ToLineItem(*it)), nil
}

// ToLineItem convierte una fila cruda en LineItem con su total estampado.
// Cantidad o precio no numéricos quedan en cero (la validación los rechaza antes de enviar).
func ToLineItem(d ItemDraft) entity.LineItem {
	qty, _ := ParseAmount(d.Quantity)
	price, _ := ParseAmount(d.Price)
	li := entity.LineItem{
		Description: d.Item.String(),
		TaxCode:     d.HSNSAC.String(),
		Quantity:    qty,
		UnitPrice:   price,
		TaxRateA:    ParseRate(d.SGST),
		TaxRateB:    ParseRate(d.IGST),
	}
	li.Total = ComputeLine(li)
	return li
}

// Preview resultado del cálculo en vivo sobre el borrador.
type Preview struct {
	Lines      []decimal.Decimal
	Aggregates Aggregates
}

// PreviewDraft calcula totales por fila y agregados sin validar el borrador.
func PreviewDraft(d Draft) Preview {
	items := make([]entity.LineItem, len(d.Items))
	lines := make([]decimal.Decimal, len(d.Items))
	for i, it := range d.Items {
		items[i] = ToLineItem(it)
		lines[i] = items[i].Total
	}
	return Preview{Lines: lines, Aggregates: ComputeAggregates(items)}
}
