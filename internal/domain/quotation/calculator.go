// Package quotation contiene la lógica pura de cotizaciones: cálculo de líneas y
// agregados, validación del borrador, armado del documento y operaciones sobre ítems.
package quotation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// ErrInconsistentTotals el documento trae agregados que no cuadran con sus líneas.
var ErrInconsistentTotals = errors.New("totales de la cotización inconsistentes")

// Aggregates totales derivados de las líneas. Se mantienen con precisión completa;
// el redondeo a 2 decimales solo ocurre al mostrar.
type Aggregates struct {
	SubTotal  decimal.Decimal
	TaxTotalA decimal.Decimal // SGST
	TaxTotalB decimal.Decimal // CGST
	Total     decimal.Decimal
}

// Tax devuelve TaxTotalA + TaxTotalB.
func (a Aggregates) Tax() decimal.Decimal { return a.TaxTotalA.Add(a.TaxTotalB) }

// ComputeLine total de la línea: quantity * unitPrice. Las tasas no participan.
func ComputeLine(item entity.LineItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice)
}

// lineTax impuesto de una línea para una tasa porcentual: q * p * rate / 100.
// Shift(-2) divide por 100 sin pérdida de precisión.
func lineTax(item entity.LineItem, rate decimal.Decimal) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice).Mul(rate).Shift(-2)
}

// ComputeAggregates suma las líneas. Cada tasa se aplica solo sobre su propia línea,
// así que cambiar la tasa de una línea no altera la contribución de las demás.
// Lista vacía => todos los agregados en cero.
func ComputeAggregates(items []entity.LineItem) Aggregates {
	var agg Aggregates
	for _, it := range items {
		agg.SubTotal = agg.SubTotal.Add(ComputeLine(it))
		agg.TaxTotalA = agg.TaxTotalA.Add(lineTax(it, it.TaxRateA))
		agg.TaxTotalB = agg.TaxTotalB.Add(lineTax(it, it.TaxRateB))
	}
	agg.Total = agg.SubTotal.Add(agg.TaxTotalA).Add(agg.TaxTotalB)
	return agg
}

// Stamp recalcula el total de cada línea y los agregados del documento in situ.
func Stamp(q *entity.Quotation) Aggregates {
	for i := range q.Items {
		q.Items[i].Total = ComputeLine(q.Items[i])
	}
	agg := ComputeAggregates(q.Items)
	q.SubTotal = agg.SubTotal
	q.TaxTotalA = agg.TaxTotalA
	q.TaxTotalB = agg.TaxTotalB
	q.Tax = agg.Tax()
	q.Total = agg.Total
	return agg
}

// CheckConsistency verifica que los totales guardados coincidan exactamente con los
// que se derivan de las líneas (sin redondeos intermedios).
func CheckConsistency(q *entity.Quotation) error {
	if q == nil {
		return fmt.Errorf("%w: cotización nula", ErrInconsistentTotals)
	}
	var errs []error
	for i, it := range q.Items {
		if want := ComputeLine(it); !it.Total.Equal(want) {
			errs = append(errs, fmt.Errorf("línea %d: total %s, esperado %s", i, it.Total, want))
		}
	}
	agg := ComputeAggregates(q.Items)
	if !q.SubTotal.Equal(agg.SubTotal) {
		errs = append(errs, fmt.Errorf("subtotal %s no coincide con la suma de líneas %s", q.SubTotal, agg.SubTotal))
	}
	if !q.TaxTotalA.Equal(agg.TaxTotalA) {
		errs = append(errs, fmt.Errorf("SGST %s no coincide con %s", q.TaxTotalA, agg.TaxTotalA))
	}
	if !q.TaxTotalB.Equal(agg.TaxTotalB) {
		errs = append(errs, fmt.Errorf("CGST %s no coincide con %s", q.TaxTotalB, agg.TaxTotalB))
	}
	if !q.Total.Equal(agg.Total) {
		errs = append(errs, fmt.Errorf("total %s no coincide con subtotal + impuestos %s", q.Total, agg.Total))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInconsistentTotals, errors.Join(errs...))
	}
	return nil
}
