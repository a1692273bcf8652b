package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
)

// PreviewResponse totales en vivo del borrador: uno por fila más los agregados.
// Los valores van con precisión completa; Display trae el texto con 2 decimales.
type PreviewResponse struct {
	Lines     []decimal.Decimal `json:"lines"`
	SubTotal  decimal.Decimal   `json:"subTotal"`
	SGSTTotal decimal.Decimal   `json:"sgstTotal"`
	CGSTTotal decimal.Decimal   `json:"cgstTotal"`
	Tax       decimal.Decimal   `json:"tax"`
	Total     decimal.Decimal   `json:"total"`
	Display   PreviewDisplay    `json:"display"`
}

// PreviewDisplay montos redondeados para mostrar.
type PreviewDisplay struct {
	Lines     []string `json:"lines"`
	SubTotal  string   `json:"subTotal"`
	SGSTTotal string   `json:"sgstTotal"`
	CGSTTotal string   `json:"cgstTotal"`
	Total     string   `json:"total"`
}

// NewPreviewResponse arma la respuesta a partir del cálculo del dominio.
func NewPreviewResponse(p quotation.Preview) PreviewResponse {
	a := p.Aggregates
	lines := make([]string, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = l.StringFixed(2)
	}
	return PreviewResponse{
		Lines:     p.Lines,
		SubTotal:  a.SubTotal,
		SGSTTotal: a.TaxTotalA,
		CGSTTotal: a.TaxTotalB,
		Tax:       a.Tax(),
		Total:     a.Total,
		Display: PreviewDisplay{
			Lines:     lines,
			SubTotal:  a.SubTotal.StringFixed(2),
			SGSTTotal: a.TaxTotalA.StringFixed(2),
			CGSTTotal: a.TaxTotalB.StringFixed(2),
			Total:     a.Total.StringFixed(2),
		},
	}
}

// ValidateResponse resultado de POST /api/quotations/validate.
type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ItemEditRequest edición de una fila del borrador (POST /api/quotations/items).
// Op: "add", "remove" o "set".
type ItemEditRequest struct {
	Draft quotation.Draft     `json:"draft"`
	Op    string              `json:"op"`
	Index int                 `json:"index"`
	Field string              `json:"field,omitempty"`
	Value quotation.FormValue `json:"value,omitempty"`
}

// ItemEditResponse borrador resultante con su vista previa.
type ItemEditResponse struct {
	Draft   quotation.Draft `json:"draft"`
	Preview PreviewResponse `json:"preview"`
}
