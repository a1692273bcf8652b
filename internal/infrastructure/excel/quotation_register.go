// Package excel genera el registro de cotizaciones en formato .xlsx.
package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	appbilling "github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
)

// SheetName hoja única del registro.
const SheetName = "Quotations"

// RegisterHeaders columnas del registro, en orden.
var RegisterHeaders = []string{"#", "Number", "Client", "Date", "Validity Date", "Status", "Currency", "Subtotal", "SGST", "CGST", "Total"}

var _ appbilling.QuotationRegisterGenerator = QuotationRegister{}

// QuotationRegister adaptador de GenerateQuotationRegister para el caso de uso.
type QuotationRegister struct{}

// GenerateRegister ver GenerateQuotationRegister.
func (QuotationRegister) GenerateRegister(quotations []entity.Quotation) ([]byte, error) {
	return GenerateQuotationRegister(quotations)
}

var columns = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}

// GenerateQuotationRegister una fila por cotización con sus agregados recalculados
// desde las líneas, más una fila de totales.
func GenerateQuotationRegister(quotations []entity.Quotation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("excel: nombre de hoja: %w", err)
	}

	widths := []float64{5, 14, 30, 12, 14, 11, 9, 14, 12, 12, 14}
	for i, c := range columns {
		if err := f.SetColWidth(SheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("excel: ancho de columna %s: %w", c, err)
		}
	}

	// ── Estilos ──────────────────────────────────────────────────────────

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#0B0337"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	rowStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo fila: %w", err)
	}
	shadedStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo fila sombreada: %w", err)
	}
	moneyFmt := "0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders(), CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo moneda: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo total: %w", err)
	}

	// ── Cabecera ─────────────────────────────────────────────────────────

	for i, h := range RegisterHeaders {
		if err := f.SetCellValue(SheetName, columns[i]+"1", h); err != nil {
			return nil, fmt.Errorf("excel: cabecera: %w", err)
		}
	}
	lastCol := columns[len(columns)-1]
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}

	// ── Filas ────────────────────────────────────────────────────────────

	var grand quotation.Aggregates
	r := 2
	for i, q := range quotations {
		agg := quotation.ComputeAggregates(q.Items)
		grand.SubTotal = grand.SubTotal.Add(agg.SubTotal)
		grand.TaxTotalA = grand.TaxTotalA.Add(agg.TaxTotalA)
		grand.TaxTotalB = grand.TaxTotalB.Add(agg.TaxTotalB)
		grand.Total = grand.Total.Add(agg.Total)

		values := []any{
			i + 1,
			sanitizeCell(q.Number),
			sanitizeCell(q.ClientName),
			formatDate(q),
			formatExpire(q),
			sanitizeCell(q.Status),
			sanitizeCell(q.Currency),
			agg.SubTotal.Round(2).InexactFloat64(),
			agg.TaxTotalA.Round(2).InexactFloat64(),
			agg.TaxTotalB.Round(2).InexactFloat64(),
			agg.Total.Round(2).InexactFloat64(),
		}
		rs := fmt.Sprintf("%d", r)
		for c, v := range values {
			if err := f.SetCellValue(SheetName, columns[c]+rs, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", r, err)
			}
		}
		style := rowStyle
		if i%2 == 1 {
			style = shadedStyle
		}
		if err := f.SetCellStyle(SheetName, "A"+rs, "G"+rs, style); err != nil {
			return nil, fmt.Errorf("excel: estilo fila %d: %w", r, err)
		}
		if err := f.SetCellStyle(SheetName, "H"+rs, lastCol+rs, moneyStyle); err != nil {
			return nil, fmt.Errorf("excel: estilo moneda fila %d: %w", r, err)
		}
		r++
	}

	// ── Totales ──────────────────────────────────────────────────────────

	rs := fmt.Sprintf("%d", r+1)
	totals := []struct {
		col string
		val any
	}{
		{"G", "Totals:"},
		{"H", grand.SubTotal.Round(2).InexactFloat64()},
		{"I", grand.TaxTotalA.Round(2).InexactFloat64()},
		{"J", grand.TaxTotalB.Round(2).InexactFloat64()},
		{"K", grand.Total.Round(2).InexactFloat64()},
	}
	for _, t := range totals {
		if err := f.SetCellValue(SheetName, t.col+rs, t.val); err != nil {
			return nil, fmt.Errorf("excel: totales: %w", err)
		}
	}
	if err := f.SetCellStyle(SheetName, "G"+rs, lastCol+rs, totalStyle); err != nil {
		return nil, fmt.Errorf("excel: estilo totales: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(q entity.Quotation) string {
	if q.Date.IsZero() {
		return "N/A"
	}
	return q.Date.Format("2006-01-02")
}

func formatExpire(q entity.Quotation) string {
	if q.ExpireDate.IsZero() {
		return "N/A"
	}
	return q.ExpireDate.Format("2006-01-02")
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#C8C8C8", Style: 1},
		{Type: "top", Color: "#C8C8C8", Style: 1},
		{Type: "right", Color: "#C8C8C8", Style: 1},
		{Type: "bottom", Color: "#C8C8C8", Style: 1},
	}
}

// sanitizeCell antepone una comilla a los valores que Excel interpretaría como fórmula.
func sanitizeCell(s string) string {
	if s == "" {
		return "N/A"
	}
	if strings.ContainsAny(s[:1], "=+-@\t\r") {
		return "'" + s
	}
	return s
}
