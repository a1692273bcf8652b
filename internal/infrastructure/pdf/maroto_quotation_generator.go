package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 11, Green: 3, Blue: 55} // #0b0337
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorShade   = &props.Color{Red: 240, Green: 240, Blue: 240} // #F0F0F0
	colorBorder  = &props.Color{Red: 200, Green: 200, Blue: 200}
)

const half = tableGrid / 2

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.QuotationPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.QuotationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer entity.Issuer
}

// NewMarotoPDFGenerator construye el generador con la identidad del emisor inyectada.
func NewMarotoPDFGenerator(issuer entity.Issuer) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: issuer}
}

// GenerateQuotationPDF genera el PDF y devuelve sus bytes. client puede ser nil.
func (g *MarotoPDFGenerator) GenerateQuotationPDF(
	ctx context.Context,
	q *entity.Quotation,
	client *entity.Customer,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	layout := Compose(q, client, g.issuer)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithMaxGridSize(tableGrid).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithPageNumber(props.PageNumber{
			Pattern: layout.FooterPaging,
			Place:   props.RightBottom,
			Size:    8,
			Color:   colorGray,
		}).
		WithTitle(layout.Title+" "+layout.Meta[0], true).
		WithAuthor(layout.IssuerName, true).
		Build()

	m := maroto.New(cfg)

	// El footer se repite en cada página física.
	if err := m.RegisterFooter(footerRow(layout)); err != nil {
		return nil, fmt.Errorf("pdf: registrar footer: %w", err)
	}

	m.AddRows(headerRow(layout, g.issuer.Logo, imageExtension(g.issuer.LogoFormat)))
	m.AddRows(titleRow(layout))
	m.AddRows(metaRow(layout))
	m.AddRows(partiesRow(layout))
	m.AddRows(line.NewRow(3))

	m.AddRows(sectionRow("Items"))
	m.AddRows(tableHeaderRow(layout.Columns))
	m.AddRows(tableBodyRows(layout)...)
	m.AddRows(line.NewRow(3))

	m.AddRows(amountRows(layout, g.issuer)...)

	m.AddRows(sectionRow(layout.BankTitle))
	m.AddRows(textRows(layout.BankLines)...)
	m.AddRows(sectionRow(layout.TermsTitle))
	m.AddRows(textRows(layout.Terms)...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo (izq) y datos del emisor alineados a la derecha.
func headerRow(l QuotationLayout, logo []byte, ext extension.Type) core.Row {
	left := col.New(half)
	if len(logo) > 0 {
		left.Add(image.NewFromBytes(logo, ext, props.Rect{Percent: 90, Left: 0, Top: 1}))
	}
	right := col.New(half).Add(text.New(l.IssuerName, props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
	}))
	for i, s := range l.IssuerLines {
		right.Add(text.New(s, props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: float64(9 + 5*i)}))
	}
	return row.New(24).Add(left, right)
}

// titleRow: banda sólida con el tipo de documento.
func titleRow(l QuotationLayout) core.Row {
	return row.New(12).Add(
		col.New(tableGrid).Add(text.New(l.Title, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorWhite, Top: 3,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary}),
	)
}

// metaRow: número + fecha (izq), vencimiento (der).
func metaRow(l QuotationLayout) core.Row {
	left := col.New(half)
	for i, s := range l.Meta {
		left.Add(text.New(s, props.Text{Size: 9, Top: float64(2 + 5*i)}))
	}
	return row.New(14).Add(
		left,
		col.New(half).Add(text.New(l.Validity, props.Text{Size: 9, Align: align.Right, Top: 2})),
	)
}

// partiesRow: recuadro con From (emisor) y To (cliente).
func partiesRow(l QuotationLayout) core.Row {
	box := &props.Cell{BorderType: border.Full, BorderColor: colorBorder, BorderThickness: 0.3}
	block := func(title string, lines []string) core.Col {
		c := col.New(half).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Left: 2,
		}))
		for i, s := range lines {
			c.Add(text.New(s, props.Text{Size: 8, Top: float64(8 + 5*i), Left: 2}))
		}
		return c.WithStyle(box)
	}
	h := 10 + 5*max(len(l.From), len(l.To))
	return row.New(float64(h)).Add(block("From:", l.From), block("To:", l.To))
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(tableGrid).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
	})))
}

// tableHeaderRow: cabecera de la tabla sobre fondo primario.
func tableHeaderRow(cols []Column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(c.Width).Add(text.New(c.Label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorWhite, Top: 2,
		})).WithStyle(&props.Cell{
			BackgroundColor: colorPrimary, BorderType: border.Full, BorderColor: colorBorder, BorderThickness: 0.2,
		}))
	}
	return row.New(8).Add(cells...)
}

// tableBodyRows: una fila por ítem, sombreando las impares.
func tableBodyRows(l QuotationLayout) []core.Row {
	rows := make([]core.Row, 0, len(l.Rows))
	for _, r := range l.Rows {
		style := &props.Cell{BorderType: border.Full, BorderColor: colorBorder, BorderThickness: 0.2}
		if r.Shaded {
			style.BackgroundColor = colorShade
		}
		cells := make([]core.Col, 0, len(r.Cells))
		for i, v := range r.Cells {
			a := align.Center
			if i == 1 {
				a = align.Left
			}
			cells = append(cells, col.New(l.Columns[i].Width).Add(text.New(v, props.Text{
				Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
			})).WithStyle(style))
		}
		rows = append(rows, row.New(7).Add(cells...))
	}
	return rows
}

// amountRows: imagen de banco (izq) + recuadro de totales y firma (der).
func amountRows(l QuotationLayout, issuer entity.Issuer) []core.Row {
	left := col.New(half)
	if len(issuer.BankImage) > 0 {
		left.Add(image.NewFromBytes(issuer.BankImage, imageExtension(issuer.BankImageFormat), props.Rect{Percent: 70, Center: true}))
	}

	box := col.New(half).Add(text.New(l.AmountTitle, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Left: 2,
	}))
	last := len(l.Amounts) - 1
	for i, a := range l.Amounts {
		top := float64(9 + 6*i)
		st := props.Text{Size: 9, Top: top, Left: 2}
		vt := props.Text{Size: 9, Top: top, Align: align.Right, Right: 2}
		if i == last {
			st.Style, vt.Style = fontstyle.Bold, fontstyle.Bold
			st.Color, vt.Color = colorPrimary, colorPrimary
			st.Size, vt.Size = 10, 10
		}
		box.Add(text.New(a.Label, st), text.New(a.Value, vt))
	}
	box.WithStyle(&props.Cell{BorderType: border.Full, BorderColor: colorBorder, BorderThickness: 0.3})

	signature := col.New(half).Add(text.New(l.Signature, props.Text{
		Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 2,
	}))
	if len(issuer.Stamp) > 0 {
		signature.Add(image.NewFromBytes(issuer.Stamp, imageExtension(issuer.StampFormat), props.Rect{Percent: 60, Left: 30, Top: 8}))
	}

	return []core.Row{
		row.New(float64(14 + 6*len(l.Amounts))).Add(left, box),
		row.New(30).Add(col.New(half), signature),
	}
}

func textRows(lines []string) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, s := range lines {
		rows = append(rows, row.New(5).Add(col.New(tableGrid).Add(text.New(s, props.Text{Size: 9}))))
	}
	return rows
}

// footerRow: emisor y web a la izquierda; el número de página lo imprime Maroto
// con PageNumberPattern en la esquina inferior derecha.
func footerRow(l QuotationLayout) core.Row {
	return row.New(8).Add(col.New(tableGrid).Add(text.New(l.FooterLeft, props.Text{
		Size: 8, Color: colorGray, Top: 2,
	})))
}
