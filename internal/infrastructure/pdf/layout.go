// Package pdf genera la representación gráfica de una cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo                │  Emisor: dirección / email   │
//	│  ██████████████████ Quotation ███████████████████████████   │
//	│  Quotation No + Date         │  Validity Date               │
//	│  ┌ From: emisor ────────────┬─ To: cliente ───────────────┐ │
//	│  TABLA: S.No | Description | HSN/SAC | Qty | Unit Price |   │
//	│         SGST | CGST | Total   (filas impares sombreadas)    │
//	│  Imagen banco │ Amount Details: Subtotal/SGST/CGST/Total    │
//	│               │ Authorized Signature + sello                │
//	│  Bank Details / Terms and Conditions                        │
//	│  FOOTER (cada página): Emisor | web        Page n of N      │
//	└─────────────────────────────────────────────────────────────┘
//
// Compose arma el árbol de página de forma pura; MarotoPDFGenerator lo dibuja.
package pdf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
)

// Textos fijos del documento.
const (
	NotAvailable       = "N/A"
	ClientAddressBlank = "[Client Address]"
	ClientEmailBlank   = "[Client Email]"
	DocumentTitle      = "Quotation"
	SignatureCaption   = "Authorized Signature"
	PageNumberPattern  = "Page {current} of {total}"
	dateLayout         = "02/01/2006"
)

// Column columna de la tabla de ítems con su ancho relativo.
type Column struct {
	Label string
	Width int
}

// ItemColumns orden y anchos fijos de la tabla. Los anchos suman tableGrid.
var ItemColumns = []Column{
	{"S.No.", 10},
	{"Description", 30},
	{"HSN/SAC", 10},
	{"Qty", 10},
	{"Unit Price", 12},
	{"SGST", 10},
	{"CGST", 10},
	{"Total", 12},
}

// tableGrid tamaño de grilla del documento: la suma de los anchos de la tabla.
const tableGrid = 104

// TableRow fila del cuerpo de la tabla.
type TableRow struct {
	Cells  []string
	Shaded bool
}

// AmountLine etiqueta y valor del recuadro de totales.
type AmountLine struct {
	Label string
	Value string
}

// QuotationLayout árbol de página listo para dibujar. Ningún campo queda vacío:
// lo ausente se representa con "N/A" o con los marcadores del cliente.
type QuotationLayout struct {
	IssuerName   string
	IssuerLines  []string // dirección + email, alineado a la derecha en el header
	Title        string
	Meta         []string // izquierda: número y fecha
	Validity     string   // derecha: vencimiento
	From         []string
	To           []string
	Columns      []Column
	Rows         []TableRow
	AmountTitle  string
	Amounts      []AmountLine // el último es el total (resaltado)
	Signature    string
	BankTitle    string
	BankLines    []string
	TermsTitle   string
	Terms        []string
	FooterLeft   string
	FooterPaging string
}

// Compose transforma cotización + cliente resuelto + emisor en el árbol de página.
// client puede ser nil (nombre sin coincidencia): el bloque "To:" se conserva con marcadores.
// Los totales se recalculan desde las líneas.
func Compose(q *entity.Quotation, client *entity.Customer, issuer entity.Issuer) QuotationLayout {
	if q == nil {
		q = &entity.Quotation{}
	}
	issuerName := nonEmpty(issuer.Name, NotAvailable)
	issuerLines := make([]string, 0, len(issuer.AddressLines)+1)
	if addr := strings.TrimSpace(strings.Join(issuer.AddressLines, " ")); addr != "" {
		issuerLines = append(issuerLines, addr)
	} else {
		issuerLines = append(issuerLines, NotAvailable)
	}
	issuerLines = append(issuerLines, "Email: "+nonEmpty(issuer.Email, NotAvailable))

	clientName := q.ClientName
	var address, email string
	if client != nil {
		clientName = nonEmpty(clientName, client.Name)
		address, email = client.Address, client.Email
	}

	agg := quotation.ComputeAggregates(q.Items)

	l := QuotationLayout{
		IssuerName:  issuerName,
		IssuerLines: issuerLines,
		Title:       DocumentTitle,
		Meta: []string{
			"Quotation No: " + nonEmpty(q.Number, NotAvailable),
			"Date: " + formatDate(q.Date),
		},
		Validity: "Validity Date: " + formatDate(q.ExpireDate),
		From:     append([]string{issuerName}, issuerLines...),
		To: []string{
			"Client: " + nonEmpty(clientName, NotAvailable),
			"Address: " + nonEmpty(address, ClientAddressBlank),
			"Email: " + nonEmpty(email, ClientEmailBlank),
		},
		Columns:     ItemColumns,
		Rows:        make([]TableRow, 0, len(q.Items)),
		AmountTitle: "Amount Details",
		Amounts: []AmountLine{
			{"Subtotal:", formatMoney(agg.SubTotal)},
			{"SGST:", formatMoney(agg.TaxTotalA)},
			{"CGST:", formatMoney(agg.TaxTotalB)},
			{"Total:", formatMoney(agg.Total)},
		},
		Signature:  SignatureCaption,
		BankTitle:  "Bank Details",
		TermsTitle: "Terms and Conditions",
		BankLines: []string{
			"Account Number: " + nonEmpty(issuer.BankAccount, NotAvailable),
			"IFSC Code: " + nonEmpty(issuer.BankIFSC, NotAvailable),
			"MICR Code: " + nonEmpty(issuer.BankMICR, NotAvailable),
		},
		FooterLeft:   issuerName + " | " + nonEmpty(issuer.Website, NotAvailable),
		FooterPaging: PageNumberPattern,
	}

	for i, it := range q.Items {
		l.Rows = append(l.Rows, TableRow{
			Cells: []string{
				strconv.Itoa(i + 1),
				nonEmpty(it.Description, NotAvailable),
				nonEmpty(it.TaxCode, NotAvailable),
				it.Quantity.String(),
				formatMoney(it.UnitPrice),
				formatRate(it.TaxRateA),
				formatRate(it.TaxRateB),
				formatMoney(quotation.ComputeLine(it)),
			},
			Shaded: i%2 == 1,
		})
	}

	for i, t := range issuer.Terms {
		l.Terms = append(l.Terms, fmt.Sprintf("%d. %s", i+1, t))
	}
	if len(l.Terms) == 0 {
		l.Terms = []string{NotAvailable}
	}
	return l
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney redondea a 2 decimales solo para mostrar.
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatRate imprime la tasa sin ceros de relleno: 9 -> "9%", 2.50 -> "2.5%".
func formatRate(d decimal.Decimal) string {
	return d.String() + "%"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.Format(dateLayout)
}
