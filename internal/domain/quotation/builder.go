package quotation

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// ResolveClient busca el cliente de la cotización. Primero por id estable; si no hay id
// o no aparece, cae al nombre exacto (normalizado NFC) y gana la primera coincidencia.
// Devuelve nil si no encuentra nada; el renderizador usa entonces los marcadores.
func ResolveClient(customers []entity.Customer, clientID, clientName string) *entity.Customer {
	if id := strings.TrimSpace(clientID); id != "" {
		for i := range customers {
			if customers[i].ID == id {
				return &customers[i]
			}
		}
	}
	name := normalizeName(clientName)
	if name == "" {
		return nil
	}
	for i := range customers {
		if normalizeName(customers[i].Name) == name {
			return &customers[i]
		}
	}
	return nil
}

func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Build convierte el borrador en la cotización canónica lista para enviar al store:
// valida, convierte tipos y estampa totales de línea y agregados.
// client puede ser nil; en ese caso se conservan las referencias del borrador.
func Build(d Draft, client *entity.Customer) (*entity.Quotation, error) {
	if err := Validate(d).Err(); err != nil {
		return nil, err
	}
	date, _ := ParseDate(d.Date)
	expire, _ := ParseDate(d.ExpireDate)

	q := &entity.Quotation{
		Number:     d.Number.String(),
		ClientID:   d.ClientID.String(),
		ClientName: d.Client.String(),
		Date:       date,
		ExpireDate: expire,
		Status:     d.Status.String(),
		Year:       d.Year.String(),
		Currency:   d.Currency.String(),
		Note:       d.Note.String(),
		Items:      make([]entity.LineItem, len(d.Items)),
	}
	if client != nil {
		if client.ID != "" {
			q.ClientID = client.ID
		}
		q.ClientName = client.Name
	}
	if q.Year == "" {
		q.Year = date.Format("2006")
	}
	for i, it := range d.Items {
		q.Items[i] = ToLineItem(it)
	}
	Stamp(q)
	return q, nil
}

// FromQuotation reconstruye el borrador editable a partir de un registro guardado
// (modo edición del formulario).
func FromQuotation(q *entity.Quotation) Draft {
	d := Draft{
		Number:   FormValue(q.Number),
		ClientID: FormValue(q.ClientID),
		Client:   FormValue(q.ClientName),
		Status:   FormValue(q.Status),
		Year:     FormValue(q.Year),
		Currency: FormValue(q.Currency),
		Note:     FormValue(q.Note),
		Items:    make([]ItemDraft, len(q.Items)),
	}
	if !q.Date.IsZero() {
		d.Date = FormValue(q.Date.Format("2006-01-02"))
	}
	if !q.ExpireDate.IsZero() {
		d.ExpireDate = FormValue(q.ExpireDate.Format("2006-01-02"))
	}
	for i, it := range q.Items {
		d.Items[i] = ItemDraft{
			Item:     FormValue(it.Description),
			HSNSAC:   FormValue(it.TaxCode),
			Quantity: FormValue(it.Quantity.String()),
			Price:    FormValue(it.UnitPrice.String()),
			SGST:     FormValue(it.TaxRateA.String()),
			IGST:     FormValue(it.TaxRateB.String()),
		}
	}
	if len(d.Items) == 0 {
		d.Items = []ItemDraft{{}}
	}
	return d
}
