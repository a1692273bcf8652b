package quotation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// ValidationErrors mapa ruta de campo -> mensaje. Vacío significa borrador válido.
// Las rutas por ítem usan el índice: "items[0].quantity".
type ValidationErrors map[string]string

// OK indica que no hay errores.
func (v ValidationErrors) OK() bool { return len(v) == 0 }

// Fields rutas con error, ordenadas.
func (v ValidationErrors) Fields() []string {
	out := make([]string, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ValidationError envuelve el mapa para los llamadores que prefieren un error.
type ValidationError struct {
	Fields ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("borrador inválido: %s", strings.Join(e.Fields.Fields(), ", "))
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// Err devuelve nil si no hay errores o un *ValidationError.
func (v ValidationErrors) Err() error {
	if v.OK() {
		return nil
	}
	return &ValidationError{Fields: v}
}

// ItemPath ruta de campo de un ítem.
func ItemPath(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}

// Validate revisa el borrador completo. Nunca falla ni hace I/O; el llamador decide
// si bloquea el envío.
func Validate(d Draft) ValidationErrors {
	errs := ValidationErrors{}
	if d.Number.String() == "" {
		errs["number"] = "Number is required"
	}
	if d.Client.String() == "" && d.ClientID.String() == "" {
		errs["client"] = "Client is required"
	}
	if d.Date.String() == "" {
		errs["date"] = "Date is required"
	} else if _, err := ParseDate(d.Date); err != nil {
		errs["date"] = "Valid date is required"
	}
	if d.ExpireDate.String() == "" {
		errs["expireDate"] = "Expire Date is required"
	} else if _, err := ParseDate(d.ExpireDate); err != nil {
		errs["expireDate"] = "Valid expire date is required"
	}
	if !entity.IsValidQuotationStatus(d.Status.String()) {
		errs["status"] = "Invalid status"
	}
	if len(d.Items) == 0 {
		errs["items"] = "At least one item is required"
	}
	for i, it := range d.Items {
		validateItem(errs, i, it)
	}
	return errs
}

func validateItem(errs ValidationErrors, i int, it ItemDraft) {
	if it.Item.String() == "" {
		errs[ItemPath(i, FieldItem)] = "Item name is required"
	}
	if it.HSNSAC.String() == "" {
		errs[ItemPath(i, FieldHSNSAC)] = "HSN/SAC is required"
	}
	if q, ok := ParseAmount(it.Quantity); !ok || !q.GreaterThan(decimal.Zero) {
		errs[ItemPath(i, FieldQuantity)] = "Valid quantity is required"
	}
	if p, ok := ParseAmount(it.Price); !ok || !p.GreaterThan(decimal.Zero) {
		errs[ItemPath(i, FieldPrice)] = "Valid price is required"
	}
	// Tasas no numéricas cuentan como 0; solo se rechazan las negativas.
	if ParseRate(it.SGST).IsNegative() {
		errs[ItemPath(i, FieldSGST)] = "Tax rate cannot be negative"
	}
	if ParseRate(it.IGST).IsNegative() {
		errs[ItemPath(i, FieldIGST)] = "Tax rate cannot be negative"
	}
}
