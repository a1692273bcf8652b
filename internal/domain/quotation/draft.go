package quotation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FormValue valor crudo de formulario. Acepta en JSON tanto strings como números
// ("2", 2, 2.5) y conserva el texto tal cual para que la validación decida.
type FormValue string

// UnmarshalJSON acepta string, número o null.
func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

// String devuelve el texto sin espacios alrededor.
func (v FormValue) String() string { return strings.TrimSpace(string(v)) }

// ItemDraft fila del formulario de cotización antes de convertir tipos.
type ItemDraft struct {
	Item     FormValue `json:"item"`
	HSNSAC   FormValue `json:"hsnSac"`
	Quantity FormValue `json:"quantity"`
	Price    FormValue `json:"price"`
	SGST     FormValue `json:"sgst"`
	IGST     FormValue `json:"igst"`
}

// Draft estado crudo del formulario de cotización (edición en curso, sin persistir).
type Draft struct {
	Number     FormValue   `json:"number"`
	ClientID   FormValue   `json:"clientId"`
	Client     FormValue   `json:"client"`
	Date       FormValue   `json:"date"`
	ExpireDate FormValue   `json:"expireDate"`
	Status     FormValue   `json:"status"`
	Year       FormValue   `json:"year"`
	Currency   FormValue   `json:"currency"`
	Note       FormValue   `json:"note"`
	Items      []ItemDraft `json:"items"`
}

// NewDraft crea un borrador vacío con una fila y estado Draft, como el formulario nuevo.
func NewDraft() Draft {
	return Draft{
		Status: "Draft",
		Items:  []ItemDraft{{}},
	}
}
