package entity

// Tipos de cliente aceptados por el formulario.
const (
	CustomerTypePeople  = "People"
	CustomerTypeCompany = "Company"
)

// Customer representa un cliente del store remoto. En este módulo es solo
// fuente de consulta para el bloque "To:" de la cotización.
type Customer struct {
	ID      string `json:"_id,omitempty"`
	Type    string `json:"type,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
	TaxID   string `json:"GSTIN,omitempty"`
}
