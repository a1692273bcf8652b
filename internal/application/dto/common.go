package dto

// ErrorResponse cuerpo de error HTTP. Fields solo viene en errores de validación
// (ruta del campo → mensaje, p. ej. "items[0].quantity").
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// HealthResponse GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
