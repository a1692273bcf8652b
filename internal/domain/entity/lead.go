package entity

// Lead prospecto comercial.
type Lead struct {
	ID     string `json:"_id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}
