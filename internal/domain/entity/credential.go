package entity

// Credentials cuerpo de login/registro contra el store remoto.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthToken respuesta del store remoto tras login/registro.
type AuthToken struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}
