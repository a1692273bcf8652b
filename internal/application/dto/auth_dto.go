package dto

import "time"

// LoginRequest body de login y registro.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido por el store. ExpiresAt solo si el token es un JWT con exp.
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
