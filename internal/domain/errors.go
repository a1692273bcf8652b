package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrLastLineItem se devuelve al intentar eliminar la única línea de una cotización.
	ErrLastLineItem = errors.New("la cotización debe conservar al menos una línea")
)
