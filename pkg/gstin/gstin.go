// Package gstin valida el GSTIN (identificador tributario de 15 caracteres) de un cliente.
package gstin

import (
	"fmt"
	"regexp"
	"strings"
)

const charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// estado(2) + PAN(10) + entidad(1) + 'Z' + dígito de control(1)
var format = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// Normalize quita espacios y pasa a mayúsculas.
func Normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// Validate comprueba formato y carácter de control (módulo 36).
// Acepta minúsculas y espacios; normalice antes de guardar.
func Validate(s string) error {
	g := Normalize(s)
	if len(g) != 15 {
		return fmt.Errorf("gstin: debe tener 15 caracteres, se recibieron %d", len(g))
	}
	if !format.MatchString(g) {
		return fmt.Errorf("gstin: formato inválido %q", g)
	}
	expected, err := ComputeCheckChar(g)
	if err != nil {
		return err
	}
	if g[14] != expected {
		return fmt.Errorf("gstin: carácter de control inválido: esperado %c, recibido %c", expected, g[14])
	}
	return nil
}

// ComputeCheckChar calcula el carácter de control sobre los 14 primeros caracteres.
func ComputeCheckChar(s string) (byte, error) {
	g := Normalize(s)
	if len(g) < 14 {
		return 0, fmt.Errorf("gstin: se requieren al menos 14 caracteres, se encontraron %d", len(g))
	}
	sum := 0
	for i := 0; i < 14; i++ {
		v := strings.IndexByte(charset, g[i])
		if v < 0 {
			return 0, fmt.Errorf("gstin: carácter no válido %q en la posición %d", g[i], i+1)
		}
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		p := v * factor
		sum += p/36 + p%36
	}
	return charset[(36-sum%36)%36], nil
}
