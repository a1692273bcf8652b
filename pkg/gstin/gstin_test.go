package gstin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/pkg/gstin"
)

func TestValidate_Validos(t *testing.T) {
	for _, g := range []string{"27AAPFU0939F1ZV", "29ABCDE1234F1ZW", "09aaach7409r1zz", " 27AAPFU0939F1ZV "} {
		assert.NoError(t, gstin.Validate(g), g)
	}
}

func TestValidate_Invalidos(t *testing.T) {
	cases := map[string]string{
		"longitud":           "27AAPFU0939F1Z",
		"formato":            "2AAAPFU0939F1ZV",
		"sin Z":              "27AAPFU0939F1XV",
		"control incorrecto": "27AAPFU0939F1Z5",
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, gstin.Validate(g))
		})
	}
}

func TestComputeCheckChar(t *testing.T) {
	c, err := gstin.ComputeCheckChar("27AAPFU0939F1Z")
	require.NoError(t, err)
	assert.Equal(t, byte('V'), c)

	_, err = gstin.ComputeCheckChar("27AAP")
	assert.Error(t, err)
}
