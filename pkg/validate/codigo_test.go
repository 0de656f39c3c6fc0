package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNuevoCodigo(t *testing.T) {
	codigo := NuevoCodigo("cupo")

	assert.True(t, strings.HasPrefix(codigo, "CUPO-"))
	assert.Len(t, codigo, len("CUPO-")+sufijoDigitos)
	assert.True(t, EsCodigoValido(codigo))
}

func TestNuevoCodigo_Unicos(t *testing.T) {
	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		codigo := NuevoCodigo("SAN")
		assert.False(t, vistos[codigo])
		vistos[codigo] = true
	}
}

func TestEsCodigoValido(t *testing.T) {
	tests := []struct {
		name   string
		codigo string
		want   bool
	}{
		{name: "sin separador", codigo: "SAN123", want: false},
		{name: "sufijo no numerico", codigo: "SAN-ABC", want: false},
		{name: "digito de control incorrecto", codigo: "SAN-79927398710", want: false},
		{name: "digito de control correcto", codigo: "SAN-79927398713", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EsCodigoValido(tt.codigo))
		})
	}
}
