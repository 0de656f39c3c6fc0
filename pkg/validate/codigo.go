package validate

import (
	"fmt"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const sufijoDigitos = 10

// NuevoCodigo genera un código con prefijo por tipo de objetivo y un sufijo
// numérico con dígito verificador de Luhn, p. ej. "CUPO-1234567897".
func NuevoCodigo(prefijo string) string {
	numero := goluhn.Generate(sufijoDigitos)
	return fmt.Sprintf("%s-%s", strings.ToUpper(prefijo), numero)
}

// EsCodigoValido verifica el dígito de control del sufijo numérico.
func EsCodigoValido(codigo string) bool {
	_, sufijo, ok := strings.Cut(codigo, "-")
	if !ok {
		return false
	}
	return goluhn.Validate(sufijo) == nil
}
