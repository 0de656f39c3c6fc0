package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Violaciones de reglas de negocio. El llamador debe tratarlas de forma
// explícita y presentarlas como rechazo al usuario, nunca como caída.
var (
	ErrSanLleno                = errors.New("el san no tiene cupos disponibles")
	ErrSanCerrado              = errors.New("el san no admite nuevas participaciones")
	ErrParticipacionDuplicada  = errors.New("el usuario ya participa en este san")
	ErrCupoNoDisponible        = errors.New("el cupo no está en estado disponible")
	ErrCupoSinCapacidad        = errors.New("no quedan cupos por asignar en el san")
	ErrTransicionInvalida      = errors.New("transición de estado no permitida")
	ErrTurnoNoElegible         = errors.New("existen turnos anteriores sin cumplir")
	ErrRifaCerrada             = errors.New("la rifa no admite compra de tickets")
	ErrStockInsuficiente       = errors.New("no hay tickets suficientes disponibles")
	ErrRifaSinTickets          = errors.New("la rifa no tiene tickets vendidos")
	ErrFacturaYaLiquidada      = errors.New("la factura no está pendiente")
	ErrPagoNoReintentable      = errors.New("el pago solo puede reintentarse desde fallido o cancelado")
	ErrUsuarioBloqueado        = errors.New("usuario bloqueado temporalmente por intentos fallidos")
	ErrCredencialesInvalidas   = errors.New("credenciales inválidas")
	ErrEmailRegistrado         = errors.New("el email ya está registrado")
	ErrObjetivoNoSoportado     = errors.New("tipo de objetivo no soportado")
	ErrRecursoNoEncontrado     = errors.New("recurso no encontrado")
	ErrOperacionNoAutorizada   = errors.New("operación reservada al organizador o administrador")
	ErrParticipacionInactiva   = errors.New("la participación no está activa")
)

// CampoInvalido es un problema puntual de entrada.
type CampoInvalido struct {
	Campo   string `json:"campo"`
	Detalle string `json:"detalle"`
}

// ValidationError agrupa problemas de entrada recuperables localmente.
type ValidationError struct {
	Campos []CampoInvalido
}

func (e *ValidationError) Error() string {
	partes := make([]string, 0, len(e.Campos))
	for _, c := range e.Campos {
		partes = append(partes, fmt.Sprintf("%s: %s", c.Campo, c.Detalle))
	}
	return "entrada inválida: " + strings.Join(partes, "; ")
}

// Agregar suma un problema de campo y devuelve el mismo error para encadenar.
func (e *ValidationError) Agregar(campo, detalle string) *ValidationError {
	e.Campos = append(e.Campos, CampoInvalido{Campo: campo, Detalle: detalle})
	return e
}

func (e *ValidationError) Vacio() bool { return len(e.Campos) == 0 }

// ConsistencyError señala una invariante entre entidades violada a mitad de
// transacción. Obliga a revertir la transacción completa.
type ConsistencyError struct {
	Detalle string
}

func (e *ConsistencyError) Error() string {
	return "inconsistencia detectada: " + e.Detalle
}

// EsConsistencia reporta si err encierra un ConsistencyError.
func EsConsistencia(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}
