package domain

import "time"

// ConteoEstado es una fila de agregado estado → cantidad.
type ConteoEstado struct {
	Estado   string `json:"estado" db:"estado"`
	Cantidad int    `json:"cantidad" db:"cantidad"`
}

// ReporteGeneral es la foto operativa que consume el panel administrativo.
type ReporteGeneral struct {
	TotalUsuarios     int            `json:"total_usuarios"`
	SanesPorEstado    []ConteoEstado `json:"sanes_por_estado"`
	RifasPorEstado    []ConteoEstado `json:"rifas_por_estado"`
	FacturasPorEstado []ConteoEstado `json:"facturas_por_estado"`
	PagosPorEstado    []ConteoEstado `json:"pagos_por_estado"`
	MontoConfirmado   float64        `json:"monto_confirmado"`
	GeneradoEn        time.Time      `json:"generado_en"`
}
