package dto

type CalcularSanRequestDTO struct {
	PrecioTotal        float64 `json:"precio_total" validate:"required,gt=0" example:"1200"`
	TotalParticipantes int     `json:"total_participantes" validate:"required,gte=2" example:"12"`
	FrecuenciaPago     string  `json:"frecuencia_pago" validate:"required" example:"mensual"`
	NumeroCuotas       int     `json:"numero_cuotas,omitempty" example:"12"`
	FechaInicio        string  `json:"fecha_inicio,omitempty" example:"2026-01-01"`
	FechaFin           string  `json:"fecha_fin,omitempty" example:"2026-12-31"`
}

type CalcularRifaRequestDTO struct {
	PrecioTicket float64 `json:"precio_ticket,omitempty" example:"10"`
	TotalTickets int     `json:"total_tickets,omitempty" example:"100"`
	ValorPremio  float64 `json:"valor_premio,omitempty" example:"500"`
}
