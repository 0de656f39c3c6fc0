package dto

import "time"

type CrearSanRequestDTO struct {
	Nombre             string  `json:"nombre" validate:"required" example:"San de fin de año"`
	Descripcion        string  `json:"descripcion,omitempty"`
	PrecioTotal        float64 `json:"precio_total" validate:"required,gt=0" example:"1200"`
	NumeroCuotas       int     `json:"numero_cuotas" validate:"required,gt=0" example:"12"`
	MontoCuota         float64 `json:"monto_cuota,omitempty" example:"100"`
	FrecuenciaPago     string  `json:"frecuencia_pago" validate:"required" example:"mensual"`
	TotalParticipantes int     `json:"total_participantes" validate:"required,gte=2" example:"12"`
	FechaInicio        string  `json:"fecha_inicio" example:"2026-01-01"`
	FechaFin           string  `json:"fecha_fin" example:"2026-12-31"`
}

type SanResponseDTO struct {
	ID                    int     `json:"id" example:"7"`
	Nombre                string  `json:"nombre" example:"San de fin de año"`
	Descripcion           string  `json:"descripcion,omitempty"`
	OrganizadorID         int     `json:"organizador_id" example:"1"`
	PrecioTotal           float64 `json:"precio_total" example:"1200"`
	NumeroCuotas          int     `json:"numero_cuotas" example:"12"`
	MontoCuota            float64 `json:"monto_cuota" example:"100"`
	FrecuenciaPago        string  `json:"frecuencia_pago" example:"mensual"`
	TotalParticipantes    int     `json:"total_participantes" example:"12"`
	ParticipantesActuales int     `json:"participantes_actuales" example:"3"`
	CuposDisponibles      int     `json:"cupos_disponibles" example:"9"`
	Estado                string  `json:"estado" example:"activo"`
	FechaInicio           string  `json:"fecha_inicio" example:"2026-01-01"`
	FechaFin              string  `json:"fecha_fin" example:"2026-12-31"`
}

type ParticipacionResponseDTO struct {
	ID            int    `json:"id" example:"11"`
	SanID         int    `json:"san_id" example:"7"`
	UsuarioID     int    `json:"usuario_id" example:"42"`
	OrdenCobro    int    `json:"orden_cobro" example:"4"`
	CuotasPagadas int    `json:"cuotas_pagadas" example:"2"`
	Activa        bool   `json:"activa" example:"true"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type AsignarCupoRequestDTO struct {
	ParticipacionID int `json:"participacion_id" validate:"required" example:"11"`
}

type CupoResponseDTO struct {
	ID               int        `json:"id" example:"3"`
	SanID            int        `json:"san_id" example:"7"`
	ParticipacionID  *int       `json:"participacion_id,omitempty" example:"11"`
	NumeroSemana     int        `json:"numero_semana" example:"1"`
	Estado           string     `json:"estado" example:"asignado"`
	MontoCuota       float64    `json:"monto_cuota" example:"100"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento,omitempty"`
	FechaPago        *time.Time `json:"fecha_pago,omitempty"`
}

type TurnoResponseDTO struct {
	ID              int        `json:"id" example:"2"`
	SanID           int        `json:"san_id" example:"7"`
	ParticipacionID int        `json:"participacion_id" example:"11"`
	NumeroTurno     int        `json:"numero_turno" example:"2"`
	Estado          string     `json:"estado" example:"activo"`
	FechaActivacion *time.Time `json:"fecha_activacion,omitempty"`
	FechaCumplido   *time.Time `json:"fecha_cumplido,omitempty"`
}
