package dto

import "time"

type CrearFacturaRequestDTO struct {
	TipoObjetivo string  `json:"tipo_objetivo" validate:"required,oneof=san rifa cupo" example:"cupo"`
	ObjetivoID   int     `json:"objetivo_id" validate:"required" example:"3"`
	MontoTotal   float64 `json:"monto_total" validate:"required,gt=0" example:"100"`
	Notas        string  `json:"notas,omitempty"`
}

type ConfirmarPagoRequestDTO struct {
	Monto      *float64 `json:"monto,omitempty" example:"100"`
	MetodoPago string   `json:"metodo_pago,omitempty" example:"transferencia"`
}

type RechazarPagoRequestDTO struct {
	Notas string `json:"notas,omitempty" example:"fondos insuficientes"`
}

type FacturaResponseDTO struct {
	ID               int        `json:"id" example:"5"`
	Codigo           string     `json:"codigo" example:"CUPO-7992739871"`
	UsuarioID        int        `json:"usuario_id" example:"42"`
	TipoObjetivo     string     `json:"tipo_objetivo" example:"cupo"`
	ObjetivoID       int        `json:"objetivo_id" example:"3"`
	MontoTotal       float64    `json:"monto_total" example:"100"`
	MontoPagado      float64    `json:"monto_pagado" example:"0"`
	EstadoPago       string     `json:"estado_pago" example:"pendiente"`
	MetodoPago       string     `json:"metodo_pago,omitempty" example:"transferencia"`
	FechaEmision     time.Time  `json:"fecha_emision"`
	FechaVencimiento time.Time  `json:"fecha_vencimiento"`
	FechaPago        *time.Time `json:"fecha_pago,omitempty"`
	Notas            string     `json:"notas,omitempty"`
}

type CrearPagoRequestDTO struct {
	FacturaID  int    `json:"factura_id" validate:"required" example:"5"`
	MetodoPago string `json:"metodo_pago" validate:"required" example:"tarjeta"`
	Moneda     string `json:"moneda,omitempty" example:"USD"`
}

type PagoResponseDTO struct {
	ID                  int        `json:"id" example:"8"`
	CodigoTransaccion   string     `json:"codigo_transaccion" example:"PAG-7992739871"`
	UsuarioID           int        `json:"usuario_id" example:"42"`
	FacturaID           int        `json:"factura_id" example:"5"`
	MetodoPago          string     `json:"metodo_pago" example:"tarjeta"`
	Monto               float64    `json:"monto" example:"100"`
	Moneda              string     `json:"moneda" example:"USD"`
	Estado              string     `json:"estado" example:"pendiente"`
	ReferenciaExterna   string     `json:"referencia_externa,omitempty" example:"REF-7992739871"`
	FechaProcesamiento  *time.Time `json:"fecha_procesamiento,omitempty"`
	TiempoProcesamiento int        `json:"tiempo_procesamiento,omitempty" example:"1200"`
	Intentos            int        `json:"intentos" example:"1"`
}
