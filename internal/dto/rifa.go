package dto

type CrearRifaRequestDTO struct {
	Nombre       string  `json:"nombre" validate:"required" example:"Rifa del televisor"`
	Descripcion  string  `json:"descripcion,omitempty"`
	PrecioTicket float64 `json:"precio_ticket" validate:"required,gt=0" example:"10"`
	TotalTickets int     `json:"total_tickets" validate:"required,gt=0" example:"100"`
	ValorPremio  float64 `json:"valor_premio,omitempty" example:"500"`
	FechaFin     string  `json:"fecha_fin,omitempty" example:"2026-06-30"`
}

type RifaResponseDTO struct {
	ID                 int     `json:"id" example:"3"`
	Nombre             string  `json:"nombre" example:"Rifa del televisor"`
	Descripcion        string  `json:"descripcion,omitempty"`
	OrganizadorID      int     `json:"organizador_id" example:"1"`
	PrecioTicket       float64 `json:"precio_ticket" example:"10"`
	TotalTickets       int     `json:"total_tickets" example:"100"`
	TicketsDisponibles int     `json:"tickets_disponibles" example:"40"`
	ValorPremio        float64 `json:"valor_premio" example:"500"`
	Estado             string  `json:"estado" example:"activa"`
	GanadorID          *int    `json:"ganador_id,omitempty" example:"20"`
}

type ComprarTicketsRequestDTO struct {
	Cantidad int `json:"cantidad" validate:"required,gt=0" example:"3"`
}

type TicketResponseDTO struct {
	ID           int     `json:"id" example:"61"`
	RifaID       int     `json:"rifa_id" example:"3"`
	UsuarioID    int     `json:"usuario_id" example:"42"`
	Numero       int     `json:"numero" example:"61"`
	Codigo       string  `json:"codigo" example:"TCK-7992739871"`
	PrecioPagado float64 `json:"precio_pagado" example:"10"`
}

type CompraTicketsResponseDTO struct {
	Tickets []TicketResponseDTO `json:"tickets"`
	Factura FacturaResponseDTO  `json:"factura"`
}

type SorteoResponseDTO struct {
	RifaID    int    `json:"rifa_id" example:"3"`
	Estado    string `json:"estado" example:"finalizada"`
	GanadorID int    `json:"ganador_id" example:"20"`
}
