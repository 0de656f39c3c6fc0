package dto

import "time"

type CrearComentarioRequestDTO struct {
	TipoObjetivo string `json:"tipo_objetivo" validate:"required,oneof=san rifa" example:"rifa"`
	ObjetivoID   int    `json:"objetivo_id" validate:"required" example:"3"`
	Texto        string `json:"texto" validate:"required,max=1000" example:"¿Cuándo es el sorteo?"`
}

type ComentarioResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	UsuarioID     int       `json:"usuario_id" example:"42"`
	TipoObjetivo  string    `json:"tipo_objetivo" example:"rifa"`
	ObjetivoID    int       `json:"objetivo_id" example:"3"`
	Texto         string    `json:"texto" example:"¿Cuándo es el sorteo?"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

type NotificacionResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	Titulo        string    `json:"titulo" example:"Pago confirmado"`
	Mensaje       string    `json:"mensaje" example:"Tu factura CUPO-7992739871 quedó confirmada."`
	TipoObjetivo  string    `json:"tipo_objetivo,omitempty" example:"cupo"`
	ObjetivoID    int       `json:"objetivo_id,omitempty" example:"3"`
	Leida         bool      `json:"leida" example:"false"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
