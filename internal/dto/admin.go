package dto

import "time"

type RegistroResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	UsuarioID     *int      `json:"usuario_id,omitempty" example:"42"`
	Accion        string    `json:"accion" example:"factura_confirmada"`
	Nivel         string    `json:"nivel" example:"info"`
	Descripcion   string    `json:"descripcion,omitempty"`
	TipoObjetivo  string    `json:"tipo_objetivo,omitempty" example:"cupo"`
	ObjetivoID    int       `json:"objetivo_id,omitempty" example:"3"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
