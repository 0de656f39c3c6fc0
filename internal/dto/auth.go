package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Nombre   string `json:"nombre" validate:"required,min=2,max=100" example:"Ana Pérez"`
	Password string `json:"password" validate:"required,min=8"`
	Telefono string `json:"telefono,omitempty" example:"+18095551234"`
	Cedula   string `json:"cedula,omitempty" example:"001-1234567-8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type PerfilResponseDTO struct {
	ID         int     `json:"id" example:"1"`
	Email      string  `json:"email" example:"ana@example.com"`
	Nombre     string  `json:"nombre" example:"Ana Pérez"`
	Rol        string  `json:"rol" example:"participante"`
	Reputacion float64 `json:"reputacion" example:"4.5"`
	Verificado bool    `json:"verificado" example:"false"`
}
