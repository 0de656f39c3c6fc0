package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/dto"
	"github.com/jmorillo/sanrifa/pkg/auth"
	"github.com/jmorillo/sanrifa/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, usuario *domain.Usuario, password string) (*domain.Usuario, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Usuario, error)
	GenerateToken(userID int, rol string) (string, error)
	GetUsuario(ctx context.Context, id int) (*domain.Usuario, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with email and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	usuario := &domain.Usuario{
		Email:    req.Email,
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Cedula:   req.Cedula,
	}
	nuevo, err := h.authService.Register(r.Context(), usuario, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailRegistrado) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.GenerateToken(nuevo.ID, nuevo.Rol)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		423		{object}	utils.Response	"Account temporarily locked"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	usuario, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsuarioBloqueado):
			utils.RespondWithError(w, http.StatusLocked, err.Error())
		case errors.Is(err, domain.ErrCredencialesInvalidas):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(usuario.ID, usuario.Rol)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
	})
}

// Perfil godoc
//
//	@Summary		Get the authenticated user profile
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PerfilResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/perfil [get]
func (h *AuthHandler) Perfil(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	usuario, err := h.authService.GetUsuario(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PerfilResponseDTO{
		ID:         usuario.ID,
		Email:      usuario.Email,
		Nombre:     usuario.Nombre,
		Rol:        usuario.Rol,
		Reputacion: usuario.Reputacion,
		Verificado: usuario.Verificado,
	})
}
