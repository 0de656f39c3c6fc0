// Package comunidad expone comentarios y notificaciones por HTTP.
package comunidad

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/dto"
	"github.com/jmorillo/sanrifa/pkg/auth"
	"github.com/jmorillo/sanrifa/pkg/utils"
)

type Service interface {
	CrearComentario(ctx context.Context, comentario *domain.Comentario) (*domain.Comentario, error)
	GetComentarios(ctx context.Context, tipoObjetivo string, objetivoID int) ([]domain.Comentario, error)
	EliminarComentario(ctx context.Context, id int) error
	GetNotificaciones(ctx context.Context, usuarioID int) ([]domain.Notificacion, error)
	MarcarLeida(ctx context.Context, id, usuarioID int) error
}

type ComunidadHandler struct {
	comunidadService Service
}

func New(comunidadService Service) *ComunidadHandler {
	return &ComunidadHandler{
		comunidadService: comunidadService,
	}
}

func respondError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, verr.Error())
	case errors.Is(err, domain.ErrObjetivoNoSoportado):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrRecursoNoEncontrado):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CrearComentario godoc
//
//	@Summary	Post a comment on a san or raffle
//	@Tags		Comunidad
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CrearComentarioRequestDTO	true	"Comment"
//	@Success	201		{object}	dto.ComentarioResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	422		{object}	utils.Response	"Empty, too long or unsupported target"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/comentarios [post]
func (h *ComunidadHandler) CrearComentario(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CrearComentarioRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comentario := &domain.Comentario{
		UsuarioID:    userID,
		TipoObjetivo: req.TipoObjetivo,
		ObjetivoID:   req.ObjetivoID,
		Texto:        req.Texto,
	}
	creado, err := h.comunidadService.CrearComentario(r.Context(), comentario)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ComentarioResponseDTO{
		ID:            creado.ID,
		UsuarioID:     creado.UsuarioID,
		TipoObjetivo:  creado.TipoObjetivo,
		ObjetivoID:    creado.ObjetivoID,
		Texto:         creado.Texto,
		FechaCreacion: creado.FechaCreacion,
	})
}

// Comentarios godoc
//
//	@Summary	List active comments of a target
//	@Tags		Comunidad
//	@Produce	json
//	@Security	BearerAuth
//	@Param		tipo		query		string	true	"Target type (san or rifa)"
//	@Param		objetivo	query		int		true	"Target ID"
//	@Success	200			{array}		dto.ComentarioResponseDTO
//	@Failure	400			{object}	utils.Response	"Missing query parameters"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/comentarios [get]
func (h *ComunidadHandler) Comentarios(w http.ResponseWriter, r *http.Request) {
	tipo := r.URL.Query().Get("tipo")
	objetivoID, err := strconv.Atoi(r.URL.Query().Get("objetivo"))
	if tipo == "" || err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "tipo and objetivo query parameters are required")
		return
	}

	comentarios, err := h.comunidadService.GetComentarios(r.Context(), tipo, objetivoID)
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]dto.ComentarioResponseDTO, 0, len(comentarios))
	for _, c := range comentarios {
		resp = append(resp, dto.ComentarioResponseDTO{
			ID:            c.ID,
			UsuarioID:     c.UsuarioID,
			TipoObjetivo:  c.TipoObjetivo,
			ObjetivoID:    c.ObjetivoID,
			Texto:         c.Texto,
			FechaCreacion: c.FechaCreacion,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// EliminarComentario godoc
//
//	@Summary		Remove a comment
//	@Description	Soft delete: the comment stays stored but stops being listed
//	@Tags			Comunidad
//	@Produce		json
//	@Security		BearerAuth
//	@Param			comentarioID	path	int	true	"Comment ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Comment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/comentarios/{comentarioID} [delete]
func (h *ComunidadHandler) EliminarComentario(w http.ResponseWriter, r *http.Request) {
	comentarioID, err := strconv.Atoi(chi.URLParam(r, "comentarioID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}
	if err := h.comunidadService.EliminarComentario(r.Context(), comentarioID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Notificaciones godoc
//
//	@Summary	List the authenticated user's notifications
//	@Tags		Comunidad
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.NotificacionResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notificaciones [get]
func (h *ComunidadHandler) Notificaciones(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notificaciones, err := h.comunidadService.GetNotificaciones(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]dto.NotificacionResponseDTO, 0, len(notificaciones))
	for _, n := range notificaciones {
		resp = append(resp, dto.NotificacionResponseDTO{
			ID:            n.ID,
			Titulo:        n.Titulo,
			Mensaje:       n.Mensaje,
			TipoObjetivo:  n.TipoObjetivo,
			ObjetivoID:    n.ObjetivoID,
			Leida:         n.Leida,
			FechaCreacion: n.FechaCreacion,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// MarcarLeida godoc
//
//	@Summary	Mark a notification as read
//	@Tags		Comunidad
//	@Produce	json
//	@Security	BearerAuth
//	@Param		notificacionID	path	int	true	"Notification ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notificaciones/{notificacionID}/leida [post]
func (h *ComunidadHandler) MarcarLeida(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	notificacionID, err := strconv.Atoi(chi.URLParam(r, "notificacionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}
	if err := h.comunidadService.MarcarLeida(r.Context(), notificacionID, userID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
