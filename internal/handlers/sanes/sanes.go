// Package sanes expone las operaciones HTTP del ciclo de vida de un san:
// creación, activación, incorporación, asignación de cupos y turnos de cobro.
package sanes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/dto"
	"github.com/jmorillo/sanrifa/pkg/auth"
	"github.com/jmorillo/sanrifa/pkg/utils"
)

type Service interface {
	CrearSan(ctx context.Context, san *domain.San) (*domain.San, error)
	ActivarSan(ctx context.Context, sanID, usuarioID int) (*domain.San, error)
	JoinSan(ctx context.Context, sanID, usuarioID int) (*domain.Participacion, error)
	AsignarCupo(ctx context.Context, sanID, participacionID int) (*domain.Cupo, error)
	ActivarTurno(ctx context.Context, sanID, numeroTurno int) (*domain.TurnoSan, error)
	CumplirTurno(ctx context.Context, sanID, numeroTurno int) (*domain.TurnoSan, error)
	GetSan(ctx context.Context, sanID int) (*domain.San, error)
	ListSanes(ctx context.Context) ([]domain.San, error)
	GetTurnos(ctx context.Context, sanID int) ([]domain.TurnoSan, error)
}

type SanHandler struct {
	sanService Service
}

func New(sanService Service) *SanHandler {
	return &SanHandler{
		sanService: sanService,
	}
}

const formatoFecha = "2006-01-02"

func sanToDTO(san *domain.San) dto.SanResponseDTO {
	return dto.SanResponseDTO{
		ID:                    san.ID,
		Nombre:                san.Nombre,
		Descripcion:           san.Descripcion,
		OrganizadorID:         san.OrganizadorID,
		PrecioTotal:           san.PrecioTotal,
		NumeroCuotas:          san.NumeroCuotas,
		MontoCuota:            san.MontoCuota,
		FrecuenciaPago:        san.FrecuenciaPago,
		TotalParticipantes:    san.TotalParticipantes,
		ParticipantesActuales: san.ParticipantesActuales,
		CuposDisponibles:      san.CuposDisponibles(),
		Estado:                san.Estado,
		FechaInicio:           san.FechaInicio.Format(formatoFecha),
		FechaFin:              san.FechaFin.Format(formatoFecha),
	}
}

func turnoToDTO(t *domain.TurnoSan) dto.TurnoResponseDTO {
	return dto.TurnoResponseDTO{
		ID:              t.ID,
		SanID:           t.SanID,
		ParticipacionID: t.ParticipacionID,
		NumeroTurno:     t.NumeroTurno,
		Estado:          t.Estado,
		FechaActivacion: t.FechaActivacion,
		FechaCumplido:   t.FechaCumplido,
	}
}

func respondError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, verr.Error())
	case errors.Is(err, domain.ErrRecursoNoEncontrado):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrOperacionNoAutorizada):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrSanLleno),
		errors.Is(err, domain.ErrSanCerrado),
		errors.Is(err, domain.ErrParticipacionDuplicada),
		errors.Is(err, domain.ErrParticipacionInactiva),
		errors.Is(err, domain.ErrCupoSinCapacidad),
		errors.Is(err, domain.ErrTransicionInvalida),
		errors.Is(err, domain.ErrTurnoNoElegible):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Create godoc
//
//	@Summary		Create a san in draft state
//	@Description	Validate the san parameters against the viability calculator and persist it
//	@Tags			Sanes
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CrearSanRequestDTO	true	"San definition"
//	@Success		201		{object}	dto.SanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Parameters not viable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sanes [post]
func (h *SanHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CrearSanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	san := &domain.San{
		Nombre:             req.Nombre,
		Descripcion:        req.Descripcion,
		OrganizadorID:      userID,
		PrecioTotal:        req.PrecioTotal,
		NumeroCuotas:       req.NumeroCuotas,
		MontoCuota:         req.MontoCuota,
		FrecuenciaPago:     req.FrecuenciaPago,
		TotalParticipantes: req.TotalParticipantes,
	}
	if req.FechaInicio != "" {
		fecha, err := time.Parse(formatoFecha, req.FechaInicio)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_inicio, expected YYYY-MM-DD")
			return
		}
		san.FechaInicio = fecha
	}
	if req.FechaFin != "" {
		fecha, err := time.Parse(formatoFecha, req.FechaFin)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_fin, expected YYYY-MM-DD")
			return
		}
		san.FechaFin = fecha
	}

	creado, err := h.sanService.CrearSan(r.Context(), san)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, sanToDTO(creado))
}

// List godoc
//
//	@Summary	List sanes
//	@Tags		Sanes
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.SanResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/sanes [get]
func (h *SanHandler) List(w http.ResponseWriter, r *http.Request) {
	sanes, err := h.sanService.ListSanes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]dto.SanResponseDTO, 0, len(sanes))
	for i := range sanes {
		resp = append(resp, sanToDTO(&sanes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get a san by ID
//	@Tags		Sanes
//	@Produce	json
//	@Security	BearerAuth
//	@Param		sanID	path		int	true	"San ID"
//	@Success	200		{object}	dto.SanResponseDTO
//	@Failure	404		{object}	utils.Response	"San not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/sanes/{sanID} [get]
func (h *SanHandler) Get(w http.ResponseWriter, r *http.Request) {
	sanID, err := strconv.Atoi(chi.URLParam(r, "sanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid san ID")
		return
	}
	san, err := h.sanService.GetSan(r.Context(), sanID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sanToDTO(san))
}

// Activar godoc
//
//	@Summary		Activate a san
//	@Description	Open the san to participants and materialize its cupos
//	@Tags			Sanes
//	@Produce		json
//	@Security		BearerAuth
//	@Param			sanID	path		int	true	"San ID"
//	@Success		200		{object}	dto.SanResponseDTO
//	@Failure		403		{object}	utils.Response	"Only the organizer can activate"
//	@Failure		404		{object}	utils.Response	"San not found"
//	@Failure		409		{object}	utils.Response	"San is not in draft state"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sanes/{sanID}/activar [post]
func (h *SanHandler) Activar(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sanID, err := strconv.Atoi(chi.URLParam(r, "sanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid san ID")
		return
	}

	san, err := h.sanService.ActivarSan(r.Context(), sanID, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sanToDTO(san))
}

// Join godoc
//
//	@Summary		Join an active san
//	@Description	Register the authenticated user as a participant with the next collection order
//	@Tags			Sanes
//	@Produce		json
//	@Security		BearerAuth
//	@Param			sanID	path		int	true	"San ID"
//	@Success		201		{object}	dto.ParticipacionResponseDTO
//	@Failure		404		{object}	utils.Response	"San not found"
//	@Failure		409		{object}	utils.Response	"San closed, full or already joined"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sanes/{sanID}/join [post]
func (h *SanHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sanID, err := strconv.Atoi(chi.URLParam(r, "sanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid san ID")
		return
	}

	participacion, err := h.sanService.JoinSan(r.Context(), sanID, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ParticipacionResponseDTO{
		ID:            participacion.ID,
		SanID:         participacion.SanID,
		UsuarioID:     participacion.UsuarioID,
		OrdenCobro:    participacion.OrdenCobro,
		CuotasPagadas: participacion.CuotasPagadas,
		Activa:        participacion.Activa,
	})
}

// AsignarCupo godoc
//
//	@Summary		Assign the lowest available cupo to a participation
//	@Tags			Sanes
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			sanID	path		int							true	"San ID"
//	@Param			request	body		dto.AsignarCupoRequestDTO	true	"Participation"
//	@Success		200		{object}	dto.CupoResponseDTO
//	@Failure		404		{object}	utils.Response	"San or participation not found"
//	@Failure		409		{object}	utils.Response	"No cupos left to assign"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sanes/{sanID}/cupos/asignar [post]
func (h *SanHandler) AsignarCupo(w http.ResponseWriter, r *http.Request) {
	sanID, err := strconv.Atoi(chi.URLParam(r, "sanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid san ID")
		return
	}
	var req dto.AsignarCupoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cupo, err := h.sanService.AsignarCupo(r.Context(), sanID, req.ParticipacionID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CupoResponseDTO{
		ID:               cupo.ID,
		SanID:            cupo.SanID,
		ParticipacionID:  cupo.ParticipacionID,
		NumeroSemana:     cupo.NumeroSemana,
		Estado:           cupo.Estado,
		MontoCuota:       cupo.MontoCuota,
		FechaVencimiento: cupo.FechaVencimiento,
		FechaPago:        cupo.FechaPago,
	})
}

// Turnos godoc
//
//	@Summary	List the collection turns of a san
//	@Tags		Sanes
//	@Produce	json
//	@Security	BearerAuth
//	@Param		sanID	path		int	true	"San ID"
//	@Success	200		{array}		dto.TurnoResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/sanes/{sanID}/turnos [get]
func (h *SanHandler) Turnos(w http.ResponseWriter, r *http.Request) {
	sanID, err := strconv.Atoi(chi.URLParam(r, "sanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid san ID")
		return
	}
	turnos, err := h.sanService.GetTurnos(r.Context(), sanID)
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]dto.TurnoResponseDTO, 0, len(turnos))
	for i := range turnos {
		resp = append(resp, turnoToDTO(&turnos[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ActivarTurno godoc
//
//	@Summary		Activate a collection turn
//	@Description	A turn activates only when every lower-numbered turn is fulfilled
//	@Tags			Sanes
//	@Produce		json
//	@Security		BearerAuth
//	@Param			sanID	path		int	true	"San ID"
//	@Param			numero	path		int	true	"Turn number"
//	@Success		200		{object}	dto.TurnoResponseDTO
//	@Failure		404		{object}	utils.Response	"Turn not found"
//	@Failure		409		{object}	utils.Response	"Turn not eligible"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sanes/{sanID}/turnos/{numero}/activar [post]
func (h *SanHandler) ActivarTurno(w http.ResponseWriter, r *http.Request) {
	sanID, err := strconv.Atoi(chi.URLParam(r, "sanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid san ID")
		return
	}
	numero, err := strconv.Atoi(chi.URLParam(r, "numero"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid turn number")
		return
	}

	turno, err := h.sanService.ActivarTurno(r.Context(), sanID, numero)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, turnoToDTO(turno))
}

// CumplirTurno godoc
//
//	@Summary		Mark an active turn as fulfilled
//	@Description	Fulfilling the last turn finalizes the san
//	@Tags			Sanes
//	@Produce		json
//	@Security		BearerAuth
//	@Param			sanID	path		int	true	"San ID"
//	@Param			numero	path		int	true	"Turn number"
//	@Success		200		{object}	dto.TurnoResponseDTO
//	@Failure		404		{object}	utils.Response	"Turn not found"
//	@Failure		409		{object}	utils.Response	"Turn is not active"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sanes/{sanID}/turnos/{numero}/cumplir [post]
func (h *SanHandler) CumplirTurno(w http.ResponseWriter, r *http.Request) {
	sanID, err := strconv.Atoi(chi.URLParam(r, "sanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid san ID")
		return
	}
	numero, err := strconv.Atoi(chi.URLParam(r, "numero"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid turn number")
		return
	}

	turno, err := h.sanService.CumplirTurno(r.Context(), sanID, numero)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, turnoToDTO(turno))
}
