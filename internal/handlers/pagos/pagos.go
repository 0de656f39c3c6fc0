// Package pagos expone las operaciones HTTP de pagos simulados: creación,
// consulta y reintento. El procesamiento lo hace la pasarela en segundo plano.
package pagos

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
	CrearPago(ctx context.Context, usuarioID, facturaID int, metodoPago, moneda string) (*domain.PagoSimulado, error)
	GetPago(ctx context.Context, pagoID int) (*domain.PagoSimulado, error)
	ReintentarPago(ctx context.Context, usuarioID, pagoID int) (*domain.PagoSimulado, error)
}

type PagoHandler struct {
	pagoService Service
}

func New(pagoService Service) *PagoHandler {
	return &PagoHandler{
		pagoService: pagoService,
	}
}

func pagoToDTO(p *domain.PagoSimulado) dto.PagoResponseDTO {
	return dto.PagoResponseDTO{
		ID:                  p.ID,
		CodigoTransaccion:   p.CodigoTransaccion,
		UsuarioID:           p.UsuarioID,
		FacturaID:           p.FacturaID,
		MetodoPago:          p.MetodoPago,
		Monto:               p.Monto,
		Moneda:              p.Moneda,
		Estado:              p.Estado,
		ReferenciaExterna:   p.ReferenciaExterna,
		FechaProcesamiento:  p.FechaProcesamiento,
		TiempoProcesamiento: p.TiempoProcesamiento,
		Intentos:            p.Intentos,
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
	case errors.Is(err, domain.ErrFacturaYaLiquidada):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPagoNoReintentable):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Create godoc
//
//	@Summary		Create a simulated payment for an invoice
//	@Description	Queue a pending payment; the background gateway will process it
//	@Tags			Pagos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CrearPagoRequestDTO	true	"Payment request"
//	@Success		202		{object}	dto.PagoResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Invoice belongs to another user"
//	@Failure		404		{object}	utils.Response	"Invoice not found"
//	@Failure		409		{object}	utils.Response	"Invoice is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pagos [post]
func (h *PagoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CrearPagoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FacturaID == 0 || req.MetodoPago == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "factura_id and metodo_pago are required")
		return
	}

	pago, err := h.pagoService.CrearPago(r.Context(), userID, req.FacturaID, req.MetodoPago, req.Moneda)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, pagoToDTO(pago))
}

// Get godoc
//
//	@Summary	Get a payment by ID
//	@Tags		Pagos
//	@Produce	json
//	@Security	BearerAuth
//	@Param		pagoID	path		int	true	"Payment ID"
//	@Success	200		{object}	dto.PagoResponseDTO
//	@Failure	404		{object}	utils.Response	"Payment not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/pagos/{pagoID} [get]
func (h *PagoHandler) Get(w http.ResponseWriter, r *http.Request) {
	pagoID, err := strconv.Atoi(chi.URLParam(r, "pagoID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}
	pago, err := h.pagoService.GetPago(r.Context(), pagoID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, pagoToDTO(pago))
}

// Reintentar godoc
//
//	@Summary		Retry a failed or cancelled payment
//	@Description	Requeue the payment as pending, keeping its attempt counter
//	@Tags			Pagos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pagoID	path		int	true	"Payment ID"
//	@Success		202		{object}	dto.PagoResponseDTO
//	@Failure		403		{object}	utils.Response	"Payment belongs to another user"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		422		{object}	utils.Response	"Payment is not retryable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pagos/{pagoID}/reintentar [post]
func (h *PagoHandler) Reintentar(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	pagoID, err := strconv.Atoi(chi.URLParam(r, "pagoID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	pago, err := h.pagoService.ReintentarPago(r.Context(), userID, pagoID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, pagoToDTO(pago))
}
