// Package facturas expone las operaciones HTTP de facturación: emisión,
// confirmación y rechazo de pagos, y cancelación.
package facturas

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
	CrearFactura(ctx context.Context, factura *domain.Factura) (*domain.Factura, error)
	ConfirmarPago(ctx context.Context, facturaID int, monto *float64, metodoPago string) (*domain.Factura, error)
	RechazarPago(ctx context.Context, facturaID int, notas string) (*domain.Factura, error)
	CancelarFactura(ctx context.Context, facturaID int) (*domain.Factura, error)
	GetFactura(ctx context.Context, facturaID int) (*domain.Factura, error)
	GetFacturas(ctx context.Context, usuarioID int) ([]domain.Factura, error)
}

type FacturaHandler struct {
	facturaService Service
}

func New(facturaService Service) *FacturaHandler {
	return &FacturaHandler{
		facturaService: facturaService,
	}
}

func facturaToDTO(f *domain.Factura) dto.FacturaResponseDTO {
	return dto.FacturaResponseDTO{
		ID:               f.ID,
		Codigo:           f.Codigo,
		UsuarioID:        f.UsuarioID,
		TipoObjetivo:     f.TipoObjetivo,
		ObjetivoID:       f.ObjetivoID,
		MontoTotal:       f.MontoTotal,
		MontoPagado:      f.MontoPagado,
		EstadoPago:       f.EstadoPago,
		MetodoPago:       f.MetodoPago,
		FechaEmision:     f.FechaEmision,
		FechaVencimiento: f.FechaVencimiento,
		FechaPago:        f.FechaPago,
		Notas:            f.Notas,
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
	case errors.Is(err, domain.ErrObjetivoNoSoportado):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrFacturaYaLiquidada),
		errors.Is(err, domain.ErrTransicionInvalida):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Create godoc
//
//	@Summary		Issue an invoice
//	@Description	Create a pending invoice against a san, raffle or cupo
//	@Tags			Facturas
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CrearFacturaRequestDTO	true	"Invoice definition"
//	@Success		201		{object}	dto.FacturaResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Unsupported target or invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/facturas [post]
func (h *FacturaHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CrearFacturaRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	factura := &domain.Factura{
		UsuarioID:    userID,
		TipoObjetivo: req.TipoObjetivo,
		ObjetivoID:   req.ObjetivoID,
		MontoTotal:   req.MontoTotal,
		Notas:        req.Notas,
	}
	creada, err := h.facturaService.CrearFactura(r.Context(), factura)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, facturaToDTO(creada))
}

// List godoc
//
//	@Summary	List the authenticated user's invoices
//	@Tags		Facturas
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.FacturaResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/facturas [get]
func (h *FacturaHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	facturas, err := h.facturaService.GetFacturas(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]dto.FacturaResponseDTO, 0, len(facturas))
	for i := range facturas {
		resp = append(resp, facturaToDTO(&facturas[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get an invoice by ID
//	@Tags		Facturas
//	@Produce	json
//	@Security	BearerAuth
//	@Param		facturaID	path		int	true	"Invoice ID"
//	@Success	200			{object}	dto.FacturaResponseDTO
//	@Failure	404			{object}	utils.Response	"Invoice not found"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/facturas/{facturaID} [get]
func (h *FacturaHandler) Get(w http.ResponseWriter, r *http.Request) {
	facturaID, err := strconv.Atoi(chi.URLParam(r, "facturaID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}
	factura, err := h.facturaService.GetFactura(r.Context(), facturaID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, facturaToDTO(factura))
}

// Confirmar godoc
//
//	@Summary		Confirm an invoice payment
//	@Description	Settle a pending invoice; for cupo invoices the cupo and participation advance atomically
//	@Tags			Facturas
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			facturaID	path		int							true	"Invoice ID"
//	@Param			request		body		dto.ConfirmarPagoRequestDTO	true	"Payment details"
//	@Success		200			{object}	dto.FacturaResponseDTO
//	@Failure		404			{object}	utils.Response	"Invoice not found"
//	@Failure		409			{object}	utils.Response	"Invoice is not pending"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/facturas/{facturaID}/confirmar [post]
func (h *FacturaHandler) Confirmar(w http.ResponseWriter, r *http.Request) {
	facturaID, err := strconv.Atoi(chi.URLParam(r, "facturaID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}
	var req dto.ConfirmarPagoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	factura, err := h.facturaService.ConfirmarPago(r.Context(), facturaID, req.Monto, req.MetodoPago)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, facturaToDTO(factura))
}

// Rechazar godoc
//
//	@Summary	Reject an invoice payment
//	@Tags		Facturas
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		facturaID	path		int							true	"Invoice ID"
//	@Param		request		body		dto.RechazarPagoRequestDTO	true	"Rejection notes"
//	@Success	200			{object}	dto.FacturaResponseDTO
//	@Failure	404			{object}	utils.Response	"Invoice not found"
//	@Failure	409			{object}	utils.Response	"Invoice is not pending"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/facturas/{facturaID}/rechazar [post]
func (h *FacturaHandler) Rechazar(w http.ResponseWriter, r *http.Request) {
	facturaID, err := strconv.Atoi(chi.URLParam(r, "facturaID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}
	var req dto.RechazarPagoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	factura, err := h.facturaService.RechazarPago(r.Context(), facturaID, req.Notas)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, facturaToDTO(factura))
}

// Cancelar godoc
//
//	@Summary	Cancel a pending invoice
//	@Tags		Facturas
//	@Produce	json
//	@Security	BearerAuth
//	@Param		facturaID	path		int	true	"Invoice ID"
//	@Success	200			{object}	dto.FacturaResponseDTO
//	@Failure	404			{object}	utils.Response	"Invoice not found"
//	@Failure	409			{object}	utils.Response	"Invoice is not pending"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/facturas/{facturaID}/cancelar [post]
func (h *FacturaHandler) Cancelar(w http.ResponseWriter, r *http.Request) {
	facturaID, err := strconv.Atoi(chi.URLParam(r, "facturaID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}
	factura, err := h.facturaService.CancelarFactura(r.Context(), facturaID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, facturaToDTO(factura))
}
