// Package rifas expone las operaciones HTTP de rifas: creación, compra de
// tickets con facturación y sorteo del ganador.
package rifas

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
	CrearRifa(ctx context.Context, rifa *domain.Rifa) (*domain.Rifa, error)
	ComprarTickets(ctx context.Context, rifaID, usuarioID, cantidad int) ([]domain.Ticket, *domain.Factura, error)
	SortearGanador(ctx context.Context, rifaID, usuarioID int) (*domain.Rifa, error)
	GetRifa(ctx context.Context, rifaID int) (*domain.Rifa, error)
	ListRifas(ctx context.Context) ([]domain.Rifa, error)
	GetTickets(ctx context.Context, rifaID int) ([]domain.Ticket, error)
}

type RifaHandler struct {
	rifaService Service
}

func New(rifaService Service) *RifaHandler {
	return &RifaHandler{
		rifaService: rifaService,
	}
}

func rifaToDTO(rifa *domain.Rifa) dto.RifaResponseDTO {
	return dto.RifaResponseDTO{
		ID:                 rifa.ID,
		Nombre:             rifa.Nombre,
		Descripcion:        rifa.Descripcion,
		OrganizadorID:      rifa.OrganizadorID,
		PrecioTicket:       rifa.PrecioTicket,
		TotalTickets:       rifa.TotalTickets,
		TicketsDisponibles: rifa.TicketsDisponibles,
		ValorPremio:        rifa.ValorPremio,
		Estado:             rifa.Estado,
		GanadorID:          rifa.GanadorID,
	}
}

func ticketToDTO(t *domain.Ticket) dto.TicketResponseDTO {
	return dto.TicketResponseDTO{
		ID:           t.ID,
		RifaID:       t.RifaID,
		UsuarioID:    t.UsuarioID,
		Numero:       t.Numero,
		Codigo:       t.Codigo,
		PrecioPagado: t.PrecioPagado,
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
	case errors.Is(err, domain.ErrRifaCerrada),
		errors.Is(err, domain.ErrRifaSinTickets),
		errors.Is(err, domain.ErrTransicionInvalida):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrStockInsuficiente):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Create godoc
//
//	@Summary		Create a raffle
//	@Description	Validate the raffle economics and open it with full ticket stock
//	@Tags			Rifas
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CrearRifaRequestDTO	true	"Raffle definition"
//	@Success		201		{object}	dto.RifaResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Parameters not viable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rifas [post]
func (h *RifaHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CrearRifaRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rifa := &domain.Rifa{
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		OrganizadorID: userID,
		PrecioTicket:  req.PrecioTicket,
		TotalTickets:  req.TotalTickets,
		ValorPremio:   req.ValorPremio,
	}
	if req.FechaFin != "" {
		fecha, err := time.Parse("2006-01-02", req.FechaFin)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_fin, expected YYYY-MM-DD")
			return
		}
		rifa.FechaFin = fecha
	}

	creada, err := h.rifaService.CrearRifa(r.Context(), rifa)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rifaToDTO(creada))
}

// List godoc
//
//	@Summary	List raffles
//	@Tags		Rifas
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.RifaResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/rifas [get]
func (h *RifaHandler) List(w http.ResponseWriter, r *http.Request) {
	rifas, err := h.rifaService.ListRifas(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]dto.RifaResponseDTO, 0, len(rifas))
	for i := range rifas {
		resp = append(resp, rifaToDTO(&rifas[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get a raffle by ID
//	@Tags		Rifas
//	@Produce	json
//	@Security	BearerAuth
//	@Param		rifaID	path		int	true	"Raffle ID"
//	@Success	200		{object}	dto.RifaResponseDTO
//	@Failure	404		{object}	utils.Response	"Raffle not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/rifas/{rifaID} [get]
func (h *RifaHandler) Get(w http.ResponseWriter, r *http.Request) {
	rifaID, err := strconv.Atoi(chi.URLParam(r, "rifaID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle ID")
		return
	}
	rifa, err := h.rifaService.GetRifa(r.Context(), rifaID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rifaToDTO(rifa))
}

// Comprar godoc
//
//	@Summary		Buy raffle tickets
//	@Description	All-or-nothing purchase of sequentially numbered tickets plus their invoice
//	@Tags			Rifas
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			rifaID	path		int							true	"Raffle ID"
//	@Param			request	body		dto.ComprarTicketsRequestDTO	true	"Quantity to buy"
//	@Success		201		{object}	dto.CompraTicketsResponseDTO
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"Raffle closed"
//	@Failure		422		{object}	utils.Response	"Not enough tickets available"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rifas/{rifaID}/tickets/comprar [post]
func (h *RifaHandler) Comprar(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	rifaID, err := strconv.Atoi(chi.URLParam(r, "rifaID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle ID")
		return
	}
	var req dto.ComprarTicketsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tickets, factura, err := h.rifaService.ComprarTickets(r.Context(), rifaID, userID, req.Cantidad)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := dto.CompraTicketsResponseDTO{
		Tickets: make([]dto.TicketResponseDTO, 0, len(tickets)),
		Factura: facturaToDTO(factura),
	}
	for i := range tickets {
		resp.Tickets = append(resp.Tickets, ticketToDTO(&tickets[i]))
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// Tickets godoc
//
//	@Summary	List sold tickets of a raffle
//	@Tags		Rifas
//	@Produce	json
//	@Security	BearerAuth
//	@Param		rifaID	path		int	true	"Raffle ID"
//	@Success	200		{array}		dto.TicketResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/rifas/{rifaID}/tickets [get]
func (h *RifaHandler) Tickets(w http.ResponseWriter, r *http.Request) {
	rifaID, err := strconv.Atoi(chi.URLParam(r, "rifaID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle ID")
		return
	}
	tickets, err := h.rifaService.GetTickets(r.Context(), rifaID)
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]dto.TicketResponseDTO, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, ticketToDTO(&tickets[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Sortear godoc
//
//	@Summary		Draw the raffle winner
//	@Description	Idempotent: drawing a finished raffle returns the recorded winner
//	@Tags			Rifas
//	@Produce		json
//	@Security		BearerAuth
//	@Param			rifaID	path		int	true	"Raffle ID"
//	@Success		200		{object}	dto.SorteoResponseDTO
//	@Failure		403		{object}	utils.Response	"Only the organizer can draw"
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"No tickets sold or raffle closed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rifas/{rifaID}/sortear [post]
func (h *RifaHandler) Sortear(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	rifaID, err := strconv.Atoi(chi.URLParam(r, "rifaID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle ID")
		return
	}

	rifa, err := h.rifaService.SortearGanador(r.Context(), rifaID, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	resp := dto.SorteoResponseDTO{
		RifaID: rifa.ID,
		Estado: rifa.Estado,
	}
	if rifa.GanadorID != nil {
		resp.GanadorID = *rifa.GanadorID
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
