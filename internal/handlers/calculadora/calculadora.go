// Package calculadora expone las calculadoras de viabilidad como endpoints
// sin persistencia: mismo cálculo que usan los servicios al crear.
package calculadora

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmorillo/sanrifa/internal/dto"
	"github.com/jmorillo/sanrifa/internal/viability"
	"github.com/jmorillo/sanrifa/pkg/utils"
)

type CalculadoraHandler struct{}

func New() *CalculadoraHandler {
	return &CalculadoraHandler{}
}

const formatoFecha = "2006-01-02"

// CalcularSan godoc
//
//	@Summary		Evaluate san feasibility
//	@Description	Compute quota size, period windows and alerts without persisting anything
//	@Tags			Calculadora
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CalcularSanRequestDTO	true	"San parameters"
//	@Success		200		{object}	viability.ContextoSan
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/calculadora/san [post]
func (h *CalculadoraHandler) CalcularSan(w http.ResponseWriter, r *http.Request) {
	var req dto.CalcularSanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var fechaInicio, fechaFin time.Time
	var err error
	if req.FechaInicio != "" {
		if fechaInicio, err = time.Parse(formatoFecha, req.FechaInicio); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_inicio, expected YYYY-MM-DD")
			return
		}
	}
	if req.FechaFin != "" {
		if fechaFin, err = time.Parse(formatoFecha, req.FechaFin); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_fin, expected YYYY-MM-DD")
			return
		}
	}

	contexto := viability.CalcularSanContexto(req.PrecioTotal, req.TotalParticipantes,
		req.FrecuenciaPago, fechaInicio, fechaFin, req.NumeroCuotas)
	utils.RespondWithJSON(w, http.StatusOK, contexto)
}

// CalcularRifa godoc
//
//	@Summary		Evaluate raffle economics
//	@Description	Compute expected margin, break-even point and suggested parameters
//	@Tags			Calculadora
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CalcularRifaRequestDTO	true	"Raffle parameters"
//	@Success		200		{object}	viability.ContextoRifa
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/calculadora/rifa [post]
func (h *CalculadoraHandler) CalcularRifa(w http.ResponseWriter, r *http.Request) {
	var req dto.CalcularRifaRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contexto := viability.CalcularRifaContexto(req.PrecioTicket, req.TotalTickets, req.ValorPremio)
	utils.RespondWithJSON(w, http.StatusOK, contexto)
}
