// Package admin expone los reportes agregados y la bitácora del sistema.
// Todas las rutas exigen rol administrador.
package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/dto"
	"github.com/jmorillo/sanrifa/pkg/utils"
)

type Service interface {
	ReporteGeneral(ctx context.Context) (*domain.ReporteGeneral, error)
	Registros(ctx context.Context, limit uint32) ([]domain.RegistroSistema, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Reporte godoc
//
//	@Summary	General platform report
//	@Description	Entity counts by state and total confirmed amount
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.ReporteGeneral
//	@Failure	403	{object}	utils.Response	"Administrator role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/reportes [get]
func (h *AdminHandler) Reporte(w http.ResponseWriter, r *http.Request) {
	reporte, err := h.adminService.ReporteGeneral(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reporte)
}

// Registros godoc
//
//	@Summary	Recent system log entries
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query		int	false	"Maximum entries (capped at 200)"
//	@Success	200		{array}		dto.RegistroResponseDTO
//	@Failure	403		{object}	utils.Response	"Administrator role required"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/registros [get]
func (h *AdminHandler) Registros(w http.ResponseWriter, r *http.Request) {
	var limit uint32
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = uint32(n)
	}

	registros, err := h.adminService.Registros(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.RegistroResponseDTO, 0, len(registros))
	for _, reg := range registros {
		resp = append(resp, dto.RegistroResponseDTO{
			ID:            reg.ID,
			UsuarioID:     reg.UsuarioID,
			Accion:        reg.Accion,
			Nivel:         reg.Nivel,
			Descripcion:   reg.Descripcion,
			TipoObjetivo:  reg.TipoObjetivo,
			ObjetivoID:    reg.ObjetivoID,
			FechaCreacion: reg.FechaCreacion,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
