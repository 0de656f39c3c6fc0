package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/dto"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestReporteHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Report generated", func(t *testing.T) {
		service.EXPECT().
			ReporteGeneral(gomock.Any()).
			Return(&domain.ReporteGeneral{
				TotalUsuarios: 120,
				SanesPorEstado: []domain.ConteoEstado{
					{Estado: domain.SanActivo, Cantidad: 4},
					{Estado: domain.SanFinalizado, Cantidad: 2},
				},
				MontoConfirmado: 15300.50,
				GeneradoEn:      time.Now(),
			}, nil)

		req := httptest.NewRequest("GET", "/api/admin/reportes", nil)
		rr := httptest.NewRecorder()

		handler.Reporte(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp domain.ReporteGeneral
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 120, resp.TotalUsuarios)
		assert.Equal(t, 15300.50, resp.MontoConfirmado)
		assert.Len(t, resp.SanesPorEstado, 2)
	})

	t.Run("Aggregation error", func(t *testing.T) {
		service.EXPECT().ReporteGeneral(gomock.Any()).Return(nil, errors.New("database error"))

		req := httptest.NewRequest("GET", "/api/admin/reportes", nil)
		rr := httptest.NewRecorder()

		handler.Reporte(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRegistrosHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("With explicit limit", func(t *testing.T) {
		usuarioID := 42
		service.EXPECT().
			Registros(gomock.Any(), uint32(10)).
			Return([]domain.RegistroSistema{
				{ID: 1, UsuarioID: &usuarioID, Accion: "factura_confirmada", Nivel: domain.NivelInfo},
			}, nil)

		req := httptest.NewRequest("GET", "/api/admin/registros?limit=10", nil)
		rr := httptest.NewRecorder()

		handler.Registros(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []dto.RegistroResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "factura_confirmada", resp[0].Accion)
	})

	t.Run("Without limit defaults to zero", func(t *testing.T) {
		service.EXPECT().Registros(gomock.Any(), uint32(0)).Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/admin/registros", nil)
		rr := httptest.NewRecorder()

		handler.Registros(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/registros?limit=abc", nil)
		rr := httptest.NewRecorder()

		handler.Registros(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
