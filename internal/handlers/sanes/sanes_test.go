package sanes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/dto"
	pkgauth "github.com/jmorillo/sanrifa/pkg/auth"
	"github.com/jmorillo/sanrifa/pkg/utils"
)

func NewMock(t *testing.T) (*SanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

// newRequest arma la petición con el usuario autenticado y los parámetros de
// ruta que el router resolvería.
func newRequest(method, target string, body []byte, userID int, params map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := req.Context()
	if userID != 0 {
		ctx = context.WithValue(ctx, pkgauth.UserIDKey, userID)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		userID        int
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful creation",
			body:   `{"nombre":"San navideño","precio_total":1200,"numero_cuotas":12,"frecuencia_pago":"mensual","total_participantes":12,"fecha_inicio":"2026-01-01","fecha_fin":"2026-12-31"}`,
			userID: 1,
			prepareMock: func() {
				service.EXPECT().
					CrearSan(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, san *domain.San) (*domain.San, error) {
						san.ID = 7
						san.Estado = domain.SanBorrador
						san.MontoCuota = 100
						return san, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Parameters not viable",
			body:   `{"nombre":"San corto","precio_total":1200,"numero_cuotas":12,"frecuencia_pago":"mensual","total_participantes":12}`,
			userID: 1,
			prepareMock: func() {
				verr := &domain.ValidationError{}
				verr.Agregar("parametros", "la ventana de fechas no alcanza para las cuotas")
				service.EXPECT().CrearSan(gomock.Any(), gomock.Any()).Return(nil, verr)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			userID:        1,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid date format",
			body:          `{"nombre":"San","precio_total":1200,"numero_cuotas":12,"frecuencia_pago":"mensual","total_participantes":12,"fecha_inicio":"01/01/2026"}`,
			userID:        1,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid fecha_inicio, expected YYYY-MM-DD",
		},
		{
			name:         "Without authenticated user",
			body:         `{}`,
			userID:       0,
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/sanes", []byte(tt.body), tt.userID, nil)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusCreated {
				var resp dto.SanResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 7, resp.ID)
				assert.Equal(t, domain.SanBorrador, resp.Estado)
				assert.Equal(t, 100.0, resp.MontoCuota)
				assert.Equal(t, "2026-01-01", resp.FechaInicio)
			}
		})
	}
}

func TestJoinHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful join",
			prepareMock: func() {
				service.EXPECT().
					JoinSan(gomock.Any(), 7, 42).
					Return(&domain.Participacion{ID: 11, SanID: 7, UsuarioID: 42, OrdenCobro: 4, Activa: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "San is full",
			prepareMock: func() {
				service.EXPECT().JoinSan(gomock.Any(), 7, 42).Return(nil, domain.ErrSanLleno)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "San not found",
			prepareMock: func() {
				service.EXPECT().JoinSan(gomock.Any(), 7, 42).Return(nil, domain.ErrRecursoNoEncontrado)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already a participant",
			prepareMock: func() {
				service.EXPECT().JoinSan(gomock.Any(), 7, 42).Return(nil, domain.ErrParticipacionDuplicada)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/sanes/7/join", nil, 42, map[string]string{"sanID": "7"})
			rr := httptest.NewRecorder()

			handler.Join(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestActivarHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Only the organizer can activate", func(t *testing.T) {
		service.EXPECT().ActivarSan(gomock.Any(), 7, 42).Return(nil, domain.ErrOperacionNoAutorizada)

		req := newRequest("POST", "/api/sanes/7/activar", nil, 42, map[string]string{"sanID": "7"})
		rr := httptest.NewRecorder()

		handler.Activar(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Activation opens the san", func(t *testing.T) {
		service.EXPECT().
			ActivarSan(gomock.Any(), 7, 1).
			Return(&domain.San{ID: 7, OrganizadorID: 1, Estado: domain.SanActivo, TotalParticipantes: 12}, nil)

		req := newRequest("POST", "/api/sanes/7/activar", nil, 1, map[string]string{"sanID": "7"})
		rr := httptest.NewRecorder()

		handler.Activar(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.SanResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, domain.SanActivo, resp.Estado)
		assert.Equal(t, 12, resp.CuposDisponibles)
	})
}

func TestAsignarCupoHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("No cupos left", func(t *testing.T) {
		service.EXPECT().AsignarCupo(gomock.Any(), 7, 11).Return(nil, domain.ErrCupoSinCapacidad)

		body := []byte(`{"participacion_id":11}`)
		req := newRequest("POST", "/api/sanes/7/cupos/asignar", body, 42, map[string]string{"sanID": "7"})
		rr := httptest.NewRecorder()

		handler.AsignarCupo(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Successful assignment", func(t *testing.T) {
		participacionID := 11
		vence := time.Now().Add(30 * 24 * time.Hour)
		service.EXPECT().
			AsignarCupo(gomock.Any(), 7, 11).
			Return(&domain.Cupo{
				ID:               3,
				SanID:            7,
				ParticipacionID:  &participacionID,
				NumeroSemana:     1,
				Estado:           domain.CupoAsignado,
				MontoCuota:       100,
				FechaVencimiento: &vence,
			}, nil)

		body := []byte(`{"participacion_id":11}`)
		req := newRequest("POST", "/api/sanes/7/cupos/asignar", body, 42, map[string]string{"sanID": "7"})
		rr := httptest.NewRecorder()

		handler.AsignarCupo(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.CupoResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, domain.CupoAsignado, resp.Estado)
		assert.NotNil(t, resp.ParticipacionID)
		assert.Equal(t, 11, *resp.ParticipacionID)
	})
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("San not found", func(t *testing.T) {
		service.EXPECT().GetSan(gomock.Any(), 99).Return(nil, domain.ErrRecursoNoEncontrado)

		req := newRequest("GET", "/api/sanes/99", nil, 42, map[string]string{"sanID": "99"})
		rr := httptest.NewRecorder()

		handler.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		req := newRequest("GET", "/api/sanes/abc", nil, 42, map[string]string{"sanID": "abc"})
		rr := httptest.NewRecorder()

		handler.Get(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTurnoHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Turn not eligible yet", func(t *testing.T) {
		service.EXPECT().ActivarTurno(gomock.Any(), 7, 3).Return(nil, domain.ErrTurnoNoElegible)

		req := newRequest("POST", "/api/sanes/7/turnos/3/activar", nil, 1,
			map[string]string{"sanID": "7", "numero": "3"})
		rr := httptest.NewRecorder()

		handler.ActivarTurno(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Fulfilling an active turn", func(t *testing.T) {
		ahora := time.Now()
		service.EXPECT().
			CumplirTurno(gomock.Any(), 7, 1).
			Return(&domain.TurnoSan{ID: 2, SanID: 7, NumeroTurno: 1, Estado: domain.TurnoCumplido, FechaCumplido: &ahora}, nil)

		req := newRequest("POST", "/api/sanes/7/turnos/1/cumplir", nil, 1,
			map[string]string{"sanID": "7", "numero": "1"})
		rr := httptest.NewRecorder()

		handler.CumplirTurno(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.TurnoResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, domain.TurnoCumplido, resp.Estado)
	})
}
