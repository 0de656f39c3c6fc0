package comunidad

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/dto"
	pkgauth "github.com/jmorillo/sanrifa/pkg/auth"
)

func NewMock(t *testing.T) (*ComunidadHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

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

func TestCrearComentarioHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Comment created",
			body: `{"tipo_objetivo":"san","objetivo_id":3,"texto":"¿Queda algún cupo libre?"}`,
			prepareMock: func() {
				service.EXPECT().
					CrearComentario(gomock.Any(), &domain.Comentario{
						UsuarioID: 42, TipoObjetivo: "san", ObjetivoID: 3,
						Texto: "¿Queda algún cupo libre?",
					}).
					DoAndReturn(func(_ context.Context, c *domain.Comentario) (*domain.Comentario, error) {
						c.ID = 11
						c.Activo = true
						return c, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Empty text",
			body: `{"tipo_objetivo":"san","objetivo_id":3,"texto":""}`,
			prepareMock: func() {
				verr := &domain.ValidationError{}
				verr.Agregar("texto", "no puede estar vacío")
				service.EXPECT().
					CrearComentario(gomock.Any(), gomock.Any()).
					Return(nil, verr)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unsupported target",
			body: `{"tipo_objetivo":"factura","objetivo_id":3,"texto":"hola"}`,
			prepareMock: func() {
				service.EXPECT().
					CrearComentario(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrObjetivoNoSoportado)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/comentarios", []byte(tt.body), 42, nil)
			rr := httptest.NewRecorder()

			handler.CrearComentario(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.ComentarioResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 11, resp.ID)
				assert.Equal(t, "¿Queda algún cupo libre?", resp.Texto)
			}
		})
	}
}

func TestComentariosHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Comments listed", func(t *testing.T) {
		service.EXPECT().
			GetComentarios(gomock.Any(), "rifa", 7).
			Return([]domain.Comentario{
				{ID: 1, UsuarioID: 42, TipoObjetivo: "rifa", ObjetivoID: 7, Texto: "¡Suerte a todos!"},
				{ID: 2, UsuarioID: 43, TipoObjetivo: "rifa", ObjetivoID: 7, Texto: "Compré tres tickets"},
			}, nil)

		req := newRequest("GET", "/api/comentarios?tipo=rifa&objetivo=7", nil, 42, nil)
		rr := httptest.NewRecorder()

		handler.Comentarios(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []dto.ComentarioResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
	})

	t.Run("Missing query parameters", func(t *testing.T) {
		req := newRequest("GET", "/api/comentarios?tipo=rifa", nil, 42, nil)
		rr := httptest.NewRecorder()

		handler.Comentarios(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestEliminarComentarioHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Comment removed", func(t *testing.T) {
		service.EXPECT().EliminarComentario(gomock.Any(), 11).Return(nil)

		req := newRequest("DELETE", "/api/comentarios/11", nil, 42, map[string]string{"comentarioID": "11"})
		rr := httptest.NewRecorder()

		handler.EliminarComentario(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Comment not found", func(t *testing.T) {
		service.EXPECT().EliminarComentario(gomock.Any(), 99).Return(domain.ErrRecursoNoEncontrado)

		req := newRequest("DELETE", "/api/comentarios/99", nil, 42, map[string]string{"comentarioID": "99"})
		rr := httptest.NewRecorder()

		handler.EliminarComentario(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestNotificacionesHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		GetNotificaciones(gomock.Any(), 42).
		Return([]domain.Notificacion{
			{ID: 4, UsuarioID: 42, Titulo: "San activado", TipoObjetivo: "san", ObjetivoID: 3},
		}, nil)

	req := newRequest("GET", "/api/notificaciones", nil, 42, nil)
	rr := httptest.NewRecorder()

	handler.Notificaciones(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.NotificacionResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "San activado", resp[0].Titulo)
	assert.False(t, resp[0].Leida)
}

func TestMarcarLeidaHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Notification marked", func(t *testing.T) {
		service.EXPECT().MarcarLeida(gomock.Any(), 4, 42).Return(nil)

		req := newRequest("POST", "/api/notificaciones/4/leida", nil, 42, map[string]string{"notificacionID": "4"})
		rr := httptest.NewRecorder()

		handler.MarcarLeida(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Notification of another user", func(t *testing.T) {
		service.EXPECT().MarcarLeida(gomock.Any(), 4, 42).Return(domain.ErrRecursoNoEncontrado)

		req := newRequest("POST", "/api/notificaciones/4/leida", nil, 42, map[string]string{"notificacionID": "4"})
		rr := httptest.NewRecorder()

		handler.MarcarLeida(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
