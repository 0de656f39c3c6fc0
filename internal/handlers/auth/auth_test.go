package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/domain"
	pkgauth "github.com/jmorillo/sanrifa/pkg/auth"
	"github.com/jmorillo/sanrifa/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"email":"ana@example.com","nombre":"Ana","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), gomock.Any(), "password123").
					Return(&domain.Usuario{ID: 1, Email: "ana@example.com", Rol: domain.RolParticipante}, nil)
				service.EXPECT().GenerateToken(1, domain.RolParticipante).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Email already registered",
			body: `{"email":"ana@example.com","nombre":"Ana","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), gomock.Any(), "password123").
					Return(nil, domain.ErrEmailRegistrado)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrEmailRegistrado.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing credentials",
			body:          `{"email":"ana@example.com"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email and password are required",
		},
		{
			name: "Error generating token",
			body: `{"email":"ana@example.com","nombre":"Ana","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), gomock.Any(), "password123").
					Return(&domain.Usuario{ID: 1, Rol: domain.RolParticipante}, nil)
				service.EXPECT().
					GenerateToken(1, domain.RolParticipante).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"ana@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "ana@example.com", "password123").
					Return(&domain.Usuario{ID: 1, Rol: domain.RolParticipante}, nil)
				service.EXPECT().GenerateToken(1, domain.RolParticipante).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"ana@example.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "ana@example.com", "wrongpassword").
					Return(nil, domain.ErrCredencialesInvalidas)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Account locked",
			body: `{"email":"ana@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "ana@example.com", "password123").
					Return(nil, domain.ErrUsuarioBloqueado)
			},
			expectedCode:  http.StatusLocked,
			expectedError: domain.ErrUsuarioBloqueado.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestPerfilHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Without authenticated user", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/perfil", nil)
		rr := httptest.NewRecorder()

		handler.Perfil(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Returns the profile", func(t *testing.T) {
		service.EXPECT().
			GetUsuario(gomock.Any(), 7).
			Return(&domain.Usuario{ID: 7, Email: "ana@example.com", Nombre: "Ana", Rol: domain.RolOrganizador}, nil)

		req := httptest.NewRequest("GET", "/api/user/perfil", nil)
		ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 7)
		rr := httptest.NewRecorder()

		handler.Perfil(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
			Rol   string `json:"rol"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 7, resp.ID)
		assert.Equal(t, "ana@example.com", resp.Email)
		assert.Equal(t, domain.RolOrganizador, resp.Rol)
	})
}
