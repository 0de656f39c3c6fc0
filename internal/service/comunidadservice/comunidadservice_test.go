package comunidadservice

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/domain"
)

func NewMock(t *testing.T, webhookURL string) (*Service, *MockRepo, *MockWebhookClient) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	webhook := NewMockWebhookClient(ctrl)
	service := New(repo, webhook, webhookURL)
	return service, repo, webhook
}

func TestCrearComentario(t *testing.T) {
	service, repo, _ := NewMock(t, "")

	tests := []struct {
		name        string
		comentario  *domain.Comentario
		prepareMock func()
		wantErr     error
	}{
		{
			name:        "Empty text is invalid",
			comentario:  &domain.Comentario{TipoObjetivo: domain.ObjetivoSan, ObjetivoID: 1},
			prepareMock: func() {},
			wantErr:     &domain.ValidationError{Campos: []domain.CampoInvalido{{Campo: "texto", Detalle: "es obligatorio"}}},
		},
		{
			name:        "Text over the limit is invalid",
			comentario:  &domain.Comentario{TipoObjetivo: domain.ObjetivoSan, ObjetivoID: 1, Texto: strings.Repeat("a", maxTextoComentario+1)},
			prepareMock: func() {},
			wantErr:     &domain.ValidationError{Campos: []domain.CampoInvalido{{Campo: "texto", Detalle: "supera el largo máximo"}}},
		},
		{
			name:        "Unknown target type is rejected",
			comentario:  &domain.Comentario{TipoObjetivo: "premio", ObjetivoID: 1, Texto: "hola"},
			prepareMock: func() {},
			wantErr:     domain.ErrObjetivoNoSoportado,
		},
		{
			name:       "Valid comment is stored active",
			comentario: &domain.Comentario{UsuarioID: 42, TipoObjetivo: domain.ObjetivoRifa, ObjetivoID: 3, Texto: "¿Cuándo es el sorteo?"},
			prepareMock: func() {
				repo.EXPECT().SaveComentario(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			comentario, err := service.CrearComentario(context.Background(), tt.comentario)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.True(t, comentario.Activo)
		})
	}
}

func TestGetComentarios(t *testing.T) {
	service, repo, _ := NewMock(t, "")

	repo.EXPECT().FindComentarios(gomock.Any(), domain.ObjetivoSan, 7).
		Return([]domain.Comentario{{ID: 1}, {ID: 2}}, nil)
	comentarios, err := service.GetComentarios(context.Background(), domain.ObjetivoSan, 7)
	assert.NoError(t, err)
	assert.Len(t, comentarios, 2)

	_, err = service.GetComentarios(context.Background(), "premio", 7)
	assert.ErrorIs(t, err, domain.ErrObjetivoNoSoportado)
}

func TestNotificar(t *testing.T) {
	t.Run("Without webhook only the internal record is written", func(t *testing.T) {
		service, repo, _ := NewMock(t, "")
		repo.EXPECT().SaveNotificacion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Notificacion) error {
				assert.Equal(t, 42, n.UsuarioID)
				assert.Equal(t, "Pago confirmado", n.Titulo)
				assert.False(t, n.Leida)
				return nil
			})
		service.Notificar(context.Background(), 42, "Pago confirmado", "detalle", domain.ObjetivoCupo, 3)
	})

	t.Run("Configured webhook receives the notification", func(t *testing.T) {
		service, repo, webhook := NewMock(t, "https://hooks.example.com/sanrifa")
		repo.EXPECT().SaveNotificacion(gomock.Any(), gomock.Any()).Return(nil)
		webhook.EXPECT().Post("https://hooks.example.com/sanrifa", gomock.Any()).
			Return(http.StatusOK, nil, nil)
		service.Notificar(context.Background(), 42, "Pago confirmado", "detalle", domain.ObjetivoCupo, 3)
	})

	t.Run("Webhook failure does not propagate", func(t *testing.T) {
		service, repo, webhook := NewMock(t, "https://hooks.example.com/sanrifa")
		repo.EXPECT().SaveNotificacion(gomock.Any(), gomock.Any()).Return(nil)
		webhook.EXPECT().Post(gomock.Any(), gomock.Any()).
			Return(0, nil, errors.New("connection refused"))
		service.Notificar(context.Background(), 42, "Pago confirmado", "detalle", domain.ObjetivoCupo, 3)
	})

	t.Run("Storage failure skips the webhook", func(t *testing.T) {
		service, repo, _ := NewMock(t, "https://hooks.example.com/sanrifa")
		repo.EXPECT().SaveNotificacion(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
		service.Notificar(context.Background(), 42, "Pago confirmado", "detalle", domain.ObjetivoCupo, 3)
	})
}

func TestMarcarLeida(t *testing.T) {
	service, repo, _ := NewMock(t, "")

	repo.EXPECT().MarcarLeida(gomock.Any(), 9, 42).Return(nil)
	assert.NoError(t, service.MarcarLeida(context.Background(), 9, 42))

	repo.EXPECT().MarcarLeida(gomock.Any(), 9, 42).Return(errors.New("some error"))
	assert.Error(t, service.MarcarLeida(context.Background(), 9, 42))
}
