// Package comunidadservice agrupa la capa social: comentarios sobre sanes y
// rifas, notificaciones internas y su reenvío opcional a un webhook externo.
package comunidadservice

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/domain"
)

type Repo interface {
	SaveComentario(ctx context.Context, c *domain.Comentario) error
	FindComentarios(ctx context.Context, tipoObjetivo string, objetivoID int) ([]domain.Comentario, error)
	DesactivarComentario(ctx context.Context, id int) error
	SaveNotificacion(ctx context.Context, n *domain.Notificacion) error
	FindNotificaciones(ctx context.Context, usuarioID int) ([]domain.Notificacion, error)
	MarcarLeida(ctx context.Context, id, usuarioID int) error
}

// WebhookClient publica notificaciones hacia fuera del sistema.
type WebhookClient interface {
	Post(url string, body []byte) (statusCode int, respBody []byte, err error)
}

const maxTextoComentario = 1000

type Service struct {
	repo       Repo
	webhook    WebhookClient
	webhookURL string
}

func New(repo Repo, webhook WebhookClient, webhookURL string) *Service {
	return &Service{
		repo:       repo,
		webhook:    webhook,
		webhookURL: webhookURL,
	}
}

func objetivoValido(tipo string) bool {
	switch tipo {
	case domain.ObjetivoSan, domain.ObjetivoRifa, domain.ObjetivoCupo:
		return true
	}
	return false
}

func (s *Service) CrearComentario(ctx context.Context, comentario *domain.Comentario) (*domain.Comentario, error) {
	verr := &domain.ValidationError{}
	if comentario.Texto == "" {
		verr.Agregar("texto", "es obligatorio")
	}
	if len(comentario.Texto) > maxTextoComentario {
		verr.Agregar("texto", "supera el largo máximo")
	}
	if !verr.Vacio() {
		return nil, verr
	}
	if !objetivoValido(comentario.TipoObjetivo) {
		return nil, domain.ErrObjetivoNoSoportado
	}

	comentario.Activo = true
	if err := s.repo.SaveComentario(ctx, comentario); err != nil {
		zap.L().Error("can't create comentario", zap.Error(err))
		return nil, err
	}
	return comentario, nil
}

func (s *Service) GetComentarios(ctx context.Context, tipoObjetivo string, objetivoID int) ([]domain.Comentario, error) {
	if !objetivoValido(tipoObjetivo) {
		return nil, domain.ErrObjetivoNoSoportado
	}
	comentarios, err := s.repo.FindComentarios(ctx, tipoObjetivo, objetivoID)
	if err != nil {
		zap.L().Error("failed to list comentarios", zap.Error(err))
		return nil, err
	}
	return comentarios, nil
}

// EliminarComentario hace un borrado lógico; el texto queda en la base pero
// deja de listarse.
func (s *Service) EliminarComentario(ctx context.Context, id int) error {
	if err := s.repo.DesactivarComentario(ctx, id); err != nil {
		zap.L().Error("can't delete comentario", zap.Error(err))
		return err
	}
	return nil
}

// Notificar guarda la notificación interna y, si hay webhook configurado, la
// publica fuera. El fallo del webhook se registra y no interrumpe nada.
func (s *Service) Notificar(ctx context.Context, usuarioID int, titulo, mensaje, tipoObjetivo string, objetivoID int) {
	notificacion := &domain.Notificacion{
		UsuarioID:    usuarioID,
		Titulo:       titulo,
		Mensaje:      mensaje,
		TipoObjetivo: tipoObjetivo,
		ObjetivoID:   objetivoID,
	}
	if err := s.repo.SaveNotificacion(ctx, notificacion); err != nil {
		zap.L().Error("can't save notificacion", zap.Int("usuario_id", usuarioID), zap.Error(err))
		return
	}

	if s.webhookURL == "" {
		return
	}
	body, err := json.Marshal(notificacion)
	if err != nil {
		zap.L().Error("can't marshal notificacion", zap.Error(err))
		return
	}
	status, _, err := s.webhook.Post(s.webhookURL, body)
	if err != nil {
		zap.L().Warn("webhook delivery failed", zap.Error(err))
		return
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		zap.L().Warn("webhook rejected notification", zap.Int("status", status))
	}
}

func (s *Service) GetNotificaciones(ctx context.Context, usuarioID int) ([]domain.Notificacion, error) {
	notificaciones, err := s.repo.FindNotificaciones(ctx, usuarioID)
	if err != nil {
		zap.L().Error("failed to list notificaciones", zap.Error(err))
		return nil, err
	}
	return notificaciones, nil
}

func (s *Service) MarcarLeida(ctx context.Context, id, usuarioID int) error {
	if err := s.repo.MarcarLeida(ctx, id, usuarioID); err != nil {
		zap.L().Error("can't mark notificacion", zap.Error(err))
		return err
	}
	return nil
}
