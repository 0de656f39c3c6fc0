package comunidadrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) SaveComentario(ctx context.Context, c *domain.Comentario) error {
	query := `
		INSERT INTO comentarios (usuario_id, tipo_objetivo, objetivo_id, texto, activo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fecha_creacion
	`
	err := r.db.QueryRow(ctx, query, c.UsuarioID, c.TipoObjetivo, c.ObjetivoID, c.Texto, c.Activo).
		Scan(&c.ID, &c.FechaCreacion)
	if err != nil {
		zap.L().Error("can't save comentario", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindComentarios(ctx context.Context, tipoObjetivo string, objetivoID int) ([]domain.Comentario, error) {
	query := `
		SELECT id, usuario_id, tipo_objetivo, objetivo_id, texto, activo, fecha_creacion
		FROM comentarios
		WHERE tipo_objetivo = $1 AND objetivo_id = $2 AND activo = TRUE
		ORDER BY fecha_creacion DESC
	`
	rows, err := r.db.Query(ctx, query, tipoObjetivo, objetivoID)
	if err != nil {
		zap.L().Error("can't list comentarios", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var comentarios []domain.Comentario
	for rows.Next() {
		var c domain.Comentario
		err := rows.Scan(&c.ID, &c.UsuarioID, &c.TipoObjetivo, &c.ObjetivoID, &c.Texto, &c.Activo, &c.FechaCreacion)
		if err != nil {
			zap.L().Error("can't scan comentario row", zap.Error(err))
			return nil, err
		}
		comentarios = append(comentarios, c)
	}
	return comentarios, nil
}

func (r *Repository) DesactivarComentario(ctx context.Context, id int) error {
	query := `UPDATE comentarios SET activo = FALSE WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't deactivate comentario", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveNotificacion(ctx context.Context, n *domain.Notificacion) error {
	query := `
		INSERT INTO notificaciones (usuario_id, titulo, mensaje, tipo_objetivo, objetivo_id, leida)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fecha_creacion
	`
	err := r.db.QueryRow(ctx, query, n.UsuarioID, n.Titulo, n.Mensaje, n.TipoObjetivo, n.ObjetivoID, n.Leida).
		Scan(&n.ID, &n.FechaCreacion)
	if err != nil {
		zap.L().Error("can't save notificacion", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindNotificaciones(ctx context.Context, usuarioID int) ([]domain.Notificacion, error) {
	query := `
		SELECT id, usuario_id, titulo, mensaje, tipo_objetivo, objetivo_id, leida, fecha_creacion
		FROM notificaciones
		WHERE usuario_id = $1
		ORDER BY fecha_creacion DESC
	`
	rows, err := r.db.Query(ctx, query, usuarioID)
	if err != nil {
		zap.L().Error("can't list notificaciones", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notificaciones []domain.Notificacion
	for rows.Next() {
		var n domain.Notificacion
		err := rows.Scan(&n.ID, &n.UsuarioID, &n.Titulo, &n.Mensaje, &n.TipoObjetivo, &n.ObjetivoID, &n.Leida, &n.FechaCreacion)
		if err != nil {
			zap.L().Error("can't scan notificacion row", zap.Error(err))
			return nil, err
		}
		notificaciones = append(notificaciones, n)
	}
	return notificaciones, nil
}

func (r *Repository) MarcarLeida(ctx context.Context, id, usuarioID int) error {
	query := `UPDATE notificaciones SET leida = TRUE WHERE id = $1 AND usuario_id = $2`
	_, err := r.db.Exec(ctx, query, id, usuarioID)
	if err != nil {
		zap.L().Error("can't mark notificacion leida", zap.Error(err))
		return err
	}
	return nil
}
