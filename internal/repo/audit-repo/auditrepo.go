package auditrepo

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

func (r *Repository) Save(ctx context.Context, registro *domain.RegistroSistema) error {
	query := `
		INSERT INTO registros_sistema (usuario_id, accion, nivel, descripcion, tipo_objetivo, objetivo_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fecha_creacion
	`
	err := r.db.QueryRow(ctx, query, registro.UsuarioID, registro.Accion, registro.Nivel,
		registro.Descripcion, registro.TipoObjetivo, registro.ObjetivoID).
		Scan(&registro.ID, &registro.FechaCreacion)
	if err != nil {
		zap.L().Error("can't save registro", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindRecientes(ctx context.Context, limit uint32) ([]domain.RegistroSistema, error) {
	query := `
		SELECT id, usuario_id, accion, nivel, descripcion, tipo_objetivo, objetivo_id, fecha_creacion
		FROM registros_sistema
		ORDER BY fecha_creacion DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't list registros", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var registros []domain.RegistroSistema
	for rows.Next() {
		var reg domain.RegistroSistema
		err := rows.Scan(&reg.ID, &reg.UsuarioID, &reg.Accion, &reg.Nivel, &reg.Descripcion,
			&reg.TipoObjetivo, &reg.ObjetivoID, &reg.FechaCreacion)
		if err != nil {
			zap.L().Error("can't scan registro row", zap.Error(err))
			return nil, err
		}
		registros = append(registros, reg)
	}
	return registros, nil
}
