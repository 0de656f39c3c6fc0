package usuariorepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

const columnasUsuario = `id, email, nombre, password_hash, telefono, cedula, rol, reputacion,
		verificado, intentos_fallidos, bloqueado_hasta, activo, created_at`

func escanearUsuario(row pgx.Row) (*domain.Usuario, error) {
	var u domain.Usuario
	err := row.Scan(&u.ID, &u.Email, &u.Nombre, &u.PasswordHash, &u.Telefono, &u.Cedula,
		&u.Rol, &u.Reputacion, &u.Verificado, &u.IntentosFallidos, &u.BloqueadoHasta,
		&u.Activo, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE email = $1`
	usuario, err := escanearUsuario(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find usuario", zap.Error(err))
		return nil, err
	}
	return usuario, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE id = $1`
	usuario, err := escanearUsuario(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find usuario by id", zap.Error(err))
		return nil, err
	}
	return usuario, nil
}

func (r *Repository) Create(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	query := `
		INSERT INTO usuarios (email, nombre, password_hash, telefono, cedula, rol)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, usuario.Email, usuario.Nombre, usuario.PasswordHash,
		usuario.Telefono, usuario.Cedula, usuario.Rol).Scan(&usuario.ID, &usuario.CreatedAt)
	if err != nil {
		zap.L().Error("can't save usuario", zap.Error(err))
		return nil, err
	}
	return usuario, nil
}

func (r *Repository) Update(ctx context.Context, usuario *domain.Usuario) error {
	query := `
		UPDATE usuarios
		SET nombre = $1, telefono = $2, cedula = $3, rol = $4, reputacion = $5,
		    verificado = $6, intentos_fallidos = $7, bloqueado_hasta = $8, activo = $9
		WHERE id = $10
	`
	_, err := r.db.Exec(ctx, query, usuario.Nombre, usuario.Telefono, usuario.Cedula,
		usuario.Rol, usuario.Reputacion, usuario.Verificado, usuario.IntentosFallidos,
		usuario.BloqueadoHasta, usuario.Activo, usuario.ID)
	if err != nil {
		zap.L().Error("can't update usuario", zap.Error(err))
		return err
	}
	return nil
}
