package adminrepo

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

func (r *Repository) ContarUsuarios(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios WHERE activo = TRUE`).Scan(&total)
	if err != nil {
		zap.L().Error("can't count usuarios", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) contarPorEstado(ctx context.Context, query string) ([]domain.ConteoEstado, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't aggregate estados", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var conteos []domain.ConteoEstado
	for rows.Next() {
		var c domain.ConteoEstado
		if err := rows.Scan(&c.Estado, &c.Cantidad); err != nil {
			zap.L().Error("can't scan conteo row", zap.Error(err))
			return nil, err
		}
		conteos = append(conteos, c)
	}
	return conteos, nil
}

func (r *Repository) SanesPorEstado(ctx context.Context) ([]domain.ConteoEstado, error) {
	return r.contarPorEstado(ctx, `SELECT estado, COUNT(*) FROM sanes GROUP BY estado ORDER BY estado`)
}

func (r *Repository) RifasPorEstado(ctx context.Context) ([]domain.ConteoEstado, error) {
	return r.contarPorEstado(ctx, `SELECT estado, COUNT(*) FROM rifas GROUP BY estado ORDER BY estado`)
}

func (r *Repository) FacturasPorEstado(ctx context.Context) ([]domain.ConteoEstado, error) {
	return r.contarPorEstado(ctx, `SELECT estado_pago, COUNT(*) FROM facturas GROUP BY estado_pago ORDER BY estado_pago`)
}

func (r *Repository) PagosPorEstado(ctx context.Context) ([]domain.ConteoEstado, error) {
	return r.contarPorEstado(ctx, `SELECT estado, COUNT(*) FROM pagos_simulados GROUP BY estado ORDER BY estado`)
}

func (r *Repository) MontoConfirmado(ctx context.Context) (float64, error) {
	var monto float64
	query := `SELECT COALESCE(SUM(monto_pagado), 0) FROM facturas WHERE estado_pago = 'confirmado'`
	if err := r.db.QueryRow(ctx, query).Scan(&monto); err != nil {
		zap.L().Error("can't sum montos confirmados", zap.Error(err))
		return 0, err
	}
	return monto, nil
}
