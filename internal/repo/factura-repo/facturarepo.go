package facturarepo

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

const columnasFactura = `id, codigo, usuario_id, tipo_objetivo, objetivo_id, monto_total,
		monto_pagado, estado_pago, metodo_pago, fecha_emision, fecha_vencimiento, fecha_pago, notas`

func escanearFactura(row pgx.Row) (*domain.Factura, error) {
	var f domain.Factura
	err := row.Scan(&f.ID, &f.Codigo, &f.UsuarioID, &f.TipoObjetivo, &f.ObjetivoID,
		&f.MontoTotal, &f.MontoPagado, &f.EstadoPago, &f.MetodoPago,
		&f.FechaEmision, &f.FechaVencimiento, &f.FechaPago, &f.Notas)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Factura, error) {
	query := `SELECT ` + columnasFactura + ` FROM facturas WHERE id = $1`
	factura, err := escanearFactura(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find factura", zap.Error(err))
		return nil, err
	}
	return factura, nil
}

// FindByIDForUpdate bloquea la factura mientras dura la confirmación o el
// rechazo, para que dos peticiones no la liquiden a la vez.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Factura, error) {
	query := `SELECT ` + columnasFactura + ` FROM facturas WHERE id = $1 FOR UPDATE`
	factura, err := escanearFactura(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock factura", zap.Error(err))
		return nil, err
	}
	return factura, nil
}

func (r *Repository) Save(ctx context.Context, factura *domain.Factura) error {
	query := `
		INSERT INTO facturas (codigo, usuario_id, tipo_objetivo, objetivo_id, monto_total,
			monto_pagado, estado_pago, metodo_pago, fecha_vencimiento, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, fecha_emision
	`
	err := r.db.QueryRow(ctx, query, factura.Codigo, factura.UsuarioID, factura.TipoObjetivo,
		factura.ObjetivoID, factura.MontoTotal, factura.MontoPagado, factura.EstadoPago,
		factura.MetodoPago, factura.FechaVencimiento, factura.Notas).
		Scan(&factura.ID, &factura.FechaEmision)
	if err != nil {
		zap.L().Error("can't save factura", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, factura *domain.Factura) error {
	query := `
		UPDATE facturas
		SET monto_pagado = $1, estado_pago = $2, metodo_pago = $3, fecha_pago = $4, notas = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, factura.MontoPagado, factura.EstadoPago,
		factura.MetodoPago, factura.FechaPago, factura.Notas, factura.ID)
	if err != nil {
		zap.L().Error("can't update factura", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUsuario(ctx context.Context, usuarioID int) ([]domain.Factura, error) {
	query := `
		SELECT ` + columnasFactura + `
		FROM facturas
		WHERE usuario_id = $1
		ORDER BY fecha_emision DESC
	`
	rows, err := r.db.Query(ctx, query, usuarioID)
	if err != nil {
		zap.L().Error("can't list facturas", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var facturas []domain.Factura
	for rows.Next() {
		factura, err := escanearFactura(rows)
		if err != nil {
			zap.L().Error("can't scan factura row", zap.Error(err))
			return nil, err
		}
		facturas = append(facturas, *factura)
	}
	return facturas, nil
}

const columnasPago = `id, codigo_transaccion, usuario_id, factura_id, metodo_pago, monto,
		moneda, estado, referencia_externa, fecha_procesamiento, tiempo_procesamiento,
		intentos, created_at, updated_at`

func escanearPago(row pgx.Row) (*domain.PagoSimulado, error) {
	var p domain.PagoSimulado
	err := row.Scan(&p.ID, &p.CodigoTransaccion, &p.UsuarioID, &p.FacturaID, &p.MetodoPago,
		&p.Monto, &p.Moneda, &p.Estado, &p.ReferenciaExterna, &p.FechaProcesamiento,
		&p.TiempoProcesamiento, &p.Intentos, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) SavePago(ctx context.Context, pago *domain.PagoSimulado) error {
	query := `
		INSERT INTO pagos_simulados (codigo_transaccion, usuario_id, factura_id, metodo_pago,
			monto, moneda, estado, intentos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, pago.CodigoTransaccion, pago.UsuarioID, pago.FacturaID,
		pago.MetodoPago, pago.Monto, pago.Moneda, pago.Estado, pago.Intentos).
		Scan(&pago.ID, &pago.CreatedAt, &pago.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save pago", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindPagoByID(ctx context.Context, id int) (*domain.PagoSimulado, error) {
	query := `SELECT ` + columnasPago + ` FROM pagos_simulados WHERE id = $1`
	pago, err := escanearPago(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pago", zap.Error(err))
		return nil, err
	}
	return pago, nil
}

func (r *Repository) UpdatePago(ctx context.Context, pago *domain.PagoSimulado) error {
	query := `
		UPDATE pagos_simulados
		SET estado = $1, referencia_externa = $2, fecha_procesamiento = $3,
		    tiempo_procesamiento = $4, intentos = $5, updated_at = now()
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, pago.Estado, pago.ReferenciaExterna,
		pago.FechaProcesamiento, pago.TiempoProcesamiento, pago.Intentos, pago.ID)
	if err != nil {
		zap.L().Error("can't update pago", zap.Error(err))
		return err
	}
	return nil
}

// FindPagosPendientes lista los pagos a la espera de procesamiento, los más
// antiguos primero.
func (r *Repository) FindPagosPendientes(ctx context.Context, limit uint32) ([]domain.PagoSimulado, error) {
	query := `
		SELECT ` + columnasPago + `
		FROM pagos_simulados
		WHERE estado = 'pendiente'
		ORDER BY created_at ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't list pagos pendientes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pagos []domain.PagoSimulado
	for rows.Next() {
		pago, err := escanearPago(rows)
		if err != nil {
			zap.L().Error("can't scan pago row", zap.Error(err))
			return nil, err
		}
		pagos = append(pagos, *pago)
	}
	return pagos, nil
}
