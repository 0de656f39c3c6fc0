package sanrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const columnasSan = `id, nombre, descripcion, organizador_id, precio_total, numero_cuotas,
		monto_cuota, frecuencia_pago, total_participantes, participantes_actuales,
		estado, fecha_inicio, fecha_fin, created_at`

func escanearSan(row pgx.Row) (*domain.San, error) {
	var s domain.San
	err := row.Scan(&s.ID, &s.Nombre, &s.Descripcion, &s.OrganizadorID, &s.PrecioTotal,
		&s.NumeroCuotas, &s.MontoCuota, &s.FrecuenciaPago, &s.TotalParticipantes,
		&s.ParticipantesActuales, &s.Estado, &s.FechaInicio, &s.FechaFin, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) FindSanByID(ctx context.Context, id int) (*domain.San, error) {
	query := `SELECT ` + columnasSan + ` FROM sanes WHERE id = $1`
	san, err := escanearSan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find san", zap.Error(err))
		return nil, err
	}
	return san, nil
}

// FindSanByIDForUpdate bloquea la fila del san para la transacción en curso.
// Es el candado de agregado contra sobreventa de cupos.
func (r *Repository) FindSanByIDForUpdate(ctx context.Context, id int) (*domain.San, error) {
	query := `SELECT ` + columnasSan + ` FROM sanes WHERE id = $1 FOR UPDATE`
	san, err := escanearSan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock san", zap.Error(err))
		return nil, err
	}
	return san, nil
}

func (r *Repository) SaveSan(ctx context.Context, san *domain.San) error {
	query := `
		INSERT INTO sanes (nombre, descripcion, organizador_id, precio_total, numero_cuotas,
			monto_cuota, frecuencia_pago, total_participantes, participantes_actuales,
			estado, fecha_inicio, fecha_fin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, san.Nombre, san.Descripcion, san.OrganizadorID,
		san.PrecioTotal, san.NumeroCuotas, san.MontoCuota, san.FrecuenciaPago,
		san.TotalParticipantes, san.ParticipantesActuales, san.Estado,
		san.FechaInicio, san.FechaFin).Scan(&san.ID, &san.CreatedAt)
	if err != nil {
		zap.L().Error("can't save san", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateSan(ctx context.Context, san *domain.San) error {
	query := `
		UPDATE sanes
		SET participantes_actuales = $1, estado = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, san.ParticipantesActuales, san.Estado, san.ID)
	if err != nil {
		zap.L().Error("can't update san", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListSanes(ctx context.Context) ([]domain.San, error) {
	query := `SELECT ` + columnasSan + ` FROM sanes ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list sanes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sanes []domain.San
	for rows.Next() {
		san, err := escanearSan(rows)
		if err != nil {
			zap.L().Error("can't scan san row", zap.Error(err))
			return nil, err
		}
		sanes = append(sanes, *san)
	}
	return sanes, nil
}

func (r *Repository) FindParticipacion(ctx context.Context, sanID, usuarioID int) (*domain.Participacion, error) {
	query := `
		SELECT id, san_id, usuario_id, orden_cobro, cuotas_pagadas, fecha_ultima_cuota, activa, created_at
		FROM participaciones
		WHERE san_id = $1 AND usuario_id = $2
	`
	var p domain.Participacion
	err := r.db.QueryRow(ctx, query, sanID, usuarioID).Scan(&p.ID, &p.SanID, &p.UsuarioID,
		&p.OrdenCobro, &p.CuotasPagadas, &p.FechaUltimaCuota, &p.Activa, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find participacion", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindParticipacionByID(ctx context.Context, id int) (*domain.Participacion, error) {
	query := `
		SELECT id, san_id, usuario_id, orden_cobro, cuotas_pagadas, fecha_ultima_cuota, activa, created_at
		FROM participaciones
		WHERE id = $1
	`
	var p domain.Participacion
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.SanID, &p.UsuarioID,
		&p.OrdenCobro, &p.CuotasPagadas, &p.FechaUltimaCuota, &p.Activa, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find participacion by id", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) SaveParticipacion(ctx context.Context, p *domain.Participacion) error {
	query := `
		INSERT INTO participaciones (san_id, usuario_id, orden_cobro, cuotas_pagadas, activa)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.SanID, p.UsuarioID, p.OrdenCobro, p.CuotasPagadas, p.Activa).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save participacion", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateParticipacion(ctx context.Context, p *domain.Participacion) error {
	query := `
		UPDATE participaciones
		SET cuotas_pagadas = $1, fecha_ultima_cuota = $2, activa = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, p.CuotasPagadas, p.FechaUltimaCuota, p.Activa, p.ID)
	if err != nil {
		zap.L().Error("can't update participacion", zap.Error(err))
		return err
	}
	return nil
}

const columnasCupo = `id, san_id, participacion_id, numero_semana, estado, monto_cuota,
		fecha_vencimiento, fecha_pago, factura_id`

func escanearCupo(row pgx.Row) (*domain.Cupo, error) {
	var c domain.Cupo
	err := row.Scan(&c.ID, &c.SanID, &c.ParticipacionID, &c.NumeroSemana, &c.Estado,
		&c.MontoCuota, &c.FechaVencimiento, &c.FechaPago, &c.FacturaID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCupos materializa los cupos de un san recién activado en una sola
// transacción.
func (r *Repository) SaveCupos(ctx context.Context, cupos []domain.Cupo) error {
	query := `
		INSERT INTO cupos (san_id, numero_semana, estado, monto_cuota)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range cupos {
			c := &cupos[i]
			if err := r.db.QueryRow(ctx, query, c.SanID, c.NumeroSemana, c.Estado, c.MontoCuota).Scan(&c.ID); err != nil {
				zap.L().Error("can't save cupo", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindCupoByID(ctx context.Context, id int) (*domain.Cupo, error) {
	query := `SELECT ` + columnasCupo + ` FROM cupos WHERE id = $1`
	cupo, err := escanearCupo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find cupo", zap.Error(err))
		return nil, err
	}
	return cupo, nil
}

// FindCupoDisponibleForUpdate toma el cupo disponible de menor número de
// semana, bloqueándolo; las filas ya bloqueadas por otra petición se saltan.
func (r *Repository) FindCupoDisponibleForUpdate(ctx context.Context, sanID int) (*domain.Cupo, error) {
	query := `
		SELECT ` + columnasCupo + `
		FROM cupos
		WHERE san_id = $1 AND estado = 'disponible'
		ORDER BY numero_semana ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`
	cupo, err := escanearCupo(r.db.QueryRow(ctx, query, sanID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock cupo disponible", zap.Error(err))
		return nil, err
	}
	return cupo, nil
}

func (r *Repository) UpdateCupo(ctx context.Context, cupo *domain.Cupo) error {
	query := `
		UPDATE cupos
		SET participacion_id = $1, estado = $2, fecha_vencimiento = $3, fecha_pago = $4, factura_id = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, cupo.ParticipacionID, cupo.Estado,
		cupo.FechaVencimiento, cupo.FechaPago, cupo.FacturaID, cupo.ID)
	if err != nil {
		zap.L().Error("can't update cupo", zap.Error(err))
		return err
	}
	return nil
}

// MarcarCuposVencidos pasa a vencido todo cupo disponible o asignado cuya
// fecha de vencimiento quedó atrás. Devuelve cuántos cambiaron.
func (r *Repository) MarcarCuposVencidos(ctx context.Context) (int, error) {
	query := `
		UPDATE cupos
		SET estado = 'vencido'
		WHERE estado IN ('disponible', 'asignado')
		  AND fecha_vencimiento IS NOT NULL
		  AND fecha_vencimiento < now()
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("can't mark cupos vencidos", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func escanearTurno(row pgx.Row) (*domain.TurnoSan, error) {
	var t domain.TurnoSan
	err := row.Scan(&t.ID, &t.SanID, &t.ParticipacionID, &t.NumeroTurno, &t.Estado,
		&t.FechaActivacion, &t.FechaCumplido)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) FindTurno(ctx context.Context, sanID, numeroTurno int) (*domain.TurnoSan, error) {
	query := `
		SELECT id, san_id, participacion_id, numero_turno, estado, fecha_activacion, fecha_cumplido
		FROM turnos_san
		WHERE san_id = $1 AND numero_turno = $2
	`
	turno, err := escanearTurno(r.db.QueryRow(ctx, query, sanID, numeroTurno))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find turno", zap.Error(err))
		return nil, err
	}
	return turno, nil
}

func (r *Repository) FindTurnosBySan(ctx context.Context, sanID int) ([]domain.TurnoSan, error) {
	query := `
		SELECT id, san_id, participacion_id, numero_turno, estado, fecha_activacion, fecha_cumplido
		FROM turnos_san
		WHERE san_id = $1
		ORDER BY numero_turno ASC
	`
	rows, err := r.db.Query(ctx, query, sanID)
	if err != nil {
		zap.L().Error("can't list turnos", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var turnos []domain.TurnoSan
	for rows.Next() {
		turno, err := escanearTurno(rows)
		if err != nil {
			zap.L().Error("can't scan turno row", zap.Error(err))
			return nil, err
		}
		turnos = append(turnos, *turno)
	}
	return turnos, nil
}

func (r *Repository) SaveTurno(ctx context.Context, turno *domain.TurnoSan) error {
	query := `
		INSERT INTO turnos_san (san_id, participacion_id, numero_turno, estado)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, turno.SanID, turno.ParticipacionID, turno.NumeroTurno, turno.Estado).
		Scan(&turno.ID)
	if err != nil {
		zap.L().Error("can't save turno", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateTurno(ctx context.Context, turno *domain.TurnoSan) error {
	query := `
		UPDATE turnos_san
		SET estado = $1, fecha_activacion = $2, fecha_cumplido = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, turno.Estado, turno.FechaActivacion, turno.FechaCumplido, turno.ID)
	if err != nil {
		zap.L().Error("can't update turno", zap.Error(err))
		return err
	}
	return nil
}
