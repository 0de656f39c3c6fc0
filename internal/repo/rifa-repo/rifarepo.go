package rifarepo

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

const columnasRifa = `id, nombre, descripcion, organizador_id, precio_ticket, total_tickets,
		tickets_disponibles, valor_premio, estado, ganador_id, fecha_fin, created_at`

func escanearRifa(row pgx.Row) (*domain.Rifa, error) {
	var rf domain.Rifa
	err := row.Scan(&rf.ID, &rf.Nombre, &rf.Descripcion, &rf.OrganizadorID, &rf.PrecioTicket,
		&rf.TotalTickets, &rf.TicketsDisponibles, &rf.ValorPremio, &rf.Estado,
		&rf.GanadorID, &rf.FechaFin, &rf.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rf, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Rifa, error) {
	query := `SELECT ` + columnasRifa + ` FROM rifas WHERE id = $1`
	rifa, err := escanearRifa(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find rifa", zap.Error(err))
		return nil, err
	}
	return rifa, nil
}

// FindByIDForUpdate bloquea la fila de la rifa; candado contra sobreventa
// de tickets y sorteos concurrentes.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Rifa, error) {
	query := `SELECT ` + columnasRifa + ` FROM rifas WHERE id = $1 FOR UPDATE`
	rifa, err := escanearRifa(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock rifa", zap.Error(err))
		return nil, err
	}
	return rifa, nil
}

func (r *Repository) Save(ctx context.Context, rifa *domain.Rifa) error {
	query := `
		INSERT INTO rifas (nombre, descripcion, organizador_id, precio_ticket, total_tickets,
			tickets_disponibles, valor_premio, estado, fecha_fin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, rifa.Nombre, rifa.Descripcion, rifa.OrganizadorID,
		rifa.PrecioTicket, rifa.TotalTickets, rifa.TicketsDisponibles, rifa.ValorPremio,
		rifa.Estado, rifa.FechaFin).Scan(&rifa.ID, &rifa.CreatedAt)
	if err != nil {
		zap.L().Error("can't save rifa", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, rifa *domain.Rifa) error {
	query := `
		UPDATE rifas
		SET tickets_disponibles = $1, estado = $2, ganador_id = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, rifa.TicketsDisponibles, rifa.Estado, rifa.GanadorID, rifa.ID)
	if err != nil {
		zap.L().Error("can't update rifa", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Rifa, error) {
	query := `SELECT ` + columnasRifa + ` FROM rifas ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list rifas", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rifas []domain.Rifa
	for rows.Next() {
		rifa, err := escanearRifa(rows)
		if err != nil {
			zap.L().Error("can't scan rifa row", zap.Error(err))
			return nil, err
		}
		rifas = append(rifas, *rifa)
	}
	return rifas, nil
}

// MaxNumeroTicket devuelve el número de ticket más alto emitido para la rifa,
// cero si no se vendió ninguno.
func (r *Repository) MaxNumeroTicket(ctx context.Context, rifaID int) (int, error) {
	query := `SELECT COALESCE(MAX(numero), 0) FROM tickets WHERE rifa_id = $1`
	var maxNumero int
	if err := r.db.QueryRow(ctx, query, rifaID).Scan(&maxNumero); err != nil {
		zap.L().Error("can't get max ticket numero", zap.Error(err))
		return 0, err
	}
	return maxNumero, nil
}

func (r *Repository) SaveTickets(ctx context.Context, tickets []domain.Ticket) error {
	query := `
		INSERT INTO tickets (rifa_id, usuario_id, numero, codigo, precio_pagado, activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fecha_compra
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range tickets {
			t := &tickets[i]
			err := r.db.QueryRow(ctx, query, t.RifaID, t.UsuarioID, t.Numero, t.Codigo,
				t.PrecioPagado, t.Activo).Scan(&t.ID, &t.FechaCompra)
			if err != nil {
				zap.L().Error("can't save ticket", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindTicketsByRifa(ctx context.Context, rifaID int) ([]domain.Ticket, error) {
	query := `
		SELECT id, rifa_id, usuario_id, numero, codigo, precio_pagado, activo, fecha_compra
		FROM tickets
		WHERE rifa_id = $1 AND activo = TRUE
		ORDER BY numero ASC
	`
	rows, err := r.db.Query(ctx, query, rifaID)
	if err != nil {
		zap.L().Error("can't list tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		err := rows.Scan(&t.ID, &t.RifaID, &t.UsuarioID, &t.Numero, &t.Codigo,
			&t.PrecioPagado, &t.Activo, &t.FechaCompra)
		if err != nil {
			zap.L().Error("can't scan ticket row", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
