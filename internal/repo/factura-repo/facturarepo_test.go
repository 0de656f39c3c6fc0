package facturarepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/jmorillo/sanrifa/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var columnasFacturaTest = []string{
	"id", "codigo", "usuario_id", "tipo_objetivo", "objetivo_id", "monto_total",
	"monto_pagado", "estado_pago", "metodo_pago", "fecha_emision", "fecha_vencimiento",
	"fecha_pago", "notas",
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	emision := time.Now()
	vence := emision.Add(30 * 24 * time.Hour)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Factura
	}{
		{
			name: "Factura exists",
			id:   5,
			mockSetup: func() {
				rows := pgxmock.NewRows(columnasFacturaTest).
					AddRow(5, "CUPO-79927398713", 42, "cupo", 3, 100.0, 0.0, "pendiente", "", emision, vence, nil, "")
				mock.ExpectQuery(regexp.QuoteMeta("FROM facturas WHERE id = $1")).
					WithArgs(5).
					WillReturnRows(rows)
			},
			result: &domain.Factura{
				ID: 5, Codigo: "CUPO-79927398713", UsuarioID: 42,
				TipoObjetivo: "cupo", ObjetivoID: 3, MontoTotal: 100.0,
				EstadoPago: "pendiente", FechaEmision: emision, FechaVencimiento: vence,
			},
		},
		{
			name: "Factura does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM facturas WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   5,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM facturas WHERE id = $1")).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	vence := time.Now().Add(30 * 24 * time.Hour)
	emision := time.Now()

	tests := []struct {
		name      string
		factura   *domain.Factura
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save factura successfully",
			factura: &domain.Factura{
				Codigo: "RIFA-79927398713", UsuarioID: 42, TipoObjetivo: "rifa",
				ObjetivoID: 3, MontoTotal: 30.0, EstadoPago: "pendiente",
				FechaVencimiento: vence,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "fecha_emision"}).AddRow(9, emision)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO facturas")).
					WithArgs("RIFA-79927398713", 42, "rifa", 3, 30.0, 0.0, "pendiente", "", vence, "").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			factura: &domain.Factura{
				Codigo: "RIFA-79927398713", UsuarioID: 42, TipoObjetivo: "rifa",
				ObjetivoID: 3, MontoTotal: 30.0, EstadoPago: "pendiente",
				FechaVencimiento: vence,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO facturas")).
					WithArgs("RIFA-79927398713", 42, "rifa", 3, 30.0, 0.0, "pendiente", "", vence, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.factura)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 9, tt.factura.ID)
				assert.Equal(t, emision, tt.factura.FechaEmision)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	ahora := time.Now()

	t.Run("Update factura successfully", func(t *testing.T) {
		factura := &domain.Factura{
			ID: 5, MontoPagado: 100.0, EstadoPago: "confirmado",
			MetodoPago: "transferencia", FechaPago: &ahora,
		}
		mock.ExpectExec(regexp.QuoteMeta("UPDATE facturas")).
			WithArgs(100.0, "confirmado", "transferencia", &ahora, "", 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.Update(context.Background(), factura))
	})

	t.Run("Database error", func(t *testing.T) {
		factura := &domain.Factura{ID: 5, EstadoPago: "confirmado", FechaPago: &ahora}
		mock.ExpectExec(regexp.QuoteMeta("UPDATE facturas")).
			WithArgs(0.0, "confirmado", "", &ahora, "", 5).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Update(context.Background(), factura))
	})
}

var columnasPagoTest = []string{
	"id", "codigo_transaccion", "usuario_id", "factura_id", "metodo_pago", "monto",
	"moneda", "estado", "referencia_externa", "fecha_procesamiento", "tiempo_procesamiento",
	"intentos", "created_at", "updated_at",
}

func TestRepository_FindPagosPendientes(t *testing.T) {
	repo, mock := NewMock(t)
	creado := time.Now()

	tests := []struct {
		name      string
		limit     uint32
		mockSetup func()
		expectErr bool
		result    []domain.PagoSimulado
	}{
		{
			name:  "Pending payments found",
			limit: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows(columnasPagoTest).
					AddRow(8, "PAG-79927398713", 42, 5, "tarjeta", 100.0, "USD", "pendiente", "", nil, 0, 1, creado, creado).
					AddRow(9, "PAG-49927398716", 43, 6, "paypal", 50.0, "USD", "pendiente", "", nil, 0, 2, creado, creado)
				mock.ExpectQuery(regexp.QuoteMeta("FROM pagos_simulados")).
					WithArgs(2).
					WillReturnRows(rows)
			},
			result: []domain.PagoSimulado{
				{ID: 8, CodigoTransaccion: "PAG-79927398713", UsuarioID: 42, FacturaID: 5, MetodoPago: "tarjeta", Monto: 100.0, Moneda: "USD", Estado: "pendiente", Intentos: 1, CreatedAt: creado, UpdatedAt: creado},
				{ID: 9, CodigoTransaccion: "PAG-49927398716", UsuarioID: 43, FacturaID: 6, MetodoPago: "paypal", Monto: 50.0, Moneda: "USD", Estado: "pendiente", Intentos: 2, CreatedAt: creado, UpdatedAt: creado},
			},
		},
		{
			name:  "No pending payments",
			limit: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows(columnasPagoTest)
				mock.ExpectQuery(regexp.QuoteMeta("FROM pagos_simulados")).
					WithArgs(2).
					WillReturnRows(rows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			limit: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM pagos_simulados")).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPagosPendientes(context.Background(), tt.limit)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
