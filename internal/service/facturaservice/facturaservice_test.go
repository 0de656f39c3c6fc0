package facturaservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCupoRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	cupoRepo := NewMockCupoRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	notificador := NewMockNotificador(ctrl)
	notificador.EXPECT().Notificar(gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	service := New(repo, cupoRepo, txManager, audit.Nop{}, notificador)
	return service, repo, cupoRepo
}

func facturaPendiente(tipoObjetivo string) *domain.Factura {
	return &domain.Factura{
		ID:           5,
		Codigo:       "CUPO-79927398713",
		UsuarioID:    42,
		TipoObjetivo: tipoObjetivo,
		ObjetivoID:   3,
		MontoTotal:   100,
		EstadoPago:   domain.FacturaPendiente,
	}
}

func TestCrearFactura(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name           string
		factura        *domain.Factura
		prepareMock    func()
		expectedError  error
		expectedPrefix string
	}{
		{
			name:          "Unknown objetivo type is rejected",
			factura:       &domain.Factura{TipoObjetivo: "premio", MontoTotal: 10},
			prepareMock:   func() {},
			expectedError: domain.ErrObjetivoNoSoportado,
		},
		{
			name:        "Zero amount fails validation",
			factura:     &domain.Factura{TipoObjetivo: domain.ObjetivoSan},
			prepareMock: func() {},
			expectedError: &domain.ValidationError{Campos: []domain.CampoInvalido{
				{Campo: "monto_total", Detalle: "debe ser mayor a 0"},
			}},
		},
		{
			name:    "Invoice gets a coded number and a 30 day deadline",
			factura: &domain.Factura{UsuarioID: 42, TipoObjetivo: domain.ObjetivoRifa, ObjetivoID: 3, MontoTotal: 30},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedPrefix: "RIFA-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			factura, err := service.CrearFactura(context.Background(), tt.factura)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(factura.Codigo, tt.expectedPrefix))
			assert.Equal(t, domain.FacturaPendiente, factura.EstadoPago)
			assert.WithinDuration(t, time.Now().Add(plazoFactura), factura.FechaVencimiento, time.Minute)
		})
	}
}

func TestConfirmarPago(t *testing.T) {
	service, repo, cupoRepo := NewMock(t)

	participacionID := 11
	monto := 80.0

	tests := []struct {
		name          string
		monto         *float64
		prepareMock   func()
		expectedError error
		wantRollback  bool
		expectedPago  float64
	}{
		{
			name: "Already settled invoice cannot be confirmed again",
			prepareMock: func() {
				f := facturaPendiente(domain.ObjetivoRifa)
				f.EstadoPago = domain.FacturaConfirmada
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(f, nil)
			},
			expectedError: domain.ErrFacturaYaLiquidada,
		},
		{
			name: "Rifa invoice confirms without cascade",
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(facturaPendiente(domain.ObjetivoRifa), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedPago: 100,
		},
		{
			name:  "Partial amount is recorded when given",
			monto: &monto,
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(facturaPendiente(domain.ObjetivoRifa), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedPago: 80,
		},
		{
			name: "Cupo invoice cascades to cupo and participacion",
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(facturaPendiente(domain.ObjetivoCupo), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				cupoRepo.EXPECT().FindCupoByID(gomock.Any(), 3).Return(
					&domain.Cupo{ID: 3, SanID: 7, ParticipacionID: &participacionID, Estado: domain.CupoAsignado}, nil)
				cupoRepo.EXPECT().UpdateCupo(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cupo *domain.Cupo) error {
						assert.Equal(t, domain.CupoPagado, cupo.Estado)
						assert.Equal(t, 5, *cupo.FacturaID)
						assert.NotNil(t, cupo.FechaPago)
						return nil
					})
				cupoRepo.EXPECT().FindParticipacionByID(gomock.Any(), 11).Return(
					&domain.Participacion{ID: 11, CuotasPagadas: 2, Activa: true}, nil)
				cupoRepo.EXPECT().UpdateParticipacion(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Participacion) error {
						assert.Equal(t, 3, p.CuotasPagadas)
						assert.NotNil(t, p.FechaUltimaCuota)
						return nil
					})
			},
			expectedPago: 100,
		},
		{
			name: "Cupo already paid forces a rollback",
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(facturaPendiente(domain.ObjetivoCupo), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				cupoRepo.EXPECT().FindCupoByID(gomock.Any(), 3).Return(
					&domain.Cupo{ID: 3, Estado: domain.CupoPagado}, nil)
			},
			wantRollback: true,
		},
		{
			name: "Cascade failure mid transaction surfaces the error",
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(facturaPendiente(domain.ObjetivoCupo), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				cupoRepo.EXPECT().FindCupoByID(gomock.Any(), 3).Return(
					&domain.Cupo{ID: 3, SanID: 7, ParticipacionID: &participacionID, Estado: domain.CupoAsignado}, nil)
				cupoRepo.EXPECT().UpdateCupo(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			factura, err := service.ConfirmarPago(context.Background(), 5, tt.monto, "transferencia")
			if tt.wantRollback {
				assert.Error(t, err)
				assert.True(t, domain.EsConsistencia(err))
				return
			}
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.FacturaConfirmada, factura.EstadoPago)
			assert.Equal(t, tt.expectedPago, factura.MontoPagado)
			assert.NotNil(t, factura.FechaPago)
		})
	}
}

func TestRechazarPago(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(facturaPendiente(domain.ObjetivoCupo), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	factura, err := service.RechazarPago(context.Background(), 5, "fondos insuficientes")
	assert.NoError(t, err)
	assert.Equal(t, domain.FacturaRechazada, factura.EstadoPago)
	assert.Equal(t, "fondos insuficientes", factura.Notas)

	f := facturaPendiente(domain.ObjetivoCupo)
	f.EstadoPago = domain.FacturaRechazada
	repo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(f, nil)
	_, err = service.RechazarPago(context.Background(), 5, "")
	assert.ErrorIs(t, err, domain.ErrFacturaYaLiquidada)
}

func TestCrearPago(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		usuarioID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Only the invoice owner can pay it",
			usuarioID: 99,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(facturaPendiente(domain.ObjetivoRifa), nil)
			},
			expectedError: domain.ErrOperacionNoAutorizada,
		},
		{
			name:      "Settled invoice admits no new payment",
			usuarioID: 42,
			prepareMock: func() {
				f := facturaPendiente(domain.ObjetivoRifa)
				f.EstadoPago = domain.FacturaConfirmada
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(f, nil)
			},
			expectedError: domain.ErrFacturaYaLiquidada,
		},
		{
			name:      "New payment starts pendiente with the invoice total",
			usuarioID: 42,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(facturaPendiente(domain.ObjetivoRifa), nil)
				repo.EXPECT().SavePago(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			pago, err := service.CrearPago(context.Background(), tt.usuarioID, 5, "tarjeta", "")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.PagoPendiente, pago.Estado)
			assert.Equal(t, 100.0, pago.Monto)
			assert.Equal(t, monedaPorOmision, pago.Moneda)
			assert.Equal(t, 1, pago.Intentos)
			assert.True(t, strings.HasPrefix(pago.CodigoTransaccion, "PAG-"))
		})
	}
}

func TestReintentarPago(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		estado        string
		expectedError error
	}{
		{name: "Pending payment cannot be retried", estado: domain.PagoPendiente, expectedError: domain.ErrPagoNoReintentable},
		{name: "Successful payment cannot be retried", estado: domain.PagoExitoso, expectedError: domain.ErrPagoNoReintentable},
		{name: "Failed payment goes back to the queue", estado: domain.PagoFallido},
		{name: "Cancelled payment goes back to the queue", estado: domain.PagoCancelado},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ahora := time.Now()
			pago := &domain.PagoSimulado{
				ID: 8, UsuarioID: 42, FacturaID: 5, Estado: tt.estado,
				Intentos: 1, FechaProcesamiento: &ahora, ReferenciaExterna: "REF-1",
			}
			repo.EXPECT().FindPagoByID(gomock.Any(), 8).Return(pago, nil)
			if tt.expectedError == nil {
				repo.EXPECT().UpdatePago(gomock.Any(), gomock.Any()).Return(nil)
			}

			resultado, err := service.ReintentarPago(context.Background(), 42, 8)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.PagoPendiente, resultado.Estado)
			assert.Equal(t, 2, resultado.Intentos)
			assert.Nil(t, resultado.FechaProcesamiento)
			assert.Empty(t, resultado.ReferenciaExterna)
		})
	}
}
