// Package gateway es la pasarela de pagos simulada. Un ciclo en segundo
// plano toma los pagos pendientes, les aplica una demora y un resultado al
// azar, y confirma la factura de los que salen exitosos. El mismo ciclo
// barre los cupos con fecha límite superada.
package gateway

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jmorillo/sanrifa/internal/config"
	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/pkg/validate"
)

var processingPagos sync.Map

// PagoRepo es la porción del repositorio de facturas que usa la pasarela.
type PagoRepo interface {
	FindPagosPendientes(ctx context.Context, limit uint32) ([]domain.PagoSimulado, error)
	UpdatePago(ctx context.Context, pago *domain.PagoSimulado) error
}

// Confirmador liquida la factura de un pago exitoso.
type Confirmador interface {
	ConfirmarPago(ctx context.Context, facturaID int, monto *float64, metodoPago string) (*domain.Factura, error)
}

// Vencedor aplica la transición de vencimiento pendiente.
type Vencedor interface {
	MarcarVencidos(ctx context.Context) (int, error)
}

// Rand abstrae la fuente de azar del resultado y la demora simulada.
type Rand interface {
	Float64() float64
}

type Service struct {
	pagoRepo    PagoRepo
	confirmador Confirmador
	vencedor    Vencedor
	rand        Rand
	limit       uint32
	workerPool  WorkerPoolI
	interval    time.Duration
	tasaExito   float64
	demoraMax   time.Duration
}

func New(cfg *config.Config, pagoRepo PagoRepo, confirmador Confirmador, vencedor Vencedor, rand Rand) *Service {
	return &Service{
		pagoRepo:    pagoRepo,
		confirmador: confirmador,
		vencedor:    vencedor,
		rand:        rand,
		limit:       1000,
		workerPool:  NewWorkerPool(10),
		interval:    cfg.GatewayInterval,
		tasaExito:   cfg.GatewayExito,
		demoraMax:   cfg.GatewayDemoraMax,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment gateway started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping gateway")
			return
		case <-ticker.C:
			s.processPagos(ctx)
			if _, err := s.vencedor.MarcarVencidos(ctx); err != nil {
				zap.L().Error("Failed to expire cupos", zap.Error(err))
			}
		}
	}
}

func (s *Service) processPagos(ctx context.Context) {
	pagos, err := s.pagoRepo.FindPagosPendientes(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pagos for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, pago := range pagos {
		pago := pago

		if _, loaded := processingPagos.LoadOrStore(pago.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPagos.Delete(pago.ID)
				return s.handlePago(ctx, pago)
			})
			if err != nil {
				processingPagos.Delete(pago.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing pagos", zap.Error(err))
	}
}

// handlePago resuelve un pago pendiente: procesando, demora simulada y un
// resultado sorteado contra la tasa de éxito. La factura se confirma antes
// de marcar exitoso; si la cascada falla el pago queda fallido y puede
// reintentarse.
func (s *Service) handlePago(ctx context.Context, pago domain.PagoSimulado) error {
	inicio := time.Now()

	pago.Estado = domain.PagoProcesando
	if err := s.pagoRepo.UpdatePago(ctx, &pago); err != nil {
		return fmt.Errorf("failed to mark pago %s as processing: %w", pago.CodigoTransaccion, err)
	}

	if s.demoraMax > 0 {
		demora := time.Duration(s.rand.Float64() * float64(s.demoraMax))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(demora):
		}
	}

	ahora := time.Now()
	pago.FechaProcesamiento = &ahora
	pago.TiempoProcesamiento = int(time.Since(inicio).Milliseconds())
	pago.ReferenciaExterna = validate.NuevoCodigo("REF")

	if s.rand.Float64() < s.tasaExito {
		if _, err := s.confirmador.ConfirmarPago(ctx, pago.FacturaID, &pago.Monto, pago.MetodoPago); err != nil {
			pago.Estado = domain.PagoFallido
			if uerr := s.pagoRepo.UpdatePago(ctx, &pago); uerr != nil {
				zap.L().Error("Failed to mark pago as failed after confirmation error",
					zap.String("codigo", pago.CodigoTransaccion), zap.Error(uerr))
			}
			return fmt.Errorf("failed to confirm factura %d for pago %s: %w", pago.FacturaID, pago.CodigoTransaccion, err)
		}
		pago.Estado = domain.PagoExitoso
		if err := s.pagoRepo.UpdatePago(ctx, &pago); err != nil {
			return fmt.Errorf("failed to mark pago %s as successful: %w", pago.CodigoTransaccion, err)
		}
		zap.L().Info("Pago processed successfully",
			zap.String("codigo", pago.CodigoTransaccion), zap.Int("factura_id", pago.FacturaID))
		return nil
	}

	pago.Estado = domain.PagoFallido
	if err := s.pagoRepo.UpdatePago(ctx, &pago); err != nil {
		return fmt.Errorf("failed to mark pago %s as failed: %w", pago.CodigoTransaccion, err)
	}
	zap.L().Info("Pago declined by simulation", zap.String("codigo", pago.CodigoTransaccion))
	return nil
}
