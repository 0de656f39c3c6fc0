// Package facturaservice emite y liquida facturas. La confirmación de una
// factura de cupo arrastra el cupo y su participación en la misma
// transacción: o avanza todo o no avanza nada.
package facturaservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/pg"
	"github.com/jmorillo/sanrifa/pkg/validate"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Factura, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Factura, error)
	Save(ctx context.Context, factura *domain.Factura) error
	Update(ctx context.Context, factura *domain.Factura) error
	FindByUsuario(ctx context.Context, usuarioID int) ([]domain.Factura, error)
	SavePago(ctx context.Context, pago *domain.PagoSimulado) error
	FindPagoByID(ctx context.Context, id int) (*domain.PagoSimulado, error)
	UpdatePago(ctx context.Context, pago *domain.PagoSimulado) error
}

// CupoRepo es la porción del repositorio de sanes que necesita la cascada de
// confirmación.
type CupoRepo interface {
	FindCupoByID(ctx context.Context, id int) (*domain.Cupo, error)
	UpdateCupo(ctx context.Context, cupo *domain.Cupo) error
	FindParticipacionByID(ctx context.Context, id int) (*domain.Participacion, error)
	UpdateParticipacion(ctx context.Context, p *domain.Participacion) error
}

type Notificador interface {
	Notificar(ctx context.Context, usuarioID int, titulo, mensaje, tipoObjetivo string, objetivoID int)
}

// Plazo de pago por omisión de una factura emitida.
const plazoFactura = 30 * 24 * time.Hour

const monedaPorOmision = "USD"

type Service struct {
	repo        Repo
	cupoRepo    CupoRepo
	txManager   pg.TXManager
	registrador audit.Registrador
	notificador Notificador
}

func New(repo Repo, cupoRepo CupoRepo, txManager pg.TXManager, registrador audit.Registrador, notificador Notificador) *Service {
	return &Service{
		repo:        repo,
		cupoRepo:    cupoRepo,
		txManager:   txManager,
		registrador: registrador,
		notificador: notificador,
	}
}

func prefijoCodigo(tipoObjetivo string) (string, error) {
	switch tipoObjetivo {
	case domain.ObjetivoSan:
		return "SAN", nil
	case domain.ObjetivoRifa:
		return "RIFA", nil
	case domain.ObjetivoCupo:
		return "CUPO", nil
	}
	return "", domain.ErrObjetivoNoSoportado
}

// CrearFactura emite una factura pendiente con código verificable y fecha de
// vencimiento a 30 días salvo indicación contraria.
func (s *Service) CrearFactura(ctx context.Context, factura *domain.Factura) (*domain.Factura, error) {
	prefijo, err := prefijoCodigo(factura.TipoObjetivo)
	if err != nil {
		return nil, err
	}
	if factura.MontoTotal <= 0 {
		verr := &domain.ValidationError{}
		return nil, verr.Agregar("monto_total", "debe ser mayor a 0")
	}

	factura.Codigo = validate.NuevoCodigo(prefijo)
	factura.EstadoPago = domain.FacturaPendiente
	factura.MontoPagado = 0
	if factura.FechaVencimiento.IsZero() {
		factura.FechaVencimiento = time.Now().Add(plazoFactura)
	}

	if err := s.repo.Save(ctx, factura); err != nil {
		zap.L().Error("can't create factura", zap.Error(err))
		return nil, err
	}
	return factura, nil
}

// ConfirmarPago liquida una factura pendiente. monto en nil significa pagar
// el total. Para facturas de cupo la confirmación marca el cupo como pagado
// y suma la cuota a la participación; cualquier inconsistencia revierte la
// factura junto con la cascada.
func (s *Service) ConfirmarPago(ctx context.Context, facturaID int, monto *float64, metodoPago string) (*domain.Factura, error) {
	var factura *domain.Factura
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		factura, err = s.repo.FindByIDForUpdate(ctx, facturaID)
		if err != nil {
			return err
		}
		if factura == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if factura.EstadoPago != domain.FacturaPendiente {
			return domain.ErrFacturaYaLiquidada
		}

		ahora := time.Now()
		factura.MontoPagado = factura.MontoTotal
		if monto != nil {
			factura.MontoPagado = *monto
		}
		factura.EstadoPago = domain.FacturaConfirmada
		if metodoPago != "" {
			factura.MetodoPago = metodoPago
		}
		factura.FechaPago = &ahora
		if err := s.repo.Update(ctx, factura); err != nil {
			return err
		}

		if factura.TipoObjetivo == domain.ObjetivoCupo {
			return s.confirmarCupo(ctx, factura, ahora)
		}
		return nil
	})
	if err != nil {
		if domain.EsConsistencia(err) {
			zap.L().Error("confirmation cascade rolled back", zap.Int("factura_id", facturaID), zap.Error(err))
			s.registrador.Registrar(ctx, domain.RegistroSistema{
				Accion:      "factura_inconsistente",
				Nivel:       domain.NivelError,
				Descripcion: err.Error(),
				ObjetivoID:  facturaID,
			})
		}
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &factura.UsuarioID,
		Accion:       "factura_confirmada",
		Descripcion:  fmt.Sprintf("factura %s por $%.2f", factura.Codigo, factura.MontoPagado),
		TipoObjetivo: factura.TipoObjetivo,
		ObjetivoID:   factura.ObjetivoID,
	})
	s.notificador.Notificar(ctx, factura.UsuarioID, "Pago confirmado",
		fmt.Sprintf("Tu factura %s quedó confirmada.", factura.Codigo),
		factura.TipoObjetivo, factura.ObjetivoID)
	return factura, nil
}

func (s *Service) confirmarCupo(ctx context.Context, factura *domain.Factura, ahora time.Time) error {
	cupo, err := s.cupoRepo.FindCupoByID(ctx, factura.ObjetivoID)
	if err != nil {
		return err
	}
	if cupo == nil {
		return &domain.ConsistencyError{
			Detalle: fmt.Sprintf("factura %s apunta al cupo %d inexistente", factura.Codigo, factura.ObjetivoID),
		}
	}
	if cupo.Estado == domain.CupoPagado {
		return &domain.ConsistencyError{
			Detalle: fmt.Sprintf("cupo %d ya estaba pagado al confirmar la factura %s", cupo.ID, factura.Codigo),
		}
	}
	if cupo.Estado != domain.CupoAsignado {
		return domain.ErrTransicionInvalida
	}

	cupo.Estado = domain.CupoPagado
	cupo.FechaPago = &ahora
	cupo.FacturaID = &factura.ID
	if err := s.cupoRepo.UpdateCupo(ctx, cupo); err != nil {
		return err
	}

	if cupo.ParticipacionID == nil {
		return &domain.ConsistencyError{
			Detalle: fmt.Sprintf("cupo %d pagado sin participación asociada", cupo.ID),
		}
	}
	participacion, err := s.cupoRepo.FindParticipacionByID(ctx, *cupo.ParticipacionID)
	if err != nil {
		return err
	}
	if participacion == nil {
		return &domain.ConsistencyError{
			Detalle: fmt.Sprintf("participación %d del cupo %d no existe", *cupo.ParticipacionID, cupo.ID),
		}
	}
	participacion.CuotasPagadas++
	participacion.FechaUltimaCuota = &ahora
	return s.cupoRepo.UpdateParticipacion(ctx, participacion)
}

// RechazarPago marca la factura como rechazada sin tocar cupos ni tickets.
func (s *Service) RechazarPago(ctx context.Context, facturaID int, notas string) (*domain.Factura, error) {
	var factura *domain.Factura
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		factura, err = s.repo.FindByIDForUpdate(ctx, facturaID)
		if err != nil {
			return err
		}
		if factura == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if factura.EstadoPago != domain.FacturaPendiente {
			return domain.ErrFacturaYaLiquidada
		}

		factura.EstadoPago = domain.FacturaRechazada
		if notas != "" {
			factura.Notas = notas
		}
		return s.repo.Update(ctx, factura)
	})
	if err != nil {
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &factura.UsuarioID,
		Accion:       "factura_rechazada",
		Nivel:        domain.NivelAlerta,
		Descripcion:  fmt.Sprintf("factura %s", factura.Codigo),
		TipoObjetivo: factura.TipoObjetivo,
		ObjetivoID:   factura.ObjetivoID,
	})
	s.notificador.Notificar(ctx, factura.UsuarioID, "Pago rechazado",
		fmt.Sprintf("El pago de la factura %s fue rechazado.", factura.Codigo),
		factura.TipoObjetivo, factura.ObjetivoID)
	return factura, nil
}

func (s *Service) CancelarFactura(ctx context.Context, facturaID int) (*domain.Factura, error) {
	var factura *domain.Factura
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		factura, err = s.repo.FindByIDForUpdate(ctx, facturaID)
		if err != nil {
			return err
		}
		if factura == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if factura.EstadoPago != domain.FacturaPendiente {
			return domain.ErrFacturaYaLiquidada
		}
		factura.EstadoPago = domain.FacturaCancelada
		return s.repo.Update(ctx, factura)
	})
	if err != nil {
		return nil, err
	}
	return factura, nil
}

func (s *Service) GetFactura(ctx context.Context, facturaID int) (*domain.Factura, error) {
	factura, err := s.repo.FindByID(ctx, facturaID)
	if err != nil {
		zap.L().Error("failed to get factura", zap.Error(err))
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrRecursoNoEncontrado
	}
	return factura, nil
}

func (s *Service) GetFacturas(ctx context.Context, usuarioID int) ([]domain.Factura, error) {
	facturas, err := s.repo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		zap.L().Error("failed to list facturas", zap.Error(err))
		return nil, err
	}
	return facturas, nil
}

// CrearPago registra una intención de pago pendiente sobre una factura
// pendiente. El procesador en segundo plano la resolverá.
func (s *Service) CrearPago(ctx context.Context, usuarioID, facturaID int, metodoPago, moneda string) (*domain.PagoSimulado, error) {
	factura, err := s.repo.FindByID(ctx, facturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrRecursoNoEncontrado
	}
	if factura.UsuarioID != usuarioID {
		return nil, domain.ErrOperacionNoAutorizada
	}
	if factura.EstadoPago != domain.FacturaPendiente {
		return nil, domain.ErrFacturaYaLiquidada
	}

	if moneda == "" {
		moneda = monedaPorOmision
	}
	pago := &domain.PagoSimulado{
		CodigoTransaccion: validate.NuevoCodigo("PAG"),
		UsuarioID:         usuarioID,
		FacturaID:         facturaID,
		MetodoPago:        metodoPago,
		Monto:             factura.MontoTotal,
		Moneda:            moneda,
		Estado:            domain.PagoPendiente,
		Intentos:          1,
	}
	if err := s.repo.SavePago(ctx, pago); err != nil {
		zap.L().Error("can't create pago", zap.Error(err))
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:   &usuarioID,
		Accion:      "pago_creado",
		Descripcion: fmt.Sprintf("pago %s por factura %s", pago.CodigoTransaccion, factura.Codigo),
		ObjetivoID:  facturaID,
	})
	return pago, nil
}

func (s *Service) GetPago(ctx context.Context, pagoID int) (*domain.PagoSimulado, error) {
	pago, err := s.repo.FindPagoByID(ctx, pagoID)
	if err != nil {
		zap.L().Error("failed to get pago", zap.Error(err))
		return nil, err
	}
	if pago == nil {
		return nil, domain.ErrRecursoNoEncontrado
	}
	return pago, nil
}

// ReintentarPago reencola un pago fallido o cancelado. Cualquier otro estado
// es rechazado.
func (s *Service) ReintentarPago(ctx context.Context, usuarioID, pagoID int) (*domain.PagoSimulado, error) {
	var pago *domain.PagoSimulado
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		pago, err = s.repo.FindPagoByID(ctx, pagoID)
		if err != nil {
			return err
		}
		if pago == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if pago.UsuarioID != usuarioID {
			return domain.ErrOperacionNoAutorizada
		}
		if pago.Estado != domain.PagoFallido && pago.Estado != domain.PagoCancelado {
			return domain.ErrPagoNoReintentable
		}

		pago.Estado = domain.PagoPendiente
		pago.Intentos++
		pago.FechaProcesamiento = nil
		pago.ReferenciaExterna = ""
		return s.repo.UpdatePago(ctx, pago)
	})
	if err != nil {
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:   &usuarioID,
		Accion:      "pago_reintentado",
		Descripcion: fmt.Sprintf("pago %s, intento %d", pago.CodigoTransaccion, pago.Intentos),
		ObjetivoID:  pago.FacturaID,
	})
	return pago, nil
}
