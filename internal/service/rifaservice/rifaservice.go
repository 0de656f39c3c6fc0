// Package rifaservice cubre el ciclo de una rifa: creación, venta de tickets
// numerados y el sorteo del ganador.
package rifaservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/pg"
	"github.com/jmorillo/sanrifa/internal/viability"
	"github.com/jmorillo/sanrifa/pkg/validate"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Rifa, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Rifa, error)
	Save(ctx context.Context, rifa *domain.Rifa) error
	Update(ctx context.Context, rifa *domain.Rifa) error
	List(ctx context.Context) ([]domain.Rifa, error)
	MaxNumeroTicket(ctx context.Context, rifaID int) (int, error)
	SaveTickets(ctx context.Context, tickets []domain.Ticket) error
	FindTicketsByRifa(ctx context.Context, rifaID int) ([]domain.Ticket, error)
}

// Facturador emite la factura de una compra dentro de la misma transacción.
type Facturador interface {
	CrearFactura(ctx context.Context, factura *domain.Factura) (*domain.Factura, error)
}

type Notificador interface {
	Notificar(ctx context.Context, usuarioID int, titulo, mensaje, tipoObjetivo string, objetivoID int)
}

// Rand abstrae la fuente de azar del sorteo para poder sembrarla en pruebas.
type Rand interface {
	Intn(n int) int
}

type Service struct {
	repo        Repo
	txManager   pg.TXManager
	facturador  Facturador
	registrador audit.Registrador
	notificador Notificador
	rand        Rand
}

func New(repo Repo, txManager pg.TXManager, facturador Facturador, registrador audit.Registrador, notificador Notificador, rand Rand) *Service {
	return &Service{
		repo:        repo,
		txManager:   txManager,
		facturador:  facturador,
		registrador: registrador,
		notificador: notificador,
		rand:        rand,
	}
}

// CrearRifa valida los parámetros contra la calculadora de rentabilidad y
// deja la rifa en venta de inmediato.
func (s *Service) CrearRifa(ctx context.Context, rifa *domain.Rifa) (*domain.Rifa, error) {
	verr := &domain.ValidationError{}
	if rifa.Nombre == "" {
		verr.Agregar("nombre", "es obligatorio")
	}
	if rifa.PrecioTicket <= 0 {
		verr.Agregar("precio_ticket", "debe ser mayor a 0")
	}
	if rifa.TotalTickets <= 0 {
		verr.Agregar("total_tickets", "debe ser mayor a 0")
	}
	if !verr.Vacio() {
		return nil, verr
	}

	contexto := viability.CalcularRifaContexto(rifa.PrecioTicket, rifa.TotalTickets, rifa.ValorPremio)
	if !contexto.Viable {
		for _, alerta := range contexto.Alertas {
			verr.Agregar("parametros", alerta)
		}
		return nil, verr
	}

	rifa.Estado = domain.RifaActiva
	rifa.TicketsDisponibles = rifa.TotalTickets
	if err := s.repo.Save(ctx, rifa); err != nil {
		zap.L().Error("can't create rifa", zap.Error(err))
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &rifa.OrganizadorID,
		Accion:       "rifa_creada",
		Descripcion:  fmt.Sprintf("rifa %q con %d tickets", rifa.Nombre, rifa.TotalTickets),
		TipoObjetivo: domain.ObjetivoRifa,
		ObjetivoID:   rifa.ID,
	})
	return rifa, nil
}

// ComprarTickets vende cantidad tickets al usuario. Todo o nada: si el stock
// no alcanza no se vende ninguno. Los números se asignan consecutivos a
// partir del mayor ya vendido y la factura se emite en la misma transacción.
func (s *Service) ComprarTickets(ctx context.Context, rifaID, usuarioID, cantidad int) ([]domain.Ticket, *domain.Factura, error) {
	if cantidad <= 0 {
		verr := &domain.ValidationError{}
		return nil, nil, verr.Agregar("cantidad", "debe ser mayor a 0")
	}

	var tickets []domain.Ticket
	var factura *domain.Factura
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rifa, err := s.repo.FindByIDForUpdate(ctx, rifaID)
		if err != nil {
			return err
		}
		if rifa == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if rifa.Estado != domain.RifaActiva {
			return domain.ErrRifaCerrada
		}
		if rifa.TicketsDisponibles < cantidad {
			return domain.ErrStockInsuficiente
		}

		maxNumero, err := s.repo.MaxNumeroTicket(ctx, rifaID)
		if err != nil {
			return err
		}

		tickets = make([]domain.Ticket, 0, cantidad)
		for i := 1; i <= cantidad; i++ {
			tickets = append(tickets, domain.Ticket{
				RifaID:       rifaID,
				UsuarioID:    usuarioID,
				Numero:       maxNumero + i,
				Codigo:       validate.NuevoCodigo("TCK"),
				PrecioPagado: rifa.PrecioTicket,
				Activo:       true,
			})
		}
		if err := s.repo.SaveTickets(ctx, tickets); err != nil {
			return err
		}

		rifa.TicketsDisponibles -= cantidad
		if rifa.TicketsDisponibles < 0 {
			return &domain.ConsistencyError{
				Detalle: fmt.Sprintf("rifa %d quedó con stock negativo", rifa.ID),
			}
		}
		if err := s.repo.Update(ctx, rifa); err != nil {
			return err
		}

		factura, err = s.facturador.CrearFactura(ctx, &domain.Factura{
			UsuarioID:    usuarioID,
			TipoObjetivo: domain.ObjetivoRifa,
			ObjetivoID:   rifaID,
			MontoTotal:   rifa.PrecioTicket * float64(cantidad),
			Notas:        fmt.Sprintf("Compra de %d tickets", cantidad),
		})
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &usuarioID,
		Accion:       "tickets_comprados",
		Descripcion:  fmt.Sprintf("%d tickets, factura %s", cantidad, factura.Codigo),
		TipoObjetivo: domain.ObjetivoRifa,
		ObjetivoID:   rifaID,
	})
	s.notificador.Notificar(ctx, usuarioID, "Tickets reservados",
		fmt.Sprintf("Reservaste %d tickets. Paga la factura %s para confirmarlos.", cantidad, factura.Codigo),
		domain.ObjetivoRifa, rifaID)
	return tickets, factura, nil
}

// SortearGanador elige un ticket al azar y finaliza la rifa. Repetir el
// sorteo sobre una rifa finalizada devuelve el mismo ganador.
func (s *Service) SortearGanador(ctx context.Context, rifaID, usuarioID int) (*domain.Rifa, error) {
	var rifa *domain.Rifa
	var yaSorteada bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		rifa, err = s.repo.FindByIDForUpdate(ctx, rifaID)
		if err != nil {
			return err
		}
		if rifa == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if rifa.OrganizadorID != usuarioID {
			return domain.ErrOperacionNoAutorizada
		}
		if rifa.Estado == domain.RifaFinalizada && rifa.GanadorID != nil {
			yaSorteada = true
			return nil
		}
		if rifa.Estado != domain.RifaActiva && rifa.Estado != domain.RifaPausada {
			return domain.ErrRifaCerrada
		}

		tickets, err := s.repo.FindTicketsByRifa(ctx, rifaID)
		if err != nil {
			return err
		}
		if len(tickets) == 0 {
			return domain.ErrRifaSinTickets
		}

		ganador := tickets[s.rand.Intn(len(tickets))]
		rifa.GanadorID = &ganador.UsuarioID
		rifa.Estado = domain.RifaFinalizada
		return s.repo.Update(ctx, rifa)
	})
	if err != nil {
		return nil, err
	}
	if yaSorteada {
		return rifa, nil
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &usuarioID,
		Accion:       "rifa_sorteada",
		Descripcion:  fmt.Sprintf("ganador usuario %d", *rifa.GanadorID),
		TipoObjetivo: domain.ObjetivoRifa,
		ObjetivoID:   rifaID,
	})
	s.notificador.Notificar(ctx, *rifa.GanadorID, "¡Ganaste la rifa!",
		fmt.Sprintf("Tu ticket salió ganador en la rifa %q.", rifa.Nombre),
		domain.ObjetivoRifa, rifaID)
	return rifa, nil
}

func (s *Service) GetRifa(ctx context.Context, rifaID int) (*domain.Rifa, error) {
	rifa, err := s.repo.FindByID(ctx, rifaID)
	if err != nil {
		zap.L().Error("failed to get rifa", zap.Error(err))
		return nil, err
	}
	if rifa == nil {
		return nil, domain.ErrRecursoNoEncontrado
	}
	return rifa, nil
}

func (s *Service) ListRifas(ctx context.Context) ([]domain.Rifa, error) {
	rifas, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list rifas", zap.Error(err))
		return nil, err
	}
	return rifas, nil
}

func (s *Service) GetTickets(ctx context.Context, rifaID int) ([]domain.Ticket, error) {
	tickets, err := s.repo.FindTicketsByRifa(ctx, rifaID)
	if err != nil {
		zap.L().Error("failed to list tickets", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}
