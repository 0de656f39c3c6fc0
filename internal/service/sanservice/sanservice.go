// Package sanservice mantiene la máquina de estados San/Cupo/Participación:
// altas, incorporación de participantes, asignación de cupos y la secuencia
// de turnos de cobro.
package sanservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/pg"
	"github.com/jmorillo/sanrifa/internal/viability"
)

type Repo interface {
	FindSanByID(ctx context.Context, id int) (*domain.San, error)
	FindSanByIDForUpdate(ctx context.Context, id int) (*domain.San, error)
	SaveSan(ctx context.Context, san *domain.San) error
	UpdateSan(ctx context.Context, san *domain.San) error
	ListSanes(ctx context.Context) ([]domain.San, error)
	FindParticipacion(ctx context.Context, sanID, usuarioID int) (*domain.Participacion, error)
	FindParticipacionByID(ctx context.Context, id int) (*domain.Participacion, error)
	SaveParticipacion(ctx context.Context, p *domain.Participacion) error
	UpdateParticipacion(ctx context.Context, p *domain.Participacion) error
	SaveCupos(ctx context.Context, cupos []domain.Cupo) error
	FindCupoByID(ctx context.Context, id int) (*domain.Cupo, error)
	FindCupoDisponibleForUpdate(ctx context.Context, sanID int) (*domain.Cupo, error)
	UpdateCupo(ctx context.Context, cupo *domain.Cupo) error
	MarcarCuposVencidos(ctx context.Context) (int, error)
	FindTurno(ctx context.Context, sanID, numeroTurno int) (*domain.TurnoSan, error)
	FindTurnosBySan(ctx context.Context, sanID int) ([]domain.TurnoSan, error)
	SaveTurno(ctx context.Context, turno *domain.TurnoSan) error
	UpdateTurno(ctx context.Context, turno *domain.TurnoSan) error
}

// Notificador avisa al usuario de cambios en sus participaciones.
type Notificador interface {
	Notificar(ctx context.Context, usuarioID int, titulo, mensaje, tipoObjetivo string, objetivoID int)
}

// Plazo de pago de un cupo recién asignado.
const plazoCupo = 30 * 24 * time.Hour

type Service struct {
	repo        Repo
	txManager   pg.TXManager
	registrador audit.Registrador
	notificador Notificador
}

func New(repo Repo, txManager pg.TXManager, registrador audit.Registrador, notificador Notificador) *Service {
	return &Service{
		repo:        repo,
		txManager:   txManager,
		registrador: registrador,
		notificador: notificador,
	}
}

func frecuenciaValida(f string) bool {
	switch f {
	case domain.FrecuenciaDiaria, domain.FrecuenciaSemanal, domain.FrecuenciaQuincenal, domain.FrecuenciaMensual:
		return true
	}
	return false
}

// CrearSan valida los parámetros contra la calculadora de viabilidad y
// persiste el san en estado borrador.
func (s *Service) CrearSan(ctx context.Context, san *domain.San) (*domain.San, error) {
	verr := &domain.ValidationError{}
	if san.Nombre == "" {
		verr.Agregar("nombre", "es obligatorio")
	}
	if san.PrecioTotal <= 0 {
		verr.Agregar("precio_total", "debe ser mayor a 0")
	}
	if san.NumeroCuotas <= 0 {
		verr.Agregar("numero_cuotas", "debe ser mayor a 0")
	}
	if san.TotalParticipantes < 2 {
		verr.Agregar("total_participantes", "se requieren al menos 2 participantes")
	}
	if !frecuenciaValida(san.FrecuenciaPago) {
		verr.Agregar("frecuencia_pago", "frecuencia desconocida")
	}
	if !verr.Vacio() {
		return nil, verr
	}

	contexto := viability.CalcularSanContexto(san.PrecioTotal, san.TotalParticipantes,
		san.FrecuenciaPago, san.FechaInicio, san.FechaFin, san.NumeroCuotas)
	if !contexto.Viable {
		for _, alerta := range contexto.Alertas {
			verr.Agregar("parametros", alerta)
		}
		return nil, verr
	}

	if san.MontoCuota == 0 {
		san.MontoCuota = contexto.CuotaPorParticipantePorPeriodo
	}
	san.Estado = domain.SanBorrador
	san.ParticipantesActuales = 0

	if err := s.repo.SaveSan(ctx, san); err != nil {
		zap.L().Error("can't create san", zap.Error(err))
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &san.OrganizadorID,
		Accion:       "san_creado",
		Descripcion:  fmt.Sprintf("san %q creado con %d cupos", san.Nombre, san.TotalParticipantes),
		TipoObjetivo: domain.ObjetivoSan,
		ObjetivoID:   san.ID,
	})
	return san, nil
}

// ActivarSan abre el san a participantes y materializa sus cupos, uno por
// puesto, numerados desde 1.
func (s *Service) ActivarSan(ctx context.Context, sanID, usuarioID int) (*domain.San, error) {
	var san *domain.San
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		san, err = s.repo.FindSanByIDForUpdate(ctx, sanID)
		if err != nil {
			return err
		}
		if san == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if san.OrganizadorID != usuarioID {
			return domain.ErrOperacionNoAutorizada
		}
		if san.Estado != domain.SanBorrador {
			return domain.ErrTransicionInvalida
		}

		cupos := make([]domain.Cupo, 0, san.TotalParticipantes)
		for i := 1; i <= san.TotalParticipantes; i++ {
			cupos = append(cupos, domain.Cupo{
				SanID:        san.ID,
				NumeroSemana: i,
				Estado:       domain.CupoDisponible,
				MontoCuota:   san.MontoCuota,
			})
		}
		if err := s.repo.SaveCupos(ctx, cupos); err != nil {
			return err
		}

		san.Estado = domain.SanActivo
		return s.repo.UpdateSan(ctx, san)
	})
	if err != nil {
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &usuarioID,
		Accion:       "san_activado",
		TipoObjetivo: domain.ObjetivoSan,
		ObjetivoID:   sanID,
	})
	return san, nil
}

// JoinSan incorpora un usuario a un san activo. Todo ocurre en una sola
// transacción con la fila del san bloqueada: capacidad, duplicados,
// creación de la participación y su turno de cobro.
func (s *Service) JoinSan(ctx context.Context, sanID, usuarioID int) (*domain.Participacion, error) {
	var participacion *domain.Participacion
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		san, err := s.repo.FindSanByIDForUpdate(ctx, sanID)
		if err != nil {
			return err
		}
		if san == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if san.Estado != domain.SanActivo {
			return domain.ErrSanCerrado
		}
		if san.CuposDisponibles() <= 0 {
			return domain.ErrSanLleno
		}

		existente, err := s.repo.FindParticipacion(ctx, sanID, usuarioID)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrParticipacionDuplicada
		}

		participacion = &domain.Participacion{
			SanID:      sanID,
			UsuarioID:  usuarioID,
			OrdenCobro: san.ParticipantesActuales + 1,
			Activa:     true,
		}
		if err := s.repo.SaveParticipacion(ctx, participacion); err != nil {
			return err
		}

		turno := &domain.TurnoSan{
			SanID:           sanID,
			ParticipacionID: participacion.ID,
			NumeroTurno:     participacion.OrdenCobro,
			Estado:          domain.TurnoPendiente,
		}
		if err := s.repo.SaveTurno(ctx, turno); err != nil {
			return err
		}

		san.ParticipantesActuales++
		if san.ParticipantesActuales > san.TotalParticipantes {
			return &domain.ConsistencyError{
				Detalle: fmt.Sprintf("san %d superó su capacidad (%d/%d)", san.ID, san.ParticipantesActuales, san.TotalParticipantes),
			}
		}
		return s.repo.UpdateSan(ctx, san)
	})
	if err != nil {
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &usuarioID,
		Accion:       "san_incorporacion",
		Descripcion:  fmt.Sprintf("orden de cobro %d", participacion.OrdenCobro),
		TipoObjetivo: domain.ObjetivoSan,
		ObjetivoID:   sanID,
	})
	s.notificador.Notificar(ctx, usuarioID, "Bienvenido al san",
		fmt.Sprintf("Te incorporaste con el turno de cobro %d.", participacion.OrdenCobro),
		domain.ObjetivoSan, sanID)
	return participacion, nil
}

// AsignarCupo toma el cupo disponible de menor número para la participación
// indicada. Sin cupos libres la operación falla, nunca degrada en silencio.
func (s *Service) AsignarCupo(ctx context.Context, sanID, participacionID int) (*domain.Cupo, error) {
	var cupo *domain.Cupo
	var participacion *domain.Participacion
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		san, err := s.repo.FindSanByIDForUpdate(ctx, sanID)
		if err != nil {
			return err
		}
		if san == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if san.Estado != domain.SanActivo {
			return domain.ErrSanCerrado
		}

		participacion, err = s.repo.FindParticipacionByID(ctx, participacionID)
		if err != nil {
			return err
		}
		if participacion == nil || participacion.SanID != sanID {
			return domain.ErrRecursoNoEncontrado
		}
		if !participacion.Activa {
			return domain.ErrParticipacionInactiva
		}

		cupo, err = s.repo.FindCupoDisponibleForUpdate(ctx, sanID)
		if err != nil {
			return err
		}
		if cupo == nil {
			return domain.ErrCupoSinCapacidad
		}
		if cupo.Estado != domain.CupoDisponible {
			return &domain.ConsistencyError{
				Detalle: fmt.Sprintf("cupo %d en estado %s recuperado como disponible", cupo.ID, cupo.Estado),
			}
		}

		vence := time.Now().Add(plazoCupo)
		cupo.ParticipacionID = &participacion.ID
		cupo.Estado = domain.CupoAsignado
		cupo.FechaVencimiento = &vence
		return s.repo.UpdateCupo(ctx, cupo)
	})
	if err != nil {
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:    &participacion.UsuarioID,
		Accion:       "cupo_asignado",
		Descripcion:  fmt.Sprintf("cupo semana %d", cupo.NumeroSemana),
		TipoObjetivo: domain.ObjetivoCupo,
		ObjetivoID:   cupo.ID,
	})
	s.notificador.Notificar(ctx, participacion.UsuarioID, "Cupo asignado",
		fmt.Sprintf("Se te asignó el cupo de la semana %d. Vence en 30 días.", cupo.NumeroSemana),
		domain.ObjetivoCupo, cupo.ID)
	return cupo, nil
}

// puedeActivarse exige que todo turno con número menor esté cumplido. El
// primer turno siempre es elegible.
func puedeActivarse(turnos []domain.TurnoSan, numeroTurno int) bool {
	for _, t := range turnos {
		if t.NumeroTurno < numeroTurno && t.Estado != domain.TurnoCumplido {
			return false
		}
	}
	return true
}

func (s *Service) ActivarTurno(ctx context.Context, sanID, numeroTurno int) (*domain.TurnoSan, error) {
	var turno *domain.TurnoSan
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		turnos, err := s.repo.FindTurnosBySan(ctx, sanID)
		if err != nil {
			return err
		}

		for i := range turnos {
			if turnos[i].NumeroTurno == numeroTurno {
				turno = &turnos[i]
			}
		}
		if turno == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if turno.Estado != domain.TurnoPendiente {
			return domain.ErrTransicionInvalida
		}
		if !puedeActivarse(turnos, numeroTurno) {
			return domain.ErrTurnoNoElegible
		}

		ahora := time.Now()
		turno.Estado = domain.TurnoActivo
		turno.FechaActivacion = &ahora
		return s.repo.UpdateTurno(ctx, turno)
	})
	if err != nil {
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		Accion:       "turno_activado",
		Descripcion:  fmt.Sprintf("turno %d", numeroTurno),
		TipoObjetivo: domain.ObjetivoSan,
		ObjetivoID:   sanID,
	})
	return turno, nil
}

// CumplirTurno marca el turno activo como cumplido. Si era el último, el san
// queda finalizado.
func (s *Service) CumplirTurno(ctx context.Context, sanID, numeroTurno int) (*domain.TurnoSan, error) {
	var turno *domain.TurnoSan
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		turno, err = s.repo.FindTurno(ctx, sanID, numeroTurno)
		if err != nil {
			return err
		}
		if turno == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if turno.Estado != domain.TurnoActivo {
			return domain.ErrTransicionInvalida
		}

		ahora := time.Now()
		turno.Estado = domain.TurnoCumplido
		turno.FechaCumplido = &ahora
		if err := s.repo.UpdateTurno(ctx, turno); err != nil {
			return err
		}

		turnos, err := s.repo.FindTurnosBySan(ctx, sanID)
		if err != nil {
			return err
		}
		san, err := s.repo.FindSanByIDForUpdate(ctx, sanID)
		if err != nil {
			return err
		}
		if san == nil {
			return domain.ErrRecursoNoEncontrado
		}
		if len(turnos) == san.TotalParticipantes && todosCumplidos(turnos) {
			san.Estado = domain.SanFinalizado
			return s.repo.UpdateSan(ctx, san)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		Accion:       "turno_cumplido",
		Descripcion:  fmt.Sprintf("turno %d", numeroTurno),
		TipoObjetivo: domain.ObjetivoSan,
		ObjetivoID:   sanID,
	})
	return turno, nil
}

func todosCumplidos(turnos []domain.TurnoSan) bool {
	for _, t := range turnos {
		if t.Estado != domain.TurnoCumplido {
			return false
		}
	}
	return true
}

func (s *Service) GetSan(ctx context.Context, sanID int) (*domain.San, error) {
	san, err := s.repo.FindSanByID(ctx, sanID)
	if err != nil {
		zap.L().Error("failed to get san", zap.Error(err))
		return nil, err
	}
	if san == nil {
		return nil, domain.ErrRecursoNoEncontrado
	}
	return san, nil
}

func (s *Service) ListSanes(ctx context.Context) ([]domain.San, error) {
	sanes, err := s.repo.ListSanes(ctx)
	if err != nil {
		zap.L().Error("failed to list sanes", zap.Error(err))
		return nil, err
	}
	return sanes, nil
}

func (s *Service) GetTurnos(ctx context.Context, sanID int) ([]domain.TurnoSan, error) {
	turnos, err := s.repo.FindTurnosBySan(ctx, sanID)
	if err != nil {
		zap.L().Error("failed to list turnos", zap.Error(err))
		return nil, err
	}
	return turnos, nil
}

// MarcarVencidos aplica la transición de vencimiento a los cupos con fecha
// límite superada. Lo dispara el ciclo del procesador de pagos.
func (s *Service) MarcarVencidos(ctx context.Context) (int, error) {
	n, err := s.repo.MarcarCuposVencidos(ctx)
	if err != nil {
		zap.L().Error("failed to mark cupos vencidos", zap.Error(err))
		return 0, err
	}
	if n > 0 {
		zap.L().Info("cupos vencidos", zap.Int("cantidad", n))
	}
	return n, nil
}
