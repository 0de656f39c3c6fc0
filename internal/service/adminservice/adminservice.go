// Package adminservice arma el reporte operativo y expone la bitácora para
// el panel administrativo.
package adminservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/domain"
)

type Repo interface {
	ContarUsuarios(ctx context.Context) (int, error)
	SanesPorEstado(ctx context.Context) ([]domain.ConteoEstado, error)
	RifasPorEstado(ctx context.Context) ([]domain.ConteoEstado, error)
	FacturasPorEstado(ctx context.Context) ([]domain.ConteoEstado, error)
	PagosPorEstado(ctx context.Context) ([]domain.ConteoEstado, error)
	MontoConfirmado(ctx context.Context) (float64, error)
}

type RegistroRepo interface {
	FindRecientes(ctx context.Context, limit uint32) ([]domain.RegistroSistema, error)
}

const limiteRegistros = 200

type Service struct {
	repo         Repo
	registroRepo RegistroRepo
}

func New(repo Repo, registroRepo RegistroRepo) *Service {
	return &Service{
		repo:         repo,
		registroRepo: registroRepo,
	}
}

func (s *Service) ReporteGeneral(ctx context.Context) (*domain.ReporteGeneral, error) {
	reporte := &domain.ReporteGeneral{GeneradoEn: time.Now()}

	var err error
	if reporte.TotalUsuarios, err = s.repo.ContarUsuarios(ctx); err != nil {
		return nil, err
	}
	if reporte.SanesPorEstado, err = s.repo.SanesPorEstado(ctx); err != nil {
		return nil, err
	}
	if reporte.RifasPorEstado, err = s.repo.RifasPorEstado(ctx); err != nil {
		return nil, err
	}
	if reporte.FacturasPorEstado, err = s.repo.FacturasPorEstado(ctx); err != nil {
		return nil, err
	}
	if reporte.PagosPorEstado, err = s.repo.PagosPorEstado(ctx); err != nil {
		return nil, err
	}
	if reporte.MontoConfirmado, err = s.repo.MontoConfirmado(ctx); err != nil {
		return nil, err
	}
	return reporte, nil
}

func (s *Service) Registros(ctx context.Context, limit uint32) ([]domain.RegistroSistema, error) {
	if limit == 0 || limit > limiteRegistros {
		limit = limiteRegistros
	}
	registros, err := s.registroRepo.FindRecientes(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list registros", zap.Error(err))
		return nil, err
	}
	return registros, nil
}
