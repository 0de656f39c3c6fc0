package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockRegistroRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	registroRepo := NewMockRegistroRepo(ctrl)
	service := New(repo, registroRepo)
	return service, repo, registroRepo
}

func TestReporteGeneral(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ContarUsuarios(gomock.Any()).Return(25, nil)
	repo.EXPECT().SanesPorEstado(gomock.Any()).Return([]domain.ConteoEstado{
		{Estado: domain.SanActivo, Cantidad: 4},
		{Estado: domain.SanFinalizado, Cantidad: 2},
	}, nil)
	repo.EXPECT().RifasPorEstado(gomock.Any()).Return([]domain.ConteoEstado{
		{Estado: domain.RifaActiva, Cantidad: 3},
	}, nil)
	repo.EXPECT().FacturasPorEstado(gomock.Any()).Return([]domain.ConteoEstado{
		{Estado: domain.FacturaPendiente, Cantidad: 10},
		{Estado: domain.FacturaConfirmada, Cantidad: 7},
	}, nil)
	repo.EXPECT().PagosPorEstado(gomock.Any()).Return([]domain.ConteoEstado{
		{Estado: domain.PagoExitoso, Cantidad: 6},
	}, nil)
	repo.EXPECT().MontoConfirmado(gomock.Any()).Return(700.0, nil)

	reporte, err := service.ReporteGeneral(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 25, reporte.TotalUsuarios)
	assert.Len(t, reporte.SanesPorEstado, 2)
	assert.Equal(t, 700.0, reporte.MontoConfirmado)
	assert.False(t, reporte.GeneradoEn.IsZero())
}

func TestReporteGeneralError(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ContarUsuarios(gomock.Any()).Return(0, errors.New("some error"))
	_, err := service.ReporteGeneral(context.Background())
	assert.Error(t, err)
}

func TestRegistros(t *testing.T) {
	service, _, registroRepo := NewMock(t)

	registroRepo.EXPECT().FindRecientes(gomock.Any(), uint32(50)).
		Return([]domain.RegistroSistema{{ID: 1}}, nil)
	registros, err := service.Registros(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, registros, 1)

	// Sin límite explícito se aplica el tope.
	registroRepo.EXPECT().FindRecientes(gomock.Any(), uint32(limiteRegistros)).Return(nil, nil)
	_, err = service.Registros(context.Background(), 0)
	assert.NoError(t, err)
}
