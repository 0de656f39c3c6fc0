package sanservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	notificador := NewMockNotificador(ctrl)
	notificador.EXPECT().Notificar(gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	service := New(repo, txManager, audit.Nop{}, notificador)
	return service, repo
}

func sanActivo() *domain.San {
	return &domain.San{
		ID:                    7,
		Nombre:                "San de prueba",
		OrganizadorID:         1,
		PrecioTotal:           1200,
		NumeroCuotas:          12,
		MontoCuota:            100,
		FrecuenciaPago:        domain.FrecuenciaMensual,
		TotalParticipantes:    12,
		ParticipantesActuales: 3,
		Estado:                domain.SanActivo,
	}
}

func TestCrearSan(t *testing.T) {
	service, repo := NewMock(t)
	inicio := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		san         *domain.San
		prepareMock func()
		wantErr     bool
		checkSan    func(t *testing.T, san *domain.San)
	}{
		{
			name: "Missing fields are collected into a validation error",
			san:  &domain.San{},
			prepareMock: func() {},
			wantErr:     true,
		},
		{
			name: "Unfeasible schedule is rejected",
			san: &domain.San{
				Nombre:             "San apurado",
				OrganizadorID:      1,
				PrecioTotal:        1200,
				NumeroCuotas:       12,
				FrecuenciaPago:     domain.FrecuenciaMensual,
				TotalParticipantes: 12,
				FechaInicio:        inicio,
				FechaFin:           inicio.AddDate(0, 2, 0),
			},
			prepareMock: func() {},
			wantErr:     true,
		},
		{
			name: "Viable san is persisted in borrador with derived cuota",
			san: &domain.San{
				Nombre:             "San mensual",
				OrganizadorID:      1,
				PrecioTotal:        1200,
				NumeroCuotas:       12,
				FrecuenciaPago:     domain.FrecuenciaMensual,
				TotalParticipantes: 12,
				FechaInicio:        inicio,
				FechaFin:           inicio.AddDate(1, 0, 0),
			},
			prepareMock: func() {
				repo.EXPECT().SaveSan(gomock.Any(), gomock.Any()).Return(nil)
			},
			checkSan: func(t *testing.T, san *domain.San) {
				assert.Equal(t, domain.SanBorrador, san.Estado)
				assert.Equal(t, 100.0, san.MontoCuota)
				assert.Equal(t, 0, san.ParticipantesActuales)
			},
		},
		{
			name: "Save failure is returned",
			san: &domain.San{
				Nombre:             "San mensual",
				OrganizadorID:      1,
				PrecioTotal:        1200,
				NumeroCuotas:       12,
				FrecuenciaPago:     domain.FrecuenciaMensual,
				TotalParticipantes: 12,
				FechaInicio:        inicio,
				FechaFin:           inicio.AddDate(1, 0, 0),
			},
			prepareMock: func() {
				repo.EXPECT().SaveSan(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			san, err := service.CrearSan(context.Background(), tt.san)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.checkSan != nil {
				tt.checkSan(t, san)
			}
		})
	}
}

func TestActivarSan(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		usuarioID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Only the organizer can activate",
			usuarioID: 99,
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).
					Return(&domain.San{ID: 7, OrganizadorID: 1, Estado: domain.SanBorrador}, nil)
			},
			expectedError: domain.ErrOperacionNoAutorizada,
		},
		{
			name:      "Cannot activate twice",
			usuarioID: 1,
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).
					Return(&domain.San{ID: 7, OrganizadorID: 1, Estado: domain.SanActivo}, nil)
			},
			expectedError: domain.ErrTransicionInvalida,
		},
		{
			name:      "Activation materializes one cupo per puesto",
			usuarioID: 1,
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).
					Return(&domain.San{ID: 7, OrganizadorID: 1, Estado: domain.SanBorrador, TotalParticipantes: 3, MontoCuota: 100}, nil)
				repo.EXPECT().SaveCupos(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cupos []domain.Cupo) error {
						assert.Len(t, cupos, 3)
						assert.Equal(t, 1, cupos[0].NumeroSemana)
						assert.Equal(t, 3, cupos[2].NumeroSemana)
						assert.Equal(t, domain.CupoDisponible, cupos[1].Estado)
						return nil
					})
				repo.EXPECT().UpdateSan(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			san, err := service.ActivarSan(context.Background(), 7, tt.usuarioID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.SanActivo, san.Estado)
		})
	}
}

func TestJoinSan(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
		expectedOrden int
	}{
		{
			name: "San not found",
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: domain.ErrRecursoNoEncontrado,
		},
		{
			name: "Closed san rejects joins",
			prepareMock: func() {
				san := sanActivo()
				san.Estado = domain.SanFinalizado
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(san, nil)
			},
			expectedError: domain.ErrSanCerrado,
		},
		{
			name: "Full san rejects joins",
			prepareMock: func() {
				san := sanActivo()
				san.ParticipantesActuales = san.TotalParticipantes
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(san, nil)
			},
			expectedError: domain.ErrSanLleno,
		},
		{
			name: "Duplicate participant is rejected",
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(sanActivo(), nil)
				repo.EXPECT().FindParticipacion(gomock.Any(), 7, 42).
					Return(&domain.Participacion{ID: 5}, nil)
			},
			expectedError: domain.ErrParticipacionDuplicada,
		},
		{
			name: "Join assigns the next orden de cobro",
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(sanActivo(), nil)
				repo.EXPECT().FindParticipacion(gomock.Any(), 7, 42).Return(nil, nil)
				repo.EXPECT().SaveParticipacion(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Participacion) error {
						p.ID = 11
						return nil
					})
				repo.EXPECT().SaveTurno(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, turno *domain.TurnoSan) error {
						assert.Equal(t, 4, turno.NumeroTurno)
						assert.Equal(t, 11, turno.ParticipacionID)
						assert.Equal(t, domain.TurnoPendiente, turno.Estado)
						return nil
					})
				repo.EXPECT().UpdateSan(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, san *domain.San) error {
						assert.Equal(t, 4, san.ParticipantesActuales)
						return nil
					})
			},
			expectedOrden: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			participacion, err := service.JoinSan(context.Background(), 7, 42)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOrden, participacion.OrdenCobro)
			assert.True(t, participacion.Activa)
		})
	}
}

func TestAsignarCupo(t *testing.T) {
	service, repo := NewMock(t)

	participacion := &domain.Participacion{ID: 11, SanID: 7, UsuarioID: 42, Activa: true}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "No cupos left fails loudly",
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(sanActivo(), nil)
				repo.EXPECT().FindParticipacionByID(gomock.Any(), 11).Return(participacion, nil)
				repo.EXPECT().FindCupoDisponibleForUpdate(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: domain.ErrCupoSinCapacidad,
		},
		{
			name: "Inactive participacion cannot take a cupo",
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(sanActivo(), nil)
				repo.EXPECT().FindParticipacionByID(gomock.Any(), 11).
					Return(&domain.Participacion{ID: 11, SanID: 7, Activa: false}, nil)
			},
			expectedError: domain.ErrParticipacionInactiva,
		},
		{
			name: "Assignment links participacion and sets the deadline",
			prepareMock: func() {
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(sanActivo(), nil)
				repo.EXPECT().FindParticipacionByID(gomock.Any(), 11).Return(participacion, nil)
				repo.EXPECT().FindCupoDisponibleForUpdate(gomock.Any(), 7).
					Return(&domain.Cupo{ID: 3, SanID: 7, NumeroSemana: 1, Estado: domain.CupoDisponible, MontoCuota: 100}, nil)
				repo.EXPECT().UpdateCupo(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cupo *domain.Cupo) error {
						assert.Equal(t, domain.CupoAsignado, cupo.Estado)
						assert.Equal(t, 11, *cupo.ParticipacionID)
						assert.WithinDuration(t, time.Now().Add(plazoCupo), *cupo.FechaVencimiento, time.Minute)
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			cupo, err := service.AsignarCupo(context.Background(), 7, 11)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.CupoAsignado, cupo.Estado)
		})
	}
}

func TestActivarTurno(t *testing.T) {
	service, repo := NewMock(t)

	turnos := func() []domain.TurnoSan {
		return []domain.TurnoSan{
			{ID: 1, SanID: 7, NumeroTurno: 1, Estado: domain.TurnoCumplido},
			{ID: 2, SanID: 7, NumeroTurno: 2, Estado: domain.TurnoActivo},
			{ID: 3, SanID: 7, NumeroTurno: 3, Estado: domain.TurnoPendiente},
		}
	}

	tests := []struct {
		name          string
		numeroTurno   int
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Turno with earlier unfinished turnos is not eligible",
			numeroTurno: 3,
			prepareMock: func() {
				repo.EXPECT().FindTurnosBySan(gomock.Any(), 7).Return(turnos(), nil)
			},
			expectedError: domain.ErrTurnoNoElegible,
		},
		{
			name:        "Already active turno cannot be reactivated",
			numeroTurno: 2,
			prepareMock: func() {
				repo.EXPECT().FindTurnosBySan(gomock.Any(), 7).Return(turnos(), nil)
			},
			expectedError: domain.ErrTransicionInvalida,
		},
		{
			name:        "First pending turno in sequence activates",
			numeroTurno: 3,
			prepareMock: func() {
				ts := turnos()
				ts[1].Estado = domain.TurnoCumplido
				repo.EXPECT().FindTurnosBySan(gomock.Any(), 7).Return(ts, nil)
				repo.EXPECT().UpdateTurno(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			turno, err := service.ActivarTurno(context.Background(), 7, tt.numeroTurno)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.TurnoActivo, turno.Estado)
			assert.NotNil(t, turno.FechaActivacion)
		})
	}
}

func TestCumplirTurno(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Pending turno cannot be completed directly",
			prepareMock: func() {
				repo.EXPECT().FindTurno(gomock.Any(), 7, 2).
					Return(&domain.TurnoSan{ID: 2, SanID: 7, NumeroTurno: 2, Estado: domain.TurnoPendiente}, nil)
			},
			expectedError: domain.ErrTransicionInvalida,
		},
		{
			name: "Completing the last turno finalizes the san",
			prepareMock: func() {
				repo.EXPECT().FindTurno(gomock.Any(), 7, 2).
					Return(&domain.TurnoSan{ID: 2, SanID: 7, NumeroTurno: 2, Estado: domain.TurnoActivo}, nil)
				repo.EXPECT().UpdateTurno(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().FindTurnosBySan(gomock.Any(), 7).Return([]domain.TurnoSan{
					{ID: 1, SanID: 7, NumeroTurno: 1, Estado: domain.TurnoCumplido},
					{ID: 2, SanID: 7, NumeroTurno: 2, Estado: domain.TurnoCumplido},
				}, nil)
				san := sanActivo()
				san.TotalParticipantes = 2
				san.ParticipantesActuales = 2
				repo.EXPECT().FindSanByIDForUpdate(gomock.Any(), 7).Return(san, nil)
				repo.EXPECT().UpdateSan(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.San) error {
						assert.Equal(t, domain.SanFinalizado, s.Estado)
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			turno, err := service.CumplirTurno(context.Background(), 7, 2)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.TurnoCumplido, turno.Estado)
		})
	}
}

func TestMarcarVencidos(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().MarcarCuposVencidos(gomock.Any()).Return(3, nil)
	n, err := service.MarcarVencidos(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	repo.EXPECT().MarcarCuposVencidos(gomock.Any()).Return(0, errors.New("some error"))
	_, err = service.MarcarVencidos(context.Background())
	assert.Error(t, err)
}
