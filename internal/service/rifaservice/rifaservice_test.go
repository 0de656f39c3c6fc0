package rifaservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockFacturador, *MockRand) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	facturador := NewMockFacturador(ctrl)
	notificador := NewMockNotificador(ctrl)
	notificador.EXPECT().Notificar(gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	rand := NewMockRand(ctrl)
	service := New(repo, txManager, facturador, audit.Nop{}, notificador, rand)
	return service, repo, facturador, rand
}

func rifaActiva() *domain.Rifa {
	return &domain.Rifa{
		ID:                 3,
		Nombre:             "Rifa de prueba",
		OrganizadorID:      1,
		PrecioTicket:       10,
		TotalTickets:       100,
		TicketsDisponibles: 40,
		ValorPremio:        500,
		Estado:             domain.RifaActiva,
	}
}

func TestCrearRifa(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name        string
		rifa        *domain.Rifa
		prepareMock func()
		wantErr     bool
	}{
		{
			name:        "Missing fields fail validation",
			rifa:        &domain.Rifa{},
			prepareMock: func() {},
			wantErr:     true,
		},
		{
			name: "Prize not covered by the ticket sales is rejected",
			rifa: &domain.Rifa{Nombre: "Rifa corta", OrganizadorID: 1, PrecioTicket: 1, TotalTickets: 10, ValorPremio: 500},
			prepareMock: func() {},
			wantErr:     true,
		},
		{
			name: "Viable rifa opens for sale with full stock",
			rifa: &domain.Rifa{Nombre: "Rifa buena", OrganizadorID: 1, PrecioTicket: 10, TotalTickets: 100, ValorPremio: 500},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rifa, err := service.CrearRifa(context.Background(), tt.rifa)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.RifaActiva, rifa.Estado)
			assert.Equal(t, rifa.TotalTickets, rifa.TicketsDisponibles)
		})
	}
}

func TestComprarTickets(t *testing.T) {
	service, repo, facturador, _ := NewMock(t)

	tests := []struct {
		name          string
		cantidad      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Zero tickets is invalid input",
			cantidad:    0,
			prepareMock: func() {},
		},
		{
			name:     "Closed rifa sells nothing",
			cantidad: 2,
			prepareMock: func() {
				rifa := rifaActiva()
				rifa.Estado = domain.RifaFinalizada
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(rifa, nil)
			},
			expectedError: domain.ErrRifaCerrada,
		},
		{
			name:     "Insufficient stock sells nothing",
			cantidad: 41,
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(rifaActiva(), nil)
			},
			expectedError: domain.ErrStockInsuficiente,
		},
		{
			name:     "Purchase numbers tickets sequentially and invoices the total",
			cantidad: 3,
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(rifaActiva(), nil)
				repo.EXPECT().MaxNumeroTicket(gomock.Any(), 3).Return(60, nil)
				repo.EXPECT().SaveTickets(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tickets []domain.Ticket) error {
						assert.Len(t, tickets, 3)
						assert.Equal(t, 61, tickets[0].Numero)
						assert.Equal(t, 63, tickets[2].Numero)
						assert.NotEmpty(t, tickets[0].Codigo)
						return nil
					})
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rifa *domain.Rifa) error {
						assert.Equal(t, 37, rifa.TicketsDisponibles)
						return nil
					})
				facturador.EXPECT().CrearFactura(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, f *domain.Factura) (*domain.Factura, error) {
						assert.Equal(t, 30.0, f.MontoTotal)
						assert.Equal(t, domain.ObjetivoRifa, f.TipoObjetivo)
						f.ID = 9
						f.Codigo = "RIFA-79927398713"
						return f, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			tickets, factura, err := service.ComprarTickets(context.Background(), 3, 42, tt.cantidad)
			if tt.cantidad <= 0 {
				var verr *domain.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, tickets, tt.cantidad)
			assert.Equal(t, 9, factura.ID)
		})
	}
}

func TestSortearGanador(t *testing.T) {
	service, repo, _, rand := NewMock(t)

	tests := []struct {
		name            string
		usuarioID       int
		prepareMock     func()
		expectedError   error
		expectedGanador int
	}{
		{
			name:      "Only the organizer can draw",
			usuarioID: 99,
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(rifaActiva(), nil)
			},
			expectedError: domain.ErrOperacionNoAutorizada,
		},
		{
			name:      "Rifa without sold tickets cannot be drawn",
			usuarioID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(rifaActiva(), nil)
				repo.EXPECT().FindTicketsByRifa(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: domain.ErrRifaSinTickets,
		},
		{
			name:      "Draw picks the ticket chosen by the random source",
			usuarioID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(rifaActiva(), nil)
				repo.EXPECT().FindTicketsByRifa(gomock.Any(), 3).Return([]domain.Ticket{
					{ID: 1, UsuarioID: 10, Numero: 1},
					{ID: 2, UsuarioID: 20, Numero: 2},
					{ID: 3, UsuarioID: 30, Numero: 3},
				}, nil)
				rand.EXPECT().Intn(3).Return(1)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedGanador: 20,
		},
		{
			name:      "Repeated draw returns the existing winner",
			usuarioID: 1,
			prepareMock: func() {
				rifa := rifaActiva()
				rifa.Estado = domain.RifaFinalizada
				ganador := 20
				rifa.GanadorID = &ganador
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(rifa, nil)
			},
			expectedGanador: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rifa, err := service.SortearGanador(context.Background(), 3, tt.usuarioID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.RifaFinalizada, rifa.Estado)
			assert.Equal(t, tt.expectedGanador, *rifa.GanadorID)
		})
	}
}
