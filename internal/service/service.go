package service

import (
	adminhandlers "github.com/jmorillo/sanrifa/internal/handlers/admin"
	authhandlers "github.com/jmorillo/sanrifa/internal/handlers/auth"
	comunidadhandlers "github.com/jmorillo/sanrifa/internal/handlers/comunidad"
	facturashandlers "github.com/jmorillo/sanrifa/internal/handlers/facturas"
	pagoshandlers "github.com/jmorillo/sanrifa/internal/handlers/pagos"
	rifashandlers "github.com/jmorillo/sanrifa/internal/handlers/rifas"
	saneshandlers "github.com/jmorillo/sanrifa/internal/handlers/sanes"

	pkgauth "github.com/jmorillo/sanrifa/pkg/auth"
	"github.com/jmorillo/sanrifa/pkg/clients"

	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/config"
	"github.com/jmorillo/sanrifa/internal/gateway"
	"github.com/jmorillo/sanrifa/internal/pg"
	"github.com/jmorillo/sanrifa/internal/repo"
	"github.com/jmorillo/sanrifa/internal/service/adminservice"
	"github.com/jmorillo/sanrifa/internal/service/authservice"
	"github.com/jmorillo/sanrifa/internal/service/comunidadservice"
	"github.com/jmorillo/sanrifa/internal/service/facturaservice"
	"github.com/jmorillo/sanrifa/internal/service/rifaservice"
	"github.com/jmorillo/sanrifa/internal/service/sanservice"
)

type Services struct {
	AuthService      authhandlers.Service
	SanService       saneshandlers.Service
	RifaService      rifashandlers.Service
	FacturaService   facturashandlers.Service
	PagoService      pagoshandlers.Service
	ComunidadService comunidadhandlers.Service
	AdminService     adminhandlers.Service

	// Puertos de la pasarela de pagos en segundo plano.
	Confirmador gateway.Confirmador
	Vencedor    gateway.Vencedor
}

// Rand es la fuente de azar compartida: el sorteo de rifas y la pasarela
// simulada tiran del generador global, que admite uso concurrente.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, rnd Rand) *Services {
	registrador := audit.New(repos.AuditRepo)
	comunidadService := comunidadservice.New(repos.ComunidadRepo, clients.NewHTTPClient(), cfg.WebhookURL)
	authService := authservice.New(repos.UsuarioRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, registrador)
	sanService := sanservice.New(repos.SanRepo, txManager, registrador, comunidadService)
	facturaService := facturaservice.New(repos.FacturaRepo, repos.CupoRepo, txManager, registrador, comunidadService)
	rifaService := rifaservice.New(repos.RifaRepo, txManager, facturaService, registrador, comunidadService, rnd)
	adminService := adminservice.New(repos.AdminRepo, repos.RegistroRepo)

	return &Services{
		AuthService:      authService,
		SanService:       sanService,
		RifaService:      rifaService,
		FacturaService:   facturaService,
		PagoService:      facturaService,
		ComunidadService: comunidadService,
		AdminService:     adminService,
		Confirmador:      facturaService,
		Vencedor:         sanService,
	}
}
