package repo

import (
	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/gateway"
	"github.com/jmorillo/sanrifa/internal/pg"
	adminrepo "github.com/jmorillo/sanrifa/internal/repo/admin-repo"
	auditrepo "github.com/jmorillo/sanrifa/internal/repo/audit-repo"
	comunidadrepo "github.com/jmorillo/sanrifa/internal/repo/comunidad-repo"
	facturarepo "github.com/jmorillo/sanrifa/internal/repo/factura-repo"
	rifarepo "github.com/jmorillo/sanrifa/internal/repo/rifa-repo"
	sanrepo "github.com/jmorillo/sanrifa/internal/repo/san-repo"
	usuariorepo "github.com/jmorillo/sanrifa/internal/repo/usuario-repo"
	"github.com/jmorillo/sanrifa/internal/service/adminservice"
	"github.com/jmorillo/sanrifa/internal/service/authservice"
	"github.com/jmorillo/sanrifa/internal/service/comunidadservice"
	"github.com/jmorillo/sanrifa/internal/service/facturaservice"
	"github.com/jmorillo/sanrifa/internal/service/rifaservice"
	"github.com/jmorillo/sanrifa/internal/service/sanservice"
)

type Repositories struct {
	UsuarioRepo   authservice.Repo
	SanRepo       sanservice.Repo
	CupoRepo      facturaservice.CupoRepo
	RifaRepo      rifaservice.Repo
	FacturaRepo   facturaservice.Repo
	PagoRepo      gateway.PagoRepo
	ComunidadRepo comunidadservice.Repo
	AuditRepo     audit.Repo
	RegistroRepo  adminservice.RegistroRepo
	AdminRepo     adminservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	usuarioRepo := usuariorepo.New(conn)
	sanRepo := sanrepo.New(conn, txManager)
	rifaRepo := rifarepo.New(conn, txManager)
	facturaRepo := facturarepo.New(conn)
	comunidadRepo := comunidadrepo.New(conn)
	auditRepo := auditrepo.New(conn)
	adminRepo := adminrepo.New(conn)

	return &Repositories{
		UsuarioRepo:   usuarioRepo,
		SanRepo:       sanRepo,
		CupoRepo:      sanRepo,
		RifaRepo:      rifaRepo,
		FacturaRepo:   facturaRepo,
		PagoRepo:      facturaRepo,
		ComunidadRepo: comunidadRepo,
		AuditRepo:     auditRepo,
		RegistroRepo:  auditRepo,
		AdminRepo:     adminRepo,
	}
}
