package handlers

import (
	"net/http"

	_ "github.com/jmorillo/sanrifa/docs"
	adminhandlers "github.com/jmorillo/sanrifa/internal/handlers/admin"
	authhandlers "github.com/jmorillo/sanrifa/internal/handlers/auth"
	calculadorahandlers "github.com/jmorillo/sanrifa/internal/handlers/calculadora"
	comunidadhandlers "github.com/jmorillo/sanrifa/internal/handlers/comunidad"
	facturashandlers "github.com/jmorillo/sanrifa/internal/handlers/facturas"
	pagoshandlers "github.com/jmorillo/sanrifa/internal/handlers/pagos"
	rifashandlers "github.com/jmorillo/sanrifa/internal/handlers/rifas"
	saneshandlers "github.com/jmorillo/sanrifa/internal/handlers/sanes"
	"github.com/jmorillo/sanrifa/internal/service"
	"github.com/jmorillo/sanrifa/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Perfil(w http.ResponseWriter, r *http.Request)
}

type SanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Activar(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	AsignarCupo(w http.ResponseWriter, r *http.Request)
	Turnos(w http.ResponseWriter, r *http.Request)
	ActivarTurno(w http.ResponseWriter, r *http.Request)
	CumplirTurno(w http.ResponseWriter, r *http.Request)
}

type RifaHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Comprar(w http.ResponseWriter, r *http.Request)
	Tickets(w http.ResponseWriter, r *http.Request)
	Sortear(w http.ResponseWriter, r *http.Request)
}

type FacturaHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Confirmar(w http.ResponseWriter, r *http.Request)
	Rechazar(w http.ResponseWriter, r *http.Request)
	Cancelar(w http.ResponseWriter, r *http.Request)
}

type PagoHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Reintentar(w http.ResponseWriter, r *http.Request)
}

type CalculadoraHandler interface {
	CalcularSan(w http.ResponseWriter, r *http.Request)
	CalcularRifa(w http.ResponseWriter, r *http.Request)
}

type ComunidadHandler interface {
	CrearComentario(w http.ResponseWriter, r *http.Request)
	Comentarios(w http.ResponseWriter, r *http.Request)
	EliminarComentario(w http.ResponseWriter, r *http.Request)
	Notificaciones(w http.ResponseWriter, r *http.Request)
	MarcarLeida(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Reporte(w http.ResponseWriter, r *http.Request)
	Registros(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	SanHandler         SanHandler
	RifaHandler        RifaHandler
	FacturaHandler     FacturaHandler
	PagoHandler        PagoHandler
	CalculadoraHandler CalculadoraHandler
	ComunidadHandler   ComunidadHandler
	AdminHandler       AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		SanHandler:         saneshandlers.New(s.SanService),
		RifaHandler:        rifashandlers.New(s.RifaService),
		FacturaHandler:     facturashandlers.New(s.FacturaService),
		PagoHandler:        pagoshandlers.New(s.PagoService),
		CalculadoraHandler: calculadorahandlers.New(),
		ComunidadHandler:   comunidadhandlers.New(s.ComunidadService),
		AdminHandler:       adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/perfil", h.AuthHandler.Perfil)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/sanes", func(r chi.Router) {
				r.Post("/", h.SanHandler.Create)
				r.Get("/", h.SanHandler.List)
				r.Route("/{sanID}", func(r chi.Router) {
					r.Get("/", h.SanHandler.Get)
					r.Post("/activar", h.SanHandler.Activar)
					r.Post("/join", h.SanHandler.Join)
					r.Post("/cupos/asignar", h.SanHandler.AsignarCupo)
					r.Get("/turnos", h.SanHandler.Turnos)
					r.Post("/turnos/{numero}/activar", h.SanHandler.ActivarTurno)
					r.Post("/turnos/{numero}/cumplir", h.SanHandler.CumplirTurno)
				})
			})

			r.Route("/rifas", func(r chi.Router) {
				r.Post("/", h.RifaHandler.Create)
				r.Get("/", h.RifaHandler.List)
				r.Route("/{rifaID}", func(r chi.Router) {
					r.Get("/", h.RifaHandler.Get)
					r.Get("/tickets", h.RifaHandler.Tickets)
					r.Post("/tickets/comprar", h.RifaHandler.Comprar)
					r.Post("/sortear", h.RifaHandler.Sortear)
				})
			})

			r.Route("/facturas", func(r chi.Router) {
				r.Post("/", h.FacturaHandler.Create)
				r.Get("/", h.FacturaHandler.List)
				r.Route("/{facturaID}", func(r chi.Router) {
					r.Get("/", h.FacturaHandler.Get)
					r.Post("/confirmar", h.FacturaHandler.Confirmar)
					r.Post("/rechazar", h.FacturaHandler.Rechazar)
					r.Post("/cancelar", h.FacturaHandler.Cancelar)
				})
			})

			r.Route("/pagos", func(r chi.Router) {
				r.Post("/", h.PagoHandler.Create)
				r.Get("/{pagoID}", h.PagoHandler.Get)
				r.Post("/{pagoID}/reintentar", h.PagoHandler.Reintentar)
			})

			r.Route("/calculadora", func(r chi.Router) {
				r.Post("/san", h.CalculadoraHandler.CalcularSan)
				r.Post("/rifa", h.CalculadoraHandler.CalcularRifa)
			})

			r.Route("/comentarios", func(r chi.Router) {
				r.Post("/", h.ComunidadHandler.CrearComentario)
				r.Get("/", h.ComunidadHandler.Comentarios)
				r.Delete("/{comentarioID}", h.ComunidadHandler.EliminarComentario)
			})

			r.Route("/notificaciones", func(r chi.Router) {
				r.Get("/", h.ComunidadHandler.Notificaciones)
				r.Post("/{notificacionID}/leida", h.ComunidadHandler.MarcarLeida)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Get("/reportes", h.AdminHandler.Reporte)
				r.Get("/registros", h.AdminHandler.Registros)
			})
		})
	})

	return r
}
