package domain

import "time"

// Roles de usuario.
const (
	RolParticipante  string = "participante"
	RolOrganizador   string = "organizador"
	RolAdministrador string = "administrador"
)

type Usuario struct {
	ID               int        `db:"id"`
	Email            string     `db:"email"`
	Nombre           string     `db:"nombre"`
	PasswordHash     string     `db:"password_hash"`
	Telefono         string     `db:"telefono"`
	Cedula           string     `db:"cedula"`
	Rol              string     `db:"rol"`
	Reputacion       float64    `db:"reputacion"`
	Verificado       bool       `db:"verificado"`
	IntentosFallidos int        `db:"intentos_fallidos"`
	BloqueadoHasta   *time.Time `db:"bloqueado_hasta"`
	Activo           bool       `db:"activo"`
	CreatedAt        time.Time  `db:"created_at"`
}

// Estados de un san.
const (
	SanBorrador   string = "borrador"
	SanActivo     string = "activo"
	SanPausado    string = "pausado"
	SanFinalizado string = "finalizado"
	SanCancelado  string = "cancelado"
)

// Frecuencias de pago.
const (
	FrecuenciaDiaria    string = "diaria"
	FrecuenciaSemanal   string = "semanal"
	FrecuenciaQuincenal string = "quincenal"
	FrecuenciaMensual   string = "mensual"
)

type San struct {
	ID                    int       `db:"id"`
	Nombre                string    `db:"nombre"`
	Descripcion           string    `db:"descripcion"`
	OrganizadorID         int       `db:"organizador_id"`
	PrecioTotal           float64   `db:"precio_total"`
	NumeroCuotas          int       `db:"numero_cuotas"`
	MontoCuota            float64   `db:"monto_cuota"`
	FrecuenciaPago        string    `db:"frecuencia_pago"`
	TotalParticipantes    int       `db:"total_participantes"`
	ParticipantesActuales int       `db:"participantes_actuales"`
	Estado                string    `db:"estado"`
	FechaInicio           time.Time `db:"fecha_inicio"`
	FechaFin              time.Time `db:"fecha_fin"`
	CreatedAt             time.Time `db:"created_at"`
}

// CuposDisponibles es la capacidad restante del san.
func (s *San) CuposDisponibles() int {
	return s.TotalParticipantes - s.ParticipantesActuales
}

type Participacion struct {
	ID               int        `db:"id"`
	SanID            int        `db:"san_id"`
	UsuarioID        int        `db:"usuario_id"`
	OrdenCobro       int        `db:"orden_cobro"`
	CuotasPagadas    int        `db:"cuotas_pagadas"`
	FechaUltimaCuota *time.Time `db:"fecha_ultima_cuota"`
	Activa           bool       `db:"activa"`
	CreatedAt        time.Time  `db:"created_at"`
}

// Estados de un cupo. La transición es monótona:
// disponible → asignado → pagado; vencido solo desde disponible o asignado.
const (
	CupoDisponible string = "disponible"
	CupoAsignado   string = "asignado"
	CupoPagado     string = "pagado"
	CupoVencido    string = "vencido"
)

type Cupo struct {
	ID               int        `db:"id"`
	SanID            int        `db:"san_id"`
	ParticipacionID  *int       `db:"participacion_id"`
	NumeroSemana     int        `db:"numero_semana"`
	Estado           string     `db:"estado"`
	MontoCuota       float64    `db:"monto_cuota"`
	FechaVencimiento *time.Time `db:"fecha_vencimiento"`
	FechaPago        *time.Time `db:"fecha_pago"`
	FacturaID        *int       `db:"factura_id"`
}

// Estados de un turno de cobro.
const (
	TurnoPendiente string = "pendiente"
	TurnoActivo    string = "activo"
	TurnoCumplido  string = "cumplido"
)

type TurnoSan struct {
	ID              int        `db:"id"`
	SanID           int        `db:"san_id"`
	ParticipacionID int        `db:"participacion_id"`
	NumeroTurno     int        `db:"numero_turno"`
	Estado          string     `db:"estado"`
	FechaActivacion *time.Time `db:"fecha_activacion"`
	FechaCumplido   *time.Time `db:"fecha_cumplido"`
}

// Estados de una rifa.
const (
	RifaBorrador   string = "borrador"
	RifaActiva     string = "activa"
	RifaPausada    string = "pausada"
	RifaFinalizada string = "finalizada"
	RifaCancelada  string = "cancelada"
)

type Rifa struct {
	ID                 int       `db:"id"`
	Nombre             string    `db:"nombre"`
	Descripcion        string    `db:"descripcion"`
	OrganizadorID      int       `db:"organizador_id"`
	PrecioTicket       float64   `db:"precio_ticket"`
	TotalTickets       int       `db:"total_tickets"`
	TicketsDisponibles int       `db:"tickets_disponibles"`
	ValorPremio        float64   `db:"valor_premio"`
	Estado             string    `db:"estado"`
	GanadorID          *int      `db:"ganador_id"`
	FechaFin           time.Time `db:"fecha_fin"`
	CreatedAt          time.Time `db:"created_at"`
}

type Ticket struct {
	ID           int       `db:"id"`
	RifaID       int       `db:"rifa_id"`
	UsuarioID    int       `db:"usuario_id"`
	Numero       int       `db:"numero"`
	Codigo       string    `db:"codigo"`
	PrecioPagado float64   `db:"precio_pagado"`
	Activo       bool      `db:"activo"`
	FechaCompra  time.Time `db:"fecha_compra"`
}

// Tipos de objetivo para facturas, comentarios y notificaciones.
// Conjunto cerrado en lugar de una referencia genérica por tipo de contenido.
const (
	ObjetivoSan  string = "san"
	ObjetivoRifa string = "rifa"
	ObjetivoCupo string = "cupo"
)

// Estados de pago de una factura.
const (
	FacturaPendiente  string = "pendiente"
	FacturaConfirmada string = "confirmado"
	FacturaRechazada  string = "rechazado"
	FacturaCancelada  string = "cancelado"
)

type Factura struct {
	ID               int        `db:"id"`
	Codigo           string     `db:"codigo"`
	UsuarioID        int        `db:"usuario_id"`
	TipoObjetivo     string     `db:"tipo_objetivo"`
	ObjetivoID       int        `db:"objetivo_id"`
	MontoTotal       float64    `db:"monto_total"`
	MontoPagado      float64    `db:"monto_pagado"`
	EstadoPago       string     `db:"estado_pago"`
	MetodoPago       string     `db:"metodo_pago"`
	FechaEmision     time.Time  `db:"fecha_emision"`
	FechaVencimiento time.Time  `db:"fecha_vencimiento"`
	FechaPago        *time.Time `db:"fecha_pago"`
	Notas            string     `db:"notas"`
}

// Estados de un pago simulado.
const (
	PagoPendiente  string = "pendiente"
	PagoProcesando string = "procesando"
	PagoExitoso    string = "exitoso"
	PagoFallido    string = "fallido"
	PagoCancelado  string = "cancelado"
)

type PagoSimulado struct {
	ID                  int        `db:"id"`
	CodigoTransaccion   string     `db:"codigo_transaccion"`
	UsuarioID           int        `db:"usuario_id"`
	FacturaID           int        `db:"factura_id"`
	MetodoPago          string     `db:"metodo_pago"`
	Monto               float64    `db:"monto"`
	Moneda              string     `db:"moneda"`
	Estado              string     `db:"estado"`
	ReferenciaExterna   string     `db:"referencia_externa"`
	FechaProcesamiento  *time.Time `db:"fecha_procesamiento"`
	TiempoProcesamiento int        `db:"tiempo_procesamiento"`
	Intentos            int        `db:"intentos"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

type Comentario struct {
	ID            int       `db:"id"`
	UsuarioID     int       `db:"usuario_id"`
	TipoObjetivo  string    `db:"tipo_objetivo"`
	ObjetivoID    int       `db:"objetivo_id"`
	Texto         string    `db:"texto"`
	Activo        bool      `db:"activo"`
	FechaCreacion time.Time `db:"fecha_creacion"`
}

type Notificacion struct {
	ID            int       `db:"id"`
	UsuarioID     int       `db:"usuario_id"`
	Titulo        string    `db:"titulo"`
	Mensaje       string    `db:"mensaje"`
	TipoObjetivo  string    `db:"tipo_objetivo"`
	ObjetivoID    int       `db:"objetivo_id"`
	Leida         bool      `db:"leida"`
	FechaCreacion time.Time `db:"fecha_creacion"`
}

// Niveles de registro del sistema.
const (
	NivelInfo   string = "info"
	NivelAlerta string = "alerta"
	NivelError  string = "error"
)

type RegistroSistema struct {
	ID            int       `db:"id"`
	UsuarioID     *int      `db:"usuario_id"`
	Accion        string    `db:"accion"`
	Nivel         string    `db:"nivel"`
	Descripcion   string    `db:"descripcion"`
	TipoObjetivo  string    `db:"tipo_objetivo"`
	ObjetivoID    int       `db:"objetivo_id"`
	FechaCreacion time.Time `db:"fecha_creacion"`
}
