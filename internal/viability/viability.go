// Package viability contiene los cálculos puros de factibilidad de sanes y
// rifas: tamaño de cuota, ventanas de fechas, margen esperado y parámetros
// sugeridos. No toca persistencia; la infactibilidad es un resultado normal,
// nunca un error.
package viability

import (
	"fmt"
	"math"
	"time"
)

// Días por periodo según frecuencia de pago.
var diasPorPeriodo = map[string]int{
	"diaria":    1,
	"semanal":   7,
	"quincenal": 14,
	"mensual":   30,
}

type ContextoSan struct {
	CuotaPorParticipantePorPeriodo float64          `json:"cuota_por_participante_por_periodo"`
	PeriodosNecesarios             int              `json:"periodos_necesarios"`
	PeriodosDisponibles            int              `json:"periodos_disponibles"`
	Viable                         bool             `json:"viable"`
	Alertas                        []string         `json:"alertas"`
	MontoTotalAportado             float64          `json:"monto_total_aportado"`
	Diferencia                     float64          `json:"diferencia"`
	FechasSugeridas                *FechasSugeridas `json:"fechas_sugeridas,omitempty"`
}

type FechasSugeridas struct {
	FechaInicio          time.Time `json:"fecha_inicio_sugerida"`
	FechaFin             time.Time `json:"fecha_fin_sugerida"`
	DiasTotales          int       `json:"dias_totales"`
	CuotaPorParticipante float64   `json:"cuota_por_participante"`
	PeriodosPorMes       int       `json:"periodos_por_mes"`
}

type ContextoRifa struct {
	RecaudacionMinimaEsperada float64              `json:"recaudacion_minima_esperada"`
	MinimoParaCubrirPremio    float64              `json:"minimo_participantes_para_cubrir_premio"`
	GananciaEsperada          float64              `json:"ganancia_esperada"`
	PorcentajeGanancia        float64              `json:"porcentaje_ganancia"`
	Viable                    bool                 `json:"viable"`
	Alertas                   []string             `json:"alertas"`
	ParametrosSugeridos       *ParametrosSugeridos `json:"parametros_sugeridos,omitempty"`
}

type ParametrosSugeridos struct {
	PrecioTicketSugerido float64 `json:"precio_ticket_sugerido,omitempty"`
	TotalTicketsSugerido int     `json:"total_tickets_sugerido,omitempty"`
	GananciaEsperada     float64 `json:"ganancia_esperada,omitempty"`
	PorcentajeGanancia   float64 `json:"porcentaje_ganancia,omitempty"`
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}

func redondear1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CalcularSanContexto evalúa si un san es realizable con los parámetros dados.
// numeroCuotas en cero significa desconocido; fechas en cero se omiten del
// cálculo de periodos.
func CalcularSanContexto(precioTotal float64, totalParticipantes int, frecuenciaPago string, fechaInicio, fechaFin time.Time, numeroCuotas int) ContextoSan {
	if precioTotal <= 0 || totalParticipantes <= 0 || frecuenciaPago == "" {
		return ContextoSan{
			Viable:  false,
			Alertas: []string{"Faltan datos requeridos para el cálculo"},
		}
	}

	var cuota float64
	var periodosNecesarios int
	if numeroCuotas > 0 {
		cuota = precioTotal / float64(numeroCuotas)
		periodosNecesarios = numeroCuotas
	} else {
		cuota = precioTotal
		periodosNecesarios = 1
	}

	periodosDisponibles := 0
	if !fechaInicio.IsZero() && !fechaFin.IsZero() && fechaFin.After(fechaInicio) {
		dias := int(fechaFin.Sub(fechaInicio).Hours() / 24)
		switch frecuenciaPago {
		case "diaria":
			periodosDisponibles = dias
		case "semanal":
			periodosDisponibles = max(1, dias/7)
		case "quincenal":
			periodosDisponibles = max(1, dias/14)
		case "mensual":
			periodosDisponibles = max(1, dias/30)
		}
	}

	montoAportado := cuota * float64(totalParticipantes)
	diferencia := montoAportado - precioTotal

	viable := true
	var alertas []string

	if periodosDisponibles > 0 && numeroCuotas > 0 && numeroCuotas > periodosDisponibles {
		viable = false
		alertas = append(alertas, fmt.Sprintf("El número de cuotas (%d) excede los periodos disponibles (%d) entre las fechas indicadas.", numeroCuotas, periodosDisponibles))
	}
	if montoAportado < precioTotal {
		viable = false
		alertas = append(alertas, fmt.Sprintf("Los parámetros no cubren el monto total. Faltan $%.2f", -diferencia))
	}
	if !fechaInicio.IsZero() && !fechaFin.IsZero() && !fechaFin.After(fechaInicio) {
		viable = false
		alertas = append(alertas, "La fecha de fin debe ser posterior a la fecha de inicio.")
	}
	if totalParticipantes < 2 {
		viable = false
		alertas = append(alertas, "Se requieren al menos 2 participantes para un san.")
	}

	if viable {
		alertas = append(alertas, fmt.Sprintf("San viable: cada participante pagará $%.2f por periodo", cuota))
		if periodosDisponibles > 0 {
			alertas = append(alertas, fmt.Sprintf("Tiempo disponible: %d periodos entre las fechas", periodosDisponibles))
		}
	}

	ctx := ContextoSan{
		CuotaPorParticipantePorPeriodo: redondear2(cuota),
		PeriodosNecesarios:             periodosNecesarios,
		PeriodosDisponibles:            periodosDisponibles,
		Viable:                         viable,
		Alertas:                        alertas,
		MontoTotalAportado:             redondear2(montoAportado),
		Diferencia:                     redondear2(diferencia),
	}

	if numeroCuotas > 0 {
		fs := FechasSugeridasSan(precioTotal, numeroCuotas, frecuenciaPago, time.Now())
		ctx.FechasSugeridas = &fs
	}

	return ctx
}

// FechasSugeridasSan propone una ventana de fechas partiendo de hoy que
// acomode todas las cuotas en la frecuencia indicada.
func FechasSugeridasSan(precioTotal float64, numeroCuotas int, frecuenciaPago string, desde time.Time) FechasSugeridas {
	dias, ok := diasPorPeriodo[frecuenciaPago]
	if !ok {
		dias = 30
	}
	diasTotales := (numeroCuotas - 1) * dias

	return FechasSugeridas{
		FechaInicio:          desde,
		FechaFin:             desde.AddDate(0, 0, diasTotales),
		DiasTotales:          diasTotales,
		CuotaPorParticipante: redondear2(precioTotal / float64(numeroCuotas)),
		PeriodosPorMes:       30 / dias,
	}
}

// CalcularRifaContexto evalúa la rentabilidad de una rifa. valorPremio en
// cero significa que la rifa no tiene premio monetario.
func CalcularRifaContexto(precioTicket float64, totalTickets int, valorPremio float64) ContextoRifa {
	if precioTicket == 0 || totalTickets == 0 {
		ctx := ContextoRifa{
			Viable:  false,
			Alertas: []string{"Faltan datos requeridos para el cálculo"},
		}
		if valorPremio > 0 {
			ps := ParametrosSugeridosRifa(valorPremio, precioTicket, totalTickets)
			ctx.ParametrosSugeridos = &ps
		}
		return ctx
	}

	recaudacion := precioTicket * float64(totalTickets)

	viable := true
	var alertas []string
	var ganancia, porcentaje, minimoCubrir float64

	if valorPremio > 0 {
		ganancia = recaudacion - valorPremio
		if recaudacion > 0 {
			porcentaje = ganancia / recaudacion * 100
		}
		if precioTicket > 0 {
			minimoCubrir = redondear2(valorPremio / precioTicket)
		}

		switch {
		case recaudacion < valorPremio:
			viable = false
			alertas = append(alertas, fmt.Sprintf("Con los parámetros actuales no se cubre el valor del premio. Faltan $%.2f", valorPremio-recaudacion))
		case ganancia < 0:
			viable = false
			alertas = append(alertas, fmt.Sprintf("La rifa generaría pérdidas de $%.2f", math.Abs(ganancia)))
		default:
			alertas = append(alertas, fmt.Sprintf("Rifa viable: ganancia esperada $%.2f (%.1f%%)", ganancia, porcentaje))
			alertas = append(alertas, fmt.Sprintf("Mínimo de participantes para cubrir premio: %.2f", minimoCubrir))
		}
	} else {
		alertas = append(alertas, fmt.Sprintf("Rifa sin premio monetario: recaudación esperada $%.2f", recaudacion))
	}

	if precioTicket <= 0 {
		viable = false
		alertas = append(alertas, "El precio del ticket debe ser mayor a 0.")
	}
	if totalTickets <= 0 {
		viable = false
		alertas = append(alertas, "El número de tickets debe ser mayor a 0.")
	}
	if totalTickets > 10000 {
		alertas = append(alertas, "Considera si realmente necesitas más de 10.000 tickets.")
	}

	return ContextoRifa{
		RecaudacionMinimaEsperada: redondear2(recaudacion),
		MinimoParaCubrirPremio:    minimoCubrir,
		GananciaEsperada:          redondear2(ganancia),
		PorcentajeGanancia:        redondear1(porcentaje),
		Viable:                    viable,
		Alertas:                   alertas,
	}
}

// ParametrosSugeridosRifa completa precio y cantidad de tickets cuando solo
// se conoce el valor del premio. El precio sugerido sale de una tabla fija
// por tramos y la cantidad agrega un 20% de margen sobre el mínimo.
func ParametrosSugeridosRifa(valorPremio, precioDeseado float64, totalDeseado int) ParametrosSugeridos {
	var s ParametrosSugeridos
	if valorPremio <= 0 {
		return s
	}

	if precioDeseado <= 0 {
		switch {
		case valorPremio <= 100:
			s.PrecioTicketSugerido = 5.00
		case valorPremio <= 500:
			s.PrecioTicketSugerido = 10.00
		case valorPremio <= 1000:
			s.PrecioTicketSugerido = 20.00
		default:
			s.PrecioTicketSugerido = 50.00
		}
	}

	if totalDeseado <= 0 {
		precioEfectivo := precioDeseado
		if precioEfectivo <= 0 {
			precioEfectivo = s.PrecioTicketSugerido
		}
		if precioEfectivo <= 0 {
			precioEfectivo = 10.00
		}
		minimos := valorPremio / precioEfectivo
		sugeridos := int(minimos * 1.2)
		s.TotalTicketsSugerido = max(50, sugeridos)
	}

	if s.PrecioTicketSugerido > 0 && s.TotalTicketsSugerido > 0 {
		recaudacion := s.PrecioTicketSugerido * float64(s.TotalTicketsSugerido)
		ganancia := recaudacion - valorPremio
		s.GananciaEsperada = redondear2(ganancia)
		if recaudacion > 0 {
			s.PorcentajeGanancia = redondear1(ganancia / recaudacion * 100)
		}
	}

	return s
}
