package calculadora

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorillo/sanrifa/internal/viability"
)

func TestCalcularSanHandler(t *testing.T) {
	handler := New()

	t.Run("Viable san", func(t *testing.T) {
		body := []byte(`{"precio_total":1200,"total_participantes":12,"frecuencia_pago":"mensual","numero_cuotas":12,"fecha_inicio":"2026-01-01","fecha_fin":"2026-12-31"}`)
		req := httptest.NewRequest("POST", "/api/calculadora/san", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CalcularSan(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp viability.ContextoSan
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Viable)
		assert.Equal(t, 100.0, resp.CuotaPorParticipantePorPeriodo)
	})

	t.Run("Window too short", func(t *testing.T) {
		body := []byte(`{"precio_total":1200,"total_participantes":12,"frecuencia_pago":"mensual","numero_cuotas":12,"fecha_inicio":"2026-01-01","fecha_fin":"2026-03-01"}`)
		req := httptest.NewRequest("POST", "/api/calculadora/san", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CalcularSan(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp viability.ContextoSan
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.Viable)
		assert.NotEmpty(t, resp.Alertas)
	})

	t.Run("Invalid date", func(t *testing.T) {
		body := []byte(`{"precio_total":1200,"total_participantes":12,"frecuencia_pago":"mensual","fecha_inicio":"01/01/2026"}`)
		req := httptest.NewRequest("POST", "/api/calculadora/san", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CalcularSan(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCalcularRifaHandler(t *testing.T) {
	handler := New()

	t.Run("Profitable raffle", func(t *testing.T) {
		body := []byte(`{"precio_ticket":10,"total_tickets":100,"valor_premio":500}`)
		req := httptest.NewRequest("POST", "/api/calculadora/rifa", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CalcularRifa(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp viability.ContextoRifa
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Viable)
		assert.Equal(t, 500.0, resp.GananciaEsperada)
	})

	t.Run("Prize not covered", func(t *testing.T) {
		body := []byte(`{"precio_ticket":1,"total_tickets":10,"valor_premio":500}`)
		req := httptest.NewRequest("POST", "/api/calculadora/rifa", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CalcularRifa(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp viability.ContextoRifa
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.Viable)
	})

	t.Run("Invalid request body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/calculadora/rifa", bytes.NewReader([]byte(`{invalid`)))
		rr := httptest.NewRecorder()

		handler.CalcularRifa(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
