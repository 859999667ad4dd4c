package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/simulating"
	"github.com/vfg2006/pyme-analytics-api/pkg/apiErrors"
)

func newSimulatorHandler() http.Handler {
	return SimulatePrice(simulating.NewService(newTestConfig()))
}

func TestSimulatePrice(t *testing.T) {
	handler := newSimulatorHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/simulator/price",
		strings.NewReader(`{"unit_cost": 1000, "margin_pct": 30, "tax_pct": 19}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.InDelta(t, 1547.0, result.FinalPrice, 0.001)
	assert.Equal(t, "$1.547", result.FinalPriceCLP)
	assert.InDelta(t, 300.0, result.NetGain, 0.001)
}

func TestSimulatePrice_ImpostoPadrao(t *testing.T) {
	handler := newSimulatorHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/simulator/price",
		strings.NewReader(`{"unit_cost": 1000, "margin_pct": 50}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 19.0, result.TaxPct)
	assert.InDelta(t, 1785.0, result.FinalPrice, 0.001)
}

func TestSimulatePrice_ParametrosInvalidos(t *testing.T) {
	handler := newSimulatorHandler()

	tests := []struct {
		name string
		body string
	}{
		{name: "Corpo inválido", body: `{unit_cost}`},
		{name: "Margem fora do intervalo", body: `{"unit_cost": 1000, "margin_pct": 150}`},
		{name: "Custo negativo", body: `{"unit_cost": -10, "margin_pct": 30}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/simulator/price", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
		})
	}
}
