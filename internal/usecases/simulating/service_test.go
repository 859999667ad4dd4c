package simulating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pyme-analytics-api/internal/config"
	"github.com/vfg2006/pyme-analytics-api/internal/domain"
)

func newTestService() Simulator {
	return NewService(&config.Config{
		Simulator: config.Simulator{DefaultTaxPct: 19},
	})
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestService_Simulate_PrecoFinal(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name       string
		input      domain.SimulationInput
		netPrice   float64
		finalPrice float64
		netGain    float64
		taxPct     float64
	}{
		{
			name:       "Custo 1000, margem 30, imposto 19",
			input:      domain.SimulationInput{UnitCost: 1000, MarginPct: 30, TaxPct: floatPtr(19)},
			netPrice:   1300,
			finalPrice: 1547,
			netGain:    300,
			taxPct:     19,
		},
		{
			name:       "Imposto omitido usa o padrão configurado",
			input:      domain.SimulationInput{UnitCost: 1000, MarginPct: 50},
			netPrice:   1500,
			finalPrice: 1785,
			netGain:    500,
			taxPct:     19,
		},
		{
			name:       "Margem zero não gera ganho",
			input:      domain.SimulationInput{UnitCost: 2000, MarginPct: 0, TaxPct: floatPtr(0)},
			netPrice:   2000,
			finalPrice: 2000,
			netGain:    0,
			taxPct:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Simulate(tt.input)

			require.NoError(t, err)
			assert.InDelta(t, tt.netPrice, result.NetPrice, 0.001)
			assert.InDelta(t, tt.finalPrice, result.FinalPrice, 0.001)
			assert.InDelta(t, tt.netGain, result.NetGain, 0.001)
			assert.Equal(t, tt.taxPct, result.TaxPct)
		})
	}
}

func TestService_Simulate_FormatacaoCLP(t *testing.T) {
	service := newTestService()

	result, err := service.Simulate(domain.SimulationInput{
		UnitCost:  1000,
		MarginPct: 30,
		TaxPct:    floatPtr(19),
	})

	require.NoError(t, err)
	assert.Equal(t, "$1.547", result.FinalPriceCLP)
	assert.Equal(t, "$300", result.NetGainCLP)
}

func TestService_Simulate_ParametrosInvalidos(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name  string
		input domain.SimulationInput
		err   error
	}{
		{
			name:  "Custo negativo",
			input: domain.SimulationInput{UnitCost: -1, MarginPct: 30},
			err:   ErrNegativeCost,
		},
		{
			name:  "Margem acima de 100",
			input: domain.SimulationInput{UnitCost: 1000, MarginPct: 150},
			err:   ErrMarginOutOfRange,
		},
		{
			name:  "Margem negativa",
			input: domain.SimulationInput{UnitCost: 1000, MarginPct: -10},
			err:   ErrMarginOutOfRange,
		},
		{
			name:  "Imposto negativo",
			input: domain.SimulationInput{UnitCost: 1000, MarginPct: 30, TaxPct: floatPtr(-5)},
			err:   ErrNegativeTax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Simulate(tt.input)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
