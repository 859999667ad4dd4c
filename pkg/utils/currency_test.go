package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCLP(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "Milhar com separador de ponto", value: 1500, want: "$1.500"},
		{name: "Zero", value: 0, want: "$0"},
		{name: "NaN formata como zero", value: math.NaN(), want: "$0"},
		{name: "Infinito formata como zero", value: math.Inf(1), want: "$0"},
		{name: "Sem separador abaixo de mil", value: 999, want: "$999"},
		{name: "Milhões", value: 1234567, want: "$1.234.567"},
		{name: "Arredonda casas decimais", value: 1499.6, want: "$1.500"},
		{name: "Negativo mantém o sinal", value: -1500, want: "$-1.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCLP(tt.value))
		})
	}
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 52.0, RoundWithOneDecimalPlace(52.0))
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(100.0/3))
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
}
