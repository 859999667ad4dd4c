package domain

import (
	"math"
	"strconv"
)

// NullableFloat64 é um float64 que serializa NaN e infinito como null.
// Usado para métricas indefinidas (margem com receita zero, R² com
// variância zero), já que encoding/json rejeita NaN.
type NullableFloat64 float64

// Valid informa se o valor é um número definido
func (f NullableFloat64) Valid() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MarshalJSON implementa json.Marshaler
func (f NullableFloat64) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(f), 'f', -1, 64), nil
}

// UnmarshalJSON implementa json.Unmarshaler, aceitando null como NaN
func (f *NullableFloat64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NullableFloat64(math.NaN())
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*f = NullableFloat64(v)
	return nil
}
