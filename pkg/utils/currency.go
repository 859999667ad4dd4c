package utils

import (
	"math"
	"strconv"
)

// FormatCLP formata um valor como peso chileno: prefixo "$", ponto como
// separador de milhar e nenhuma casa decimal (ex: 1500 -> "$1.500").
// NaN e infinito formatam como o valor zero ("$0").
func FormatCLP(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	n := int64(math.Round(v))

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)

	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}

	return "$" + sign + string(out)
}
