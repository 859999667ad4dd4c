package domain

// ForecastPoint é um ponto da série usada no gráfico de tendência:
// os meses observados mais o mês projetado
type ForecastPoint struct {
	Month        int     `json:"month"`
	GrossRevenue float64 `json:"gross_revenue"`
	Predicted    bool    `json:"predicted"`
}

// ForecastResult é a projeção de receita para o próximo mês, calculada
// por regressão linear simples sobre os agregados mensais. É recalculada
// do zero a cada requisição e nunca persistida.
type ForecastResult struct {
	NextMonth           int             `json:"next_month"`
	PredictedRevenue    float64         `json:"predicted_revenue"`
	PredictedRevenueCLP string          `json:"predicted_revenue_clp"`
	Confidence          NullableFloat64 `json:"confidence"` // R² do ajuste; null quando indefinido
	Slope               float64         `json:"slope"`
	Intercept           float64         `json:"intercept"`
	History             []ForecastPoint `json:"history"`
}
