package domain

// SalesReport é a resposta completa de uma análise: o que a camada de
// apresentação precisa para montar tabela, gráficos e projeção em uma
// única renderização. Nenhum campo sobrevive à requisição que o criou.
type SalesReport struct {
	ID       string             `json:"id"`
	Source   string             `json:"source"`
	Records  []EnrichedRecord   `json:"records"`
	Products []ProductAggregate `json:"products"`
	Monthly  []MonthlyAggregate `json:"monthly"`
	Totals   Totals             `json:"totals"`

	// Forecast é nulo quando não há meses suficientes; nesse caso
	// ForecastWarning explica o motivo e o restante do relatório
	// continua válido.
	Forecast        *ForecastResult `json:"forecast,omitempty"`
	ForecastWarning string          `json:"forecast_warning,omitempty"`
}
