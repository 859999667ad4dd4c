package domain

// EnrichedRecord é um SalesRecord com os campos financeiros derivados.
// Os derivados são sempre recalculados a partir dos campos de origem,
// nunca armazenados de forma independente.
type EnrichedRecord struct {
	SalesRecord
	GrossRevenue float64 `json:"gross_revenue"`
	TotalCost    float64 `json:"total_cost"`
	Profit       float64 `json:"profit"`
}

// Enrich calcula os campos derivados de um registro de venda
func Enrich(r SalesRecord) EnrichedRecord {
	grossRevenue := float64(r.Units) * r.UnitPrice
	totalCost := float64(r.Units) * r.UnitCost

	return EnrichedRecord{
		SalesRecord:  r,
		GrossRevenue: grossRevenue,
		TotalCost:    totalCost,
		Profit:       grossRevenue - totalCost,
	}
}

// ProductAggregate acumula as métricas de todas as linhas de um produto.
// A chave de agrupamento é o nome exato do produto (sem normalização).
type ProductAggregate struct {
	Product      string          `json:"product"`
	GrossRevenue float64         `json:"gross_revenue"`
	Profit       float64         `json:"profit"`
	Units        int             `json:"units"`
	MarginPct    NullableFloat64 `json:"margin_pct"` // null quando a receita é zero
}

// MonthlyAggregate é a receita bruta total de um mês, usada como
// série temporal na projeção
type MonthlyAggregate struct {
	Month        int     `json:"month"`
	GrossRevenue float64 `json:"gross_revenue"`
}

// Totals são os KPIs gerais do dashboard
type Totals struct {
	GrossRevenue    float64 `json:"gross_revenue"`
	GrossRevenueCLP string  `json:"gross_revenue_clp"`
	Profit          float64 `json:"profit"`
	ProfitCLP       string  `json:"profit_clp"`
	Units           int     `json:"units"`
}

// Analysis é o resultado completo da derivação de métricas
type Analysis struct {
	Records  []EnrichedRecord   `json:"records"`
	Products []ProductAggregate `json:"products"`
	Monthly  []MonthlyAggregate `json:"monthly"`
	Totals   Totals             `json:"totals"`
}
