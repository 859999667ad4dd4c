package domain

// SimulationInput são os parâmetros do simulador de preços. O simulador
// é independente do dataset carregado: opera apenas sobre estes valores.
// TaxPct nulo usa o imposto padrão configurado.
type SimulationInput struct {
	UnitCost  float64  `json:"unit_cost"`
	MarginPct float64  `json:"margin_pct"`
	TaxPct    *float64 `json:"tax_pct,omitempty"`
}

// SimulationResult é o preço final calculado e seus intermediários
type SimulationResult struct {
	UnitCost      float64 `json:"unit_cost"`
	MarginPct     float64 `json:"margin_pct"`
	TaxPct        float64 `json:"tax_pct"`
	NetPrice      float64 `json:"net_price"`
	FinalPrice    float64 `json:"final_price"`
	FinalPriceCLP string  `json:"final_price_clp"`
	NetGain       float64 `json:"net_gain"`
	NetGainCLP    string  `json:"net_gain_clp"`
}
