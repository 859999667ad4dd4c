package simulating

import (
	"github.com/vfg2006/pyme-analytics-api/internal/config"
	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/pkg/utils"
)

// Simulator define a interface do simulador de preços
type Simulator interface {
	// Simulate calcula o preço final de um produto a partir de custo,
	// margem e imposto. Cálculo independente do dataset carregado.
	Simulate(in domain.SimulationInput) (*domain.SimulationResult, error)
}

// Service implementa a interface Simulator
type Service struct {
	defaultTaxPct float64
}

// NewService cria uma nova instância do simulador de preços
func NewService(cfg *config.Config) Simulator {
	return &Service{
		defaultTaxPct: cfg.Simulator.DefaultTaxPct,
	}
}

// Simulate aplica preço_final = custo × (1 + margem/100) × (1 + imposto/100).
// O ganho líquido é a diferença entre o preço com margem e o custo,
// antes do imposto.
func (s *Service) Simulate(in domain.SimulationInput) (*domain.SimulationResult, error) {
	if in.UnitCost < 0 {
		return nil, ErrNegativeCost
	}

	if in.MarginPct < 0 || in.MarginPct > 100 {
		return nil, ErrMarginOutOfRange
	}

	taxPct := s.defaultTaxPct
	if in.TaxPct != nil {
		taxPct = *in.TaxPct
	}
	if taxPct < 0 {
		return nil, ErrNegativeTax
	}

	netPrice := in.UnitCost * (1 + in.MarginPct/100)
	finalPrice := netPrice * (1 + taxPct/100)
	netGain := netPrice - in.UnitCost

	return &domain.SimulationResult{
		UnitCost:      in.UnitCost,
		MarginPct:     in.MarginPct,
		TaxPct:        taxPct,
		NetPrice:      utils.RoundWithTwoDecimalPlace(netPrice),
		FinalPrice:    utils.RoundWithTwoDecimalPlace(finalPrice),
		FinalPriceCLP: utils.FormatCLP(finalPrice),
		NetGain:       utils.RoundWithTwoDecimalPlace(netGain),
		NetGainCLP:    utils.FormatCLP(netGain),
	}, nil
}
