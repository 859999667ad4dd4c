package analyzing

import (
	"math"
	"sort"

	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/pkg/utils"
)

// Analyzer define a interface de derivação de métricas financeiras
type Analyzer interface {
	// Analyze deriva as métricas por linha, por produto e por mês de um
	// dataset validado
	Analyze(ds *domain.ValidatedDataset) *domain.Analysis
}

// Service implementa a interface Analyzer
type Service struct{}

// NewService cria uma nova instância do serviço de análise
func NewService() Analyzer {
	return &Service{}
}

// Acumulador de agregação por produto
type productAccumulator struct {
	grossRevenue float64
	profit       float64
	units        int
}

// Analyze é uma função total e determinística: nenhuma linha é
// descartada e duas chamadas sobre o mesmo dataset produzem resultados
// idênticos bit a bit.
func (s *Service) Analyze(ds *domain.ValidatedDataset) *domain.Analysis {
	records := make([]domain.EnrichedRecord, 0, len(ds.Records))

	// Ordem de primeira aparição para manter a saída determinística
	byProduct := make(map[string]*productAccumulator)
	productOrder := make([]string, 0)

	byMonth := make(map[int]float64)

	totals := domain.Totals{}

	for _, r := range ds.Records {
		enriched := domain.Enrich(r)
		records = append(records, enriched)

		acc, ok := byProduct[r.Product]
		if !ok {
			acc = &productAccumulator{}
			byProduct[r.Product] = acc
			productOrder = append(productOrder, r.Product)
		}
		acc.grossRevenue += enriched.GrossRevenue
		acc.profit += enriched.Profit
		acc.units += r.Units

		byMonth[r.Month] += enriched.GrossRevenue

		totals.GrossRevenue += enriched.GrossRevenue
		totals.Profit += enriched.Profit
		totals.Units += r.Units
	}

	products := make([]domain.ProductAggregate, 0, len(productOrder))
	for _, name := range productOrder {
		acc := byProduct[name]
		products = append(products, domain.ProductAggregate{
			Product:      name,
			GrossRevenue: acc.grossRevenue,
			Profit:       acc.profit,
			Units:        acc.units,
			MarginPct:    marginPct(acc.profit, acc.grossRevenue),
		})
	}

	monthly := make([]domain.MonthlyAggregate, 0, len(byMonth))
	for month, revenue := range byMonth {
		monthly = append(monthly, domain.MonthlyAggregate{Month: month, GrossRevenue: revenue})
	}
	// Ordenação ascendente por mês para uso como série temporal
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })

	totals.GrossRevenueCLP = utils.FormatCLP(totals.GrossRevenue)
	totals.ProfitCLP = utils.FormatCLP(totals.Profit)

	return &domain.Analysis{
		Records:  records,
		Products: products,
		Monthly:  monthly,
		Totals:   totals,
	}
}

// marginPct calcula a margem percentual com uma casa decimal.
// Com receita zero a margem é indefinida e reportada como NaN,
// serializada como null na API.
func marginPct(profit, grossRevenue float64) domain.NullableFloat64 {
	if grossRevenue == 0 {
		return domain.NullableFloat64(math.NaN())
	}

	return domain.NullableFloat64(utils.RoundWithOneDecimalPlace(profit / grossRevenue * 100))
}
