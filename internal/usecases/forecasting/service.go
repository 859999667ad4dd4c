package forecasting

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/pkg/utils"
)

// Tolerância relativa para considerar os resíduos nulos quando a série
// observada não tem variância (política de R² com variância zero)
const residualTolerance = 1e-9

// Forecaster define a interface de projeção de tendência
type Forecaster interface {
	// Project ajusta uma regressão linear simples sobre os agregados
	// mensais e projeta a receita do próximo mês
	Project(monthly []domain.MonthlyAggregate) (*domain.ForecastResult, error)
}

// Service implementa a interface Forecaster
type Service struct{}

// NewService cria uma nova instância do serviço de projeção
func NewService() Forecaster {
	return &Service{}
}

// Project faz o ajuste de mínimos quadrados (receita em função do mês,
// um preditor, forma fechada) e calcula o R² como confiança. O modelo é
// recalculado do zero a cada chamada; nada é persistido.
func (s *Service) Project(monthly []domain.MonthlyAggregate) (*domain.ForecastResult, error) {
	if len(distinctMonths(monthly)) < 2 {
		return nil, ErrInsufficientData
	}

	series := make([]domain.MonthlyAggregate, len(monthly))
	copy(series, monthly)
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, m := range series {
		xs[i] = float64(m.Month)
		ys[i] = m.GrossRevenue
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	nextMonth := series[len(series)-1].Month + 1
	predicted := slope*float64(nextMonth) + intercept

	history := make([]domain.ForecastPoint, 0, len(series)+1)
	for _, m := range series {
		history = append(history, domain.ForecastPoint{Month: m.Month, GrossRevenue: m.GrossRevenue})
	}
	history = append(history, domain.ForecastPoint{Month: nextMonth, GrossRevenue: predicted, Predicted: true})

	return &domain.ForecastResult{
		NextMonth:           nextMonth,
		PredictedRevenue:    predicted,
		PredictedRevenueCLP: utils.FormatCLP(predicted),
		Confidence:          confidence(xs, ys, intercept, slope),
		Slope:               slope,
		Intercept:           intercept,
		History:             history,
	}, nil
}

// confidence calcula o coeficiente de determinação do ajuste.
// Quando a série observada tem variância zero o R² clássico é 0/0;
// a política adotada é 1.0 se os resíduos também são nulos (a reta
// constante descreve os pontos perfeitamente) e NaN caso contrário.
func confidence(xs, ys []float64, intercept, slope float64) domain.NullableFloat64 {
	mean := stat.Mean(ys, nil)

	var ssr, tss float64
	for i := range xs {
		fitted := slope*xs[i] + intercept
		ssr += (ys[i] - fitted) * (ys[i] - fitted)
		tss += (ys[i] - mean) * (ys[i] - mean)
	}

	if tss == 0 {
		scale := math.Max(math.Abs(mean), 1)
		if ssr <= residualTolerance*scale {
			return domain.NullableFloat64(1)
		}
		return domain.NullableFloat64(math.NaN())
	}

	return domain.NullableFloat64(1 - ssr/tss)
}

func distinctMonths(monthly []domain.MonthlyAggregate) map[int]struct{} {
	months := make(map[int]struct{}, len(monthly))
	for _, m := range monthly {
		months[m.Month] = struct{}{}
	}
	return months
}
