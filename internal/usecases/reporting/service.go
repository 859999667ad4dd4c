package reporting

import (
	"github.com/pkg/errors"

	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/forecasting"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/pyme-analytics-api/pkg/log"
	"github.com/vfg2006/pyme-analytics-api/pkg/utils"
)

// Reporter define a interface de geração de relatórios de vendas
type Reporter interface {
	// BuildReport executa o pipeline completo (validação -> derivação ->
	// projeção) sobre as linhas brutas. Linhas nulas usam o dataset de
	// demonstração.
	BuildReport(rows []domain.RawRow) (*domain.SalesReport, error)
}

// Service implementa a interface Reporter compondo os serviços do
// pipeline. O fluxo de dados é estritamente linear e sem estado entre
// invocações.
type Service struct {
	validator  ingesting.Validator
	analyzer   analyzing.Analyzer
	forecaster forecasting.Forecaster
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	validator ingesting.Validator,
	analyzer analyzing.Analyzer,
	forecaster forecasting.Forecaster,
) Reporter {
	return &Service{
		validator:  validator,
		analyzer:   analyzer,
		forecaster: forecaster,
	}
}

// BuildReport monta o relatório completo. Falhas de validação são
// fatais para o dataset; a falta de meses suficientes apenas suprime a
// projeção e vira um aviso no relatório.
func (s *Service) BuildReport(rows []domain.RawRow) (*domain.SalesReport, error) {
	dataset, err := s.validator.Validate(rows)
	if err != nil {
		return nil, err
	}

	analysis := s.analyzer.Analyze(dataset)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do relatório")
	}

	report := &domain.SalesReport{
		ID:       id,
		Source:   dataset.Source,
		Records:  analysis.Records,
		Products: analysis.Products,
		Monthly:  analysis.Monthly,
		Totals:   analysis.Totals,
	}

	forecast, err := s.forecaster.Project(analysis.Monthly)
	switch {
	case errors.Is(err, forecasting.ErrInsufficientData):
		report.ForecastWarning = err.Error()

		log.L.WithFields(log.Fields{
			"report_id":     id,
			"report_months": len(analysis.Monthly),
		}).Warn("reporting: projeção suprimida por falta de meses distintos")
	case err != nil:
		return nil, err
	default:
		report.Forecast = forecast
	}

	log.L.WithFields(log.Fields{
		"report_id":       id,
		"report_source":   dataset.Source,
		"report_rows":     len(analysis.Records),
		"report_products": len(analysis.Products),
		"report_months":   len(analysis.Monthly),
	}).Info("reporting: relatório gerado com sucesso")

	return report, nil
}
