package reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/forecasting"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/ingesting"
)

func newTestService() Reporter {
	return NewService(
		ingesting.NewService(),
		analyzing.NewService(),
		forecasting.NewService(),
	)
}

func rawRow(product, units, price, cost, month string) domain.RawRow {
	return domain.RawRow{
		domain.ColumnProduct: product,
		domain.ColumnUnits:   units,
		domain.ColumnPrice:   price,
		domain.ColumnCost:    cost,
		domain.ColumnMonth:   month,
	}
}

func TestService_BuildReport_PipelineCompleto(t *testing.T) {
	service := newTestService()

	report, err := service.BuildReport([]domain.RawRow{
		rawRow("Camisa", "10", "100", "50", "1"),
		rawRow("Gorra", "10", "100", "50", "2"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, domain.SourceUpload, report.Source)
	assert.Len(t, report.Records, 2)
	assert.Len(t, report.Products, 2)
	assert.Len(t, report.Monthly, 2)
	assert.Equal(t, "$2.000", report.Totals.GrossRevenueCLP)

	require.NotNil(t, report.Forecast)
	assert.Empty(t, report.ForecastWarning)
	assert.Equal(t, 3, report.Forecast.NextMonth)
	assert.InDelta(t, 1000.0, report.Forecast.PredictedRevenue, 1e-9)
}

func TestService_BuildReport_SemArquivoUsaDemonstracao(t *testing.T) {
	service := newTestService()

	report, err := service.BuildReport(nil)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceDemo, report.Source)
	assert.Len(t, report.Records, 8)
	assert.Len(t, report.Products, 4)

	// O dataset de demonstração tem 2 meses, o suficiente para projetar
	require.NotNil(t, report.Forecast)
	assert.Equal(t, 3, report.Forecast.NextMonth)
	assert.InDelta(t, 710000.0, report.Forecast.PredictedRevenue, 1e-6)
}

func TestService_BuildReport_UmMesSuprimeProjecao(t *testing.T) {
	// A falta de meses distintos não é fatal: o relatório continua
	// válido e a projeção vira um aviso
	service := newTestService()

	report, err := service.BuildReport([]domain.RawRow{
		rawRow("Camisa", "10", "100", "50", "1"),
		rawRow("Gorra", "20", "200", "100", "1"),
	})

	require.NoError(t, err)
	assert.Nil(t, report.Forecast)
	assert.NotEmpty(t, report.ForecastWarning)
	assert.Len(t, report.Records, 2)
	assert.Len(t, report.Monthly, 1)
}

func TestService_BuildReport_ValidacaoFatal(t *testing.T) {
	// Colunas ausentes interrompem o relatório inteiro: nenhuma
	// renderização parcial de dataset inválido
	service := newTestService()

	report, err := service.BuildReport([]domain.RawRow{
		{
			domain.ColumnProduct: "Camisa",
			domain.ColumnUnits:   "10",
			domain.ColumnPrice:   "100",
			domain.ColumnMonth:   "1",
		},
	})

	assert.Nil(t, report)

	var missingErr *ingesting.MissingColumnsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"Costo"}, missingErr.Missing)
}
