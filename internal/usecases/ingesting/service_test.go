package ingesting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pyme-analytics-api/internal/domain"
)

func validRow(product, units, price, cost, month string) domain.RawRow {
	return domain.RawRow{
		domain.ColumnProduct: product,
		domain.ColumnUnits:   units,
		domain.ColumnPrice:   price,
		domain.ColumnCost:    cost,
		domain.ColumnMonth:   month,
	}
}

func TestService_Validate_DatasetDemonstracao(t *testing.T) {
	service := NewService()

	tests := []struct {
		name string
		rows []domain.RawRow
	}{
		{name: "Entrada nula usa o dataset de demonstração", rows: nil},
		{name: "Entrada vazia usa o dataset de demonstração", rows: []domain.RawRow{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := service.Validate(tt.rows)

			require.NoError(t, err)
			assert.Equal(t, domain.SourceDemo, ds.Source)
			assert.Equal(t, domain.DemoDataset(), ds.Records)
		})
	}
}

func TestService_Validate_ColunasAusentes(t *testing.T) {
	service := NewService()

	tests := []struct {
		name    string
		row     domain.RawRow
		missing []string
	}{
		{
			name: "Coluna Costo ausente",
			row: domain.RawRow{
				domain.ColumnProduct: "Camisa",
				domain.ColumnUnits:   "50",
				domain.ColumnPrice:   "2500",
				domain.ColumnMonth:   "1",
			},
			missing: []string{"Costo"},
		},
		{
			name: "Várias colunas ausentes, em ordem alfabética",
			row: domain.RawRow{
				domain.ColumnProduct: "Camisa",
				domain.ColumnPrice:   "2500",
			},
			missing: []string{"Costo", "Mes", "Unidades"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := service.Validate([]domain.RawRow{tt.row})

			require.Error(t, err)
			assert.Nil(t, ds)

			var missingErr *MissingColumnsError
			require.True(t, errors.As(err, &missingErr))
			assert.Equal(t, tt.missing, missingErr.Missing)
		})
	}
}

func TestService_Validate_CoercaoNumerica(t *testing.T) {
	service := NewService()

	tests := []struct {
		name   string
		row    domain.RawRow
		column string
	}{
		{
			name:   "Unidades não numéricas",
			row:    validRow("Camisa", "cincuenta", "2500", "1200", "1"),
			column: domain.ColumnUnits,
		},
		{
			name:   "Unidades fracionárias",
			row:    validRow("Camisa", "50.5", "2500", "1200", "1"),
			column: domain.ColumnUnits,
		},
		{
			name:   "Unidades negativas",
			row:    validRow("Camisa", "-5", "2500", "1200", "1"),
			column: domain.ColumnUnits,
		},
		{
			name:   "Precio não numérico",
			row:    validRow("Camisa", "50", "caro", "1200", "1"),
			column: domain.ColumnPrice,
		},
		{
			name:   "Costo negativo",
			row:    validRow("Camisa", "50", "2500", "-1", "1"),
			column: domain.ColumnCost,
		},
		{
			name:   "Mes não numérico",
			row:    validRow("Camisa", "50", "2500", "1200", "enero"),
			column: domain.ColumnMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := service.Validate([]domain.RawRow{tt.row})

			require.Error(t, err)
			assert.Nil(t, ds)

			var mismatchErr *TypeMismatchError
			require.True(t, errors.As(err, &mismatchErr))
			assert.Equal(t, tt.column, mismatchErr.Column)
			assert.Equal(t, 0, mismatchErr.Row)
		})
	}
}

func TestService_Validate_DatasetValido(t *testing.T) {
	service := NewService()

	rows := []domain.RawRow{
		validRow("Camisa", "50", "2500", "1200", "1"),
		// Células numéricas exportadas como float são aceitas quando inteiras
		validRow("Gorra", "80", "1500.0", "600", "2.0"),
	}

	ds, err := service.Validate(rows)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceUpload, ds.Source)
	require.Len(t, ds.Records, 2)

	assert.Equal(t, domain.SalesRecord{
		Product:   "Camisa",
		Units:     50,
		UnitPrice: 2500,
		UnitCost:  1200,
		Month:     1,
	}, ds.Records[0])

	assert.Equal(t, domain.SalesRecord{
		Product:   "Gorra",
		Units:     80,
		UnitPrice: 1500,
		UnitCost:  600,
		Month:     2,
	}, ds.Records[1])
}

func TestService_Validate_ProdutoPreservadoSemNormalizacao(t *testing.T) {
	// O nome do produto é a chave de agrupamento e deve sobreviver à
	// validação byte a byte: "Camisa" e " Camisa" são produtos distintos
	service := NewService()

	rows := []domain.RawRow{
		validRow("Camisa", "10", "100", "50", "1"),
		validRow(" Camisa", "10", "100", "50", "1"),
		validRow("camisa", "10", "100", "50", "1"),
	}

	ds, err := service.Validate(rows)

	require.NoError(t, err)
	require.Len(t, ds.Records, 3)
	assert.Equal(t, "Camisa", ds.Records[0].Product)
	assert.Equal(t, " Camisa", ds.Records[1].Product)
	assert.Equal(t, "camisa", ds.Records[2].Product)
}
