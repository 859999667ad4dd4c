package ingesting

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/pkg/log"
)

// Validator define a interface de validação de datasets de vendas
type Validator interface {
	// Validate valida as linhas brutas e devolve o dataset tipado.
	// Linhas vazias ou ausentes substituem o dataset de demonstração.
	Validate(rows []domain.RawRow) (*domain.ValidatedDataset, error)
}

// Service implementa a interface Validator
type Service struct{}

// NewService cria uma nova instância do serviço de ingestão
func NewService() Validator {
	return &Service{}
}

// Validate aplica a checagem de esquema (tudo-ou-nada sobre a presença
// das colunas) e a coerção numérica por linha. É uma função pura: não
// guarda estado entre invocações.
func (s *Service) Validate(rows []domain.RawRow) (*domain.ValidatedDataset, error) {
	if len(rows) == 0 {
		log.L.Info("ingesting: nenhuma linha recebida, usando dataset de demonstração")
		return &domain.ValidatedDataset{
			Records: domain.DemoDataset(),
			Source:  domain.SourceDemo,
		}, nil
	}

	if missing := missingColumns(rows[0]); len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	records := make([]domain.SalesRecord, 0, len(rows))
	for i, row := range rows {
		record, err := parseRecord(i, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &domain.ValidatedDataset{
		Records: records,
		Source:  domain.SourceUpload,
	}, nil
}

// missingColumns compara o esquema da planilha com as colunas
// obrigatórias. O cabeçalho da primeira linha vale para todas, já que
// os leitores de planilha projetam o mesmo cabeçalho em cada linha.
func missingColumns(row domain.RawRow) []string {
	var missing []string

	for _, col := range requiredColumnNames() {
		if _, ok := row[col]; !ok {
			missing = append(missing, col)
		}
	}

	sort.Strings(missing)
	return missing
}

func requiredColumnNames() []string {
	return domain.RequiredColumns()
}

// parseRecord converte uma linha bruta em SalesRecord, rejeitando
// valores não numéricos ou negativos nas colunas numéricas. O nome do
// produto é preservado byte a byte: a igualdade no agrupamento é
// comparação exata de strings, sem normalização de caixa ou espaços.
func parseRecord(index int, row domain.RawRow) (domain.SalesRecord, error) {
	units, err := parseUnsignedInt(index, domain.ColumnUnits, row[domain.ColumnUnits])
	if err != nil {
		return domain.SalesRecord{}, err
	}

	price, err := parseUnsignedFloat(index, domain.ColumnPrice, row[domain.ColumnPrice])
	if err != nil {
		return domain.SalesRecord{}, err
	}

	cost, err := parseUnsignedFloat(index, domain.ColumnCost, row[domain.ColumnCost])
	if err != nil {
		return domain.SalesRecord{}, err
	}

	month, err := parseInt(index, domain.ColumnMonth, row[domain.ColumnMonth])
	if err != nil {
		return domain.SalesRecord{}, err
	}

	return domain.SalesRecord{
		Product:   row[domain.ColumnProduct],
		Units:     units,
		UnitPrice: price,
		UnitCost:  cost,
		Month:     month,
	}, nil
}

// parseInt aceita inteiros e também floats sem parte fracionária
// ("1.0"), forma comum em células numéricas exportadas de planilhas
func parseInt(row int, column, value string) (int, error) {
	raw := strings.TrimSpace(value)

	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &TypeMismatchError{Row: row, Column: column, Value: value, Reason: "não é um número"}
	}

	if f != float64(int(f)) {
		return 0, &TypeMismatchError{Row: row, Column: column, Value: value, Reason: "não é um número inteiro"}
	}

	return int(f), nil
}

func parseUnsignedInt(row int, column, value string) (int, error) {
	n, err := parseInt(row, column, value)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, &TypeMismatchError{Row: row, Column: column, Value: value, Reason: "não pode ser negativo"}
	}

	return n, nil
}

func parseUnsignedFloat(row int, column, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &TypeMismatchError{Row: row, Column: column, Value: value, Reason: "não é um número"}
	}

	if f < 0 {
		return 0, &TypeMismatchError{Row: row, Column: column, Value: value, Reason: "não pode ser negativo"}
	}

	return f, nil
}
