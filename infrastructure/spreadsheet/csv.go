package spreadsheet

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"

	"github.com/vfg2006/pyme-analytics-api/internal/domain"
)

// readCSV extrai as linhas de um arquivo CSV separado por vírgula,
// com a primeira linha como cabeçalho
func (s *Service) readCSV(data []byte) ([]domain.RawRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // linhas com menos células são toleradas

	table, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo csv")
	}

	return tableToRows(table)
}
