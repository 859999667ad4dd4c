package spreadsheet

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/pyme-analytics-api/internal/domain"
)

// readXLSX extrai as linhas da planilha Excel. Usa a aba configurada
// ou, na ausência de configuração, a primeira aba do arquivo.
func (s *Service) readXLSX(data []byte) ([]domain.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo xlsx")
	}
	defer f.Close()

	sheet := s.sheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptySheet
		}
		sheet = sheets[0]
	}

	table, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %q", sheet)
	}

	return tableToRows(table)
}
