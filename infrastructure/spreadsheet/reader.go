package spreadsheet

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vfg2006/pyme-analytics-api/internal/config"
	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/pkg/log"
)

// Erros de leitura de planilhas
var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado, envie .xlsx ou .csv")
	ErrEmptySheet        = errors.New("a planilha não possui linha de cabeçalho")
)

// Parser define a interface de leitura de planilhas de vendas
type Parser interface {
	// Parse converte o conteúdo do arquivo em linhas brutas
	// (coluna -> valor), escolhendo o leitor pela extensão do nome
	Parse(filename string, data []byte) ([]domain.RawRow, error)
}

// Service implementa Parser com suporte a .xlsx e .csv e memoização
// opcional por hash do conteúdo. A memoização é apenas otimização:
// o reprocessamento é sempre idempotente e a correção do resultado
// não depende da presença do cache.
type Service struct {
	sheetName string
	cache     *gocache.Cache
}

// NewService cria o leitor de planilhas a partir da configuração
func NewService(cfg *config.Config) Parser {
	s := &Service{
		sheetName: cfg.Upload.SheetName,
	}

	if cfg.Upload.CacheEnabled {
		ttl := time.Duration(cfg.Upload.CacheTTLMinutes) * time.Minute
		s.cache = gocache.New(ttl, 2*ttl)
	}

	return s
}

// Parse lê o arquivo e devolve as linhas brutas
func (s *Service) Parse(filename string, data []byte) ([]domain.RawRow, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	key := cacheKey(ext, data)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			log.L.WithField("upload_hash", key).Debug("spreadsheet: upload idêntico encontrado no cache")
			return cached.([]domain.RawRow), nil
		}
	}

	var (
		rows []domain.RawRow
		err  error
	)

	switch ext {
	case ".xlsx":
		rows, err = s.readXLSX(data)
	case ".csv":
		rows, err = s.readCSV(data)
	default:
		return nil, ErrUnsupportedFormat
	}

	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetDefault(key, rows)
	}

	return rows, nil
}

func cacheKey(ext string, data []byte) string {
	sum := sha256.Sum256(data)
	return ext + ":" + hex.EncodeToString(sum[:])
}

// tableToRows projeta uma tabela (cabeçalho + linhas) em RawRows.
// Os nomes das colunas são preservados byte a byte, já que a checagem
// de esquema usa comparação exata de strings. Células finais ausentes
// viram string vazia; linhas totalmente vazias são ignoradas.
func tableToRows(table [][]string) ([]domain.RawRow, error) {
	if len(table) == 0 {
		return nil, ErrEmptySheet
	}

	header := table[0]

	rows := make([]domain.RawRow, 0, len(table)-1)
	for _, cells := range table[1:] {
		if isEmptyRow(cells) {
			continue
		}

		row := make(domain.RawRow, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
