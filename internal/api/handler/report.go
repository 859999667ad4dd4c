package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/pyme-analytics-api/infrastructure/spreadsheet"
	"github.com/vfg2006/pyme-analytics-api/internal/config"
	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/pyme-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/pyme-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nome do campo multipart com a planilha de vendas
const uploadFieldName = "file"

// CreateReport processa o upload da planilha e devolve o relatório
// completo. Sem arquivo no corpo, o relatório usa o dataset de
// demonstração.
func CreateReport(cfg *config.Config, parser spreadsheet.Parser, service reporting.Reporter) http.Handler {
	maxBytes := cfg.Upload.MaxSizeMB << 20

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		rows, ok := readUploadedRows(w, r, parser, logger)
		if !ok {
			return
		}

		report, err := service.BuildReport(rows)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeReport(w, logger, report)
	})
}

// DemoReport devolve o relatório sobre o dataset de demonstração
func DemoReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.BuildReport(nil)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeReport(w, logger, report)
	})
}

// readUploadedRows extrai e converte a planilha enviada. Retorna linhas
// nulas (dataset de demonstração) quando a requisição não traz arquivo.
// O segundo retorno indica se o processamento deve continuar.
func readUploadedRows(w http.ResponseWriter, r *http.Request, parser spreadsheet.Parser, logger log.Logger) ([]domain.RawRow, bool) {
	file, header, err := r.FormFile(uploadFieldName)

	var maxBytesErr *http.MaxBytesError

	switch {
	case err == nil:
		// segue abaixo
	case errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart):
		return nil, true
	case errors.As(err, &maxBytesErr):
		apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo maior que o limite permitido", nil)
		return nil, false
	default:
		logger.WithError(err).Warn("reports: corpo multipart inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
		return nil, false
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		if errors.As(err, &maxBytesErr) {
			apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo maior que o limite permitido", nil)
			return nil, false
		}

		logger.WithError(err).Error("reports: erro ao ler o arquivo enviado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
		return nil, false
	}

	logger.WithFields(log.Fields{
		"upload_filename": header.Filename,
		"upload_bytes":    len(data),
	}).Info("reports: processando planilha enviada")

	rows, err := parser.Parse(header.Filename, data)
	if err != nil {
		writeReportError(w, logger, err)
		return nil, false
	}

	return rows, true
}

// writeReportError traduz os erros do pipeline para o payload de erro da API
func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	var (
		missingErr  *ingesting.MissingColumnsError
		mismatchErr *ingesting.TypeMismatchError
	)

	switch {
	case errors.As(err, &missingErr):
		logger.WithField("missing_columns", missingErr.Missing).Warn("reports: planilha com colunas ausentes")
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, err.Error(), map[string]any{
			"missing": missingErr.Missing,
		})
	case errors.As(err, &mismatchErr):
		logger.WithFields(log.Fields{
			"row":    mismatchErr.Row,
			"column": mismatchErr.Column,
		}).Warn("reports: planilha com valores inválidos")
		apiErrors.WriteError(w, apiErrors.ErrTypeMismatch, err.Error(), map[string]any{
			"row":    mismatchErr.Row,
			"column": mismatchErr.Column,
			"value":  mismatchErr.Value,
		})
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedFormat, err.Error(), nil)
	case errors.Is(err, spreadsheet.ErrEmptySheet):
		apiErrors.WriteError(w, apiErrors.ErrEmptySpreadsheet, err.Error(), nil)
	default:
		logger.WithError(err).Error("reports: erro ao gerar o relatório")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o relatório", nil)
	}
}

func writeReport(w http.ResponseWriter, logger log.Logger, report *domain.SalesReport) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logger.WithError(err).Error("reports: erro ao codificar resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
