package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest    = "VAL_001" // Requisição inválida
	ErrMissingColumns    = "VAL_002" // Colunas obrigatórias ausentes na planilha
	ErrTypeMismatch      = "VAL_003" // Valor não numérico em coluna numérica
	ErrUnsupportedFormat = "VAL_004" // Formato de arquivo não suportado
	ErrFileTooLarge      = "VAL_005" // Arquivo maior que o limite configurado
	ErrEmptySpreadsheet  = "VAL_006" // Planilha sem cabeçalho

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrMissingColumns:    http.StatusUnprocessableEntity,
	ErrTypeMismatch:      http.StatusUnprocessableEntity,
	ErrUnsupportedFormat: http.StatusBadRequest,
	ErrFileTooLarge:      http.StatusRequestEntityTooLarge,
	ErrEmptySpreadsheet:  http.StatusBadRequest,
	ErrInternalServer:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
