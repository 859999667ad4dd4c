package forecasting

import "errors"

// Erros específicos para o contexto de projeção
var (
	// ErrInsufficientData indica que a série mensal não tem pontos
	// suficientes para ajustar a reta. É uma condição recuperável: o
	// chamador exibe um aviso e o restante do relatório segue válido.
	ErrInsufficientData = errors.New("são necessários dados de pelo menos 2 meses distintos para fazer uma projeção")
)
