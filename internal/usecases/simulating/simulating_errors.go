package simulating

import "errors"

// Erros de validação dos parâmetros do simulador
var (
	ErrNegativeCost     = errors.New("o custo do produto não pode ser negativo")
	ErrMarginOutOfRange = errors.New("a margem deve estar entre 0 e 100")
	ErrNegativeTax      = errors.New("o imposto não pode ser negativo")
)
