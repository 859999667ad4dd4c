package ingesting

import (
	"fmt"
	"strings"
)

// MissingColumnsError indica que a planilha não possui todas as colunas
// obrigatórias. A checagem é tudo-ou-nada sobre o esquema: qualquer
// coluna ausente invalida o dataset inteiro.
type MissingColumnsError struct {
	Missing []string // colunas ausentes, em ordem alfabética
}

// Error implementa a interface error
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("a planilha deve ter as colunas: %s (ausentes: %s)",
		strings.Join(requiredColumnNames(), ", "),
		strings.Join(e.Missing, ", "))
}

// TypeMismatchError indica uma célula não numérica em coluna numérica.
// É fatal para o dataset, como MissingColumnsError: nenhum relatório
// parcial é gerado a partir de agregados corrompidos.
type TypeMismatchError struct {
	Row    int    // índice da linha (0 = primeira linha de dados)
	Column string // coluna ofensora
	Value  string // valor bruto da célula
	Reason string // motivo da rejeição
}

// Error implementa a interface error
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("valor inválido na linha %d, coluna %s: %q (%s)",
		e.Row, e.Column, e.Value, e.Reason)
}
