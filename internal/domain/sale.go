package domain

// Nomes das colunas obrigatórias da planilha de vendas. Os cabeçalhos
// são comparados de forma exata, sem normalização de caixa ou espaços.
const (
	ColumnProduct = "Producto"
	ColumnUnits   = "Unidades"
	ColumnPrice   = "Precio"
	ColumnCost    = "Costo"
	ColumnMonth   = "Mes"
)

// RequiredColumns lista as colunas que toda planilha de vendas precisa ter
func RequiredColumns() []string {
	return []string{ColumnProduct, ColumnUnits, ColumnPrice, ColumnCost, ColumnMonth}
}

// Origem do dataset processado
const (
	SourceUpload = "upload"
	SourceDemo   = "demo"
)

// RawRow é uma linha bruta da planilha: nome da coluna -> valor da célula
type RawRow map[string]string

// SalesRecord representa uma linha de vendas já validada e tipada
type SalesRecord struct {
	Product   string  `json:"product"`
	Units     int     `json:"units"`
	UnitPrice float64 `json:"unit_price"`
	UnitCost  float64 `json:"unit_cost"`
	Month     int     `json:"month"`
}

// ValidatedDataset é o conjunto de registros aprovado pela validação.
// Todo o restante do pipeline opera apenas sobre esta forma tipada.
type ValidatedDataset struct {
	Records []SalesRecord `json:"records"`
	Source  string        `json:"source"`
}

// DemoDataset retorna o dataset de demonstração usado quando nenhum
// arquivo é enviado: 8 linhas, 4 produtos, 2 meses distintos.
// Retorna sempre uma cópia nova para evitar estado compartilhado.
func DemoDataset() []SalesRecord {
	return []SalesRecord{
		{Product: "Camisa", Units: 50, UnitPrice: 2500, UnitCost: 1200, Month: 1},
		{Product: "Pantalón", Units: 30, UnitPrice: 4500, UnitCost: 2500, Month: 1},
		{Product: "Zapatos", Units: 10, UnitPrice: 8000, UnitCost: 4000, Month: 1},
		{Product: "Gorra", Units: 80, UnitPrice: 1500, UnitCost: 600, Month: 1},
		{Product: "Camisa", Units: 60, UnitPrice: 2500, UnitCost: 1200, Month: 2},
		{Product: "Pantalón", Units: 40, UnitPrice: 4500, UnitCost: 2500, Month: 2},
		{Product: "Zapatos", Units: 15, UnitPrice: 8000, UnitCost: 4000, Month: 2},
		{Product: "Gorra", Units: 90, UnitPrice: 1500, UnitCost: 600, Month: 2},
	}
}
