package contracts

type Canonicalizer interface {
	CanonicalizeCellId(cellId string) string
	NormalizeExpression(expression string) string
	FormatCellId(cell Cell) string
}
