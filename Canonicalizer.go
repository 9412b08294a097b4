package main

import (
	"strconv"
	"strings"
	"unicode"

	"gridcalc/contracts"
)

type Canonicalizer struct {
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{}
}

// CanonicalizeCellId maps every spelling of a cell id onto one bucket key,
// so a1, A1 and " A1 " address the same record.
func (c *Canonicalizer) CanonicalizeCellId(cellId string) string {
	return strings.ToUpper(strings.TrimSpace(cellId))
}

// NormalizeExpression produces the stored form of an expression: a leading
// '=' is stripped, whitespace is removed and references are uppercased.
// The formula grammar has no token containing a space, so dropping all
// whitespace never changes meaning.
func (c *Canonicalizer) NormalizeExpression(expression string) string {
	expression = strings.TrimSpace(expression)
	expression = strings.TrimPrefix(expression, "=")

	var normalized strings.Builder
	normalized.Grow(len(expression))
	for _, r := range expression {
		if unicode.IsSpace(r) {
			continue
		}
		normalized.WriteRune(unicode.ToUpper(r))
	}

	return normalized.String()
}

// FormatCellId renders zero-based coordinates as a reference, {0,0} -> A1.
func (c *Canonicalizer) FormatCellId(cell contracts.Cell) string {
	return columnHeader(cell.Col) + strconv.Itoa(cell.Row+1)
}

// columnHeader converts a zero-based column index to its letter run:
// 0 -> A, 25 -> Z, 26 -> AA.
func columnHeader(col int) string {
	number := col + 1
	letters := make([]byte, 0, 3)
	for number > 0 {
		number--
		letters = append(letters, byte('A'+number%26))
		number /= 26
	}

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters)
}
