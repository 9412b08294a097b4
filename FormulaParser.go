package main

import (
	"strconv"
	"strings"

	"gridcalc/contracts"
)

// ParseCellReference reads an A1-style reference: one or more uppercase
// letters (base-26 column), then one or more digits (1-based row), nothing
// after. Fails when the reference falls outside a rows x cols grid.
func ParseCellReference(ref string, rows int, cols int) (contracts.Cell, bool) {
	if len(ref) == 0 || ref[0] < 'A' || ref[0] > 'Z' {
		return contracts.Cell{}, false
	}
	col := 0
	i := 0
	for ; i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z'; i++ {
		col = col*26 + int(ref[i]-'A') + 1
	}
	digits := ref[i:]
	if len(digits) == 0 {
		return contracts.Cell{}, false
	}
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return contracts.Cell{}, false
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > rows || col < 1 || col > cols {
		return contracts.Cell{}, false
	}
	return contracts.Cell{Row: row - 1, Col: col - 1}, true
}

// parseExpression turns expression text into a Formula. The grammar is
// fixed: MIN MAX AVG SUM STDEV over a START:END rectangle, SLEEP over a
// literal or reference, one binary + - * / between two operands, signed
// integer constants, and bare cell references (read as reference plus zero).
func parseExpression(expression string, rows int, cols int) (Formula, bool) {
	if len(expression) == 0 {
		return nil, false
	}
	if len(expression) >= 4 {
		switch {
		case strings.HasPrefix(expression, "MIN("):
			return parseRangeAggregate(expression, 4, AggMin, rows, cols)
		case strings.HasPrefix(expression, "MAX("):
			return parseRangeAggregate(expression, 4, AggMax, rows, cols)
		case strings.HasPrefix(expression, "AVG("):
			return parseRangeAggregate(expression, 4, AggAvg, rows, cols)
		case strings.HasPrefix(expression, "SUM("):
			return parseRangeAggregate(expression, 4, AggSum, rows, cols)
		case strings.HasPrefix(expression, "STDEV("):
			return parseRangeAggregate(expression, 6, AggStdev, rows, cols)
		case strings.HasPrefix(expression, "SLEEP("):
			return parseSleep(expression, rows, cols)
		}
	}
	// The first operator byte splits the expression, except at position 0
	// where a minus sign introduces a negative constant.
	if opIndex := strings.IndexAny(expression[1:], "+-*/"); opIndex >= 0 {
		return parseBinaryOp(expression, opIndex+1, rows, cols)
	}
	if isDigit(expression[0]) || expression[0] == '-' {
		value, err := strconv.ParseInt(expression, 10, 32)
		if err != nil {
			return nil, false
		}
		return Constant{Value: int32(value)}, true
	}
	cell, ok := ParseCellReference(expression, rows, cols)
	if !ok {
		return nil, false
	}
	return BinaryOp{Op: OpPlus, First: cellOperand(cell), Second: literalOperand(0)}, true
}

func parseBinaryOp(expression string, opIndex int, rows int, cols int) (Formula, bool) {
	var op BinaryOpKind
	switch expression[opIndex] {
	case '+':
		op = OpPlus
	case '-':
		op = OpMinus
	case '*':
		op = OpMultiply
	case '/':
		op = OpDivide
	}
	first, ok := parseOperand(expression[:opIndex], rows, cols)
	if !ok {
		return nil, false
	}
	second, ok := parseOperand(expression[opIndex+1:], rows, cols)
	if !ok {
		return nil, false
	}
	return BinaryOp{Op: op, First: first, Second: second}, true
}

// parseOperand reads a non-negative integer literal (leading digit) or a
// cell reference.
func parseOperand(text string, rows int, cols int) (Operand, bool) {
	if len(text) == 0 {
		return Operand{}, false
	}
	if isDigit(text[0]) {
		value, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Operand{}, false
		}
		return literalOperand(int32(value)), true
	}
	cell, ok := ParseCellReference(text, rows, cols)
	if !ok {
		return Operand{}, false
	}
	return cellOperand(cell), true
}

// parseRangeAggregate reads NAME(START:END). The rectangle runs from the
// first byte after the opening parenthesis to the first closing one; text
// beyond the closing parenthesis is ignored. END must not sit above or left
// of START.
func parseRangeAggregate(expression string, start int, kind AggregateKind, rows int, cols int) (Formula, bool) {
	end := strings.IndexByte(expression, ')')
	if end < start {
		return nil, false
	}
	rangeText := expression[start:end]
	sep := strings.IndexByte(rangeText, ':')
	if sep < 0 {
		return nil, false
	}
	topLeft, ok := ParseCellReference(rangeText[:sep], rows, cols)
	if !ok {
		return nil, false
	}
	bottomRight, ok := ParseCellReference(rangeText[sep+1:], rows, cols)
	if !ok {
		return nil, false
	}
	if topLeft.Row > bottomRight.Row || topLeft.Col > bottomRight.Col {
		return nil, false
	}
	return RangeAggregate{Kind: kind, TopLeft: topLeft, BottomRight: bottomRight}, true
}

func parseSleep(expression string, rows int, cols int) (Formula, bool) {
	end := strings.IndexByte(expression, ')')
	if end < 6 {
		return nil, false
	}
	argText := expression[6:end]
	if len(argText) == 0 {
		return nil, false
	}
	if isDigit(argText[0]) || argText[0] == '-' {
		seconds, err := strconv.ParseInt(argText, 10, 32)
		if err != nil {
			return nil, false
		}
		return Sleep{Arg: literalOperand(int32(seconds))}, true
	}
	cell, ok := ParseCellReference(argText, rows, cols)
	if !ok {
		return nil, false
	}
	return Sleep{Arg: cellOperand(cell)}, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
