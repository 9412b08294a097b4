package main

import (
	"math"
	"time"

	"gridcalc/contracts"
)

// ThreadSleeper is the engine's default Sleeper and blocks with time.Sleep.
type ThreadSleeper struct{}

func (ThreadSleeper) Sleep(seconds int32) {
	time.Sleep(time.Duration(seconds) * time.Second)
}

// operandValue resolves an operand, propagating the referenced cell's error
// unchanged.
func (s *Sheet) operandValue(operand Operand) (int32, contracts.CellError) {
	if !operand.IsRef {
		return operand.Literal, contracts.NoError
	}
	record := s.record(operand.Cell)
	if record.err != contracts.NoError {
		return 0, record.err
	}
	return record.value, contracts.NoError
}

// rangeValues collects computed values over an inclusive rectangle in
// row-major order, stopping at the first errored cell.
func (s *Sheet) rangeValues(topLeft contracts.Cell, bottomRight contracts.Cell) ([]int32, contracts.CellError) {
	values := make([]int32, 0, (bottomRight.Row-topLeft.Row+1)*(bottomRight.Col-topLeft.Col+1))
	for row := topLeft.Row; row <= bottomRight.Row; row++ {
		for col := topLeft.Col; col <= bottomRight.Col; col++ {
			record := s.record(contracts.Cell{Row: row, Col: col})
			if record.err != contracts.NoError {
				return nil, record.err
			}
			values = append(values, record.value)
		}
	}
	return values, contracts.NoError
}

func (f Constant) evaluate(*Sheet) (int32, contracts.CellError) {
	return f.Value, contracts.NoError
}

func (f BinaryOp) evaluate(sheet *Sheet) (int32, contracts.CellError) {
	first, errKind := sheet.operandValue(f.First)
	if errKind != contracts.NoError {
		return 0, errKind
	}
	second, errKind := sheet.operandValue(f.Second)
	if errKind != contracts.NoError {
		return 0, errKind
	}
	switch f.Op {
	case OpPlus:
		// Addition and subtraction wrap in int32; only multiplication and
		// the MIN_INT/-1 quotient report Overflow.
		return first + second, contracts.NoError
	case OpMinus:
		return first - second, contracts.NoError
	case OpMultiply:
		return checkedInt32(int64(first) * int64(second))
	default:
		if second == 0 {
			return 0, contracts.DivideByZero
		}
		return checkedInt32(int64(first) / int64(second))
	}
}

func (f RangeAggregate) evaluate(sheet *Sheet) (int32, contracts.CellError) {
	values, errKind := sheet.rangeValues(f.TopLeft, f.BottomRight)
	if errKind != contracts.NoError {
		return 0, errKind
	}
	switch f.Kind {
	case AggMin:
		result := int32(math.MaxInt32)
		for _, value := range values {
			if value < result {
				result = value
			}
		}
		return result, contracts.NoError
	case AggMax:
		result := int32(math.MinInt32)
		for _, value := range values {
			if value > result {
				result = value
			}
		}
		return result, contracts.NoError
	case AggSum:
		var sum int32
		for _, value := range values {
			sum += value
		}
		return sum, contracts.NoError
	case AggAvg:
		if len(values) == 0 {
			return 0, contracts.DivideByZero
		}
		var sum int64
		for _, value := range values {
			sum += int64(value)
		}
		// The mean of int32 values always fits int32; integer division
		// truncates toward zero.
		return int32(sum / int64(len(values))), contracts.NoError
	default:
		return stdev(values)
	}
}

// stdev is the population standard deviation around the truncated integer
// mean, rounded to the nearest integer.
func stdev(values []int32) (int32, contracts.CellError) {
	if len(values) == 0 {
		return 0, contracts.DivideByZero
	}
	var sum int64
	for _, value := range values {
		sum += int64(value)
	}
	mean := sum / int64(len(values))
	var varianceSum float64
	for _, value := range values {
		diff := float64(int64(value) - mean)
		varianceSum += diff * diff
	}
	rounded := math.Round(math.Sqrt(varianceSum / float64(len(values))))
	if rounded > math.MaxInt32 {
		return 0, contracts.Overflow
	}
	return int32(rounded), contracts.NoError
}

func (f Sleep) evaluate(sheet *Sheet) (int32, contracts.CellError) {
	seconds, errKind := sheet.operandValue(f.Arg)
	if errKind != contracts.NoError {
		return 0, errKind
	}
	if seconds > 0 {
		sheet.sleeper.Sleep(seconds)
	}
	return seconds, contracts.NoError
}

func checkedInt32(result int64) (int32, contracts.CellError) {
	if result > math.MaxInt32 || result < math.MinInt32 {
		return 0, contracts.Overflow
	}
	return int32(result), contracts.NoError
}
