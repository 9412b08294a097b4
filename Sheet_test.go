package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gridcalc/contracts"
)

func _newSheet(t *testing.T, rows int, cols int) *Sheet {
	sheet, err := NewSheet(rows, cols)
	assert.NoError(t, err)
	return sheet
}

func _cell(row int, col int) contracts.Cell {
	return contracts.Cell{Row: row, Col: col}
}

func TestNewSheet(t *testing.T) {
	t.Run("valid_dimensions", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		rows, cols := sheet.Dims()
		assert.Equal(t, 10, rows)
		assert.Equal(t, 10, cols)

		sheet = _newSheet(t, 999, 1)
		rows, cols = sheet.Dims()
		assert.Equal(t, 999, rows)
		assert.Equal(t, 1, cols)

		sheet = _newSheet(t, 1, 18278)
		rows, cols = sheet.Dims()
		assert.Equal(t, 1, rows)
		assert.Equal(t, 18278, cols)
	})

	t.Run("invalid_dimensions", func(t *testing.T) {
		_, err := NewSheet(0, 10)
		assert.ErrorIs(t, err, contracts.InvalidDimensionsError)

		_, err = NewSheet(1000, 10)
		assert.ErrorIs(t, err, contracts.InvalidDimensionsError)

		_, err = NewSheet(10, 0)
		assert.ErrorIs(t, err, contracts.InvalidDimensionsError)

		_, err = NewSheet(10, 18279)
		assert.ErrorIs(t, err, contracts.InvalidDimensionsError)
	})
}

func TestSheet_SetCellValue(t *testing.T) {
	t.Run("constant_always_succeeds", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)

		changed, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)
		assert.Equal(t, []contracts.Cell{_cell(0, 0)}, changed)

		value, cellErr := sheet.GetCellValue(_cell(0, 0))
		assert.Equal(t, int32(10), value)
		assert.Equal(t, contracts.NoError, cellErr)
		assert.Equal(t, "10", sheet.GetCellExpression(_cell(0, 0)))

		_, err = sheet.SetCellValue(_cell(9, 9), "-5")
		assert.NoError(t, err)
		value, cellErr = sheet.GetCellValue(_cell(9, 9))
		assert.Equal(t, int32(-5), value)
		assert.Equal(t, contracts.NoError, cellErr)
	})

	t.Run("formula_references_other_cell", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)

		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)

		changed, err := sheet.SetCellValue(_cell(0, 1), "A1*2")
		assert.NoError(t, err)
		assert.Equal(t, []contracts.Cell{_cell(0, 1)}, changed)

		value, cellErr := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(20), value)
		assert.Equal(t, contracts.NoError, cellErr)
	})

	t.Run("self_reference_rejected_unchanged", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)

		before := sheet.CreateSnapshot()

		_, err = sheet.SetCellValue(_cell(0, 0), "A1")
		assert.ErrorIs(t, err, contracts.CircularDependencyError)
		assert.ErrorIs(t, err, contracts.FormulaError)

		_, err = sheet.SetCellValue(_cell(0, 0), "A1+1")
		assert.ErrorIs(t, err, contracts.CircularDependencyError)

		_, err = sheet.SetCellValue(_cell(0, 0), "SUM(A1:B2)")
		assert.ErrorIs(t, err, contracts.CircularDependencyError)

		_, err = sheet.SetCellValue(_cell(0, 0), "SLEEP(A1)")
		assert.ErrorIs(t, err, contracts.CircularDependencyError)

		assert.Equal(t, before, sheet.CreateSnapshot())
		value, cellErr := sheet.GetCellValue(_cell(0, 0))
		assert.Equal(t, int32(10), value)
		assert.Equal(t, contracts.NoError, cellErr)
		assert.Equal(t, "10", sheet.GetCellExpression(_cell(0, 0)))
	})

	t.Run("cycle_rejected_with_rollback", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1*2")
		assert.NoError(t, err)

		before := sheet.CreateSnapshot()

		_, err = sheet.SetCellValue(_cell(0, 0), "B1")
		assert.ErrorIs(t, err, contracts.CircularDependencyError)
		assert.Equal(t, before, sheet.CreateSnapshot())

		value, _ := sheet.GetCellValue(_cell(0, 0))
		assert.Equal(t, int32(10), value)

		// the rolled-back graph keeps propagating correctly
		_, err = sheet.SetCellValue(_cell(0, 0), "7")
		assert.NoError(t, err)
		value, _ = sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(14), value)
	})

	t.Run("long_cycle_rejected", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "1")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 2), "B1")
		assert.NoError(t, err)

		before := sheet.CreateSnapshot()
		_, err = sheet.SetCellValue(_cell(0, 0), "C1")
		assert.ErrorIs(t, err, contracts.CircularDependencyError)
		assert.Equal(t, before, sheet.CreateSnapshot())
	})

	t.Run("range_cycle_rejected", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(4, 0), "SUM(A1:A3)")
		assert.NoError(t, err)

		before := sheet.CreateSnapshot()
		// A1 feeding the range that feeds A5 closes a loop
		_, err = sheet.SetCellValue(_cell(0, 0), "A5")
		assert.ErrorIs(t, err, contracts.CircularDependencyError)
		assert.Equal(t, before, sheet.CreateSnapshot())
	})

	t.Run("parse_failure_never_mutates", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)

		before := sheet.CreateSnapshot()

		_, err = sheet.SetCellValue(_cell(0, 0), "not a formula")
		assert.ErrorIs(t, err, contracts.CouldNotParseError)
		assert.ErrorIs(t, err, contracts.FormulaError)

		_, err = sheet.SetCellValue(_cell(0, 0), "")
		assert.ErrorIs(t, err, contracts.CouldNotParseError)

		assert.Equal(t, before, sheet.CreateSnapshot())
	})

	t.Run("out_of_range_target_rejected", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)

		_, err := sheet.SetCellValue(_cell(10, 0), "1")
		assert.ErrorIs(t, err, contracts.CellOutOfRangeError)

		_, err = sheet.SetCellValue(_cell(0, -1), "1")
		assert.ErrorIs(t, err, contracts.CellOutOfRangeError)
	})
}

func TestSheet_Recompute(t *testing.T) {
	t.Run("update_propagates_to_dependents", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1*2")
		assert.NoError(t, err)

		changed, err := sheet.SetCellValue(_cell(0, 0), "100")
		assert.NoError(t, err)
		assert.Equal(t, []contracts.Cell{_cell(0, 0), _cell(0, 1)}, changed)

		value, _ := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(200), value)
	})

	t.Run("chain_recomputes_in_order", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "1")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 2), "B1")
		assert.NoError(t, err)

		changed, err := sheet.SetCellValue(_cell(0, 0), "3")
		assert.NoError(t, err)
		assert.Equal(t, []contracts.Cell{_cell(0, 0), _cell(0, 1), _cell(0, 2)}, changed)

		for col := 0; col < 3; col++ {
			value, cellErr := sheet.GetCellValue(_cell(0, col))
			assert.Equal(t, int32(3), value)
			assert.Equal(t, contracts.NoError, cellErr)
		}
	})

	t.Run("diamond_recomputes_each_cell_once", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "1")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 2), "A1")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 3), "B1+C1")
		assert.NoError(t, err)

		changed, err := sheet.SetCellValue(_cell(0, 0), "5")
		assert.NoError(t, err)

		assert.Len(t, changed, 4)
		assert.Equal(t, _cell(0, 0), changed[0])
		assert.Equal(t, _cell(0, 3), changed[3])
		assert.ElementsMatch(t, []contracts.Cell{_cell(0, 1), _cell(0, 2)}, changed[1:3])

		value, _ := sheet.GetCellValue(_cell(0, 3))
		assert.Equal(t, int32(10), value)
	})

	t.Run("duplicate_reference_recomputes_once", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1+A1")
		assert.NoError(t, err)

		value, _ := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(20), value)

		changed, err := sheet.SetCellValue(_cell(0, 0), "1")
		assert.NoError(t, err)
		assert.Equal(t, []contracts.Cell{_cell(0, 0), _cell(0, 1)}, changed)

		value, _ = sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(2), value)
	})

	t.Run("unrelated_cells_not_recomputed", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "1")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(5, 5), "42")
		assert.NoError(t, err)

		changed, err := sheet.SetCellValue(_cell(0, 0), "2")
		assert.NoError(t, err)
		assert.Equal(t, []contracts.Cell{_cell(0, 0)}, changed)
	})

	t.Run("aggregate_tracks_range_updates", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(1, 0), "20")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "SUM(A1:A3)")
		assert.NoError(t, err)

		value, _ := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(30), value)

		changed, err := sheet.SetCellValue(_cell(2, 0), "5")
		assert.NoError(t, err)
		assert.Equal(t, []contracts.Cell{_cell(2, 0), _cell(0, 1)}, changed)

		value, _ = sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(35), value)
	})
}

func TestSheet_RuntimeErrors(t *testing.T) {
	t.Run("divide_by_zero", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)

		changed, err := sheet.SetCellValue(_cell(0, 0), "5/0")
		assert.NoError(t, err)
		assert.Equal(t, []contracts.Cell{_cell(0, 0)}, changed)

		value, cellErr := sheet.GetCellValue(_cell(0, 0))
		assert.Equal(t, int32(0), value)
		assert.Equal(t, contracts.DivideByZero, cellErr)
	})

	t.Run("errors_propagate_with_original_variant", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "5/0")
		assert.NoError(t, err)

		_, err = sheet.SetCellValue(_cell(0, 1), "SUM(A1:A1)")
		assert.NoError(t, err)
		value, cellErr := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(0), value)
		assert.Equal(t, contracts.DivideByZero, cellErr)

		_, err = sheet.SetCellValue(_cell(0, 2), "B1+1")
		assert.NoError(t, err)
		_, cellErr = sheet.GetCellValue(_cell(0, 2))
		assert.Equal(t, contracts.DivideByZero, cellErr)
	})

	t.Run("multiply_overflow", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "2147483647")
		assert.NoError(t, err)

		_, err = sheet.SetCellValue(_cell(0, 1), "A1*2")
		assert.NoError(t, err)
		value, cellErr := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(0), value)
		assert.Equal(t, contracts.Overflow, cellErr)
	})

	t.Run("addition_wraps", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "2147483647")
		assert.NoError(t, err)

		_, err = sheet.SetCellValue(_cell(0, 1), "A1+1")
		assert.NoError(t, err)
		value, cellErr := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, contracts.NoError, cellErr)
		assert.Equal(t, int32(math.MinInt32), value)

		// dependents see the wrapped value, not an error
		_, err = sheet.SetCellValue(_cell(0, 2), "B1+0")
		assert.NoError(t, err)
		value, cellErr = sheet.GetCellValue(_cell(0, 2))
		assert.Equal(t, contracts.NoError, cellErr)
		assert.Equal(t, int32(math.MinInt32), value)
	})

	t.Run("division_truncates_toward_zero", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "7/2")
		assert.NoError(t, err)
		value, _ := sheet.GetCellValue(_cell(0, 0))
		assert.Equal(t, int32(3), value)

		_, err = sheet.SetCellValue(_cell(0, 1), "0-7")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 2), "B1/2")
		assert.NoError(t, err)
		value, _ = sheet.GetCellValue(_cell(0, 2))
		assert.Equal(t, int32(-3), value)
	})

	t.Run("recovery_clears_downstream_errors", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "5/0")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1")
		assert.NoError(t, err)

		_, cellErr := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, contracts.DivideByZero, cellErr)

		_, err = sheet.SetCellValue(_cell(0, 0), "4")
		assert.NoError(t, err)
		value, cellErr := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(4), value)
		assert.Equal(t, contracts.NoError, cellErr)
	})
}

func TestSheet_Aggregates(t *testing.T) {
	sheet := _newSheet(t, 10, 10)
	_, err := sheet.SetCellValue(_cell(0, 0), "10")
	assert.NoError(t, err)
	_, err = sheet.SetCellValue(_cell(1, 0), "20")
	assert.NoError(t, err)
	_, err = sheet.SetCellValue(_cell(2, 0), "5")
	assert.NoError(t, err)

	cases := []struct {
		expression string
		expected   int32
	}{
		{"MIN(A1:A3)", 5},
		{"MAX(A1:A3)", 20},
		{"SUM(A1:A3)", 35},
		{"AVG(A1:A3)", 11},
		{"STDEV(A1:A3)", 6},
	}
	for i, c := range cases {
		_, err = sheet.SetCellValue(_cell(i, 1), c.expression)
		assert.NoError(t, err)
		value, cellErr := sheet.GetCellValue(_cell(i, 1))
		assert.Equal(t, contracts.NoError, cellErr, c.expression)
		assert.Equal(t, c.expected, value, c.expression)
	}

	t.Run("unset_cells_count_as_zero", func(t *testing.T) {
		grid := _newSheet(t, 10, 10)
		_, err := grid.SetCellValue(_cell(0, 0), "AVG(A1:A4)")
		assert.NoError(t, err)

		value, cellErr := grid.GetCellValue(_cell(0, 0))
		assert.Equal(t, contracts.NoError, cellErr)
		assert.Equal(t, int32(0), value)
	})
}

func TestSheet_GetCellValue(t *testing.T) {
	sheet := _newSheet(t, 10, 10)

	value, cellErr := sheet.GetCellValue(_cell(3, 3))
	assert.Equal(t, int32(0), value)
	assert.Equal(t, contracts.NoError, cellErr)

	value, cellErr = sheet.GetCellValue(_cell(10, 10))
	assert.Equal(t, int32(0), value)
	assert.Equal(t, contracts.DependencyError, cellErr)

	assert.Equal(t, "", sheet.GetCellExpression(_cell(3, 3)))
	assert.Equal(t, "", sheet.GetCellExpression(_cell(10, 10)))
}

func TestSheet_GetCellDependencies(t *testing.T) {
	sheet := _newSheet(t, 10, 10)
	_, err := sheet.SetCellValue(_cell(0, 0), "10")
	assert.NoError(t, err)
	_, err = sheet.SetCellValue(_cell(0, 1), "A1+A1")
	assert.NoError(t, err)
	_, err = sheet.SetCellValue(_cell(0, 2), "SUM(A1:A2)")
	assert.NoError(t, err)

	t.Run("references_deduplicated_and_sorted", func(t *testing.T) {
		references, _ := sheet.GetCellDependencies(_cell(0, 1))
		assert.Equal(t, []contracts.Cell{_cell(0, 0)}, references)

		references, _ = sheet.GetCellDependencies(_cell(0, 2))
		assert.Equal(t, []contracts.Cell{_cell(0, 0), _cell(1, 0)}, references)
	})

	t.Run("dependents_sorted_row_major", func(t *testing.T) {
		_, dependents := sheet.GetCellDependencies(_cell(0, 0))
		assert.Equal(t, []contracts.Cell{_cell(0, 1), _cell(0, 2)}, dependents)
	})

	t.Run("constant_has_no_references", func(t *testing.T) {
		references, dependents := sheet.GetCellDependencies(_cell(0, 0))
		assert.Empty(t, references)
		assert.NotEmpty(t, dependents)
	})

	t.Run("out_of_range_is_empty", func(t *testing.T) {
		references, dependents := sheet.GetCellDependencies(_cell(10, 10))
		assert.Nil(t, references)
		assert.Nil(t, dependents)
	})
}

func TestSheet_Snapshot(t *testing.T) {
	t.Run("create_apply_is_idempotent", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1*2")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 2), "5/0")
		assert.NoError(t, err)

		snapshot := sheet.CreateSnapshot()
		assert.NoError(t, sheet.ApplySnapshot(snapshot))
		assert.Equal(t, snapshot, sheet.CreateSnapshot())

		// the restored graph keeps propagating
		_, err = sheet.SetCellValue(_cell(0, 0), "2")
		assert.NoError(t, err)
		value, _ := sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(4), value)
	})

	t.Run("restores_previous_state", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		_, err := sheet.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(0, 1), "A1*2")
		assert.NoError(t, err)

		snapshot := sheet.CreateSnapshot()

		_, err = sheet.SetCellValue(_cell(0, 0), "99")
		assert.NoError(t, err)
		_, err = sheet.SetCellValue(_cell(5, 5), "123")
		assert.NoError(t, err)

		assert.NoError(t, sheet.ApplySnapshot(snapshot))

		value, _ := sheet.GetCellValue(_cell(0, 0))
		assert.Equal(t, int32(10), value)
		value, _ = sheet.GetCellValue(_cell(0, 1))
		assert.Equal(t, int32(20), value)
		value, _ = sheet.GetCellValue(_cell(5, 5))
		assert.Equal(t, int32(0), value)
		assert.Equal(t, "", sheet.GetCellExpression(_cell(5, 5)))
	})

	t.Run("applies_across_sheets_and_resizes", func(t *testing.T) {
		source := _newSheet(t, 4, 3)
		_, err := source.SetCellValue(_cell(0, 0), "7")
		assert.NoError(t, err)
		_, err = source.SetCellValue(_cell(1, 1), "A1+1")
		assert.NoError(t, err)

		target := _newSheet(t, 10, 10)
		assert.NoError(t, target.ApplySnapshot(source.CreateSnapshot()))

		rows, cols := target.Dims()
		assert.Equal(t, 4, rows)
		assert.Equal(t, 3, cols)

		value, _ := target.GetCellValue(_cell(1, 1))
		assert.Equal(t, int32(8), value)

		_, err = target.SetCellValue(_cell(0, 0), "10")
		assert.NoError(t, err)
		value, _ = target.GetCellValue(_cell(1, 1))
		assert.Equal(t, int32(11), value)
	})

	t.Run("rejects_inconsistent_snapshot", func(t *testing.T) {
		sheet := _newSheet(t, 3, 3)
		_, err := sheet.SetCellValue(_cell(0, 0), "1")
		assert.NoError(t, err)
		before := sheet.CreateSnapshot()

		assert.ErrorIs(t, sheet.ApplySnapshot(nil), contracts.InvalidSnapshotError)

		broken := &contracts.SheetSnapshot{Rows: 2, Cols: 2, Cells: make([]contracts.SnapshotCell, 3)}
		assert.ErrorIs(t, sheet.ApplySnapshot(broken), contracts.InvalidSnapshotError)

		badExpression := &contracts.SheetSnapshot{Rows: 1, Cols: 1, Cells: []contracts.SnapshotCell{{Expression: "garbage("}}}
		assert.ErrorIs(t, sheet.ApplySnapshot(badExpression), contracts.InvalidSnapshotError)

		assert.Equal(t, before, sheet.CreateSnapshot())
	})
}

func TestSheet_ExportValues(t *testing.T) {
	sheet := _newSheet(t, 2, 2)
	_, err := sheet.SetCellValue(_cell(0, 0), "1")
	assert.NoError(t, err)
	_, err = sheet.SetCellValue(_cell(0, 1), "A1+1")
	assert.NoError(t, err)
	_, err = sheet.SetCellValue(_cell(1, 0), "5/0")
	assert.NoError(t, err)

	var buffer bytes.Buffer
	assert.NoError(t, sheet.ExportValues(&buffer))
	assert.Equal(t, "1,2\n0,0\n", buffer.String())
}

func TestSheet_ImportValues(t *testing.T) {
	t.Run("resizes_and_applies_fields", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		err := sheet.ImportValues(strings.NewReader("1,2,3\n4,5,6\n"))
		assert.NoError(t, err)

		rows, cols := sheet.Dims()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 3, cols)

		value, _ := sheet.GetCellValue(_cell(1, 2))
		assert.Equal(t, int32(6), value)
		assert.Equal(t, "6", sheet.GetCellExpression(_cell(1, 2)))
	})

	t.Run("roundtrips_export", func(t *testing.T) {
		source := _newSheet(t, 2, 2)
		_, err := source.SetCellValue(_cell(0, 0), "3")
		assert.NoError(t, err)
		_, err = source.SetCellValue(_cell(1, 1), "A1*3")
		assert.NoError(t, err)

		var buffer bytes.Buffer
		assert.NoError(t, source.ExportValues(&buffer))

		target := _newSheet(t, 10, 10)
		assert.NoError(t, target.ImportValues(&buffer))

		rows, cols := target.Dims()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 2, cols)
		value, _ := target.GetCellValue(_cell(1, 1))
		assert.Equal(t, int32(9), value)
	})

	t.Run("rejects_unparseable_field", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		err := sheet.ImportValues(strings.NewReader("1,hello\n"))
		assert.ErrorIs(t, err, contracts.CouldNotParseError)
	})

	t.Run("rejects_ragged_rows", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		err := sheet.ImportValues(strings.NewReader("1,2\n3\n"))
		assert.Error(t, err)
	})

	t.Run("rejects_empty_input", func(t *testing.T) {
		sheet := _newSheet(t, 10, 10)
		err := sheet.ImportValues(strings.NewReader(""))
		assert.ErrorIs(t, err, contracts.InvalidDimensionsError)
	})
}
