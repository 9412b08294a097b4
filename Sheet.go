package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gridcalc/contracts"
)

const (
	MinGridRows = 1
	MaxGridRows = 999
	MinGridCols = 1
	MaxGridCols = 18278 // column ZZZ
)

// cellRecord is one arena slot. dependents holds the cells whose formulas
// reference this one. visiting and pending are scratch state for the cycle
// probe and the counter propagation; both rest at zero between mutations.
type cellRecord struct {
	value      int32
	err        contracts.CellError
	formula    Formula
	expression string
	dependents map[contracts.Cell]struct{}
	visiting   bool
	pending    int32
}

// Sheet is the in-memory engine: a rows x cols arena of cell records,
// row-major, carrying values, formulas and dependency edges. Not safe for
// concurrent use.
type Sheet struct {
	rows    int
	cols    int
	records []cellRecord
	sleeper contracts.Sleeper
}

var _ contracts.Sheet = (*Sheet)(nil)

func NewSheet(rows int, cols int) (*Sheet, error) {
	return NewSheetWithSleeper(rows, cols, ThreadSleeper{})
}

func NewSheetWithSleeper(rows int, cols int, sleeper contracts.Sleeper) (*Sheet, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, err
	}
	sheet := &Sheet{sleeper: sleeper}
	sheet.reset(rows, cols)
	return sheet, nil
}

func ValidateDims(rows int, cols int) error {
	if rows < MinGridRows || rows > MaxGridRows || cols < MinGridCols || cols > MaxGridCols {
		return fmt.Errorf("%w: %dx%d", contracts.InvalidDimensionsError, rows, cols)
	}
	return nil
}

func (s *Sheet) reset(rows int, cols int) {
	s.rows = rows
	s.cols = cols
	s.records = make([]cellRecord, rows*cols)
	for i := range s.records {
		s.records[i].formula = Constant{}
	}
}

func (s *Sheet) record(cell contracts.Cell) *cellRecord {
	return &s.records[cell.Row*s.cols+cell.Col]
}

func (s *Sheet) inBounds(cell contracts.Cell) bool {
	return cell.Row >= 0 && cell.Row < s.rows && cell.Col >= 0 && cell.Col < s.cols
}

func (s *Sheet) Dims() (int, int) {
	return s.rows, s.cols
}

// SetCellValue installs expression at cell and recomputes the affected
// subgraph. A parse failure or a rejected cycle leaves the grid exactly as
// it was.
func (s *Sheet) SetCellValue(cell contracts.Cell, expression string) ([]contracts.Cell, error) {
	if !s.inBounds(cell) {
		return nil, fmt.Errorf("%w: row %d col %d", contracts.CellOutOfRangeError, cell.Row, cell.Col)
	}
	formula, ok := parseExpression(expression, s.rows, s.cols)
	if !ok {
		return nil, fmt.Errorf("%w: %q", contracts.CouldNotParseError, expression)
	}

	selfReference := false
	formula.eachReference(func(ref contracts.Cell) {
		if ref == cell {
			selfReference = true
		}
	})
	if selfReference {
		return nil, fmt.Errorf("%w: %q references its own cell", contracts.CircularDependencyError, expression)
	}

	record := s.record(cell)
	oldFormula := record.formula

	// Constants cannot introduce edges, so the cycle probe is skipped.
	if constant, isConstant := formula.(Constant); isConstant {
		record.value = constant.Value
		record.err = contracts.NoError
		record.formula = formula
		record.expression = expression
		s.updateGraph(cell, oldFormula)
		return s.propagate(cell), nil
	}

	record.formula = formula
	s.updateGraph(cell, oldFormula)
	if s.hasCycle(cell) {
		record.formula = oldFormula
		s.updateGraph(cell, formula)
		return nil, fmt.Errorf("%w: %q", contracts.CircularDependencyError, expression)
	}

	record.expression = expression
	record.value, record.err = formula.evaluate(s)
	return s.propagate(cell), nil
}

// GetCellValue returns the stored value and error. Out-of-range cells read
// as a dependency error.
func (s *Sheet) GetCellValue(cell contracts.Cell) (int32, contracts.CellError) {
	if !s.inBounds(cell) {
		return 0, contracts.DependencyError
	}
	record := s.record(cell)
	return record.value, record.err
}

func (s *Sheet) GetCellExpression(cell contracts.Cell) string {
	if !s.inBounds(cell) {
		return ""
	}
	return s.record(cell).expression
}

// GetCellDependencies returns the distinct cells cell's formula reads and
// the cells reading cell, both sorted row-major.
func (s *Sheet) GetCellDependencies(cell contracts.Cell) ([]contracts.Cell, []contracts.Cell) {
	if !s.inBounds(cell) {
		return nil, nil
	}
	record := s.record(cell)
	seen := make(map[contracts.Cell]struct{})
	references := make([]contracts.Cell, 0)
	record.formula.eachReference(func(ref contracts.Cell) {
		if _, ok := seen[ref]; !ok {
			seen[ref] = struct{}{}
			references = append(references, ref)
		}
	})
	dependents := make([]contracts.Cell, 0, len(record.dependents))
	for dependent := range record.dependents {
		dependents = append(dependents, dependent)
	}
	sortCells(references)
	sortCells(dependents)
	return references, dependents
}

func (s *Sheet) CreateSnapshot() *contracts.SheetSnapshot {
	snapshot := &contracts.SheetSnapshot{
		Rows:  s.rows,
		Cols:  s.cols,
		Cells: make([]contracts.SnapshotCell, len(s.records)),
	}
	for i := range s.records {
		record := &s.records[i]
		snapCell := contracts.SnapshotCell{
			Expression: record.expression,
			Value:      record.value,
			Error:      record.err,
		}
		if len(record.dependents) > 0 {
			snapCell.Dependents = make([]contracts.Cell, 0, len(record.dependents))
			for dependent := range record.dependents {
				snapCell.Dependents = append(snapCell.Dependents, dependent)
			}
			sortCells(snapCell.Dependents)
		}
		snapshot.Cells[i] = snapCell
	}
	return snapshot
}

// ApplySnapshot replaces the whole grid with the snapshot's state,
// re-parsing stored expressions. A rejected snapshot leaves the sheet
// untouched.
func (s *Sheet) ApplySnapshot(snapshot *contracts.SheetSnapshot) error {
	if snapshot == nil || snapshot.Rows*snapshot.Cols != len(snapshot.Cells) {
		return contracts.InvalidSnapshotError
	}
	if err := ValidateDims(snapshot.Rows, snapshot.Cols); err != nil {
		return err
	}
	records := make([]cellRecord, len(snapshot.Cells))
	for i := range snapshot.Cells {
		snapCell := &snapshot.Cells[i]
		formula := Formula(Constant{})
		if snapCell.Expression != "" {
			parsed, ok := parseExpression(snapCell.Expression, snapshot.Rows, snapshot.Cols)
			if !ok {
				return fmt.Errorf("%w: unparseable expression %q", contracts.InvalidSnapshotError, snapCell.Expression)
			}
			formula = parsed
		}
		records[i] = cellRecord{
			value:      snapCell.Value,
			err:        snapCell.Error,
			formula:    formula,
			expression: snapCell.Expression,
		}
		if len(snapCell.Dependents) == 0 {
			continue
		}
		dependents := make(map[contracts.Cell]struct{}, len(snapCell.Dependents))
		for _, dependent := range snapCell.Dependents {
			if dependent.Row < 0 || dependent.Row >= snapshot.Rows || dependent.Col < 0 || dependent.Col >= snapshot.Cols {
				return fmt.Errorf("%w: dependent out of range", contracts.InvalidSnapshotError)
			}
			dependents[dependent] = struct{}{}
		}
		records[i].dependents = dependents
	}
	s.rows = snapshot.Rows
	s.cols = snapshot.Cols
	s.records = records
	return nil
}

// ExportValues writes computed values row-major, one CSV record per grid
// row. Errored cells hold 0 and export as such.
func (s *Sheet) ExportValues(w io.Writer) error {
	writer := csv.NewWriter(w)
	fields := make([]string, s.cols)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			fields[col] = strconv.FormatInt(int64(s.records[row*s.cols+col].value), 10)
		}
		if err := writer.Write(fields); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ImportValues resizes the grid to the CSV's dimensions and applies every
// field as an expression. A field that fails to apply aborts the import
// mid-grid; callers wanting atomicity snapshot first.
func (s *Sheet) ImportValues(r io.Reader) error {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: empty input", contracts.InvalidDimensionsError)
	}
	rowCount := len(rows)
	colCount := len(rows[0])
	if err := ValidateDims(rowCount, colCount); err != nil {
		return err
	}
	s.reset(rowCount, colCount)
	for rowIndex, fields := range rows {
		for colIndex, field := range fields {
			cell := contracts.Cell{Row: rowIndex, Col: colIndex}
			if _, err := s.SetCellValue(cell, strings.TrimSpace(field)); err != nil {
				return fmt.Errorf("row %d col %d: %w", rowIndex+1, colIndex+1, err)
			}
		}
	}
	return nil
}

func sortCells(cells []contracts.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}
