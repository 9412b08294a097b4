package contracts

import (
	"errors"
	"fmt"
	"io"
)

// Sheet is one spreadsheet grid with incremental recomputation: setting a
// cell re-evaluates exactly the cells that transitively depend on it.
// Implementations are not safe for concurrent use; callers serialize access.
type Sheet interface {
	// SetCellValue parses expression, installs it at cell and recomputes the
	// affected subgraph. It returns the recomputed cells in evaluation order,
	// the edited cell first. On a parse failure or a rejected cycle the grid
	// is left unchanged.
	SetCellValue(cell Cell, expression string) ([]Cell, error)

	// GetCellValue returns the stored value and evaluation error. Cells that
	// were never set read as 0 with NoError.
	GetCellValue(cell Cell) (int32, CellError)

	// GetCellExpression returns the expression text installed at cell, or ""
	// for a cell that was never set.
	GetCellExpression(cell Cell) string

	// GetCellDependencies returns the cells referenced by cell's expression
	// and the cells whose expressions reference cell, both sorted row-major.
	GetCellDependencies(cell Cell) (references []Cell, dependents []Cell)

	CreateSnapshot() *SheetSnapshot
	ApplySnapshot(snapshot *SheetSnapshot) error

	// ExportValues writes computed values row-major, one CSV record per grid
	// row. Errored cells export their stored value of 0.
	ExportValues(w io.Writer) error

	// ImportValues resizes the grid to the input's dimensions and applies
	// every field as an expression.
	ImportValues(r io.Reader) error

	Dims() (rows int, cols int)
}

// SheetSnapshot is a self-contained copy of a sheet's state. Expressions are
// kept as text and re-parsed on apply, so a snapshot survives serialization.
type SheetSnapshot struct {
	Rows  int
	Cols  int
	Cells []SnapshotCell // row-major, len Rows*Cols
}

type SnapshotCell struct {
	Expression string
	Value      int32
	Error      CellError
	Dependents []Cell
}

var FormulaError = errors.New("formula error")

var CouldNotParseError = fmt.Errorf("%w: could not parse expression", FormulaError)

var CircularDependencyError = fmt.Errorf("%w: circular dependency", FormulaError)

var CellOutOfRangeError = errors.New("cell out of range")

var InvalidDimensionsError = errors.New("grid dimensions out of range")

var InvalidSnapshotError = errors.New("snapshot is inconsistent")
