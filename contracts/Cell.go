package contracts

import "errors"

// Cell addresses one grid slot by zero-based row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellError classifies why a cell's computed value is unusable. A cell
// carrying any value other than NoError still stores a value of zero.
type CellError uint8

const (
	NoError CellError = iota
	DivideByZero
	Overflow
	DependencyError
)

func (e CellError) String() string {
	switch e {
	case DivideByZero:
		return "divide_by_zero"
	case Overflow:
		return "overflow"
	case DependencyError:
		return "dependency_error"
	}
	return ""
}

func (e CellError) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// CellValue is the API shape of one cell: the expression as stored, the
// computed result and the evaluation error, if any.
type CellValue struct {
	CellId string    `json:"cell_id"`
	Value  string    `json:"value"`
	Result int32     `json:"result"`
	Error  CellError `json:"error,omitempty"`
}

type CellList map[string]*CellValue

// CellDependencies lists both edge directions of one cell: the cells its
// expression reads and the cells whose expressions read it.
type CellDependencies struct {
	References []string `json:"references"`
	Dependents []string `json:"dependents"`
}

var CellNotFoundError = errors.New("cell not found")

var InvalidCellIdError = errors.New("cell id is not a reference inside the grid")
