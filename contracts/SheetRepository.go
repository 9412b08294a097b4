package contracts

import (
	"errors"
	"io"
)

type SheetRepository interface {
	SetCell(sheetId string, cellId string, value string) (*CellValue, error)
	GetCell(sheetId string, cellId string) (*CellValue, error)
	GetCellList(sheetId string) (*CellList, error)
	GetCellDependencies(sheetId string, cellId string) (*CellDependencies, error)
	ExportValues(sheetId string, w io.Writer) error
	ImportValues(sheetId string, r io.Reader) error
	Undo(sheetId string) error
	Redo(sheetId string) error
}

var SheetNotFoundError = errors.New("sheet not found")

var NothingToUndoError = errors.New("nothing to undo")

var NothingToRedoError = errors.New("nothing to redo")
