package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"go.etcd.io/bbolt"

	"gridcalc/contracts"
)

// dimsKey is reserved inside every sheet bucket for the grid dimensions.
// Cell record keys are canonical references and never start with '#'.
var dimsKey = []byte("#dims")

// sheetEntry pairs one engine instance with its history. The mutex
// serializes every operation on the sheet; the engine itself is not safe
// for concurrent use.
type sheetEntry struct {
	mutex   sync.Mutex
	sheet   contracts.Sheet
	history *UndoHistory
}

type SheetRepository struct {
	db                *bbolt.DB
	serializer        contracts.CellSerializer
	canonicalizer     contracts.Canonicalizer
	webhookDispatcher contracts.WebhookDispatcher
	logger            *slog.Logger

	defaultRows int
	defaultCols int

	mutex  sync.Mutex
	sheets map[string]*sheetEntry

	newSheet func(rows int, cols int) (contracts.Sheet, error)
}

func NewSheetRepository(
	db *bbolt.DB, serializer contracts.CellSerializer, canonicalizer contracts.Canonicalizer,
	webhookDispatcher contracts.WebhookDispatcher, logger *slog.Logger,
	defaultRows int, defaultCols int,
) *SheetRepository {
	return &SheetRepository{
		db:                db,
		serializer:        serializer,
		canonicalizer:     canonicalizer,
		webhookDispatcher: webhookDispatcher,
		logger:            logger,
		defaultRows:       defaultRows,
		defaultCols:       defaultCols,
		sheets:            map[string]*sheetEntry{},
		newSheet: func(rows int, cols int) (contracts.Sheet, error) {
			return NewSheet(rows, cols)
		},
	}
}

func (s *SheetRepository) SetCell(sheetId string, cellId string, value string) (*contracts.CellValue, error) {
	sheetId = strings.ToLower(sheetId)

	entry, err := s.entry(sheetId, true)
	if err != nil {
		return nil, err
	}

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	cell, err := s.parseCellId(entry.sheet, cellId)
	if err != nil {
		return nil, err
	}

	expression := s.canonicalizer.NormalizeExpression(value)
	before := entry.sheet.CreateSnapshot()

	changed, err := entry.sheet.SetCellValue(cell, expression)
	if err != nil {
		return nil, err
	}

	canonicalCellId := s.canonicalizer.FormatCellId(cell)
	err = s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(sheetId))
		if err != nil {
			return err
		}

		if err = bucket.Put(dimsKey, s.serializer.MarshalDims(entry.sheet.Dims())); err != nil {
			return err
		}

		return bucket.Put([]byte(canonicalCellId), s.serializer.MarshalCell(canonicalCellId, expression))
	})
	if err != nil {
		// keep memory and disk consistent: an edit that cannot be stored
		// is undone in the engine as well
		_ = entry.sheet.ApplySnapshot(before)
		return nil, err
	}

	entry.history.Push(before)

	cells := make([]*contracts.CellValue, len(changed))
	for i, changedCell := range changed {
		cells[i] = s.cellValue(entry.sheet, changedCell)
	}
	s.webhookDispatcher.Notify(sheetId, cells)

	return cells[0], nil
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (*contracts.CellValue, error) {
	sheetId = strings.ToLower(sheetId)

	entry, err := s.entry(sheetId, false)
	if err != nil {
		return nil, err
	}

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	cell, err := s.parseCellId(entry.sheet, cellId)
	if err != nil {
		return nil, err
	}

	if entry.sheet.GetCellExpression(cell) == "" {
		return nil, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	return s.cellValue(entry.sheet, cell), nil
}

func (s *SheetRepository) GetCellList(sheetId string) (*contracts.CellList, error) {
	sheetId = strings.ToLower(sheetId)

	entry, err := s.entry(sheetId, false)
	if err != nil {
		return nil, err
	}

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	cellList := contracts.CellList{}

	rows, cols := entry.sheet.Dims()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := contracts.Cell{Row: row, Col: col}
			if entry.sheet.GetCellExpression(cell) == "" {
				continue
			}

			cellValue := s.cellValue(entry.sheet, cell)
			cellList[cellValue.CellId] = cellValue
		}
	}

	return &cellList, nil
}

func (s *SheetRepository) GetCellDependencies(sheetId string, cellId string) (*contracts.CellDependencies, error) {
	sheetId = strings.ToLower(sheetId)

	entry, err := s.entry(sheetId, false)
	if err != nil {
		return nil, err
	}

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	cell, err := s.parseCellId(entry.sheet, cellId)
	if err != nil {
		return nil, err
	}

	references, dependents := entry.sheet.GetCellDependencies(cell)

	dependencies := &contracts.CellDependencies{
		References: make([]string, len(references)),
		Dependents: make([]string, len(dependents)),
	}
	for i, reference := range references {
		dependencies.References[i] = s.canonicalizer.FormatCellId(reference)
	}
	for i, dependent := range dependents {
		dependencies.Dependents[i] = s.canonicalizer.FormatCellId(dependent)
	}

	return dependencies, nil
}

func (s *SheetRepository) ExportValues(sheetId string, w io.Writer) error {
	sheetId = strings.ToLower(sheetId)

	entry, err := s.entry(sheetId, false)
	if err != nil {
		return err
	}

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	return entry.sheet.ExportValues(w)
}

func (s *SheetRepository) ImportValues(sheetId string, r io.Reader) error {
	sheetId = strings.ToLower(sheetId)

	entry, err := s.entry(sheetId, true)
	if err != nil {
		return err
	}

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	before := entry.sheet.CreateSnapshot()

	if err = entry.sheet.ImportValues(r); err != nil {
		// an aborted import leaves the engine half-applied; restore it
		_ = entry.sheet.ApplySnapshot(before)
		return err
	}

	if err = s.rewriteBucket(sheetId, entry.sheet); err != nil {
		_ = entry.sheet.ApplySnapshot(before)
		return err
	}

	entry.history.Push(before)
	return nil
}

func (s *SheetRepository) Undo(sheetId string) error {
	sheetId = strings.ToLower(sheetId)

	entry, err := s.entry(sheetId, false)
	if err != nil {
		return err
	}

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	restored, ok := entry.history.Undo(entry.sheet.CreateSnapshot())
	if !ok {
		return fmt.Errorf("%s: %w", sheetId, contracts.NothingToUndoError)
	}

	if err = entry.sheet.ApplySnapshot(restored); err != nil {
		return err
	}

	return s.rewriteBucket(sheetId, entry.sheet)
}

func (s *SheetRepository) Redo(sheetId string) error {
	sheetId = strings.ToLower(sheetId)

	entry, err := s.entry(sheetId, false)
	if err != nil {
		return err
	}

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	restored, ok := entry.history.Redo(entry.sheet.CreateSnapshot())
	if !ok {
		return fmt.Errorf("%s: %w", sheetId, contracts.NothingToRedoError)
	}

	if err = entry.sheet.ApplySnapshot(restored); err != nil {
		return err
	}

	return s.rewriteBucket(sheetId, entry.sheet)
}

// entry returns the live engine for sheetId, replaying the stored bucket on
// first access. With create set, an unknown sheet gets a fresh engine of the
// configured default dimensions.
func (s *SheetRepository) entry(sheetId string, create bool) (*sheetEntry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if entry, ok := s.sheets[sheetId]; ok {
		return entry, nil
	}

	entry, err := s.loadSheet(sheetId)
	if err == nil {
		s.sheets[sheetId] = entry
		return entry, nil
	}

	if !create || !errors.Is(err, contracts.SheetNotFoundError) {
		return nil, err
	}

	sheet, err := s.newSheet(s.defaultRows, s.defaultCols)
	if err != nil {
		return nil, err
	}

	entry = &sheetEntry{sheet: sheet, history: NewUndoHistory()}
	s.sheets[sheetId] = entry
	return entry, nil
}

// loadSheet rebuilds a sheet's engine from its bucket by replaying every
// stored expression. Replay order does not matter: a formula referencing a
// not-yet-replayed cell reads it as zero, and the later replay of that cell
// recomputes the dependent through normal propagation.
func (s *SheetRepository) loadSheet(sheetId string) (*sheetEntry, error) {
	var entry *sheetEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetId))
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		rows, cols, err := s.serializer.UnmarshalDims(bucket.Get(dimsKey))
		if err != nil {
			s.logger.Warn("sheet has no readable dimensions record, using defaults",
				"sheet", sheetId, "error", err)
			rows, cols = s.defaultRows, s.defaultCols
		}

		sheet, err := s.newSheet(rows, cols)
		if err != nil {
			return err
		}

		gridRows, gridCols := sheet.Dims()
		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			if string(k) == string(dimsKey) {
				continue
			}

			_, expression, err := s.serializer.UnmarshalCell(v)
			if err != nil {
				s.logger.Warn("skipping unreadable cell record", "sheet", sheetId, "key", string(k), "error", err)
				continue
			}

			cell, ok := ParseCellReference(string(k), gridRows, gridCols)
			if !ok {
				s.logger.Warn("skipping cell record with invalid key", "sheet", sheetId, "key", string(k))
				continue
			}

			if _, err = sheet.SetCellValue(cell, expression); err != nil {
				s.logger.Warn("skipping cell record that no longer applies",
					"sheet", sheetId, "key", string(k), "error", err)
			}
		}

		entry = &sheetEntry{sheet: sheet, history: NewUndoHistory()}
		return nil
	})

	return entry, err
}

// rewriteBucket replaces a sheet's stored records with the engine's current
// state. Undo, redo and import all change many cells at once, so rewriting
// wholesale is simpler than diffing.
func (s *SheetRepository) rewriteBucket(sheetId string, sheet contracts.Sheet) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(sheetId)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}

		bucket, err := tx.CreateBucket([]byte(sheetId))
		if err != nil {
			return err
		}

		if err = bucket.Put(dimsKey, s.serializer.MarshalDims(sheet.Dims())); err != nil {
			return err
		}

		rows, cols := sheet.Dims()
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				cell := contracts.Cell{Row: row, Col: col}
				expression := sheet.GetCellExpression(cell)
				if expression == "" {
					continue
				}

				canonicalCellId := s.canonicalizer.FormatCellId(cell)
				if err = bucket.Put([]byte(canonicalCellId), s.serializer.MarshalCell(canonicalCellId, expression)); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (s *SheetRepository) parseCellId(sheet contracts.Sheet, cellId string) (contracts.Cell, error) {
	rows, cols := sheet.Dims()

	cell, ok := ParseCellReference(s.canonicalizer.CanonicalizeCellId(cellId), rows, cols)
	if !ok {
		return contracts.Cell{}, fmt.Errorf("cell_id `%s`: %w", cellId, contracts.InvalidCellIdError)
	}

	return cell, nil
}

func (s *SheetRepository) cellValue(sheet contracts.Sheet, cell contracts.Cell) *contracts.CellValue {
	result, cellErr := sheet.GetCellValue(cell)

	return &contracts.CellValue{
		CellId: s.canonicalizer.FormatCellId(cell),
		Value:  sheet.GetCellExpression(cell),
		Result: result,
		Error:  cellErr,
	}
}
