package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridcalc/contracts"
)

func _snapshotTaggedBy(rows int) *contracts.SheetSnapshot {
	return &contracts.SheetSnapshot{Rows: rows, Cols: 1, Cells: make([]contracts.SnapshotCell, rows)}
}

func TestUndoHistory_UndoRedo(t *testing.T) {
	t.Run("empty_history", func(t *testing.T) {
		history := NewUndoHistory()

		_, ok := history.Undo(_snapshotTaggedBy(1))
		assert.False(t, ok)

		_, ok = history.Redo(_snapshotTaggedBy(1))
		assert.False(t, ok)
	})

	t.Run("undo_returns_last_pushed", func(t *testing.T) {
		history := NewUndoHistory()
		history.Push(_snapshotTaggedBy(1))
		history.Push(_snapshotTaggedBy(2))

		restored, ok := history.Undo(_snapshotTaggedBy(3))
		assert.True(t, ok)
		assert.Equal(t, 2, restored.Rows)

		restored, ok = history.Undo(restored)
		assert.True(t, ok)
		assert.Equal(t, 1, restored.Rows)

		_, ok = history.Undo(restored)
		assert.False(t, ok)
	})

	t.Run("redo_walks_back_forward", func(t *testing.T) {
		history := NewUndoHistory()
		history.Push(_snapshotTaggedBy(1))
		history.Push(_snapshotTaggedBy(2))

		current := _snapshotTaggedBy(3)
		restored, _ := history.Undo(current)
		assert.Equal(t, 2, restored.Rows)

		redone, ok := history.Redo(restored)
		assert.True(t, ok)
		assert.Equal(t, 3, redone.Rows)

		_, ok = history.Redo(redone)
		assert.False(t, ok)
	})

	t.Run("push_keeps_redo_side", func(t *testing.T) {
		history := NewUndoHistory()
		history.Push(_snapshotTaggedBy(1))

		restored, _ := history.Undo(_snapshotTaggedBy(2))
		assert.Equal(t, 1, restored.Rows)

		history.Push(_snapshotTaggedBy(3))

		redone, ok := history.Redo(_snapshotTaggedBy(4))
		assert.True(t, ok)
		assert.Equal(t, 2, redone.Rows)
	})
}

func TestUndoHistory_Bounded(t *testing.T) {
	history := NewUndoHistory()

	for i := 1; i <= HistoryLimit+10; i++ {
		history.Push(_snapshotTaggedBy(i))
	}

	// the oldest ten states fell off the bottom
	undone := 0
	current := _snapshotTaggedBy(0)
	for {
		restored, ok := history.Undo(current)
		if !ok {
			break
		}
		undone++
		current = restored
	}

	assert.Equal(t, HistoryLimit, undone)
	assert.Equal(t, 11, current.Rows)
}
