package main

import "gridcalc/contracts"

const HistoryLimit = 100

// UndoHistory holds bounded snapshot stacks for one sheet. Push records the
// state an edit is about to replace; Undo trades the live state for the most
// recently recorded one and parks the live state on the redo side. Pushing
// never clears the redo side.
type UndoHistory struct {
	past   []*contracts.SheetSnapshot
	future []*contracts.SheetSnapshot
}

func NewUndoHistory() *UndoHistory {
	return &UndoHistory{}
}

func (h *UndoHistory) Push(snapshot *contracts.SheetSnapshot) {
	h.past = boundedPush(h.past, snapshot)
}

func (h *UndoHistory) Undo(current *contracts.SheetSnapshot) (*contracts.SheetSnapshot, bool) {
	if len(h.past) == 0 {
		return nil, false
	}

	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = boundedPush(h.future, current)
	return restored, true
}

func (h *UndoHistory) Redo(current *contracts.SheetSnapshot) (*contracts.SheetSnapshot, bool) {
	if len(h.future) == 0 {
		return nil, false
	}

	restored := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = boundedPush(h.past, current)
	return restored, true
}

// boundedPush appends, dropping the oldest entry once the stack is full.
func boundedPush(stack []*contracts.SheetSnapshot, snapshot *contracts.SheetSnapshot) []*contracts.SheetSnapshot {
	if len(stack) >= HistoryLimit {
		copy(stack, stack[1:])
		stack[len(stack)-1] = snapshot
		return stack
	}
	return append(stack, snapshot)
}
