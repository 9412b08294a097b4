package main

import "gridcalc/contracts"

// The dependency graph lives inside the cell records: each record carries
// the set of cells whose formulas reference it. Edges therefore point from
// a referenced cell to its dependents, the direction recomputation flows.

// updateGraph rewires the dependents sets after cell's formula changed from
// oldFormula to its currently installed one. Removing a formula that was
// never installed is harmless, which is what rollback relies on.
func (s *Sheet) updateGraph(cell contracts.Cell, oldFormula Formula) {
	oldFormula.eachReference(func(ref contracts.Cell) {
		delete(s.record(ref).dependents, cell)
	})
	s.record(cell).formula.eachReference(func(ref contracts.Cell) {
		record := s.record(ref)
		if record.dependents == nil {
			record.dependents = make(map[contracts.Cell]struct{})
		}
		record.dependents[cell] = struct{}{}
	})
}

// hasCycle reports whether start can reach itself over dependents edges.
// The rest of the graph is acyclic, so any cycle introduced by an edit must
// pass through the edited cell. Visiting marks are cleared before returning.
func (s *Sheet) hasCycle(start contracts.Cell) bool {
	found := false
	s.record(start).visiting = true
	stack := []contracts.Cell{start}
	for len(stack) > 0 && !found {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dependent := range s.record(current).dependents {
			if dependent == start {
				found = true
				break
			}
			record := s.record(dependent)
			if !record.visiting {
				record.visiting = true
				stack = append(stack, dependent)
			}
		}
	}
	s.clearVisiting(start)
	return found
}

// clearVisiting resets the marks hasCycle set, walking the same edges.
func (s *Sheet) clearVisiting(start contracts.Cell) {
	s.record(start).visiting = false
	stack := []contracts.Cell{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dependent := range s.record(current).dependents {
			record := s.record(dependent)
			if record.visiting {
				record.visiting = false
				stack = append(stack, dependent)
			}
		}
	}
}

// markPending counts, for every cell reachable from root, how many of its
// in-edges originate inside that reachable subgraph. The counts drive the
// topological drain in propagate and all return to zero by its end.
func (s *Sheet) markPending(root contracts.Cell) {
	stack := []contracts.Cell{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dependent := range s.record(current).dependents {
			record := s.record(dependent)
			if record.pending == 0 {
				stack = append(stack, dependent)
			}
			record.pending++
		}
	}
}

// propagate re-evaluates every cell reachable from root exactly once, each
// only after all of its in-subgraph inputs settled. Returns the recomputed
// cells, root first.
func (s *Sheet) propagate(root contracts.Cell) []contracts.Cell {
	s.markPending(root)
	changed := []contracts.Cell{root}
	var ready []contracts.Cell
	for dependent := range s.record(root).dependents {
		record := s.record(dependent)
		record.pending--
		if record.pending == 0 {
			ready = append(ready, dependent)
		}
	}
	for len(ready) > 0 {
		current := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		record := s.record(current)
		record.value, record.err = record.formula.evaluate(s)
		changed = append(changed, current)
		for dependent := range record.dependents {
			dependentRecord := s.record(dependent)
			dependentRecord.pending--
			if dependentRecord.pending == 0 {
				ready = append(ready, dependent)
			}
		}
	}
	return changed
}
