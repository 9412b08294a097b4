package main

import "gridcalc/contracts"

// Formula is a parsed cell expression. Every cell holds exactly one variant;
// cells that were never set hold Constant zero.
type Formula interface {
	// evaluate computes the formula against the sheet's current values. On
	// any error the returned value is 0.
	evaluate(sheet *Sheet) (int32, contracts.CellError)
	// eachReference visits every cell the formula reads, range cells in
	// row-major order, binary operands first then second.
	eachReference(visit func(cell contracts.Cell))
}

type BinaryOpKind uint8

const (
	OpPlus BinaryOpKind = iota
	OpMinus
	OpMultiply
	OpDivide
)

type AggregateKind uint8

const (
	AggMin AggregateKind = iota
	AggMax
	AggAvg
	AggSum
	AggStdev
)

// Operand is a literal value or a reference to another cell.
type Operand struct {
	Cell    contracts.Cell
	Literal int32
	IsRef   bool
}

func literalOperand(value int32) Operand {
	return Operand{Literal: value}
}

func cellOperand(cell contracts.Cell) Operand {
	return Operand{Cell: cell, IsRef: true}
}

type Constant struct {
	Value int32
}

type BinaryOp struct {
	Op     BinaryOpKind
	First  Operand
	Second Operand
}

// RangeAggregate folds every cell of an inclusive rectangle into one value.
type RangeAggregate struct {
	Kind        AggregateKind
	TopLeft     contracts.Cell
	BottomRight contracts.Cell
}

// Sleep blocks evaluation for its operand's value in seconds, then yields
// that value.
type Sleep struct {
	Arg Operand
}

func (Constant) eachReference(func(contracts.Cell)) {}

func (f BinaryOp) eachReference(visit func(contracts.Cell)) {
	if f.First.IsRef {
		visit(f.First.Cell)
	}
	if f.Second.IsRef {
		visit(f.Second.Cell)
	}
}

func (f RangeAggregate) eachReference(visit func(contracts.Cell)) {
	for row := f.TopLeft.Row; row <= f.BottomRight.Row; row++ {
		for col := f.TopLeft.Col; col <= f.BottomRight.Col; col++ {
			visit(contracts.Cell{Row: row, Col: col})
		}
	}
}

func (f Sleep) eachReference(visit func(contracts.Cell)) {
	if f.Arg.IsRef {
		visit(f.Arg.Cell)
	}
}
