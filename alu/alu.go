// Package alu implements a fixed-function arithmetic/logic unit: a
// 3-bit-addressed control ROM selects one of seven operations (zero,
// identity, increment, decrement, add, subtract, and) by steering a
// shared adder/ander datapath.
package alu

import (
	"github.com/holowire/logicsim/adder"
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/gate"
	"github.com/holowire/logicsim/mux"
	"github.com/holowire/logicsim/storage"
)

// Mode addresses, in control-ROM row order.
const (
	ModeZero = iota
	ModeIdentity
	ModeIncrement
	ModeDecrement
	ModeAdd
	ModeSubtract
	ModeAnd
)

// controlTable is the fixed microcode: each row is (keepNonzero,
// doInvert, carryInSet, selectAnd) for the mode at that row's index.
// Row 7 is unused and pinned to all-Low.
var controlTable = [][]bool{
	{false, false, false, true},  // zero
	{false, false, false, false}, // identity
	{false, false, true, false},  // increment
	{false, true, false, false},  // decrement
	{true, false, false, false},  // add
	{true, true, true, false},    // subtract
	{true, false, false, true},   // and
	{false, false, false, false}, // unused
}

// Alu is a wordBits-wide arithmetic/logic unit.
type Alu struct {
	A, B, Mode, Output []core.NodeIndex
}

// NewAlu builds a wordBits-wide ALU. Panics if wordBits < 1.
func NewAlu(wordBits int, creator *core.NodeCreator) *Alu {
	if wordBits < 1 {
		panic("alu: Alu needs at least 1 bit")
	}

	content := make([][]bool, len(controlTable))
	copy(content, controlTable)
	controlRom := storage.NewRom(content, creator)

	keepNonzero := controlRom.Output[0]
	doInvert := controlRom.Output[1]
	carryInSet := controlRom.Output[2]
	selectAnd := controlRom.Output[3]

	// Possibly mask B to 0.
	maskedB := gate.NewAndVec(wordBits, creator)
	creator.LinkOneToMany(keepNonzero, maskedB.B, core.StandardDelay)
	bRawInput := maskedB.A

	// Possibly invert the masked B.
	preppedB := gate.NewXorVec(wordBits, creator)
	creator.LinkMany(maskedB.Output, preppedB.A, core.StandardDelay)
	creator.LinkOneToMany(doInvert, preppedB.B, core.StandardDelay)

	// Add the tweaked B with A.
	rca := adder.NewRippleCarryAdder(wordBits, creator)
	creator.LinkMany(preppedB.Output, rca.B, core.StandardDelay)
	aRawInput := rca.A
	creator.Link(rca.CarryIn, carryInSet, core.StandardDelay)

	// Build the ander-using branch.
	ander := gate.NewAndVec(wordBits, creator)
	creator.LinkMany(aRawInput, ander.A, core.StandardDelay)
	creator.LinkMany(maskedB.Output, ander.B, core.StandardDelay)

	// Build the adder-vs-ander chooser.
	chooser := mux.NewMux(wordBits, creator)
	creator.LinkMany(rca.Sum, chooser.A, core.StandardDelay)
	creator.LinkMany(ander.Output, chooser.B, core.StandardDelay)
	creator.Link(selectAnd, chooser.Select, core.StandardDelay)

	return &Alu{
		A:      aRawInput,
		B:      bRawInput,
		Mode:   controlRom.Address,
		Output: chooser.Output,
	}
}
