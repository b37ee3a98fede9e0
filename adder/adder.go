// Package adder implements binary addition from the gate library:
// HalfAdder (no carry-in), FullAdder (adds a carry-in), and
// RippleCarryAdder (an arbitrary-width chain of FullAdders).
package adder

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/gate"
)

// HalfAdder adds two bits with no carry-in: Sum = A XOR B, Carry = A AND B.
type HalfAdder struct {
	A, B, Sum, Carry core.NodeIndex
}

// NewHalfAdder builds a half adder from an XOR and an AND sharing inputs.
func NewHalfAdder(creator *core.NodeCreator) *HalfAdder {
	different := gate.NewXor(creator)
	both := gate.NewAnd(creator)

	creator.Link(different.A, both.A, core.StandardDelay)
	creator.Link(different.B, both.B, core.StandardDelay)

	return &HalfAdder{A: different.A, B: different.B, Sum: different.Output, Carry: both.Output}
}

// FullAdder adds two bits plus a carry-in, built from two HalfAdders and
// an OR combining their carries.
type FullAdder struct {
	A, B, CarryIn, Sum, CarryOut core.NodeIndex
}

// NewFullAdder builds a full adder.
func NewFullAdder(creator *core.NodeCreator) *FullAdder {
	halfOne := NewHalfAdder(creator)
	halfTwo := NewHalfAdder(creator)
	eitherCarry := gate.NewOr(creator)

	creator.Link(halfOne.Carry, eitherCarry.A, core.StandardDelay)
	creator.Link(halfTwo.Carry, eitherCarry.B, core.StandardDelay)
	creator.Link(halfOne.Sum, halfTwo.A, core.StandardDelay)

	return &FullAdder{
		A:        halfOne.A,
		B:        halfOne.B,
		CarryIn:  halfTwo.B,
		Sum:      halfTwo.Sum,
		CarryOut: eitherCarry.Output,
	}
}

// RippleCarryAdder adds two bits-wide words plus a carry-in via a chain
// of FullAdders, each feeding its carry-out to the next bit's carry-in.
type RippleCarryAdder struct {
	A, B     []core.NodeIndex
	CarryIn  core.NodeIndex
	Sum      []core.NodeIndex
	CarryOut core.NodeIndex
}

// NewRippleCarryAdder builds a bits-wide ripple-carry adder. Panics if
// bits < 1.
func NewRippleCarryAdder(bits int, creator *core.NodeCreator) *RippleCarryAdder {
	if bits < 1 {
		panic("adder: RippleCarryAdder needs at least 1 bit")
	}

	adders := make([]*FullAdder, bits)
	for i := range adders {
		adders[i] = NewFullAdder(creator)
	}

	for i := 1; i < bits; i++ {
		creator.Link(adders[i-1].CarryOut, adders[i].CarryIn, core.StandardDelay)
	}

	r := &RippleCarryAdder{
		A:        make([]core.NodeIndex, bits),
		B:        make([]core.NodeIndex, bits),
		Sum:      make([]core.NodeIndex, bits),
		CarryIn:  adders[0].CarryIn,
		CarryOut: adders[bits-1].CarryOut,
	}
	for i, a := range adders {
		r.A[i], r.B[i], r.Sum[i] = a.A, a.B, a.Sum
	}
	return r
}
