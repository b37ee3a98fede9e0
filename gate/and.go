package gate

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/primitive"
)

// And is a NAND followed by a NOT (a second NAND with tied inputs).
type And struct {
	A, B, Output core.NodeIndex
}

// NewAnd builds an AND gate from two Nands.
func NewAnd(creator *core.NodeCreator) *And {
	nander := primitive.NewNand(creator)
	notter := primitive.NewNand(creator)
	creator.Link(nander.Output, notter.A, core.StandardDelay)
	creator.Link(nander.Output, notter.B, core.StandardDelay)
	return &And{A: nander.A, B: nander.B, Output: notter.Output}
}

// AndVec is word_bits independent AND gates.
type AndVec struct {
	A, B, Output []core.NodeIndex
}

// NewAndVec builds bits independent AND gates.
func NewAndVec(bits int, creator *core.NodeCreator) *AndVec {
	v := &AndVec{
		A:      make([]core.NodeIndex, bits),
		B:      make([]core.NodeIndex, bits),
		Output: make([]core.NodeIndex, bits),
	}
	for i := 0; i < bits; i++ {
		g := NewAnd(creator)
		v.A[i], v.B[i], v.Output[i] = g.A, g.B, g.Output
	}
	return v
}

// NWayAnd ANDs input_count >= 2 inputs together in a linear chain.
// Panics if input_count < 2 -- malformed construction (SPEC_FULL.md §7).
type NWayAnd struct {
	Inputs []core.NodeIndex
	Output core.NodeIndex
}

// NewNWayAnd builds an N-way AND from a chain of two-input And gates.
func NewNWayAnd(inputCount int, creator *core.NodeCreator) *NWayAnd {
	if inputCount < 2 {
		panic("gate: NWayAnd needs at least 2 inputs")
	}

	first := NewAnd(creator)
	inputs := []core.NodeIndex{first.A, first.B}
	outputSoFar := first.Output

	for i := 2; i < inputCount; i++ {
		g := NewAnd(creator)
		creator.Link(outputSoFar, g.A, core.StandardDelay)
		outputSoFar = g.Output
		inputs = append(inputs, g.B)
	}

	return &NWayAnd{Inputs: inputs, Output: outputSoFar}
}
