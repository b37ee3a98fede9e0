// Package gate implements the scalar and vector boolean gates (NOT, AND,
// OR, XOR) by wiring primitive.Nand elements together. None of these
// types own any nodes themselves -- they are thin generators that expose
// handles to the primitives they instantiate.
package gate

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/primitive"
)

// Not is a single NAND with both inputs tied together.
type Not struct {
	Input, Output core.NodeIndex
}

// NewNot builds a NOT gate from one Nand.
func NewNot(creator *core.NodeCreator) *Not {
	n := primitive.NewNand(creator)
	creator.Link(n.A, n.B, core.StandardDelay)
	return &Not{Input: n.A, Output: n.Output}
}

// NotVec is word_bits independent NOT gates.
type NotVec struct {
	Input, Output []core.NodeIndex
}

// NewNotVec builds bits independent NOT gates.
func NewNotVec(bits int, creator *core.NodeCreator) *NotVec {
	v := &NotVec{Input: make([]core.NodeIndex, bits), Output: make([]core.NodeIndex, bits)}
	for i := 0; i < bits; i++ {
		g := NewNot(creator)
		v.Input[i] = g.Input
		v.Output[i] = g.Output
	}
	return v
}
