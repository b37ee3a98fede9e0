package gate

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/primitive"
)

// Or is built from two NOTs feeding a NAND (De Morgan's: !(!a * !b)).
type Or struct {
	A, B, Output core.NodeIndex
}

// NewOr builds an OR gate.
func NewOr(creator *core.NodeCreator) *Or {
	notA := NewNot(creator)
	notB := NewNot(creator)
	nander := primitive.NewNand(creator)
	creator.Link(notA.Output, nander.A, core.StandardDelay)
	creator.Link(notB.Output, nander.B, core.StandardDelay)
	return &Or{A: notA.Input, B: notB.Input, Output: nander.Output}
}

// OrVec is word_bits independent OR gates.
type OrVec struct {
	A, B, Output []core.NodeIndex
}

// NewOrVec builds bits independent OR gates.
func NewOrVec(bits int, creator *core.NodeCreator) *OrVec {
	v := &OrVec{
		A:      make([]core.NodeIndex, bits),
		B:      make([]core.NodeIndex, bits),
		Output: make([]core.NodeIndex, bits),
	}
	for i := 0; i < bits; i++ {
		g := NewOr(creator)
		v.A[i], v.B[i], v.Output[i] = g.A, g.B, g.Output
	}
	return v
}
