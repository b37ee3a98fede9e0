package gate

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/primitive"
)

// Xor is the standard four-NAND construction: n1 = NAND(a,b), n2 =
// NAND(a,n1), n3 = NAND(b,n1), output = NAND(n2,n3).
type Xor struct {
	A, B, Output core.NodeIndex
}

// NewXor builds an XOR gate from four Nands.
func NewXor(creator *core.NodeCreator) *Xor {
	n1 := primitive.NewNand(creator)
	n2 := primitive.NewNand(creator)
	n3 := primitive.NewNand(creator)
	n4 := primitive.NewNand(creator)

	creator.Link(n1.A, n2.A, core.StandardDelay)
	creator.Link(n1.B, n3.B, core.StandardDelay)
	creator.Link(n1.Output, n2.B, core.StandardDelay)
	creator.Link(n1.Output, n3.A, core.StandardDelay)
	creator.Link(n2.Output, n4.A, core.StandardDelay)
	creator.Link(n3.Output, n4.B, core.StandardDelay)

	return &Xor{A: n1.A, B: n1.B, Output: n4.Output}
}

// XorVec is word_bits independent XOR gates.
type XorVec struct {
	A, B, Output []core.NodeIndex
}

// NewXorVec builds bits independent XOR gates.
func NewXorVec(bits int, creator *core.NodeCreator) *XorVec {
	v := &XorVec{
		A:      make([]core.NodeIndex, bits),
		B:      make([]core.NodeIndex, bits),
		Output: make([]core.NodeIndex, bits),
	}
	for i := 0; i < bits; i++ {
		g := NewXor(creator)
		v.A[i], v.B[i], v.Output[i] = g.A, g.B, g.Output
	}
	return v
}
