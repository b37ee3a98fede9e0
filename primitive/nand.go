// Package primitive holds the three element implementations that carry
// simulation state: Nand (the sole combinational primitive), Pin (passive
// observation/injection), and ConstantBit (a continuous driver). Every
// composite in gate/mux/demux/adder/storage/alu is built by wiring these
// together; composites themselves own no nodes.
package primitive

import "github.com/holowire/logicsim/core"

// Nand is the sole combinational primitive. Its Step recomputes Output
// from A and B using the NAND four-valued table, which is distinct from
// ordinary wire resolution (see core.NodeCollection.Read): Floating on either input
// forces Floating, Conflict on either input forces Conflict, otherwise
// the standard NAND truth table.
type Nand struct {
	A, B, Output core.NodeIndex
}

// NewNand allocates a Nand element's three nodes and registers it with
// creator.
func NewNand(creator *core.NodeCreator) *Nand {
	n := &Nand{
		A:      creator.NewNode(),
		B:      creator.NewNode(),
		Output: creator.NewNode(),
	}
	creator.AddElement(n)
	return n
}

// Nodes implements core.Element.
func (n *Nand) Nodes() []core.NodeIndex {
	return []core.NodeIndex{n.A, n.B, n.Output}
}

// Step implements core.Element.
func (n *Nand) Step(c *core.NodeCollection) {
	a := c.Read(n.A)
	b := c.Read(n.B)
	c.Write(n.Output, nandFourValued(a, b))
}

// nandFourValued is the NAND primitive's own propagation table, kept
// local to this package (core deliberately does not export it -- the
// table belongs to this element, not to the wire-resolution core).
func nandFourValued(a, b core.LineState) core.LineState {
	switch {
	case a == core.Floating || b == core.Floating:
		return core.Floating
	case a == core.Conflict || b == core.Conflict:
		return core.Conflict
	case a == core.High && b == core.High:
		return core.Low
	default:
		return core.High
	}
}
