package primitive

import "github.com/holowire/logicsim/core"

// ConstantBit is a continuous driver: its single node is always pushed to
// High (if On) or Low, regardless of what stimulates it.
type ConstantBit struct {
	Node core.NodeIndex
	On   bool
}

// NewConstantBit allocates a ConstantBit's node and registers it with
// creator.
func NewConstantBit(on bool, creator *core.NodeCreator) *ConstantBit {
	b := &ConstantBit{Node: creator.NewNode(), On: on}
	creator.AddElement(b)
	return b
}

// Nodes implements core.Element.
func (b *ConstantBit) Nodes() []core.NodeIndex { return []core.NodeIndex{b.Node} }

// Step implements core.Element.
func (b *ConstantBit) Step(c *core.NodeCollection) {
	state := core.Low
	if b.On {
		state = core.High
	}
	c.Write(b.Node, state)
}
