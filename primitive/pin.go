package primitive

import "github.com/holowire/logicsim/core"

// Pin is a passive observation/injection point: a single node, inert on
// Step. It is how a test harness or caller drives a circuit's inputs
// (via core.NodeCollection.Write) and reads its outputs (via
// core.NodeCollection.Read),
// without itself contributing any logic.
type Pin struct {
	Node core.NodeIndex
}

// NewPin allocates a Pin's node and registers it with creator.
func NewPin(creator *core.NodeCreator) *Pin {
	p := &Pin{Node: creator.NewNode()}
	creator.AddElement(p)
	return p
}

// Nodes implements core.Element.
func (p *Pin) Nodes() []core.NodeIndex { return []core.NodeIndex{p.Node} }

// Step implements core.Element. Pin is inert.
func (p *Pin) Step(c *core.NodeCollection) {}
