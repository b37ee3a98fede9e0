// Package circuit provides a fluent Builder for assembling a staged
// NodeCreator/NodeCollection pair, mirroring the teacher's device
// builder idiom (value-receiver, WithX chaining, Build produces the
// Circuit, which Finalize then makes live).
package circuit

import (
	"github.com/sarchlab/akita/v4/monitoring"

	"github.com/holowire/logicsim/core"
)

// Circuit bundles a live NodeCollection with the NodeCreator used to
// stage it, plus whatever monitor was wired in at build time.
type Circuit struct {
	Creator    *core.NodeCreator
	Collection *core.NodeCollection
	Monitor    *monitoring.Monitor
}

// Builder assembles a Circuit. The zero value is usable.
type Builder struct {
	name             string
	undrivenFloating bool
	monitor          *monitoring.Monitor
}

// WithName sets the collection's diagnostic name.
func (b Builder) WithName(name string) Builder {
	b.name = name
	return b
}

// WithUndrivenFloating switches undriven nodes to read as Floating
// instead of the default Low.
func (b Builder) WithUndrivenFloating() Builder {
	b.undrivenFloating = true
	return b
}

// WithMonitor attaches an akita monitor, carried through to the built
// Circuit for the caller to register against (e.g. monitor.StartServer).
func (b Builder) WithMonitor(monitor *monitoring.Monitor) Builder {
	b.monitor = monitor
	return b
}

// Build returns a fresh, empty Circuit ready for staging via its
// Creator. Call Finalize once staging is complete.
func (b Builder) Build() *Circuit {
	opts := []core.Option{core.WithName(b.name)}
	if b.undrivenFloating {
		opts = append(opts, core.WithUndrivenFloating())
	}

	collection := core.NewNodeCollection(opts...)
	return &Circuit{
		Creator:    core.NewNodeCreator(collection),
		Collection: collection,
		Monitor:    b.monitor,
	}
}

// Finalize absorbs the Circuit's staged Creator into its Collection.
// The Circuit is live and ready to Play once this returns successfully.
func (c *Circuit) Finalize() error {
	return c.Collection.Absorb(c.Creator)
}
