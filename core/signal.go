// Package core implements the gate-level event-driven simulation engine:
// the four-valued signal model, the staged NodeCreator/NodeCollection
// construction protocol, and the per-forcer dedup scheduler. The
// composite gate library (package gate, mux, demux, adder, storage, alu)
// is built entirely on top of the Element contract exposed here.
package core

import "fmt"

// LineState is the four-valued signal a Node carries.
type LineState int

const (
	// Low means exactly one driver pulls the wire down.
	Low LineState = iota
	// High means exactly one driver pulls the wire up.
	High
	// Floating means no driver is influencing the wire.
	Floating
	// Conflict means at least one driver wants Low and at least one wants
	// High simultaneously.
	Conflict
)

func (s LineState) String() string {
	switch s {
	case Low:
		return "Low"
	case High:
		return "High"
	case Floating:
		return "Floating"
	case Conflict:
		return "Conflict"
	default:
		return fmt.Sprintf("LineState(%d)", int(s))
	}
}

// lowsHighs folds a single LineState into its (lows, highs) contribution,
// used when resolving a node's observed input state from its influences.
func (s LineState) lowsHighs() (lows, highs int) {
	switch s {
	case Low:
		return 1, 0
	case High:
		return 0, 1
	case Floating:
		return 0, 0
	case Conflict:
		return 1, 1
	default:
		panic(fmt.Sprintf("unknown LineState %d", int(s)))
	}
}

// resolveWire folds (lows>0, highs>0) into the observed state of a wire.
// Undriven (no influence at all) reads as Low, not Floating -- a
// deliberate, pinned design decision (see DESIGN.md). A NodeCollection
// uses resolveWire by default and resolveWireFloating when built with
// WithUndrivenFloating.
func resolveWire(lows, highs int) LineState {
	switch {
	case lows == 0 && highs == 0:
		return Low
	case lows > 0 && highs == 0:
		return Low
	case lows == 0 && highs > 0:
		return High
	default:
		return Conflict
	}
}

// resolveWireFloating is the alternate resolution table where an
// undriven wire reads as Floating rather than Low. Not used by default;
// wired in for a NodeCollection built with WithUndrivenFloating.
func resolveWireFloating(lows, highs int) LineState {
	if lows == 0 && highs == 0 {
		return Floating
	}
	return resolveWire(lows, highs)
}

