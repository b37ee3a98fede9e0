// Package storage implements stateful circuits built on the gate
// library: latches, flip-flops, registers, constant/ROM sources, and a
// register bank addressable by a shared read/write port pair.
package storage

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/primitive"
)

// NotSRLatch is an active-low SR latch: two cross-coupled Nands. NotS
// and NotR are active-low set/reset; Q and NotQ are the complementary
// outputs.
type NotSRLatch struct {
	NotS, NotR, Q, NotQ core.NodeIndex
}

// NewNotSRLatch builds a NotSRLatch from two cross-coupled Nands.
func NewNotSRLatch(creator *core.NodeCreator) *NotSRLatch {
	top := primitive.NewNand(creator)
	bottom := primitive.NewNand(creator)

	creator.Link(top.Output, bottom.A, core.StandardDelay)
	creator.Link(bottom.Output, top.B, core.StandardDelay)

	return &NotSRLatch{NotS: top.A, NotR: bottom.B, Q: top.Output, NotQ: bottom.Output}
}
