package storage

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/gate"
)

// DFlipFlop is a positive-edge-triggered D flip-flop (the classic
// three-NotSRLatch form): Q takes the value of Data when Clock rises and
// holds it otherwise; changes to Data while Clock stays High or Low do not
// reach Q.
type DFlipFlop struct {
	Clock, Data, Q, NotQ core.NodeIndex
}

// NewDFlipFlop builds a D flip-flop from three NotSRLatches and an AND
// gate gating the clock into the input latch.
func NewDFlipFlop(creator *core.NodeCreator) *DFlipFlop {
	top := NewNotSRLatch(creator)
	bottom := NewNotSRLatch(creator)
	output := NewNotSRLatch(creator)
	ander := gate.NewAnd(creator)

	clock := ander.A

	creator.Link(ander.B, top.NotQ, core.StandardDelay)
	creator.Link(ander.Output, bottom.NotS, core.StandardDelay)
	data := bottom.NotR

	creator.Link(bottom.Q, output.NotR, core.StandardDelay)
	creator.Link(clock, top.NotR, core.StandardDelay)
	creator.Link(bottom.NotQ, top.NotS, core.StandardDelay)
	creator.Link(top.NotQ, output.NotS, core.StandardDelay)

	return &DFlipFlop{Clock: clock, Data: data, Q: output.Q, NotQ: output.NotQ}
}

// Register is a bitCount-wide bank of DFlipFlops sharing one clock line.
type Register struct {
	Bits  []*DFlipFlop
	Clock core.NodeIndex
}

// NewRegister builds a bitCount-wide register. Panics if bitCount < 1.
func NewRegister(bitCount int, creator *core.NodeCreator) *Register {
	if bitCount < 1 {
		panic("storage: Register needs at least 1 bit")
	}

	bits := make([]*DFlipFlop, bitCount)
	for i := range bits {
		bits[i] = NewDFlipFlop(creator)
	}

	clock := bits[0].Clock
	for _, b := range bits[1:] {
		creator.Link(clock, b.Clock, core.StandardDelay)
	}

	return &Register{Bits: bits, Clock: clock}
}

// Data returns the register's per-bit data input nodes, LSB-first.
func (r *Register) Data() []core.NodeIndex {
	nodes := make([]core.NodeIndex, len(r.Bits))
	for i, b := range r.Bits {
		nodes[i] = b.Data
	}
	return nodes
}

// Q returns the register's per-bit output nodes, LSB-first.
func (r *Register) Q() []core.NodeIndex {
	nodes := make([]core.NodeIndex, len(r.Bits))
	for i, b := range r.Bits {
		nodes[i] = b.Q
	}
	return nodes
}

// ReadUint64 reads the register's stored value as an unsigned integer,
// LSB-first. ok is false if any bit is Floating or Conflict.
func (r *Register) ReadUint64(c *core.NodeCollection) (value uint64, ok bool) {
	return core.Word(c, r.Q())
}
