package storage

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/demux"
	"github.com/holowire/logicsim/mux"
)

// RegisterBank is registerCount Registers sharing one data input bus,
// selected for reading by a MuxN and for writing by a DemuxN gating a
// shared write clock to exactly one register's clock line.
type RegisterBank struct {
	Input         []core.NodeIndex
	Output        []core.NodeIndex
	ReadSelector  []core.NodeIndex
	WriteSelector []core.NodeIndex
	WriteClock    core.NodeIndex
	WriteEnable   core.NodeIndex
}

// NewRegisterBank builds a registerCount-deep, wordBits-wide register
// bank. Panics if registerCount < 1.
func NewRegisterBank(wordBits, registerCount int, creator *core.NodeCreator) *RegisterBank {
	if registerCount < 1 {
		panic("storage: RegisterBank needs at least 1 register")
	}

	registers := make([]*Register, registerCount)
	for i := range registers {
		registers[i] = NewRegister(wordBits, creator)
	}

	for _, r := range registers[1:] {
		creator.LinkMany(registers[0].Data(), r.Data(), core.StandardDelay)
	}

	outputChooser := mux.NewMuxN(wordBits, registerCount, creator)
	for i, r := range registers {
		creator.LinkMany(r.Q(), outputChooser.Inputs[i], core.StandardDelay)
	}

	writeSelector := demux.NewDemuxN(1, registerCount, creator)
	for i, r := range registers {
		creator.Link(writeSelector.Outputs[i][0], r.Clock, core.StandardDelay)
	}

	return &RegisterBank{
		Input:         registers[0].Data(),
		Output:        outputChooser.Output,
		ReadSelector:  outputChooser.Select,
		WriteSelector: writeSelector.Select,
		WriteClock:    writeSelector.Input[0],
		WriteEnable:   writeSelector.Enable,
	}
}
