// Package demux implements bit-, word-, and N-way de-multiplexing:
// BitDemux routes one bit to one of two outputs, Demux routes a word,
// and DemuxN recursively routes to one of word_count outputs.
package demux

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/gate"
)

// BitDemux routes Input to OutputA when Select is Low and Enable is
// High, to OutputB when Select is High and Enable is High, and to
// neither when Enable is Low.
type BitDemux struct {
	Input, Select, OutputA, OutputB, Enable core.NodeIndex
}

// NewBitDemux builds a single-bit 1-to-2 de-multiplexer.
func NewBitDemux(creator *core.NodeCreator) *BitDemux {
	anderA := gate.NewAnd(creator)
	notSelect := gate.NewNot(creator)
	anderB := gate.NewAnd(creator)
	enablerA := gate.NewAnd(creator)
	enablerB := gate.NewAnd(creator)

	creator.Link(notSelect.Output, anderA.A, core.StandardDelay)
	creator.Link(notSelect.Input, anderB.A, core.StandardDelay)
	creator.Link(anderA.B, anderB.B, core.StandardDelay)

	creator.Link(enablerA.A, enablerB.A, core.StandardDelay)
	creator.Link(enablerA.B, anderA.Output, core.StandardDelay)
	creator.Link(enablerB.B, anderB.Output, core.StandardDelay)

	return &BitDemux{
		Input:   anderA.B,
		Select:  notSelect.Input,
		OutputA: enablerA.Output,
		OutputB: enablerB.Output,
		Enable:  enablerA.A,
	}
}

// Demux routes a word to one of two word-wide outputs.
type Demux struct {
	Input, OutputA, OutputB []core.NodeIndex
	Select, Enable          core.NodeIndex
}

// NewDemux builds a bits-wide 1-to-2 de-multiplexer: bits independent
// BitDemuxes sharing select and enable lines. Panics if bits < 1.
func NewDemux(bits int, creator *core.NodeCreator) *Demux {
	if bits < 1 {
		panic("demux: Demux needs at least 1 bit")
	}

	bitDemuxes := make([]*BitDemux, bits)
	for i := range bitDemuxes {
		bitDemuxes[i] = NewBitDemux(creator)
	}

	for _, bd := range bitDemuxes[1:] {
		creator.Link(bitDemuxes[0].Select, bd.Select, core.StandardDelay)
		creator.Link(bitDemuxes[0].Enable, bd.Enable, core.StandardDelay)
	}

	d := &Demux{
		Input:   make([]core.NodeIndex, bits),
		OutputA: make([]core.NodeIndex, bits),
		OutputB: make([]core.NodeIndex, bits),
		Select:  bitDemuxes[0].Select,
		Enable:  bitDemuxes[0].Enable,
	}
	for i, bd := range bitDemuxes {
		d.Input[i], d.OutputA[i], d.OutputB[i] = bd.Input, bd.OutputA, bd.OutputB
	}
	return d
}

// DemuxN routes a word to one of wordCount word-wide outputs, addressed
// by a binary tree of Demuxes mirroring mux.MuxN's split rule.
type DemuxN struct {
	Input   []core.NodeIndex
	Select  []core.NodeIndex
	Outputs [][]core.NodeIndex
	Enable  core.NodeIndex
}

// NewDemuxN builds an N-way de-multiplexer. Panics if wordCount < 1.
func NewDemuxN(wordBits, wordCount int, creator *core.NodeCreator) *DemuxN {
	if wordCount < 1 {
		panic("demux: DemuxN needs at least 1 word")
	}

	if wordCount == 1 {
		ands := gate.NewAndVec(wordBits, creator)
		creator.LinkOneToMany(ands.B[0], ands.B, core.StandardDelay)
		return &DemuxN{
			Input:   ands.A,
			Outputs: [][]core.NodeIndex{ands.Output},
			Select:  nil,
			Enable:  ands.B[0],
		}
	}

	lowerSize := 1
	for lowerSize*2 < wordCount {
		lowerSize *= 2
	}

	lower := NewDemuxN(wordBits, lowerSize, creator)
	upper := NewDemuxN(wordBits, wordCount-lowerSize, creator)

	creator.LinkMany(lower.Input, upper.Input, core.StandardDelay)

	outputs := append(append([][]core.NodeIndex{}, lower.Outputs...), upper.Outputs...)

	lowerEnabler := gate.NewAnd(creator)
	upperEnabler := gate.NewAnd(creator)
	lowerSelectGen := gate.NewNot(creator)
	upperSelect := lowerSelectGen.Input
	lowerSelect := lowerSelectGen.Output
	enable := lowerEnabler.B

	creator.Link(enable, upperEnabler.B, core.StandardDelay)
	creator.Link(lowerEnabler.A, lowerSelect, core.StandardDelay)
	creator.Link(upperEnabler.A, upperSelect, core.StandardDelay)
	creator.Link(lowerEnabler.Output, lower.Enable, core.StandardDelay)
	creator.Link(upperEnabler.Output, upper.Enable, core.StandardDelay)

	creator.LinkMany(lower.Select[:len(upper.Select)], upper.Select, core.StandardDelay)
	sel := append(append([]core.NodeIndex{}, lower.Select...), upperSelect)

	return &DemuxN{
		Input:   lower.Input,
		Select:  sel,
		Outputs: outputs,
		Enable:  enable,
	}
}
