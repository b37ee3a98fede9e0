// Package mux implements bit-, word-, and N-way selection from the gate
// library: BitMux selects between two single bits, Mux between two
// words, and MuxN recursively between an arbitrary power-of-two-or-not
// count of words.
package mux

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/gate"
)

// BitMux selects A when Select is Low, B when Select is High.
type BitMux struct {
	A, B, Select, Output core.NodeIndex
}

// NewBitMux builds a single-bit 2-to-1 multiplexer from a NOT, two ANDs
// and an OR: output = (a AND NOT select) OR (b AND select).
func NewBitMux(creator *core.NodeCreator) *BitMux {
	notSelect := gate.NewNot(creator)
	aMasked := gate.NewAnd(creator)
	bMasked := gate.NewAnd(creator)
	output := gate.NewOr(creator)

	creator.Link(notSelect.Output, aMasked.A, core.StandardDelay)
	creator.Link(notSelect.Input, bMasked.A, core.StandardDelay)
	creator.Link(aMasked.Output, output.A, core.StandardDelay)
	creator.Link(bMasked.Output, output.B, core.StandardDelay)

	return &BitMux{
		A:      aMasked.B,
		B:      bMasked.B,
		Select: notSelect.Input,
		Output: output.Output,
	}
}

// Mux selects between two arbitrary-width words with a single shared
// select line.
type Mux struct {
	A, B, Output []core.NodeIndex
	Select       core.NodeIndex
}

// NewMux builds a bits-wide 2-to-1 multiplexer: bits independent BitMuxes
// sharing one select line. Panics if bits < 1 (malformed construction).
func NewMux(bits int, creator *core.NodeCreator) *Mux {
	if bits < 1 {
		panic("mux: Mux needs at least 1 bit")
	}

	bitMuxes := make([]*BitMux, bits)
	for i := range bitMuxes {
		bitMuxes[i] = NewBitMux(creator)
	}

	for _, bm := range bitMuxes[1:] {
		creator.Link(bitMuxes[0].Select, bm.Select, core.StandardDelay)
	}

	m := &Mux{
		A:      make([]core.NodeIndex, bits),
		B:      make([]core.NodeIndex, bits),
		Output: make([]core.NodeIndex, bits),
		Select: bitMuxes[0].Select,
	}
	for i, bm := range bitMuxes {
		m.A[i], m.B[i], m.Output[i] = bm.A, bm.B, bm.Output
	}
	return m
}

// MuxN selects between word_count words, each word_bits wide, via a
// binary tree of Muxes addressed by log2(word_count)-ish select bits
// (ceil(log2) when word_count isn't a power of two).
type MuxN struct {
	Inputs [][]core.NodeIndex
	Output []core.NodeIndex
	Select []core.NodeIndex
}

// NewMuxN builds an N-way multiplexer. Panics if wordCount < 1.
func NewMuxN(wordBits, wordCount int, creator *core.NodeCreator) *MuxN {
	if wordCount < 1 {
		panic("mux: MuxN needs at least 1 word")
	}

	if wordCount == 1 {
		nodes := creator.NewNodes(wordBits)
		return &MuxN{
			Inputs: [][]core.NodeIndex{nodes},
			Output: nodes,
			Select: nil,
		}
	}

	lowerSize := 1
	for lowerSize*2 < wordCount {
		lowerSize *= 2
	}
	upperSize := wordCount - lowerSize

	lower := NewMuxN(wordBits, lowerSize, creator)
	upper := NewMuxN(wordBits, upperSize, creator)
	top := NewMux(wordBits, creator)

	creator.LinkMany(lower.Output, top.A, core.StandardDelay)
	creator.LinkMany(upper.Output, top.B, core.StandardDelay)
	creator.LinkMany(lower.Select[:len(upper.Select)], upper.Select, core.StandardDelay)

	selectBits := append(append([]core.NodeIndex{}, lower.Select...), top.Select)
	inputs := append(append([][]core.NodeIndex{}, lower.Inputs...), upper.Inputs...)

	return &MuxN{
		Inputs: inputs,
		Output: top.Output,
		Select: selectBits,
	}
}
