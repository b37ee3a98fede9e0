package storage

import (
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/mux"
	"github.com/holowire/logicsim/primitive"
)

// ConstantBits is a word of independent ConstantBit sources, LSB-first.
type ConstantBits struct {
	Bits []core.NodeIndex
}

// MakeBits decodes value's low bitCount bits into a LSB-first bool
// slice, for use as NewConstantBits' content argument. Panics if
// bitCount > 64.
func MakeBits(value uint64, bitCount int) []bool {
	if bitCount > 64 {
		panic("storage: MakeBits supports at most 64 bits")
	}
	bits := make([]bool, bitCount)
	for i := range bits {
		bits[i] = value&(1<<uint(i)) != 0
	}
	return bits
}

// NewConstantBits builds one ConstantBit per entry of content.
func NewConstantBits(content []bool, creator *core.NodeCreator) *ConstantBits {
	bits := make([]core.NodeIndex, len(content))
	for i, on := range content {
		bits[i] = primitive.NewConstantBit(on, creator).Node
	}
	return &ConstantBits{Bits: bits}
}

// Rom is a read-only memory: an address-selected MuxN fed by one
// ConstantBits generator per word of content.
type Rom struct {
	Address []core.NodeIndex
	Output  []core.NodeIndex
}

// NewRom builds a ROM from content, a slice of equal-length LSB-first
// bit words (see MakeBits). Panics if content is empty.
func NewRom(content [][]bool, creator *core.NodeCreator) *Rom {
	wordCount := len(content)
	if wordCount == 0 {
		panic("storage: Rom needs at least 1 word of content")
	}
	wordBits := len(content[0])

	selector := mux.NewMuxN(wordBits, wordCount, creator)
	for i, word := range content {
		gen := NewConstantBits(word, creator)
		creator.LinkMany(gen.Bits, selector.Inputs[i], core.StandardDelay)
	}

	return &Rom{Address: selector.Select, Output: selector.Output}
}
