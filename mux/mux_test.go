package mux_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/mux"
	"github.com/holowire/logicsim/simtest"
)

var _ = Describe("BitMux", func() {
	It("selects A when select is Low and B when select is High", func() {
		simtest.Check(Default, func(creator *core.NodeCreator) ([]core.NodeIndex, []core.NodeIndex) {
			m := mux.NewBitMux(creator)
			return []core.NodeIndex{m.Select, m.A, m.B}, []core.NodeIndex{m.Output}
		}, []simtest.Case{
			{Inputs: []int{0, 1, 0}, Outputs: []int{1}},
			{Inputs: []int{0, 0, 1}, Outputs: []int{0}},
			{Inputs: []int{1, 1, 0}, Outputs: []int{0}},
			{Inputs: []int{1, 0, 1}, Outputs: []int{1}},
		})
	})
})

var _ = Describe("MuxN", func() {
	It("selects among 3 four-bit words", func() {
		simtest.Check(Default, func(creator *core.NodeCreator) ([]core.NodeIndex, []core.NodeIndex) {
			m := mux.NewMuxN(4, 3, creator)

			var inputs []core.NodeIndex
			inputs = append(inputs, m.Select...)
			for _, word := range m.Inputs {
				inputs = append(inputs, word...)
			}

			return inputs, m.Output
		}, []simtest.Case{
			{Inputs: []int{0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1}, Outputs: []int{1, 1, 1, 1}},
			{Inputs: []int{1, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1}, Outputs: []int{1, 0, 0, 0}},
			{Inputs: []int{0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1}, Outputs: []int{0, 1, 0, 1}},
		})
	})
})
