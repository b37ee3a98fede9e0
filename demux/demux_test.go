package demux_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/demux"
	"github.com/holowire/logicsim/simtest"
)

var _ = Describe("BitDemux", func() {
	It("routes input to A or B per select, gated by enable", func() {
		simtest.Check(Default, func(creator *core.NodeCreator) ([]core.NodeIndex, []core.NodeIndex) {
			d := demux.NewBitDemux(creator)
			return []core.NodeIndex{d.Enable, d.Select, d.Input}, []core.NodeIndex{d.OutputA, d.OutputB}
		}, []simtest.Case{
			{Inputs: []int{1, 0, 1}, Outputs: []int{1, 0}},
			{Inputs: []int{1, 0, 0}, Outputs: []int{0, 0}},
			{Inputs: []int{0, 0, 1}, Outputs: []int{0, 0}},
			{Inputs: []int{0, 1, 1}, Outputs: []int{0, 0}},
			{Inputs: []int{1, 1, 1}, Outputs: []int{0, 1}},
		})
	})
})

var _ = Describe("Demux", func() {
	It("routes a 4-bit word to A or B", func() {
		simtest.Check(Default, func(creator *core.NodeCreator) ([]core.NodeIndex, []core.NodeIndex) {
			d := demux.NewDemux(4, creator)

			var inputs []core.NodeIndex
			inputs = append(inputs, d.Enable, d.Select)
			inputs = append(inputs, d.Input...)

			var outputs []core.NodeIndex
			outputs = append(outputs, d.OutputA...)
			outputs = append(outputs, d.OutputB...)

			return inputs, outputs
		}, []simtest.Case{
			{Inputs: []int{1, 0, 1, 0, 0, 1}, Outputs: []int{1, 0, 0, 1, 0, 0, 0, 0}},
			{Inputs: []int{1, 1, 1, 0, 0, 1}, Outputs: []int{0, 0, 0, 0, 1, 0, 0, 1}},
			{Inputs: []int{0, 1, 1, 0, 0, 1}, Outputs: []int{0, 0, 0, 0, 0, 0, 0, 0}},
		})
	})
})

var _ = Describe("DemuxN", func() {
	It("routes a 4-bit word among 3 destinations", func() {
		simtest.Check(Default, func(creator *core.NodeCreator) ([]core.NodeIndex, []core.NodeIndex) {
			d := demux.NewDemuxN(4, 3, creator)

			var inputs []core.NodeIndex
			inputs = append(inputs, d.Enable)
			inputs = append(inputs, d.Select...)
			inputs = append(inputs, d.Input...)

			var outputs []core.NodeIndex
			for _, word := range d.Outputs {
				outputs = append(outputs, word...)
			}

			return inputs, outputs
		}, []simtest.Case{
			{Inputs: []int{1, 0, 0, 1, 0, 0, 1}, Outputs: []int{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}},
			{Inputs: []int{1, 0, 1, 1, 0, 0, 1}, Outputs: []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1}},
			{Inputs: []int{0, 0, 1, 1, 0, 0, 1}, Outputs: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		})
	})
})
