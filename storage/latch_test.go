package storage_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/simtest"
	"github.com/holowire/logicsim/storage"
)

var _ = Describe("NotSRLatch", func() {
	It("sets, holds, resets, and holds again", func() {
		simtest.Check(Default, func(creator *core.NodeCreator) ([]core.NodeIndex, []core.NodeIndex) {
			l := storage.NewNotSRLatch(creator)
			return []core.NodeIndex{l.NotS, l.NotR}, []core.NodeIndex{l.Q, l.NotQ}
		}, []simtest.Case{
			{Inputs: []int{0, 1}, Outputs: []int{1, 0}}, // set
			{Inputs: []int{1, 1}, Outputs: []int{1, 0}}, // hold
			{Inputs: []int{1, 0}, Outputs: []int{0, 1}}, // reset
			{Inputs: []int{1, 1}, Outputs: []int{0, 1}}, // hold
		})
	})
})

var _ = Describe("DFlipFlop", func() {
	It("captures Data on a rising Clock edge and holds it while Clock is Low", func() {
		simtest.Check(Default, func(creator *core.NodeCreator) ([]core.NodeIndex, []core.NodeIndex) {
			d := storage.NewDFlipFlop(creator)
			return []core.NodeIndex{d.Clock, d.Data}, []core.NodeIndex{d.Q, d.NotQ}
		}, []simtest.Case{
			{Inputs: []int{1, 1}, Outputs: []int{1, 0}},
			{Inputs: []int{0, 0}, Outputs: []int{1, 0}},
			{Inputs: []int{1, 0}, Outputs: []int{0, 1}},
			{Inputs: []int{0, 1}, Outputs: []int{0, 1}},
		})
	})
})
