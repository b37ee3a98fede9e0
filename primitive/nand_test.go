package primitive_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/primitive"
	"github.com/holowire/logicsim/simtest"
)

var _ = Describe("Nand", func() {
	It("matches the standard NAND truth table", func() {
		simtest.Check(Default, func(creator *core.NodeCreator) ([]core.NodeIndex, []core.NodeIndex) {
			n := primitive.NewNand(creator)
			return []core.NodeIndex{n.A, n.B}, []core.NodeIndex{n.Output}
		}, []simtest.Case{
			{Inputs: []int{0, 0}, Outputs: []int{1}},
			{Inputs: []int{1, 0}, Outputs: []int{1}},
			{Inputs: []int{0, 1}, Outputs: []int{1}},
			{Inputs: []int{1, 1}, Outputs: []int{0}},
		})
	})
})
