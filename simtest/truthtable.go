// Package simtest provides a truth-table assertion helper for testing
// composite gates: given a circuit builder and a table of input/output
// bit patterns, it drives each input pattern in turn into one
// NodeCollection that persists across the whole table (so sequential
// circuits keep their state between rows) and asserts the resulting
// outputs via gomega.
package simtest

import (
	"fmt"

	"github.com/onsi/gomega"

	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/primitive"
)

// Case is one row of a truth table: Inputs and Outputs are each 0 or 1,
// except an Outputs entry may be 2 to mean "non-binary" (Floating or
// Conflict) -- expected of rows that deliberately leave an input
// unconnected or contradictory.
type Case struct {
	Inputs  []int
	Outputs []int
}

// Check builds the circuit returned by build, pins its inputs, and
// checks every case against the circuit's outputs using g. build
// receives a fresh *core.NodeCreator and must return the input and
// output node handles in the order Cases' Inputs/Outputs are indexed.
func Check(g gomega.Gomega, build func(creator *core.NodeCreator) (inputs, outputs []core.NodeIndex), cases []Case) {
	c := core.NewNodeCollection()
	creator := core.NewNodeCreator(c)

	inputs, outputs := build(creator)

	pins := make([]*primitive.Pin, len(inputs))
	for i, in := range inputs {
		p := primitive.NewPin(creator)
		creator.Link(in, p.Node, core.StandardDelay)
		pins[i] = p
	}

	err := c.Absorb(creator)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	for caseNumber, tc := range cases {
		g.Expect(tc.Inputs).To(gomega.HaveLen(len(pins)), "case #%d: input count mismatch", caseNumber+1)
		g.Expect(tc.Outputs).To(gomega.HaveLen(len(outputs)), "case #%d: output count mismatch", caseNumber+1)

		for i, v := range tc.Inputs {
			g.Expect(v).To(gomega.Or(gomega.Equal(0), gomega.Equal(1)), "case #%d: input values must be 0 or 1", caseNumber+1)
			state := core.Low
			if v == 1 {
				state = core.High
			}
			c.Write(pins[i].Node, state)
		}

		c.PlayAll()

		actual := make([]int, len(outputs))
		for i, n := range outputs {
			switch c.Read(n) {
			case core.Low:
				actual[i] = 0
			case core.High:
				actual[i] = 1
			default:
				actual[i] = 2
			}
		}

		g.Expect(actual).To(gomega.Equal(tc.Outputs), fmt.Sprintf("case #%d: inputs %v", caseNumber+1, tc.Inputs))
	}
}
