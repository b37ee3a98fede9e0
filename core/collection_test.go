package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/primitive"
)

// passthrough is a minimal Element that copies In's state to Out on
// every Step -- just enough to exercise Absorb/Link/Play without
// depending on any other package.
type passthrough struct {
	In, Out core.NodeIndex
}

func newPassthrough(creator *core.NodeCreator) *passthrough {
	p := &passthrough{In: creator.NewNode(), Out: creator.NewNode()}
	creator.AddElement(p)
	return p
}

func (p *passthrough) Nodes() []core.NodeIndex { return []core.NodeIndex{p.In, p.Out} }

func (p *passthrough) Step(c *core.NodeCollection) {
	c.Write(p.Out, c.Read(p.In))
}

var _ = Describe("NodeCollection", func() {
	var (
		c       *core.NodeCollection
		creator *core.NodeCreator
	)

	BeforeEach(func() {
		c = core.NewNodeCollection()
		creator = core.NewNodeCreator(c)
	})

	Describe("Write", func() {
		It("is a no-op when writing a node's existing state", func() {
			n := creator.NewNode()
			Expect(c.Absorb(creator)).To(Succeed())

			c.Write(n, core.Low)
			c.PlayAll()

			Expect(c.PlayAll()).To(Equal(0))
			c.Write(n, core.Low)
			Expect(c.PlayAll()).To(Equal(0), "writing a node's already-current state must not enqueue an event")
		})

		It("propagates across a link after exactly one StandardDelay", func() {
			a := creator.NewNode()
			b := creator.NewNode()
			creator.Link(a, b, core.StandardDelay)
			Expect(c.Absorb(creator)).To(Succeed())

			c.Write(a, core.High)
			c.PlayAll()

			Expect(c.Read(b)).To(Equal(core.High))
			Expect(c.CurrentTick()).To(Equal(uint64(core.StandardDelay)))
		})
	})

	Describe("WriteLater", func() {
		It("posts an event for a delayed write", func() {
			n := creator.NewNode()
			Expect(c.Absorb(creator)).To(Succeed())

			c.WriteLater(n, core.Low, 0)
			Expect(c.PlayAll()).To(BeNumerically(">", 0))
		})
	})

	Describe("Absorb", func() {
		It("reports a ConstructionError when two elements claim the same node", func() {
			shared := creator.NewNode()
			creator.AddElement(&passthrough{In: shared, Out: creator.NewNode()})
			creator.AddElement(&passthrough{In: shared, Out: creator.NewNode()})

			err := c.Absorb(creator)
			Expect(err).To(HaveOccurred())

			var constructionErr *core.ConstructionError
			Expect(err).To(BeAssignableToTypeOf(constructionErr))
		})

		It("primes every newly-absorbed element with one Step call", func() {
			// A ConstantBit has nothing upstream of it -- without Absorb
			// priming its Step, it would never post the event that
			// actually drives its node, and Read would see no influence
			// at all rather than the constant's value.
			bit := primitive.NewConstantBit(true, creator)
			Expect(c.Absorb(creator)).To(Succeed())
			c.PlayAll()

			Expect(c.Read(bit.Node)).To(Equal(core.High))
		})
	})

	Describe("Play / PlayAll", func() {
		It("is deterministic across runs of the same construction", func() {
			a := creator.NewNode()
			b := creator.NewNode()
			creator.Link(a, b, core.StandardDelay)
			Expect(c.Absorb(creator)).To(Succeed())

			c.Write(a, core.High)
			firstRunCount := c.PlayAll()
			firstRead := c.Read(b)

			c2 := core.NewNodeCollection()
			creator2 := core.NewNodeCreator(c2)
			a2 := creator2.NewNode()
			b2 := creator2.NewNode()
			creator2.Link(a2, b2, core.StandardDelay)
			Expect(c2.Absorb(creator2)).To(Succeed())
			c2.Write(a2, core.High)
			secondRunCount := c2.PlayAll()

			Expect(secondRunCount).To(Equal(firstRunCount))
			Expect(c2.Read(b2)).To(Equal(firstRead))
		})

		It("is idempotent once the queue is quiescent", func() {
			n := creator.NewNode()
			Expect(c.Absorb(creator)).To(Succeed())

			c.Write(n, core.High)
			c.PlayAll()
			Expect(c.PlayAll()).To(Equal(0))
		})
	})
})
