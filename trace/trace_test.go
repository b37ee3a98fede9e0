package trace_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/gate"
	"github.com/holowire/logicsim/primitive"
	"github.com/holowire/logicsim/trace"
)

var _ = Describe("Recorder", func() {
	It("records writes, events, and steps as a NOT gate settles", func() {
		c := core.NewNodeCollection()
		creator := core.NewNodeCreator(c)

		notGate := gate.NewNot(creator)
		pin := primitive.NewPin(creator)
		creator.Link(pin.Node, notGate.Input, core.StandardDelay)

		Expect(c.Absorb(creator)).To(Succeed())

		r := trace.NewRecorder()
		r.Attach(c)

		c.Write(pin.Node, core.High)
		c.PlayAll()

		Expect(r.Entries).NotTo(BeEmpty())

		var sawWrite, sawEvent bool
		for _, e := range r.Entries {
			switch e.Kind {
			case "write":
				sawWrite = true
			case "event":
				sawEvent = true
			}
		}
		Expect(sawWrite).To(BeTrue())
		Expect(sawEvent).To(BeTrue())
	})

	It("saves a rendered waveform to a file", func() {
		c := core.NewNodeCollection()
		creator := core.NewNodeCreator(c)

		notGate := gate.NewNot(creator)
		pin := primitive.NewPin(creator)
		creator.Link(pin.Node, notGate.Input, core.StandardDelay)

		Expect(c.Absorb(creator)).To(Succeed())

		r := trace.NewRecorder()
		r.Attach(c)

		c.Write(pin.Node, core.High)
		c.PlayAll()

		path := filepath.Join(GinkgoT().TempDir(), "waveform.txt")
		Expect(r.SaveWaveform(path)).To(Succeed())

		contents, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(contents)).To(ContainSubstring("Event Trace"))
	})
})
