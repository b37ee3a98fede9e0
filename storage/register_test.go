package storage_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/storage"
)

var _ = Describe("Register", func() {
	It("stores a constant value on a clock pulse", func() {
		c := core.NewNodeCollection()
		creator := core.NewNodeCreator(c)

		reg := storage.NewRegister(8, creator)
		source := storage.NewConstantBits(storage.MakeBits(42, 8), creator)
		creator.LinkMany(source.Bits, reg.Data(), core.StandardDelay)

		Expect(c.Absorb(creator)).To(Succeed())

		c.Write(reg.Clock, core.High)
		c.PlayAll()
		c.Write(reg.Clock, core.Low)
		c.PlayAll()

		value, ok := reg.ReadUint64(c)
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(uint64(42)))
	})
})
