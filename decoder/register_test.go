package decoder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cjting.me/sim8086/decoder"
)

var _ = Describe("Register tables", func() {
	It("should number general registers in hardware order", func() {
		order := []decoder.Register{
			decoder.AL, decoder.CL, decoder.DL, decoder.BL,
			decoder.AH, decoder.CH, decoder.DH, decoder.BH,
			decoder.AX, decoder.CX, decoder.DX, decoder.BX,
			decoder.SP, decoder.BP, decoder.SI, decoder.DI,
		}

		for i, expected := range order {
			reg, err := decoder.RegisterFromIndex(uint8(i))
			Expect(err).NotTo(HaveOccurred())
			Expect(reg).To(Equal(expected))
			Expect(reg.Wide()).To(Equal(i >= 8))
		}

		_, err := decoder.RegisterFromIndex(16)
		Expect(err).To(HaveOccurred())
	})

	It("should name registers", func() {
		Expect(decoder.AH.String()).To(Equal("ah"))
		Expect(decoder.DI.String()).To(Equal("di"))
		Expect(decoder.NoRegister.String()).To(Equal("none"))
	})

	It("should number segment registers separately", func() {
		order := []decoder.SegmentRegister{decoder.ES, decoder.CS, decoder.SS, decoder.DS}

		for i, expected := range order {
			seg, err := decoder.SegmentFromIndex(uint8(i))
			Expect(err).NotTo(HaveOccurred())
			Expect(seg).To(Equal(expected))
		}

		_, err := decoder.SegmentFromIndex(4)
		Expect(err).To(HaveOccurred())
		Expect(decoder.SS.String()).To(Equal("ss"))
	})

	It("should index the 16 jump conditions", func() {
		labels := []string{
			"jo", "jno", "jb", "jnb", "jz", "jnz", "jbe", "jnbe",
			"js", "jns", "jp", "jnp", "jl", "jnl", "jle", "jnle",
		}

		for i, label := range labels {
			cond, err := decoder.ConditionFromIndex(uint8(i))
			Expect(err).NotTo(HaveOccurred())
			Expect(cond.String()).To(Equal(label))
		}

		_, err := decoder.ConditionFromIndex(16)
		Expect(err).To(HaveOccurred())
	})

	It("should index the 3 loop conditions", func() {
		for i, expected := range []decoder.LoopCondition{decoder.LoopNZ, decoder.LoopZ, decoder.LoopAlways} {
			cond, err := decoder.LoopConditionFromIndex(uint8(i))
			Expect(err).NotTo(HaveOccurred())
			Expect(cond).To(Equal(expected))
		}

		_, err := decoder.LoopConditionFromIndex(3)
		Expect(err).To(HaveOccurred())
	})
})
