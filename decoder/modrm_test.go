package decoder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cjting.me/sim8086/decoder"
)

var _ = Describe("ModRM", func() {
	It("should give the same result for the same byte", func() {
		for b := 0; b < 256; b++ {
			first := decoder.ParseModRM(byte(b))
			second := decoder.ParseModRM(byte(b))
			Expect(first).To(Equal(second))
		}
	})

	It("should split the reg and rm fields", func() {
		// 10 011 101
		m := decoder.ParseModRM(0b10011101)

		Expect(m.Reg).To(Equal(uint8(3)))
		Expect(m.RM).To(Equal(uint8(5)))
		Expect(m.IsRegister).To(BeFalse())
	})

	It("should decode mod=11 as a register operand", func() {
		for rm := 0; rm < 8; rm++ {
			m := decoder.ParseModRM(byte(0b11000000 | rm))

			Expect(m.IsRegister).To(BeTrue())
			Expect(m.RM).To(Equal(uint8(rm)))
			Expect(m.Disp).To(Equal(decoder.DispNone))
		}
	})

	It("should map mod and rm onto the 24 memory forms", func() {
		expected := [3][8]decoder.AddressingMode{
			{
				decoder.MemBXSI, decoder.MemBXDI, decoder.MemBPSI, decoder.MemBPDI,
				decoder.MemSI, decoder.MemDI, decoder.MemDirect, decoder.MemBX,
			},
			{
				decoder.MemBXSIDisp8, decoder.MemBXDIDisp8, decoder.MemBPSIDisp8, decoder.MemBPDIDisp8,
				decoder.MemSIDisp8, decoder.MemDIDisp8, decoder.MemBPDisp8, decoder.MemBXDisp8,
			},
			{
				decoder.MemBXSIDisp16, decoder.MemBXDIDisp16, decoder.MemBPSIDisp16, decoder.MemBPDIDisp16,
				decoder.MemSIDisp16, decoder.MemDIDisp16, decoder.MemBPDisp16, decoder.MemBXDisp16,
			},
		}

		seen := map[decoder.AddressingMode]bool{}
		for mod := 0; mod < 3; mod++ {
			for rm := 0; rm < 8; rm++ {
				m := decoder.ParseModRM(byte(mod<<6 | rm))

				Expect(m.IsRegister).To(BeFalse())
				Expect(m.Mode).To(Equal(expected[mod][rm]))
				Expect(m.Mode.Valid()).To(BeTrue())
				Expect(m.Disp).To(Equal(m.Mode.Displacement()))
				seen[m.Mode] = true
			}
		}
		Expect(seen).To(HaveLen(24))
	})

	It("should treat mod=00 rm=110 as a direct address", func() {
		m := decoder.ParseModRM(0b00000110)

		Expect(m.Mode).To(Equal(decoder.MemDirect))
		Expect(m.Disp).To(Equal(decoder.Disp16))
		Expect(m.Mode.Base()).To(Equal(decoder.NoRegister))
		Expect(m.Mode.Index()).To(Equal(decoder.NoRegister))
	})

	It("should keep bp as the base for the displaced forms", func() {
		Expect(decoder.ParseModRM(0b01000110).Mode).To(Equal(decoder.MemBPDisp8))
		Expect(decoder.MemBPDisp8.Base()).To(Equal(decoder.BP))
		Expect(decoder.MemBPDisp16.Base()).To(Equal(decoder.BP))
	})

	It("should report base and index registers", func() {
		Expect(decoder.MemBXSI.Base()).To(Equal(decoder.BX))
		Expect(decoder.MemBXSI.Index()).To(Equal(decoder.SI))
		Expect(decoder.MemBPDIDisp16.Base()).To(Equal(decoder.BP))
		Expect(decoder.MemBPDIDisp16.Index()).To(Equal(decoder.DI))
		Expect(decoder.MemSIDisp8.Base()).To(Equal(decoder.SI))
		Expect(decoder.MemSIDisp8.Index()).To(Equal(decoder.NoRegister))
	})

	It("should count displacement bytes", func() {
		Expect(decoder.DispNone.Bytes()).To(Equal(0))
		Expect(decoder.Disp8.Bytes()).To(Equal(1))
		Expect(decoder.Disp16.Bytes()).To(Equal(2))
	})
})
