package decoder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"cjting.me/sim8086/decoder"
)

var _ = Describe("Step", func() {
	var (
		logger *logrus.Logger
		hook   *test.Hook
	)

	BeforeEach(func() {
		logger, hook = test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
	})

	It("should decode at CS:IP and log the instruction", func() {
		c := load(0xcd, 0x21, 0xf4)

		inst, err := decoder.Step(c, logger)

		Expect(err).NotTo(HaveOccurred())
		Expect(inst).To(Equal(decoder.Int{Vector: 0x21, Size: 2}))
		Expect(c.IP).To(Equal(uint16(0x102)))

		entry := hook.LastEntry()
		Expect(entry).NotTo(BeNil())
		Expect(entry.Level).To(Equal(logrus.DebugLevel))
		Expect(entry.Data).To(HaveKeyWithValue("addr", "10100"))
		Expect(entry.Data).To(HaveKeyWithValue("len", 2))
		Expect(entry.Data).To(HaveKeyWithValue("inst", "decoder.Int"))

		inst, err = decoder.Step(c, logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst).To(Equal(decoder.Simple{Op: decoder.OpHlt, Size: 1}))
		Expect(c.IP).To(Equal(uint16(0x103)))
		Expect(hook.AllEntries()).To(HaveLen(2))
	})

	It("should log and return decode errors", func() {
		c := load(0x0f)

		inst, err := decoder.Step(c, logger)

		Expect(inst).To(BeNil())
		Expect(err).To(MatchError(decoder.ErrUnknownOpcode))
		Expect(c.IP).To(Equal(uint16(0x100)))

		entry := hook.LastEntry()
		Expect(entry.Level).To(Equal(logrus.ErrorLevel))
		Expect(entry.Data).To(HaveKey(logrus.ErrorKey))
		Expect(entry.Data).To(HaveKeyWithValue("ip", "0100"))
	})
})
