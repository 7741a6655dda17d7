package decoder

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cjting.me/sim8086/cpu"
)

// Decode decodes the instruction at addr and moves c.IP past it. IP only
// moves after the whole instruction decoded; on error c is untouched.
// Branches are not followed.
func Decode(c *cpu.CPU, addr uint32) (Instruction, error) {
	inst, err := DecodeAt(c, addr)
	if err != nil {
		return nil, err
	}

	c.IP += uint16(inst.Len())
	return inst, nil
}

// DecodeAt decodes the instruction at addr without changing anything.
func DecodeAt(bus Bus, addr uint32) (Instruction, error) {
	r := newReader(bus, addr)
	firstByte := r.opcode()

	switch true {
	case isMov(firstByte):
		return decodeMov(r)
	case isLoadPointer(firstByte):
		return decodeLoadPointer(r)
	case isJumpCond(firstByte):
		return decodeJumpCond(r)
	case isLoop(firstByte):
		return decodeLoop(r)
	case isRet(firstByte):
		return decodeRet(r)
	case isInterrupt(firstByte):
		return decodeInterrupt(r)
	case isPortIO(firstByte):
		return decodePortIO(r)
	case isFlagOp(firstByte):
		return decodeFlagOp(r)
	case isPrefix(firstByte):
		return decodePrefix(r)
	case isAsciiAdjust(firstByte):
		return decodeAsciiAdjust(r)
	case isMisc(firstByte):
		return decodeMisc(r)
	}

	r.read()
	return nil, r.fail(ErrUnknownOpcode, "")
}

// Step decodes at CS:IP.
func Step(c *cpu.CPU, log logrus.FieldLogger) (Instruction, error) {
	addr := c.FetchAddress()
	fields := logrus.Fields{
		"cs":   fmt.Sprintf("%04x", c.CS),
		"ip":   fmt.Sprintf("%04x", c.IP),
		"addr": fmt.Sprintf("%05x", addr),
	}

	inst, err := Decode(c, addr)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("decode failed")
		return nil, err
	}

	fields["len"] = inst.Len()
	fields["inst"] = fmt.Sprintf("%T", inst)
	log.WithFields(fields).Debug("decoded")

	return inst, nil
}
