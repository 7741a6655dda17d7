package cpu

import "github.com/pkg/errors"

const (
	DefaultLoadSegment uint16 = 0x1000
	DefaultLoadOffset  uint16 = 0x0100

	resetSP uint16 = 0xfffe
)

var ErrProgramTooLarge = errors.New("program does not fit in memory")

// CPU is one emulated machine. Instances share nothing, so several can run
// side by side; a single instance is not safe for concurrent use.
type CPU struct {
	Registers
	Memory *Memory
}

func New() *CPU {
	c := &CPU{Memory: new(Memory)}
	c.SP = resetSP
	return c
}

func (c *CPU) Read8(addr uint32) byte { return c.Memory.Read8(addr) }
func (c *CPU) Read16(addr uint32) uint16 { return c.Memory.Read16(addr) }
func (c *CPU) Write8(addr uint32, val byte) { c.Memory.Write8(addr, val) }
func (c *CPU) Write16(addr uint32, val uint16) { c.Memory.Write16(addr, val) }

// FetchAddress is the physical address of CS:IP.
func (c *CPU) FetchAddress() uint32 {
	return PhysicalAddress(c.CS, c.IP)
}

func (c *CPU) Push(val uint16) {
	c.SP -= 2
	c.Write16(PhysicalAddress(c.SS, c.SP), val)
}

func (c *CPU) Pop() uint16 {
	val := c.Read16(PhysicalAddress(c.SS, c.SP))
	c.SP += 2
	return val
}

// LoadCOM copies a flat program image to segment:offset and points every
// segment register and IP at it, the way DOS starts a .com file.
func (c *CPU) LoadCOM(program []byte, segment, offset uint16) error {
	if len(program) > MemorySize {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes", len(program))
	}

	base := PhysicalAddress(segment, offset)
	for i, b := range program {
		c.Write8(base+uint32(i), b)
	}

	c.IP = offset
	c.CS = segment
	c.DS = segment
	c.ES = segment
	c.SS = segment

	return nil
}
