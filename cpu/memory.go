package cpu

const (
	MemorySize  = 1 << 20
	AddressMask = MemorySize - 1
)

// Memory is the flat 1 MiB store. Every access is masked to 20 bits, so
// reads and writes past the top wrap around to address 0 like the real
// address bus does.
type Memory [MemorySize]byte

// PhysicalAddress turns seg:off into a 20-bit address.
func PhysicalAddress(segment, offset uint16) uint32 {
	return ((uint32(segment) << 4) + uint32(offset)) & AddressMask
}

func (m *Memory) Read8(addr uint32) byte {
	return m[addr&AddressMask]
}

// Read16 is little endian.
func (m *Memory) Read16(addr uint32) uint16 {
	lo := uint16(m.Read8(addr))
	hi := uint16(m.Read8(addr + 1))
	return (hi << 8) | lo
}

func (m *Memory) Write8(addr uint32, val byte) {
	m[addr&AddressMask] = val
}

func (m *Memory) Write16(addr uint32, val uint16) {
	m.Write8(addr, byte(val))
	m.Write8(addr+1, byte(val>>8))
}
