package decoder

// Bus is where instruction bytes come from. Addresses are physical;
// implementations wrap them to their own size instead of failing.
type Bus interface {
	Read8(addr uint32) byte
}

// Reader walks the bytes of one instruction. Every read is at an offset
// from the fetch address, so nothing outside the reader moves while an
// instruction is being decoded; idx ends up as the instruction length.
// Each address is fetched from the bus once and kept in seen.
type Reader struct {
	bus  Bus
	addr uint32
	idx  int
	seen []byte
}

func newReader(bus Bus, addr uint32) *Reader {
	return &Reader{bus: bus, addr: addr}
}

func (r *Reader) at(offset int) byte {
	for len(r.seen) <= offset {
		r.seen = append(r.seen, r.bus.Read8(r.addr+uint32(len(r.seen))))
	}
	return r.seen[offset]
}

// opcode re-reads the first byte without moving the cursor.
func (r *Reader) opcode() byte {
	return r.at(0)
}

func (r *Reader) read() byte {
	result := r.at(r.idx)
	r.idx += 1
	return result
}

// little endian
func (r *Reader) readUint16() uint16 {
	low := uint16(r.read())
	high := uint16(r.read())
	return (high << 8) | low
}

func (r *Reader) readInt16() int16 {
	return int16(r.readUint16())
}

func (r *Reader) readInt8() int8 {
	return int8(r.read())
}

func (r *Reader) readImmediate(wide bool) Immediate {
	if wide {
		return Imm16(r.readUint16())
	}
	return Imm8(r.read())
}

// readModRM reads a ModR/M byte and any displacement after it. Register
// operands come out as general registers of the given width.
func (r *Reader) readModRM(wide bool) (ModRM, RM) {
	m := ParseModRM(r.read())

	if m.IsRegister {
		return m, RegOperand(gpRegister(m.RM, wide))
	}

	var disp int16
	switch m.Disp {
	case Disp8:
		disp = int16(r.readInt8())
	case Disp16:
		disp = r.readInt16()
	}

	return m, MemOperand(m.Mode, disp)
}

// consumed returns the bytes decoding saw so far, at least the opcode.
func (r *Reader) consumed() []byte {
	n := r.idx
	if n == 0 {
		n = 1
	}

	r.at(n - 1)

	result := make([]byte, n)
	copy(result, r.seen)
	return result
}

func (r *Reader) size() Size {
	return Size(r.idx)
}
