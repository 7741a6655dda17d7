package decoder

// DisplacementMode is how many displacement bytes follow a ModR/M byte.
type DisplacementMode uint8

const (
	DispNone DisplacementMode = iota
	Disp8
	Disp16
)

func (d DisplacementMode) Bytes() int {
	switch d {
	case Disp8:
		return 1
	case Disp16:
		return 2
	}
	return 0
}

// AddressingMode is one of the 24 memory forms of the 8086, numbered
// mod*8 + rm. MemDirect takes the slot that would otherwise be [bp] with no
// displacement.
type AddressingMode uint8

const (
	MemBXSI AddressingMode = iota
	MemBXDI
	MemBPSI
	MemBPDI
	MemSI
	MemDI
	MemDirect
	MemBX

	MemBXSIDisp8
	MemBXDIDisp8
	MemBPSIDisp8
	MemBPDIDisp8
	MemSIDisp8
	MemDIDisp8
	MemBPDisp8
	MemBXDisp8

	MemBXSIDisp16
	MemBXDIDisp16
	MemBPSIDisp16
	MemBPDIDisp16
	MemSIDisp16
	MemDIDisp16
	MemBPDisp16
	MemBXDisp16

	addressingModes
)

// effective address terms for rm = 0..7
var baseIndex = [8][2]Register{
	{BX, SI},
	{BX, DI},
	{BP, SI},
	{BP, DI},
	{SI, NoRegister},
	{DI, NoRegister},
	{BP, NoRegister},
	{BX, NoRegister},
}

var baseIndexNames = []string{"bx+si", "bx+di", "bp+si", "bp+di", "si", "di", "bp", "bx"}

func (m AddressingMode) Valid() bool {
	return m < addressingModes
}

func (m AddressingMode) Direct() bool {
	return m == MemDirect
}

func (m AddressingMode) Base() Register {
	if m.Direct() || !m.Valid() {
		return NoRegister
	}
	return baseIndex[m%8][0]
}

func (m AddressingMode) Index() Register {
	if m.Direct() || !m.Valid() {
		return NoRegister
	}
	return baseIndex[m%8][1]
}

func (m AddressingMode) Displacement() DisplacementMode {
	switch {
	case m.Direct():
		return Disp16
	case m >= MemBXSIDisp16:
		return Disp16
	case m >= MemBXSIDisp8:
		return Disp8
	}
	return DispNone
}

func (m AddressingMode) String() string {
	if !m.Valid() {
		return "invalid"
	}
	if m.Direct() {
		return "[disp16]"
	}

	name := baseIndexNames[m%8]
	switch m.Displacement() {
	case Disp8:
		return "[" + name + "+disp8]"
	case Disp16:
		return "[" + name + "+disp16]"
	}
	return "[" + name + "]"
}

// ModRM is a decoded ModR/M byte. Reg is the middle field; whether it names
// a register, a segment register or an opcode extension depends on the
// opcode. When IsRegister is set RM holds the rm field, otherwise Mode is
// the memory form and Disp says how many displacement bytes follow.
type ModRM struct {
	Reg        uint8
	Disp       DisplacementMode
	IsRegister bool
	RM         uint8
	Mode       AddressingMode
}

// ParseModRM has no side effects; the same byte always gives the same
// result.
func ParseModRM(b byte) ModRM {
	mod := field(b, 6, 2)
	reg := field(b, 3, 3)
	rm := field(b, 0, 3)

	result := ModRM{Reg: reg, RM: rm}

	switch mod {
	case 0b11:
		{
			result.IsRegister = true
			result.Disp = DispNone
		}
	case 0b00:
		{
			if rm == 0b110 {
				result.Mode = MemDirect
				result.Disp = Disp16
			} else {
				result.Mode = AddressingMode(rm)
				result.Disp = DispNone
			}
		}
	case 0b01:
		{
			result.Mode = AddressingMode(8 + rm)
			result.Disp = Disp8
		}
	case 0b10:
		{
			result.Mode = AddressingMode(16 + rm)
			result.Disp = Disp16
		}
	}

	return result
}
