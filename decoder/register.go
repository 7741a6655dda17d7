package decoder

import "github.com/pkg/errors"

// Register names a general purpose register, 8 or 16 bits wide.
type Register uint8

const (
	AL Register = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI

	NoRegister Register = 0xff
)

// registerOrder is the hardware numbering: reg/rm fields and the low bits
// of B0-BF select from the first half for byte operands and from the second
// half for word operands. Lookups go through this table only.
var registerOrder = [16]Register{
	AL, CL, DL, BL, AH, CH, DH, BH,
	AX, CX, DX, BX, SP, BP, SI, DI,
}

var registerNames = map[Register]string{
	AL: "al", CL: "cl", DL: "dl", BL: "bl",
	AH: "ah", CH: "ch", DH: "dh", BH: "bh",
	AX: "ax", CX: "cx", DX: "dx", BX: "bx",
	SP: "sp", BP: "bp", SI: "si", DI: "di",
}

// RegisterFromIndex maps 0..15 onto the table above.
func RegisterFromIndex(idx uint8) (Register, error) {
	if int(idx) >= len(registerOrder) {
		return NoRegister, errors.Errorf("register index out of range: %d", idx)
	}
	return registerOrder[idx], nil
}

// gpRegister resolves a 3-bit reg/rm field.
func gpRegister(field uint8, wide bool) Register {
	idx := field & 0b111
	if wide {
		idx += 8
	}
	return registerOrder[idx]
}

func (r Register) Wide() bool {
	return r >= AX && r <= DI
}

func (r Register) String() string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return "none"
}

// SegmentRegister is numbered separately from the general registers.
type SegmentRegister uint8

const (
	ES SegmentRegister = iota
	CS
	SS
	DS
)

var segmentOrder = [4]SegmentRegister{ES, CS, SS, DS}

var segmentNames = []string{"es", "cs", "ss", "ds"}

func SegmentFromIndex(idx uint8) (SegmentRegister, error) {
	if int(idx) >= len(segmentOrder) {
		return 0, errors.Errorf("segment register index out of range: %d", idx)
	}
	return segmentOrder[idx], nil
}

func (s SegmentRegister) String() string {
	if int(s) < len(segmentNames) {
		return segmentNames[s]
	}
	return "none"
}
