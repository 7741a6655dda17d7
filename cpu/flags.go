package cpu

import "strings"

// Flags is the FLAGS word. Bit positions match the hardware layout; bits
// without a name are carried along untouched.
type Flags uint16

const (
	Carry     Flags = 0x0001
	Parity    Flags = 0x0004
	AuxCarry  Flags = 0x0010
	Zero      Flags = 0x0040
	Sign      Flags = 0x0080
	Trap      Flags = 0x0100
	Interrupt Flags = 0x0200
	Direction Flags = 0x0400
	Overflow  Flags = 0x0800
)

var flagLabels = []struct {
	flag  Flags
	label string
}{
	{Overflow, "O"},
	{Direction, "D"},
	{Interrupt, "I"},
	{Trap, "T"},
	{Sign, "S"},
	{Zero, "Z"},
	{AuxCarry, "A"},
	{Parity, "P"},
	{Carry, "C"},
}

func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

func (f *Flags) Set(mask Flags) {
	*f |= mask
}

func (f *Flags) Clear(mask Flags) {
	*f &^= mask
}

func (f *Flags) SetTo(mask Flags, on bool) {
	if on {
		f.Set(mask)
	} else {
		f.Clear(mask)
	}
}

// Word and SetWord move the register as an opaque 16-bit value, the way
// PUSHF/POPF see it.
func (f Flags) Word() uint16 {
	return uint16(f)
}

func (f *Flags) SetWord(w uint16) {
	*f = Flags(w)
}

func (f Flags) String() string {
	result := &strings.Builder{}

	for _, l := range flagLabels {
		if f.Has(l.flag) {
			result.WriteString(l.label)
		}
	}

	return result.String()
}
