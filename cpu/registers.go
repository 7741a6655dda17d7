package cpu

import "fmt"

// Registers is the 8086 register file. Flags live here too but nothing in
// the decoder touches them.
type Registers struct {
	AX, BX, CX, DX uint16

	CS, DS, ES, SS uint16

	SP, BP uint16
	SI, DI uint16

	IP uint16

	Flags Flags
}

func low(r uint16) byte  { return byte(r & 0x00ff) }
func high(r uint16) byte { return byte(r >> 8) }

// setLow and setHigh return the new value of the whole register
func setLow(r uint16, v byte) uint16 {
	return (r & 0xff00) | uint16(v)
}
func setHigh(r uint16, v byte) uint16 {
	return (r & 0x00ff) | (uint16(v) << 8)
}

func (r *Registers) AL() byte { return low(r.AX) }
func (r *Registers) AH() byte { return high(r.AX) }
func (r *Registers) BL() byte { return low(r.BX) }
func (r *Registers) BH() byte { return high(r.BX) }
func (r *Registers) CL() byte { return low(r.CX) }
func (r *Registers) CH() byte { return high(r.CX) }
func (r *Registers) DL() byte { return low(r.DX) }
func (r *Registers) DH() byte { return high(r.DX) }

func (r *Registers) SetAL(v byte) { r.AX = setLow(r.AX, v) }
func (r *Registers) SetAH(v byte) { r.AX = setHigh(r.AX, v) }
func (r *Registers) SetBL(v byte) { r.BX = setLow(r.BX, v) }
func (r *Registers) SetBH(v byte) { r.BX = setHigh(r.BX, v) }
func (r *Registers) SetCL(v byte) { r.CX = setLow(r.CX, v) }
func (r *Registers) SetCH(v byte) { r.CX = setHigh(r.CX, v) }
func (r *Registers) SetDL(v byte) { r.DX = setLow(r.DX, v) }
func (r *Registers) SetDH(v byte) { r.DX = setHigh(r.DX, v) }

func (r *Registers) String() string {
	return fmt.Sprintf(
		"ax=%04x bx=%04x cx=%04x dx=%04x sp=%04x bp=%04x si=%04x di=%04x cs=%04x ds=%04x es=%04x ss=%04x ip=%04x flags=%s",
		r.AX, r.BX, r.CX, r.DX, r.SP, r.BP, r.SI, r.DI,
		r.CS, r.DS, r.ES, r.SS, r.IP, r.Flags,
	)
}
