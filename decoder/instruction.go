package decoder

// Instruction is a decoded instruction. The set of implementations is
// closed: each variant below embeds Size for its length and carries its
// own marker method.
// Values are comparable with == and never change after decoding.
type Instruction interface {
	// Len is the encoded length in bytes.
	Len() int
	instruction()
}

// Size is the encoded length of an instruction.
type Size uint8

func (s Size) Len() int { return int(s) }

// Immediate is an 8 or 16 bit operand taken from the instruction stream.
type Immediate struct {
	Value uint16
	Wide  bool
}

func Imm8(v byte) Immediate { return Immediate{Value: uint16(v)} }
func Imm16(v uint16) Immediate { return Immediate{Value: v, Wide: true} }

// RM is a decoded r/m operand: a register, or a memory form plus its
// displacement. For MemDirect, Disp holds the 16-bit address.
type RM struct {
	IsRegister bool
	Reg        Register
	Mode       AddressingMode
	Disp       int16
}

func RegOperand(r Register) RM {
	return RM{IsRegister: true, Reg: r}
}

func MemOperand(mode AddressingMode, disp int16) RM {
	return RM{Reg: NoRegister, Mode: mode, Disp: disp}
}

// Address is the direct address of a MemDirect operand.
func (rm RM) Address() uint16 {
	return uint16(rm.Disp)
}

// MovImmToReg is B0-BF: mov reg, imm.
type MovImmToReg struct {
	Dest Register
	Imm  Immediate
	Size
}

// MovAcc is A0-A3: mov al/ax, [addr] and the reverse. Addr is an offset;
// the segment is chosen at execution time (DS unless overridden).
type MovAcc struct {
	Acc   Register
	Addr  uint16
	ToAcc bool
	Size
}

// MovRegRM is 88-8B. ToReg is the d bit; the width is Reg's width.
type MovRegRM struct {
	Reg   Register
	RM    RM
	ToReg bool
	Size
}

// MovSegRM is 8C (ToSeg false) and 8E (ToSeg true). Register operands are
// always 16 bits.
type MovSegRM struct {
	Seg   SegmentRegister
	RM    RM
	ToSeg bool
	Size
}

// MovImmToRM is C6/C7. Imm.Wide gives the operand width.
type MovImmToRM struct {
	RM  RM
	Imm Immediate
	Size
}

// LoadPointer is LEA (8D), LES (C4) and LDS (C5). Src is always memory.
type LoadPointer struct {
	Op   Op
	Dest Register
	Src  RM
	Size
}

// JumpCond is the short conditional jump family 70-7F.
type JumpCond struct {
	Cond Condition
	Disp int8
	Size
}

type Jcxz struct {
	Disp int8
	Size
}

// Loop is E0-E2.
type Loop struct {
	Cond LoopCondition
	Disp int8
	Size
}

// Ret is C3 (near) and CB (far).
type Ret struct {
	Far bool
	Size
}

// RetAdjust is C2/CA: return and release Adjust bytes of stack.
type RetAdjust struct {
	Far    bool
	Adjust uint16
	Size
}

type Int3 struct {
	Size
}

type Int struct {
	Vector uint8
	Size
}

type Into struct {
	Size
}

// In reads a port into Acc. With ViaDX the port number is in DX and Port
// is unused.
type In struct {
	Acc   Register
	Port  uint8
	ViaDX bool
	Size
}

// Out writes Acc to a port, see In.
type Out struct {
	Acc   Register
	Port  uint8
	ViaDX bool
	Size
}

// Simple is any instruction without operands.
type Simple struct {
	Op Op
	Size
}

// SegOverride is one of the prefixes 26, 2E, 36, 3E. It decodes as an
// instruction of its own.
type SegOverride struct {
	Seg SegmentRegister
	Size
}

// Rep is the F2/F3 prefix.
type Rep struct {
	Mode RepMode
	Size
}

// AsciiAdjust is AAM (D4) or AAD (D5) with its base byte, 10 for the
// documented forms.
type AsciiAdjust struct {
	Op   Op
	Base uint8
	Size
}

func (MovImmToReg) instruction() {}
func (MovAcc) instruction() {}
func (MovRegRM) instruction() {}
func (MovSegRM) instruction() {}
func (MovImmToRM) instruction() {}
func (LoadPointer) instruction() {}
func (JumpCond) instruction() {}
func (Jcxz) instruction() {}
func (Loop) instruction() {}
func (Ret) instruction() {}
func (RetAdjust) instruction() {}
func (Int3) instruction() {}
func (Int) instruction() {}
func (Into) instruction() {}
func (In) instruction() {}
func (Out) instruction() {}
func (Simple) instruction() {}
func (SegOverride) instruction() {}
func (Rep) instruction() {}
func (AsciiAdjust) instruction() {}
