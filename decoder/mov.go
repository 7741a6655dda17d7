package decoder

func isMov(b byte) bool {
	return (b>>2) == 0b100010 || // 88-8B
		b == 0x8c || b == 0x8e ||
		(b>>2) == 0b101000 || // A0-A3
		(b>>4) == 0b1011 || // B0-BF
		(b>>1) == 0b1100011 // C6-C7
}

func decodeMov(r *Reader) (Instruction, error) {
	firstByte := r.read()

	switch true {
	// immediate to register
	case (firstByte >> 4) == 0b1011:
		{
			reg, err := RegisterFromIndex(firstByte - 0xb0)
			if err != nil {
				return nil, r.fail(ErrInvalidOperand, "%v", err)
			}
			imm := r.readImmediate(reg.Wide())

			return MovImmToReg{Dest: reg, Imm: imm, Size: r.size()}, nil
		}
	// memory to accumulator and back
	case (firstByte >> 2) == 0b101000:
		{
			wide := bit(firstByte, 0)
			toAcc := !bit(firstByte, 1)
			addr := r.readUint16()

			return MovAcc{Acc: gpRegister(0, wide), Addr: addr, ToAcc: toAcc, Size: r.size()}, nil
		}
	// register/memory to/from register
	case (firstByte >> 2) == 0b100010:
		{
			wide := bit(firstByte, 0)
			toReg := bit(firstByte, 1)
			m, rm := r.readModRM(wide)

			return MovRegRM{Reg: gpRegister(m.Reg, wide), RM: rm, ToReg: toReg, Size: r.size()}, nil
		}
	// segment register to/from register/memory
	case firstByte == 0x8c || firstByte == 0x8e:
		{
			m, rm := r.readModRM(true)
			seg, err := SegmentFromIndex(m.Reg)
			if err != nil {
				return nil, r.fail(ErrInvalidOperand, "%v", err)
			}

			return MovSegRM{Seg: seg, RM: rm, ToSeg: firstByte == 0x8e, Size: r.size()}, nil
		}
	// immediate to register/memory
	case (firstByte >> 1) == 0b1100011:
		{
			wide := bit(firstByte, 0)
			m, rm := r.readModRM(wide)
			if m.Reg != 0 {
				return nil, r.fail(ErrUnknownSubForm, "reg field /%d", m.Reg)
			}
			imm := r.readImmediate(wide)

			return MovImmToRM{RM: rm, Imm: imm, Size: r.size()}, nil
		}
	}

	return nil, r.fail(ErrUnknownSubForm, "mov")
}

func isLoadPointer(b byte) bool {
	return b == 0x8d || b == 0xc4 || b == 0xc5
}

// decodeLoadPointer handles LEA, LES and LDS, which all take a word
// register and a memory operand.
func decodeLoadPointer(r *Reader) (Instruction, error) {
	firstByte := r.read()

	var op Op
	switch firstByte {
	case 0x8d:
		op = OpLea
	case 0xc4:
		op = OpLes
	case 0xc5:
		op = OpLds
	default:
		return nil, r.fail(ErrUnknownSubForm, "load pointer")
	}

	m, rm := r.readModRM(true)
	if m.IsRegister {
		return nil, r.fail(ErrInvalidOperand, "%v needs a memory operand", op)
	}

	return LoadPointer{Op: op, Dest: gpRegister(m.Reg, true), Src: rm, Size: r.size()}, nil
}
