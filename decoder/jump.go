package decoder

func isJumpCond(b byte) bool {
	return (b >> 4) == 0b0111
}

func decodeJumpCond(r *Reader) (Instruction, error) {
	firstByte := r.read()

	cond, err := ConditionFromIndex(firstByte - 0x70)
	if err != nil {
		return nil, r.fail(ErrUnknownSubForm, "%v", err)
	}
	disp := r.readInt8()

	return JumpCond{Cond: cond, Disp: disp, Size: r.size()}, nil
}

// E0-E3: the three loops and jcxz share the rel8 shape.
func isLoop(b byte) bool {
	return (b >> 2) == 0b111000
}

func decodeLoop(r *Reader) (Instruction, error) {
	firstByte := r.read()
	disp := r.readInt8()

	if firstByte == 0xe3 {
		return Jcxz{Disp: disp, Size: r.size()}, nil
	}

	cond, err := LoopConditionFromIndex(firstByte - 0xe0)
	if err != nil {
		return nil, r.fail(ErrUnknownSubForm, "%v", err)
	}

	return Loop{Cond: cond, Disp: disp, Size: r.size()}, nil
}

// C2, C3, CA, CB
func isRet(b byte) bool {
	return b&0b11110110 == 0b11000010
}

func decodeRet(r *Reader) (Instruction, error) {
	firstByte := r.read()
	far := bit(firstByte, 3)

	switch firstByte {
	case 0xc3, 0xcb:
		return Ret{Far: far, Size: r.size()}, nil
	case 0xc2, 0xca:
		adjust := r.readUint16()
		return RetAdjust{Far: far, Adjust: adjust, Size: r.size()}, nil
	}

	return nil, r.fail(ErrUnknownSubForm, "ret")
}
