package decoder

// 27 daa, 2F das, 37 aaa, 3F aas; D4 aam and D5 aad carry a base byte.
func isAsciiAdjust(b byte) bool {
	return b&0b11100111 == 0b00100111 || b == 0xd4 || b == 0xd5
}

var decimalAdjustOps = [4]Op{OpDaa, OpDas, OpAaa, OpAas}

func decodeAsciiAdjust(r *Reader) (Instruction, error) {
	firstByte := r.read()

	switch true {
	case firstByte&0b11100111 == 0b00100111:
		return Simple{Op: decimalAdjustOps[field(firstByte, 3, 2)], Size: r.size()}, nil
	case firstByte == 0xd4:
		base := r.read()
		return AsciiAdjust{Op: OpAam, Base: base, Size: r.size()}, nil
	case firstByte == 0xd5:
		base := r.read()
		return AsciiAdjust{Op: OpAad, Base: base, Size: r.size()}, nil
	}

	return nil, r.fail(ErrUnknownSubForm, "ascii adjust")
}
