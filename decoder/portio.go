package decoder

// E4-E7 and EC-EF. Bit 3 picks the DX form, bit 1 the direction and bit 0
// the width.
func isPortIO(b byte) bool {
	return b&0b11110100 == 0b11100100
}

func decodePortIO(r *Reader) (Instruction, error) {
	firstByte := r.read()

	acc := gpRegister(0, bit(firstByte, 0))
	viaDX := bit(firstByte, 3)
	out := bit(firstByte, 1)

	var port uint8
	if !viaDX {
		port = r.read()
	}

	if out {
		return Out{Acc: acc, Port: port, ViaDX: viaDX, Size: r.size()}, nil
	}
	return In{Acc: acc, Port: port, ViaDX: viaDX, Size: r.size()}, nil
}
