package decoder

// CC-CF
func isInterrupt(b byte) bool {
	return (b >> 2) == 0b110011
}

func decodeInterrupt(r *Reader) (Instruction, error) {
	firstByte := r.read()

	switch firstByte {
	case 0xcc:
		return Int3{Size: r.size()}, nil
	case 0xcd:
		vector := r.read()
		return Int{Vector: vector, Size: r.size()}, nil
	case 0xce:
		return Into{Size: r.size()}, nil
	case 0xcf:
		return Simple{Op: OpIret, Size: r.size()}, nil
	}

	return nil, r.fail(ErrUnknownSubForm, "interrupt")
}
