package decoder

// Prefixes decode as instructions of their own. The caller applies them to
// whatever comes next.
func isPrefix(b byte) bool {
	return b&0b11100111 == 0b00100110 || b == 0xf0 || b == 0xf2 || b == 0xf3
}

func decodePrefix(r *Reader) (Instruction, error) {
	firstByte := r.read()

	switch true {
	case firstByte&0b11100111 == 0b00100110:
		{
			seg, err := SegmentFromIndex(field(firstByte, 3, 2))
			if err != nil {
				return nil, r.fail(ErrInvalidOperand, "%v", err)
			}
			return SegOverride{Seg: seg, Size: r.size()}, nil
		}
	case firstByte == 0xf0:
		return Simple{Op: OpLock, Size: r.size()}, nil
	case firstByte == 0xf2:
		return Rep{Mode: RepNZ, Size: r.size()}, nil
	case firstByte == 0xf3:
		return Rep{Mode: RepZ, Size: r.size()}, nil
	}

	return nil, r.fail(ErrUnknownSubForm, "prefix")
}
