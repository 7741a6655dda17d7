package decoder

var miscOps = map[byte]Op{
	0x90: OpNop,
	0x98: OpCbw,
	0x99: OpCwd,
	0x9b: OpWait,
	0x9c: OpPushf,
	0x9d: OpPopf,
	0x9e: OpSahf,
	0x9f: OpLahf,
	0xd7: OpXlat,
	0xf4: OpHlt,
}

func isMisc(b byte) bool {
	_, ok := miscOps[b]
	return ok
}

func decodeMisc(r *Reader) (Instruction, error) {
	op, ok := miscOps[r.read()]
	if !ok {
		return nil, r.fail(ErrUnknownSubForm, "misc")
	}

	return Simple{Op: op, Size: r.size()}, nil
}
