package decoder

var flagOps = map[byte]Op{
	0xf5: OpCmc,
	0xf8: OpClc,
	0xf9: OpStc,
	0xfa: OpCli,
	0xfb: OpSti,
	0xfc: OpCld,
	0xfd: OpStd,
}

func isFlagOp(b byte) bool {
	_, ok := flagOps[b]
	return ok
}

func decodeFlagOp(r *Reader) (Instruction, error) {
	op, ok := flagOps[r.read()]
	if !ok {
		return nil, r.fail(ErrUnknownSubForm, "flag op")
	}

	return Simple{Op: op, Size: r.size()}, nil
}
