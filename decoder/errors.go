package decoder

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownOpcode means no family claims the opcode byte.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrUnknownSubForm means a family matched but has no decoding for
	// this exact encoding.
	ErrUnknownSubForm = errors.New("unknown sub-form")
	// ErrInvalidOperand means the operand fields name something that is not
	// allowed here, like a register where only memory makes sense.
	ErrInvalidOperand = errors.New("invalid operand encoding")
)

// DecodeError says where decoding stopped and on which bytes. Kind is one
// of the sentinels above and is what errors.Cause returns.
type DecodeError struct {
	Kind   error
	Addr   uint32
	Bytes  []byte
	Detail string
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%05x: % x: %v", e.Addr, e.Bytes, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *DecodeError) Cause() error { return e.Kind }
func (e *DecodeError) Unwrap() error { return e.Kind }

func (r *Reader) fail(kind error, format string, args ...any) error {
	return errors.WithStack(&DecodeError{
		Kind:   kind,
		Addr:   r.addr,
		Bytes:  r.consumed(),
		Detail: fmt.Sprintf(format, args...),
	})
}
