package decoder

import "golang.org/x/exp/constraints"

// field extracts width bits of v starting at bit shift.
func field[T constraints.Unsigned](v T, shift, width uint) T {
	return (v >> shift) & (T(1)<<width - 1)
}

func bit[T constraints.Unsigned](v T, n uint) bool {
	return field(v, n, 1) == 1
}
