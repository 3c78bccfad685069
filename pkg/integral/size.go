package integral

// MaxCapacity is the largest buffer any Text needs: 64 binary digits, a sign
// and the terminator.
const MaxCapacity = 64 + 1 + 1

// Size returns the exact number of bytes needed to hold v in base, counting
// the sign byte for negative values and the trailing NUL.
//
// Zero is one digit. The division loop never runs for it, so the digit is
// counted up front instead of producing an empty string. An invalid base
// yields 0.
func Size[T Integer](v T, base Base) int {
	if !base.Valid() {
		return 0
	}
	m, neg := Magnitude(v)
	return size(m, neg, uint64(base))
}

func size(m uint64, neg bool, base uint64) int {
	n := 1
	if neg {
		n = 2
	}
	if m == 0 {
		return n + 1
	}
	for ; m != 0; m /= base {
		n++
	}
	return n
}
