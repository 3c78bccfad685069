package integral

// Integer is satisfied by every fixed-width integral type and any type
// derived from one.
type Integer interface {
	Signed | Unsigned
}

// Signed matches the signed integral types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches the unsigned integral types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Magnitude returns |v| as a uint64 together with the sign of v.
//
// The conversion to uint64 sign-extends negative values, so negating in the
// unsigned domain yields the right magnitude for the most negative value of
// every signed type (int8(-128) becomes 128, math.MinInt64 becomes 1<<63).
func Magnitude[T Integer](v T) (uint64, bool) {
	u := uint64(v)
	if v < 0 {
		return -u, true
	}
	return u, false
}
