package integral

import "fmt"

// Text is the formatted representation of one integer in one base.
//
// The zero value is not meaningful; build a Text with New or MustNew. A Text
// never changes after construction and the views it returns must be treated
// as read-only.
type Text struct {
	buf [MaxCapacity]byte
	off uint8
	neg bool
}

// New formats v in base. The only error is an invalid base.
func New[T Integer](v T, base Base) (Text, error) {
	if err := base.Validate(); err != nil {
		return Text{}, err
	}
	m, neg := Magnitude(v)
	return fill(m, neg, base), nil
}

// MustNew is like New but panics on an invalid base. Useful for package-level
// variables where the base is a constant.
func MustNew[T Integer](v T, base Base) Text {
	t, err := New(v, base)
	if err != nil {
		panic(err)
	}
	return t
}

// Format returns the digits of v in base without the terminator. It panics on
// an invalid base, matching strconv.FormatInt.
func Format[T Integer](v T, base Base) string {
	t := MustNew(v, base)
	return t.String()
}

// fill writes the terminator at the end of the array, then the digits from
// least to most significant walking backward, then the sign. The resulting
// offset must agree with size; both walk the magnitude the same way.
func fill(m uint64, neg bool, base Base) Text {
	var t Text
	b := uint64(base)
	n := size(m, neg, b)

	i := len(t.buf) - 1
	t.buf[i] = 0
	if m == 0 {
		i--
		t.buf[i] = '0'
	}
	for ; m != 0; m /= b {
		i--
		t.buf[i] = digits[m%b]
	}
	if neg {
		i--
		t.buf[i] = '-'
	}
	if len(t.buf)-i != n {
		panic(fmt.Sprintf("integral: filled %d bytes, sized %d", len(t.buf)-i, n))
	}
	t.off = uint8(i)
	t.neg = neg
	return t
}

// Len is the number of characters before the terminator.
func (t *Text) Len() int {
	return len(t.buf) - int(t.off) - 1
}

// Cap is the exact storage the text occupies, terminator included. It is
// always Len()+1.
func (t *Text) Cap() int {
	return len(t.buf) - int(t.off)
}

// Negative reports whether the formatted value was below zero.
func (t *Text) Negative() bool {
	return t.neg
}

// String returns the characters without the terminator.
func (t *Text) String() string {
	return string(t.buf[t.off : len(t.buf)-1])
}

// Bytes returns the characters without the terminator. The slice capacity
// stops before the terminator so append copies instead of overwriting it.
func (t *Text) Bytes() []byte {
	end := len(t.buf) - 1
	return t.buf[t.off:end:end]
}

// CString returns the characters followed by the single NUL terminator. Its
// length and capacity are both Cap().
func (t *Text) CString() []byte {
	return t.buf[t.off:len(t.buf):len(t.buf)]
}

// AppendTo appends the characters, without the terminator, to dst.
func (t *Text) AppendTo(dst []byte) []byte {
	return append(dst, t.buf[t.off:len(t.buf)-1]...)
}
