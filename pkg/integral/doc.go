// Package integral formats fixed-width integers as exactly-sized,
// NUL-terminated digit strings in bases 2 through 16.
//
// A Text is a plain value. It carries a worst-case array on the stack and a
// view over the tail of that array whose length is exactly Size(v, base):
// the optional '-', the digits, and a single terminator. Nothing is allocated
// on the heap and nothing can be appended into the terminator.
//
// Only integral types satisfy the Integer constraint, so
//
//	integral.New(3.5, integral.Decimal)
//
// is a compile error rather than a runtime failure. Values known before the
// program runs are better served by cmd/intfmt-gen, which evaluates them
// during go generate and emits [N]byte arrays sized to the byte.
package integral
