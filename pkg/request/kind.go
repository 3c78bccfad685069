package request

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-intfmt/pkg/integral"
)

// Kind describes one integral Go type a manifest may name.
type Kind struct {
	Name   string `json:"name"`
	Bits   int    `json:"bits"`
	Signed bool   `json:"signed"`
}

var kinds = map[string]Kind{
	"int":     {Name: "int", Bits: strconv.IntSize, Signed: true},
	"int8":    {Name: "int8", Bits: 8, Signed: true},
	"int16":   {Name: "int16", Bits: 16, Signed: true},
	"int32":   {Name: "int32", Bits: 32, Signed: true},
	"rune":    {Name: "rune", Bits: 32, Signed: true},
	"int64":   {Name: "int64", Bits: 64, Signed: true},
	"uint":    {Name: "uint", Bits: strconv.IntSize},
	"uint8":   {Name: "uint8", Bits: 8},
	"byte":    {Name: "byte", Bits: 8},
	"uint16":  {Name: "uint16", Bits: 16},
	"uint32":  {Name: "uint32", Bits: 32},
	"uint64":  {Name: "uint64", Bits: 64},
	"uintptr": {Name: "uintptr", Bits: strconv.IntSize},
}

// LookupKind resolves a type name. Anything that is not a fixed-width
// integral type, such as float64 or string, yields ErrNotIntegral.
func LookupKind(name string) (Kind, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = "int"
	}
	kind, ok := kinds[trimmed]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrNotIntegral, name)
	}
	return kind, nil
}

// KindNames lists the accepted type names in sorted order.
func KindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Min returns the smallest value of the kind.
func (k Kind) Min() int64 {
	if !k.Signed {
		return 0
	}
	return -1 << (k.Bits - 1)
}

// Max returns the largest value of the kind.
func (k Kind) Max() uint64 {
	if k.Signed {
		return 1<<(k.Bits-1) - 1
	}
	if k.Bits == 64 {
		return math.MaxUint64
	}
	return 1<<k.Bits - 1
}

// parse reads raw as a value of the kind. Go integer literal syntax is
// accepted (0x, 0o, 0b prefixes and underscores).
func (k Kind) parse(raw string) (value, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return value{}, fmt.Errorf("%w: empty value", ErrOutOfRange)
	}
	if k.Signed {
		v, err := strconv.ParseInt(text, 0, k.Bits)
		if err != nil {
			return value{}, fmt.Errorf("%w: %q does not fit %s", ErrOutOfRange, raw, k.Name)
		}
		return value{signed: true, i: v}, nil
	}
	v, err := strconv.ParseUint(text, 0, k.Bits)
	if err != nil {
		return value{}, fmt.Errorf("%w: %q does not fit %s", ErrOutOfRange, raw, k.Name)
	}
	return value{u: v}, nil
}

type value struct {
	signed bool
	i      int64
	u      uint64
}

func (v value) format(base integral.Base) (integral.Text, int, error) {
	if v.signed {
		t, err := integral.New(v.i, base)
		return t, integral.Size(v.i, base), err
	}
	t, err := integral.New(v.u, base)
	return t, integral.Size(v.u, base), err
}
