package request

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/goliatone/go-intfmt/pkg/integral"
)

// Request is one FormatRequest: a value of an integral type and the base to
// render it in. Value is kept as text so the full int64 and uint64 ranges
// survive JSON and YAML decoding. A zero Base means integral.DefaultBase;
// manifests express that by omitting base, and Parse rejects "base: 0".
type Request struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value string `json:"value" yaml:"value"`
	Base  uint8  `json:"base,omitempty" yaml:"base,omitempty"`
}

// Resolved is a Request after validation and formatting.
type Resolved struct {
	Request
	Kind     Kind   `json:"kind"`
	Text     string `json:"text"`
	Size     int    `json:"size"`
	Negative bool   `json:"negative"`
}

// EffectiveBase returns the requested base, or integral.DefaultBase when the
// request leaves it unset.
func (r Request) EffectiveBase() integral.Base {
	if r.Base == 0 {
		return integral.DefaultBase
	}
	return integral.Base(r.Base)
}

// Resolve validates the request and formats its value. Every failure names
// the request so generator output points at the offending manifest entry.
func (r Request) Resolve() (Resolved, error) {
	name := strings.TrimSpace(r.Name)
	if err := ValidateName(name); err != nil {
		return Resolved{}, err
	}

	kind, err := LookupKind(r.Type)
	if err != nil {
		return Resolved{}, fmt.Errorf("request %s: %w", name, err)
	}

	base := r.EffectiveBase()
	if err := base.Validate(); err != nil {
		return Resolved{}, fmt.Errorf("request %s: %w", name, err)
	}

	v, err := kind.parse(r.Value)
	if err != nil {
		return Resolved{}, fmt.Errorf("request %s: %w", name, err)
	}

	text, size, err := v.format(base)
	if err != nil {
		return Resolved{}, fmt.Errorf("request %s: %w", name, err)
	}

	out := r
	out.Name = name
	out.Type = kind.Name
	out.Base = uint8(base)
	return Resolved{
		Request:  out,
		Kind:     kind,
		Text:     text.String(),
		Size:     size,
		Negative: text.Negative(),
	}, nil
}

// ValidateName reports whether name can be used as an exported or unexported
// Go identifier in generated code.
func ValidateName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Bytes returns the NUL-terminated form of the resolved text. Its length is
// exactly Size.
func (r Resolved) Bytes() []byte {
	out := make([]byte, 0, r.Size)
	out = append(out, r.Text...)
	return append(out, 0)
}

// ResolveAll resolves every request in order, rejecting duplicate names.
func ResolveAll(requests []Request) ([]Resolved, error) {
	seen := make(map[string]struct{}, len(requests))
	out := make([]Resolved, 0, len(requests))
	for _, req := range requests {
		resolved, err := req.Resolve()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[resolved.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, resolved.Name)
		}
		seen[resolved.Name] = struct{}{}
		out = append(out, resolved)
	}
	return out, nil
}
