// Package prompt asks for format requests interactively. The CLI uses it
// when no manifest exists yet; the answers can be saved as a manifest.
package prompt

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-intfmt/pkg/integral"
	"github.com/goliatone/go-intfmt/pkg/request"
)

// Collect asks for requests until the user declines to add another. Each
// answer is validated with the same rules the generator applies, so every
// returned request resolves.
func Collect(ctx context.Context, driver Driver) ([]request.Request, error) {
	kinds := request.KindNames()
	bases := baseOptions()

	var out []request.Request
	names := make(map[string]struct{})
	for {
		req, err := collectOne(ctx, driver, kinds, bases, names)
		if err != nil {
			return nil, err
		}
		resolved, err := req.Resolve()
		if err != nil {
			return nil, err
		}
		names[req.Name] = struct{}{}
		out = append(out, req)

		if err := driver.Info(ctx, fmt.Sprintf("%s = %q (%d bytes)", resolved.Name, resolved.Text, resolved.Size)); err != nil {
			return nil, err
		}

		more, err := driver.Confirm(ctx, ConfirmConfig{Message: "Add another value?"})
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
	}
}

func collectOne(ctx context.Context, driver Driver, kinds, bases []string, names map[string]struct{}) (request.Request, error) {
	name, err := driver.Input(ctx, InputConfig{
		Message: "Identifier",
		Help:    "Go identifier for the generated array",
		Validator: func(s string) error {
			if err := request.ValidateName(s); err != nil {
				return err
			}
			if _, dup := names[s]; dup {
				return fmt.Errorf("%w: %q", request.ErrDuplicateName, s)
			}
			return nil
		},
	})
	if err != nil {
		return request.Request{}, err
	}

	kindIdx, err := driver.Select(ctx, SelectConfig{
		Message:      "Type",
		Options:      kinds,
		DefaultIndex: indexOf(kinds, "int"),
	})
	if err != nil {
		return request.Request{}, err
	}
	if kindIdx < 0 || kindIdx >= len(kinds) {
		return request.Request{}, fmt.Errorf("prompt: type selection %d out of range", kindIdx)
	}
	kind := kinds[kindIdx]

	baseIdx, err := driver.Select(ctx, SelectConfig{
		Message:      "Base",
		Options:      bases,
		DefaultIndex: indexOf(bases, strconv.Itoa(int(integral.DefaultBase))),
	})
	if err != nil {
		return request.Request{}, err
	}
	if baseIdx < 0 || baseIdx >= len(bases) {
		return request.Request{}, fmt.Errorf("prompt: base selection %d out of range", baseIdx)
	}
	base := uint8(int(integral.MinBase) + baseIdx)

	value, err := driver.Input(ctx, InputConfig{
		Message: "Value",
		Help:    "Go integer literal, e.g. -42, 0xFF or 1_000",
		Validator: func(s string) error {
			_, err := request.Request{Name: name, Type: kind, Value: s, Base: base}.Resolve()
			return err
		},
	})
	if err != nil {
		return request.Request{}, err
	}

	return request.Request{Name: name, Type: kind, Value: value, Base: base}, nil
}

func baseOptions() []string {
	out := make([]string, 0, int(integral.MaxBase-integral.MinBase)+1)
	for b := integral.MinBase; b <= integral.MaxBase; b++ {
		out = append(out, strconv.Itoa(int(b)))
	}
	return out
}
