package pongo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/flosch/pongo2/v6"
)

// toContext turns template data into a pongo2.Context. Maps are used as
// given. Anything else is encoded to JSON so struct tags name the keys.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("data of type %T is not an object: %w", data, err)
	}
	return pongo2.Context(integers(obj).(map[string]any)), nil
}

// integers replaces json.Number with int64 or uint64 where the number is
// whole. pongo2 prints float64 with six decimals, which would corrupt array
// sizes and bases.
func integers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = integers(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = integers(item)
		}
		return t
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return u
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
