package request

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intfmt/pkg/integral"
)

// Manifest groups the requests that are generated into one Go package.
type Manifest struct {
	Package  string    `json:"package,omitempty" yaml:"package,omitempty"`
	Requests []Request `json:"requests" yaml:"requests"`
	// Source records where the manifest was read from. It is not decoded.
	Source string `json:"-" yaml:"-"`
}

// manifestFile is the on-disk shape. Base is a pointer so an explicit
// "base: 0" is rejected instead of falling back to the default base.
type manifestFile struct {
	Package  string        `json:"package" yaml:"package"`
	Requests []requestFile `json:"requests" yaml:"requests"`
}

type requestFile struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
	Base  *uint8 `json:"base" yaml:"base"`
}

// Parse decodes a JSON or YAML manifest. source only labels errors. An
// omitted base means base 10; an explicit base of 0 is an error.
func Parse(data []byte, source string) (Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Manifest{}, fmt.Errorf("request: manifest %s is empty", source)
	}

	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		file = manifestFile{}
		if yerr := yaml.Unmarshal(data, &file); yerr != nil {
			return Manifest{}, fmt.Errorf("request: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	m := Manifest{
		Package:  strings.TrimSpace(file.Package),
		Requests: make([]Request, 0, len(file.Requests)),
		Source:   source,
	}
	for _, raw := range file.Requests {
		req := Request{Name: raw.Name, Type: raw.Type, Value: raw.Value}
		if raw.Base != nil {
			if *raw.Base == 0 {
				return Manifest{}, fmt.Errorf("request: %s: request %s: %w: got 0, omit base for %d",
					source, strings.TrimSpace(raw.Name), integral.ErrInvalidBase, integral.DefaultBase)
			}
			req.Base = *raw.Base
		}
		m.Requests = append(m.Requests, req)
	}
	return m, nil
}

// LoadFS walks fsys and merges every .json, .yaml and .yml manifest it finds.
// Files are visited in lexical order; the first non-empty package name wins.
// Duplicate request names across files are rejected.
func LoadFS(fsys fs.FS) (Manifest, error) {
	merged := Manifest{Source: "fs"}
	if fsys == nil {
		return merged, nil
	}

	seen := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("request: read %s: %w", path, err)
		}
		m, err := Parse(data, path)
		if err != nil {
			return err
		}
		if merged.Package == "" {
			merged.Package = m.Package
		}
		for _, req := range m.Requests {
			name := strings.TrimSpace(req.Name)
			if prev, dup := seen[name]; dup {
				return fmt.Errorf("%w: %q (files %s and %s)", ErrDuplicateName, name, prev, path)
			}
			seen[name] = path
			merged.Requests = append(merged.Requests, req)
		}
		return nil
	})
	if err != nil {
		return Manifest{}, err
	}
	return merged, nil
}

// Names returns the request names in sorted order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m.Requests))
	for _, req := range m.Requests {
		names = append(names, strings.TrimSpace(req.Name))
	}
	sort.Strings(names)
	return names
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
