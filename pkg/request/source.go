package request

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SourceKind identifies where a manifest lives.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

// Source locates a manifest.
type Source interface {
	Location() string
	Kind() SourceKind
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a manifest on disk.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source naming a file, or "." for the whole tree,
// inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// Loader reads manifests from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Manifest, error)
}

// LoaderOption configures the default loader.
type LoaderOption func(*loader)

// WithFileSystem sets the fs.FS used for SourceKindFS sources.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(l *loader) {
		l.fsys = fsys
	}
}

type loader struct {
	fsys fs.FS
}

// NewLoader returns the default Loader. File sources are read from the
// operating system; FS sources require WithFileSystem.
func NewLoader(options ...LoaderOption) Loader {
	l := &loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

func (l *loader) Load(ctx context.Context, src Source) (Manifest, error) {
	if err := ctx.Err(); err != nil {
		return Manifest{}, err
	}
	if src == nil {
		return Manifest{}, errors.New("request: source is required")
	}

	switch src.Kind() {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location())
		if err != nil {
			return Manifest{}, fmt.Errorf("request: read %s: %w", src.Location(), err)
		}
		return Parse(data, src.Location())
	case SourceKindFS:
		if l.fsys == nil {
			return Manifest{}, fmt.Errorf("request: no file system configured for %s", src.Location())
		}
		if src.Location() == "." {
			return LoadFS(l.fsys)
		}
		data, err := fs.ReadFile(l.fsys, src.Location())
		if err != nil {
			return Manifest{}, fmt.Errorf("request: read %s: %w", src.Location(), err)
		}
		return Parse(data, src.Location())
	default:
		return Manifest{}, fmt.Errorf("request: unsupported source kind %q", src.Kind())
	}
}
