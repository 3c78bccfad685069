package pongo

import (
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	dir     string
	files   fs.FS
	ext     string
	filters map[string]pongo2.FilterFunction
}

// WithDir resolves template names against a directory on disk. It takes
// precedence over WithFS when both are set.
func WithDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = strings.TrimSpace(dir)
	}
}

// WithFS resolves template names inside files, typically an embed.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithExtension sets the suffix RenderTemplate appends to bare names.
// Defaults to ".tpl".
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		cfg.ext = ext
	}
}

// WithFilters makes filters available to every template. A name that is
// already registered in the process keeps its first definition.
func WithFilters(filters map[string]pongo2.FilterFunction) Option {
	return func(cfg *config) {
		if cfg.filters == nil {
			cfg.filters = make(map[string]pongo2.FilterFunction, len(filters))
		}
		for name, fn := range filters {
			if name = strings.TrimSpace(name); name != "" && fn != nil {
				cfg.filters[name] = fn
			}
		}
	}
}
