// Package loader extracts plain text from uploaded study documents.
package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Loader extracts text from a document file.
type Loader interface {
	// Load reads the file and returns its plain text content.
	Load(ctx context.Context, path string) (string, error)

	// Extensions lists the file extensions this loader handles,
	// lowercase with leading dot.
	Extensions() []string
}

// Registry maps file extensions to loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry creates a registry with the default loaders for
// .pdf and .txt files.
func NewRegistry() *Registry {
	r := &Registry{loaders: make(map[string]Loader)}
	r.Register(NewTextLoader())
	r.Register(NewPDFLoader())
	return r
}

// Register adds a loader for each of its extensions.
func (r *Registry) Register(l Loader) {
	for _, ext := range l.Extensions() {
		r.loaders[ext] = l
	}
}

// Supports reports whether a file with the given name can be loaded.
func (r *Registry) Supports(filename string) bool {
	_, ok := r.loaders[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// SupportedExtensions lists all registered extensions.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.loaders))
	for ext := range r.loaders {
		exts = append(exts, ext)
	}
	return exts
}

// Load extracts text from the file, picking the loader by extension.
func (r *Registry) Load(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := r.loaders[ext]
	if !ok {
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
	return l.Load(ctx, path)
}
