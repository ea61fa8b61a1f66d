package biz

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sid2318/Edufy/pkg/loader"
)

// Extractor turns an uploaded file on disk into clean document text.
type Extractor interface {
	// Extract reads and normalizes the text of the file at path.
	Extract(ctx context.Context, path string) (string, error)
	// Supports reports whether the file type can be extracted.
	Supports(filename string) bool
	// SupportedExtensions lists accepted file extensions.
	SupportedExtensions() []string
}

// loaderExtractor adapts the loader registry into the extraction
// pipeline, normalizing whitespace and rejecting empty documents.
type loaderExtractor struct {
	registry *loader.Registry
}

var _ Extractor = (*loaderExtractor)(nil)

func NewExtractor() Extractor {
	return &loaderExtractor{registry: loader.NewRegistry()}
}

func (e *loaderExtractor) Extract(ctx context.Context, path string) (string, error) {
	text, err := e.registry.Load(ctx, path)
	if err != nil {
		return "", err
	}
	// Paragraph structure matters downstream, so only trim the ends.
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no extractable text in %s", path)
	}
	return text, nil
}

func (e *loaderExtractor) Supports(filename string) bool {
	return e.registry.Supports(filename)
}

func (e *loaderExtractor) SupportedExtensions() []string {
	return e.registry.SupportedExtensions()
}
