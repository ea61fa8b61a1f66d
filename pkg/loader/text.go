package loader

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// TextLoader loads plain text files. Files that are not valid UTF-8 are
// reinterpreted as Latin-1 so legacy exports still load.
type TextLoader struct{}

var _ Loader = (*TextLoader)(nil)

// NewTextLoader creates a new text loader.
func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

// Extensions returns the handled extensions.
func (l *TextLoader) Extensions() []string {
	return []string{".txt"}
}

// Load reads the file content.
func (l *TextLoader) Load(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	return decodeLatin1(data), nil
}

func decodeLatin1(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}
