// Package textutil provides text processing helpers for chunking,
// fingerprinting, and answer shaping.
package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Fingerprint computes the SHA-256 hash of a string, hex encoded.
func Fingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// TruncateString truncates a string to at most maxLen Unicode characters.
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen])
}

// TruncateWithEllipsis truncates to maxLen Unicode characters and appends
// "..." when truncation happened.
func TruncateWithEllipsis(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return TruncateString(s, maxLen) + "..."
}

// SplitIntoChunks splits text into overlapping chunks. chunkSize is the size
// of each chunk in Unicode characters, overlap the shared size between
// consecutive chunks.
func SplitIntoChunks(text string, chunkSize, overlap int) []string {
	if chunkSize <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}

	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	step := chunkSize - overlap

	for i := 0; i < len(runes); i += step {
		end := i + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
		if end == len(runes) {
			break
		}
	}

	return chunks
}

var sentenceEndRegex = regexp.MustCompile(`[.!?]+\s+`)

// SplitSentences splits text into sentences on terminal punctuation.
// Trailing punctuation stays attached to its sentence.
func SplitSentences(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var sentences []string
	last := 0
	for _, loc := range sentenceEndRegex.FindAllStringIndex(s, -1) {
		sentences = append(sentences, strings.TrimSpace(s[last:loc[1]]))
		last = loc[1]
	}
	if last < len(s) {
		sentences = append(sentences, strings.TrimSpace(s[last:]))
	}
	return sentences
}

// ClampSentences keeps at most n leading sentences of text.
func ClampSentences(s string, n int) string {
	if n <= 0 {
		return ""
	}
	sentences := SplitSentences(s)
	if len(sentences) <= n {
		return strings.TrimSpace(s)
	}
	return strings.Join(sentences[:n], " ")
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
