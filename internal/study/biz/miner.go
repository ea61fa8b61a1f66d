package biz

// Candidate is a single study item mined from document text by one
// PatternExtractor. Term carries the normalized source term so the
// composing generator can deduplicate across extractor families;
// extractors that do not mine a reusable term leave it empty.
type Candidate struct {
	Term       string
	Question   string
	Answer     string
	Difficulty string
	Category   string
}

// PatternExtractor mines one family of patterns from document text.
// Extractors are independent and run in a fixed order; the question
// and flashcard generators compose their candidates, applying
// cross-family deduplication and per-family caps.
type PatternExtractor interface {
	Extract(text string) []Candidate
}
