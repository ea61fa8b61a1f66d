package biz

import (
	"sync"
	"time"

	"github.com/Sid2318/Edufy/internal/model"
)

// SessionState tracks the single active document for the study
// session. Uploading a new document replaces the previous one
// entirely.
type SessionState struct {
	mu         sync.RWMutex
	doc        *model.Document
	content    string
	uploadedAt time.Time
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

// Set replaces the active document and records the upload time.
func (s *SessionState) Set(doc *model.Document, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.content = content
	s.uploadedAt = time.Now()
}

// Reset clears the active document. Used at the start of an upload so
// a failed replacement never leaves the old document half-visible.
func (s *SessionState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = nil
	s.content = ""
	s.uploadedAt = time.Time{}
}

// Document returns the active document, or nil when none is loaded.
func (s *SessionState) Document() *model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Content returns the extracted text of the active document.
func (s *SessionState) Content() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// InRegenWindow reports whether the document was replaced within the
// given window. Generated artifacts requested inside the window get
// placeholder content while fresh generation settles.
func (s *SessionState) InRegenWindow(window time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil || s.uploadedAt.IsZero() {
		return false
	}
	return time.Since(s.uploadedAt) < window
}

// PlaceholderQuestions are shown while a freshly uploaded document is
// still being analyzed.
func PlaceholderQuestions() []string {
	return []string{
		"Analyzing your new document...",
		"Generating fresh questions based on new content...",
		"Previous questions are no longer relevant...",
		"Please wait while we process your document...",
		"AI is reading and understanding your new material...",
	}
}

// PlaceholderFlashcards are shown while a freshly uploaded document is
// still being analyzed.
func PlaceholderFlashcards() []model.Flashcard {
	return []model.Flashcard{
		{
			Question:   "Document Updated",
			Answer:     "We're creating new flashcards based on your newly uploaded document. The previous flashcards are no longer relevant to your current material.",
			Difficulty: model.DifficultyEasy,
			Category:   "status",
		},
		{
			Question:   "Content Processing",
			Answer:     "Please wait while our AI analyzes your new document and generates personalized flashcards for effective studying.",
			Difficulty: model.DifficultyEasy,
			Category:   "status",
		},
		{
			Question:   "AI Working",
			Answer:     "Our intelligent system is reading through your document to identify the most important concepts for your flashcards.",
			Difficulty: model.DifficultyEasy,
			Category:   "status",
		},
	}
}
