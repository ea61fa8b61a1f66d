package biz

import (
	"testing"
	"time"

	"github.com/Sid2318/Edufy/internal/model"
)

func TestSessionStateLifecycle(t *testing.T) {
	s := NewSessionState()

	if s.Document() != nil {
		t.Error("fresh state should have no document")
	}
	if s.InRegenWindow(time.Hour) {
		t.Error("fresh state should not be in the regen window")
	}

	doc := &model.Document{ID: "d1", Name: "notes.txt"}
	s.Set(doc, "document text")

	if got := s.Document(); got == nil || got.ID != "d1" {
		t.Errorf("Document() = %+v", got)
	}
	if got := s.Content(); got != "document text" {
		t.Errorf("Content() = %q", got)
	}
	if !s.InRegenWindow(time.Hour) {
		t.Error("freshly set document should be inside a wide regen window")
	}
	if s.InRegenWindow(time.Nanosecond) {
		t.Error("nanosecond window should already have elapsed")
	}

	s.Reset()
	if s.Document() != nil || s.Content() != "" {
		t.Error("Reset should clear document and content")
	}
	if s.InRegenWindow(time.Hour) {
		t.Error("reset state should not be in the regen window")
	}
}

func TestPlaceholderQuestions(t *testing.T) {
	qs := PlaceholderQuestions()
	if len(qs) != 5 {
		t.Fatalf("placeholder question count = %d, want 5", len(qs))
	}
	if qs[0] != "Analyzing your new document..." {
		t.Errorf("first placeholder = %q", qs[0])
	}
}

func TestPlaceholderFlashcards(t *testing.T) {
	cards := PlaceholderFlashcards()
	if len(cards) != 3 {
		t.Fatalf("placeholder card count = %d, want 3", len(cards))
	}
	if cards[0].Question != "Document Updated" {
		t.Errorf("first placeholder question = %q", cards[0].Question)
	}
	for _, c := range cards {
		if c.Answer == "" {
			t.Errorf("placeholder %q has empty answer", c.Question)
		}
	}
}
