package model

// Service readiness states reported by the status endpoint.
const (
	StatusReady       = "ready"
	StatusNoDocuments = "no_documents"
)

// StatusRegenerating marks generated-content payloads served while a
// freshly uploaded document is still settling.
const StatusRegenerating = "regenerating"

// QuestionSet is the sample-questions payload. Status and Message are
// set only on regenerating placeholder responses.
type QuestionSet struct {
	Questions []string `json:"questions"`
	Status    string   `json:"status,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// FlashcardSet is the flashcards payload. Status and Message are set
// only on regenerating placeholder responses.
type FlashcardSet struct {
	Flashcards []Flashcard `json:"flashcards"`
	Total      int         `json:"total"`
	Status     string      `json:"status,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// DocumentInfo is the per-document view returned by the status endpoint.
type DocumentInfo struct {
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"size_formatted"`
}

// ServiceStatus describes whether the service is ready to answer questions.
type ServiceStatus struct {
	Status        string         `json:"status"`
	Message       string         `json:"message"`
	Documents     []DocumentInfo `json:"documents"`
	DatabaseReady bool           `json:"database_ready"`
}
