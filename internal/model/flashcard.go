package model

// Flashcard difficulty levels, ordered easy to hard.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Flashcard represents a single study flashcard.
type Flashcard struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Difficulty     string `json:"difficulty"`
	Category       string `json:"category"`
	OriginalAnswer string `json:"original_answer,omitempty"` // Pre-enhancement answer, kept for review
}

// DifficultyRank maps a difficulty to its sort order. Unknown values sort last.
func DifficultyRank(d string) int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}
