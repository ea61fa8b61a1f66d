package biz

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/kart-io/logger"

	"github.com/Sid2318/Edufy/internal/model"
	"github.com/Sid2318/Edufy/internal/pkg/domaindata"
	"github.com/Sid2318/Edufy/internal/pkg/textutil"
)

// Flashcard answers are clamped to study-card size: short enough to
// recall, long enough to mean something.
const (
	minCardAnswerLength = 15
	maxCardAnswerLength = 200
	maxCardSentences    = 3
)

var cardDefinitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+){0,2})\s+(?:is|are|means?|refers?\s+to|defined?\s+as)\s+([^.!?]+[.!?])`),
	regexp.MustCompile(`(?i)(?:the|a)\s+(\w+(?:\s+\w+){0,2})\s+(?:is|are)\s+([^.!?]+[.!?])`),
}

var cardProcessPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:steps?|process|procedure|method)(?:\s+to|\s+for|\s+of)\s+([^:]+):\s*([^.!?]+[.!?])`),
	regexp.MustCompile(`(?i)(?:how to|to)\s+([^:]+):\s*([^.!?]+[.!?])`),
}

var cardFactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:important|key|crucial|essential|vital|significant)[:\s]+([^.!?]+[.!?])`),
	regexp.MustCompile(`(?i)(?:note|remember|keep in mind)[:\s]+([^.!?]+[.!?])`),
	regexp.MustCompile(`(?i)(?:it is important to|must|should always)[:\s]+([^.!?]+[.!?])`),
}

var cardComparisonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:difference between|compare)\s+([^.!?]+?)(?:\s+and\s+|\s+vs\s+)([^.!?]+?)[:\s]*([^.!?]+[.!?])`),
	regexp.MustCompile(`(?i)([^.!?]+?)\s+(?:differs from|compared to)\s+([^.!?]+?)[:\s]*([^.!?]+[.!?])`),
}

var cardListPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:types?|kinds?|categories|examples?)\s+of\s+([^:]+):\s*([^.!?]+[.!?])`),
	regexp.MustCompile(`(?i)([^:]+?)\s+(?:include|are|consists? of):\s*([^.!?]+[.!?])`),
}

var conceptSignalWords = []string{"explains", "describes", "shows", "demonstrates", "illustrates"}

// cardExtractors is the flashcard mining pipeline, run in order.
var cardExtractors = []PatternExtractor{
	definitionCardExtractor{},
	processCardExtractor{},
	factCardExtractor{},
	comparisonCardExtractor{},
	listCardExtractor{},
	conceptCardExtractor{},
}

// definitionCardExtractor mines "X is/means/refers to Y" sentences.
type definitionCardExtractor struct{}

func (definitionCardExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range cardDefinitionPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			term := titleCase(strings.TrimSpace(m[1]))
			def := strings.TrimSpace(m[2])
			if len(term) <= 2 || len(def) <= 10 || len(def) >= 150 {
				continue
			}
			out = append(out, Candidate{
				Term:       term,
				Question:   "What is " + term + "?",
				Answer:     textutil.ClampSentences(def, 2),
				Difficulty: model.DifficultyEasy,
				Category:   "definition",
			})
		}
	}
	return out
}

// processCardExtractor mines step and procedure descriptions.
type processCardExtractor struct{}

func (processCardExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range cardProcessPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			desc := strings.TrimSpace(m[2])
			if len(name) <= 3 || len(desc) <= 15 || len(desc) >= 120 {
				continue
			}
			out = append(out, Candidate{
				Term:       name,
				Question:   "How to " + name + "?",
				Answer:     desc,
				Difficulty: model.DifficultyMedium,
				Category:   "process",
			})
		}
	}
	return out
}

// factCardExtractor mines sentences flagged as important or key.
type factCardExtractor struct{}

func (factCardExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range cardFactPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			fact := strings.TrimSpace(m[1])
			if len(fact) <= 20 || len(fact) >= 120 {
				continue
			}
			lower := strings.ToLower(fact)
			question := "What is a key fact?"
			if strings.Contains(lower, "important") {
				question = "What is an important point to remember?"
			} else if strings.Contains(lower, "must") || strings.Contains(lower, "should") {
				question = "What should you always do?"
			}
			out = append(out, Candidate{
				Question:   question,
				Answer:     fact,
				Difficulty: model.DifficultyEasy,
				Category:   "fact",
			})
		}
	}
	return out
}

// comparisonCardExtractor mines "difference between X and Y" phrasing.
type comparisonCardExtractor struct{}

func (comparisonCardExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range cardComparisonPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			a := strings.TrimSpace(m[1])
			b := strings.TrimSpace(m[2])
			diff := strings.TrimSpace(m[3])
			if len(a) <= 2 || len(b) <= 2 || len(diff) <= 15 || len(diff) >= 120 {
				continue
			}
			out = append(out, Candidate{
				Term:       a + " vs " + b,
				Question:   "What is the difference between " + a + " and " + b + "?",
				Answer:     diff,
				Difficulty: model.DifficultyHard,
				Category:   "comparison",
			})
		}
	}
	return out
}

// listCardExtractor mines "types of X: ..." enumerations.
type listCardExtractor struct{}

func (listCardExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range cardListPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			category := strings.TrimSpace(m[1])
			items := strings.TrimSpace(m[2])
			if len(category) <= 3 || len(items) <= 20 || len(items) >= 130 {
				continue
			}
			out = append(out, Candidate{
				Term:       category,
				Question:   "What are the types of " + category + "?",
				Answer:     textutil.ClampSentences(items, 2),
				Difficulty: model.DifficultyMedium,
				Category:   "list",
			})
		}
	}
	return out
}

// conceptCardExtractor picks up to three explanatory sentences.
type conceptCardExtractor struct{}

func (conceptCardExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, sentence := range strings.Split(text, ".") {
		if len(out) >= 3 {
			break
		}
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 30 || len(sentence) >= 150 {
			continue
		}
		if !containsAny(strings.ToLower(sentence), conceptSignalWords) {
			continue
		}
		if len(strings.Fields(sentence)) <= 5 {
			continue
		}
		out = append(out, Candidate{
			Question:   "What concept is explained in this statement?",
			Answer:     sentence + ".",
			Difficulty: model.DifficultyMedium,
			Category:   "concept",
		})
	}
	return out
}

// FlashcardGenerator builds study flashcards by merging domain
// template cards with cards extracted from the document text, then
// optionally rewriting answers through the model gateway.
type FlashcardGenerator struct {
	gateway  *ModelGateway
	maxCards int
}

func NewFlashcardGenerator(gateway *ModelGateway, maxCards int) *FlashcardGenerator {
	if maxCards <= 0 {
		maxCards = 15
	}
	return &FlashcardGenerator{gateway: gateway, maxCards: maxCards}
}

// Generate produces up to maxCards flashcards for the document,
// ordered easiest first.
func (g *FlashcardGenerator) Generate(ctx context.Context, content, domain string) []model.Flashcard {
	templates := domaindata.FlashcardsFor(domain)
	// Domain templates take at most half the deck so extracted cards
	// always get room.
	templateQuota := g.maxCards / 2
	if len(templates) > templateQuota {
		templates = templates[:templateQuota]
	}

	extracted := ExtractFlashcards(content)

	cards := make([]model.Flashcard, 0, g.maxCards)
	seen := make(map[string]struct{})
	for _, c := range append(append([]model.Flashcard{}, templates...), extracted...) {
		key := strings.ToLower(strings.TrimSpace(c.Question))
		if _, dup := seen[key]; dup {
			continue
		}
		answer := clampCardAnswer(c.Answer)
		if len(answer) < minCardAnswerLength || len(answer) > maxCardAnswerLength {
			continue
		}
		c.Answer = answer
		seen[key] = struct{}{}
		cards = append(cards, c)
		if len(cards) >= g.maxCards {
			break
		}
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return model.DifficultyRank(cards[i].Difficulty) < model.DifficultyRank(cards[j].Difficulty)
	})

	if g.gateway != nil && g.gateway.Available(ctx) {
		return g.enhanceAnswers(ctx, cards, content)
	}
	return cards
}

// enhanceAnswers rewrites each card's answer through the model,
// keeping the original for comparison. A failed rewrite, or one that
// lands outside the card answer bounds, keeps the extracted answer.
func (g *FlashcardGenerator) enhanceAnswers(ctx context.Context, cards []model.Flashcard, content string) []model.Flashcard {
	if len(content) > contextWindow {
		content = content[:contextWindow]
	}
	enhanced := make([]model.Flashcard, len(cards))
	for i, card := range cards {
		enhanced[i] = card
		prompt := "Rewrite this study flashcard answer so it is accurate, concise and grounded in the document below. " +
			"Answer in at most three sentences.\n\n" +
			"QUESTION: " + card.Question + "\n\n" +
			"CURRENT ANSWER: " + card.Answer + "\n\n" +
			"DOCUMENT:\n" + content
		out, err := g.gateway.Generate(ctx, prompt)
		if err != nil {
			logger.Infof("flashcard answer enhancement failed: %v", err)
			continue
		}
		answer := clampCardAnswer(out)
		if len(answer) < minCardAnswerLength || len(answer) > maxCardAnswerLength {
			continue
		}
		enhanced[i].OriginalAnswer = card.Answer
		enhanced[i].Answer = answer
	}
	return enhanced
}

// ExtractFlashcards runs the card mining pipeline over the document
// text, padding with generic cards when extraction comes up short.
func ExtractFlashcards(content string) []model.Flashcard {
	var cards []model.Flashcard
	for _, ex := range cardExtractors {
		for _, c := range ex.Extract(content) {
			cards = append(cards, model.Flashcard{
				Question:   c.Question,
				Answer:     c.Answer,
				Difficulty: c.Difficulty,
				Category:   c.Category,
			})
		}
	}

	if len(cards) < 5 {
		cards = append(cards, genericFlashcards(content)...)
	}

	return cards
}

func genericFlashcards(content string) []model.Flashcard {
	summary := ""
	for _, p := range strings.Split(content, "\n") {
		if len(strings.TrimSpace(p)) > 50 {
			summary = strings.TrimSpace(p)
			break
		}
	}
	if summary == "" {
		summary = textutil.TruncateString(content, 200)
	}
	summary = textutil.ClampSentences(summary, 2)

	return []model.Flashcard{
		{
			Question:   "What is the main topic of this document?",
			Answer:     summary,
			Difficulty: model.DifficultyEasy,
			Category:   "overview",
		},
		{
			Question:   "What are the key concepts covered?",
			Answer:     "The document covers essential definitions, processes, and important facts related to the subject matter.",
			Difficulty: model.DifficultyEasy,
			Category:   "overview",
		},
		{
			Question:   "What should you focus on when studying this material?",
			Answer:     "Focus on understanding definitions, key processes, and the relationships between different concepts.",
			Difficulty: model.DifficultyMedium,
			Category:   "overview",
		},
	}
}

func clampCardAnswer(answer string) string {
	answer = textutil.NormalizeWhitespace(answer)
	clamped := textutil.ClampSentences(answer, maxCardSentences)
	if clamped != "" && !strings.HasSuffix(clamped, ".") && !strings.HasSuffix(clamped, "!") && !strings.HasSuffix(clamped, "?") {
		clamped += "."
	}
	return clamped
}
