package biz

import "strings"

// Query intents drive how much context the retriever pulls in.
const (
	IntentSummary    = "summary"
	IntentSpecific   = "specific"
	IntentList       = "list"
	IntentComparison = "comparison"
	IntentGeneral    = "general"
)

var summaryKeywords = []string{
	"summarize", "summary", "overview", "explain all", "tell me about",
	"what is this document about", "main points", "key points", "everything",
	"all about", "complete", "entire document", "whole", "comprehensive",
	"topics covered", "what topics", "what does this cover",
}

var specificKeywords = []string{
	"define", "definition", "what is", "who is", "when", "where", "how much",
	"specific", "exactly", "precisely", "find", "locate", "search for",
	"one detail", "particular", "single", "individual",
}

var listKeywords = []string{
	"list", "types of", "kinds of", "examples of", "categories",
	"what are the", "how many", "enumerate", "steps", "process",
	"methods", "ways", "approaches",
}

var comparisonKeywords = []string{
	"compare", "contrast", "difference", "similar", "versus", "vs",
	"better", "worse", "advantages", "disadvantages", "pros", "cons",
}

// AnalyzeIntent buckets a question into one of the retrieval intents.
// Summary wins over specific, specific over list, list over comparison.
func AnalyzeIntent(query string) string {
	lower := strings.ToLower(strings.TrimSpace(query))

	switch {
	case containsAny(lower, summaryKeywords):
		return IntentSummary
	case containsAny(lower, specificKeywords):
		return IntentSpecific
	case containsAny(lower, listKeywords):
		return IntentList
	case containsAny(lower, comparisonKeywords):
		return IntentComparison
	default:
		return IntentGeneral
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

type kBounds struct {
	min, base, max int
}

var kTable = map[string]kBounds{
	IntentSpecific:   {min: 1, base: 2, max: 4},
	IntentList:       {min: 2, base: 4, max: 6},
	IntentComparison: {min: 3, base: 5, max: 8},
	IntentSummary:    {min: 4, base: 8, max: 12},
	IntentGeneral:    {min: 2, base: 4, max: 6},
}

// CalculateK picks a retrieval depth from the document size, query
// intent and query length.
func CalculateK(totalChunks int, intent string, queryLength int) int {
	bounds, ok := kTable[intent]
	if !ok {
		bounds = kTable[IntentGeneral]
	}

	k := bounds.base
	switch {
	case totalChunks <= 3:
		k = min(totalChunks, bounds.max)
	case totalChunks <= 10:
		k = max(bounds.min, k-1)
	case totalChunks <= 25:
		k = bounds.base
	case totalChunks <= 50:
		if intent == IntentSummary || intent == IntentComparison {
			k = min(k+2, bounds.max)
		}
	default:
		switch intent {
		case IntentSpecific:
			k = bounds.min
		case IntentSummary, IntentComparison:
			k = bounds.max
		default:
			k = bounds.base
		}
	}

	if queryLength > 100 {
		k = min(k+1, bounds.max)
	} else if queryLength < 20 {
		k = max(k-1, bounds.min)
	}

	k = min(k, totalChunks)
	return max(1, k)
}
