package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kart-io/logger"

	"github.com/Sid2318/Edufy/internal/model"
	"github.com/Sid2318/Edufy/internal/pkg/textutil"
	"github.com/Sid2318/Edufy/internal/study/store"
)

// contextWindow caps how much retrieved text is handed to the model.
const contextWindow = 3000

// minEnhancedLength rejects model output too short to be a real
// answer, falling back to the extractive response instead.
const minEnhancedLength = 50

// excerptLimits control how much of each retrieved section the
// extractive answer quotes, by query intent.
var excerptLimits = map[string]int{
	IntentSpecific:   200,
	IntentSummary:    600,
	IntentList:       400,
	IntentComparison: 500,
	IntentGeneral:    400,
}

// intentInstructions steer the model's answer style per query intent.
var intentInstructions = map[string]string{
	IntentSummary: "Provide a comprehensive summary that synthesizes information from all the provided sections. " +
		"Cover the main topics, key points, and important details.",
	IntentSpecific: "Focus on providing a precise, specific answer to the question. " +
		"Be direct and concise while ensuring accuracy.",
	IntentList: "Organize your response as a clear, structured list or enumeration. " +
		"Include relevant examples and categorize information where appropriate.",
	IntentComparison: "Compare and contrast the relevant information from the provided sections. " +
		"Highlight similarities, differences, and relationships between concepts.",
	IntentGeneral: "Provide a comprehensive and accurate answer based on the provided context. " +
		"Structure your response clearly and include relevant details.",
}

// AnswerBuilder turns retrieved sections into an answer, preferring
// the model gateway and degrading to a structured extractive response
// when the backend is down.
type AnswerBuilder struct {
	gateway *ModelGateway
}

func NewAnswerBuilder(gateway *ModelGateway) *AnswerBuilder {
	return &AnswerBuilder{gateway: gateway}
}

// BuildContext formats retrieved sections into the numbered context
// block handed to the model.
func BuildContext(results []*store.SearchResult) string {
	parts := make([]string, len(results))
	for i, res := range results {
		parts[i] = fmt.Sprintf("Section %d:\n%s", i+1, res.Content)
	}
	return strings.Join(parts, "\n\n")
}

// Answer produces the final answer for a question given its retrieved
// sections and intent, reporting which method produced it.
func (b *AnswerBuilder) Answer(ctx context.Context, question string, results []*store.SearchResult, intent string) (answer, method string) {
	basic := b.ExtractiveAnswer(question, results, intent)
	// With nothing retrieved there is nothing to ground a model answer
	// in; the explanatory empty result goes out as-is.
	if len(results) == 0 || b.gateway == nil {
		return basic, model.MethodFallback
	}

	enhanced, err := b.enhance(ctx, question, BuildContext(results), basic, intent)
	switch {
	case err == nil:
		return enhanced, model.MethodAIEnhanced
	case errors.Is(err, ErrModelUnavailable):
		return basic, model.MethodFallback
	default:
		logger.Infof("answer enhancement failed, using extractive answer: %v", err)
		return basic, model.MethodAIFallback
	}
}

func (b *AnswerBuilder) enhance(ctx context.Context, question, contextContent, basic, intent string) (string, error) {
	instruction, ok := intentInstructions[intent]
	if !ok {
		instruction = intentInstructions[IntentGeneral]
	}

	if len(contextContent) > contextWindow {
		contextContent = contextContent[:contextWindow]
	}

	prompt := fmt.Sprintf(`You are an expert educational assistant. Generate a comprehensive, accurate, and well-structured answer based on the provided context.

QUESTION: %s

DOCUMENT CONTEXT:
%s

BASIC ANSWER (if available): %s

INSTRUCTIONS:
1. Provide a comprehensive answer based STRICTLY on the document content
2. Make the answer educational and easy to understand
3. Structure the answer with clear explanations
4. Include specific details and examples from the document when relevant
5. If the question asks for definitions, provide complete and accurate definitions
6. If the question asks for processes or steps, explain them clearly
7. If the question asks for comparisons, highlight key differences and similarities
8. Keep the answer focused and relevant to the question
9. If information is not available in the document, clearly state that
10. %s

Generate a clear, comprehensive answer that would help a student understand the topic thoroughly:`,
		question, contextContent, basic, instruction)

	out, err := b.gateway.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if len(out) <= minEnhancedLength {
		return "", fmt.Errorf("%w: response too short (%d chars)", ErrGeneration, len(out))
	}
	return out, nil
}

// ExtractiveAnswer builds a structured answer straight from the
// retrieved sections, used whenever the model backend is unavailable.
func (b *AnswerBuilder) ExtractiveAnswer(question string, results []*store.SearchResult, intent string) string {
	if len(results) == 0 {
		return "No relevant information found in the uploaded documents."
	}

	var parts []string
	switch intent {
	case IntentSummary:
		parts = append(parts,
			fmt.Sprintf("Here's a summary based on your uploaded document regarding '%s':", question),
			"\nMain Topics Found:")
	case IntentSpecific:
		parts = append(parts,
			fmt.Sprintf("Here's the specific information I found regarding '%s':", question))
	case IntentList:
		parts = append(parts,
			fmt.Sprintf("Here are the relevant items/points I found regarding '%s':", question),
			"\nListed Information:")
	case IntentComparison:
		parts = append(parts,
			fmt.Sprintf("Here's comparative information I found regarding '%s':", question),
			"\nComparison Points:")
	default:
		parts = append(parts,
			fmt.Sprintf("Based on the uploaded document, here's what I found regarding '%s':", question))
	}

	limit, ok := excerptLimits[intent]
	if !ok {
		limit = excerptLimits[IntentGeneral]
	}

	for i, res := range results {
		content := textutil.TruncateWithEllipsis(strings.TrimSpace(res.Content), limit)
		if intent == IntentList {
			parts = append(parts,
				fmt.Sprintf("\n  %d. %s", i+1, content),
				fmt.Sprintf("     Source: %s", res.DocumentName))
		} else {
			parts = append(parts,
				fmt.Sprintf("\n%d. From %s:", i+1, res.DocumentName),
				fmt.Sprintf("   %s", content))
		}
	}

	switch intent {
	case IntentSummary:
		parts = append(parts, fmt.Sprintf("\nThis summary covers %d key section(s) from your document.", len(results)))
	case IntentSpecific:
		parts = append(parts, fmt.Sprintf("\nThis specific information is from %d relevant section(s).", len(results)))
	default:
		parts = append(parts, fmt.Sprintf("\nThis information is extracted from %d relevant section(s) of your uploaded document.", len(results)))
	}

	return strings.Join(parts, "\n")
}
