package biz

import (
	"strings"
	"testing"

	"github.com/Sid2318/Edufy/internal/pkg/domaindata"
)

func TestGenerateQuestionsUsesDomainTemplates(t *testing.T) {
	content := "A short note about nothing in particular."
	questions := GenerateQuestions(content, "computer_networks")

	templates := domaindata.QuestionsFor("computer_networks")
	if len(questions) == 0 {
		t.Fatal("no questions generated")
	}
	// The first questions come straight from the domain template set.
	for i := 0; i < 3 && i < len(questions); i++ {
		if questions[i] != templates[i] {
			t.Errorf("question[%d] = %q, want template %q", i, questions[i], templates[i])
		}
	}
}

func TestGenerateQuestionsCap(t *testing.T) {
	content := strings.Repeat("Photosynthesis is defined as the process plants use to convert light into chemical energy. ", 3)
	questions := GenerateQuestions(content, "biology")
	if len(questions) > 10 {
		t.Errorf("generated %d questions, cap is 10", len(questions))
	}
}

func TestGenerateQuestionsNoDuplicates(t *testing.T) {
	questions := GenerateQuestions("some content", "general")
	seen := make(map[string]bool)
	for _, q := range questions {
		key := strings.ToLower(q)
		if seen[key] {
			t.Errorf("duplicate question %q", q)
		}
		seen[key] = true
	}
}

func TestExtractContentQuestionsDefinitions(t *testing.T) {
	content := "Encapsulation is defined as the bundling of data with the methods that operate on that data. " +
		"Encapsulation appears throughout the chapter. Encapsulation matters."

	questions := extractContentQuestions(content)

	found := false
	for _, q := range questions {
		if strings.HasPrefix(q, "What is Encapsulation") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a definition question for Encapsulation, got %v", questions)
	}
}

func TestDefinitionQuestionExtractorRanksFrequentTerms(t *testing.T) {
	content := "Routing is defined as the process of selecting network paths for traffic across networks today. " +
		"Switching is defined as the process of moving frames inside a single local network segment. " +
		"Routing appears again because routing matters and the chapter keeps returning to routing."

	cands := definitionQuestionExtractor{}.Extract(content)
	if len(cands) < 2 {
		t.Fatalf("extracted %d candidates, want at least 2", len(cands))
	}
	if cands[0].Term != "Routing" {
		t.Errorf("top candidate = %q, want the more frequent term Routing", cands[0].Term)
	}
	if cands[0].Question != "What is Routing?" {
		t.Errorf("question = %q", cands[0].Question)
	}
}

func TestExtractContentQuestionsClaimsTermsAcrossFamilies(t *testing.T) {
	// "Routing" shows up both as a defined term and as a
	// classification topic; only the first family to claim the term
	// may ask about it.
	content := "Routing is a technique for selecting network paths used to deliver packets across networks. " +
		"There are several types of routing."

	questions := extractContentQuestions(content)

	mentions := 0
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q), "routing") {
			mentions++
		}
	}
	if mentions > 1 {
		t.Errorf("term claimed by %d families, want at most 1: %v", mentions, questions)
	}
}

func TestExtractContentQuestionsGenericFill(t *testing.T) {
	questions := extractContentQuestions("nothing extractable here")

	if len(questions) < 5 {
		t.Fatalf("expected generic fill, got %d questions", len(questions))
	}
	found := false
	for _, q := range questions {
		if q == "What are the key takeaways from this material?" {
			found = true
		}
	}
	if !found {
		t.Errorf("generic questions missing from %v", questions)
	}
}

func TestGenerateQuestionsUnknownDomainFallsBack(t *testing.T) {
	questions := GenerateQuestions("content", "nonexistent_domain")
	if len(questions) == 0 {
		t.Fatal("unknown domain should fall back to general templates")
	}
	general := domaindata.QuestionsFor(domaindata.GeneralDomain)
	if questions[0] != general[0] {
		t.Errorf("question[0] = %q, want general template %q", questions[0], general[0])
	}
}
