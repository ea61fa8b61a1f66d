package biz

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/Sid2318/Edufy/internal/pkg/domaindata"
)

// maxSampleQuestions caps the number of sample questions returned.
const maxSampleQuestions = 10

// maxContentQuestions caps how many content-extracted questions are
// merged in after the domain templates.
const maxContentQuestions = 4

var definitionQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]{2,25})\s+(?:is|are)\s+(?:defined\s+as\s+)?([^.!?]{20,100}[.!?])`),
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]{2,25})\s+(?:means?|refers?\s+to)\s+([^.!?]{15,80}[.!?])`),
	regexp.MustCompile(`(?i)(?:the\s+term\s+|the\s+concept\s+of\s+)?([A-Z][a-zA-Z\s]{2,25})\s+is\s+([^.!?]{20,100}[.!?])`),
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]{2,25})\s+(?:can\s+be\s+)?defined\s+as\s+([^.!?]{15,80}[.!?])`),
}

var processQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:steps?|phases?|stages?|procedures?)\s+(?:of|for|in|to)\s+([^.!?]{5,30})`),
	regexp.MustCompile(`(?i)(?:how\s+to|process\s+of|method\s+for)\s+([^.!?]{5,40})`),
	regexp.MustCompile(`(?i)([^.!?]{5,30})\s+(?:process|procedure|method|approach)`),
	regexp.MustCompile(`(?i)(?:first|second|third|initially|then|next|finally)[,\s]+([^.!?]{10,50})`),
}

var classificationQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:different\s+)?(?:types?|kinds?|categories|forms?)\s+of\s+([^.!?]{3,30})`),
	regexp.MustCompile(`(?i)([^.!?]{3,30})\s+(?:can\s+be\s+)?(?:classified|categorized|divided)\s+into`),
	regexp.MustCompile(`(?i)(?:main|primary|key)\s+([^.!?]{3,30})\s+(?:include|are)`),
	regexp.MustCompile(`(?i)(?:several|many|various|multiple)\s+([^.!?]{3,30})\s+(?:exist|are\s+available|can\s+be\s+found)`),
}

var comparisonQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:difference|differences)\s+between\s+([^.!?]{5,40})\s+and\s+([^.!?]{5,40})`),
	regexp.MustCompile(`(?i)(?:compared?\s+to|versus|vs\.?)\s+([^.!?]{5,30})`),
	regexp.MustCompile(`(?i)(?:advantages?|benefits?|pros?)\s+(?:of|and)\s+([^.!?]{5,30})`),
	regexp.MustCompile(`(?i)(?:disadvantages?|drawbacks?|cons?)\s+(?:of|and)\s+([^.!?]{5,30})`),
}

var applicationQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:used\s+for|applications?\s+of|applied\s+in)\s+([^.!?]{5,40})`),
	regexp.MustCompile(`(?i)(?:importance|significance|role)\s+of\s+([^.!?]{5,40})`),
	regexp.MustCompile(`(?i)(?:impact|effect|influence)\s+(?:of|on)\s+([^.!?]{5,40})`),
}

var topicQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:chapter|section)\s+\d+[:\s]*([^.!?\n]{5,40})`),
	regexp.MustCompile(`(?i)(?:introduction\s+to|overview\s+of)\s+([^.!?]{5,40})`),
	regexp.MustCompile(`(?i)(?:understanding|learning|studying)\s+([^.!?]{5,40})`),
}

var genericQuestions = []string{
	"What are the main objectives discussed in this document?",
	"What are the key takeaways from this material?",
	"What practical applications are mentioned in this document?",
	"What challenges or problems are addressed in this content?",
	"What solutions or recommendations are provided?",
}

var vagueTermWords = []string{"this", "that", "these", "those", "such", "other"}

// questionFamilies is the question mining pipeline, run in order with
// a per-family candidate cap. Cross-family term deduplication happens
// in the composer so an extractor never has to know about its peers.
var questionFamilies = []struct {
	extractor PatternExtractor
	cap       int
}{
	{definitionQuestionExtractor{}, 4},
	{processQuestionExtractor{}, 3},
	{classificationQuestionExtractor{}, 3},
	{comparisonQuestionExtractor{}, 2},
	{applicationQuestionExtractor{}, 2},
}

// definitionQuestionExtractor mines defined terms, scored by how
// often the term appears and how substantial its definition is, best
// first.
type definitionQuestionExtractor struct{}

func (definitionQuestionExtractor) Extract(text string) []Candidate {
	textLower := strings.ToLower(text)

	type scoredTerm struct {
		term  string
		score float64
	}
	var defs []scoredTerm
	seen := make(map[string]struct{})
	for _, pat := range definitionQuestionPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			term := titleCase(strings.TrimSpace(m[1]))
			def := strings.TrimSpace(m[2])
			if len(strings.Fields(term)) > 4 || len(term) <= 3 || len(def) <= 20 {
				continue
			}
			if containsAny(strings.ToLower(term), vagueTermWords) {
				continue
			}
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			freq := strings.Count(textLower, strings.ToLower(term))
			defs = append(defs, scoredTerm{term: term, score: float64(freq) + float64(len(def))/10})
		}
	}
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].score > defs[j].score })

	out := make([]Candidate, len(defs))
	for i, d := range defs {
		out[i] = Candidate{Term: d.term, Question: "What is " + d.term + "?"}
	}
	return out
}

// processQuestionExtractor mines processes and methodologies.
type processQuestionExtractor struct{}

func (processQuestionExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range processQuestionPatterns {
		for _, m := range pat.FindAllStringSubmatch(strings.ToLower(text), -1) {
			proc := titleCase(strings.TrimSpace(m[1]))
			if len(strings.Fields(proc)) > 6 || len(proc) <= 5 {
				continue
			}
			if containsAny(strings.ToLower(proc), []string{"this", "that", "these", "example"}) {
				continue
			}
			out = append(out, Candidate{Term: proc, Question: "What are the steps involved in " + proc + "?"})
		}
	}
	return out
}

// classificationQuestionExtractor mines "types of X" topics.
type classificationQuestionExtractor struct{}

func (classificationQuestionExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range classificationQuestionPatterns {
		for _, m := range pat.FindAllStringSubmatch(strings.ToLower(text), -1) {
			topic := titleCase(strings.TrimSpace(m[1]))
			if len(strings.Fields(topic)) > 4 || len(topic) <= 3 {
				continue
			}
			out = append(out, Candidate{Term: topic, Question: "What are the different types of " + topic + "?"})
		}
	}
	return out
}

// comparisonQuestionExtractor mines compared terms, one candidate per
// captured side.
type comparisonQuestionExtractor struct{}

func (comparisonQuestionExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range comparisonQuestionPatterns {
		for _, m := range pat.FindAllStringSubmatch(strings.ToLower(text), -1) {
			for _, group := range m[1:] {
				item := titleCase(strings.TrimSpace(group))
				if item == "" || len(strings.Fields(item)) > 4 {
					continue
				}
				out = append(out, Candidate{Term: item, Question: "What are the advantages and disadvantages of " + item + "?"})
			}
		}
	}
	return out
}

// applicationQuestionExtractor mines applications and importance
// phrasing.
type applicationQuestionExtractor struct{}

func (applicationQuestionExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range applicationQuestionPatterns {
		for _, m := range pat.FindAllStringSubmatch(strings.ToLower(text), -1) {
			app := titleCase(strings.TrimSpace(m[1]))
			if len(strings.Fields(app)) > 4 || len(app) <= 3 {
				continue
			}
			out = append(out, Candidate{Term: app, Question: "What is the importance of " + app + "?"})
		}
	}
	return out
}

// topicQuestionExtractor mines chapter and section headings; only
// consulted when the main families come up short.
type topicQuestionExtractor struct{}

func (topicQuestionExtractor) Extract(text string) []Candidate {
	var out []Candidate
	for _, pat := range topicQuestionPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			topic := titleCase(strings.TrimSpace(m[1]))
			if len(strings.Fields(topic)) > 5 || len(topic) <= 5 {
				continue
			}
			out = append(out, Candidate{Question: "Explain the key concepts related to " + topic})
		}
	}
	return out
}

// GenerateQuestions produces sample questions for a document: domain
// template questions first, then up to four questions extracted from
// the content itself.
func GenerateQuestions(content, domain string) []string {
	templates := domaindata.QuestionsFor(domain)
	extracted := extractContentQuestions(content)

	merged := make([]string, 0, maxSampleQuestions)
	seen := make(map[string]struct{})
	appendUnique := func(qs []string, limit int) {
		added := 0
		for _, q := range qs {
			if limit > 0 && added >= limit {
				return
			}
			key := strings.ToLower(q)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, q)
			added++
		}
	}

	appendUnique(templates, 8)
	appendUnique(extracted, maxContentQuestions)

	if len(merged) > maxSampleQuestions {
		merged = merged[:maxSampleQuestions]
	}
	return merged
}

// extractContentQuestions composes the question mining pipeline:
// each family contributes up to its cap, terms are claimed across
// families so the same subject never yields two questions, and topic
// plus generic fillers pad the list to eight when mining comes up
// short.
func extractContentQuestions(content string) []string {
	var questions []string
	claimed := make(map[string]struct{})

	for _, fam := range questionFamilies {
		count := 0
		for _, c := range fam.extractor.Extract(content) {
			if count >= fam.cap {
				break
			}
			key := strings.ToLower(c.Term)
			if _, dup := claimed[key]; dup {
				continue
			}
			claimed[key] = struct{}{}
			questions = append(questions, c.Question)
			count++
		}
	}

	if len(questions) < 8 {
		topics := 0
		for _, c := range (topicQuestionExtractor{}).Extract(content) {
			if topics >= 2 {
				break
			}
			questions = append(questions, c.Question)
			topics++
		}
		for _, g := range genericQuestions {
			if len(questions) >= 8 {
				break
			}
			questions = append(questions, g)
		}
	}

	return questions
}

// titleCase uppercases the first letter of each word, matching how
// extracted terms are normalized before being slotted into questions.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
