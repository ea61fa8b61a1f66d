package biz

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Sid2318/Edufy/internal/model"
)

func newTestService(t *testing.T, fake *fakeVectorStore, regenWindow time.Duration) *StudyService {
	t.Helper()
	return newTestServiceWith(t, fake, &mockEmbedder{dim: 4}, regenWindow)
}

func newTestServiceWith(t *testing.T, fake *fakeVectorStore, embedder *mockEmbedder, regenWindow time.Duration) *StudyService {
	t.Helper()
	return NewStudyService(fake, embedder, nil, &ServiceConfig{
		Collection:    "study_documents",
		EmbeddingDim:  4,
		ChunkSize:     200,
		ChunkOverlap:  40,
		DataDir:       t.TempDir(),
		MaxFlashcards: 15,
		RegenWindow:   regenWindow,
		ProbeTimeout:  time.Second,
		GenTimeout:    time.Second,
	})
}

const testDocument = "The OSI model structures network communication into seven layers. " +
	"A router is a device that forwards packets between computer networks. " +
	"TCP provides reliable transport while UDP is faster but unreliable. " +
	"Types of cables: twisted pair, coaxial and fiber optic are common in a lan. " +
	"It is important to secure the firewall and document every subnet."

func uploadTestDocument(t *testing.T, svc *StudyService) *model.Document {
	t.Helper()
	doc, err := svc.Upload(context.Background(), "notes.txt", int64(len(testDocument)), strings.NewReader(testDocument))
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	return doc
}

func TestUpload(t *testing.T) {
	fake := newFakeVectorStore()
	svc := newTestService(t, fake, 0)

	doc := uploadTestDocument(t, svc)

	if doc.ID == "" {
		t.Error("document ID not assigned")
	}
	if doc.Name != "notes.txt" {
		t.Errorf("document name = %q", doc.Name)
	}
	if doc.ChunkNum == 0 {
		t.Error("no chunks indexed")
	}
	if doc.Domain != "computer_networks" {
		t.Errorf("detected domain = %q, want computer_networks", doc.Domain)
	}
	if len(doc.Hash) != 64 {
		t.Errorf("hash length = %d, want 64", len(doc.Hash))
	}
	if _, err := os.Stat(doc.Path); err != nil {
		t.Errorf("uploaded file missing on disk: %v", err)
	}
}

func TestUploadUnsupportedType(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)

	_, err := svc.Upload(context.Background(), "slides.pptx", 100, strings.NewReader("x"))
	if err == nil {
		t.Fatal("Upload() should reject unsupported file types")
	}
	if !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("error = %v", err)
	}
}

func TestUploadEmptyFile(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)
	if _, err := svc.Upload(context.Background(), "notes.txt", 0, strings.NewReader("")); err == nil {
		t.Error("Upload() should reject empty files")
	}
}

func TestUploadReplacesPreviousDocument(t *testing.T) {
	fake := newFakeVectorStore()
	svc := newTestService(t, fake, 0)

	first := uploadTestDocument(t, svc)

	second := "Cells contain DNA and chromosomes. Mitosis divides the cell. " +
		"Enzymes drive the metabolism of every organism in the ecosystem."
	doc, err := svc.Upload(context.Background(), "bio.txt", int64(len(second)), strings.NewReader(second))
	if err != nil {
		t.Fatalf("second Upload() error: %v", err)
	}

	if doc.Domain != "biology" {
		t.Errorf("second domain = %q, want biology", doc.Domain)
	}

	// Previous file is gone from disk.
	if _, err := os.Stat(first.Path); !os.IsNotExist(err) {
		t.Error("previous document should be removed from disk")
	}

	// Only the new document's chunks remain in the store.
	for _, c := range fake.chunks {
		if c.DocumentName != "bio.txt" {
			t.Errorf("stale chunk from %q survived the replacement", c.DocumentName)
		}
	}

	// Status reports exactly one document.
	status := svc.Status(context.Background())
	if len(status.Documents) != 1 || status.Documents[0].Name != "bio.txt" {
		t.Errorf("status documents = %+v", status.Documents)
	}
}

func TestStatusNoDocuments(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)

	status := svc.Status(context.Background())
	if status.Status != model.StatusNoDocuments {
		t.Errorf("status = %q, want %q", status.Status, model.StatusNoDocuments)
	}
	if !status.DatabaseReady {
		t.Error("fake store should report database ready")
	}
}

func TestStatusReady(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)
	uploadTestDocument(t, svc)

	status := svc.Status(context.Background())
	if status.Status != model.StatusReady {
		t.Errorf("status = %q, want %q", status.Status, model.StatusReady)
	}
	if !strings.Contains(status.Message, "notes.txt") {
		t.Errorf("message = %q", status.Message)
	}
}

func TestQueryWithoutDocument(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)
	if _, err := svc.Query(context.Background(), "what is this?"); !errors.Is(err, ErrNoDocument) {
		t.Errorf("Query() error = %v, want ErrNoDocument", err)
	}
}

func TestQueryEmptyQuestion(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)
	if _, err := svc.Query(context.Background(), "   "); err == nil {
		t.Error("Query() should reject empty questions")
	}
}

func TestQueryFallbackAnswer(t *testing.T) {
	fake := newFakeVectorStore()
	svc := newTestService(t, fake, 0)
	uploadTestDocument(t, svc)

	result, err := svc.Query(context.Background(), "Define a router")
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}

	if result.Intent != IntentSpecific {
		t.Errorf("intent = %q, want %q", result.Intent, IntentSpecific)
	}
	// No chat provider is wired, so the extractive path answers.
	if result.Method != model.MethodFallback {
		t.Errorf("method = %q, want %q", result.Method, model.MethodFallback)
	}
	if len(result.Sources) == 0 {
		t.Error("no sources returned")
	}
	if result.KUsed < 1 || result.KUsed > result.TotalSections {
		t.Errorf("k = %d outside [1, %d]", result.KUsed, result.TotalSections)
	}
	if !strings.Contains(result.Answer, "Here's the specific information I found") {
		t.Errorf("answer = %q", result.Answer)
	}
}

func TestSampleQuestionsPlaceholdersDuringRegen(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), time.Hour)
	uploadTestDocument(t, svc)

	qs, err := svc.SampleQuestions(context.Background())
	if err != nil {
		t.Fatalf("SampleQuestions() error: %v", err)
	}
	if qs.Questions[0] != "Analyzing your new document..." {
		t.Errorf("expected placeholders inside regen window, got %v", qs.Questions)
	}
	if qs.Status != model.StatusRegenerating {
		t.Errorf("status = %q, want %q", qs.Status, model.StatusRegenerating)
	}
	if qs.Message == "" {
		t.Error("regenerating response should carry a message")
	}

	cards, err := svc.Flashcards(context.Background())
	if err != nil {
		t.Fatalf("Flashcards() error: %v", err)
	}
	if cards.Flashcards[0].Question != "Document Updated" {
		t.Errorf("expected placeholder cards inside regen window, got %+v", cards.Flashcards[0])
	}
	if cards.Status != model.StatusRegenerating {
		t.Errorf("status = %q, want %q", cards.Status, model.StatusRegenerating)
	}
	if cards.Message == "" {
		t.Error("regenerating response should carry a message")
	}
	if cards.Total != len(cards.Flashcards) {
		t.Errorf("total = %d, want %d", cards.Total, len(cards.Flashcards))
	}
}

func TestSampleQuestionsCached(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)
	uploadTestDocument(t, svc)

	first, err := svc.SampleQuestions(context.Background())
	if err != nil {
		t.Fatalf("SampleQuestions() error: %v", err)
	}
	if len(first.Questions) == 0 {
		t.Fatal("no questions generated")
	}
	if first.Questions[0] == "Analyzing your new document..." {
		t.Error("zero regen window should serve real questions")
	}
	if first.Status != "" {
		t.Errorf("settled response should carry no status, got %q", first.Status)
	}

	if svc.cache.Len() == 0 {
		t.Error("questions should be cached")
	}

	second, err := svc.SampleQuestions(context.Background())
	if err != nil {
		t.Fatalf("second SampleQuestions() error: %v", err)
	}
	if len(second.Questions) != len(first.Questions) {
		t.Errorf("cached call returned %d questions, first returned %d", len(second.Questions), len(first.Questions))
	}
}

func TestFlashcardsWithoutDocument(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)
	if _, err := svc.Flashcards(context.Background()); !errors.Is(err, ErrNoDocument) {
		t.Errorf("Flashcards() error = %v, want ErrNoDocument", err)
	}
}

func TestStats(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)
	uploadTestDocument(t, svc)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if _, ok := stats["queries"]; !ok {
		t.Error("stats missing queries section")
	}
	docStats, ok := stats["document"].(map[string]any)
	if !ok {
		t.Fatal("stats missing document section")
	}
	if docStats["name"] != "notes.txt" {
		t.Errorf("document stats = %+v", docStats)
	}
}

func TestUploadRollbackOnIndexFailure(t *testing.T) {
	embedder := &mockEmbedder{dim: 4, err: errors.New("embedder down")}
	svc := newTestServiceWith(t, newFakeVectorStore(), embedder, 0)

	_, err := svc.Upload(context.Background(), "notes.txt", int64(len(testDocument)), strings.NewReader(testDocument))
	if err == nil {
		t.Fatal("Upload() should fail when indexing fails")
	}

	entries, readErr := os.ReadDir(svc.config.DataDir)
	if readErr != nil {
		t.Fatalf("read data dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("failed upload left %d file(s) behind", len(entries))
	}
	if svc.state.Document() != nil {
		t.Error("failed upload should leave the session empty")
	}
}

func TestQueryCachedServesRepeatQuestions(t *testing.T) {
	embedder := &mockEmbedder{dim: 4}
	svc := newTestServiceWith(t, newFakeVectorStore(), embedder, 0)
	uploadTestDocument(t, svc)

	first, err := svc.Query(context.Background(), "Define a router")
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	calls := embedder.calls

	second, err := svc.Query(context.Background(), "Define a router")
	if err != nil {
		t.Fatalf("repeat Query() error: %v", err)
	}
	if embedder.calls != calls {
		t.Errorf("repeat question hit retrieval, embed calls went %d -> %d", calls, embedder.calls)
	}
	if second.Answer != first.Answer {
		t.Errorf("cached answer differs: %q vs %q", second.Answer, first.Answer)
	}
}

func TestGenerationRetrievesBroadPassages(t *testing.T) {
	embedder := &mockEmbedder{dim: 4}
	svc := newTestServiceWith(t, newFakeVectorStore(), embedder, 0)
	uploadTestDocument(t, svc)

	calls := embedder.calls
	if _, err := svc.SampleQuestions(context.Background()); err != nil {
		t.Fatalf("SampleQuestions() error: %v", err)
	}
	if got := embedder.calls - calls; got != len(broadQueries) {
		t.Errorf("question generation issued %d embeddings, want one per aspect query (%d)", got, len(broadQueries))
	}
}

func TestSummaryQueryRetrievesOnce(t *testing.T) {
	embedder := &mockEmbedder{dim: 4}
	svc := newTestServiceWith(t, newFakeVectorStore(), embedder, 0)
	uploadTestDocument(t, svc)

	calls := embedder.calls
	if _, err := svc.Query(context.Background(), "Give me a summary of the document"); err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	if got := embedder.calls - calls; got != 1 {
		t.Errorf("summary question issued %d embeddings, want 1", got)
	}
}

func TestUploadClearsCache(t *testing.T) {
	svc := newTestService(t, newFakeVectorStore(), 0)
	uploadTestDocument(t, svc)

	if _, err := svc.SampleQuestions(context.Background()); err != nil {
		t.Fatalf("SampleQuestions() error: %v", err)
	}
	if svc.cache.Len() == 0 {
		t.Fatal("cache should be warm")
	}

	other := "Cells contain DNA and chromosomes. Mitosis divides the cell into two."
	if _, err := svc.Upload(context.Background(), "bio.txt", int64(len(other)), strings.NewReader(other)); err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	// The cache was cleared at the start of the upload; anything in it
	// now belongs to the new document only.
	if svc.cache.Len() != 0 {
		t.Error("cache should be empty right after replacement")
	}

	if _, err := os.Stat(filepath.Join(svc.config.DataDir, "bio.txt")); err != nil {
		t.Errorf("new document missing: %v", err)
	}
}
