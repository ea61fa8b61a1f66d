package biz

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kart-io/logger"
	"github.com/oklog/ulid/v2"

	"github.com/Sid2318/Edufy/internal/model"
	"github.com/Sid2318/Edufy/internal/pkg/textutil"
	"github.com/Sid2318/Edufy/internal/study/metrics"
	"github.com/Sid2318/Edufy/internal/study/store"
	"github.com/Sid2318/Edufy/pkg/llm"
)

// ErrNoDocument is returned when an operation needs an uploaded
// document and none is loaded.
var ErrNoDocument = fmt.Errorf("no document uploaded")

// Service is the study session interface: one uploaded document,
// questions answered against it, and generated study artifacts.
type Service interface {
	// Upload replaces the session document with the given file.
	Upload(ctx context.Context, filename string, size int64, r io.Reader) (*model.Document, error)
	// Status reports whether the session is ready for questions.
	Status(ctx context.Context) *model.ServiceStatus
	// Query answers a free-form question against the document.
	Query(ctx context.Context, question string) (*model.QueryResult, error)
	// SampleQuestions suggests questions worth asking about the document.
	SampleQuestions(ctx context.Context) (*model.QuestionSet, error)
	// Flashcards generates study flashcards from the document.
	Flashcards(ctx context.Context) (*model.FlashcardSet, error)
	// Stats returns service metrics for the API.
	Stats(ctx context.Context) (map[string]any, error)
}

// ServiceConfig collects the tunables for the study service.
type ServiceConfig struct {
	Collection    string
	EmbeddingDim  int
	ChunkSize     int
	ChunkOverlap  int
	DataDir       string
	MaxFlashcards int
	RegenWindow   time.Duration
	ProbeTimeout  time.Duration
	GenTimeout    time.Duration
}

// StudyService wires the extractor, indexer, retriever, answer
// builder and generators into the session lifecycle.
type StudyService struct {
	extractor  Extractor
	indexer    *Indexer
	retriever  *Retriever
	answers    *AnswerBuilder
	flashcards *FlashcardGenerator
	gateway    *ModelGateway
	state      *SessionState
	cache      *generationCache
	store      store.VectorStore
	config     *ServiceConfig
	metrics    *metrics.StudyMetrics
}

var _ Service = (*StudyService)(nil)

func NewStudyService(
	vectorStore store.VectorStore,
	embedder llm.EmbeddingProvider,
	chat llm.ChatProvider,
	config *ServiceConfig,
) *StudyService {
	gateway := NewModelGateway(chat, config.ProbeTimeout, config.GenTimeout)
	return &StudyService{
		extractor:  NewExtractor(),
		indexer:    NewIndexer(vectorStore, embedder, config.Collection, config.ChunkSize, config.ChunkOverlap),
		retriever:  NewRetriever(vectorStore, embedder, config.Collection),
		answers:    NewAnswerBuilder(gateway),
		flashcards: NewFlashcardGenerator(gateway, config.MaxFlashcards),
		gateway:    gateway,
		state:      NewSessionState(),
		cache:      newGenerationCache(),
		store:      vectorStore,
		config:     config,
		metrics:    metrics.Get(),
	}
}

// Upload replaces the session document: the previous file, its
// vectors and every cached artifact are gone before the new document
// becomes visible.
func (s *StudyService) Upload(ctx context.Context, filename string, size int64, r io.Reader) (doc *model.Document, err error) {
	defer func() { s.metrics.RecordUpload(err) }()

	if !s.extractor.Supports(filename) {
		return nil, fmt.Errorf("unsupported file type %q, supported: %s",
			filepath.Ext(filename), strings.Join(s.extractor.SupportedExtensions(), ", "))
	}
	if size <= 0 {
		return nil, fmt.Errorf("empty upload %q", filename)
	}

	// Invalidate the old session before anything about the new
	// document becomes observable.
	s.state.Reset()
	s.cache.Clear()

	path, err := s.persistUpload(filename, r)
	if err != nil {
		return nil, err
	}
	// Any failure past this point rolls the session back to empty,
	// including the file already written to disk.
	defer func() {
		if err != nil {
			if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
				logger.Warnw("rollback of uploaded file failed", "path", path, "error", rmErr)
			}
		}
	}()

	content, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	if err := s.rebuildCollection(ctx); err != nil {
		return nil, err
	}

	docID := ulid.Make().String()
	chunks, err := s.indexer.Index(ctx, docID, filename, content)
	s.metrics.RecordIndexing(1, chunks, err)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", filename, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	doc = &model.Document{
		ID:         docID,
		Name:       filename,
		Path:       path,
		Size:       info.Size(),
		Hash:       textutil.Fingerprint(content),
		ChunkNum:   chunks,
		Domain:     DetectDomain(content),
		UploadedAt: time.Now(),
	}
	s.state.Set(doc, content)

	logger.Infow("document uploaded", "name", filename, "chunks", chunks, "domain", doc.Domain)
	return doc, nil
}

// persistUpload clears the data directory and writes the new file, so
// exactly one document ever lives on disk.
func (s *StudyService) persistUpload(filename string, r io.Reader) (string, error) {
	dir := s.config.DataDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read data dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return "", fmt.Errorf("remove previous document %s: %w", e.Name(), err)
		}
	}

	path := filepath.Join(dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (s *StudyService) rebuildCollection(ctx context.Context) error {
	if err := s.store.DropCollection(ctx, s.config.Collection); err != nil {
		return fmt.Errorf("drop collection: %w", err)
	}
	return s.store.CreateCollection(ctx, &store.CollectionConfig{
		Name:        s.config.Collection,
		Description: "study document chunks",
		Dimension:   s.config.EmbeddingDim,
	})
}

// Status reports session readiness.
func (s *StudyService) Status(ctx context.Context) *model.ServiceStatus {
	_, dbErr := s.store.GetStats(ctx, s.config.Collection)

	doc := s.state.Document()
	if doc == nil {
		return &model.ServiceStatus{
			Status:        model.StatusNoDocuments,
			Message:       "Upload a document to start asking questions.",
			DatabaseReady: dbErr == nil,
		}
	}
	return &model.ServiceStatus{
		Status:  model.StatusReady,
		Message: fmt.Sprintf("Ready to answer questions about %s.", doc.Name),
		Documents: []model.DocumentInfo{{
			Name:          doc.Name,
			Size:          doc.Size,
			SizeFormatted: doc.SizeFormatted(),
		}},
		DatabaseReady: dbErr == nil,
	}
}

// Query answers a question using intent-adaptive retrieval. Answers
// are cached per document so repeated questions skip retrieval and
// the model entirely.
func (s *StudyService) Query(ctx context.Context, question string) (result *model.QueryResult, err error) {
	cacheHit := false
	defer func() { s.metrics.RecordQuery(cacheHit, err) }()

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("empty question")
	}
	if s.state.Document() == nil {
		return nil, ErrNoDocument
	}

	key := CacheKey("answer", s.state.Content(), question)
	if cached, ok := s.cache.Get(key); ok {
		if res, ok := cached.(*model.QueryResult); ok {
			cacheHit = true
			return res, nil
		}
	}

	intent := AnalyzeIntent(question)
	totalChunks := s.retriever.EstimateChunkCount(ctx)
	k := CalculateK(totalChunks, intent, len(question))

	logger.Infow("query analyzed", "intent", intent, "chunks", totalChunks, "k", k)

	start := time.Now()
	results, err := s.retriever.Retrieve(ctx, question, k)
	s.metrics.RecordRetrieval(time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	modelStart := time.Now()
	answer, method := s.answers.Answer(ctx, question, results, intent)
	if method == model.MethodAIEnhanced {
		s.metrics.RecordModelCall(time.Since(modelStart), nil)
	}

	sources := make([]model.ChunkSource, len(results))
	doc := s.state.Document()
	for i, res := range results {
		name := res.DocumentName
		if name == "" && doc != nil {
			name = doc.Name
		}
		sources[i] = model.ChunkSource{
			DocumentID:   res.DocumentID,
			DocumentName: name,
			Section:      res.Section,
			Content:      res.Content,
			Score:        res.Score,
		}
	}

	result = &model.QueryResult{
		Question:      question,
		Answer:        answer,
		Method:        method,
		Intent:        intent,
		KUsed:         k,
		TotalSections: totalChunks,
		Sources:       sources,
	}
	s.cache.Set(key, result)
	return result, nil
}

// SampleQuestions returns suggested questions, serving a regenerating
// placeholder set while a fresh upload is still settling.
func (s *StudyService) SampleQuestions(ctx context.Context) (*model.QuestionSet, error) {
	doc := s.state.Document()
	if doc == nil {
		return nil, ErrNoDocument
	}
	if s.state.InRegenWindow(s.config.RegenWindow) {
		return &model.QuestionSet{
			Questions: PlaceholderQuestions(),
			Status:    model.StatusRegenerating,
			Message:   "Fresh questions are being generated from your new document.",
		}, nil
	}

	source := s.generationSource(ctx)
	key := CacheKey("questions", source)
	if cached, ok := s.cache.Get(key); ok {
		if qs, ok := cached.(*model.QuestionSet); ok {
			return qs, nil
		}
	}

	set := &model.QuestionSet{Questions: GenerateQuestions(source, doc.Domain)}
	s.cache.Set(key, set)
	return set, nil
}

// Flashcards returns study flashcards, serving a regenerating
// placeholder set while a fresh upload is still settling.
func (s *StudyService) Flashcards(ctx context.Context) (*model.FlashcardSet, error) {
	doc := s.state.Document()
	if doc == nil {
		return nil, ErrNoDocument
	}
	if s.state.InRegenWindow(s.config.RegenWindow) {
		cards := PlaceholderFlashcards()
		return &model.FlashcardSet{
			Flashcards: cards,
			Total:      len(cards),
			Status:     model.StatusRegenerating,
			Message:    "Fresh flashcards are being generated from your new document.",
		}, nil
	}

	source := s.generationSource(ctx)
	key := CacheKey("flashcards", source, s.config.MaxFlashcards)
	if cached, ok := s.cache.Get(key); ok {
		if set, ok := cached.(*model.FlashcardSet); ok {
			return set, nil
		}
	}

	cards := s.flashcards.Generate(ctx, source, doc.Domain)
	set := &model.FlashcardSet{Flashcards: cards, Total: len(cards)}
	s.cache.Set(key, set)
	return set, nil
}

// generationSource gathers diverse passages with broad retrieval for
// question and flashcard generation. When nothing comes back, the raw
// document text stands in so generation still works without the
// vector store.
func (s *StudyService) generationSource(ctx context.Context) string {
	results := s.retriever.RetrieveBroad(ctx)
	if len(results) == 0 {
		return s.state.Content()
	}
	parts := make([]string, len(results))
	for i, res := range results {
		parts[i] = res.Content
	}
	return strings.Join(parts, "\n\n")
}

// Stats returns service metrics plus collection counters.
func (s *StudyService) Stats(ctx context.Context) (map[string]any, error) {
	stats := s.metrics.Stats()
	if n, err := s.store.GetStats(ctx, s.config.Collection); err == nil {
		stats["collection"] = map[string]any{
			"name":    s.config.Collection,
			"vectors": n,
		}
	}
	if doc := s.state.Document(); doc != nil {
		stats["document"] = map[string]any{
			"name":   doc.Name,
			"chunks": doc.ChunkNum,
			"domain": doc.Domain,
		}
	}
	return stats, nil
}
