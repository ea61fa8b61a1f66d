package biz

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sid2318/Edufy/internal/study/store"
	"github.com/Sid2318/Edufy/pkg/llm"
)

// mockEmbedder returns fixed-size zero vectors, counting calls.
type mockEmbedder struct {
	dim   int
	err   error
	calls int
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = make([]float32, m.dim)
	}
	return out, nil
}

func (m *mockEmbedder) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	vecs, err := m.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (m *mockEmbedder) Name() string { return "mock-embedder" }

// mockChat returns a canned response and optionally fails pings.
type mockChat struct {
	response string
	genErr   error
	pingErr  error
	calls    int
}

func (m *mockChat) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	if m.genErr != nil {
		return "", m.genErr
	}
	return m.response, nil
}

func (m *mockChat) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	m.calls++
	if m.genErr != nil {
		return "", m.genErr
	}
	return m.response, nil
}

func (m *mockChat) Ping(ctx context.Context) error { return m.pingErr }

func (m *mockChat) Name() string { return "mock-chat" }

// fakeVectorStore keeps chunks in memory and returns them in
// insertion order from Search.
type fakeVectorStore struct {
	mu        sync.Mutex
	chunks    []*store.Chunk
	statsErr  error
	searchErr error
	nextID    int
}

func newFakeVectorStore() *fakeVectorStore {
	return &fakeVectorStore{}
}

func (f *fakeVectorStore) CreateCollection(ctx context.Context, config *store.CollectionConfig) error {
	return nil
}

func (f *fakeVectorStore) DropCollection(ctx context.Context, collection string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chunks = nil
	return nil
}

func (f *fakeVectorStore) Insert(ctx context.Context, collection string, chunks []*store.Chunk) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, len(chunks))
	for i, c := range chunks {
		f.nextID++
		c.ID = fmt.Sprintf("%d", f.nextID)
		ids[i] = c.ID
		f.chunks = append(f.chunks, c)
	}
	return ids, nil
}

func (f *fakeVectorStore) Search(ctx context.Context, collection string, embedding []float32, topK int) ([]*store.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var results []*store.SearchResult
	for i, c := range f.chunks {
		if i >= topK {
			break
		}
		results = append(results, &store.SearchResult{
			ID:           c.ID,
			DocumentID:   c.DocumentID,
			DocumentName: c.DocumentName,
			Section:      c.Section,
			Content:      c.Content,
			Score:        1.0,
		})
	}
	return results, nil
}

func (f *fakeVectorStore) GetStats(ctx context.Context, collection string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return 0, f.statsErr
	}
	return int64(len(f.chunks)), nil
}

func (f *fakeVectorStore) Close(ctx context.Context) error { return nil }
