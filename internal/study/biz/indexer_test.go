package biz

import (
	"context"
	"strings"
	"testing"
)

func TestChunkTextDropsShortFragments(t *testing.T) {
	ix := NewIndexer(newFakeVectorStore(), &mockEmbedder{dim: 4}, "c", 100, 20)

	long := strings.Repeat("meaningful study content here. ", 10)
	chunks := ix.ChunkText(long)
	if len(chunks) == 0 {
		t.Fatal("expected chunks from long text")
	}
	for _, c := range chunks {
		if len(strings.TrimSpace(c)) < minChunkLength {
			t.Errorf("short fragment survived: %q", c)
		}
	}

	if got := ix.ChunkText("tiny"); len(got) != 0 {
		t.Errorf("ChunkText(tiny) = %v, want none", got)
	}
}

func TestChunkTextOverlap(t *testing.T) {
	ix := NewIndexer(newFakeVectorStore(), &mockEmbedder{dim: 4}, "c", 50, 10)
	text := strings.Repeat("abcdefghij", 20)

	chunks := ix.ChunkText(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// Consecutive chunks share the overlap region.
	first := chunks[0]
	second := chunks[1]
	if !strings.HasPrefix(second, first[len(first)-10:]) {
		t.Error("second chunk should start with the overlap of the first")
	}
}

func TestIndex(t *testing.T) {
	fake := newFakeVectorStore()
	embedder := &mockEmbedder{dim: 4}
	ix := NewIndexer(fake, embedder, "c", 100, 20)

	content := strings.Repeat("networks move packets between hosts. ", 12)
	n, err := ix.Index(context.Background(), "doc-1", "notes.txt", content)
	if err != nil {
		t.Fatalf("Index() error: %v", err)
	}
	if n == 0 {
		t.Fatal("Index() stored no chunks")
	}
	if len(fake.chunks) != n {
		t.Errorf("store holds %d chunks, Index reported %d", len(fake.chunks), n)
	}

	for i, c := range fake.chunks {
		if c.DocumentID != "doc-1" || c.DocumentName != "notes.txt" {
			t.Errorf("chunk %d metadata = %q/%q", i, c.DocumentID, c.DocumentName)
		}
		if c.Section == "" {
			t.Errorf("chunk %d missing section label", i)
		}
		if len(c.Embedding) != 4 {
			t.Errorf("chunk %d embedding dim = %d", i, len(c.Embedding))
		}
	}
}

func TestIndexEmptyContent(t *testing.T) {
	ix := NewIndexer(newFakeVectorStore(), &mockEmbedder{dim: 4}, "c", 100, 20)
	if _, err := ix.Index(context.Background(), "doc-1", "notes.txt", "   "); err == nil {
		t.Error("Index() should fail on content with no usable chunks")
	}
}

func TestNewIndexerDefaults(t *testing.T) {
	ix := NewIndexer(newFakeVectorStore(), &mockEmbedder{dim: 4}, "c", 0, -5)
	if ix.chunkSize != 1000 {
		t.Errorf("default chunk size = %d", ix.chunkSize)
	}
	if ix.overlap != 200 {
		t.Errorf("default overlap = %d", ix.overlap)
	}
}
