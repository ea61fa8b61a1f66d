package biz

import (
	"context"
	"fmt"
	"strings"

	"github.com/kart-io/logger"

	"github.com/Sid2318/Edufy/internal/pkg/textutil"
	"github.com/Sid2318/Edufy/internal/study/store"
	"github.com/Sid2318/Edufy/pkg/llm"
)

// minChunkLength drops fragments too short to carry meaning, such as
// page numbers and stray headings left over from PDF extraction.
const minChunkLength = 20

// Indexer chunks extracted document text, embeds every chunk and
// writes the vectors into the store.
type Indexer struct {
	store      store.VectorStore
	embedder   llm.EmbeddingProvider
	collection string
	chunkSize  int
	overlap    int
}

func NewIndexer(st store.VectorStore, embedder llm.EmbeddingProvider, collection string, chunkSize, overlap int) *Indexer {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = chunkSize / 5
	}
	return &Indexer{
		store:      st,
		embedder:   embedder,
		collection: collection,
		chunkSize:  chunkSize,
		overlap:    overlap,
	}
}

// ChunkText splits document text into overlapping chunks and discards
// fragments shorter than minChunkLength.
func (ix *Indexer) ChunkText(text string) []string {
	raw := textutil.SplitIntoChunks(text, ix.chunkSize, ix.overlap)
	chunks := make([]string, 0, len(raw))
	for _, c := range raw {
		if len(strings.TrimSpace(c)) < minChunkLength {
			continue
		}
		chunks = append(chunks, c)
	}
	return chunks
}

// Index chunks, embeds and stores the document content. Returns the
// number of chunks written.
func (ix *Indexer) Index(ctx context.Context, docID, docName, content string) (int, error) {
	pieces := ix.ChunkText(content)
	if len(pieces) == 0 {
		return 0, fmt.Errorf("document %s produced no usable chunks", docName)
	}

	embeddings, err := ix.embedder.Embed(ctx, pieces)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}
	if len(embeddings) != len(pieces) {
		return 0, fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(pieces), len(embeddings))
	}

	chunks := make([]*store.Chunk, len(pieces))
	for i, content := range pieces {
		chunks[i] = &store.Chunk{
			DocumentID:   docID,
			DocumentName: docName,
			Section:      fmt.Sprintf("Section %d", i+1),
			Content:      content,
			Embedding:    embeddings[i],
		}
	}

	ids, err := ix.store.Insert(ctx, ix.collection, chunks)
	if err != nil {
		return 0, fmt.Errorf("insert chunks: %w", err)
	}

	logger.Infow("document indexed", "document", docName, "chunks", len(ids))
	return len(ids), nil
}
