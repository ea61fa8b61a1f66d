package biz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/kart-io/logger"

	"github.com/Sid2318/Edufy/internal/study/store"
	"github.com/Sid2318/Edufy/pkg/llm"
)

// probeQuery is a throwaway query used only to estimate how many
// chunks the collection holds when stats are not available.
const probeQuery = "sample query for counting"

// probeLimit caps the chunk-count probe; documents larger than this
// are simply treated as "very large" by the k heuristic.
const probeLimit = 100

// fallbackChunkCount is assumed when the probe itself fails.
const fallbackChunkCount = 10

// broadQueries cover the main aspects of a document when gathering
// passages for question and flashcard generation, where a single
// embedding tends to miss whole sections.
var broadQueries = []string{
	"main concepts and important definitions",
	"key topics and processes",
	"examples and applications",
	"principles and fundamentals",
}

const (
	broadPerQuery = 4
	broadMaxTotal = 12
)

// Retriever pairs the vector store with an embedding provider and
// implements the intent-aware retrieval strategies.
type Retriever struct {
	store      store.VectorStore
	embedder   llm.EmbeddingProvider
	collection string
}

func NewRetriever(st store.VectorStore, embedder llm.EmbeddingProvider, collection string) *Retriever {
	return &Retriever{store: st, embedder: embedder, collection: collection}
}

// EstimateChunkCount reports how many chunks are indexed, preferring
// collection stats and falling back to a wide probe search.
func (r *Retriever) EstimateChunkCount(ctx context.Context) int {
	if n, err := r.store.GetStats(ctx, r.collection); err == nil && n > 0 {
		if n > probeLimit {
			return probeLimit
		}
		return int(n)
	}

	vec, err := r.embedder.EmbedSingle(ctx, probeQuery)
	if err != nil {
		logger.Infof("chunk count probe embedding failed: %v", err)
		return fallbackChunkCount
	}
	results, err := r.store.Search(ctx, r.collection, vec, probeLimit)
	if err != nil {
		logger.Infof("chunk count probe search failed: %v", err)
		return fallbackChunkCount
	}
	return len(results)
}

// Retrieve runs a single similarity search for the query.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]*store.SearchResult, error) {
	if k < 1 {
		k = 1
	}
	vec, err := r.embedder.EmbedSingle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	results, err := r.store.Search(ctx, r.collection, vec, k)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return results, nil
}

// RetrieveBroad fans out over the fixed aspect queries and merges the
// deduplicated results, used to gather diverse passages for question
// and flashcard generation. An empty result is a valid "nothing
// available" outcome, not an error.
func (r *Retriever) RetrieveBroad(ctx context.Context) []*store.SearchResult {
	seen := make(map[string]struct{})
	var merged []*store.SearchResult
	for _, q := range broadQueries {
		results, err := r.Retrieve(ctx, q, broadPerQuery)
		if err != nil {
			logger.Infof("broad retrieval for %q failed: %v", q, err)
			continue
		}
		for _, res := range results {
			key := contentKey(res.Content)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, res)
			if len(merged) >= broadMaxTotal {
				return merged
			}
		}
	}
	return merged
}

// contentKey fingerprints the first 100 runes of a chunk so
// near-identical results from overlapping queries collapse to one.
func contentKey(content string) string {
	runes := []rune(content)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	sum := sha256.Sum256([]byte(string(runes)))
	return hex.EncodeToString(sum[:])
}
