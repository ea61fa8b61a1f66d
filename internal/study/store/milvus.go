package store

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus/client/v2/entity"

	"github.com/Sid2318/Edufy/pkg/component/milvus"
)

// MilvusStore implements VectorStore backed by Milvus.
type MilvusStore struct {
	client *milvus.Client
}

var _ VectorStore = (*MilvusStore)(nil)

// NewMilvusStore creates a Milvus-backed store.
func NewMilvusStore(client *milvus.Client) *MilvusStore {
	return &MilvusStore{client: client}
}

// CreateCollection creates the Milvus collection.
func (s *MilvusStore) CreateCollection(ctx context.Context, config *CollectionConfig) error {
	schema := &milvus.CollectionSchema{
		Name:        config.Name,
		Description: config.Description,
		Dimension:   config.Dimension,
		MetaFields: []milvus.MetaField{
			{Name: "document_id", DataType: entity.FieldTypeVarChar, MaxLen: 64},
			{Name: "document_name", DataType: entity.FieldTypeVarChar, MaxLen: 255},
			{Name: "section", DataType: entity.FieldTypeVarChar, MaxLen: 255},
			{Name: "content", DataType: entity.FieldTypeVarChar, MaxLen: 65535},
		},
	}
	return s.client.CreateCollection(ctx, schema)
}

// DropCollection removes the collection entirely.
func (s *MilvusStore) DropCollection(ctx context.Context, collection string) error {
	exists, err := s.client.HasCollection(ctx, collection)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return s.client.DropCollection(ctx, collection)
}

// Insert stores chunks in Milvus.
func (s *MilvusStore) Insert(ctx context.Context, collection string, chunks []*Chunk) ([]string, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	embeddings := make([][]float32, len(chunks))
	metadata := map[string][]any{
		"document_id":   make([]any, len(chunks)),
		"document_name": make([]any, len(chunks)),
		"section":       make([]any, len(chunks)),
		"content":       make([]any, len(chunks)),
	}

	for i, chunk := range chunks {
		embeddings[i] = chunk.Embedding
		metadata["document_id"][i] = chunk.DocumentID
		metadata["document_name"][i] = chunk.DocumentName
		metadata["section"][i] = chunk.Section
		metadata["content"][i] = chunk.Content
	}

	data := &milvus.InsertData{
		Embeddings: embeddings,
		Metadata:   metadata,
	}

	ids, err := s.client.Insert(ctx, collection, data)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into milvus: %w", err)
	}

	stringIDs := make([]string, len(ids))
	for i, id := range ids {
		stringIDs[i] = fmt.Sprintf("%d", id)
	}

	return stringIDs, nil
}

// Search performs vector similarity search.
func (s *MilvusStore) Search(ctx context.Context, collection string, embedding []float32, topK int) ([]*SearchResult, error) {
	outputFields := []string{"document_id", "document_name", "section", "content"}
	results, err := s.client.Search(ctx, collection, embedding, topK, outputFields)
	if err != nil {
		return nil, fmt.Errorf("failed to search milvus: %w", err)
	}

	searchResults := make([]*SearchResult, len(results))
	for i, r := range results {
		searchResults[i] = &SearchResult{
			ID:           fmt.Sprintf("%d", r.ID),
			DocumentID:   asString(r.Metadata["document_id"]),
			DocumentName: asString(r.Metadata["document_name"]),
			Section:      asString(r.Metadata["section"]),
			Content:      asString(r.Metadata["content"]),
			Score:        r.Score,
		}
	}

	return searchResults, nil
}

// GetStats returns the number of stored vectors.
func (s *MilvusStore) GetStats(ctx context.Context, collection string) (int64, error) {
	exists, err := s.client.HasCollection(ctx, collection)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}
	return s.client.GetCollectionStats(ctx, collection)
}

// Close closes the Milvus connection.
func (s *MilvusStore) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
