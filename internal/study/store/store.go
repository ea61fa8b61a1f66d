// Package store defines the vector storage layer for document chunks.
package store

import (
	"context"
)

// Chunk represents an embedded document chunk.
type Chunk struct {
	// ID is the chunk ID.
	ID string
	// DocumentID is the owning document ID.
	DocumentID string
	// DocumentName is the owning document file name.
	DocumentName string
	// Section is the chunk position label within the document.
	Section string
	// Content is the chunk text.
	Content string
	// Embedding is the chunk embedding vector.
	Embedding []float32
}

// SearchResult represents a retrieved chunk.
type SearchResult struct {
	// ID is the chunk ID.
	ID string
	// DocumentID is the owning document ID.
	DocumentID string
	// DocumentName is the owning document file name.
	DocumentName string
	// Section is the chunk position label within the document.
	Section string
	// Content is the chunk text.
	Content string
	// Score is the similarity score.
	Score float32
}

// CollectionConfig describes a vector collection.
type CollectionConfig struct {
	// Name is the collection name.
	Name string
	// Description is the collection description.
	Description string
	// Dimension is the embedding dimension.
	Dimension int
}

// VectorStore is the vector storage interface.
type VectorStore interface {
	// CreateCollection creates the collection if it does not exist.
	CreateCollection(ctx context.Context, config *CollectionConfig) error

	// DropCollection removes the collection and all its vectors.
	DropCollection(ctx context.Context, collection string) error

	// Insert stores document chunks in bulk.
	Insert(ctx context.Context, collection string, chunks []*Chunk) ([]string, error)

	// Search performs vector similarity search.
	Search(ctx context.Context, collection string, embedding []float32, topK int) ([]*SearchResult, error)

	// GetStats returns the number of stored vectors.
	GetStats(ctx context.Context, collection string) (int64, error)

	// Close closes the connection.
	Close(ctx context.Context) error
}
