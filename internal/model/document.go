// Package model provides data models shared by the Edufy study service.
package model

import (
	"fmt"
	"time"
)

// Document represents the uploaded study document.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	Hash       string    `json:"hash"` // Full-content SHA-256
	ChunkNum   int       `json:"chunk_num"`
	Domain     string    `json:"domain"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// SizeFormatted renders the document size in KB or MB for status responses.
func (d *Document) SizeFormatted() string {
	const (
		kb = 1024
		mb = 1024 * 1024
	)
	if d.Size >= mb {
		return fmt.Sprintf("%.1f MB", float64(d.Size)/mb)
	}
	return fmt.Sprintf("%.1f KB", float64(d.Size)/kb)
}

// ChunkSource represents source information for a retrieved chunk.
type ChunkSource struct {
	DocumentID   string  `json:"document_id"`
	DocumentName string  `json:"document_name"`
	Section      string  `json:"section"`
	Content      string  `json:"content"`
	Score        float32 `json:"score"`
}

// QueryResult represents an answered question with its supporting sources.
type QueryResult struct {
	Question      string        `json:"question"`
	Answer        string        `json:"answer"`
	Method        string        `json:"method"` // ai_enhanced, ai_fallback, fallback
	Intent        string        `json:"intent"`
	KUsed         int           `json:"k_used"`
	TotalSections int           `json:"total_sections"`
	Sources       []ChunkSource `json:"sources"`
}

// Answer generation methods.
const (
	MethodAIEnhanced = "ai_enhanced"
	MethodAIFallback = "ai_fallback"
	MethodFallback   = "fallback"
)
