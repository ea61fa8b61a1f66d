// Package study provides study service configuration options.
package study

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/Sid2318/Edufy/pkg/options"
)

var _ options.IOptions = (*Options)(nil)

// Options contains study-service-specific configuration.
type Options struct {
	// ChunkSize is the size of text chunks in characters.
	ChunkSize int `json:"chunk-size" mapstructure:"chunk-size"`

	// ChunkOverlap is the overlap between consecutive chunks.
	ChunkOverlap int `json:"chunk-overlap" mapstructure:"chunk-overlap"`

	// Collection is the name of the Milvus collection.
	Collection string `json:"collection" mapstructure:"collection"`

	// EmbeddingDim is the dimension of embedding vectors.
	EmbeddingDim int `json:"embedding-dim" mapstructure:"embedding-dim"`

	// DataDir is the directory for storing the uploaded document.
	DataDir string `json:"data-dir" mapstructure:"data-dir"`

	// MaxFlashcards is the maximum number of flashcards per set.
	MaxFlashcards int `json:"max-flashcards" mapstructure:"max-flashcards"`

	// RegenWindow is the window after an upload during which generated
	// content endpoints reply with regenerating placeholders.
	RegenWindow time.Duration `json:"regen-window" mapstructure:"regen-window"`

	// ProbeTimeout bounds the AI gateway liveness probe.
	ProbeTimeout time.Duration `json:"probe-timeout" mapstructure:"probe-timeout"`

	// GenerateTimeout bounds a single AI generation call.
	GenerateTimeout time.Duration `json:"generate-timeout" mapstructure:"generate-timeout"`
}

// NewOptions creates new Options with defaults.
func NewOptions() *Options {
	return &Options{
		ChunkSize:       1000,
		ChunkOverlap:    200,
		Collection:      "study_documents",
		EmbeddingDim:    768, // nomic-embed-text dimension
		DataDir:         "_output/study-data",
		MaxFlashcards:   15,
		RegenWindow:     3 * time.Second,
		ProbeTimeout:    2 * time.Second,
		GenerateTimeout: 30 * time.Second,
	}
}

// AddFlags adds flags for study options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.IntVar(&o.ChunkSize, options.Join(prefixes...)+"study.chunk-size", o.ChunkSize, "Size of text chunks.")
	fs.IntVar(&o.ChunkOverlap, options.Join(prefixes...)+"study.chunk-overlap", o.ChunkOverlap, "Overlap between chunks.")
	fs.StringVar(&o.Collection, options.Join(prefixes...)+"study.collection", o.Collection, "Milvus collection name.")
	fs.IntVar(&o.EmbeddingDim, options.Join(prefixes...)+"study.embedding-dim", o.EmbeddingDim, "Embedding vector dimension.")
	fs.StringVar(&o.DataDir, options.Join(prefixes...)+"study.data-dir", o.DataDir, "Directory for the uploaded document.")
	fs.IntVar(&o.MaxFlashcards, options.Join(prefixes...)+"study.max-flashcards", o.MaxFlashcards, "Maximum flashcards per set.")
	fs.DurationVar(&o.RegenWindow, options.Join(prefixes...)+"study.regen-window", o.RegenWindow, "Placeholder window after upload.")
	fs.DurationVar(&o.ProbeTimeout, options.Join(prefixes...)+"study.probe-timeout", o.ProbeTimeout, "AI gateway liveness probe timeout.")
	fs.DurationVar(&o.GenerateTimeout, options.Join(prefixes...)+"study.generate-timeout", o.GenerateTimeout, "AI generation call timeout.")
}

// Validate validates the study options.
func (o *Options) Validate() []error {
	if o == nil {
		return nil
	}

	var errs []error
	if o.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("study chunk-size must be positive"))
	}
	if o.ChunkOverlap < 0 {
		errs = append(errs, fmt.Errorf("study chunk-overlap must be non-negative"))
	}
	if o.ChunkOverlap >= o.ChunkSize {
		errs = append(errs, fmt.Errorf("study chunk-overlap must be smaller than chunk-size"))
	}
	if o.Collection == "" {
		errs = append(errs, fmt.Errorf("study collection is required"))
	}
	if o.EmbeddingDim <= 0 {
		errs = append(errs, fmt.Errorf("study embedding-dim must be positive"))
	}
	if o.DataDir == "" {
		errs = append(errs, fmt.Errorf("study data-dir is required"))
	}
	if o.MaxFlashcards <= 0 {
		errs = append(errs, fmt.Errorf("study max-flashcards must be positive"))
	}
	return errs
}
