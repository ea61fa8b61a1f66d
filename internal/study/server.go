// Package study provides the study service server implementation.
package study

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/Sid2318/Edufy/internal/study/biz"
	"github.com/Sid2318/Edufy/internal/study/handler"
	"github.com/Sid2318/Edufy/internal/study/router"
	"github.com/Sid2318/Edufy/internal/study/store"
	milvuscomp "github.com/Sid2318/Edufy/pkg/component/milvus"
	"github.com/Sid2318/Edufy/pkg/llm"
	_ "github.com/Sid2318/Edufy/pkg/llm/ollama"
	httpopts "github.com/Sid2318/Edufy/pkg/options/http"
	milvusopts "github.com/Sid2318/Edufy/pkg/options/milvus"
	ollamaopts "github.com/Sid2318/Edufy/pkg/options/ollama"
	studyopts "github.com/Sid2318/Edufy/pkg/options/study"
)

// Name is the name of the application.
const Name = "edufy-server"

// Config contains the server configuration.
type Config struct {
	HTTPOptions   *httpopts.Options
	MilvusOptions *milvusopts.Options
	OllamaOptions *ollamaopts.Options
	StudyOptions  *studyopts.Options
}

// Server is the assembled study service.
type Server struct {
	httpServer  *http.Server
	vectorStore store.VectorStore
}

// NewServer wires the vector store, model providers and HTTP layer.
func (cfg *Config) NewServer(ctx context.Context) (*Server, error) {
	milvusClient, err := milvuscomp.New(cfg.MilvusOptions)
	if err != nil {
		return nil, fmt.Errorf("initialize milvus: %w", err)
	}
	logger.Info("Milvus client initialized")

	vectorStore := store.NewMilvusStore(milvusClient)

	provider, err := llm.NewProvider("ollama", map[string]any{
		"base_url":    cfg.OllamaOptions.BaseURL,
		"embed_model": cfg.OllamaOptions.EmbedModel,
		"chat_model":  cfg.OllamaOptions.ChatModel,
		"temperature": cfg.OllamaOptions.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize model provider: %w", err)
	}
	logger.Infow("Model provider initialized", "provider", provider.Name())

	service := biz.NewStudyService(vectorStore, provider, provider, &biz.ServiceConfig{
		Collection:    cfg.StudyOptions.Collection,
		EmbeddingDim:  cfg.StudyOptions.EmbeddingDim,
		ChunkSize:     cfg.StudyOptions.ChunkSize,
		ChunkOverlap:  cfg.StudyOptions.ChunkOverlap,
		DataDir:       cfg.StudyOptions.DataDir,
		MaxFlashcards: cfg.StudyOptions.MaxFlashcards,
		RegenWindow:   cfg.StudyOptions.RegenWindow,
		ProbeTimeout:  cfg.StudyOptions.ProbeTimeout,
		GenTimeout:    cfg.StudyOptions.GenerateTimeout,
	})

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), corsMiddleware(), requestLogger())

	router.Register(engine, handler.NewStudyHandler(service))

	srv := &http.Server{
		Addr:         cfg.HTTPOptions.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.HTTPOptions.ReadTimeout,
		WriteTimeout: cfg.HTTPOptions.WriteTimeout,
		IdleTimeout:  cfg.HTTPOptions.IdleTimeout,
	}

	return &Server{httpServer: srv, vectorStore: vectorStore}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infow("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := s.vectorStore.Close(shutdownCtx); err != nil {
		logger.Warnw("vector store close failed", "error", err.Error())
	}
	logger.Info("Server stopped")
	return nil
}

// corsMiddleware allows browser frontends on any origin to call the
// API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestLogger logs each request with its latency and status.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
