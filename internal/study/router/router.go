// Package router wires the study service routes.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/Sid2318/Edufy/internal/study/handler"
)

// Register registers the study service routes on the engine.
func Register(engine *gin.Engine, h *handler.StudyHandler) {
	logger.Info("Registering study routes...")

	engine.GET("/healthz", h.Healthz)
	engine.GET("/metrics", h.Metrics)

	v1 := engine.Group("/v1")
	{
		study := v1.Group("/study")
		{
			study.POST("/upload", h.Upload)
			study.GET("/status", h.Status)
			study.GET("/query", h.Query)
			study.GET("/sample-questions", h.SampleQuestions)
			study.GET("/flashcards", h.Flashcards)
			study.GET("/stats", h.Stats)
		}
	}

	// Unversioned aliases kept for the existing frontend.
	engine.POST("/upload", h.Upload)
	engine.GET("/status", h.Status)
	engine.GET("/query", h.Query)
	engine.GET("/sample-questions", h.SampleQuestions)
	engine.GET("/flashcards", h.Flashcards)
	engine.GET("/stats", h.Stats)

	logger.Info("HTTP routes registered")
}
