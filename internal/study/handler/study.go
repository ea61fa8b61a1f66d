// Package handler provides HTTP handlers for the study service.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sid2318/Edufy/internal/study/biz"
	"github.com/Sid2318/Edufy/internal/study/metrics"
)

// queryTimeout bounds a single question end to end, including
// retrieval and model generation.
const queryTimeout = 60 * time.Second

// StudyHandler handles study session HTTP requests.
type StudyHandler struct {
	service biz.Service
}

func NewStudyHandler(service biz.Service) *StudyHandler {
	return &StudyHandler{service: service}
}

// SuccessResponse is a standard success response.
type SuccessResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Upload accepts a multipart document upload and replaces the session
// document with it.
func (h *StudyHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Message: "missing file field: " + err.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Message: "open upload: " + err.Error()})
		return
	}
	defer src.Close()

	doc, err := h.service.Upload(c.Request.Context(), file.Filename, file.Size, src)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Code: 0, Message: "Document uploaded and indexed successfully", Data: doc})
}

// Status reports whether the session is ready for questions.
func (h *StudyHandler) Status(c *gin.Context) {
	status := h.service.Status(c.Request.Context())
	c.JSON(http.StatusOK, SuccessResponse{Code: 0, Message: "success", Data: status})
}

// Query answers a question about the uploaded document.
func (h *StudyHandler) Query(c *gin.Context) {
	question := c.Query("question")
	if question == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Message: "question parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
	defer cancel()

	result, err := h.service.Query(ctx, question)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			c.JSON(http.StatusRequestTimeout, ErrorResponse{
				Code:    408,
				Message: "Query timeout: the request took too long to process. Please try again or simplify your question.",
			})
			return
		}
		if errors.Is(err, biz.ErrNoDocument) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Message: "No document uploaded. Upload a document before asking questions."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: 500, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Code: 0, Message: "success", Data: result})
}

// SampleQuestions returns suggested questions for the document.
func (h *StudyHandler) SampleQuestions(c *gin.Context) {
	set, err := h.service.SampleQuestions(c.Request.Context())
	if err != nil {
		if errors.Is(err, biz.ErrNoDocument) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Message: "No document uploaded. Upload a document to get sample questions."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: 500, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Code: 0, Message: "success", Data: set})
}

// Flashcards returns generated study flashcards.
func (h *StudyHandler) Flashcards(c *gin.Context) {
	set, err := h.service.Flashcards(c.Request.Context())
	if err != nil {
		if errors.Is(err, biz.ErrNoDocument) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Message: "No document uploaded. Upload a document to get flashcards."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: 500, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Code: 0, Message: "success", Data: set})
}

// Stats returns service statistics.
func (h *StudyHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: 500, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Code: 0, Message: "success", Data: stats})
}

// Healthz is the liveness endpoint.
func (h *StudyHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Metrics exposes Prometheus text-format metrics.
func (h *StudyHandler) Metrics(c *gin.Context) {
	c.String(http.StatusOK, metrics.Get().Export("edufy", "study"))
}
