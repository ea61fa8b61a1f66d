package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sid2318/Edufy/internal/model"
	"github.com/Sid2318/Edufy/internal/study/biz"
)

// stubService implements biz.Service with canned responses.
type stubService struct {
	doc       *model.Document
	status    *model.ServiceStatus
	result    *model.QueryResult
	questions *model.QuestionSet
	cards     *model.FlashcardSet
	err       error
}

func (s *stubService) Upload(ctx context.Context, filename string, size int64, r io.Reader) (*model.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func (s *stubService) Status(ctx context.Context) *model.ServiceStatus {
	return s.status
}

func (s *stubService) Query(ctx context.Context, question string) (*model.QueryResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubService) SampleQuestions(ctx context.Context) (*model.QuestionSet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.questions, nil
}

func (s *stubService) Flashcards(ctx context.Context) (*model.FlashcardSet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cards, nil
}

func (s *stubService) Stats(ctx context.Context) (map[string]any, error) {
	if s.err != nil {
		return nil, s.err
	}
	return map[string]any{"queries": map[string]any{"total": 1}}, nil
}

func newTestRouter(svc biz.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewStudyHandler(svc)
	engine.POST("/upload", h.Upload)
	engine.GET("/status", h.Status)
	engine.GET("/query", h.Query)
	engine.GET("/sample-questions", h.SampleQuestions)
	engine.GET("/flashcards", h.Flashcards)
	engine.GET("/stats", h.Stats)
	engine.GET("/healthz", h.Healthz)
	return engine
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	svc := &stubService{doc: &model.Document{ID: "d1", Name: "notes.txt", ChunkNum: 3, Domain: "biology"}}
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, "file", "notes.txt", "cell dna mitosis")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
}

func TestUploadHandlerMissingFile(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryHandler(t *testing.T) {
	svc := &stubService{result: &model.QueryResult{
		Question: "What is DNA?",
		Answer:   "DNA stores genetic information.",
		Method:   model.MethodAIEnhanced,
		Intent:   "specific",
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/query?question=What+is+DNA%3F", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DNA stores genetic information.")
}

func TestQueryHandlerMissingQuestion(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/query", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "question parameter is required")
}

func TestQueryHandlerNoDocument(t *testing.T) {
	router := newTestRouter(&stubService{err: biz.ErrNoDocument})

	req := httptest.NewRequest(http.MethodGet, "/query?question=hello", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No document uploaded")
}

func TestStatusHandler(t *testing.T) {
	svc := &stubService{status: &model.ServiceStatus{Status: model.StatusReady, DatabaseReady: true}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.StatusReady)
}

func TestSampleQuestionsHandler(t *testing.T) {
	svc := &stubService{questions: &model.QuestionSet{Questions: []string{"What is a cell?", "What is DNA?"}}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/sample-questions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "What is a cell?")
}

func TestFlashcardsHandler(t *testing.T) {
	svc := &stubService{cards: &model.FlashcardSet{
		Flashcards: []model.Flashcard{
			{Question: "What is DNA?", Answer: "The molecule carrying genetic instructions.", Difficulty: model.DifficultyEasy},
		},
		Total: 1,
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/flashcards", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "genetic instructions")
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestFlashcardsHandlerRegenerating(t *testing.T) {
	svc := &stubService{cards: &model.FlashcardSet{
		Flashcards: []model.Flashcard{{Question: "Document Updated", Answer: "New flashcards are on the way."}},
		Total:      1,
		Status:     model.StatusRegenerating,
		Message:    "Fresh flashcards are being generated from your new document.",
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/flashcards", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"regenerating"`)
	assert.Contains(t, w.Body.String(), "being generated")
}

func TestFlashcardsHandlerNoDocument(t *testing.T) {
	router := newTestRouter(&stubService{err: biz.ErrNoDocument})

	req := httptest.NewRequest(http.MethodGet, "/flashcards", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsHandler(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "queries")
}

func TestHealthzHandler(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
