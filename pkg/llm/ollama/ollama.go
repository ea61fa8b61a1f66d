// Package ollama provides an Ollama-backed LLM provider for embedding
// and chat.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Sid2318/Edufy/pkg/llm"
)

const (
	defaultBaseURL     = "http://localhost:11434"
	defaultEmbedModel  = "nomic-embed-text"
	defaultChatModel   = "llama3"
	defaultTemperature = 0.3
	defaultTimeout     = 120 * time.Second
)

// Config holds Ollama provider configuration.
type Config struct {
	BaseURL     string
	EmbedModel  string
	ChatModel   string
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns a Config with sensible defaults for a local
// Ollama instance.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     defaultBaseURL,
		EmbedModel:  defaultEmbedModel,
		ChatModel:   defaultChatModel,
		Temperature: defaultTemperature,
		Timeout:     defaultTimeout,
	}
}

// Provider is an Ollama API client implementing llm.Provider.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	cfg        *Config
}

var _ llm.Provider = (*Provider)(nil)
var _ llm.Pinger = (*Provider)(nil)

// New creates a new Ollama provider.
func New(cfg *Config) *Provider {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.EmbedModel == "" {
		cfg.EmbedModel = defaultEmbedModel
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = defaultChatModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

func init() {
	llm.RegisterProvider("ollama", func(config map[string]any) (llm.Provider, error) {
		cfg := DefaultConfig()
		if v, ok := config["base_url"].(string); ok && v != "" {
			cfg.BaseURL = v
		}
		if v, ok := config["embed_model"].(string); ok && v != "" {
			cfg.EmbedModel = v
		}
		if v, ok := config["chat_model"].(string); ok && v != "" {
			cfg.ChatModel = v
		}
		if v, ok := config["temperature"].(float64); ok {
			cfg.Temperature = v
		}
		return New(cfg), nil
	})
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "ollama"
}

// EmbedRequest is the request body for embedding.
type EmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// EmbedResponse is the response from embedding.
type EmbedResponse struct {
	Model      string      `json:"model"`
	Embeddings [][]float32 `json:"embeddings"`
}

// Embed generates embeddings for the given texts.
func (p *Provider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	reqBody := EmbedRequest{
		Model: p.cfg.EmbedModel,
		Input: texts,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.doRequest(req)
	if err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embed request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var embedResp EmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("failed to decode embed response: %w", err)
	}

	return embedResp.Embeddings, nil
}

// EmbedSingle generates an embedding for a single text.
func (p *Provider) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := p.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return embeddings[0], nil
}

// ChatMessage represents a message in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ChatRequest is the request body for chat completion.
type ChatRequest struct {
	Model    string         `json:"model"`
	Messages []ChatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

// ChatResponse is the response from chat completion.
type ChatResponse struct {
	Model     string      `json:"model"`
	CreatedAt string      `json:"created_at"`
	Message   ChatMessage `json:"message"`
	Done      bool        `json:"done"`
}

// Chat generates a chat completion.
func (p *Provider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	msgs := make([]ChatMessage, len(messages))
	for i, m := range messages {
		msgs[i] = ChatMessage{Role: string(m.Role), Content: m.Content}
	}

	reqBody := ChatRequest{
		Model:    p.cfg.ChatModel,
		Messages: msgs,
		Stream:   false,
		Options:  p.modelOptions(),
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.doRequest(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}

	return chatResp.Message.Content, nil
}

// GenerateRequest is the request body for text generation.
type GenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	System  string         `json:"system,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// GenerateResponse is the response from text generation.
type GenerateResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// Generate generates text based on a prompt.
func (p *Provider) Generate(ctx context.Context, prompt string, systemPrompt string) (string, error) {
	reqBody := GenerateRequest{
		Model:   p.cfg.ChatModel,
		Prompt:  prompt,
		Stream:  false,
		System:  systemPrompt,
		Options: p.modelOptions(),
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.doRequest(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generate request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	return genResp.Response, nil
}

func (p *Provider) modelOptions() map[string]any {
	if p.cfg.Temperature <= 0 {
		return nil
	}
	return map[string]any{"temperature": p.cfg.Temperature}
}

// doRequest executes the request exactly once. Failures surface to
// the caller, which degrades to extractive behavior instead of
// retrying a model that is likely down.
func (p *Provider) doRequest(req *http.Request) (*http.Response, error) {
	return p.httpClient.Do(req)
}

// Ping checks if the Ollama server is reachable.
func (p *Provider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to create ping request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping failed with status %d", resp.StatusCode)
	}

	return nil
}
