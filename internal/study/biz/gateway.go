package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kart-io/logger"

	"github.com/Sid2318/Edufy/pkg/llm"
)

var (
	// ErrModelUnavailable means the model backend did not answer the
	// liveness probe; callers should fall back to extractive answers.
	ErrModelUnavailable = errors.New("model backend unavailable")
	// ErrGeneration means the backend was reachable but generation
	// failed or produced unusable output.
	ErrGeneration = errors.New("model generation failed")
)

// ModelGateway fronts the chat model with a cheap liveness probe and a
// hard generation deadline, so a dead or slow backend degrades the
// service to extractive answers instead of hanging requests.
type ModelGateway struct {
	provider        llm.ChatProvider
	probeTimeout    time.Duration
	generateTimeout time.Duration
}

func NewModelGateway(provider llm.ChatProvider, probeTimeout, generateTimeout time.Duration) *ModelGateway {
	if probeTimeout <= 0 {
		probeTimeout = 2 * time.Second
	}
	if generateTimeout <= 0 {
		generateTimeout = 30 * time.Second
	}
	return &ModelGateway{
		provider:        provider,
		probeTimeout:    probeTimeout,
		generateTimeout: generateTimeout,
	}
}

// Available probes the backend. Providers that implement llm.Pinger
// get a real probe; anything else is assumed reachable.
func (g *ModelGateway) Available(ctx context.Context) bool {
	if g == nil || g.provider == nil {
		return false
	}
	pinger, ok := g.provider.(llm.Pinger)
	if !ok {
		return true
	}
	probeCtx, cancel := context.WithTimeout(ctx, g.probeTimeout)
	defer cancel()
	if err := pinger.Ping(probeCtx); err != nil {
		logger.Infof("model backend probe failed: %v", err)
		return false
	}
	return true
}

// Generate runs a single prompt through the backend under the
// generation deadline. The probe runs first so we fail fast when the
// backend is down.
func (g *ModelGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.Available(ctx) {
		return "", ErrModelUnavailable
	}

	genCtx, cancel := context.WithTimeout(ctx, g.generateTimeout)
	defer cancel()

	out, err := g.provider.Generate(genCtx, prompt, "")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return out, nil
}
