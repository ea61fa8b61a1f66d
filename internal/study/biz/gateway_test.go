package biz

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestModelGatewayGenerate(t *testing.T) {
	chat := &mockChat{response: "a generated answer"}
	gw := NewModelGateway(chat, time.Second, time.Second)

	out, err := gw.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if out != "a generated answer" {
		t.Errorf("Generate() = %q", out)
	}
}

func TestModelGatewayUnavailable(t *testing.T) {
	chat := &mockChat{response: "ignored", pingErr: errors.New("connection refused")}
	gw := NewModelGateway(chat, time.Second, time.Second)

	if gw.Available(context.Background()) {
		t.Error("Available() = true with failing ping")
	}

	_, err := gw.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Generate() error = %v, want ErrModelUnavailable", err)
	}
	if chat.calls != 0 {
		t.Errorf("Generate should not reach backend when probe fails, calls = %d", chat.calls)
	}
}

func TestModelGatewayGenerationError(t *testing.T) {
	chat := &mockChat{genErr: errors.New("model exploded")}
	gw := NewModelGateway(chat, time.Second, time.Second)

	_, err := gw.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("Generate() error = %v, want ErrGeneration", err)
	}
}

func TestModelGatewayEmptyResponse(t *testing.T) {
	chat := &mockChat{response: "   "}
	gw := NewModelGateway(chat, time.Second, time.Second)

	_, err := gw.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("Generate() error = %v, want ErrGeneration for blank output", err)
	}
}

func TestModelGatewayNilProvider(t *testing.T) {
	gw := NewModelGateway(nil, time.Second, time.Second)
	if gw.Available(context.Background()) {
		t.Error("Available() = true with nil provider")
	}
}
