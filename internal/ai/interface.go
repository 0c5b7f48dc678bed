package ai

import (
	"context"
)

// Provider defines the contract for chat-style completion backends.
// This interface allows swapping OpenRouter, Gemini or a test double.
type Provider interface {
	// Complete sends the conversation and returns the reply text of the first choice.
	Complete(ctx context.Context, req ChatRequest) (string, error)

	// Name identifies the provider in logs.
	Name() string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages    []Message
	Temperature float32
}
