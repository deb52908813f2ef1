// Package llm holds the provider-neutral shape of a single generative-text exchange.
package llm

//go:generate go run go.uber.org/mock/mockgen -source=./llm.go -destination=./mocks/llm_mock.go -package=mocks

import (
	"context"
	"errors"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrEmptyResponse = errors.New("generator returned no text")

type Message struct {
	Role    string
	Content string
}

type Request struct {
	System   string
	Messages []Message
}

// Generator sends one request and returns the reply's primary text segment.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
