// Package ai wraps the hosted text models behind one small interface.
package ai

import (
	"context"
	"errors"
	"fmt"

	"mindflow/internal/config"
)

// ErrNoKey is returned by New when the selected provider has no API key.
var ErrNoKey = errors.New("ai: no API key configured")

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// New builds the generator selected by cfg.AIProvider.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	if cfg.AIKey() == "" {
		return nil, ErrNoKey
	}

	switch cfg.AIProvider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", cfg.AIProvider)
	}
}
