package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mindflow/internal/ai"
	"mindflow/internal/models"
)

type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Analysis is feedback text tagged with where it came from, so callers can
// tell real model output from the local approximation.
type Analysis struct {
	Source Source `json:"source"`
	Text   string `json:"analysis"`
}

func (a Analysis) IsFallback() bool {
	return a.Source == SourceFallback
}

type Analyzer struct {
	generator ai.Generator
	logger    *zap.Logger
}

// NewAnalyzer accepts a nil generator; every analysis then falls back.
func NewAnalyzer(generator ai.Generator, logger *zap.Logger) *Analyzer {
	return &Analyzer{generator: generator, logger: logger}
}

// AnalyzeEntry asks the model about one entry, falling back to local text.
func (a *Analyzer) AnalyzeEntry(ctx context.Context, e models.Entry) Analysis {
	return a.run(ctx, BuildPrompt(e), FallbackText(e))
}

// AnalyzePrompt relays a free-form prompt. There is no entry to build a
// fallback from, so the neutral encouragement is used.
func (a *Analyzer) AnalyzePrompt(ctx context.Context, prompt string) Analysis {
	return a.run(ctx, prompt, FallbackText(neutralEntry))
}

func (a *Analyzer) run(ctx context.Context, prompt, fallback string) Analysis {
	op := "usecases.Analyzer"

	if a.generator == nil {
		return Analysis{Source: SourceFallback, Text: fallback}
	}

	text, err := a.generator.Generate(ctx, prompt)
	if err == nil {
		text = CleanModelText(text)
		if text == "" {
			err = errors.New("empty model text")
		}
	}
	if err != nil {
		a.logger.Warn("model unavailable, using fallback",
			zap.String("op", op),
			zap.String("generator", a.generator.Name()),
			zap.Error(err))
		return Analysis{Source: SourceFallback, Text: fallback}
	}

	return Analysis{Source: SourceModel, Text: text}
}
