package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging. Prompts are logged by
// size only.
type LoggingGenerator struct {
	next   docsearch.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next docsearch.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) Generate(ctx context.Context, systemPrompt, userPrompt, model string) (answer string, err error) {
	defer func(begin time.Time) {
		g.logger.Log(ctx, levelFor(err), "generate",
			"model", model,
			"prompt_chars", len([]rune(userPrompt)),
			"answer_chars", len([]rune(answer)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, systemPrompt, userPrompt, model)
}
