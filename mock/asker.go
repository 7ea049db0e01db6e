package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Asker = (*Asker)(nil)

// Asker is a mock implementation of docsearch.Asker.
type Asker struct {
	AskFn func(ctx context.Context, library, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, library, question string) (string, error) {
	return a.AskFn(ctx, library, question)
}

var _ docsearch.Generator = (*Generator)(nil)

// Generator is a mock implementation of docsearch.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, systemPrompt, userPrompt, model string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error) {
	return g.GenerateFn(ctx, systemPrompt, userPrompt, model)
}
