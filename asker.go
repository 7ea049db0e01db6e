package docsearch

import "context"

// Asker provides natural language question answering over documentation.
type Asker interface {
	// Ask answers a question using the documentation of library.
	Ask(ctx context.Context, library, question string) (string, error)
}

// Generator produces text with a language model.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error)
}
