package docs

import (
	"context"
	"strings"

	"github.com/fwojciec/docsearch"
)

// MinContextLength is the shortest bundle, in characters, worth sending to
// the model.
const MinContextLength = 50

// SystemPrompt instructs the model to answer from the bundle only.
const SystemPrompt = `You are a helpful documentation assistant.
Use ONLY the provided context to answer the query.
If the context doesn't contain the answer, say "I don't have enough information."
Keep SOURCE links in your answer.`

var _ docsearch.Asker = (*Asker)(nil)

// Asker answers questions by retrieving a documentation bundle and passing
// it to a language model.
type Asker struct {
	Docs      docsearch.DocsService
	Generator docsearch.Generator
	Model     string
}

// Ask answers question using the documentation of library.
// Returns ENOTFOUND when retrieval produced no usable context; the model is
// not called in that case.
func (a *Asker) Ask(ctx context.Context, library, question string) (string, error) {
	if library == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "library required")
	}
	if strings.TrimSpace(question) == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "question required")
	}

	bundle, err := a.Docs.GetDocs(ctx, question, library)
	if err != nil {
		return "", err
	}
	if !HasContext(bundle, question, library) {
		return "", docsearch.Errorf(docsearch.ENOTFOUND, "no sufficient context found in %s docs", library)
	}

	return a.Generator.Generate(ctx, SystemPrompt, BuildUserPrompt(question, bundle), a.Model)
}

// HasContext reports whether bundle holds documentation rather than one of
// the empty-outcome sentinels or a near-empty string.
func HasContext(bundle, query, library string) bool {
	switch bundle {
	case docsearch.NoExtractableContent, docsearch.NoResultsMessage(query, library):
		return false
	}
	return len([]rune(strings.TrimSpace(bundle))) >= MinContextLength
}

// BuildUserPrompt pairs the question with the retrieved bundle.
func BuildUserPrompt(query, bundle string) string {
	return "Query: " + query + "\n\nContext:\n" + bundle
}
