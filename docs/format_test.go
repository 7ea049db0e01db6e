package docs_test

import (
	"testing"

	"github.com/fwojciec/docsearch/docs"
	"github.com/stretchr/testify/assert"
)

func TestContentHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docs.ContentHash("bundle"), docs.ContentHash("bundle"))
	assert.NotEqual(t, docs.ContentHash("bundle"), docs.ContentHash("bundle "))
	assert.Len(t, docs.ContentHash(""), 16)
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", docs.FormatBytes(512))
	assert.Equal(t, "1.5 KB", docs.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", docs.FormatBytes(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~999 tokens", docs.FormatTokens(999))
	assert.Equal(t, "~2k tokens", docs.FormatTokens(1500))
}
