package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/docsearch"
	main "github.com/fwojciec/docsearch/cmd/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectsPage = `<!DOCTYPE html>
<html><head><title>Working on projects | uv</title></head>
<body>
<nav class="md-nav md-nav--primary"><a href="/uv/">Home</a></nav>
<div class="md-content" data-md-component="content"><article class="md-content__inner md-typeset">
<h1>Working on projects</h1>
<p>uv supports managing Python projects, which define their dependencies in a pyproject.toml file.</p>
<p>The lockfile uv.lock is created alongside pyproject.toml and contains the exact resolved versions that are installed in the project environment.</p>
<p>Unlike the pyproject.toml, which is used to specify the broad requirements of your project, the lockfile should be checked into version control.</p>
</article></div>
<footer>Made with Material for MkDocs</footer>
</body></html>`

func noEnv(string) string { return "" }

// testMain returns a Main whose external clients are replaced by mocks.
func testMain(pages map[string]string, links ...string) *main.Main {
	m := main.NewMain()
	m.Getenv = noEnv
	m.Searcher = &mock.Searcher{
		SearchFn: func(context.Context, string) ([]docsearch.SearchResult, error) {
			results := make([]docsearch.SearchResult, len(links))
			for i, l := range links {
				results[i] = docsearch.SearchResult{Link: l, Position: i + 1}
			}
			return results, nil
		},
	}
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return pages[url], nil
		},
		CloseFn: func() error { return nil },
	}
	m.TokenCounter = &mock.TokenCounter{
		CountTokensFn: func(_ context.Context, text string) (int, error) {
			return len(strings.Fields(text)), nil
		},
	}
	return m
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	for _, cmd := range []string{"serve", "docs", "ask", "libraries"} {
		assert.Contains(t, stdout.String(), cmd)
	}
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Contains(t, stdout.String(), "--max-sources")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_Libraries(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	m := main.NewMain()
	m.Getenv = noEnv

	err := m.Run(context.Background(), []string{"libraries"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.Regexp(t, `^langchain\s+python\.langchain\.com/docs$`, lines[0])
	assert.Regexp(t, `^uv\s+docs\.astral\.sh/uv$`, lines[3])
}

func TestMain_Run_Docs(t *testing.T) {
	t.Parallel()

	t.Run("prints bundle and token estimate", func(t *testing.T) {
		t.Parallel()

		url := "https://docs.astral.sh/uv/concepts/projects/"
		m := testMain(map[string]string{url: projectsPage}, url)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"docs", "uv", "lockfile"}, stdout, stderr)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout.String(), "SOURCE: "+url+"\n\n"))
		assert.Contains(t, stdout.String(), "uv.lock")
		assert.NotContains(t, stdout.String(), "<p>")
		assert.Contains(t, stderr.String(), "tokens")
	})

	t.Run("unknown library fails with supported list", func(t *testing.T) {
		t.Parallel()

		m := testMain(nil)
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"docs", "invalid_lib", "q"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "langchain, llama-index, openai, uv")
	})

	t.Run("zero results prints sentinel", func(t *testing.T) {
		t.Parallel()

		m := testMain(nil)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"docs", "openai", "xyzzy"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "no results found for query: 'xyzzy' in openai docs\n", stdout.String())
	})

	t.Run("missing search key gives a hint", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Getenv = noEnv
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"docs", "uv", "q"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SERPER_API_KEY")
		assert.Contains(t, stderr.String(), "serper.dev")
	})

	t.Run("markdown flag keeps headings", func(t *testing.T) {
		t.Parallel()

		url := "https://docs.astral.sh/uv/concepts/projects/"
		m := testMain(map[string]string{url: projectsPage}, url)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--markdown", "docs", "uv", "lockfile"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "uv.lock")
	})
}

func TestMain_Run_Ask(t *testing.T) {
	t.Parallel()

	t.Run("answers from retrieved docs", func(t *testing.T) {
		t.Parallel()

		url := "https://docs.astral.sh/uv/concepts/projects/"
		m := testMain(map[string]string{url: projectsPage}, url)
		var gotPrompt, gotModel string
		m.Generator = &mock.Generator{
			GenerateFn: func(_ context.Context, _, userPrompt, model string) (string, error) {
				gotPrompt, gotModel = userPrompt, model
				return "Commit uv.lock. SOURCE: " + url, nil
			},
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "uv", "should I commit the lockfile?", "--model", "gemini-2.0-flash"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "Commit uv.lock. SOURCE: "+url+"\n", stdout.String())
		assert.True(t, strings.HasPrefix(gotPrompt, "Query: should I commit the lockfile?\n\nContext:\nSOURCE: "+url))
		assert.Equal(t, "gemini-2.0-flash", gotModel)
	})

	t.Run("missing model key gives a hint", func(t *testing.T) {
		t.Parallel()

		m := testMain(nil)
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "uv", "q"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
		assert.Contains(t, stderr.String(), "aistudio.google.com")
	})

	t.Run("insufficient context is reported", func(t *testing.T) {
		t.Parallel()

		m := testMain(nil)
		m.Generator = &mock.Generator{
			GenerateFn: func(context.Context, string, string, string) (string, error) {
				t.Error("generator should not be called")
				return "", nil
			},
		}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "uv", "q"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no sufficient context")
	})
}
