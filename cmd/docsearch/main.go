package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/docs"
	"github.com/fwojciec/docsearch/gemini"
	"github.com/fwojciec/docsearch/goquery"
	"github.com/fwojciec/docsearch/htmltomarkdown"
	dshttp "github.com/fwojciec/docsearch/http"
	dsmcp "github.com/fwojciec/docsearch/mcp"
	"github.com/fwojciec/docsearch/readability"
	"github.com/fwojciec/docsearch/serper"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/trafilatura"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/genai"
)

// Version is reported to MCP peers. Overridden at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up API keys. Defaults to os.Getenv.
	Getenv func(string) string

	// Services for end-to-end testing. When set they replace the clients
	// built from the environment.
	Searcher     docsearch.Searcher
	Fetcher      docsearch.Fetcher
	Generator    docsearch.Generator
	TokenCounter docsearch.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Registry: docsearch.DefaultRegistry(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Description("Search library documentation and answer questions from it"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsearch --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cmd := strings.Fields(kongCtx.Command())[0]
	switch cmd {
	case "serve", "docs":
		svc, closeFn, err := m.docsService(cli, deps)
		if err != nil {
			return err
		}
		defer closeFn()
		deps.Docs = svc

		if cmd == "docs" {
			deps.TokenCounter = m.tokenCounter(cli)
		}

	case "ask":
		var svc docsearch.DocsService
		if cli.Ask.Server != "" {
			client, err := m.remoteDocs(ctx, cli.Ask.Server, stderr)
			if err != nil {
				return err
			}
			defer client.Close()
			svc = dsslog.NewLoggingDocsService(client, deps.Logger)
		} else {
			local, closeFn, err := m.docsService(cli, deps)
			if err != nil {
				return err
			}
			defer closeFn()
			svc = local
		}

		gen, err := m.generator(ctx, stderr)
		if err != nil {
			return err
		}
		deps.Asker = &docs.Asker{
			Docs:      svc,
			Generator: dsslog.NewLoggingGenerator(gen, deps.Logger),
			Model:     cli.Model,
		}
	}

	return kongCtx.Run(deps)
}

// docsService wires the retrieval pipeline. The returned func releases the
// fetcher.
func (m *Main) docsService(cli *CLI, deps *Dependencies) (docsearch.DocsService, func(), error) {
	searcher := m.Searcher
	if searcher == nil {
		apiKey := m.Getenv("SERPER_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(deps.Stderr, "Hint: get a search API key at https://serper.dev and export SERPER_API_KEY")
			return nil, nil, fmt.Errorf("SERPER_API_KEY not set")
		}
		searcher = serper.NewSearcher(apiKey,
			serper.WithTimeout(cli.Timeout),
			serper.WithNumResults(cli.Results),
		)
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = dshttp.NewFetcher(dshttp.WithTimeout(cli.Timeout))
	}

	cleaner := &docs.Cleaner{
		Fetcher: dsslog.NewLoggingFetcher(fetcher, deps.Logger),
		Extractors: []docsearch.Extractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
			goquery.NewExtractor(),
		},
		RateLimiter: docs.NewDomainLimiter(cli.RPS),
	}
	if cli.Markdown {
		cleaner.Converter = htmltomarkdown.NewConverter()
	}

	svc := &docs.Service{
		Registry:         deps.Registry,
		Searcher:         dsslog.NewLoggingSearcher(searcher, deps.Logger),
		Pages:            cleaner,
		MaxSources:       cli.MaxSources,
		MaxContentLength: cli.MaxChars,
	}

	return dsslog.NewLoggingDocsService(svc, deps.Logger), func() { _ = fetcher.Close() }, nil
}

// remoteDocs starts an MCP server subprocess and talks to it over stdio.
// The subprocess inherits the environment, API keys included.
func (m *Main) remoteDocs(ctx context.Context, command string, stderr io.Writer) (*dsmcp.Client, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, docsearch.Errorf(docsearch.EINVALID, "server command required")
	}
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Stderr = stderr

	client, err := dsmcp.NewClient(ctx, &mcp.CommandTransport{Command: cmd}, Version)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: check that %q starts an MCP server on stdio\n", command)
		return nil, err
	}
	return client, nil
}

func (m *Main) generator(ctx context.Context, stderr io.Writer) (docsearch.Generator, error) {
	if m.Generator != nil {
		return m.Generator, nil
	}

	apiKey := m.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewGenerator(client), nil
}

// tokenCounter returns nil when the tokenizer is unavailable; the token
// estimate is then skipped.
func (m *Main) tokenCounter(cli *CLI) docsearch.TokenCounter {
	if m.TokenCounter != nil {
		return m.TokenCounter
	}
	tc, err := gemini.NewTokenCounter(cli.Model)
	if err != nil {
		return nil
	}
	return tc
}
