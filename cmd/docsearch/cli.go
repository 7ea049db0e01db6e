package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Registry     *docsearch.Registry
	Docs         docsearch.DocsService
	Asker        docsearch.Asker
	TokenCounter docsearch.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout    time.Duration `default:"30s" help:"Timeout for each search and page fetch"`
	Results    int           `default:"3" help:"Search results to request"`
	MaxSources int           `default:"2" name:"max-sources" help:"Search results turned into sources"`
	MaxChars   int           `default:"4000" name:"max-chars" help:"Character cap per source (0 for the default, negative disables)"`
	RPS        float64       `default:"5" name:"rps" help:"Page fetches per second per host (0 disables limiting)"`
	Markdown   bool          `help:"Render pages as Markdown instead of plain text"`
	Model      string        `default:"gemini-2.5-flash" help:"Gemini model for answers and token estimates"`
	Verbose    bool          `short:"v" help:"Log every search, fetch and model call to stderr"`

	Serve     ServeCmd     `cmd:"" help:"Run the MCP server exposing get_docs"`
	Docs      DocsCmd      `cmd:"" help:"Print documentation sources for a query"`
	Ask       AskCmd       `cmd:"" help:"Answer a question from library documentation"`
	Libraries LibrariesCmd `cmd:"" help:"List supported libraries"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `name:"http" placeholder:"ADDR" help:"Serve streamable HTTP on this address instead of stdio"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Library string `arg:"" help:"Library name (see 'docsearch libraries')"`
	Query   string `arg:"" help:"Search query"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Library  string `arg:"" help:"Library name (see 'docsearch libraries')"`
	Question string `arg:"" help:"Question to answer"`
	Server   string `placeholder:"CMD" help:"Fetch documentation through an MCP server started with this command"`
}

// LibrariesCmd is the "libraries" subcommand.
type LibrariesCmd struct{}
