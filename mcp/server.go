// Package mcp exposes docsearch over the Model Context Protocol: a server
// offering the get_docs tool and a client that calls it.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is advertised to MCP clients.
const ServerName = "docsearch"

// ToolGetDocs is the name of the documentation retrieval tool.
const ToolGetDocs = "get_docs"

// codeKey carries the docsearch error code in a tool result's metadata.
const codeKey = "code"

// GetDocsInput is the input schema for the get_docs tool.
type GetDocsInput struct {
	Query   string `json:"query" jsonschema:"the query to search for, e.g. Chroma DB"`
	Library string `json:"library" jsonschema:"the library whose documentation to search"`
}

// Server is the MCP server for docsearch.
type Server struct {
	docs   docsearch.DocsService
	server *mcp.Server
}

// NewServer creates a server exposing docs as the get_docs tool. The tool
// description lists libraries.
func NewServer(docs docsearch.DocsService, libraries []docsearch.Library, version string) *Server {
	s := &Server{
		docs: docs,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolGetDocs,
		Description: ToolDescription(libraries),
	}, s.handleGetDocs)

	return s
}

// ToolDescription describes get_docs for the given libraries.
func ToolDescription(libraries []docsearch.Library) string {
	names := make([]string, len(libraries))
	for i, lib := range libraries {
		names[i] = lib.Name
	}
	return "Search the latest docs for a given query and library. " +
		"Supports " + strings.Join(names, ", ") + ". " +
		"Returns the text of the top matching documentation pages, each tagged with its SOURCE URL."
}

// Run serves a single client over stdio until ctx is done or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves one session over transport.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

// Handler returns a streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves streamable HTTP on addr until ctx is done.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleGetDocs(ctx context.Context, _ *mcp.CallToolRequest, in GetDocsInput) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(in.Query) == "" {
		return newToolResultError(docsearch.Errorf(docsearch.EINVALID, "query is required"))
	}

	text, err := s.docs.GetDocs(ctx, in.Query, in.Library)
	if err != nil {
		return newToolResultError(err)
	}
	return newToolResultText(text)
}

func newToolResultText(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// newToolResultError reports err inside the result so the calling model
// can read it. The error code travels in the result metadata.
func newToolResultError(err error) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Meta:    mcp.Meta{codeKey: docsearch.ErrorCode(err)},
		Content: []mcp.Content{&mcp.TextContent{Text: docsearch.ErrorMessage(err)}},
		IsError: true,
	}, nil, nil
}
