package mcp

import (
	"context"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ClientName is advertised to MCP servers.
const ClientName = "docsearch-client"

var _ docsearch.DocsService = (*Client)(nil)

// Client implements docsearch.DocsService by calling get_docs on a remote
// MCP server.
type Client struct {
	session *mcp.ClientSession
}

// NewClient connects to an MCP server over transport.
func NewClient(ctx context.Context, transport mcp.Transport, version string) (*Client, error) {
	c := mcp.NewClient(&mcp.Implementation{Name: ClientName, Version: version}, nil)
	session, err := c.Connect(ctx, transport, nil)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "connect to MCP server: %v", err)
	}
	return &Client{session: session}, nil
}

// Tools returns the names of the tools the server offers.
func (c *Client) Tools(ctx context.Context) ([]string, error) {
	res, err := c.session.ListTools(ctx, nil)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "list tools: %v", err)
	}
	names := make([]string, len(res.Tools))
	for i, t := range res.Tools {
		names[i] = t.Name
	}
	return names, nil
}

// GetDocs calls get_docs. Tool errors come back as *docsearch.Error with
// the code the server reported.
func (c *Client) GetDocs(ctx context.Context, query, library string) (string, error) {
	res, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      ToolGetDocs,
		Arguments: GetDocsInput{Query: query, Library: library},
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "call %s: %v", ToolGetDocs, err)
	}

	text := resultText(res)
	if res.IsError {
		code, _ := res.Meta[codeKey].(string)
		if code == "" {
			code = docsearch.EINTERNAL
		}
		return "", &docsearch.Error{Code: code, Message: text}
	}
	return text, nil
}

// Close ends the session.
func (c *Client) Close() error {
	return c.session.Close()
}

func resultText(res *mcp.CallToolResult) string {
	var sb strings.Builder
	for _, content := range res.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}
