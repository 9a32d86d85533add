package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/mattnico/ldsmcp-sub001/internal/resource"
	"github.com/mattnico/ldsmcp-sub001/internal/search"
)

// Server bundles the executor and resolver behind the MCP protocol.
type Server struct {
	exec     *search.Executor
	resolver *resource.Resolver
	log      *zap.Logger
}

// NewServer creates the MCP protocol server with all search tools and the
// resource catalog registered.
func NewServer(exec *search.Executor, resolver *resource.Resolver, log *zap.Logger) *sdkmcp.Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{exec: exec, resolver: resolver, log: log}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "gospel-library",
		Version: "v1.0.0",
	}, nil)

	for _, def := range toolDefs {
		def := def
		server.AddTool(
			&sdkmcp.Tool{
				Name:        def.name,
				Description: def.description,
				InputSchema: def.schema,
			},
			func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
				return s.callSearchTool(ctx, def.family, req)
			},
		)
	}

	for _, res := range resolver.List() {
		res := res
		server.AddResource(
			&sdkmcp.Resource{
				URI:         res.URI,
				Name:        res.Name,
				Description: res.Description,
				MIMEType:    res.MimeType,
			},
			func(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
				return s.readResource(ctx, req.Params.URI)
			},
		)
	}

	return server
}

func (s *Server) callSearchTool(ctx context.Context, family string, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
	args, err := parseArgs(req.Params.Arguments)
	if err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	result, err := s.exec.Search(ctx, family, args.searchParams())
	if err != nil {
		// Builder-time validation failure; report it to the caller instead
		// of failing the protocol call.
		return toolError(err.Error()), nil
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
		IsError: result.Error != nil,
	}, nil
}

func (s *Server) readResource(ctx context.Context, uri string) (*sdkmcp.ReadResourceResult, error) {
	read := s.resolver.Read(ctx, uri)
	contents := make([]*sdkmcp.ResourceContents, 0, len(read.Contents))
	for _, c := range read.Contents {
		contents = append(contents, &sdkmcp.ResourceContents{
			URI:      c.URI,
			MIMEType: c.MimeType,
			Text:     c.Text,
		})
	}
	return &sdkmcp.ReadResourceResult{Contents: contents}, nil
}

func toolError(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: msg}},
		IsError: true,
	}
}
