// Package mcpserver assembles the MCP server: it registers every search tool
// and the category listing resource, and runs the stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/jikime/py-mcp-naver-search/pkg/tools"
)

const serverName = "naver-search"

// Server bundles the MCP server with its tool registry.
type Server struct {
	mcp      *mcp.Server
	registry *tools.Registry
	log      zerolog.Logger
}

// New builds an MCP server exposing the full Naver tool set.
func New(client tools.Client, version string, log zerolog.Logger) *Server {
	s := &Server{
		mcp:      mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil),
		registry: tools.NewRegistry(tools.All(client)...),
		log:      log.With().Str("component", "mcp-server").Logger(),
	}
	for _, tool := range s.registry.All() {
		s.addTool(tool)
	}
	s.addCategoriesResource()
	return s
}

// Registry exposes the registered tool set.
func (s *Server) Registry() *tools.Registry {
	return s.registry
}

// Run serves MCP over the given transport until ctx is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	s.log.Info().Int("tools", len(s.registry.All())).Msg("Starting MCP server")
	return s.mcp.Run(ctx, transport)
}

func (s *Server) addTool(tool *tools.Tool) {
	def := tool.Tool
	s.mcp.AddTool(&def, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return errorCallResult(fmt.Sprintf("invalid tool arguments: %v", err)), nil
			}
		}

		result, err := tool.Execute(ctx, args)
		if err != nil {
			// Execute reports expected failures inside the result; anything
			// surfacing here is still returned as text per the error policy.
			s.log.Error().Err(err).Str("tool", tool.Name).Msg("Tool execution failed")
			return errorCallResult(err.Error()), nil
		}
		if result.IsError() {
			s.log.Debug().Str("tool", tool.Name).Str("error", result.Error).Msg("Tool returned error result")
		}
		return toCallResult(result), nil
	})
}

func (s *Server) addCategoriesResource() {
	s.mcp.AddResource(tools.CategoriesResource(), func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		payload, err := tools.CategoriesJSON()
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      tools.CategoriesResourceURI,
				MIMEType: "application/json",
				Text:     payload,
			}},
		}, nil
	})
}

func toCallResult(result *tools.Result) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: result.Message()}},
		IsError: result.IsError(),
	}
}

func errorCallResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}
