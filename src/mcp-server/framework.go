// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrNoConfig is returned by Build when no configuration was supplied.
var ErrNoConfig = errors.New("mcpserver: no configuration")

// ToolHandlerWithConfig defines tool handlers that require access to server configuration.
//
// Parameters:
//   - ctx: Context for cancellation, canceled when the client drops the call
//   - request: The MCP tool call request containing arguments and metadata
//   - config: Server configuration holding validation defaults and the schema cache
//
// Returns:
//   - The tool execution result or an error if the tool could not run at all
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error)

// ToolDefinitionWithConfig pairs an MCP tool definition with a handler that
// receives server configuration.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
}

// ServerDependencies holds all dependencies needed to create the MCP server.
type ServerDependencies struct {
	Config       *Config
	Version      string
	Instructions string
	Tools        []ToolDefinitionWithConfig
	Resources    []server.ServerResource
	Prompts      []server.ServerPrompt
}

// ServerBuilder assembles an [server.MCPServer] from its dependencies.
//
// Example usage:
//
//	s, err := NewServerBuilder().
//		WithConfig(cfg).
//		WithVersion("0.3.0").
//		WithDefaultTools().
//		Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder returns an empty builder.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration passed to every tool handler.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithVersion sets the version reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithInstructions sets the instructions returned on initialize.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithTools appends tools.
func (b *ServerBuilder) WithTools(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools appends the validation tools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithTools(createTools()...)
}

// WithResources appends resources.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts appends prompts.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// Build creates the MCP server and registers every tool, resource and prompt.
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.deps.Config == nil {
		return nil, ErrNoConfig
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(serverName, b.deps.Version, opts...)
	s.AddTools(bindTools(b.deps.Config, b.deps.Tools)...)

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}

// bindTools closes each handler over config.
func bindTools(config *Config, defs []ToolDefinitionWithConfig) []server.ServerTool {
	tools := make([]server.ServerTool, 0, len(defs))
	for _, def := range defs {
		handler := def.Handler
		tools = append(tools, server.ServerTool{
			Tool: def.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, request, config)
			},
		})
	}
	return tools
}
