// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	uriVersion         = "info://version"
	uriSchemaLocations = "edugain://schema-locations"
	uriConfigSchema    = "config://schema"
)

// createResources creates the static resources served to MCP clients:
// version information, the full schema location table and the JSON Schema
// of the config file.
func createResources(config *Config) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriVersion, "Version Information",
				mcp.WithResourceDescription("Server name, version, tools and supported report formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(uriSchemaLocations, "Schema Locations",
				mcp.WithResourceDescription("Namespace to schema file table used to compile the full eduGAIN schema set"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleSchemaLocationsResource(ctx, request, config)
			},
		},
		{
			Resource: mcp.NewResource(uriConfigSchema, "Config Schema",
				mcp.WithResourceDescription("JSON Schema a validator config file must satisfy"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleConfigSchemaResource,
		},
	}
}
