// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/config"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/report"
)

// handleVersionResource provides server metadata including version, tools
// and supported report formats.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tools := createTools()
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Tool.Name)
	}

	versionInfo := map[string]any{
		"name":             serverName,
		"version":          GetVersion(),
		"type":             "MCP Server",
		"tools":            names,
		"supportedFormats": report.Formats(),
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleSchemaLocationsResource serves the full location table, including
// configured overrides.
func handleSchemaLocationsResource(ctx context.Context, request mcp.ReadResourceRequest, cfg *Config) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(buildLocationTable(cfg, false), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location table: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriSchemaLocations,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

func handleConfigSchemaResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigSchema,
			MIMEType: "application/schema+json",
			Text:     config.Schema(),
		},
	}, nil
}
