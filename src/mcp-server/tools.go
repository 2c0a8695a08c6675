// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/report"
)

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - validate_metadata: Validates metadata files against the compiled schema set
//     and, with a certificate, their XML signature
//   - list_schema_locations: Lists the namespace to schema file table in effect
//
// Argument defaults are taken from the server configuration when omitted.
func createTools() []ToolDefinitionWithConfig {
	return []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("validate_metadata",
				mcp.WithDescription("Validate eduGAIN SAML metadata files against the eduGAIN XML schema set, optionally verifying the XML signature first"),
				mcp.WithString("files",
					mcp.Required(),
					mcp.Description("Comma-separated list of metadata file paths"),
				),
				mcp.WithBoolean("skip_optional",
					mcp.Description("Use the required schema set only (default: from config, false)"),
				),
				mcp.WithString("cert",
					mcp.Description("Certificate file (PEM, DER or PKCS#7) used to verify the XML signature"),
				),
				mcp.WithBoolean("lazy",
					mcp.Description("Stream files from disk instead of reading them into memory; ignored with cert (default: false)"),
				),
				mcp.WithString("format",
					mcp.Description("Report format: "+strings.Join(report.Formats(), ", ")+" (default: from config, text)"),
					mcp.Enum(report.Formats()...),
				),
			),
			Handler: handleValidateMetadata,
		},
		{
			Tool: mcp.NewTool("list_schema_locations",
				mcp.WithDescription("List the namespace to schema file locations used to compile the eduGAIN schema set"),
				mcp.WithBoolean("skip_optional",
					mcp.Description("List the required locations only (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleListSchemaLocations,
		},
	}
}
