// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("metadata-validation",
				mcp.WithPromptDescription("Validate an eduGAIN metadata aggregate and explain any failure"),
				mcp.WithArgument("metadata_path",
					mcp.ArgumentDescription("Path to the metadata file"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("cert_path",
					mcp.ArgumentDescription("Path to the signing certificate; omit to skip signature verification"),
				),
			),
			Handler: handleMetadataValidationPrompt,
		},
	}
}

// handleMetadataValidationPrompt handles the metadata validation prompt
func handleMetadataValidationPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	path := request.Params.Arguments["metadata_path"]
	if path == "" {
		return nil, fmt.Errorf("metadata_path is required")
	}
	cert := request.Params.Arguments["cert_path"]

	call := fmt.Sprintf(`Use the "validate_metadata" tool with files=%q and format "text".`, path)
	if cert != "" {
		call = fmt.Sprintf(`Use the "validate_metadata" tool with files=%q and cert=%q so the XML signature is verified before the schema check.`, path, cert)
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll validate the eduGAIN metadata in %s.`, path)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`1. Validate the file.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(call),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`2. If the schema check fails, look up the namespaces involved.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "list_schema_locations" tool to see which schema file covers each namespace, and retry with skip_optional to tell core violations from extension violations.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`3. Summarize the result: signature state, every violation with its location, and the entity counts and validUntil of a passing aggregate.`),
		),
	}

	return mcp.NewGetPromptResult(
		"eduGAIN Metadata Validation Workflow",
		messages,
	), nil
}
