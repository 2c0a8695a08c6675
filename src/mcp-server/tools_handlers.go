// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/report"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/schema"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/validator"
)

// handleValidateMetadata validates the comma-separated files argument and
// returns the rendered report. The result is a tool error when any file fails
// or the schema set cannot be compiled.
func handleValidateMetadata(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	filesArg, err := request.RequireString("files")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	files := splitList(filesArg)
	if len(files) == 0 {
		return mcp.NewToolResultError("no metadata files given"), nil
	}

	defaults := config.Validation
	skipOptional := request.GetBool("skip_optional", defaults.SkipOptional)
	cert := request.GetString("cert", defaults.Cert)
	lazy := request.GetBool("lazy", defaults.Lazy)

	format, err := report.ParseFormat(request.GetString("format", defaults.Format))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	compiled, err := config.cache.get(defaults.SchemasDir, defaults.RootSchema, skipOptional)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build schema: %v", err)), nil
	}

	v, err := validator.New(validator.Options{
		Schema:    compiled,
		CertFile:  cert,
		Lazy:      lazy,
		Summarize: true,
		Logger:    config.Logger,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Diagnostics are always part of a tool result.
	verbosity := max(defaults.Verbosity, 1)

	var (
		text    string
		summary *report.Summary
	)
	err = gc.WithBuffer(func(buf gc.Buffer) error {
		renderer, err := report.New(format, buf, verbosity)
		if err != nil {
			return err
		}
		if summary, err = v.Run(ctx, files, renderer); err != nil {
			return err
		}
		if err := renderer.Finish(summary); err != nil {
			return err
		}
		text = string(buf.Bytes())
		return nil
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation aborted: %v", err)), nil
	}

	config.Logger.Info("validate_metadata finished",
		zap.Int("files", len(summary.Outcomes)),
		zap.Int("failed", summary.FailedCount()),
		zap.Duration("elapsed", summary.Elapsed),
	)

	if summary.Failed() {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

// locationEntry is one row of the list_schema_locations result.
type locationEntry struct {
	Namespace string `json:"namespace"`
	File      string `json:"file"`
	Required  bool   `json:"required"`
}

type locationTable struct {
	Root      string          `json:"root"`
	Locations []locationEntry `json:"locations"`
}

// handleListSchemaLocations returns the resolved location table as JSON.
func handleListSchemaLocations(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	skipOptional := request.GetBool("skip_optional", false)

	table := buildLocationTable(config, skipOptional)
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location table: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func buildLocationTable(config *Config, skipOptional bool) locationTable {
	root := config.Validation.RootSchema
	if root == "" {
		root = schema.DefaultRootSchema
	}

	locations := schema.Resolve(skipOptional, config.Validation.ExtraLocations())
	table := locationTable{Root: root, Locations: make([]locationEntry, 0, len(locations))}
	for _, ns := range locations.Namespaces() {
		table.Locations = append(table.Locations, locationEntry{
			Namespace: ns,
			File:      locations[ns],
			Required:  schema.IsRequired(ns),
		})
	}
	return table
}

// splitList splits a comma-separated argument, dropping blank items.
func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
