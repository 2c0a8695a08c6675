// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/edugain-validate/src/logger"
	"github.com/H0llyW00dzZ/edugain-validate/src/version"
)

const serverName = "eduGAIN Metadata Validator"

const instructions = `Validates eduGAIN SAML metadata against the eduGAIN XML schema set.
Call validate_metadata with a comma-separated list of files; pass cert to verify the XML signature first.
A file that fails signature verification is not schema validated.
Call list_schema_locations to see which schema file covers each namespace.`

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server on stdio.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "0.3.0")
//
// Returns:
//   - error: Server startup or runtime error, or graceful shutdown signal
//
// Configuration:
//   - Loads config from the EDUGAIN_MCP_CONFIG_FILE environment variable
//   - Falls back to the validator's config lookup when it is not set
//
// Logs are written as JSON to stderr since stdout carries the protocol.
// On SIGINT or SIGTERM Run returns an error wrapping [context.Canceled].
func Run(version string) error {
	appVersion = version

	settings, err := loadConfig(os.Getenv(EnvConfigFile))
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	log := logger.NewStructured(os.Stderr, settings.Verbosity)
	defer func() { _ = log.Sync() }()
	config := newConfig(settings, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := NewServerBuilder().
		WithConfig(config).
		WithVersion(version).
		WithInstructions(instructions).
		WithDefaultTools().
		WithResources(createResources(config)...).
		WithPrompts(createPrompts()...).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	log.Info("server starting",
		zap.String("version", version),
		zap.String("schemas_dir", config.Validation.SchemasDir),
	)

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
