// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the output plumbing shared by the CLI and the MCP server.
// The Logger interface and CLILogger carry user-facing report lines, while
// NewLeveled and NewStructured build [zap] loggers whose level follows the
// repeatable -v flag, so verbosity only ever decides which diagnostics appear.
//
// [zap]: https://pkg.go.dev/go.uber.org/zap
package logger
