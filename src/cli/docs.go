// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the eduGAIN metadata validator.
// It implements a Cobra-based command that compiles the eduGAIN schema set once,
// optionally verifies XML signatures against a trusted certificate and validates
// every file named on the command line, rendering the result as text, a markdown
// table or JSON.
//
// Settings are layered as defaults, config file, environment and flags, where a
// flag only wins when it was set explicitly. Report lines go through the
// [logger.Logger] passed to [Execute]; leveled diagnostics go to stderr through zap.
package cli
