// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report defines the per-file validation outcome and the renderers that
// present a run to the user.
//
// Three formats are supported:
//
//   - text: streams one pass/fail line per file as soon as it completes; engine
//     diagnostics appear only with -v.
//   - table: collects outcomes and prints a markdown table at the end.
//   - json: collects outcomes and prints the whole [Summary] at the end.
//
// Verbosity only changes what is printed, never an outcome.
package report
