// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// GetExecutableName gives a clean program name for CLI usage strings and
// ExecutableDir locates the directory the binary lives in, which is where the
// bundled schemas/ directory is looked up by default.
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
