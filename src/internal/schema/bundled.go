// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"embed"
	"io/fs"
)

// Bundled files import each other by flat relative schemaLocation; the engine
// resolves nothing outside its filesystem.
//
//go:embed schemas/*.xsd
var bundled embed.FS

// Bundled returns the eduGAIN schema set compiled into the binary. It holds
// DefaultRootSchema and every file of the Required and Optional tables.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "schemas")
	if err != nil {
		// fs.Sub only fails on an invalid directory name.
		panic(err)
	}
	return sub
}

// CompileBundled compiles the embedded schema set.
func CompileBundled(root string, locations Locations, opts ...Option) (*Schema, error) {
	return Compile(Bundled(), root, locations, opts...)
}
