// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"bytes"
	"errors"
	"io/fs"
	"path"
	"time"
)

// catalogFS serves the schema directory plus in-memory documents such as the
// generated driver schema. An import whose path does not exist falls back to the
// table file with the same base name, which lets vendored schemas that import
// "../xmldsig/xmldsig-core-schema.xsd" style paths resolve against a flat directory.
type catalogFS struct {
	base    fs.FS
	overlay map[string][]byte
	aliases map[string]string
}

func newCatalogFS(base fs.FS, root string, locations Locations) *catalogFS {
	c := &catalogFS{
		base:    base,
		overlay: make(map[string][]byte),
		aliases: make(map[string]string, len(locations)+1),
	}
	c.aliases[path.Base(root)] = root
	for _, file := range locations {
		c.aliases[path.Base(file)] = file
	}
	return c
}

func (c *catalogFS) add(name string, data []byte) { c.overlay[name] = data }

// Open implements fs.FS.
func (c *catalogFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if data, ok := c.overlay[name]; ok {
		return newMemFile(name, data), nil
	}

	f, err := c.base.Open(name)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return f, err
	}
	if alias, ok := c.aliases[path.Base(name)]; ok && alias != name {
		return c.base.Open(alias)
	}
	return nil, err
}

type memFile struct {
	*bytes.Reader
	info memFileInfo
}

func newMemFile(name string, data []byte) *memFile {
	return &memFile{
		Reader: bytes.NewReader(data),
		info:   memFileInfo{name: path.Base(name), size: int64(len(data))},
	}
}

func (f *memFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *memFile) Close() error               { return nil }

type memFileInfo struct {
	name string
	size int64
}

func (i memFileInfo) Name() string       { return i.name }
func (i memFileInfo) Size() int64        { return i.size }
func (i memFileInfo) Mode() fs.FileMode  { return 0o444 }
func (i memFileInfo) ModTime() time.Time { return time.Time{} }
func (i memFileInfo) IsDir() bool        { return false }
func (i memFileInfo) Sys() any           { return nil }
