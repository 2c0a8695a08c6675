// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/schema"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/validator"
)

type cacheKey struct {
	dir          string
	root         string
	skipOptional bool
}

type cacheEntry struct {
	once   sync.Once
	schema *schema.Schema
	err    error
}

// schemaCache compiles each schema set once. Failed compilations are not
// kept, so a fixed schemas directory is picked up by the next call.
type schemaCache struct {
	mu        sync.Mutex
	entries   map[cacheKey]*cacheEntry
	locations schema.Locations
	log       *zap.Logger
	compile   func(validator.Options) (*schema.Schema, error)
}

func newSchemaCache(locations schema.Locations, log *zap.Logger) *schemaCache {
	return &schemaCache{
		entries:   make(map[cacheKey]*cacheEntry),
		locations: locations,
		log:       log,
		compile:   validator.CompileSchema,
	}
}

func (c *schemaCache) get(dir, root string, skipOptional bool) (*schema.Schema, error) {
	if root == "" {
		root = schema.DefaultRootSchema
	}
	key := cacheKey{dir: dir, root: root, skipOptional: skipOptional}

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		start := time.Now()
		e.schema, e.err = c.compile(validator.Options{
			SchemasDir:   dir,
			RootSchema:   root,
			SkipOptional: skipOptional,
			Locations:    c.locations,
			Logger:       c.log,
		})
		if e.err == nil {
			c.log.Info("schema cached",
				zap.String("dir", dir),
				zap.String("root", root),
				zap.Bool("skip_optional", skipOptional),
				zap.Duration("elapsed", time.Since(start)),
			)
		}
	})

	if e.err != nil {
		c.mu.Lock()
		if c.entries[key] == e {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, e.err
	}
	return e.schema, nil
}

func (c *schemaCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
