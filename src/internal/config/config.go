// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads validator settings from a JSON or YAML file and the
// environment.
//
// Configuration Priority:
//  1. Default values
//  2. Config file, from the explicit path or EDUGAIN_VALIDATE_CONFIG_FILE
//  3. Environment variables (EDUGAIN_SCHEMAS_DIR)
//  4. Command-line flags, applied by the caller when set explicitly
//
// A config file is checked against an embedded JSON Schema before it is decoded.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/schema"
)

const (
	// EnvConfigFile names the config file when no explicit path is given.
	EnvConfigFile = "EDUGAIN_VALIDATE_CONFIG_FILE"
	// EnvSchemasDir overrides the schemas directory.
	EnvSchemasDir = "EDUGAIN_SCHEMAS_DIR"
)

// ErrInvalidConfig is returned when a config file fails the JSON Schema check.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed config.schema.json
var schemaJSON string

// Schema returns the JSON Schema a config file must satisfy.
func Schema() string { return schemaJSON }

var configSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// configFormat represents supported configuration file formats.
type configFormat int

const (
	configFormatJSON configFormat = iota
	configFormatYAML
)

// Config holds every setting of a validation run.
type Config struct {
	SchemasDir   string            `json:"schemasDir,omitempty" yaml:"schemasDir,omitempty"`
	RootSchema   string            `json:"rootSchema,omitempty" yaml:"rootSchema,omitempty"`
	SkipOptional bool              `json:"skipOptional,omitempty" yaml:"skipOptional,omitempty"`
	Lazy         bool              `json:"lazy,omitempty" yaml:"lazy,omitempty"`
	Cert         string            `json:"cert,omitempty" yaml:"cert,omitempty"`
	Format       string            `json:"format,omitempty" yaml:"format,omitempty"`
	Verbosity    int               `json:"verbosity,omitempty" yaml:"verbosity,omitempty"`
	Locations    map[string]string `json:"locations,omitempty" yaml:"locations,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SchemasDir: DefaultSchemasDir(),
		RootSchema: schema.DefaultRootSchema,
		Format:     "text",
	}
}

// DefaultSchemasDir returns the "schemas" directory next to the executable
// when it exists. Otherwise it returns the empty string, which selects the
// schema set embedded in the binary.
func DefaultSchemasDir() string {
	if dir := posix.ExecutableDir(); dir != "" {
		candidate := filepath.Join(dir, "schemas")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Load builds the configuration from defaults, the config file at path (or
// the one named by EnvConfigFile) and the environment. Relative paths set in
// the file are resolved against the file's directory; defaults are left as is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}

		format := detectConfigFormat(path)
		if err := check(data, format); err != nil {
			return nil, fmt.Errorf("%w (%s)", err, path)
		}
		var file Config
		if err := unmarshalConfig(data, &file, format); err != nil {
			return nil, err
		}

		base := filepath.Dir(path)
		file.SchemasDir = resolve(base, file.SchemasDir)
		file.Cert = resolve(base, file.Cert)
		cfg.overlay(&file)
	}

	if dir := os.Getenv(EnvSchemasDir); dir != "" {
		cfg.SchemasDir = dir
	}

	return cfg, nil
}

// overlay copies the settings present in src over c.
func (c *Config) overlay(src *Config) {
	if src.SchemasDir != "" {
		c.SchemasDir = src.SchemasDir
	}
	if src.RootSchema != "" {
		c.RootSchema = src.RootSchema
	}
	if src.Cert != "" {
		c.Cert = src.Cert
	}
	if src.Format != "" {
		c.Format = src.Format
	}
	if src.Verbosity != 0 {
		c.Verbosity = src.Verbosity
	}
	c.SkipOptional = c.SkipOptional || src.SkipOptional
	c.Lazy = c.Lazy || src.Lazy
	if src.Locations != nil {
		c.Locations = src.Locations
	}
}

// ExtraLocations returns the configured namespace overrides as a table.
func (c *Config) ExtraLocations() schema.Locations {
	out := make(schema.Locations, len(c.Locations))
	for ns, file := range c.Locations {
		out[ns] = filepath.ToSlash(file)
	}
	return out
}

// ParseLocation parses a NAMESPACE=FILE flag value.
func ParseLocation(s string) (namespace, file string, err error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 || i == len(s)-1 {
		return "", "", fmt.Errorf("config: location %q: want NAMESPACE=FILE", s)
	}
	return s[:i], s[i+1:], nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("config: parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("config: parse JSON: %w", err)
		}
	}
	return nil
}

// check validates the raw document against the embedded JSON Schema.
func check(data []byte, format configFormat) error {
	var doc any
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("config: parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("config: parse JSON: %w", err)
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	s, err := configSchema()
	if err != nil {
		return fmt.Errorf("config: compile schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
