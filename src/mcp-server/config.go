// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/config"
)

// EnvConfigFile names the server config file. When unset the validator's
// EDUGAIN_VALIDATE_CONFIG_FILE is used instead.
const EnvConfigFile = "EDUGAIN_MCP_CONFIG_FILE"

// Config holds the settings shared by every tool call.
//
// Fields:
//   - Validation: Defaults for tool arguments and the schema location table
//   - Logger: Structured logger writing to stderr
type Config struct {
	Validation *config.Config
	Logger     *zap.Logger

	cache *schemaCache
}

// loadConfig loads the validation settings from configPath. An empty path
// falls back to the validator's lookup.
func loadConfig(configPath string) (*config.Config, error) {
	v, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return v, nil
}

// newConfig prepares the schema cache for v.

func newConfig(v *config.Config, log *zap.Logger) *Config {
	if log == nil {
		log = zap.NewNop()
	}
	return &Config{
		Validation: v,
		Logger:     log,
		cache:      newSchemaCache(v.ExtraLocations(), log),
	}
}
