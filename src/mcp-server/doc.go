// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for eduGAIN metadata validation.
// It exposes the validator over stdio as tools (validate_metadata,
// list_schema_locations), static resources (version, schema location table,
// config schema) and a guided validation prompt.
//
// Compiled schemas are cached per schemas directory, root schema and
// skip-optional setting for the life of the process, so only the first
// validation of a given set pays for compilation.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
