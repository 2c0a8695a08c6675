// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/config"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/schema"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/testfixtures"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/validator"
)

type testEnv struct {
	config *Config
	dir    string
	client interface {
		CallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
		ReadResource(ctx context.Context, request mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error)
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()

	settings := config.Default()
	settings.SchemasDir = testfixtures.WriteSchemas(t, filepath.Join(root, "schemas"))
	cfg := newConfig(settings, nil)

	srv := mcptest.NewUnstartedServer(t)
	srv.AddTools(bindTools(cfg, createTools())...)
	srv.AddResources(createResources(cfg)...)
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(srv.Close)

	return &testEnv{config: cfg, dir: filepath.Join(root, "files"), client: srv.Client()}
}

func (e *testEnv) file(t *testing.T, name string, data []byte) string {
	return testfixtures.WriteFile(t, e.dir, name, data)
}

func (e *testEnv) call(t *testing.T, tool string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	result, err := e.client.CallTool(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: tool, Arguments: args},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	var text strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			text.WriteString(tc.Text)
		}
	}
	return result, text.String()
}

func TestValidateMetadataTool(t *testing.T) {
	env := newTestEnv(t)
	valid := env.file(t, "valid.xml", []byte(testfixtures.ValidMetadata))
	invalid := env.file(t, "invalid.xml", []byte(testfixtures.InvalidMetadata))

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		contains  []string
	}{
		{
			name:     "conformant file",
			args:     map[string]any{"files": valid},
			contains: []string{"Validate XML file", "Validation: OK"},
		},
		{
			name:      "schema violation",
			args:      map[string]any{"files": invalid},
			wantError: true,
			contains:  []string{"Validation: FAILED (schema-invalid)", "  - "},
		},
		{
			name:      "batch",
			args:      map[string]any{"files": valid + ", " + invalid},
			wantError: true,
			contains:  []string{"Checked 2 files: 1 passed, 1 failed"},
		},
		{
			name:     "lazy table",
			args:     map[string]any{"files": valid, "lazy": true, "format": "table"},
			contains: []string{"passed", "1 passed, 0 failed"},
		},
		{
			name:      "no files",
			args:      map[string]any{"files": " , "},
			wantError: true,
			contains:  []string{"no metadata files"},
		},
		{
			name:      "missing certificate",
			args:      map[string]any{"files": valid, "cert": filepath.Join(env.dir, "absent.pem")},
			wantError: true,
			contains:  []string{"load certificate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, text := env.call(t, "validate_metadata", tt.args)
			assert.Equal(t, tt.wantError, result.IsError, text)
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
		})
	}
}

func TestValidateMetadataJSON(t *testing.T) {
	env := newTestEnv(t)
	valid := env.file(t, "valid.xml", []byte(testfixtures.ValidMetadata))

	result, text := env.call(t, "validate_metadata", map[string]any{"files": valid, "format": "json"})
	require.False(t, result.IsError, text)

	var doc struct {
		Total int `json:"total"`
		Files []struct {
			Status   string `json:"status"`
			Metadata struct {
				Entities int `json:"entities"`
			} `json:"metadata"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &doc))
	assert.Equal(t, 1, doc.Total)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, "passed", doc.Files[0].Status)
	assert.Equal(t, 2, doc.Files[0].Metadata.Entities)
}

func TestValidateMetadataSignature(t *testing.T) {
	env := newTestEnv(t)
	signer := testfixtures.NewSigner(t, "eduGAIN Metadata Signer")
	cert := signer.WriteCertificate(t.TempDir(), "signer.pem")
	signed := env.file(t, "signed.xml", signer.Sign([]byte(testfixtures.ValidMetadata)))
	unsigned := env.file(t, "unsigned.xml", []byte(testfixtures.ValidMetadata))

	result, text := env.call(t, "validate_metadata", map[string]any{"files": signed, "cert": cert})
	assert.False(t, result.IsError, text)

	result, text = env.call(t, "validate_metadata", map[string]any{"files": unsigned, "cert": cert})
	assert.True(t, result.IsError)
	assert.Contains(t, text, "signature-invalid")
	assert.Contains(t, text, "missing")
}

func TestSchemaCacheReuse(t *testing.T) {
	env := newTestEnv(t)
	valid := env.file(t, "valid.xml", []byte(testfixtures.ValidMetadata))

	for range 3 {
		env.call(t, "validate_metadata", map[string]any{"files": valid})
	}
	assert.Equal(t, 1, env.config.cache.size())

	env.call(t, "validate_metadata", map[string]any{"files": valid, "skip_optional": true})
	assert.Equal(t, 2, env.config.cache.size())
}

func TestSchemaCache(t *testing.T) {
	t.Run("compiles once under concurrency", func(t *testing.T) {
		var (
			mu    sync.Mutex
			calls int
		)
		cache := newSchemaCache(nil, zap.NewNop())
		cache.compile = func(opts validator.Options) (*schema.Schema, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			return validator.CompileSchema(validator.Options{SchemaFS: testfixtures.SchemaFS(), SkipOptional: opts.SkipOptional})
		}

		var wg sync.WaitGroup
		results := make([]*schema.Schema, 8)
		for i := range results {
			wg.Go(func() {
				s, err := cache.get("schemas", "", false)
				assert.NoError(t, err)
				results[i] = s
			})
		}
		wg.Wait()

		assert.Equal(t, 1, calls)
		for _, s := range results {
			assert.Same(t, results[0], s)
		}
	})

	t.Run("failures are not kept", func(t *testing.T) {
		calls := 0
		cache := newSchemaCache(nil, zap.NewNop())
		cache.compile = func(validator.Options) (*schema.Schema, error) {
			calls++
			return nil, errors.New("schema: compile broken.xsd")
		}

		for range 2 {
			_, err := cache.get("schemas", schema.DefaultRootSchema, true)
			assert.Error(t, err)
		}
		assert.Equal(t, 2, calls)
		assert.Zero(t, cache.size())
	})

	t.Run("default root shares the entry", func(t *testing.T) {
		cache := newSchemaCache(nil, zap.NewNop())
		cache.compile = func(validator.Options) (*schema.Schema, error) {
			return validator.CompileSchema(validator.Options{SchemaFS: testfixtures.SchemaFS()})
		}

		a, err := cache.get("schemas", "", false)
		require.NoError(t, err)
		b, err := cache.get("schemas", schema.DefaultRootSchema, false)
		require.NoError(t, err)
		assert.Same(t, a, b)
	})
}

func TestListSchemaLocationsTool(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		skipOptional bool
		want         int
	}{
		{false, len(schema.Required()) + len(schema.Optional())},
		{true, len(schema.Required())},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("skip_optional=%v", tt.skipOptional), func(t *testing.T) {
			result, text := env.call(t, "list_schema_locations", map[string]any{"skip_optional": tt.skipOptional})
			require.False(t, result.IsError, text)

			var table locationTable
			require.NoError(t, json.Unmarshal([]byte(text), &table))
			assert.Equal(t, schema.DefaultRootSchema, table.Root)
			assert.Len(t, table.Locations, tt.want)
			for _, loc := range table.Locations {
				assert.Equal(t, schema.IsRequired(loc.Namespace), loc.Required, loc.Namespace)
			}
		})
	}
}

func TestResources(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		uri      string
		mimeType string
		contains []string
	}{
		{uriVersion, "application/json", []string{`"version"`, `"validate_metadata"`, `"json"`}},
		{uriSchemaLocations, "application/json", []string{`"root"`, schema.DefaultRootSchema}},
		{uriConfigSchema, "application/schema+json", []string{`"schemasDir"`, `"additionalProperties"`}},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			result, err := env.client.ReadResource(context.Background(), mcp.ReadResourceRequest{
				Params: mcp.ReadResourceParams{URI: tt.uri},
			})
			require.NoError(t, err)
			require.Len(t, result.Contents, 1)

			content, ok := result.Contents[0].(mcp.TextResourceContents)
			require.True(t, ok, "got %T", result.Contents[0])
			assert.Equal(t, tt.mimeType, content.MIMEType)
			for _, want := range tt.contains {
				assert.Contains(t, content.Text, want)
			}
		})
	}

	_, err := env.client.ReadResource(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: "nonexistent://resource"},
	})
	assert.Error(t, err)
}

func TestMetadataValidationPrompt(t *testing.T) {
	request := func(args map[string]string) mcp.GetPromptRequest {
		return mcp.GetPromptRequest{Params: mcp.GetPromptParams{Name: "metadata-validation", Arguments: args}}
	}

	result, err := handleMetadataValidationPrompt(context.Background(), request(map[string]string{
		"metadata_path": "edugain-v2.xml",
	}))
	require.NoError(t, err)
	assert.Equal(t, "eduGAIN Metadata Validation Workflow", result.Description)
	require.NotEmpty(t, result.Messages)
	assert.Contains(t, result.Messages[0].Content.(mcp.TextContent).Text, "edugain-v2.xml")

	result, err = handleMetadataValidationPrompt(context.Background(), request(map[string]string{
		"metadata_path": "edugain-v2.xml",
		"cert_path":     "mds-v2.cer",
	}))
	require.NoError(t, err)
	var all strings.Builder
	for _, m := range result.Messages {
		all.WriteString(m.Content.(mcp.TextContent).Text)
	}
	assert.Contains(t, all.String(), `cert="mds-v2.cer"`)

	_, err = handleMetadataValidationPrompt(context.Background(), request(nil))
	assert.Error(t, err)
}

func TestServerBuilder(t *testing.T) {
	_, err := NewServerBuilder().WithDefaultTools().Build()
	assert.ErrorIs(t, err, ErrNoConfig)

	cfg := newConfig(config.Default(), nil)
	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion("1.3.3.7-testing").
		WithInstructions(instructions).
		WithDefaultTools().
		WithResources(createResources(cfg)...).
		WithPrompts(createPrompts()...).
		Build()
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.xml", "b.xml"}, splitList(" a.xml ,b.xml,, "))
	assert.Empty(t, splitList(" , "))
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}
