// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/edugain-validate/src/cli"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/config"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/report"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/testfixtures"
	"github.com/H0llyW00dzZ/edugain-validate/src/logger"
)

const version = "1.3.3.7-testing"

type result struct {
	err    error
	stdout string
	stderr string
}

type fixture struct {
	t       *testing.T
	schemas string
	dir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvSchemasDir, "")

	root := t.TempDir()
	return &fixture{
		t:       t,
		schemas: testfixtures.WriteSchemas(t, filepath.Join(root, "schemas")),
		dir:     filepath.Join(root, "files"),
	}
}

func (f *fixture) file(name, content string) string {
	return testfixtures.WriteFile(f.t, f.dir, name, []byte(content))
}

func (f *fixture) run(args ...string) result {
	f.t.Helper()
	var stdout, stderr bytes.Buffer

	log := logger.NewCLILogger()
	log.SetOutput(&stdout)

	cmd := cli.NewCommand(version, log)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--schemas-dir", f.schemas}, args...))

	err := cmd.ExecuteContext(context.Background())
	return result{err: err, stdout: stdout.String(), stderr: stderr.String()}
}

func TestConformantFile(t *testing.T) {
	f := newFixture(t)
	path := f.file("edugain.xml", testfixtures.ValidMetadata)

	res := f.run(path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Building schema instance with full eduGAIN metadata ...")
	assert.Contains(t, res.stdout, "Validate XML file '"+path+"' ...")
	assert.Contains(t, res.stdout, "Validation: OK")
}

func TestSchemaViolation(t *testing.T) {
	f := newFixture(t)

	res := f.run("-v", f.file("broken.xml", testfixtures.InvalidMetadata))
	require.ErrorIs(t, res.err, cli.ErrValidationFailed)
	assert.Contains(t, res.stdout, "Validation: FAILED (schema-invalid)")
	assert.Contains(t, res.stdout, "  - ")
}

func TestSkipOptional(t *testing.T) {
	f := newFixture(t)
	path := f.file("edugain.xml", testfixtures.ValidMetadata)

	res := f.run("-s", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Building schema instance with minimal metadata (no 'lax' wildcards validation) ...")

	assert.NoError(t, f.run("--skip-optional", path).err)
}

func TestMultipleFiles(t *testing.T) {
	f := newFixture(t)

	res := f.run(
		f.file("a.xml", testfixtures.ValidMetadata),
		f.file("b.xml", testfixtures.InvalidMetadata),
		f.file("c.xml", testfixtures.SingleEntityMetadata),
	)
	require.ErrorIs(t, res.err, cli.ErrValidationFailed)
	assert.Contains(t, res.err.Error(), "1 of 3 files")
	assert.Contains(t, res.stdout, "Checked 3 files: 2 passed, 1 failed")
}

func TestSignatureVerification(t *testing.T) {
	f := newFixture(t)
	signer := testfixtures.NewSigner(t, "eduGAIN Metadata Signer")
	cert := signer.WriteCertificate(t.TempDir(), "signer.pem")
	signed := testfixtures.WriteFile(t, f.dir, "signed.xml", signer.Sign([]byte(testfixtures.ValidMetadata)))

	t.Run("trusted", func(t *testing.T) {
		res := f.run("--cert", cert, signed)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Validation: OK")
	})

	t.Run("untrusted", func(t *testing.T) {
		other := testfixtures.NewSigner(t, "Someone Else").WriteCertificate(t.TempDir(), "other.pem")
		res := f.run("--cert", other, signed)
		require.ErrorIs(t, res.err, cli.ErrValidationFailed)
		assert.Contains(t, res.stdout, "Validation: FAILED (signature-invalid)")
	})

	t.Run("lazy ignored", func(t *testing.T) {
		res := f.run("-v", "--lazy", "--cert", cert, signed)
		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, "lazy mode is ignored")
	})
}

func TestJSONFormat(t *testing.T) {
	f := newFixture(t)

	res := f.run("--format", "json", f.file("a.xml", testfixtures.ValidMetadata), f.file("b.xml", testfixtures.InvalidMetadata))
	require.ErrorIs(t, res.err, cli.ErrValidationFailed)
	assert.Contains(t, res.stderr, "Building schema instance")

	var doc struct {
		Total  int `json:"total"`
		Passed int `json:"passed"`
		Failed int `json:"failed"`
		Files  []struct {
			File   string `json:"file"`
			Status string `json:"status"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc), res.stdout)
	assert.Equal(t, 2, doc.Total)
	assert.Equal(t, 1, doc.Passed)
	require.Len(t, doc.Files, 2)
	assert.Equal(t, report.Passed.String(), doc.Files[0].Status)
	assert.Equal(t, report.SchemaInvalid.String(), doc.Files[1].Status)
}

func TestTableFormat(t *testing.T) {
	f := newFixture(t)

	res := f.run("--format", "table", f.file("a.xml", testfixtures.ValidMetadata))
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "passed")
	assert.Contains(t, res.stdout, "2 (1 IdP, 1 SP)")
}

func TestConfigFile(t *testing.T) {
	f := newFixture(t)
	path := f.file("mdui.xml", testfixtures.BrokenUIInfoMetadata)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("skipOptional: true\n"), 0o644))

	res := f.run("--config", cfgPath, path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "minimal metadata")

	t.Run("flag wins when set", func(t *testing.T) {
		res := f.run("--config", cfgPath, "--skip-optional=false", path)
		assert.ErrorIs(t, res.err, cli.ErrValidationFailed)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(config.EnvConfigFile, cfgPath)
		assert.NoError(t, f.run(path).err)
	})
}

func TestSetupErrors(t *testing.T) {
	f := newFixture(t)
	path := f.file("a.xml", testfixtures.ValidMetadata)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no files", args: nil},
		{name: "unknown format", args: []string{"--format", "yaml", path}},
		{name: "bad location", args: []string{"--location", "no-separator", path}},
		{name: "missing certificate", args: []string{"--cert", filepath.Join(f.dir, "absent.pem"), path}},
		{name: "missing schemas", args: []string{"--schemas-dir", filepath.Join(f.dir, "nope"), path}},
		{name: "missing root schema", args: []string{"--root-schema", "absent.xsd", path}},
		{name: "missing config", args: []string{"--config", filepath.Join(f.dir, "absent.yaml"), path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.run(tt.args...)
			require.Error(t, res.err)
			assert.NotErrorIs(t, res.err, cli.ErrValidationFailed)
			assert.NotContains(t, res.stdout, "Validate XML file")
		})
	}
}

func TestLocationFlag(t *testing.T) {
	f := newFixture(t)
	path := f.file("a.xml", testfixtures.ValidMetadata)

	res := f.run("--location", "urn:example:extra=missing-extra.xsd", path)
	assert.Error(t, res.err)
	assert.NotErrorIs(t, res.err, cli.ErrValidationFailed)
}

func TestVersion(t *testing.T) {
	f := newFixture(t)
	res := f.run("--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, version)
}

func TestExecute(t *testing.T) {
	f := newFixture(t)
	path := f.file("a.xml", testfixtures.ValidMetadata)

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"edugain-validate", "--schemas-dir", f.schemas, path}

	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	require.NoError(t, cli.Execute(context.Background(), version, log))
	assert.Contains(t, buf.String(), "Validation: OK")
}
