// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/schema"
)

const (
	mdNamespace   = "urn:oasis:names:tc:SAML:2.0:metadata"
	mduiNamespace = "urn:oasis:names:tc:SAML:metadata:ui"
)

func TestLocationTables(t *testing.T) {
	assert.Len(t, schema.Required(), 5)
	assert.Len(t, schema.Optional(), 13)

	for ns := range schema.Optional() {
		assert.False(t, schema.IsRequired(ns), "optional namespace %s must not be required", ns)
	}
	assert.True(t, schema.IsRequired(mdNamespace))
	assert.Equal(t, "saml-schema-metadata-2.0.xsd", schema.Required()[mdNamespace])
	assert.Equal(t, "sstc-saml-metadata-ui-v1.0.xsd", schema.Optional()[mduiNamespace])
}

func TestTablesAreImmutable(t *testing.T) {
	required := schema.Required()
	required[mdNamespace] = "tampered.xsd"
	delete(required, "http://www.w3.org/2001/04/xmlenc#")

	resolved := schema.Resolve(true, nil)
	resolved["urn:example"] = "example.xsd"

	assert.Equal(t, "saml-schema-metadata-2.0.xsd", schema.Required()[mdNamespace])
	assert.Len(t, schema.Required(), 5)
	assert.Len(t, schema.Resolve(true, nil), 5)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		skipOptional bool
		extra        schema.Locations
		wantLen      int
		check        func(t *testing.T, got schema.Locations)
	}{
		{
			name:    "full set",
			wantLen: 18,
			check: func(t *testing.T, got schema.Locations) {
				assert.Contains(t, got, mduiNamespace)
			},
		},
		{
			name:         "skip optional",
			skipOptional: true,
			wantLen:      5,
			check: func(t *testing.T, got schema.Locations) {
				assert.NotContains(t, got, mduiNamespace)
			},
		},
		{
			name:         "extra namespace added",
			skipOptional: true,
			extra:        schema.Locations{"http://refeds.org/metadata": "refeds.xsd"},
			wantLen:      6,
			check: func(t *testing.T, got schema.Locations) {
				assert.Equal(t, "refeds.xsd", got["http://refeds.org/metadata"])
			},
		},
		{
			name:    "extra cannot replace required",
			extra:   schema.Locations{mdNamespace: "other-metadata.xsd"},
			wantLen: 18,
			check: func(t *testing.T, got schema.Locations) {
				assert.Equal(t, "saml-schema-metadata-2.0.xsd", got[mdNamespace])
			},
		},
		{
			name:    "extra redirects optional",
			extra:   schema.Locations{mduiNamespace: "vendor/mdui.xsd"},
			wantLen: 18,
			check: func(t *testing.T, got schema.Locations) {
				assert.Equal(t, "vendor/mdui.xsd", got[mduiNamespace])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schema.Resolve(tt.skipOptional, tt.extra)
			assert.Len(t, got, tt.wantLen)
			tt.check(t, got)
		})
	}
}

func TestNamespacesSorted(t *testing.T) {
	got := schema.Locations{"urn:b": "b.xsd", "urn:a": "a.xsd", "http://c": "c.xsd"}.Namespaces()
	assert.Equal(t, []string{"http://c", "urn:a", "urn:b"}, got)
}
