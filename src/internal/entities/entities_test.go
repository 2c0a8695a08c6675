// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/entities"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/testfixtures"
)

const nestedMetadata = `<?xml version="1.0" encoding="UTF-8"?>
<EntitiesDescriptor xmlns="urn:oasis:names:tc:SAML:2.0:metadata" Name="outer">
  <EntitiesDescriptor Name="inner">
    <EntityDescriptor entityID="https://idp1.example.org/idp">
      <IDPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol"/>
    </EntityDescriptor>
    <EntityDescriptor entityID="https://both.example.org">
      <IDPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol"/>
      <SPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol"/>
    </EntityDescriptor>
  </EntitiesDescriptor>
  <EntityDescriptor entityID="https://sp.example.org/sp">
    <SPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol"/>
  </EntityDescriptor>
</EntitiesDescriptor>
`

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want entities.Summary
	}{
		{
			name: "aggregate",
			doc:  testfixtures.ValidMetadata,
			want: entities.Summary{Aggregate: true, Name: "https://edugain.example.org/metadata", Entities: 2, IdPs: 1, SPs: 1},
		},
		{
			name: "single entity",
			doc:  testfixtures.SingleEntityMetadata,
			want: entities.Summary{Entities: 1, IdPs: 1},
		},
		{
			name: "nested aggregates",
			doc:  nestedMetadata,
			want: entities.Summary{Aggregate: true, Name: "outer", Entities: 3, IdPs: 2, SPs: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entities.Summarize([]byte(tt.doc))
			require.NoError(t, err)

			assert.Equal(t, tt.want.Aggregate, got.Aggregate)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Entities, got.Entities)
			assert.Equal(t, tt.want.IdPs, got.IdPs)
			assert.Equal(t, tt.want.SPs, got.SPs)
		})
	}
}

func TestSummarizeValidity(t *testing.T) {
	got, err := entities.Summarize([]byte(testfixtures.ValidMetadata))
	require.NoError(t, err)
	require.NotNil(t, got.ValidUntil)

	assert.True(t, got.ValidUntil.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, got.Expired(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, got.Expired(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t,
		"https://edugain.example.org/metadata: 2 entities (1 IdPs, 1 SPs), valid until 2030-01-01T00:00:00Z",
		got.String())
}

func TestSummarizeRejectsOtherDocuments(t *testing.T) {
	for _, doc := range []string{
		`<html><body/></html>`,
		testfixtures.MalformedMetadata,
		"",
	} {
		_, err := entities.Summarize([]byte(doc))
		assert.ErrorIs(t, err, entities.ErrNotMetadata)
	}
}
