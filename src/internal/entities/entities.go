// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package entities summarises the content of a metadata document that already
// passed validation: how many entities it publishes, how many of them are
// identity or service providers, and the aggregate's name and validity.
package entities

import (
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/crewjam/saml"
)

// ErrNotMetadata is returned for documents whose root is neither
// md:EntitiesDescriptor nor md:EntityDescriptor.
var ErrNotMetadata = errors.New("entities: not a SAML metadata document")

// Summary describes a metadata document.
type Summary struct {
	Aggregate  bool       `json:"aggregate"`
	Name       string     `json:"name,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	Entities   int        `json:"entities"`
	IdPs       int        `json:"idps"`
	SPs        int        `json:"sps"`
}

// Summarize parses data as aggregate or single-entity metadata.
func Summarize(data []byte) (*Summary, error) {
	var aggregate saml.EntitiesDescriptor
	aggErr := xml.Unmarshal(data, &aggregate)
	if aggErr == nil {
		s := &Summary{Aggregate: true, ValidUntil: aggregate.ValidUntil}
		if aggregate.Name != nil {
			s.Name = *aggregate.Name
		}
		s.addAggregate(&aggregate)
		return s, nil
	}

	var entity saml.EntityDescriptor
	if err := xml.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMetadata, errors.Join(aggErr, err))
	}

	s := &Summary{}
	if !entity.ValidUntil.IsZero() {
		validUntil := entity.ValidUntil
		s.ValidUntil = &validUntil
	}
	s.addEntity(&entity)
	return s, nil
}

func (s *Summary) addAggregate(ed *saml.EntitiesDescriptor) {
	for i := range ed.EntityDescriptors {
		s.addEntity(&ed.EntityDescriptors[i])
	}
	for i := range ed.EntitiesDescriptors {
		s.addAggregate(&ed.EntitiesDescriptors[i])
	}
}

func (s *Summary) addEntity(ed *saml.EntityDescriptor) {
	s.Entities++
	if len(ed.IDPSSODescriptors) > 0 {
		s.IdPs++
	}
	if len(ed.SPSSODescriptors) > 0 {
		s.SPs++
	}
}

// Expired reports whether validUntil lies before now.
func (s *Summary) Expired(now time.Time) bool {
	return s.ValidUntil != nil && s.ValidUntil.Before(now)
}

func (s *Summary) String() string {
	out := fmt.Sprintf("%d entities (%d IdPs, %d SPs)", s.Entities, s.IdPs, s.SPs)
	if s.Name != "" {
		out = fmt.Sprintf("%s: %s", s.Name, out)
	}
	if s.ValidUntil != nil {
		out += ", valid until " + s.ValidUntil.UTC().Format(time.RFC3339)
	}
	return out
}
