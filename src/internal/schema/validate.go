// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"bytes"
	"fmt"
	"io"

	xsderrors "github.com/jacoelho/xsd/errors"
)

// InvalidError reports a document that does not conform to the schema.
type InvalidError struct {
	Violations []xsderrors.Validation
}

// Error returns the first violation and how many followed it.
func (e *InvalidError) Error() string {
	switch len(e.Violations) {
	case 0:
		return "schema: document is not valid"
	case 1:
		return e.Violations[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", e.Violations[0].Error(), len(e.Violations)-1)
	}
}

// Messages returns every violation rendered as text.
func (e *InvalidError) Messages() []string {
	out := make([]string, len(e.Violations))
	for i := range e.Violations {
		out[i] = e.Violations[i].Error()
	}
	return out
}

// Validate validates the document read from r.
func (s *Schema) Validate(r io.Reader) error {
	return classify(s.compiled.Validate(r))
}

// ValidateFile streams the document at path from disk.
func (s *Schema) ValidateFile(path string) error {
	return classify(s.compiled.ValidateFile(path))
}

// ValidateBytes validates an in-memory document.
func (s *Schema) ValidateBytes(data []byte) error {
	return s.Validate(bytes.NewReader(data))
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if violations, ok := xsderrors.AsValidations(err); ok {
		return &InvalidError{Violations: violations}
	}
	return err
}
