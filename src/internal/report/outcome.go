// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/entities"
)

// Status is the result tag of one file.
type Status int

const (
	// Passed means every requested check succeeded.
	Passed Status = iota
	// SchemaInvalid means the document does not conform to the schema set.
	SchemaInvalid
	// SignatureInvalid means the signature was missing or did not verify.
	// Schema validation is not attempted in that case.
	SignatureInvalid
	// Error means the file could not be read.
	Error
)

var statusNames = map[Status]string{
	Passed:           "passed",
	SchemaInvalid:    "schema-invalid",
	SignatureInvalid: "signature-invalid",
	Error:            "error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// SignatureState records what happened to the signature of a file.
type SignatureState string

const (
	SignatureNotRequested SignatureState = "not-requested"
	SignatureValid        SignatureState = "valid"
	SignatureFailed       SignatureState = "invalid"
)

// Timings holds the elapsed time of each phase of a file.
type Timings struct {
	Parse     time.Duration
	Signature time.Duration
	Schema    time.Duration
	Total     time.Duration
}

// MarshalJSON renders durations in time.Duration string form.
func (t Timings) MarshalJSON() ([]byte, error) {
	view := struct {
		Parse     string `json:"parse,omitempty"`
		Signature string `json:"signature,omitempty"`
		Schema    string `json:"schema,omitempty"`
		Total     string `json:"total"`
	}{
		Total: t.Total.String(),
	}
	if t.Parse > 0 {
		view.Parse = t.Parse.String()
	}
	if t.Signature > 0 {
		view.Signature = t.Signature.String()
	}
	if t.Schema > 0 {
		view.Schema = t.Schema.String()
	}
	return json.Marshal(view)
}

// Outcome is the result of validating one file.
type Outcome struct {
	File       string            `json:"file"`
	Status     Status            `json:"status"`
	Signature  SignatureState    `json:"signature"`
	Diagnostic string            `json:"diagnostic,omitempty"`
	Violations []string          `json:"violations,omitempty"`
	Timings    Timings           `json:"timings"`
	Metadata   *entities.Summary `json:"metadata,omitempty"`
}

// Failed reports whether the file failed any requested check.
func (o Outcome) Failed() bool { return o.Status != Passed }

// Summary aggregates the outcomes of a run in input order.
type Summary struct {
	Outcomes []Outcome
	Elapsed  time.Duration
}

// Add appends o.
func (s *Summary) Add(o Outcome) { s.Outcomes = append(s.Outcomes, o) }

// Count returns how many outcomes have status st.
func (s *Summary) Count(st Status) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == st {
			n++
		}
	}
	return n
}

// Passed returns the number of files that passed.
func (s *Summary) Passed() int { return s.Count(Passed) }

// FailedCount returns the number of files that failed.
func (s *Summary) FailedCount() int { return len(s.Outcomes) - s.Passed() }

// Failed reports whether any file failed. It drives the process exit status.
func (s *Summary) Failed() bool { return s.FailedCount() > 0 }

// MarshalJSON adds the aggregate counts to the outcome list.
func (s *Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Files   []Outcome `json:"files"`
		Total   int       `json:"total"`
		Passed  int       `json:"passed"`
		Failed  int       `json:"failed"`
		Elapsed string    `json:"elapsed"`
	}{
		Files:   s.Outcomes,
		Total:   len(s.Outcomes),
		Passed:  s.Passed(),
		Failed:  s.FailedCount(),
		Elapsed: s.Elapsed.String(),
	})
}
