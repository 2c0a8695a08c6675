// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/edugain-validate/src/logger"
)

// Format selects a renderer.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatTable), string(FormatJSON)}
}

// ParseFormat maps a flag value to a Format. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
	}
}

// Sink receives per-file events in input order.
type Sink interface {
	// Start is called before a file is validated.
	Start(file string)
	// Done is called with the outcome of the file passed to the last Start.
	Done(o Outcome)
}

// Renderer is a Sink that also renders the final summary.
type Renderer interface {
	Sink
	Finish(s *Summary) error
}

// New returns the renderer for format writing to w.
func New(format Format, w io.Writer, verbosity int) (Renderer, error) {
	switch format {
	case FormatText, "":
		log := logger.NewCLILogger()
		log.SetOutput(w)
		return NewText(log, verbosity), nil
	case FormatTable:
		return &tableRenderer{w: w, verbosity: verbosity}, nil
	case FormatJSON:
		return &jsonRenderer{w: w}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

type textRenderer struct {
	log       logger.Logger
	verbosity int
}

// NewText returns the streaming renderer printing through log.
func NewText(log logger.Logger, verbosity int) Renderer {
	return &textRenderer{log: log, verbosity: verbosity}
}

func (r *textRenderer) Start(file string) {
	r.log.Printf("Validate XML file '%s' ...", file)
}

func (r *textRenderer) Done(o Outcome) {
	if !o.Failed() {
		r.log.Printf("Validation: OK (%s)", formatDuration(o.Timings.Total))
	} else {
		r.log.Printf("Validation: FAILED (%s)", o.Status)
		if r.verbosity >= 1 {
			if o.Diagnostic != "" {
				r.log.Printf("  %s", o.Diagnostic)
			}
			for _, v := range o.Violations {
				r.log.Printf("  - %s", v)
			}
		}
	}
	if r.verbosity >= 2 && o.Metadata != nil {
		r.log.Printf("Metadata: %s", o.Metadata)
	}
}

func (r *textRenderer) Finish(s *Summary) error {
	if len(s.Outcomes) > 1 {
		r.log.Printf("Checked %d files: %d passed, %d failed (%s)",
			len(s.Outcomes), s.Passed(), s.FailedCount(), formatDuration(s.Elapsed))
	}
	return nil
}

type tableRenderer struct {
	w         io.Writer
	verbosity int
}

func (r *tableRenderer) Start(string) {}
func (r *tableRenderer) Done(Outcome) {}

// Finish writes the markdown table.
//
// The Diagnostic column is only present with verbosity 1 or more.
func (r *tableRenderer) Finish(s *Summary) error {
	return gc.WithBuffer(func(buf gc.Buffer) error {
		if err := RenderTable(buf, s, r.verbosity >= 1); err != nil {
			return err
		}
		_, err := buf.WriteTo(r.w)
		return err
	})
}

// RenderTable renders s as a markdown table followed by a totals line.
func RenderTable(w io.Writer, s *Summary, diagnostics bool) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"File", "Status", "Signature", "Entities", "Elapsed"}
	if diagnostics {
		headers = append(headers, "Diagnostic")
	}
	table.Header(headers)

	rows := make([][]string, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		row := []string{
			o.File,
			o.Status.String(),
			string(o.Signature),
			entitiesCell(o),
			formatDuration(o.Timings.Total),
		}
		if diagnostics {
			row = append(row, diagnosticCell(o))
		}
		rows = append(rows, row)
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("report: table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("report: render table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%d passed, %d failed\n", s.Passed(), s.FailedCount())
	return err
}

func entitiesCell(o Outcome) string {
	if o.Metadata == nil {
		return "-"
	}
	return fmt.Sprintf("%d (%d IdP, %d SP)", o.Metadata.Entities, o.Metadata.IdPs, o.Metadata.SPs)
}

func diagnosticCell(o Outcome) string {
	switch {
	case len(o.Violations) > 0:
		msg := o.Violations[0]
		if n := len(o.Violations) - 1; n > 0 {
			msg = fmt.Sprintf("%s (and %d more)", msg, n)
		}
		return msg
	case o.Diagnostic != "":
		return o.Diagnostic
	default:
		return ""
	}
}

type jsonRenderer struct{ w io.Writer }

func (r *jsonRenderer) Start(string) {}
func (r *jsonRenderer) Done(Outcome) {}

func (r *jsonRenderer) Finish(s *Summary) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	if d >= time.Millisecond {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Microsecond).String()
}
