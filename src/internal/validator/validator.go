// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validator

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/entities"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/report"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/schema"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/signature"
	x509certs "github.com/H0llyW00dzZ/edugain-validate/src/internal/x509/certs"
)

// Options configures New. Zero values select the defaults.
type Options struct {
	// SchemasDir is the directory holding the schema files. Empty selects
	// the embedded set from schema.Bundled.
	SchemasDir string
	// SchemaFS replaces SchemasDir when set.
	SchemaFS fs.FS
	// RootSchema is the entry point, schema.DefaultRootSchema when empty.
	RootSchema string
	// SkipOptional restricts the table to the required namespaces.
	SkipOptional bool
	// Locations adds or redirects non-required namespaces.
	Locations schema.Locations
	// Schema is a precompiled schema; when set the fields above are ignored.
	Schema *schema.Schema

	// CertFile is a PEM, DER or PKCS#7 certificate file enabling signature checks.
	CertFile string
	// Certificates replaces CertFile when set.
	Certificates []*x509.Certificate

	// Lazy streams files from disk. It has no effect with signature checks.
	Lazy bool
	// Summarize attaches a metadata summary to passing files read into memory.
	Summarize bool

	Logger *zap.Logger
}

// Validator validates metadata files against one compiled schema.
type Validator struct {
	schema    *schema.Schema
	verifier  *signature.Verifier
	lazy      bool
	summarize bool
	log       *zap.Logger
	now       func() time.Time
}

// CompileSchema resolves the location table from opts and compiles it.
func CompileSchema(opts Options) (*schema.Schema, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for ns, file := range opts.Locations {
		if schema.IsRequired(ns) {
			log.Warn("location override ignored for required namespace",
				zap.String("namespace", ns),
				zap.String("file", file),
			)
		}
	}
	locations := schema.Resolve(opts.SkipOptional, opts.Locations)

	switch {
	case opts.SchemaFS != nil:
		return schema.Compile(opts.SchemaFS, opts.RootSchema, locations, schema.WithLogger(log))
	case opts.SchemasDir == "":
		return schema.CompileBundled(opts.RootSchema, locations, schema.WithLogger(log))
	}
	return schema.CompileDir(opts.SchemasDir, opts.RootSchema, locations, schema.WithLogger(log))
}

// New builds the compiled schema and loads certificate material. Any failure
// here is a setup error and no file should be validated.
func New(opts Options) (*Validator, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	compiled := opts.Schema
	if compiled == nil {
		var err error
		if compiled, err = CompileSchema(opts); err != nil {
			return nil, err
		}
	}

	v := &Validator{
		schema:    compiled,
		lazy:      opts.Lazy,
		summarize: opts.Summarize,
		log:       log,
		now:       time.Now,
	}

	certs := opts.Certificates
	if len(certs) == 0 && opts.CertFile != "" {
		loaded, err := x509certs.New().Load(opts.CertFile)
		if err != nil {
			return nil, fmt.Errorf("validator: load certificate: %w", err)
		}
		certs = loaded
		log.Info("certificates loaded",
			zap.String("file", opts.CertFile),
			zap.Int("count", len(certs)),
		)
	}

	if len(certs) > 0 {
		verifier, err := signature.NewVerifier(certs, log)
		if err != nil {
			return nil, err
		}
		v.verifier = verifier
		if v.lazy {
			log.Warn("lazy mode is ignored when verifying signatures")
			v.lazy = false
		}
	}

	return v, nil
}

// Schema returns the compiled schema shared by every file.
func (v *Validator) Schema() *schema.Schema { return v.schema }

// VerifiesSignatures reports whether certificates were supplied.
func (v *Validator) VerifiesSignatures() bool { return v.verifier != nil }

// Run validates paths in order, reporting each outcome to sink as soon as it
// is known. The returned error is non-nil only when ctx ends the batch early;
// the summary then holds the files completed so far.
func (v *Validator) Run(ctx context.Context, paths []string, sink report.Sink) (*report.Summary, error) {
	start := time.Now()
	summary := &report.Summary{Outcomes: make([]report.Outcome, 0, len(paths))}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(start)
			return summary, err
		}
		if sink != nil {
			sink.Start(path)
		}
		o := v.Validate(ctx, path)
		summary.Add(o)
		if sink != nil {
			sink.Done(o)
		}
	}

	summary.Elapsed = time.Since(start)
	v.log.Info("batch finished",
		zap.Int("files", len(summary.Outcomes)),
		zap.Int("failed", summary.FailedCount()),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

// Validate runs the per-file sequence for one path.
func (v *Validator) Validate(ctx context.Context, path string) report.Outcome {
	start := time.Now()
	out := report.Outcome{File: path, Signature: report.SignatureNotRequested}

	v.log.Debug("validating file", zap.String("file", path))

	switch {
	case ctx.Err() != nil:
		out.Status = report.Error
		out.Diagnostic = ctx.Err().Error()
	case v.verifier != nil:
		v.validateSigned(&out)
	case v.lazy:
		t := time.Now()
		err := v.schema.ValidateFile(path)
		out.Timings.Schema = time.Since(t)
		v.record(&out, err)
	default:
		err := gc.ReadFile(path, func(data []byte) error {
			v.check(&out, data)
			return nil
		})
		if err != nil {
			v.record(&out, err)
		}
	}

	out.Timings.Total = time.Since(start)
	v.logOutcome(out)
	return out
}

func (v *Validator) validateSigned(out *report.Outcome) {
	t := time.Now()
	doc, err := signature.ParseFile(out.File)
	out.Timings.Parse = time.Since(t)
	if err != nil {
		v.record(out, err)
		return
	}

	t = time.Now()
	verified, err := v.verifier.Verify(doc)
	out.Timings.Signature = time.Since(t)
	if err != nil {
		out.Status = report.SignatureInvalid
		out.Signature = report.SignatureFailed
		out.Diagnostic = err.Error()
		return
	}
	out.Signature = report.SignatureValid

	err = gc.WithBuffer(func(buf gc.Buffer) error {
		if _, err := verified.WriteTo(buf); err != nil {
			return fmt.Errorf("validator: serialize verified document: %w", err)
		}
		v.check(out, buf.Bytes())
		return nil
	})
	if err != nil {
		out.Status = report.Error
		out.Diagnostic = err.Error()
	}
}

// check validates an in-memory document and attaches the metadata summary.
func (v *Validator) check(out *report.Outcome, data []byte) {
	t := time.Now()
	err := v.schema.ValidateBytes(data)
	out.Timings.Schema = time.Since(t)
	v.record(out, err)

	if err != nil || !v.summarize {
		return
	}
	summary, err := entities.Summarize(data)
	if err != nil {
		v.log.Debug("metadata summary unavailable", zap.String("file", out.File), zap.Error(err))
		return
	}
	out.Metadata = summary
	if summary.Expired(v.now()) {
		v.log.Warn("metadata validUntil has passed",
			zap.String("file", out.File),
			zap.Timep("valid_until", summary.ValidUntil),
		)
	}
}

func (v *Validator) record(out *report.Outcome, err error) {
	var invalid *schema.InvalidError
	switch {
	case err == nil:
		out.Status = report.Passed
	case errors.As(err, &invalid):
		out.Status = report.SchemaInvalid
		out.Diagnostic = invalid.Error()
		out.Violations = invalid.Messages()
	case isIOError(err):
		out.Status = report.Error
		out.Diagnostic = err.Error()
	default:
		// Not well-formed XML and other engine failures on a readable file.
		out.Status = report.SchemaInvalid
		out.Diagnostic = err.Error()
	}
}

func isIOError(err error) bool {
	if errors.Is(err, signature.ErrMalformed) {
		return false
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}

func (v *Validator) logOutcome(o report.Outcome) {
	if !o.Failed() {
		v.log.Info("file validated",
			zap.String("file", o.File),
			zap.String("signature", string(o.Signature)),
			zap.Duration("elapsed", o.Timings.Total),
		)
		return
	}
	v.log.Debug("file failed",
		zap.String("file", o.File),
		zap.Stringer("status", o.Status),
		zap.String("diagnostic", o.Diagnostic),
		zap.Int("violations", len(o.Violations)),
	)
}
