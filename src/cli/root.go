// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/config"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/report"
	"github.com/H0llyW00dzZ/edugain-validate/src/internal/validator"
	"github.com/H0llyW00dzZ/edugain-validate/src/logger"
)

// ErrValidationFailed is returned when at least one file did not pass.
var ErrValidationFailed = errors.New("cli: validation failed")

const (
	msgBuildFull    = "Building schema instance with full eduGAIN metadata ..."
	msgBuildMinimal = "Building schema instance with minimal metadata (no 'lax' wildcards validation) ..."
)

type options struct {
	verbosity    int
	skipOptional bool
	cert         string
	lazy         bool
	schemasDir   string
	rootSchema   string
	locations    []string
	configFile   string
	format       string
}

// NewCommand returns the root command. Report lines are printed through log.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "edugain-validate [flags] XML_FILE...",
		Short:         "eduGAIN metadata validator",
		Long:          "Validate SAML metadata files against the eduGAIN XML schema set and, optionally, their XML signature.",
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, log)
		},
	}

	flags := cmd.Flags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity (-v warnings, -vv info, -vvv debug)")
	flags.BoolVarP(&opts.skipOptional, "skip-optional", "s", false, "use the required schema set only")
	flags.StringVar(&opts.cert, "cert", "", "verify the XML signature with CERT_FILE")
	flags.BoolVar(&opts.lazy, "lazy", false, "stream files from disk (ignored with --cert)")
	flags.StringVar(&opts.schemasDir, "schemas-dir", "", "directory holding the schema files (default: schemas/ next to the executable, then the embedded set)")
	flags.StringVar(&opts.rootSchema, "root-schema", "", "root schema file inside the schema set")
	flags.StringArrayVar(&opts.locations, "location", nil, "add or redirect a non-required namespace as NAMESPACE=FILE (repeatable)")
	flags.StringVar(&opts.configFile, "config", "", "JSON or YAML config file")
	flags.StringVar(&opts.format, "format", "", "report format: "+strings.Join(report.Formats(), ", "))

	return cmd
}

// Execute runs the root command with os.Args. It returns ErrValidationFailed
// when any file fails and the context error when interrupted.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log).ExecuteContext(ctx)
}

func run(cmd *cobra.Command, files []string, opts *options, log logger.Logger) error {
	cfg, err := merge(cmd, opts)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	diag := logger.NewLeveled(cmd.ErrOrStderr(), cfg.Verbosity)
	defer func() { _ = diag.Sync() }()

	msg := msgBuildFull
	if cfg.SkipOptional {
		msg = msgBuildMinimal
	}
	if format == report.FormatText {
		log.Println(msg)
	} else {
		// stdout carries the machine-readable report
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
	}

	v, err := validator.New(validator.Options{
		SchemasDir:   cfg.SchemasDir,
		RootSchema:   cfg.RootSchema,
		SkipOptional: cfg.SkipOptional,
		Locations:    cfg.ExtraLocations(),
		CertFile:     cfg.Cert,
		Lazy:         cfg.Lazy,
		Summarize:    true,
		Logger:       diag,
	})
	if err != nil {
		return err
	}

	var renderer report.Renderer
	if format == report.FormatText {
		renderer = report.NewText(log, cfg.Verbosity)
	} else if renderer, err = report.New(format, cmd.OutOrStdout(), cfg.Verbosity); err != nil {
		return err
	}

	summary, err := v.Run(cmd.Context(), files, renderer)
	if err != nil {
		return err
	}
	if err := renderer.Finish(summary); err != nil {
		return fmt.Errorf("cli: render report: %w", err)
	}

	if summary.Failed() {
		return fmt.Errorf("%w: %d of %d files", ErrValidationFailed, summary.FailedCount(), len(summary.Outcomes))
	}
	return nil
}

// merge layers explicitly set flags over the loaded configuration.
func merge(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbosity = opts.verbosity
	}
	if flags.Changed("skip-optional") {
		cfg.SkipOptional = opts.skipOptional
	}
	if flags.Changed("cert") {
		cfg.Cert = opts.cert
	}
	if flags.Changed("lazy") {
		cfg.Lazy = opts.lazy
	}
	if flags.Changed("schemas-dir") {
		cfg.SchemasDir = opts.schemasDir
	}
	if flags.Changed("root-schema") {
		cfg.RootSchema = opts.rootSchema
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}

	for _, value := range opts.locations {
		ns, file, err := config.ParseLocation(value)
		if err != nil {
			return nil, err
		}
		if cfg.Locations == nil {
			cfg.Locations = make(map[string]string)
		}
		cfg.Locations[ns] = file
	}

	return cfg, nil
}
