// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/edugain-validate/src/cli"
	"github.com/H0llyW00dzZ/edugain-validate/src/logger"
	verpkg "github.com/H0llyW00dzZ/edugain-validate/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() { os.Exit(run(context.Background(), logger.NewCLILogger())) }

// run executes the CLI and maps its result to an exit code:
// 0 when every file passed, 1 on failure, 130 when interrupted.
func run(parent context.Context, log logger.Logger) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		return exitCode(log, err)
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return 130 // Standard exit code for SIGINT
	}
}

func exitCode(log logger.Logger, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, cli.ErrValidationFailed):
		return 1
	default:
		log.Printf("Error: %v", err)
		return 1
	}
}
