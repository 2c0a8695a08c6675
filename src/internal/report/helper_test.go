// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report_test

import (
	"io"

	"github.com/H0llyW00dzZ/edugain-validate/src/logger"
)

func newCaptureLogger(w io.Writer) logger.Logger {
	log := logger.NewCLILogger()
	log.SetOutput(w)
	return log
}
