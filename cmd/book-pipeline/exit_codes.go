// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"

	"github.com/pdiddy/book-pipeline/internal/config"
	"github.com/pdiddy/book-pipeline/internal/pdf"
)

// Exit codes for the book-pipeline CLI.
const (
	ExitSuccess      = 0 // Stage completed
	ExitGeneral      = 1 // General/unexpected error
	ExitUsage        = 2 // Invalid flags, config, or options
	ExitMissingInput = 3 // Stage input not found
	ExitGeneration   = 4 // External tool failed or could not start
)

// exitCodeFor maps an error to a process exit code using errors.Is, so
// wrapped errors map the same as their cause.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, pdf.ErrMissingInput):
		return ExitMissingInput
	case errors.Is(err, pdf.ErrPDFGeneration):
		return ExitGeneration
	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrInvalidOption),
		errors.Is(err, errToolNotFound):
		return ExitUsage
	}
	return ExitGeneral
}

// stageReported reports whether err was already printed by a stage reporter.
func stageReported(err error) bool {
	return errors.Is(err, pdf.ErrMissingInput) || errors.Is(err, pdf.ErrPDFGeneration)
}
