// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by errors.Is on the typed errors below.
var (
	ErrMissingInput  = errors.New("input HTML not found")
	ErrPDFGeneration = errors.New("PDF generation failed")
)

// MissingInputError reports that the rendered HTML the stage converts does
// not exist. No external process was started.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingInput, e.Path)
}

func (e *MissingInputError) Is(target error) bool { return target == ErrMissingInput }
func (e *MissingInputError) Unwrap() error        { return e.Err }

// PDFGenerationError reports that the PDF tool could not be started or
// exited with a non-zero status. ExitCode is -1 when no status is known.
type PDFGenerationError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *PDFGenerationError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("%v: %s exited with status %d", ErrPDFGeneration, e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%v: %v", ErrPDFGeneration, e.Err)
}

func (e *PDFGenerationError) Is(target error) bool { return target == ErrPDFGeneration }
func (e *PDFGenerationError) Unwrap() error        { return e.Err }
