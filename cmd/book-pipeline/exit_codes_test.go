// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pdiddy/book-pipeline/internal/config"
	"github.com/pdiddy/book-pipeline/internal/pdf"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "missing input", err: &pdf.MissingInputError{Path: "build/pdf/index.html"}, want: ExitMissingInput},
		{name: "generation failure", err: &pdf.PDFGenerationError{Command: "prince-books", ExitCode: 1}, want: ExitGeneration},
		{name: "wrapped generation failure", err: fmt.Errorf("stage: %w", &pdf.PDFGenerationError{}), want: ExitGeneration},
		{name: "config not found", err: fmt.Errorf("%w: x.yaml", config.ErrConfigNotFound), want: ExitUsage},
		{name: "config parse", err: fmt.Errorf("%w: x.yaml", config.ErrConfigParse), want: ExitUsage},
		{name: "bad option", err: fmt.Errorf("%w \"=A4\"", config.ErrInvalidOption), want: ExitUsage},
		{name: "tool missing", err: fmt.Errorf("%w: prince-books", errToolNotFound), want: ExitUsage},
		{name: "unknown", err: errors.New("boom"), want: ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestStageReported(t *testing.T) {
	if !stageReported(&pdf.MissingInputError{}) {
		t.Error("missing input errors are reported by the stage")
	}
	if !stageReported(&pdf.PDFGenerationError{}) {
		t.Error("generation errors are reported by the stage")
	}
	if stageReported(config.ErrConfigParse) {
		t.Error("config errors are not reported by the stage")
	}
}
