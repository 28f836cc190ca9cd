// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf implements the pipeline stage that typesets rendered HTML
// into a PDF by invoking the prince-books command-line tool.
//
// The stage reads build/<buildType>/index.html, writes
// build/<buildType>/book.pdf, and returns the manuscript it was given.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/pdiddy/book-pipeline/internal/process"
	"github.com/pdiddy/book-pipeline/internal/report"
	"github.com/pdiddy/book-pipeline/pkg/types"
)

// DefaultBinary is the PDF tool invoked when no other is configured.
const DefaultBinary = "prince-books"

// Stage converts a manuscript's rendered HTML to PDF. It holds no state
// between runs; concurrent runs for the same build type race on book.pdf.
type Stage struct {
	tool    process.Tool
	report  report.Reporter
	workDir string
}

// NewStage returns a Stage that runs tool and reports through r. Paths are
// resolved against workDir, or the process working directory when workDir
// is empty.
func NewStage(tool process.Tool, r report.Reporter, workDir string) *Stage {
	if r == nil {
		r = report.Discard
	}
	return &Stage{tool: tool, report: r, workDir: workDir}
}

// Run typesets build/<buildType>/index.html into build/<buildType>/book.pdf
// and returns m unchanged. It blocks until the tool exits. The error is a
// *MissingInputError when the HTML is absent (the tool is not started) and
// a *PDFGenerationError when the tool fails to start or exits non-zero.
// sc.GlobalConfig is accepted but not read.
func (s *Stage) Run(m *types.Manuscript, sc types.StageContext) (*types.Manuscript, error) {
	buildType := ResolveBuildType(m)

	workDir, err := s.resolveWorkDir()
	if err != nil {
		return nil, err
	}

	input := InputPath(workDir, buildType)
	if _, err := os.Stat(input); err != nil {
		s.report.Error("Input HTML file not found: %s", input)
		return nil, &MissingInputError{Path: input, Err: err}
	}

	output := OutputPath(workDir, buildType)
	flags := BuildArgs(sc.StageConfig)

	args := make([]string, 0, len(flags)+3)
	args = append(args, flags...)
	args = append(args, input, "-o", output)

	cmdLine := CommandLine(s.tool.Name(), flags, input, output)
	s.report.Info("Generating PDF: %s", cmdLine)

	if err := s.tool.Run(args...); err != nil {
		genErr := &PDFGenerationError{
			Command:  s.tool.Name(),
			ExitCode: process.ExitCode(err),
			Err:      err,
		}
		s.report.Error("PDF generation failed: %v", err)
		return nil, genErr
	}

	rel := relativeTo(workDir, output)
	if info, err := os.Stat(output); err == nil {
		s.report.Success("PDF generated: %s (%s)", rel, humanize.Bytes(uint64(info.Size())))
	} else {
		s.report.Success("PDF generated: %s", rel)
		s.report.Warn("%s exited successfully but %s is missing", s.tool.Name(), rel)
	}
	return m, nil
}

func (s *Stage) resolveWorkDir() (string, error) {
	if s.workDir != "" {
		return s.workDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
