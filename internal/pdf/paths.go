// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"path/filepath"

	"github.com/pdiddy/book-pipeline/pkg/types"
)

const (
	// buildDir is the directory under the working directory holding all build outputs.
	buildDir = "build"
	// inputName is the rendered HTML produced by the preceding stage.
	inputName = "index.html"
	// outputName is the PDF this stage writes.
	outputName = "book.pdf"
)

// ResolveBuildType returns the manuscript's build type, or
// types.DefaultBuildType when m is nil or names none.
func ResolveBuildType(m *types.Manuscript) string {
	if m == nil || m.BuildType == "" {
		return types.DefaultBuildType
	}
	return m.BuildType
}

// InputPath returns <workDir>/build/<buildType>/index.html.
func InputPath(workDir, buildType string) string {
	return filepath.Join(workDir, buildDir, buildType, inputName)
}

// OutputPath returns <workDir>/build/<buildType>/book.pdf.
func OutputPath(workDir, buildType string) string {
	return filepath.Join(workDir, buildDir, buildType, outputName)
}
