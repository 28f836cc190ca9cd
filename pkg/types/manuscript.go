// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultBuildType is the build type used when a manuscript does not name one.
const DefaultBuildType = "pdf"

// Manuscript is the document descriptor shared by every pipeline stage.
// Stages receive it by pointer and hand the same pointer back; the PDF stage
// reads BuildType and leaves everything else alone.
type Manuscript struct {
	// BuildType selects the output subdirectory under build/ (e.g. "pdf", "epub").
	BuildType string `json:"build_type,omitempty" yaml:"build_type,omitempty"`

	// Title is the manuscript title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Metadata carries fields owned by other stages.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
