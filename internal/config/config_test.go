// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/book-pipeline/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStageConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		stage   string
		want    types.Options
		wantErr error
	}{
		{
			name: "reads options in file order",
			content: `stages:
  html:
    config:
      theme: classic
  pdf:
    config:
      media: A4
      landscape: true
      page-margin: 12
`,
			stage: "pdf",
			want: types.Options{
				{Key: "media", Value: "A4"},
				{Key: "landscape", Value: true},
				{Key: "page-margin", Value: 12},
			},
		},
		{
			name:    "missing stage section",
			content: "stages:\n  html: {}\n",
			stage:   "pdf",
			want:    nil,
		},
		{
			name:    "stage without config",
			content: "stages:\n  pdf:\n",
			stage:   "pdf",
			want:    nil,
		},
		{
			name:    "no stages key",
			content: "pdf:\n  binary: prince\n",
			stage:   "pdf",
			want:    nil,
		},
		{
			name:    "nested option value",
			content: "stages:\n  pdf:\n    config:\n      style: [a.css]\n",
			stage:   "pdf",
			wantErr: ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "book-pipeline.yaml", tt.content)
			sc, err := LoadStageConfig(path, tt.stage)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, sc)
			assert.Equal(t, tt.want, sc.Config)
		})
	}
}

func TestLoadStageConfigMissingFile(t *testing.T) {
	_, err := LoadStageConfig(filepath.Join(t.TempDir(), "nope.yaml"), "pdf")
	require.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadManuscript(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "manuscript.yaml", `build_type: epub
title: Field Notes
metadata:
  author: A. Writer
`)

	m, err := LoadManuscript(path)
	require.NoError(t, err)
	assert.Equal(t, "epub", m.BuildType)
	assert.Equal(t, "Field Notes", m.Title)
	assert.Equal(t, "A. Writer", m.Metadata["author"])

	_, err = LoadManuscript(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, ErrConfigNotFound)

	bad := writeFile(t, dir, "bad.yaml", "build_type: [pdf\n")
	_, err = LoadManuscript(bad)
	require.ErrorIs(t, err, ErrConfigParse)
}

func TestLoadGlobalConfig(t *testing.T) {
	assert.Equal(t, map[string]any{}, LoadGlobalConfig(nil).Values)

	gc := LoadGlobalConfig(map[string]any{"build_type": "pdf"})
	assert.Equal(t, "pdf", gc.Values["build_type"])
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		in      string
		want    types.Option
		wantErr bool
	}{
		{in: "media=A4", want: types.Option{Key: "media", Value: "A4"}},
		{in: "landscape=true", want: types.Option{Key: "landscape", Value: true}},
		{in: "page-margin=12", want: types.Option{Key: "page-margin", Value: 12}},
		{in: "zoom=1.5", want: types.Option{Key: "zoom", Value: 1.5}},
		{in: "--media=Letter", want: types.Option{Key: "media", Value: "Letter"}},
		{in: "pdf-title=Part 1: Roots", want: types.Option{Key: "pdf-title", Value: "Part 1: Roots"}},
		{in: "pdf-keywords=a=b", want: types.Option{Key: "pdf-keywords", Value: "a=b"}},
		{in: "no-embed-fonts", want: types.Option{Key: "no-embed-fonts", Value: true}},
		{in: "media=", want: types.Option{Key: "media", Value: ""}},
		{in: "=A4", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOption(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
