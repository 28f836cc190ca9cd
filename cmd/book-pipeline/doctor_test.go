// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/book-pipeline/internal/report"
)

func TestCheckTool(t *testing.T) {
	tests := []struct {
		name    string
		tool    *stubTool
		wantErr bool
		wantOut string
	}{
		{
			name:    "installed",
			tool:    &stubTool{bin: "prince-books", available: true, version: "Prince Books 15.4"},
			wantOut: "prince-books: Prince Books 15.4",
		},
		{
			name:    "installed without version",
			tool:    &stubTool{bin: "prince-books", available: true},
			wantOut: "version unknown",
		},
		{
			name:    "missing",
			tool:    &stubTool{bin: "prince-books"},
			wantErr: true,
			wantOut: "prince-books: not found on PATH",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := checkTool(tt.tool, report.NewConsole(&buf, false))
			if tt.wantErr {
				require.ErrorIs(t, err, errToolNotFound)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, buf.String(), tt.wantOut)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "book-pipeline dev\n", buf.String())
}
