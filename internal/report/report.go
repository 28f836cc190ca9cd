// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints stage diagnostics to the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Reporter receives user-facing diagnostics from a stage.
type Reporter interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Console writes one line per diagnostic to w. When colored is set, lines
// are tinted by severity.
type Console struct {
	w       io.Writer
	colored bool
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, colored bool) *Console {
	return &Console{w: w, colored: colored}
}

func (c *Console) Info(format string, args ...any)    { c.print(color.Cyan, format, args) }
func (c *Console) Success(format string, args ...any) { c.print(color.Green, format, args) }
func (c *Console) Warn(format string, args ...any)    { c.print(color.Yellow, format, args) }
func (c *Console) Error(format string, args ...any)   { c.print(color.Red, format, args) }

func (c *Console) print(tint color.Color, format string, args []any) {
	msg := fmt.Sprintf(format, args...)
	if c.colored {
		msg = tint.Sprint(msg)
	}
	fmt.Fprintln(c.w, msg)
}

type discard struct{}

func (discard) Info(string, ...any)    {}
func (discard) Success(string, ...any) {}
func (discard) Warn(string, ...any)    {}
func (discard) Error(string, ...any)   {}

// Discard is a Reporter that drops everything.
var Discard Reporter = discard{}
