// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/book-pipeline/internal/process"
	"github.com/pdiddy/book-pipeline/internal/report"
)

var errToolNotFound = errors.New("tool not found on PATH")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external tools used by stages are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := report.NewConsole(diagnostics, !viper.GetBool("no_color"))
		return checkTool(newTool(viper.GetString("pdf.binary")), rep)
	},
}

// checkTool reports whether tool is on PATH and, if so, its version.
func checkTool(tool process.Tool, rep report.Reporter) error {
	if !tool.Available() {
		rep.Error("%s: not found on PATH", tool.Name())
		return fmt.Errorf("%w: %s", errToolNotFound, tool.Name())
	}
	v, err := tool.Version()
	if err != nil {
		rep.Warn("%s: found, version unknown (%v)", tool.Name(), err)
		return nil
	}
	rep.Success("%s: %s", tool.Name(), v)
	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
