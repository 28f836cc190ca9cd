// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package process runs external command-line tools on behalf of pipeline
// stages. Tools run attached to the caller's standard streams so their own
// progress output stays visible.
package process

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Tool is a single external executable.
type Tool interface {
	// Name returns the executable name as given at construction.
	Name() string

	// Available reports whether the executable can be found on PATH.
	Available() bool

	// Version returns the first line printed by "<tool> --version".
	Version() (string, error)

	// Run executes the tool with args and blocks until it exits. The tool
	// inherits standard input, output, and error.
	Run(args ...string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
	RunAttached(name string, args []string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (o *osExecutor) RunAttached(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr
	return cmd.Run()
}

type tool struct {
	bin  string
	exec executor
}

func (t *tool) Name() string { return t.bin }

func (t *tool) Available() bool {
	_, err := t.exec.LookPath(t.bin)
	return err == nil
}

func (t *tool) Version() (string, error) {
	out, err := t.exec.Output(t.bin, "--version")
	if err != nil {
		return "", fmt.Errorf("querying %s version: %w", t.bin, err)
	}
	line, _, _ := strings.Cut(string(bytes.TrimSpace(out)), "\n")
	return strings.TrimSpace(line), nil
}

func (t *tool) Run(args ...string) error {
	if err := t.exec.RunAttached(t.bin, args); err != nil {
		return fmt.Errorf("running %s: %w", t.bin, err)
	}
	return nil
}

var defaultExec = &osExecutor{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}

// NewTool returns a Tool for the named executable, attached to the
// process's own standard streams.
func NewTool(bin string) Tool {
	return newTool(bin, defaultExec)
}

func newTool(bin string, exec executor) *tool {
	return &tool{bin: bin, exec: exec}
}

// ExitCode extracts the exit status from an error returned by Run. It
// returns -1 when the process never started or the status is unknown.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
