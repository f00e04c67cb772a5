package adapters

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"printer-agent/internal/features/printing/ports"
)

// ExecRunner runs external tools and waits for them to exit, so callers
// can order follow-up work (delays, cleanup) after the process is done.
// The context bounds the run; a hung tool is killed at the deadline.
type ExecRunner struct{}

// NewExecRunner creates a CommandRunner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and blocks until it exits.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// DefaultOpener hands files to the platform default handler: the browser
// for HTML, the PDF viewer for PDFs. The open itself is synchronous but
// the spawned application is not waited on.
type DefaultOpener struct {
	runner ports.CommandRunner
}

// NewDefaultOpener creates an Opener for the current platform.
func NewDefaultOpener(runner ports.CommandRunner) *DefaultOpener {
	return &DefaultOpener{runner: runner}
}

// Open launches the default handler for the file.
func (o *DefaultOpener) Open(ctx context.Context, path string) error {
	switch runtime.GOOS {
	case "windows":
		return o.runner.Run(ctx, "cmd", "/c", "start", "", path)
	case "darwin":
		return o.runner.Run(ctx, "open", path)
	default:
		return o.runner.Run(ctx, "xdg-open", path)
	}
}
