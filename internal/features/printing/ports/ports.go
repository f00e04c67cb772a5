package ports

import (
	"context"

	labeldomain "printer-agent/internal/features/labels/domain"
	"printer-agent/internal/features/printing/domain"
)

// Tool names the external helpers the dispatch chain can probe for.
type Tool string

const (
	// ToolBrowser is a PDF-capable headless browser (Chrome/Chromium).
	ToolBrowser Tool = "browser"
	// ToolPDFPrinter is a silent PDF print utility (SumatraPDF).
	ToolPDFPrinter Tool = "pdf-printer"
)

// ToolLocator probes well-known installation paths for external tools.
// Absence is a fallback signal, not an error.
type ToolLocator interface {
	Locate(tool Tool) (string, bool)
}

// PDFGenerator renders a local HTML file to PDF bytes.
type PDFGenerator interface {
	Generate(ctx context.Context, htmlPath string) ([]byte, error)
}

// CommandRunner executes an external process and waits for it to exit.
// Cancellation and timeouts come from the context.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Opener hands a file to the platform's default "open" handler.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Dispatcher turns a rendered artifact into printed (or at minimum
// viewable) output. Implementations degrade through their fallback chain
// instead of failing; the error return is reserved for context
// cancellation.
type Dispatcher interface {
	Dispatch(ctx context.Context, artifact *labeldomain.Artifact) (domain.Outcome, error)
}
