package adapters

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	labeldomain "printer-agent/internal/features/labels/domain"
	"printer-agent/internal/features/printing/domain"
	"printer-agent/internal/features/printing/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePDFGenerator struct {
	pdf []byte
	err error
}

func (f *fakePDFGenerator) Generate(ctx context.Context, htmlPath string) ([]byte, error) {
	return f.pdf, f.err
}

type fakeLocator struct {
	paths map[ports.Tool]string
}

func (f *fakeLocator) Locate(tool ports.Tool) (string, bool) {
	p, ok := f.paths[tool]
	return p, ok
}

type fakeRunner struct {
	calls [][]string
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.err
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(ctx context.Context, path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

func testArtifact(t *testing.T) *labeldomain.Artifact {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "order-7-1700000000000.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))
	return &labeldomain.Artifact{OrderID: 7, Filename: filepath.Base(path), Path: path}
}

// TestPdfPipeline_AutoPrint verifies the fully automatic path and that the
// intermediate PDF is cleaned up after a successful silent print.
func TestPdfPipeline_AutoPrint(t *testing.T) {
	artifact := testArtifact(t)
	runner := &fakeRunner{}
	opener := &fakeOpener{}
	pipeline := NewPdfPipeline(
		&fakePDFGenerator{pdf: []byte("%PDF-1.4")},
		&fakeLocator{paths: map[ports.Tool]string{ports.ToolPDFPrinter: "/opt/sumatra"}},
		runner,
		opener,
		false,
	)

	outcome, err := pipeline.Dispatch(context.Background(), artifact)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyAutoPrint, outcome.Strategy)
	assert.True(t, outcome.AutoPrinted)
	assert.Empty(t, outcome.PDFPath)
	assert.Empty(t, opener.opened)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "/opt/sumatra", runner.calls[0][0])
	assert.Equal(t, []string{"-print-to-default", "-silent"}, runner.calls[0][1:3])

	// Cleaned up after the print process exited.
	pdfPath := runner.calls[0][3]
	_, statErr := os.Stat(pdfPath)
	assert.True(t, os.IsNotExist(statErr))
}

// TestPdfPipeline_KeepPDF verifies the retention override.
func TestPdfPipeline_KeepPDF(t *testing.T) {
	artifact := testArtifact(t)
	pipeline := NewPdfPipeline(
		&fakePDFGenerator{pdf: []byte("%PDF-1.4")},
		&fakeLocator{paths: map[ports.Tool]string{ports.ToolPDFPrinter: "/opt/sumatra"}},
		&fakeRunner{},
		&fakeOpener{},
		true,
	)

	outcome, err := pipeline.Dispatch(context.Background(), artifact)
	require.NoError(t, err)

	require.NotEmpty(t, outcome.PDFPath)
	_, statErr := os.Stat(outcome.PDFPath)
	assert.NoError(t, statErr)
}

// TestPdfPipeline_GeneratorFails verifies the chain falls back to opening
// the original document and reports a manual outcome, never an error.
func TestPdfPipeline_GeneratorFails(t *testing.T) {
	artifact := testArtifact(t)
	opener := &fakeOpener{}
	pipeline := NewPdfPipeline(
		&fakePDFGenerator{err: errors.New("browser exploded")},
		&fakeLocator{},
		&fakeRunner{},
		opener,
		false,
	)

	outcome, err := pipeline.Dispatch(context.Background(), artifact)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyOpenHTML, outcome.Strategy)
	assert.True(t, outcome.Manual())
	assert.Equal(t, []string{artifact.Path}, opener.opened)
}

// TestPdfPipeline_PrinterMissing verifies PDF success + missing silent-print
// utility opens the generated PDF and retains it for the viewer.
func TestPdfPipeline_PrinterMissing(t *testing.T) {
	artifact := testArtifact(t)
	opener := &fakeOpener{}
	pipeline := NewPdfPipeline(
		&fakePDFGenerator{pdf: []byte("%PDF-1.4")},
		&fakeLocator{}, // nothing locatable
		&fakeRunner{},
		opener,
		false,
	)

	outcome, err := pipeline.Dispatch(context.Background(), artifact)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyOpenPDF, outcome.Strategy)
	assert.True(t, outcome.Manual())
	require.Len(t, opener.opened, 1)
	assert.Equal(t, outcome.PDFPath, opener.opened[0])

	// Retained for the user.
	_, statErr := os.Stat(outcome.PDFPath)
	assert.NoError(t, statErr)
}

// TestPdfPipeline_SilentPrintFails verifies a failing print run degrades to
// opening the PDF.
func TestPdfPipeline_SilentPrintFails(t *testing.T) {
	artifact := testArtifact(t)
	opener := &fakeOpener{}
	pipeline := NewPdfPipeline(
		&fakePDFGenerator{pdf: []byte("%PDF-1.4")},
		&fakeLocator{paths: map[ports.Tool]string{ports.ToolPDFPrinter: "/opt/sumatra"}},
		&fakeRunner{err: errors.New("spooler offline")},
		opener,
		false,
	)

	outcome, err := pipeline.Dispatch(context.Background(), artifact)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyOpenPDF, outcome.Strategy)
	assert.True(t, outcome.Manual())
	assert.Len(t, opener.opened, 1)
}

// TestPdfPipeline_OpenFailureStillManualOutcome verifies even a failed open
// yields a usable manual outcome instead of an error.
func TestPdfPipeline_OpenFailureStillManualOutcome(t *testing.T) {
	artifact := testArtifact(t)
	pipeline := NewPdfPipeline(
		&fakePDFGenerator{err: errors.New("no browser")},
		&fakeLocator{},
		&fakeRunner{},
		&fakeOpener{err: errors.New("no display")},
		false,
	)

	outcome, err := pipeline.Dispatch(context.Background(), artifact)
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyOpenHTML, outcome.Strategy)
	assert.Equal(t, artifact.Path, outcome.ArtifactPath)
}

// TestPdfPipeline_ContextCancelled verifies cancellation is the one error path.
func TestPdfPipeline_ContextCancelled(t *testing.T) {
	artifact := testArtifact(t)
	pipeline := NewPdfPipeline(&fakePDFGenerator{}, &fakeLocator{}, &fakeRunner{}, &fakeOpener{}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Dispatch(ctx, artifact)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestOpenPipeline verifies the single-step manual chain.
func TestOpenPipeline(t *testing.T) {
	artifact := testArtifact(t)
	opener := &fakeOpener{}
	pipeline := NewOpenPipeline(opener)

	outcome, err := pipeline.Dispatch(context.Background(), artifact)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyOpenHTML, outcome.Strategy)
	assert.True(t, outcome.Manual())
	assert.Equal(t, []string{artifact.Path}, opener.opened)
}
