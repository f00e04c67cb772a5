package adapters

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"printer-agent/internal/core/logger"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Label page dimensions: 100x150mm expressed in inches for the PDF engine.
const (
	labelPaperWidthInches  = 3.94
	labelPaperHeightInches = 5.91
)

// RodPDFGenerator renders label HTML to PDF through a headless browser.
// Each call launches a fresh browser against the located binary; the agent
// prints a handful of labels per cycle, so connection reuse buys nothing.
type RodPDFGenerator struct {
	bin     string
	timeout time.Duration
	logger  *zap.Logger
}

// NewRodPDFGenerator creates a generator using the given browser binary.
func NewRodPDFGenerator(bin string, timeout time.Duration) *RodPDFGenerator {
	return &RodPDFGenerator{
		bin:     bin,
		timeout: timeout,
		logger:  logger.Named("pdf"),
	}
}

// Generate opens the label file in the headless browser and prints it to
// PDF at the fixed label page size.
func (g *RodPDFGenerator) Generate(ctx context.Context, htmlPath string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("resolving label path: %w", err)
	}

	l := launcher.New().
		Context(ctx).
		Bin(g.bin).
		Headless(true).
		NoSandbox(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return nil, fmt.Errorf("failed to open label page: %w", err)
	}
	defer page.Close()

	if err := page.Timeout(g.timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to load label page: %w", err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:        floatPtr(labelPaperWidthInches),
		PaperHeight:       floatPtr(labelPaperHeightInches),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading pdf stream: %w", err)
	}

	g.logger.Debug("PDF generated",
		zap.String("source", abs),
		zap.Int("bytes", len(pdf)),
	)
	return pdf, nil
}

func floatPtr(f float64) *float64 { return &f }
