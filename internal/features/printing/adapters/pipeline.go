package adapters

import (
	"context"
	"os"
	"strings"
	"time"

	"printer-agent/internal/core/config"
	"printer-agent/internal/core/logger"
	labeldomain "printer-agent/internal/features/labels/domain"
	"printer-agent/internal/features/printing/domain"
	"printer-agent/internal/features/printing/ports"

	"go.uber.org/zap"
)

// SelectDispatcher picks the dispatch chain once at startup based on host
// capabilities: a located (or configured) PDF-capable browser selects the
// full PDF pipeline, anything else collapses to the default-open handler.
func SelectDispatcher(cfg config.PrintConfig, locator ports.ToolLocator) ports.Dispatcher {
	runner := NewExecRunner()
	opener := NewDefaultOpener(runner)

	bin := cfg.BrowserBin
	if bin == "" {
		if probed, ok := locator.Locate(ports.ToolBrowser); ok {
			bin = probed
		}
	}

	if bin == "" {
		logger.Get().Info("No PDF-capable browser found, labels will open for manual printing")
		return NewOpenPipeline(opener)
	}

	logger.Get().Info("PDF print pipeline selected", zap.String("browser", bin))
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return NewPdfPipeline(
		NewRodPDFGenerator(bin, timeout),
		locator,
		runner,
		opener,
		cfg.KeepIntermediatePDF,
	)
}

// PdfPipeline is the automatic chain: render the artifact to PDF, hand the
// PDF to a silent print utility, and degrade step by step to opening the
// document for a manual print. It never surfaces a dispatch failure; the
// outcome records how far down the chain it got.
type PdfPipeline struct {
	pdf     ports.PDFGenerator
	locator ports.ToolLocator
	runner  ports.CommandRunner
	opener  ports.Opener
	keepPDF bool
	logger  *zap.Logger
}

// NewPdfPipeline wires the full Windows-class dispatch chain.
func NewPdfPipeline(pdf ports.PDFGenerator, locator ports.ToolLocator, runner ports.CommandRunner, opener ports.Opener, keepPDF bool) *PdfPipeline {
	return &PdfPipeline{
		pdf:     pdf,
		locator: locator,
		runner:  runner,
		opener:  opener,
		keepPDF: keepPDF,
		logger:  logger.Named("dispatch"),
	}
}

// Dispatch runs the chain for one artifact.
func (p *PdfPipeline) Dispatch(ctx context.Context, artifact *labeldomain.Artifact) (domain.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.Outcome{}, err
	}

	pdfBytes, err := p.pdf.Generate(ctx, artifact.Path)
	if err != nil {
		p.logger.Warn("PDF generation failed, opening label in browser",
			zap.Int("order_id", artifact.OrderID),
			zap.Error(err),
		)
		return p.openFallback(ctx, artifact, domain.StrategyOpenHTML, artifact.Path, ""), nil
	}

	pdfPath := strings.TrimSuffix(artifact.Path, ".html") + ".pdf"
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		p.logger.Warn("Writing intermediate PDF failed, opening label in browser",
			zap.Int("order_id", artifact.OrderID),
			zap.Error(err),
		)
		return p.openFallback(ctx, artifact, domain.StrategyOpenHTML, artifact.Path, ""), nil
	}

	printer, ok := p.locator.Locate(ports.ToolPDFPrinter)
	if !ok {
		p.logger.Info("Silent print utility not found, opening PDF for manual print",
			zap.Int("order_id", artifact.OrderID),
		)
		// The PDF is retained: the viewer needs it on disk.
		return p.openFallback(ctx, artifact, domain.StrategyOpenPDF, pdfPath, pdfPath), nil
	}

	if err := p.runner.Run(ctx, printer, "-print-to-default", "-silent", pdfPath); err != nil {
		p.logger.Warn("Silent print failed, opening PDF for manual print",
			zap.Int("order_id", artifact.OrderID),
			zap.Error(err),
		)
		return p.openFallback(ctx, artifact, domain.StrategyOpenPDF, pdfPath, pdfPath), nil
	}

	retained := pdfPath
	if !p.keepPDF {
		if err := os.Remove(pdfPath); err != nil {
			p.logger.Warn("Intermediate PDF cleanup failed", zap.String("path", pdfPath), zap.Error(err))
		} else {
			retained = ""
		}
	}

	p.logger.Info("Label sent to printer", zap.Int("order_id", artifact.OrderID))
	return domain.Outcome{
		Strategy:     domain.StrategyAutoPrint,
		AutoPrinted:  true,
		ArtifactPath: artifact.Path,
		PDFPath:      retained,
	}, nil
}

// openFallback hands a file to the default handler and reports the manual
// outcome. Even a failed open keeps the artifact usable on disk.
func (p *PdfPipeline) openFallback(ctx context.Context, artifact *labeldomain.Artifact, strategy domain.Strategy, path, pdfPath string) domain.Outcome {
	if err := p.opener.Open(ctx, path); err != nil {
		p.logger.Warn("Could not auto-open file, it remains on disk",
			zap.Int("order_id", artifact.OrderID),
			zap.String("path", path),
			zap.Error(err),
		)
	}
	return domain.Outcome{
		Strategy:     strategy,
		AutoPrinted:  false,
		ArtifactPath: artifact.Path,
		PDFPath:      pdfPath,
	}
}

// OpenPipeline is the single-step chain for hosts without a PDF-capable
// browser: open the artifact with the default handler and let the user
// print manually.
type OpenPipeline struct {
	opener ports.Opener
	logger *zap.Logger
}

// NewOpenPipeline wires the manual-print fallback dispatcher.
func NewOpenPipeline(opener ports.Opener) *OpenPipeline {
	return &OpenPipeline{
		opener: opener,
		logger: logger.Named("dispatch"),
	}
}

// Dispatch opens the artifact for manual printing.
func (p *OpenPipeline) Dispatch(ctx context.Context, artifact *labeldomain.Artifact) (domain.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.Outcome{}, err
	}

	if err := p.opener.Open(ctx, artifact.Path); err != nil {
		p.logger.Warn("Could not auto-open label, it remains on disk",
			zap.Int("order_id", artifact.OrderID),
			zap.String("path", artifact.Path),
			zap.Error(err),
		)
	} else {
		p.logger.Info("Label opened for manual printing", zap.Int("order_id", artifact.OrderID))
	}

	return domain.Outcome{
		Strategy:     domain.StrategyOpenHTML,
		AutoPrinted:  false,
		ArtifactPath: artifact.Path,
	}, nil
}
