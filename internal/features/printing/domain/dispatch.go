package domain

// Strategy identifies which leg of the dispatch chain produced the outcome.
type Strategy string

const (
	// StrategyAutoPrint means the PDF was sent straight to the default
	// printer by the silent print utility.
	StrategyAutoPrint Strategy = "pdf-auto-print"
	// StrategyOpenPDF means the generated PDF was opened in the default
	// viewer for the user to print manually.
	StrategyOpenPDF Strategy = "pdf-open"
	// StrategyOpenHTML means the original label document was opened in the
	// default browser for the user to print manually.
	StrategyOpenHTML Strategy = "browser-open"
)

// Outcome is the typed result of one dispatch. The chain never fails
// outright; it only degrades to a less automatic strategy, and the outcome
// records which one actually happened.
type Outcome struct {
	// Strategy is the chain leg that completed.
	Strategy Strategy `json:"strategy"`
	// AutoPrinted is true only when no manual step remains.
	AutoPrinted bool `json:"auto_printed"`
	// ArtifactPath is the rendered label the dispatch started from.
	ArtifactPath string `json:"artifact_path"`
	// PDFPath is the retained intermediate PDF, empty when none was
	// produced or it was cleaned up after a successful silent print.
	PDFPath string `json:"pdf_path,omitempty"`
}

// Manual reports whether the user still has to press print.
func (o Outcome) Manual() bool { return !o.AutoPrinted }
