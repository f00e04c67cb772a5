package ports

import "printer-agent/internal/features/labels/domain"

// LabelRenderer turns an order into a print-ready artifact on disk.
// This is a Secondary Port (Driven Port).
type LabelRenderer interface {
	// Render produces a self-contained HTML label for the order and writes
	// it under the output directory. Missing optional fields degrade to
	// placeholders; visual-code failures degrade to absent images.
	Render(order domain.Order) (*domain.Artifact, error)
}
