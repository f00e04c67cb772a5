package domain

import "time"

// Artifact is the fully rendered, print-ready label document for one order.
// It is created fresh per render, written once, and never mutated.
type Artifact struct {
	// OrderID is the order the label was rendered for.
	OrderID int `json:"order_id"`
	// Filename is the basename under the output directory, unique across
	// reprints of the same order (id + timestamp).
	Filename string `json:"filename"`
	// Path is the absolute or output-dir-relative location on disk.
	Path string `json:"path"`
	// HTML is the self-contained document (all images inlined).
	HTML string `json:"-"`
	// CreatedAt is when the render happened.
	CreatedAt time.Time `json:"created_at"`
}
