// Package export turns rendered preview HTML into a PDF.
package export

import (
	"context"
	"errors"
)

var (
	// ErrPreviewNotMounted means the page has no element marked
	// data-resume-preview, so there is nothing to print.
	ErrPreviewNotMounted = errors.New("resume preview is not available for export")
	// ErrBrowserNotFound means no headless browser could be located.
	ErrBrowserNotFound = errors.New("browser executable not found")
)

// PreviewSelector marks the printable region of a preview page.
const PreviewSelector = "[data-resume-preview]"

// Exporter defines the interface for printing a preview page to PDF.
type Exporter interface {
	// ExportPDF loads html and prints its preview region to a PDF document.
	ExportPDF(ctx context.Context, html string) ([]byte, error)
}
