package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
	"github.com/ysmood/gson"
)

// RodExporter implements the Exporter interface using the rod library.
type RodExporter struct {
	log     logrus.FieldLogger
	bin     string
	timeout time.Duration
}

// NewRodExporter creates an exporter. bin may name a browser executable; when
// empty rod looks one up on the system.
func NewRodExporter(bin string, timeout time.Duration, logger logrus.FieldLogger) *RodExporter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RodExporter{
		log:     logger.WithField("component", "exporter"),
		bin:     bin,
		timeout: timeout,
	}
}

// ExportPDF launches a headless browser for each export, loads html and prints
// it to US letter with backgrounds.
func (e *RodExporter) ExportPDF(ctx context.Context, html string) (pdf []byte, err error) {
	log := e.log.WithField("html_bytes", len(html))
	log.Info("Exporting resume to PDF")

	// --- Browser Setup ---
	path := e.bin
	if path == "" {
		var exists bool
		path, exists = launcher.LookPath()
		if !exists {
			log.Error("Cannot find browser executable for rod")
			return nil, ErrBrowserNotFound
		}
	}
	l := launcher.New().Bin(path).Headless(true)
	u, err := l.Launch()
	if err != nil {
		log.WithError(err).Error("Failed to launch browser")
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(u)
	if err = browser.Connect(); err != nil {
		log.WithError(err).Error("Failed to connect to rod browser")
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.WithError(closeErr).Error("Error closing rod browser instance")
			if err == nil {
				err = fmt.Errorf("error closing browser: %w", closeErr)
			}
		}
	}()

	// --- Page Setup ---
	pageCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	page, err := browser.Context(pageCtx).Page(proto.TargetCreateTarget{})
	if err != nil {
		log.WithError(err).Error("Failed to create rod page")
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			log.WithError(closeErr).Debug("Error closing rod page")
		}
	}()

	if err = page.SetDocumentContent(html); err != nil {
		return nil, e.wrapTimeout(pageCtx, "failed to load preview", err)
	}
	if err = page.WaitLoad(); err != nil {
		return nil, e.wrapTimeout(pageCtx, "failed waiting for preview load", err)
	}

	mounted, _, err := page.Has(PreviewSelector)
	if err != nil {
		return nil, e.wrapTimeout(pageCtx, "failed to query preview region", err)
	}
	if !mounted {
		log.Warn("Preview region missing from page")
		return nil, ErrPreviewNotMounted
	}

	// --- Print ---
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      gson.Num(8.5),
		PaperHeight:     gson.Num(11),
	})
	if err != nil {
		return nil, e.wrapTimeout(pageCtx, "failed to print PDF", err)
	}
	pdf, err = io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF stream: %w", err)
	}

	log.WithField("pdf_bytes", len(pdf)).Info("PDF export completed")
	return pdf, nil
}

func (e *RodExporter) wrapTimeout(ctx context.Context, msg string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		e.log.WithError(ctx.Err()).Warn("Export timed out")
		return fmt.Errorf("%s: export timed out: %w", msg, ctx.Err())
	}
	e.log.WithError(err).Error(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
