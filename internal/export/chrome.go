package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultRenderTimeout bounds a single PDF render, browser start included.
const DefaultRenderTimeout = 60 * time.Second

// CSS pixels per inch.
const cssDPI = 96

// ChromeRenderer prints pages with a headless Chrome driven by chromedp.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRenderer struct {
	// ExecPath overrides the browser binary.
	ExecPath string
	Timeout  time.Duration
}

// NewChromeRenderer returns a renderer using the browser at execPath, or the
// first one chromedp finds when empty.
func NewChromeRenderer(execPath string, timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	return &ChromeRenderer{ExecPath: execPath, Timeout: timeout}
}

// RenderPDF loads html from a temporary file, reduces the page to the element
// matching selector and prints it.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html, selector string, opts PDFOptions) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "resume-builder-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write page: %w", err)
	}

	sel, err := json.Marshal(selector)
	if err != nil {
		return nil, err
	}
	// Keep <head> styles, drop everything in <body> except the target.
	isolate := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) { return false; }
		document.body.replaceChildren(el);
		return true;
	})()`, sel)

	width, height := opts.PaperSize()
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	var found bool
	var pdf []byte
	err = chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(int64(width*cssDPI), int64(height*cssDPI), scale, false),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(isolate, &found),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if !found {
				return fmt.Errorf("%w: %s", ErrPreviewNotFound, selector)
			}
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}
	return pdf, nil
}
