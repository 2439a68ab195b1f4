// Package export turns the current resume into files: a PDF printed from the
// HTML preview, the preview HTML itself, plain text or a JSON document.
package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// User-facing export messages.
const (
	MsgPDFExported     = "📄 PDF downloaded successfully!"
	MsgPDFFailed       = "❌ Failed to generate PDF. Please check the console for details."
	MsgPreviewNotFound = "Resume preview not found"
	MsgTextExported    = "📝 Resume exported as text!"
	MsgHTMLExported    = "🌐 Resume preview exported!"
	MsgJSONExported    = "💾 Resume exported as JSON!"
)

// ErrPreviewNotFound means the rendered page has no element to print.
var ErrPreviewNotFound = errors.New("resume preview not found")

// PDFOptions are the print settings handed to a Renderer.
type PDFOptions struct {
	Filename string
	// ImageQuality applies to raster images embedded in the page (0-1).
	ImageQuality float64
	// Scale is the device pixel ratio used while rendering.
	Scale       float64
	Format      string
	Orientation string
}

// Paper sizes in inches, portrait.
var paperSizes = map[string][2]float64{
	"a4":     {8.27, 11.69},
	"letter": {8.5, 11},
}

// PaperSize returns width and height in inches, swapped for landscape.
// Unknown formats fall back to A4.
func (o PDFOptions) PaperSize() (float64, float64) {
	size, ok := paperSizes[strings.ToLower(o.Format)]
	if !ok {
		size = paperSizes["a4"]
	}
	if o.Landscape() {
		return size[1], size[0]
	}
	return size[0], size[1]
}

// Landscape reports whether the page is printed sideways.
func (o PDFOptions) Landscape() bool {
	return strings.EqualFold(o.Orientation, "landscape")
}

// DefaultPDFOptions returns the standard print settings for filename.
func DefaultPDFOptions(filename string) PDFOptions {
	return PDFOptions{
		Filename:     filename,
		ImageQuality: 0.98,
		Scale:        2,
		Format:       "a4",
		Orientation:  "portrait",
	}
}

// PDFFilename derives the output name, "resume-{first}-{last}.pdf", with
// "my" and "resume" standing in for missing names.
func PDFFilename(info types.PersonalInfo) string {
	return baseName(info) + ".pdf"
}

func baseName(info types.PersonalInfo) string {
	first, last := info.FirstName, info.LastName
	if first == "" {
		first = "my"
	}
	if last == "" {
		last = "resume"
	}
	// Names become part of a path; keep separators out of it.
	name := fmt.Sprintf("resume-%s-%s", first, last)
	return strings.NewReplacer("/", "-", `\`, "-").Replace(name)
}

// Renderer prints the element matching selector in an HTML page to PDF.
type Renderer interface {
	RenderPDF(ctx context.Context, html, selector string, opts PDFOptions) ([]byte, error)
}

// Options configures an Exporter.
type Options struct {
	// OutputDir receives exported files. Defaults to the working directory.
	OutputDir string
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// TemplateFile replaces the built-in preview template.
	TemplateFile string
	Logger       logrus.FieldLogger
}

// Exporter writes exported resumes to a filesystem.
type Exporter struct {
	renderer     Renderer
	fs           afero.Fs
	outDir       string
	templateFile string
	log          logrus.FieldLogger
}

// NewExporter returns an Exporter printing PDFs with renderer.
func NewExporter(renderer Renderer, opts Options) *Exporter {
	e := &Exporter{
		renderer:     renderer,
		fs:           opts.Fs,
		outDir:       opts.OutputDir,
		templateFile: opts.TemplateFile,
		log:          opts.Logger,
	}
	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if e.outDir == "" {
		e.outDir = "."
	}
	if e.log == nil {
		e.log = logger.Discard()
	}
	return e
}

// Preview renders the preview HTML for doc.
func (e *Exporter) Preview(doc types.ResumeDocument, templateID string) (string, error) {
	if e.templateFile != "" {
		return rendering.RenderPreviewFile(doc, templateID, e.templateFile)
	}
	return rendering.RenderPreview(doc, templateID)
}

// ExportPDF renders a copy of doc and prints it. It returns the written path.
// Failures are logged and reported in the Result; nothing is retried.
func (e *Exporter) ExportPDF(ctx context.Context, doc types.ResumeDocument, templateID string) (string, types.Result) {
	snapshot := doc.Clone()

	html, err := e.Preview(snapshot, templateID)
	if err != nil {
		e.log.WithError(err).Error("PDF export error")
		return "", types.Failed(MsgPDFFailed)
	}

	selector := "#" + rendering.PreviewElementID
	if err := FindPreview(html, selector); err != nil {
		e.log.WithError(err).Error("PDF export error")
		if errors.Is(err, ErrPreviewNotFound) {
			return "", types.Failed(MsgPreviewNotFound)
		}
		return "", types.Failed(MsgPDFFailed)
	}

	opts := DefaultPDFOptions(PDFFilename(snapshot.PersonalInfo))
	data, err := e.renderer.RenderPDF(ctx, html, selector, opts)
	if err != nil {
		e.log.WithError(err).Error("PDF export error")
		if errors.Is(err, ErrPreviewNotFound) {
			return "", types.Failed(MsgPreviewNotFound)
		}
		return "", types.Failed(MsgPDFFailed)
	}

	path, err := e.write(opts.Filename, data)
	if err != nil {
		e.log.WithError(err).Error("PDF export error")
		return "", types.Failed(MsgPDFFailed)
	}
	e.log.WithFields(logrus.Fields{"path": path, "bytes": len(data)}).Info("exported PDF")
	return path, types.Succeeded(MsgPDFExported)
}

// ExportHTML writes the preview page next to where the PDF would go.
func (e *Exporter) ExportHTML(doc types.ResumeDocument, templateID string) (string, types.Result) {
	html, err := e.Preview(doc.Clone(), templateID)
	if err != nil {
		e.log.WithError(err).Error("preview export error")
		return "", types.Failed(fmt.Sprintf("Failed to render preview: %v", err))
	}
	path, err := e.write(baseName(doc.PersonalInfo)+".html", []byte(html))
	if err != nil {
		e.log.WithError(err).Error("preview export error")
		return "", types.Failed("Failed to write preview")
	}
	return path, types.Succeeded(MsgHTMLExported)
}

// ExportText writes the plain-text rendering of doc.
func (e *Exporter) ExportText(doc types.ResumeDocument) (string, types.Result) {
	path, err := e.write(baseName(doc.PersonalInfo)+".txt", []byte(PlainText(doc)))
	if err != nil {
		e.log.WithError(err).Error("text export error")
		return "", types.Failed("Failed to write text export")
	}
	return path, types.Succeeded(MsgTextExported)
}

// ExportJSON writes doc in the document file format read back by import.
func (e *Exporter) ExportJSON(doc types.ResumeDocument) (string, types.Result) {
	data, err := document.Encode(doc)
	if err != nil {
		e.log.WithError(err).Error("JSON export error")
		return "", types.Failed("Failed to encode resume")
	}
	path, err := e.write(baseName(doc.PersonalInfo)+".json", data)
	if err != nil {
		e.log.WithError(err).Error("JSON export error")
		return "", types.Failed("Failed to write JSON export")
	}
	return path, types.Succeeded(MsgJSONExported)
}

func (e *Exporter) write(name string, data []byte) (string, error) {
	if err := e.fs.MkdirAll(e.outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", e.outDir, err)
	}
	path := filepath.Join(e.outDir, name)
	if err := afero.WriteFile(e.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// FindPreview checks that html contains an element matching selector.
func FindPreview(html, selector string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse preview HTML: %w", err)
	}
	if doc.Find(selector).Length() == 0 {
		return fmt.Errorf("%w: %s", ErrPreviewNotFound, selector)
	}
	return nil
}
