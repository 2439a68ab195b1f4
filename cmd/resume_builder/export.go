package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the working resume as HTML",
	Long: "Render the working resume with the selected template. The page is written to " +
		"the output directory, or to stdout with --stdout.",
	Args: cobra.NoArgs,
	RunE: runPreview,
}

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Render the working resume to PDF with headless Chrome",
	Args:  cobra.NoArgs,
	RunE:  runExportPDF,
}

var exportTextCmd = &cobra.Command{
	Use:   "export-text",
	Short: "Write the working resume as plain text",
	Args:  cobra.NoArgs,
	RunE:  runExportText,
}

var exportJSONCmd = &cobra.Command{
	Use:   "export-json",
	Short: "Write the working resume as a JSON document that import can read back",
	Args:  cobra.NoArgs,
	RunE:  runExportJSON,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the working resume with a JSON document file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var (
	templateFile  string
	templateID    string
	previewStdout bool
)

func init() {
	for _, c := range []*cobra.Command{previewCmd, exportPDFCmd} {
		c.Flags().StringVar(&templateFile, "template-file", "", "Custom html/template file for the page")
		c.Flags().StringVarP(&templateID, "template", "t", "", "Template id to render with (defaults to the selected one)")
	}
	previewCmd.Flags().BoolVar(&previewStdout, "stdout", false, "Write the HTML to stdout instead of a file")

	rootCmd.AddCommand(previewCmd, exportPDFCmd, exportTextCmd, exportJSONCmd, importCmd)
}

// renderTemplate is the --template override or the store's selection.
func renderTemplate(s *session) string {
	if templateID != "" {
		return templateID
	}
	return s.store.Template()
}

func runPreview(cmd *cobra.Command, _ []string) error {
	exporter := newExporter(templateFile)
	return withSession(cmd, func(s *session) error {
		doc := s.store.Document()
		if previewStdout {
			html, err := exporter.Preview(doc, renderTemplate(s))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), html)
			return nil
		}
		path, res := exporter.ExportHTML(doc, renderTemplate(s))
		return reportExport(cmd, path, res)
	})
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	exporter := newExporter(templateFile)
	return withSession(cmd, func(s *session) error {
		path, res := exporter.ExportPDF(cmd.Context(), s.store.Document(), renderTemplate(s))
		return reportExport(cmd, path, res)
	})
}

func runExportText(cmd *cobra.Command, _ []string) error {
	exporter := newExporter("")
	return withSession(cmd, func(s *session) error {
		path, res := exporter.ExportText(s.store.Document())
		return reportExport(cmd, path, res)
	})
}

func runExportJSON(cmd *cobra.Command, _ []string) error {
	exporter := newExporter("")
	return withSession(cmd, func(s *session) error {
		path, res := exporter.ExportJSON(s.store.Document())
		return reportExport(cmd, path, res)
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	doc, err := document.Load(afero.NewOsFs(), args[0])
	if err != nil {
		return err
	}
	ok, err := confirm(cmd, "Replace the working resume with "+args[0]+"?")
	if err != nil || !ok {
		return err
	}
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.Import(doc))
	})
}

// reportExport prints the export message followed by the written path.
func reportExport(cmd *cobra.Command, path string, res types.Result) error {
	if err := report(cmd, res); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
