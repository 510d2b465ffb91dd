// Package output writes the combined result and the HTML report to disk.
package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ResultWriter = (*Writer)(nil)

//go:embed templates/report.html.tmpl
var templates embed.FS

const (
	defaultTemplate = "templates/report.html.tmpl"
	reportTitle     = "Sentiment analysis"
)

// ReportData is the value the report template is executed with.
type ReportData struct {
	Title   string
	Columns []string
	Rows    []domain.ReportRow
}

// Writer writes results as indented JSON and the report as HTML.
// Existing files are overwritten.
type Writer struct{}

// NewWriter creates a new file writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders everything in memory first so a template or encoding
// failure leaves no files behind.
func (w *Writer) Write(target domain.OutputTarget, combined *domain.CombinedResult, rows []domain.ReportRow) error {
	if target.ResultsPath == "" {
		return fmt.Errorf("%w: results path is empty", domain.ErrOutput)
	}

	results, err := EncodeResults(combined)
	if err != nil {
		return err
	}

	var report []byte
	if target.ReportPath != "" {
		report, err = RenderReport(target.TemplatePath, rows)
		if err != nil {
			return err
		}
	}

	if err := writeFile(target.ResultsPath, results); err != nil {
		return err
	}
	if report != nil {
		if err := writeFile(target.ReportPath, report); err != nil {
			return err
		}
	}
	return nil
}

// EncodeResults serialises the combined result with two-space indentation
// and a trailing newline. Skipped providers are encoded as null.
func EncodeResults(combined *domain.CombinedResult) ([]byte, error) {
	if combined == nil {
		combined = &domain.CombinedResult{}
	}
	data, err := json.MarshalIndent(combined, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encode results: %w", domain.ErrOutput, err)
	}
	return append(data, '\n'), nil
}

// RenderReport executes the report template over rows.
// An empty templatePath selects the built-in template.
func RenderReport(templatePath string, rows []domain.ReportRow) ([]byte, error) {
	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(domain.AllProviders()))
	for _, id := range domain.AllProviders() {
		columns = append(columns, id.DisplayName())
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ReportData{Title: reportTitle, Columns: columns, Rows: rows}); err != nil {
		return nil, fmt.Errorf("%w: render report: %w", domain.ErrOutput, err)
	}
	return buf.Bytes(), nil
}

func loadTemplate(path string) (*template.Template, error) {
	if path == "" {
		tmpl, err := template.ParseFS(templates, defaultTemplate)
		if err != nil {
			return nil, fmt.Errorf("%w: parse built-in template: %w", domain.ErrOutput, err)
		}
		return tmpl, nil
	}

	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("%w: parse template %s: %w", domain.ErrOutput, path, err)
	}
	return tmpl, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %w", domain.ErrOutput, dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: results are meant to be shared
		return fmt.Errorf("%w: write %s: %w", domain.ErrOutput, path, err)
	}
	return nil
}
