package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.ProgressReporter = (*Reporter)(nil)

// Reporter prints run progress.
type Reporter struct {
	out         io.Writer
	styles      *Styles
	interactive bool
	verbose     bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithVerbose prints each provider result as indented JSON.
func WithVerbose(verbose bool) Option {
	return func(r *Reporter) {
		r.verbose = verbose
	}
}

// WithInteractive forces the animated spinner on or off.
func WithInteractive(interactive bool) Option {
	return func(r *Reporter) {
		r.interactive = interactive
	}
}

// WithStyles replaces the default styles.
func WithStyles(styles *Styles) Option {
	return func(r *Reporter) {
		if styles != nil {
			r.styles = styles
		}
	}
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:         out,
		styles:      NewStyles(lipgloss.NewRenderer(out), nil),
		interactive: IsTerminal(out),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// ProviderStarted prints the provider header.
func (r *Reporter) ProviderStarted(id domain.ProviderID) {
	r.println(r.styles.ProviderHeader(id).Render(id.DisplayName()))
}

// ProviderSkipped prints the skip notice and where credentials come from.
func (r *Reporter) ProviderSkipped(id domain.ProviderID) {
	r.println(r.styles.Warning.Render(
		fmt.Sprintf("Skipping %s since some of the parameters are missing.", id.DisplayName())))
	r.println(r.styles.Muted.Render(id.CredentialHint()))
}

// Computing shows the spinner until stop is called.
func (r *Reporter) Computing(_ domain.ProviderID) func() {
	const label = "Computing sentiment"
	if !r.interactive {
		r.println(r.styles.Spinner.Render("•") + " " + label + "...")
		return func() {}
	}
	return startSpinner(r.out, label, r.styles.Spinner)
}

// ProviderSucceeded confirms the provider; verbose mode prints its result.
func (r *Reporter) ProviderSucceeded(_ domain.ProviderID, result domain.ProviderResult) {
	r.println(r.styles.Success.Render("✔ Retrieved data"))
	if !r.verbose || result == nil {
		return
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		r.println(r.styles.Error.Render(err.Error()))
		return
	}
	r.println(string(data))
}

// ProviderFailed prints the error that halted the run.
func (r *Reporter) ProviderFailed(_ domain.ProviderID, err error) {
	r.println(r.styles.Error.Render("✖ Error encountered:"))
	if err != nil {
		r.println(err.Error())
	}
}

// ItemErrors prints one warning per failed sentence.
func (r *Reporter) ItemErrors(_ domain.ProviderID, errs []domain.ItemError) {
	for _, e := range errs {
		msg := fmt.Sprintf("  sentence %d: %s", e.Index+1, e.Message)
		if e.Code != "" {
			msg += " (" + e.Code + ")"
		}
		r.println(r.styles.Warning.Render(msg))
	}
}

// Saving announces the output step.
func (r *Reporter) Saving(target domain.OutputTarget) {
	r.println("")
	r.println(r.styles.Title.Render("Saving results"))
	r.println(r.styles.Muted.Render("  " + target.ResultsPath))
	if target.ReportPath != "" {
		r.println(r.styles.Muted.Render("  " + target.ReportPath))
	}
}

// Done prints the summary table of the run.
func (r *Reporter) Done(summary *domain.RunSummary) {
	r.println(r.styles.Success.Render("✔ Done"))
	if summary == nil {
		return
	}
	if len(summary.Skipped) > 0 {
		names := make([]string, len(summary.Skipped))
		for i, id := range summary.Skipped {
			names[i] = id.String()
		}
		r.println(r.styles.Muted.Render("Skipped: " + strings.Join(names, ", ")))
	}
	if len(summary.Rows) > 0 {
		r.println(r.SummaryTable(summary.Rows))
	}
}

// SummaryTable renders report rows as a table with one column per provider.
func (r *Reporter) SummaryTable(rows []domain.ReportRow) string {
	providers := domain.AllProviders()

	headers := make([]string, 0, len(providers)+1)
	headers = append(headers, "Sentence")
	for _, id := range providers {
		headers = append(headers, strings.ToUpper(id.String()))
	}

	data := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, 0, len(providers)+1)
		cells = append(cells, row.Sentence)
		for _, id := range providers {
			cells = append(cells, row.ScoreFor(id))
		}
		data[i] = cells
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Cell
		}).
		Headers(headers...).
		Rows(data...)

	return t.Render()
}

func (r *Reporter) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}
