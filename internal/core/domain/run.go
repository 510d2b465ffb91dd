package domain

// RunRequest describes one analysis run.
type RunRequest struct {
	// RunID correlates log lines of a run.
	RunID string

	// InputPath is the JSON input document.
	InputPath string

	// Providers restricts the run to a subset. Empty means all providers.
	Providers []ProviderID

	// Output is where results are written.
	Output OutputTarget
}

// OutputTarget names the files a run writes.
type OutputTarget struct {
	// ResultsPath receives the combined result as JSON.
	ResultsPath string

	// ReportPath receives the HTML report. Empty disables the report.
	ReportPath string

	// TemplatePath overrides the built-in report template.
	TemplatePath string
}

// RunSummary is the outcome of a successful run.
type RunSummary struct {
	RunID    string
	Input    Input
	Combined *CombinedResult
	Rows     []ReportRow
	Skipped  []ProviderID
	Output   OutputTarget
}

// Includes reports whether the request selects a provider.
func (r RunRequest) Includes(id ProviderID) bool {
	if len(r.Providers) == 0 {
		return true
	}
	for _, p := range r.Providers {
		if p == id {
			return true
		}
	}
	return false
}
