package driven

import "github.com/custodia-labs/sentimeter/internal/core/domain"

// InputLoader reads the input document.
type InputLoader interface {
	// Load reads and validates the document at path.
	// Errors wrap ErrInvalidInput when the document is malformed or
	// violates the input invariants.
	Load(path string) (*domain.Input, error)
}

// ResultWriter persists the outcome of a run.
type ResultWriter interface {
	// Write serialises combined to target.ResultsPath and, when
	// target.ReportPath is set, renders rows to an HTML report.
	// Nothing is written if any part fails to render.
	Write(target domain.OutputTarget, combined *domain.CombinedResult, rows []domain.ReportRow) error
}

// ProgressReporter displays run progress to the user.
type ProgressReporter interface {
	// ProviderStarted announces a provider section.
	ProviderStarted(id domain.ProviderID)

	// ProviderSkipped reports a provider with missing credentials.
	ProviderSkipped(id domain.ProviderID)

	// Computing shows activity while a provider request is in flight.
	// The returned function stops it and must be called before any other report.
	Computing(id domain.ProviderID) (stop func())

	// ProviderSucceeded reports a completed provider.
	ProviderSucceeded(id domain.ProviderID, result domain.ProviderResult)

	// ProviderFailed reports a provider request error.
	ProviderFailed(id domain.ProviderID, err error)

	// ItemErrors reports per-sentence errors inside a successful response.
	ItemErrors(id domain.ProviderID, errs []domain.ItemError)

	// Saving announces the output step.
	Saving(target domain.OutputTarget)

	// Done reports a successful run.
	Done(summary *domain.RunSummary)
}
