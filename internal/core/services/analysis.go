package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driving"
	"github.com/custodia-labs/sentimeter/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs providers one after another and writes the combined result.
type AnalysisService struct {
	loader   driven.InputLoader
	factory  driven.ProviderFactory
	writer   driven.ResultWriter
	reporter driven.ProgressReporter
}

// NewAnalysisService creates a new analysis service.
// The reporter is optional - if nil, progress is not displayed.
func NewAnalysisService(
	loader driven.InputLoader,
	factory driven.ProviderFactory,
	writer driven.ResultWriter,
	reporter driven.ProgressReporter,
) *AnalysisService {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &AnalysisService{
		loader:   loader,
		factory:  factory,
		writer:   writer,
		reporter: reporter,
	}
}

// Run executes one analysis run.
//
// Order of operations:
//  1. Load and validate the input. Invalid input halts before any network call.
//  2. For each provider in run order: skip it if excluded or not configured,
//     otherwise analyse and store its result. A request error halts the run.
//  3. Build report rows and write the output files.
func (s *AnalysisService) Run(ctx context.Context, req domain.RunRequest) (*domain.RunSummary, error) {
	if s.loader == nil {
		return nil, fmt.Errorf("load input: input loader not configured")
	}
	if s.factory == nil {
		return nil, fmt.Errorf("create provider: provider factory not configured")
	}
	if s.writer == nil {
		return nil, fmt.Errorf("write results: result writer not configured")
	}

	logger.Debug("run %s: loading input from %s", req.RunID, req.InputPath)
	input, err := s.loader.Load(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}
	logger.Debug("run %s: %d sentences, language %q", req.RunID, len(input.Sentences), input.Language)

	combined := &domain.CombinedResult{}
	var skipped []domain.ProviderID

	for _, id := range domain.AllProviders() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before %s: %w", id, err)
		}

		if !req.Includes(id) {
			logger.Debug("run %s: %s not selected", req.RunID, id)
			skipped = append(skipped, id)
			continue
		}

		s.reporter.ProviderStarted(id)

		result, err := s.analyze(ctx, id, input)
		if err != nil {
			s.reporter.ProviderFailed(id, err)
			return nil, err
		}
		if result == nil {
			s.reporter.ProviderSkipped(id)
			skipped = append(skipped, id)
			continue
		}

		if itemErrs := result.ItemErrors(); len(itemErrs) > 0 {
			logger.Warn("%s returned %d item errors", id, len(itemErrs))
			s.reporter.ItemErrors(id, itemErrs)
		}

		if err := combined.Set(result); err != nil {
			err = fmt.Errorf("%w: %s: %w", domain.ErrProviderFailed, id, err)
			s.reporter.ProviderFailed(id, err)
			return nil, err
		}
		s.reporter.ProviderSucceeded(id, result)
	}

	logger.Info("run %s: results from %v, skipped %v", req.RunID, combined.Providers(), skipped)
	rows := domain.BuildReport(input.Sentences, combined)

	s.reporter.Saving(req.Output)
	if err := s.writer.Write(req.Output, combined, rows); err != nil {
		return nil, fmt.Errorf("write results: %w", err)
	}

	summary := &domain.RunSummary{
		RunID:    req.RunID,
		Input:    *input,
		Combined: combined,
		Rows:     rows,
		Skipped:  skipped,
		Output:   req.Output,
	}
	s.reporter.Done(summary)
	return summary, nil
}

// analyze runs a single provider. Returns (nil, nil) if it is not configured.
func (s *AnalysisService) analyze(ctx context.Context, id domain.ProviderID, input *domain.Input) (domain.ProviderResult, error) {
	provider, err := s.factory.Create(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrProviderFailed, id, err)
	}
	if provider == nil {
		logger.Debug("%s: credentials not configured", id)
		return nil, nil
	}
	defer func() {
		if cerr := provider.Close(); cerr != nil {
			logger.Debug("%s: close: %v", id, cerr)
		}
	}()

	stop := s.reporter.Computing(id)
	result, err := provider.Analyze(ctx, input.Language, input.Sentences)
	stop()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrProviderFailed, id, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s: empty result", domain.ErrProviderFailed, id)
	}
	return result, nil
}

// nopReporter discards progress.
type nopReporter struct{}

func (nopReporter) ProviderStarted(domain.ProviderID)                          {}
func (nopReporter) ProviderSkipped(domain.ProviderID)                          {}
func (nopReporter) Computing(domain.ProviderID) func()                         { return func() {} }
func (nopReporter) ProviderSucceeded(domain.ProviderID, domain.ProviderResult) {}
func (nopReporter) ProviderFailed(domain.ProviderID, error)                    {}
func (nopReporter) ItemErrors(domain.ProviderID, []domain.ItemError)           {}
func (nopReporter) Saving(domain.OutputTarget)                                 {}
func (nopReporter) Done(*domain.RunSummary)                                    {}
