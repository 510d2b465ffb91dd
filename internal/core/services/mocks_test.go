package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
)

// --- Mock implementations ---

type mockLoader struct {
	input *domain.Input
	err   error
	calls int
}

func (m *mockLoader) Load(_ string) (*domain.Input, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if err := m.input.Validate(); err != nil {
		return nil, fmt.Errorf("input.json: %w", err)
	}
	in := *m.input
	return &in, nil
}

type mockProvider struct {
	id       domain.ProviderID
	result   domain.ProviderResult
	err      error
	calls    int
	closed   bool
	language string
}

func (m *mockProvider) ID() domain.ProviderID { return m.id }

func (m *mockProvider) Analyze(_ context.Context, language string, _ []string) (domain.ProviderResult, error) {
	m.calls++
	m.language = language
	return m.result, m.err
}

func (m *mockProvider) Close() error {
	m.closed = true
	return nil
}

type mockFactory struct {
	providers map[domain.ProviderID]*mockProvider
	created   []domain.ProviderID
}

func (m *mockFactory) Create(_ context.Context, id domain.ProviderID) (driven.SentimentProvider, error) {
	if !id.IsValid() {
		return nil, errors.New("unknown provider")
	}
	m.created = append(m.created, id)
	p, ok := m.providers[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}


type mockWriter struct {
	combined *domain.CombinedResult
	rows     []domain.ReportRow
	target   domain.OutputTarget
	err      error
	calls    int
}

func (m *mockWriter) Write(target domain.OutputTarget, combined *domain.CombinedResult, rows []domain.ReportRow) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.target = target
	m.combined = combined
	m.rows = rows
	return nil
}

type mockReporter struct {
	events []string
}

func (m *mockReporter) ProviderStarted(id domain.ProviderID) {
	m.events = append(m.events, "start:"+id.String())
}

func (m *mockReporter) ProviderSkipped(id domain.ProviderID) {
	m.events = append(m.events, "skip:"+id.String())
}

func (m *mockReporter) Computing(id domain.ProviderID) func() {
	m.events = append(m.events, "computing:"+id.String())
	return func() { m.events = append(m.events, "stop:"+id.String()) }
}

func (m *mockReporter) ProviderSucceeded(id domain.ProviderID, _ domain.ProviderResult) {
	m.events = append(m.events, "ok:"+id.String())
}

func (m *mockReporter) ProviderFailed(id domain.ProviderID, _ error) {
	m.events = append(m.events, "fail:"+id.String())
}

func (m *mockReporter) ItemErrors(id domain.ProviderID, errs []domain.ItemError) {
	m.events = append(m.events, fmt.Sprintf("items:%s:%d", id, len(errs)))
}

func (m *mockReporter) Saving(_ domain.OutputTarget) { m.events = append(m.events, "saving") }

func (m *mockReporter) Done(_ *domain.RunSummary) { m.events = append(m.events, "done") }

// mockConfigStore is an in-memory driven.ConfigStore.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "/tmp/config.toml" }
