// Package textanalytics analyses sentiment with the Azure Text Analytics REST API.
package textanalytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
	"github.com/custodia-labs/sentimeter/internal/logger"
	"github.com/custodia-labs/sentimeter/internal/providers"
)

// Verify interface compliance.
var _ driven.SentimentProvider = (*Provider)(nil)

const (
	// MaxBatchSize is the most documents a sentiment request accepts.
	MaxBatchSize = 10

	sentimentPath = "/text/analytics/v3.1/sentiment"
	keyHeader     = "Ocp-Apim-Subscription-Key" //nolint:gosec // G101: header name, not a credential
)

// Provider calls the v3.1 sentiment endpoint in chunks.
type Provider struct {
	endpoint string
	key      string
	client   *http.Client
}

// New creates a Text Analytics provider.
func New(creds domain.AzureCredentials, timeout time.Duration) (*Provider, error) {
	if !creds.IsConfigured() {
		return nil, fmt.Errorf("textanalytics: endpoint and key are required")
	}
	return &Provider{
		endpoint: strings.TrimRight(creds.Endpoint, "/"),
		key:      creds.Key,
		client:   providers.NewHTTPClient(timeout),
	}, nil
}

// ID returns the provider identifier.
func (p *Provider) ID() domain.ProviderID { return domain.ProviderAzure }

// request types.
type document struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

type sentimentRequest struct {
	Documents []document `json:"documents"`
}

// response types.
type documentError struct {
	ID    string                    `json:"id"`
	Error domain.TextAnalyticsError `json:"error"`
}

type sentimentResponse struct {
	Documents    []domain.TextAnalyticsDocument `json:"documents"`
	Errors       []documentError                `json:"errors"`
	ModelVersion string                         `json:"modelVersion"`
}

// Analyze submits the sentences in chunks of MaxBatchSize.
// Documents in the result are ordered by sentence; per-document errors
// are kept in place.
func (p *Provider) Analyze(ctx context.Context, language string, sentences []string) (domain.ProviderResult, error) {
	docs := make([]domain.TextAnalyticsDocument, len(sentences))
	for i := range docs {
		docs[i].ID = strconv.Itoa(i)
	}
	result := &domain.TextAnalyticsResult{Documents: docs}

	for start := 0; start < len(sentences); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(sentences))
		logger.Debug("textanalytics: batch %d-%d of %d", start, end-1, len(sentences))

		req := sentimentRequest{Documents: make([]document, 0, end-start)}
		for i := start; i < end; i++ {
			req.Documents = append(req.Documents, document{
				ID:       strconv.Itoa(i),
				Language: language,
				Text:     sentences[i],
			})
		}

		resp, err := p.send(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := merge(result, resp, start, end); err != nil {
			return nil, err
		}
		if result.ModelVersion == "" {
			result.ModelVersion = resp.ModelVersion
		}
	}

	return result, nil
}

// Close implements driven.SentimentProvider.
func (p *Provider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

func (p *Provider) send(ctx context.Context, body sentimentRequest) (*sentimentResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+sentimentPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(keyHeader, p.key)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := providers.CheckResponse(domain.ProviderAzure, resp); err != nil {
		return nil, err
	}

	var decoded sentimentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &decoded, nil
}

// merge places each returned document or error at its sentence index.
// Every id in [start, end) must be answered exactly once.
func merge(result *domain.TextAnalyticsResult, resp *sentimentResponse, start, end int) error {
	filled := make([]bool, end-start)
	index := func(id string) (int, error) {
		i, err := strconv.Atoi(id)
		if err != nil || i < start || i >= end {
			return 0, fmt.Errorf("unexpected document id %q in response", id)
		}
		if filled[i-start] {
			return 0, fmt.Errorf("duplicate document id %q in response", id)
		}
		filled[i-start] = true
		return i, nil
	}

	for _, doc := range resp.Documents {
		i, err := index(doc.ID)
		if err != nil {
			return err
		}
		result.Documents[i] = doc
	}
	for _, e := range resp.Errors {
		i, err := index(e.ID)
		if err != nil {
			return err
		}
		docErr := e.Error
		result.Documents[i] = domain.TextAnalyticsDocument{ID: e.ID, Error: &docErr}
	}
	for i, ok := range filled {
		if !ok {
			return fmt.Errorf("response is missing document %d", start+i)
		}
	}
	return nil
}
