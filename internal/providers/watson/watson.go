// Package watson analyses sentiment with IBM Watson Natural Language Understanding.
package watson

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/IBM/go-sdk-core/v5/core"
	nlu "github.com/watson-developer-cloud/go-sdk/v3/naturallanguageunderstandingv1"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
	"github.com/custodia-labs/sentimeter/internal/logger"
	"github.com/custodia-labs/sentimeter/internal/providers"
)

// Verify interface compliance.
var _ driven.SentimentProvider = (*Provider)(nil)

// DefaultVersion is the API version date sent with each request.
const DefaultVersion = "2020-08-01"

// DefaultIAMURL is the IBM Cloud IAM token endpoint.
const DefaultIAMURL = "https://iam.cloud.ibm.com/identity/token"

// Provider calls /v1/analyze once per sentence.
type Provider struct {
	service *nlu.NaturalLanguageUnderstandingV1
	auth    *core.IamAuthenticator
	client  *http.Client
	limiter *providers.RateLimiter
}

// New creates a Watson provider. The IAM authenticator exchanges the API key
// for a bearer token and caches it until expiry. Retries stay disabled.
// The limiter may be nil to disable pacing.
func New(creds domain.IBMCredentials, limiter *providers.RateLimiter, timeout time.Duration) (*Provider, error) {
	if !creds.IsConfigured() {
		return nil, fmt.Errorf("watson: api key and url are required")
	}

	iamURL := creds.IAMURL
	if iamURL == "" {
		iamURL = DefaultIAMURL
	}
	version := creds.Version
	if version == "" {
		version = DefaultVersion
	}

	client := providers.NewHTTPClient(timeout)
	auth, err := core.NewIamAuthenticatorBuilder().
		SetApiKey(creds.APIKey).
		SetURL(iamURL).
		Build()
	if err != nil {
		return nil, fmt.Errorf("watson: authenticator: %w", err)
	}
	auth.Client = client

	service, err := nlu.NewNaturalLanguageUnderstandingV1(&nlu.NaturalLanguageUnderstandingV1Options{
		URL:           strings.TrimRight(creds.URL, "/"),
		Version:       core.StringPtr(version),
		Authenticator: auth,
	})
	if err != nil {
		return nil, fmt.Errorf("watson: create service: %w", err)
	}
	service.DisableRetries()
	service.Service.SetHTTPClient(client)

	return &Provider{
		service: service,
		auth:    auth,
		client:  client,
		limiter: limiter,
	}, nil
}

// ID returns the provider identifier.
func (p *Provider) ID() domain.ProviderID { return domain.ProviderIBM }

// Analyze analyses each sentence in order.
func (p *Provider) Analyze(ctx context.Context, language string, sentences []string) (domain.ProviderResult, error) {
	if _, err := p.auth.GetToken(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTokenRefreshFailed, WrapError(nil, err))
	}

	result := &domain.WatsonResult{
		Responses: make([]domain.WatsonResponse, 0, len(sentences)),
	}

	for i, sentence := range sentences {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		logger.Debug("ibm: analyzing sentence %d of %d", i+1, len(sentences))

		opts := p.service.NewAnalyzeOptions(&nlu.Features{
			Sentiment: &nlu.SentimentOptions{Document: core.BoolPtr(true)},
		}).SetText(sentence).SetLanguage(language)

		analysis, resp, err := p.service.AnalyzeWithContext(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, WrapError(resp, err))
		}
		result.Responses = append(result.Responses, convert(analysis))
	}

	return result, nil
}

// Close implements driven.SentimentProvider.
func (p *Provider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

func convert(r *nlu.AnalysisResults) domain.WatsonResponse {
	var out domain.WatsonResponse
	if r == nil {
		return out
	}
	out.Language = value(r.Language)
	if r.Sentiment != nil && r.Sentiment.Document != nil {
		out.Sentiment.Document = domain.WatsonDocumentSentiment{
			Score: value(r.Sentiment.Document.Score),
			Label: value(r.Sentiment.Document.Label),
		}
	}
	if r.Usage != nil {
		out.Usage = &domain.WatsonUsage{
			TextUnits:      int(value(r.Usage.TextUnits)),
			TextCharacters: int(value(r.Usage.TextCharacters)),
			Features:       int(value(r.Usage.Features)),
		}
	}
	return out
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
