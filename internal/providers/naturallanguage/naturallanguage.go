package naturallanguage

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	language "google.golang.org/api/language/v1"
	"google.golang.org/api/option"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
	"github.com/custodia-labs/sentimeter/internal/logger"
	"github.com/custodia-labs/sentimeter/internal/providers"
)

// Verify interface compliance.
var _ driven.SentimentProvider = (*Provider)(nil)

const (
	documentType = "PLAIN_TEXT"
	encodingType = "UTF8"
)

// Provider calls documents.analyzeSentiment once per sentence.
type Provider struct {
	service *language.Service
	limiter *providers.RateLimiter
}

// New creates a Natural Language provider from a credentials file.
// The limiter may be nil to disable pacing.
func New(ctx context.Context, creds domain.GCPCredentials, limiter *providers.RateLimiter, timeout time.Duration) (*Provider, error) {
	data, err := os.ReadFile(creds.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("naturallanguage: read credentials: %w", err)
	}

	gcreds, err := google.CredentialsFromJSON(ctx, data, language.CloudLanguageScope)
	if err != nil {
		return nil, fmt.Errorf("naturallanguage: parse credentials: %w", err)
	}

	client := oauth2.NewClient(ctx, gcreds.TokenSource)
	client.Timeout = timeout

	return newWithOptions(ctx, limiter, option.WithHTTPClient(client))
}

// newWithOptions creates a provider with explicit client options.
func newWithOptions(ctx context.Context, limiter *providers.RateLimiter, opts ...option.ClientOption) (*Provider, error) {
	service, err := language.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("naturallanguage: create service: %w", err)
	}
	return &Provider{service: service, limiter: limiter}, nil
}

// ID returns the provider identifier.
func (p *Provider) ID() domain.ProviderID { return domain.ProviderGCP }

// Analyze analyses each sentence in order.
func (p *Provider) Analyze(ctx context.Context, lang string, sentences []string) (domain.ProviderResult, error) {
	result := &domain.NaturalLanguageResult{
		Responses: make([]domain.NaturalLanguageResponse, 0, len(sentences)),
	}

	for i, sentence := range sentences {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		logger.Debug("gcp: analyzing sentence %d of %d", i+1, len(sentences))

		resp, err := p.service.Documents.AnalyzeSentiment(&language.AnalyzeSentimentRequest{
			Document: &language.Document{
				Content:  sentence,
				Language: lang,
				Type:     documentType,
			},
			EncodingType: encodingType,
		}).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, WrapError(err))
		}

		result.Responses = append(result.Responses, convert(resp))
	}

	return result, nil
}

// Close implements driven.SentimentProvider.
func (p *Provider) Close() error { return nil }

func convert(resp *language.AnalyzeSentimentResponse) domain.NaturalLanguageResponse {
	out := domain.NaturalLanguageResponse{
		Language:  resp.Language,
		Sentences: make([]domain.NaturalLanguageSentence, 0, len(resp.Sentences)),
	}
	if resp.DocumentSentiment != nil {
		out.DocumentSentiment = convertSentiment(resp.DocumentSentiment)
	}
	for _, s := range resp.Sentences {
		if s == nil {
			continue
		}
		sentence := domain.NaturalLanguageSentence{}
		if s.Text != nil {
			sentence.Text = domain.NaturalLanguageText{Content: s.Text.Content, BeginOffset: s.Text.BeginOffset}
		}
		if s.Sentiment != nil {
			sentence.Sentiment = convertSentiment(s.Sentiment)
		}
		out.Sentences = append(out.Sentences, sentence)
	}
	return out
}

func convertSentiment(s *language.Sentiment) domain.NaturalLanguageSentiment {
	return domain.NaturalLanguageSentiment{Magnitude: s.Magnitude, Score: s.Score}
}
