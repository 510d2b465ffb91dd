// Package comprehend analyses sentiment with Amazon Comprehend.
package comprehend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"
	"github.com/aws/smithy-go"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
	"github.com/custodia-labs/sentimeter/internal/logger"
	"github.com/custodia-labs/sentimeter/internal/providers"
)

// Verify interface compliance.
var _ driven.SentimentProvider = (*Provider)(nil)

// MaxBatchSize is the most documents BatchDetectSentiment accepts per call.
const MaxBatchSize = 25

// comprehendAPI is the subset of the Comprehend client used here.
type comprehendAPI interface {
	BatchDetectSentiment(
		ctx context.Context,
		params *comprehend.BatchDetectSentimentInput,
		optFns ...func(*comprehend.Options),
	) (*comprehend.BatchDetectSentimentOutput, error)
}

// Provider calls BatchDetectSentiment in chunks.
type Provider struct {
	client comprehendAPI
}

// New creates a Comprehend provider with static credentials.
// SDK retries are disabled; a failed request fails the run.
func New(creds domain.AWSCredentials, timeout time.Duration) (*Provider, error) {
	if !creds.IsConfigured() {
		return nil, fmt.Errorf("comprehend: access key and secret are required")
	}
	region := creds.Region
	if region == "" {
		region = "us-east-1"
	}

	cfg := aws.Config{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken,
		),
		Retryer:    func() aws.Retryer { return aws.NopRetryer{} },
		HTTPClient: providers.NewHTTPClient(timeout),
	}

	return &Provider{client: comprehend.NewFromConfig(cfg)}, nil
}

// newWithClient creates a provider around an existing client.
func newWithClient(client comprehendAPI) *Provider {
	return &Provider{client: client}
}

// ID returns the provider identifier.
func (p *Provider) ID() domain.ProviderID { return domain.ProviderAWS }

// Analyze submits the sentences in chunks of MaxBatchSize.
// Item indices in the result refer to positions in sentences.
func (p *Provider) Analyze(ctx context.Context, language string, sentences []string) (domain.ProviderResult, error) {
	result := &domain.ComprehendResult{
		ResultList: []domain.ComprehendItem{},
		ErrorList:  []domain.ComprehendItemError{},
	}

	for start := 0; start < len(sentences); start += MaxBatchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+MaxBatchSize, len(sentences))
		logger.Debug("comprehend: batch %d-%d of %d", start, end-1, len(sentences))

		out, err := p.client.BatchDetectSentiment(ctx, &comprehend.BatchDetectSentimentInput{
			LanguageCode: types.LanguageCode(language),
			TextList:     sentences[start:end],
		})
		if err != nil {
			return nil, WrapError(err)
		}

		appendOutput(result, out, start)
	}

	result.Sort()
	return result, nil
}

// Close implements driven.SentimentProvider.
func (p *Provider) Close() error { return nil }

// appendOutput converts one batch response, rebasing indices by offset.
func appendOutput(result *domain.ComprehendResult, out *comprehend.BatchDetectSentimentOutput, offset int) {
	for _, item := range out.ResultList {
		converted := domain.ComprehendItem{
			Index:     offset + int(aws.ToInt32(item.Index)),
			Sentiment: string(item.Sentiment),
		}
		if score := item.SentimentScore; score != nil {
			converted.SentimentScore = domain.ComprehendScore{
				Positive: float64(aws.ToFloat32(score.Positive)),
				Negative: float64(aws.ToFloat32(score.Negative)),
				Neutral:  float64(aws.ToFloat32(score.Neutral)),
				Mixed:    float64(aws.ToFloat32(score.Mixed)),
			}
		}
		result.ResultList = append(result.ResultList, converted)
	}

	for _, item := range out.ErrorList {
		result.ErrorList = append(result.ErrorList, domain.ComprehendItemError{
			Index:        offset + int(aws.ToInt32(item.Index)),
			ErrorCode:    aws.ToString(item.ErrorCode),
			ErrorMessage: aws.ToString(item.ErrorMessage),
		})
	}
}

// WrapError annotates an SDK error with a domain error where it can be classified.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if IsUnauthorized(err) {
		return fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
	}
	if IsRateLimited(err) {
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}
	return err
}

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "UnrecognizedClientException", "InvalidSignatureException",
			"AccessDeniedException", "ExpiredTokenException", "InvalidClientTokenId":
			return true
		}
	}
	return statusCode(err) == http.StatusUnauthorized || statusCode(err) == http.StatusForbidden
}

// IsRateLimited returns true if the error indicates throttling.
func IsRateLimited(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "TooManyRequestsException":
			return true
		}
	}
	return statusCode(err) == http.StatusTooManyRequests
}

func statusCode(err error) int {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode()
	}
	return 0
}
