package naturallanguage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/providers"
)

type analyzeRequest struct {
	Document struct {
		Content  string `json:"content"`
		Language string `json:"language"`
		Type     string `json:"type"`
	} `json:"document"`
	EncodingType string `json:"encodingType"`
}

// newTestServer scores sentences containing "love" as 0.9 and others as -0.4.
func newTestServer(t *testing.T, requests *[]analyzeRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/documents:analyzeSentiment", r.URL.Path)

		var req analyzeRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		*requests = append(*requests, req)

		score := -0.4
		if strings.Contains(req.Document.Content, "love") {
			score = 0.9
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"documentSentiment": map[string]any{"magnitude": 0.9, "score": score},
			"language":          req.Document.Language,
			"sentences": []map[string]any{{
				"text":      map[string]any{"content": req.Document.Content, "beginOffset": 0},
				"sentiment": map[string]any{"magnitude": 0.9, "score": score},
			}},
		})
	}))
}

func newTestProvider(t *testing.T, url string, limiter *providers.RateLimiter) *Provider {
	t.Helper()
	p, err := newWithOptions(context.Background(), limiter,
		option.WithEndpoint(url+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return p
}

func TestProvider_Analyze(t *testing.T) {
	var requests []analyzeRequest
	server := newTestServer(t, &requests)
	defer server.Close()

	p := newTestProvider(t, server.URL, providers.NewRateLimiter(1000))
	result, err := p.Analyze(context.Background(), "en", []string{"I love it.", "I hate it."})

	require.NoError(t, err)
	r, ok := result.(*domain.NaturalLanguageResult)
	require.True(t, ok)
	require.Len(t, r.Responses, 2)
	assert.Equal(t, 0.9, r.Responses[0].DocumentSentiment.Score)
	assert.Equal(t, -0.4, r.Responses[1].DocumentSentiment.Score)
	assert.Equal(t, "en", r.Responses[0].Language)
	require.Len(t, r.Responses[0].Sentences, 1)
	assert.Equal(t, "I love it.", r.Responses[0].Sentences[0].Text.Content)

	require.Len(t, requests, 2)
	assert.Equal(t, "PLAIN_TEXT", requests[0].Document.Type)
	assert.Equal(t, "UTF8", requests[0].EncodingType)
	assert.Equal(t, "en", requests[0].Document.Language)
	assert.Equal(t, "I hate it.", requests[1].Document.Content)

	score, ok := r.Score(1)
	assert.True(t, ok)
	assert.Equal(t, "-0.4", score)
	assert.NoError(t, p.Close())
}

func TestProvider_Analyze_APIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"permission denied", http.StatusForbidden, domain.ErrAuthInvalid},
		{"quota", http.StatusTooManyRequests, domain.ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprintf(w, `{"error":{"code":%d,"message":"denied"}}`, tt.status)
			}))
			defer server.Close()

			_, err := newTestProvider(t, server.URL, nil).Analyze(context.Background(), "en", []string{"a", "b"})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Contains(t, err.Error(), "sentence 0")
		})
	}
}

func TestProvider_Analyze_StopsAtFirstFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 2 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"The language xx is not supported"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"documentSentiment":{"score":0.1},"language":"xx","sentences":[]}`))
	}))
	defer server.Close()

	_, err := newTestProvider(t, server.URL, nil).Analyze(context.Background(), "xx", []string{"a", "b", "c"})

	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, int32(2), calls.Load())
}

func TestProvider_Analyze_Cancelled(t *testing.T) {
	var requests []analyzeRequest
	server := newTestServer(t, &requests)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProvider(t, server.URL, providers.NewRateLimiter(5)).Analyze(ctx, "en", []string{"a"})

	require.Error(t, err)
	assert.Empty(t, requests)
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil))

	unauth := &googleapi.Error{Code: http.StatusUnauthorized}
	assert.True(t, errors.Is(WrapError(unauth), domain.ErrAuthInvalid))
	assert.True(t, IsUnauthorized(unauth))

	plain := errors.New("boom")
	assert.Equal(t, plain, WrapError(plain))
	assert.False(t, IsRateLimited(plain))
}

func TestNew_CredentialsFile(t *testing.T) {
	dir := t.TempDir()

	_, err := New(context.Background(), domain.GCPCredentials{CredentialsFile: filepath.Join(dir, "missing.json")}, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read credentials")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o600))
	_, err = New(context.Background(), domain.GCPCredentials{CredentialsFile: bad}, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse credentials")
}

func TestProvider_ID(t *testing.T) {
	p := newTestProvider(t, "http://localhost", nil)
	assert.Equal(t, domain.ProviderGCP, p.ID())
}
