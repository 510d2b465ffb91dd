package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingLanguage indicates the input document has no language code.
	ErrMissingLanguage = errors.New("language not defined")

	// ErrNoSentences indicates the input document has no sentences.
	ErrNoSentences = errors.New("invalid sentences array")

	// ErrUnsupportedProvider indicates an unknown provider identifier.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// Provider Errors.

	// ErrProviderFailed indicates a provider request failed.
	// Any provider failure halts the run and no output is written.
	// The progress reporter has already shown errors wrapping it.
	ErrProviderFailed = errors.New("provider request failed")

	// ErrAuthInvalid indicates the provider rejected the credentials.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrRateLimited indicates the provider's rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrTokenRefreshFailed indicates an access token could not be obtained.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// Output Errors.

	// ErrOutput indicates the results or report could not be written.
	ErrOutput = errors.New("output failed")

	// ErrUnknownSetting indicates a settings key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)
