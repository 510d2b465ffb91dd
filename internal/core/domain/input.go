package domain

import (
	"fmt"
	"strings"
)

// Input is the document the analysis runs over.
type Input struct {
	// Language is the language code passed to every provider (e.g. "en").
	Language string `json:"language"`

	// Sentences are analysed in order. Result arrays follow this order.
	Sentences []string `json:"sentences"`
}

// Validate checks the input invariants: a non-empty language and
// a non-empty list of non-blank sentences.
func (in *Input) Validate() error {
	if strings.TrimSpace(in.Language) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrMissingLanguage)
	}
	if len(in.Sentences) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoSentences)
	}
	for i, s := range in.Sentences {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: %w: sentence %d is empty", ErrInvalidInput, ErrNoSentences, i)
		}
	}
	return nil
}

// Normalise trims surrounding whitespace from the language code.
func (in *Input) Normalise() {
	in.Language = strings.TrimSpace(in.Language)
}
