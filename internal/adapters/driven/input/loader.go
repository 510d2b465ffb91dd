// Package input reads the analysis input document from a JSON file.
package input

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.InputLoader = (*Loader)(nil)

// Loader reads {"language": ..., "sentences": [...]} documents.
// Unknown fields are ignored.
type Loader struct{}

// NewLoader creates a new JSON input loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, normalises and validates the document at path.
func (l *Loader) Load(path string) (*domain.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	var in domain.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %s: malformed JSON: %w", domain.ErrInvalidInput, path, err)
	}

	in.Normalise()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &in, nil
}
