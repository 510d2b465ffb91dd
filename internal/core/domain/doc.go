// Package domain defines the core business entities for sentimeter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Input: The language code and ordered sentences to analyse
//   - ProviderID: One of the four cloud sentiment services
//   - ProviderResult: A provider's response, one concrete type per provider
//   - CombinedResult: The per-run aggregation keyed by provider
//   - ReportRow: One sentence zipped with a score per provider
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
