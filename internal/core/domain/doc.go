// Package domain defines the core business entities for litorg.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A bibliographic record from the litdb database
//   - Candidate: A (citation, source) pair offered at link insertion
//   - Buffer: Editor text with link-occurrence annotations
//   - LinkOccurrence / Annotation: Annotated litdb link spans
//   - CursorContext: The classified insertion context at a point
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
