// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RecordStore: Read-only access to the litdb database
//   - DocumentParser: Locates litdb links in a structured-text document
//   - Clock: Time source for cache freshness decisions
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - LitdbRunner: The external litdb CLI. Without it, semantic search,
//     similarity search and the ask feature are disabled; annotation,
//     insertion and export still work.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
