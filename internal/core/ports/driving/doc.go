// Package driving defines the interfaces through which the outside
// world drives the core: the CLI, the MCP server and the TUI depend on
// these, and the services package implements them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
