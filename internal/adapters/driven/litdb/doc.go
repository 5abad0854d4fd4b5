// Package litdb invokes the external litdb command-line tool as a
// blocking subprocess. Its output is treated as a constrained
// serialization format (tab-separated citation/source pairs, or raw
// text for gpt) and parsed explicitly; it is never interpreted as
// code or any richer syntax.
package litdb
