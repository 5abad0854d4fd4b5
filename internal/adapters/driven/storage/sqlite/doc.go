// Package sqlite provides read-only access to a litdb database.
//
// The database is created and owned by the litdb command-line tool;
// this adapter only ever reads it. It implements the driven.RecordStore
// port against the litdb schema:
//
//	sources(source TEXT PRIMARY KEY, text TEXT, extra JSON)
//	fulltext(source, text)  -- FTS5
package sqlite
