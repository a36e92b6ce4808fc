// Package sqlite provides a SQLite-based implementation of driven.HeadnoteStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. Each parse run is stored with its metadata; its headnotes are stored
// one row per record in document order, with list-valued fields as JSON text.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.headnotes/data/headnotes.db
package sqlite
