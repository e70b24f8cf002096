// Package sqlite persists study collections to a local SQLite database.
//
// # Architectural Position
//
// This is a driven adapter. The core never touches SQL; it hands the
// archive a snapshot of studies and gets one back. The database is a
// durable copy of a session's collection, not a live store: reads and
// writes are whole-collection operations.
//
// # Import Rules
//
//   - May import core/domain and the SQLite driver.
//   - Must not import services or driving adapters.
package sqlite
