// Package database provides the persistence layer for card sets, cards
// and application settings on top of GORM and SQLite.
//
// The Database type is the single entry point. It owns the connection,
// runs migrations on startup and exposes typed operations grouped by
// concern:
//
//   - sets.go      card set and card CRUD
//   - settings.go  key-value application settings
//   - audit/       audit event repository (separate subpackage)
//
// Deleting a set always cascades to its cards inside one transaction.
// The import processor relies on this guarantee for its rollback step.
package database
