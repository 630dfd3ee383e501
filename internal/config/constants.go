package config

const (
	// DefaultDatabasePath is the default location of the SQLite database.
	DefaultDatabasePath = "./flashcards.db"

	// DefaultAuditRetentionDays is how long audit events are kept when no
	// retention is configured.
	DefaultAuditRetentionDays = 30
)
