package http

import (
	"github.com/Jocko2121/flashcard-app/internal/audit"
	"github.com/Jocko2121/flashcard-app/internal/database"
	"github.com/Jocko2121/flashcard-app/internal/importer"
	"github.com/Jocko2121/flashcard-app/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Importer *importer.Processor
	Auditor  *audit.Service

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
