// Package cli implements the command-line subcommands.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/Jocko2121/flashcard-app/internal/config"
	"github.com/Jocko2121/flashcard-app/internal/database"
	"github.com/Jocko2121/flashcard-app/internal/importer"
)

// ImportTextCommand imports a plain-text flashcard file into the
// database, running the same parse/validate/process pipeline as the
// HTTP import endpoint.
type ImportTextCommand struct {
	FilePath     string
	DatabasePath string
	Verbose      bool
	DryRun       bool
}

func NewImportTextCommand() *ImportTextCommand {
	return &ImportTextCommand{}
}

func (cmd *ImportTextCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-text", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the flashcard text file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse and validate without writing to the database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-text -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import a flashcard set from a plain-text file.\n\n")
		fmt.Fprintf(os.Stderr, "File format: first line is the set name, second line the description,\n")
		fmt.Fprintf(os.Stderr, "then question/answer blocks separated by blank lines:\n\n")
		fmt.Fprintf(os.Stderr, "  Math Basics\n")
		fmt.Fprintf(os.Stderr, "  Basic arithmetic questions\n\n")
		fmt.Fprintf(os.Stderr, "  What is 2+2?\n")
		fmt.Fprintf(os.Stderr, "  4\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Import a set:\n")
		fmt.Fprintf(os.Stderr, "  %s import-text -file cards.txt\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview what would be imported:\n")
		fmt.Fprintf(os.Stderr, "  %s import-text -file cards.txt -dry-run -verbose\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportTextCommand) Run() error {
	fmt.Println("Text Import")
	fmt.Println("===========")

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	data, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	fmt.Printf("File: %s\n", cmd.FilePath)

	draft, err := importer.Parse(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}

	fmt.Printf("Parsed set %q with %d cards\n", draft.Name, len(draft.Cards))

	if errs := importer.Validate(draft); len(errs) > 0 {
		fmt.Println("\nValidation failed:")
		for _, e := range errs {
			fmt.Printf("  %s: %s\n", e.Field, e.Message)
		}
		return fmt.Errorf("%d validation errors", len(errs))
	}

	if cmd.Verbose {
		fmt.Println("\n=== Cards ===")
		for i, card := range draft.Cards {
			fmt.Printf("%d. Q: %s\n   A: %s\n", i+1, card.Question, card.Answer)
		}
	}

	if cmd.DryRun {
		fmt.Println("\nDry run complete. Nothing was imported.")
		return nil
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	processor := importer.NewProcessor(db, nil)
	result, err := processor.Process(draft)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("\nImported set %q (id %d) with %d cards\n", result.Set.Name, result.Set.ID, len(result.Cards))
	return nil
}
