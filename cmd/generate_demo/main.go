// Command generate_demo creates a demo database with sample flashcard sets.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/Jocko2121/flashcard-app/internal/database"
	"github.com/Jocko2121/flashcard-app/internal/importer"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	processor := importer.NewProcessor(db, nil)

	for _, text := range demoSets() {
		draft, err := importer.Parse(text)
		if err != nil {
			log.Fatalf("Failed to parse demo set: %v", err)
		}
		result, err := processor.Process(draft)
		if err != nil {
			log.Fatalf("Failed to import demo set %q: %v", draft.Name, err)
		}
		log.Printf("Saved: %s (%d cards)", result.Set.Name, len(result.Cards))
	}

	log.Println("Demo database generated successfully!")
}

// demoSets returns sample sets in the plain-text import format, the
// same format users paste into the import screen.
func demoSets() []string {
	return []string{
		`World Capitals
Capital cities of well-known countries

What is the capital of France?
Paris

What is the capital of Japan?
Tokyo

What is the capital of Australia?
Canberra

What is the capital of Canada?
Ottawa

What is the capital of Brazil?
Brasília
`,
		`Basic Spanish
Everyday Spanish vocabulary

How do you say "hello" in Spanish?
Hola

How do you say "thank you" in Spanish?
Gracias

How do you say "goodbye" in Spanish?
Adiós

How do you say "please" in Spanish?
Por favor
`,
		`Chemistry Elements
Symbols from the periodic table

What is the chemical symbol for gold?
Au

What is the chemical symbol for iron?
Fe

What is the chemical symbol for sodium?
Na

Name the first three elements of the periodic table
Hydrogen
Helium
Lithium
`,
		`Programming Concepts
Computer science fundamentals

What does API stand for?
Application Programming Interface

What is a race condition?
A bug where the outcome depends on the timing of concurrent operations

What does idempotent mean?
An operation that produces the same result whether applied once or many times
`,
	}
}
