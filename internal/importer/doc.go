// Package importer implements the text-import pipeline for card sets.
//
// The pipeline has three stages, each usable on its own:
//
//	draft, err := importer.Parse(text)        // raw text -> Draft
//	errs := importer.Validate(draft)          // field-level checks
//	result, err := processor.Process(draft)   // persist with rollback
//
// Parse understands a line-oriented format: the first line is the set
// name, the second the description, and the remaining lines form cards.
// A card starts with a question line; following non-blank lines build a
// multi-line answer; a blank line closes the card.
//
//	Math Basics
//	Basic arithmetic questions
//
//	What is 2+2?
//	4
//
//	What is 5x5?
//	25
//
// Validate re-checks a structured draft independently of how it was
// produced and returns all field errors instead of stopping at the
// first, which makes it suitable for import previews.
//
// Process persists a draft through the Store contract. Creation is
// all-or-nothing: every step records a compensating action, and on any
// failure the recorded actions run in reverse order so that no
// half-imported set survives. A failure during compensation itself is
// recorded for operator follow-up but not escalated.
//
// Two error kinds cross the package boundary: ParseError for syntactic
// problems in the text (with optional line and field context) and
// ImportError for semantic or persistence failures (with optional
// structured details). Both are client errors, never fatal.
package importer
