// Package domain contains core business entities and rules.
package domain

import "strings"

// Characters with dedicated random-quote endpoints.
const (
	FrankCostanza  = "Frank Costanza"
	GeorgeCostanza = "George Costanza"
)

// Quote is a single stored line of dialogue with its show metadata.
// This is a domain entity - it has no knowledge of external systems.
// Once created a Quote is never modified.
type Quote struct {
	// ID is assigned by storage and increases with creation order.
	ID int64

	// Text is the quotation itself. It is unique across all quotes.
	Text string

	// Season and Episode locate the quote in the show.
	Season  int
	Episode int

	// Character is the free-form name of whoever said it.
	Character string
}

// NewQuote is the input for creating a Quote. It carries everything but the ID.
type NewQuote struct {
	Text      string
	Season    int
	Episode   int
	Character string
}

// Validate checks the business rules for a quote before it is persisted.
func (q NewQuote) Validate() error {
	switch {
	case strings.TrimSpace(q.Text) == "":
		return NewValidationError("quote", "must not be empty")
	case strings.TrimSpace(q.Character) == "":
		return NewValidationError("character", "must not be empty")
	case q.Season < 0:
		return NewValidationErrorWithValue("season", "must not be negative", q.Season)
	case q.Episode < 0:
		return NewValidationErrorWithValue("episode", "must not be negative", q.Episode)
	}

	return nil
}
