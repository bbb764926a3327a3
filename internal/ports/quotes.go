// Package ports defines the interfaces between the application core and its adapters.
package ports

import (
	"context"

	"github.com/jsamuelsen/costanza-quotes/internal/domain"
)

// QuoteRepository persists and queries quotes.
//
// Implementations read the request-scoped session from ctx when one has been
// acquired (see SessionProvider) and fall back to their own connection pool
// otherwise. Lookups that match nothing return an error wrapping
// domain.ErrNotFound. Inserts that would duplicate stored text return a
// *domain.ConflictError.
type QuoteRepository interface {
	// List returns every stored quote in storage order. An empty table yields
	// an empty slice, not an error.
	List(ctx context.Context) ([]domain.Quote, error)

	// Random returns one quote chosen uniformly at random. A non-nil character
	// restricts the choice to quotes whose character equals it exactly.
	Random(ctx context.Context, character *string) (domain.Quote, error)

	// FindByCharacter returns quotes whose character contains substr,
	// compared case-insensitively. No matches yields an empty slice.
	FindByCharacter(ctx context.Context, substr string) ([]domain.Quote, error)

	// ExistsByText reports whether a quote with exactly this text is stored.
	ExistsByText(ctx context.Context, text string) (bool, error)

	// Create inserts one quote and returns it with its assigned ID.
	Create(ctx context.Context, quote domain.NewQuote) (domain.Quote, error)

	// CreateBatch inserts all quotes in one transaction, in order. Each item is
	// checked against storage as it stands at that moment, so an item that
	// repeats an earlier one in the same batch is also a conflict. On any
	// error nothing from the batch is stored.
	CreateBatch(ctx context.Context, quotes []domain.NewQuote) ([]domain.Quote, error)
}

// SessionProvider hands out request-scoped storage sessions.
//
// Acquire checks out one session and returns a context carrying it together
// with a release function. The caller must call release exactly once when
// the unit of work ends, whether it succeeded or not.
type SessionProvider interface {
	Acquire(ctx context.Context) (context.Context, func(), error)
}
