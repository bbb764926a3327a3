// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/costanza-quotes/internal/domain"
	"github.com/jsamuelsen/costanza-quotes/internal/ports"
)

const quotesEntity = "quotes"

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics if no repository is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteService requires a Repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger,
	}
}

// ListQuotes returns every stored quote. An empty store is not an error.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes", slog.Any("error", err))
		return nil, err
	}

	s.logger.DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// RandomQuote returns one quote chosen uniformly from all stored quotes.
func (s *QuoteService) RandomQuote(ctx context.Context) (domain.Quote, error) {
	q, err := s.repo.Random(ctx, nil)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Quote{}, domain.NewNotFoundError(quotesEntity)
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to pick random quote", slog.Any("error", err))
		return domain.Quote{}, err
	}

	return q, nil
}

// RandomQuoteBy returns one quote chosen uniformly from those whose
// character equals character exactly.
func (s *QuoteService) RandomQuoteBy(ctx context.Context, character string) (domain.Quote, error) {
	q, err := s.repo.Random(ctx, &character)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Quote{}, domain.NewNotFoundErrorFor(quotesEntity, fmt.Sprintf("character %q", character))
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to pick random quote",
			slog.String("character", character),
			slog.Any("error", err),
		)

		return domain.Quote{}, err
	}

	return q, nil
}

// RandomFrankQuote returns a random Frank Costanza quote.
func (s *QuoteService) RandomFrankQuote(ctx context.Context) (domain.Quote, error) {
	return s.RandomQuoteBy(ctx, domain.FrankCostanza)
}

// RandomGeorgeQuote returns a random George Costanza quote.
func (s *QuoteService) RandomGeorgeQuote(ctx context.Context) (domain.Quote, error) {
	return s.RandomQuoteBy(ctx, domain.GeorgeCostanza)
}

// QuotesByCharacter returns quotes whose character contains substr,
// case-insensitively. No match, or an empty substr, is a not found error.
func (s *QuoteService) QuotesByCharacter(ctx context.Context, substr string) ([]domain.Quote, error) {
	if substr == "" {
		return nil, domain.NewNotFoundErrorFor(quotesEntity, "an empty character")
	}

	quotes, err := s.repo.FindByCharacter(ctx, substr)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to filter quotes",
			slog.String("character", substr),
			slog.Any("error", err),
		)

		return nil, err
	}

	if len(quotes) == 0 {
		return nil, domain.NewNotFoundErrorFor(quotesEntity, fmt.Sprintf("character matching %q", substr))
	}

	return quotes, nil
}

// CreateQuote stores a new quote. A quote whose text is already stored is
// rejected with a conflict; the storage constraint backs up the pre-check.
func (s *QuoteService) CreateQuote(ctx context.Context, in domain.NewQuote) (domain.Quote, error) {
	if err := in.Validate(); err != nil {
		return domain.Quote{}, err
	}

	exists, err := s.repo.ExistsByText(ctx, in.Text)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check quote text", slog.Any("error", err))
		return domain.Quote{}, err
	}

	if exists {
		return domain.Quote{}, domain.NewDuplicateQuoteError(in.Text)
	}

	q, err := s.repo.Create(ctx, in)
	if err != nil {
		if !domain.IsConflict(err) {
			s.logger.ErrorContext(ctx, "failed to create quote", slog.Any("error", err))
		}

		return domain.Quote{}, err
	}

	s.logger.InfoContext(ctx, "created quote",
		slog.Int64("quote_id", q.ID),
		slog.String("character", q.Character),
	)

	return q, nil
}

// CreateQuotes stores a batch of quotes all-or-nothing. Items are checked in
// order and the first duplicate, against storage or an earlier item, rejects
// the whole batch.
func (s *QuoteService) CreateQuotes(ctx context.Context, batch []domain.NewQuote) ([]domain.Quote, error) {
	for i, in := range batch {
		if err := in.Validate(); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				return nil, domain.NewValidationErrorWithValue(fmt.Sprintf("[%d].%s", i, verr.Field), verr.Message, verr.Value)
			}

			return nil, err
		}
	}

	created, err := s.repo.CreateBatch(ctx, batch)
	if err != nil {
		if domain.IsConflict(err) {
			s.logger.InfoContext(ctx, "rejected quote batch", slog.Int("size", len(batch)), slog.String("reason", err.Error()))
		} else {
			s.logger.ErrorContext(ctx, "failed to create quote batch", slog.Any("error", err))
		}

		return nil, err
	}

	s.logger.InfoContext(ctx, "created quote batch", slog.Int("count", len(created)))

	return created, nil
}
