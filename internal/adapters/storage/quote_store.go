package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/costanza-quotes/internal/domain"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/logging"
	"github.com/jsamuelsen/costanza-quotes/internal/ports"
)

const tracerName = "github.com/jsamuelsen/costanza-quotes/internal/adapters/storage"

const quoteColumns = `id, quote, season, episode, "character"`

// Queries are written with ? placeholders and rebound per dialect.
const (
	queryListQuotes            = `SELECT ` + quoteColumns + ` FROM quotes ORDER BY id`
	queryRandomQuote           = `SELECT ` + quoteColumns + ` FROM quotes ORDER BY RANDOM() LIMIT 1`
	queryRandomByChar          = `SELECT ` + quoteColumns + ` FROM quotes WHERE "character" = ? ORDER BY RANDOM() LIMIT 1`
	queryFindByCharacterPG     = `SELECT ` + quoteColumns + ` FROM quotes WHERE "character" ILIKE ? ESCAPE '\' ORDER BY id`
	queryFindByCharacterSQLite = `SELECT ` + quoteColumns + ` FROM quotes WHERE unicode_lower("character") LIKE unicode_lower(?) ESCAPE '\' ORDER BY id`
	queryExistsByText          = `SELECT 1 FROM quotes WHERE quote = ? LIMIT 1`
	queryInsertQuote           = `INSERT INTO quotes (quote, season, episode, "character") VALUES (?, ?, ?, ?) RETURNING id`
)

// QuoteStore maps the quotes table to domain quotes.
type QuoteStore struct {
	db     *Database
	tracer trace.Tracer
}

var _ ports.QuoteRepository = (*QuoteStore)(nil)

// NewQuoteStore creates a store over db.
func NewQuoteStore(db *Database) *QuoteStore {
	return &QuoteStore{
		db:     db,
		tracer: otel.Tracer(tracerName),
	}
}

// List returns every quote ordered by id.
func (s *QuoteStore) List(ctx context.Context) (_ []domain.Quote, err error) {
	ctx, done := s.observe(ctx, "list")
	defer func() { done(err) }()

	return s.queryQuotes(ctx, queryListQuotes)
}

// Random picks one quote using the engine's RANDOM() ordering. A nil
// character considers every row; otherwise only exact matches.
func (s *QuoteStore) Random(ctx context.Context, character *string) (_ domain.Quote, err error) {
	ctx, done := s.observe(ctx, "random")
	defer func() { done(err) }()

	query, args := queryRandomQuote, []any(nil)
	if character != nil {
		query, args = queryRandomByChar, []any{*character}
	}

	row := s.db.querier(ctx).QueryRowContext(ctx, s.rebind(query), args...)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quote{}, domain.ErrNotFound
	}

	if err != nil {
		return domain.Quote{}, fmt.Errorf("selecting random quote: %w", err)
	}

	return q, nil
}

// FindByCharacter returns quotes whose character contains substr,
// case-insensitively. LIKE wildcards in substr match literally.
func (s *QuoteStore) FindByCharacter(ctx context.Context, substr string) (_ []domain.Quote, err error) {
	ctx, done := s.observe(ctx, "find_by_character")
	defer func() { done(err) }()

	query := queryFindByCharacterSQLite
	if s.db.dialect == DialectPostgres {
		query = queryFindByCharacterPG
	}

	return s.queryQuotes(ctx, query, "%"+escapeLike(substr)+"%")
}

// ExistsByText reports whether a quote with exactly this text is stored.
func (s *QuoteStore) ExistsByText(ctx context.Context, text string) (_ bool, err error) {
	ctx, done := s.observe(ctx, "exists_by_text")
	defer func() { done(err) }()

	return s.existsByText(ctx, text)
}

// Create inserts one quote. A unique violation becomes a conflict.
func (s *QuoteStore) Create(ctx context.Context, q domain.NewQuote) (_ domain.Quote, err error) {
	ctx, done := s.observe(ctx, "create")
	defer func() { done(err) }()

	return s.insert(ctx, q)
}

// CreateBatch inserts quotes in order inside one transaction. Each item is
// checked against the table as it stands, earlier items of the batch
// included, and the first duplicate aborts and rolls back the whole batch.
func (s *QuoteStore) CreateBatch(ctx context.Context, batch []domain.NewQuote) (_ []domain.Quote, err error) {
	ctx, done := s.observe(ctx, "create_batch", attribute.Int("quotes.batch_size", len(batch)))
	defer func() { done(err) }()

	created := make([]domain.Quote, 0, len(batch))
	if len(batch) == 0 {
		return created, nil
	}

	err = s.db.WithinTx(ctx, func(ctx context.Context) error {
		for _, q := range batch {
			exists, err := s.existsByText(ctx, q.Text)
			if err != nil {
				return err
			}

			if exists {
				return domain.NewDuplicateQuoteError(q.Text)
			}

			stored, err := s.insert(ctx, q)
			if err != nil {
				return err
			}

			created = append(created, stored)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *QuoteStore) existsByText(ctx context.Context, text string) (bool, error) {
	var one int

	err := s.db.querier(ctx).QueryRowContext(ctx, s.rebind(queryExistsByText), text).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("checking quote text: %w", err)
	}

	return true, nil
}

func (s *QuoteStore) insert(ctx context.Context, q domain.NewQuote) (domain.Quote, error) {
	var id int64

	err := s.db.querier(ctx).
		QueryRowContext(ctx, s.rebind(queryInsertQuote), q.Text, q.Season, q.Episode, q.Character).
		Scan(&id)
	if isUniqueViolation(err) {
		return domain.Quote{}, domain.NewDuplicateQuoteError(q.Text)
	}

	if err != nil {
		return domain.Quote{}, fmt.Errorf("inserting quote: %w", err)
	}

	return domain.Quote{
		ID:        id,
		Text:      q.Text,
		Season:    q.Season,
		Episode:   q.Episode,
		Character: q.Character,
	}, nil
}

func (s *QuoteStore) queryQuotes(ctx context.Context, query string, args ...any) ([]domain.Quote, error) {
	rows, err := s.db.querier(ctx).QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]domain.Quote, 0)

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}

	return quotes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(row scanner) (domain.Quote, error) {
	var q domain.Quote
	err := row.Scan(&q.ID, &q.Text, &q.Season, &q.Episode, &q.Character)

	return q, err
}

// observe starts a span for op and returns a func that ends it and logs the
// query at trace level. Domain outcomes (not found, conflict) are not span errors.
func (s *QuoteStore) observe(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	attrs = append(attrs,
		attribute.String("db.system", string(s.db.dialect)),
		attribute.String("db.operation.name", op),
	)

	ctx, span := s.tracer.Start(ctx, "quotes.store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	start := time.Now()

	return ctx, func(err error) {
		if err != nil && !domain.IsNotFound(err) && !domain.IsConflict(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()

		logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "store query",
			slog.String("op", op),
			slog.Duration("duration", time.Since(start)),
			slog.Bool("failed", err != nil),
		)
	}
}

func (s *QuoteStore) rebind(query string) string {
	return rebind(s.db.dialect, query)
}

// rebind rewrites ? placeholders as $1, $2, ... for Postgres.
func rebind(d Dialect, query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder

	b.Grow(len(query) + 8)

	n := 0

	for _, r := range query {
		if r == '?' {
			n++

			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards so input matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
