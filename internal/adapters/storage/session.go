package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// querier is the subset of *sql.DB, *sql.Conn and *sql.Tx the store needs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Session is one connection checked out of the pool for a single unit of
// work, usually one HTTP request. It is not safe for concurrent use.
type Session struct {
	conn *sql.Conn
	tx   *sql.Tx
}

type sessionKey struct{}

func withSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session acquired for this context, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// Acquire checks out a dedicated connection and returns a context carrying
// it. release returns the connection to the pool, rolling back any
// transaction still open; it is safe to call more than once.
// Acquire implements ports.SessionProvider.
func (d *Database) Acquire(ctx context.Context) (context.Context, func(), error) {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		return ctx, func() {}, fmt.Errorf("acquiring session: %w", err)
	}

	s := &Session{conn: conn}

	var once sync.Once

	release := func() {
		once.Do(func() {
			if s.tx != nil {
				_ = s.tx.Rollback()
				s.tx = nil
			}

			if err := conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
				d.logger.Warn("releasing session", slog.String("error", err.Error()))
			}
		})
	}

	return withSession(ctx, s), release, nil
}

// WithinTx runs fn inside a transaction on this session. The transaction is
// rolled back if fn returns an error and committed otherwise. A call made
// while a transaction is already open joins it.
func (s *Session) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx != nil {
		return fn(ctx)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	s.tx = tx
	defer func() { s.tx = nil }()

	return finishTx(tx, fn(ctx))
}

func (s *Session) querier() querier {
	if s.tx != nil {
		return s.tx
	}

	return s.conn
}

// querier returns the request session when one is in ctx and the pool otherwise.
func (d *Database) querier(ctx context.Context) querier {
	if s, ok := SessionFromContext(ctx); ok {
		return s.querier()
	}

	return d.db
}

// WithinTx runs fn in a transaction on the request session, or on a pooled
// connection when ctx carries no session.
func (d *Database) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s, ok := SessionFromContext(ctx); ok {
		return s.WithinTx(ctx, fn)
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	return finishTx(tx, fn(withSession(ctx, &Session{tx: tx})))
}

func finishTx(tx *sql.Tx, err error) error {
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rolling back: %w", rbErr))
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
