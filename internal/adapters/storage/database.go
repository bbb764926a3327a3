// Package storage is the relational storage adapter for quotes.
//
// It owns the connection pool, hands out request-scoped sessions, creates
// the schema at startup and maps rows to domain quotes. Postgres is reached
// through the pgx stdlib driver; SQLite through the pure-Go modernc driver,
// which is what tests and local development use.
package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"modernc.org/sqlite"
)

// ErrUnsupportedDSN is returned when the DSN scheme maps to no known driver.
var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// sqliteBusyTimeout makes concurrent writers wait instead of failing with SQLITE_BUSY.
const sqliteBusyTimeout = "_pragma=busy_timeout(5000)"

// sqliteTxLock takes the write lock at BEGIN. A deferred transaction that
// reads before writing cannot wait for the lock and fails with SQLITE_BUSY.
const sqliteTxLock = "_txlock=immediate"

// sqliteLowerFunc folds case for all of Unicode; SQLite's LOWER only folds ASCII.
const sqliteLowerFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Dialect identifies the SQL flavour behind a Database.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

func (d Dialect) driverName() string {
	if d == DialectPostgres {
		return "pgx"
	}

	return "sqlite"
}

// Config holds connection and pool settings.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// Database wraps the shared connection pool. It is created once at startup
// and passed to everything that needs storage.
type Database struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// Open selects a driver from the DSN scheme, configures the pool and pings
// the database. A failed ping is returned as an error; there is no retry.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Database, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dialect, driverDSN, err := parseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.driverName(), driverDSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", dialect, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Every connection to :memory: is a separate empty database.
	if isInMemory(driverDSN) {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	pingCtx := ctx
	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc

		pingCtx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", dialect, err)
	}

	logger.Info("database connected",
		slog.String("dialect", string(dialect)),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return &Database{db: db, dialect: dialect, logger: logger}, nil
}

// parseDSN maps a DSN onto a dialect and the string its driver expects.
func parseDSN(dsn string) (Dialect, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, dsn, nil

	case strings.HasPrefix(lower, "sqlite://"):
		path := dsn[len("sqlite://"):]
		if path == "" || strings.HasPrefix(path, "?") {
			return "", "", fmt.Errorf("%w: sqlite DSN has no path", ErrUnsupportedDSN)
		}

		return DialectSQLite, withSQLitePragmas(path), nil

	case strings.HasPrefix(lower, "file:"), strings.HasPrefix(lower, ":memory:"):
		return DialectSQLite, withSQLitePragmas(dsn), nil

	default:
		scheme, _, _ := strings.Cut(dsn, ":")
		return "", "", fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
	}
}

// withSQLitePragmas appends the connection options the store relies on,
// keeping any the caller already set.
func withSQLitePragmas(dsn string) string {
	for _, opt := range []struct{ key, value string }{
		{key: "busy_timeout", value: sqliteBusyTimeout},
		{key: "_txlock", value: sqliteTxLock},
	} {
		if strings.Contains(dsn, opt.key) {
			continue
		}

		if strings.Contains(dsn, "?") {
			dsn += "&" + opt.value
		} else {
			dsn += "?" + opt.value
		}
	}

	return dsn
}

func isInMemory(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Dialect reports which SQL flavour this database speaks.
func (d *Database) Dialect() Dialect {
	return d.dialect
}

// DB exposes the underlying pool.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Name implements ports.HealthChecker.
func (d *Database) Name() string {
	return "database"
}

// Check implements ports.HealthChecker by pinging the pool.
func (d *Database) Check(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// RegisterMetrics exports pool statistics to Prometheus.
// Registering the same pool twice is not an error.
func (d *Database) RegisterMetrics(reg prometheus.Registerer) error {
	err := reg.Register(collectors.NewDBStatsCollector(d.db, "quotes"))

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}

	return err
}

// Close closes the pool. Sessions still checked out are released by the driver.
func (d *Database) Close() error {
	return d.db.Close()
}
