package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// "character" is reserved in Postgres and is quoted everywhere.
var schemaStatements = map[Dialect][]string{
	DialectPostgres: {
		`CREATE TABLE IF NOT EXISTS quotes (
			id          SERIAL PRIMARY KEY,
			quote       TEXT    NOT NULL UNIQUE,
			season      INTEGER NOT NULL,
			episode     INTEGER NOT NULL,
			"character" TEXT    NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_quotes_id ON quotes (id)`,
	},
	DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS quotes (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			quote       TEXT    NOT NULL UNIQUE,
			season      INTEGER NOT NULL,
			episode     INTEGER NOT NULL,
			"character" TEXT    NOT NULL
		)`,
	},
}

// CreateSchema creates the quotes table when it does not exist yet.
// An existing table is never dropped or altered.
func (d *Database) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements[d.dialect] {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	d.logger.Debug("schema ready", slog.String("dialect", string(d.dialect)))

	return nil
}
