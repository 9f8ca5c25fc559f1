package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Postgres wraps a pgx connection pool behind the narrow surface the
// loader and the schema-evolution step need.
type Postgres struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, url string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Exec runs one statement and reports the number of rows it affected.
func (p *Postgres) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// EnsureTrackingColumns adds the batch auditing columns to every target
// table. Best-effort column addition is the only schema evolution the
// loader depends on; the tables themselves must already exist.
func (p *Postgres) EnsureTrackingColumns(ctx context.Context, tables []string) error {
	for _, table := range tables {
		quoted := pq.QuoteIdentifier(table)
		statements := []string{
			fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS batch_id TEXT", quoted),
			fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS time_updated TIMESTAMP DEFAULT NOW()", quoted),
		}
		for _, stmt := range statements {
			if _, err := p.pool.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to add tracking columns to %s: %w", table, err)
			}
		}
	}
	return nil
}
