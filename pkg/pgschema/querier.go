package pgschema

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

// Querier runs a read-only query.
type Querier interface {
	Query(ctx context.Context, query string) (Rows, error)
}

// Rows is the subset of a row iterator the inspector needs.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type pgxQuerier struct {
	pool *pgxpool.Pool
}

// NewPGXQuerier runs queries on a pgx pool.
func NewPGXQuerier(pool *pgxpool.Pool) Querier {
	return &pgxQuerier{pool: pool}
}

func (q *pgxQuerier) Query(ctx context.Context, query string) (Rows, error) {
	rows, err := q.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return &pgxRows{rows: rows}, nil
}

type pgxRows struct {
	rows pgx.Rows
}

func (r *pgxRows) Next() bool             { return r.rows.Next() }
func (r *pgxRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *pgxRows) Err() error             { return r.rows.Err() }

func (r *pgxRows) Close() error {
	r.rows.Close()
	return nil
}

type sqlxQuerier struct {
	db *sqlx.DB
}

// NewSQLXQuerier runs queries on a sqlx handle, for example one opened with
// the lib/pq driver.
func NewSQLXQuerier(db *sqlx.DB) Querier {
	return &sqlxQuerier{db: db}
}

func (q *sqlxQuerier) Query(ctx context.Context, query string) (Rows, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &stdRows{rows: rows}, nil
}

type stdRows struct {
	rows *sql.Rows
}

func (r *stdRows) Next() bool             { return r.rows.Next() }
func (r *stdRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *stdRows) Err() error             { return r.rows.Err() }
func (r *stdRows) Close() error           { return r.rows.Close() }
