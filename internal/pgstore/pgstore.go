// Package pgstore wraps the Postgres connection pool and executes the
// plans the planner produces, scanning rows into the shapes the rest of
// the service works with.
package pgstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/planner"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/shaper"
)

// PoolConfig tunes the underlying *sql.DB.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	StatementTimeout time.Duration
}

// Store executes query plans against Postgres.
type Store struct {
	db  *sql.DB
	cfg PoolConfig
}

// Open establishes the pool and verifies connectivity with a ping.
func Open(ctx context.Context, dsn string, cfg PoolConfig) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, err
	}

	return &Store{db: db, cfg: cfg}, nil
}

// DB exposes the underlying pool for packages that need queries the
// planner does not model, such as the area-hierarchy lookup.
func (s *Store) DB() *sql.DB {
	return s.db
}

// NewFromDB wraps an already-open *sql.DB, used in tests and by callers
// that manage the pool's lifecycle themselves.
func NewFromDB(db *sql.DB, cfg PoolConfig) *Store {
	return &Store{db: db, cfg: cfg}
}

// Close releases pool resources.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the pool still has a live connection, used by the health
// endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.StatementTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.StatementTimeout)
}

// bindArgs rewrites any []any argument carrying a Postgres array into
// the pq.Array wrapper database/sql requires.
func bindArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if arr, ok := a.([]any); ok {
			out[i] = pq.Array(arr)
			continue
		}
		out[i] = a
	}
	return out
}

// Query runs a data-retrieval plan and scans every row into long-format
// records.
func (s *Store) Query(ctx context.Context, plan planner.Plan) ([]shaper.Row, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, plan.SQL, bindArgs(plan.Args)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []shaper.Row
	for rows.Next() {
		var r shaper.Row
		var value sql.NullString
		if err := rows.Scan(&r.AreaCode, &r.AreaName, &r.AreaType, &r.Date, &r.Metric, &value); err != nil {
			return nil, err
		}
		if value.Valid {
			r.Value = value.String
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Count runs a count plan and returns the scalar result.
func (s *Store) Count(ctx context.Context, plan planner.Plan) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var count int64
	err := s.db.QueryRowContext(ctx, plan.SQL, bindArgs(plan.Args)...).Scan(&count)
	return count, err
}

// Exists runs an existence-check plan.
func (s *Store) Exists(ctx context.Context, plan planner.Plan) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx, plan.SQL, bindArgs(plan.Args)...).Scan(&exists)
	return exists, err
}

// LatestDate runs a latest-date plan.
func (s *Store) LatestDate(ctx context.Context, plan planner.Plan) (time.Time, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var t sql.NullTime
	if err := s.db.QueryRowContext(ctx, plan.SQL, bindArgs(plan.Args)...).Scan(&t); err != nil {
		return time.Time{}, err
	}
	return t.Time, nil
}

// LatestRelease resolves the upstream batch marker used to derive the
// partition id, the Last-Modified header and the CSV filename: the
// timestamp of the most recent released row in release_reference. It is
// resolved once per request rather than taken from wall-clock time so
// that a fixed release produces a deterministic partition id and
// byte-identical repeated responses.
func (s *Store) LatestRelease(ctx context.Context) (time.Time, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	const query = `SELECT MAX(timestamp) FROM covid19.release_reference WHERE released IS TRUE`

	var t time.Time
	if err := s.db.QueryRowContext(ctx, query).Scan(&t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}
