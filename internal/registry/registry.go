// Package registry persists completed solver runs in postgres so
// experiments can be compared across sessions.
package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/perclft/IsingEngine/internal/api"
)

// Run is one persisted solver run.
type Run struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	ProblemHash string    `json:"problem_hash"`
	Solver      string    `json:"solver"`
	Energy      float64   `json:"energy"`
	Total       float64   `json:"total"`
	CutValue    float64   `json:"cut_value"`
	Bitstring   []int     `json:"bitstring"`
	Iterations  int       `json:"iterations"`
	ElapsedMS   int64     `json:"elapsed_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListFilter narrows ListRuns results.
type ListFilter struct {
	Kind        string
	Solver      string
	ProblemHash string
	Page        int
	PageSize    int
}

// Store is a postgres-backed run registry.
type Store struct {
	db *sql.DB
}

// Open connects to postgres and ensures the schema exists.
func Open(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "registry: open")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "registry: ping")
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore wraps an existing connection and ensures the schema.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id UUID PRIMARY KEY,
		kind VARCHAR(50) NOT NULL,
		problem_hash VARCHAR(64) NOT NULL,
		solver VARCHAR(50) NOT NULL,
		energy DOUBLE PRECISION NOT NULL,
		total DOUBLE PRECISION NOT NULL,
		cut_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		bitstring JSONB NOT NULL DEFAULT '[]',
		iterations INTEGER NOT NULL DEFAULT 0,
		elapsed_ms BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
	CREATE INDEX IF NOT EXISTS idx_runs_hash ON runs(problem_hash);
	CREATE INDEX IF NOT EXISTS idx_runs_solver ON runs(solver);
	`
	_, err := s.db.Exec(schema)
	return errors.Wrap(err, "registry: init schema")
}

func (s *Store) Close() error { return s.db.Close() }

// SaveRun records one completed job. The job ID becomes the run ID.
func (s *Store) SaveRun(ctx context.Context, job *api.Job, hash string) error {
	if job.Result == nil {
		return errors.New("registry: job has no result")
	}
	bits, err := json.Marshal(job.Result.Bitstring)
	if err != nil {
		return errors.Wrap(err, "registry: serialize bitstring")
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, kind, problem_hash, solver, energy, total, cut_value, bitstring, iterations, elapsed_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		job.ID,
		string(job.Request.Kind),
		hash,
		job.Result.Solver,
		job.Result.Energy,
		job.Result.Total,
		job.Result.CutValue,
		string(bits),
		job.Result.Iterations,
		job.Result.ElapsedMS,
	)
	return errors.Wrap(err, "registry: save run")
}

// GetRun loads one run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, problem_hash, solver, energy, total, cut_value, bitstring, iterations, elapsed_ms, created_at
		FROM runs WHERE id = $1
	`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, errors.Errorf("registry: run not found: %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "registry: get run")
	}
	return run, nil
}

// ListRuns returns runs newest first, filtered and paginated.
func (s *Store) ListRuns(ctx context.Context, f ListFilter) ([]*Run, error) {
	query := `
		SELECT id, kind, problem_hash, solver, energy, total, cut_value, bitstring, iterations, elapsed_ms, created_at
		FROM runs WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if f.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)
		args = append(args, f.Kind)
		argIdx++
	}
	if f.Solver != "" {
		query += fmt.Sprintf(" AND solver = $%d", argIdx)
		args = append(args, f.Solver)
		argIdx++
	}
	if f.ProblemHash != "" {
		query += fmt.Sprintf(" AND problem_hash = $%d", argIdx)
		args = append(args, f.ProblemHash)
		argIdx++
	}

	pageSize := f.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d OFFSET %d", pageSize, (page-1)*pageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "registry: list runs")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			continue
		}
		runs = append(runs, run)
	}
	return runs, errors.Wrap(rows.Err(), "registry: list runs")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*Run, error) {
	var (
		run      Run
		bitsJSON string
	)
	err := row.Scan(
		&run.ID, &run.Kind, &run.ProblemHash, &run.Solver,
		&run.Energy, &run.Total, &run.CutValue, &bitsJSON,
		&run.Iterations, &run.ElapsedMS, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(bitsJSON), &run.Bitstring); err != nil {
		return nil, err
	}
	return &run, nil
}
