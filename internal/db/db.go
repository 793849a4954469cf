// Package db provides optional PostgreSQL mirroring of pipeline artifacts.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Run is one pipeline run row.
type Run struct {
	ID          uuid.UUID
	ResumePath  string
	JobPath     string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun records a new pipeline run with the given ID and source paths.
// The run ID is assigned by the caller so file artifacts and database rows
// share one identifier.
func (db *DB) CreateRun(ctx context.Context, runID uuid.UUID, resumePath, jobPath string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO pipeline_runs (id, resume_path, job_path, status)
		 VALUES ($1, $2, $3, 'running')`,
		runID, resumePath, jobPath,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// CompleteRun marks a pipeline run as completed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE pipeline_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveArtifact stores a JSON artifact for a pipeline run, replacing any
// earlier artifact of the same type within the run.
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, artifactType string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO artifacts (run_id, artifact_type, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, artifact_type) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, artifactType, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", artifactType, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by run ID and type. Returns nil with
// no error when the artifact does not exist.
func (db *DB) GetArtifact(ctx context.Context, runID uuid.UUID, artifactType string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM artifacts WHERE run_id = $1 AND artifact_type = $2`,
		runID, artifactType,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", artifactType, err)
	}
	return content, nil
}

// GetRun retrieves one pipeline run by ID. Returns nil with no error when the
// run does not exist.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_path, job_path, status, created_at, completed_at
		 FROM pipeline_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.ResumePath, &run.JobPath, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent pipeline runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_path, job_path, status, created_at, completed_at
		 FROM pipeline_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.ResumePath, &run.JobPath, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
