package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is a single recorded solve.
type Solve struct {
	SolveID   string
	SessionID string
	Duration  time.Duration
	Scramble  string
	CreatedAt time.Time
}

// SolveRepository provides CRUD operations for sessions and solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// StartSession creates a new timing session and returns its ID.
func (r *SolveRepository) StartSession() (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at)
		VALUES (?, ?)
	`, id, startedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// RecordSolve stores a completed solve and returns its ID.
func (r *SolveRepository) RecordSolve(sessionID string, duration time.Duration, scramble string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, session_id, duration_ms, scramble_text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, sessionID, duration.Milliseconds(), scramble, createdAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to record solve: %w", err)
	}

	return id, nil
}

// ListSolves returns all solves for a session, oldest first. An empty
// sessionID lists every stored solve.
func (r *SolveRepository) ListSolves(sessionID string) ([]Solve, error) {
	query := `
		SELECT solve_id, session_id, duration_ms, scramble_text, created_at
		FROM solves
	`
	args := []any{}
	if sessionID != "" {
		query += " WHERE session_id = ?"
		args = append(args, sessionID)
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var durationMs int64
		var createdAt string

		if err := rows.Scan(&s.SolveID, &s.SessionID, &durationMs, &s.Scramble, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.Duration = time.Duration(durationMs) * time.Millisecond
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			s.CreatedAt = t
		}

		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Durations returns just the solve times for a session, oldest first.
func (r *SolveRepository) Durations(sessionID string) ([]time.Duration, error) {
	solves, err := r.ListSolves(sessionID)
	if err != nil {
		return nil, err
	}

	times := make([]time.Duration, len(solves))
	for i, s := range solves {
		times[i] = s.Duration
	}
	return times, nil
}

// ClearSession deletes all solves for a session.
func (r *SolveRepository) ClearSession(sessionID string) error {
	if _, err := r.db.Exec("DELETE FROM solves WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// ClearAll deletes all stored solves and sessions.
func (r *SolveRepository) ClearAll() error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM solves"); err != nil {
			return fmt.Errorf("failed to delete solves: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		return nil
	})
}
