package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Session is one interactive sitting at the puzzle.
type Session struct {
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time
	TurnCount int
	Frontend  string
	Notes     string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session.
func (r *SessionRepository) Create(sessionID string, startedAt time.Time, frontend, notes string) error {
	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, frontend, notes)
		VALUES (?, ?, ?, ?)
	`, sessionID, startedAt.UTC().Format(time.RFC3339), frontend, notes)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// End marks a session finished and records its final turn count.
func (r *SessionRepository) End(sessionID string, endedAt time.Time, turnCount int) error {
	_, err := r.db.Exec(`
		UPDATE sessions SET ended_at = ?, turn_count = ?
		WHERE session_id = ?
	`, endedAt.UTC().Format(time.RFC3339), turnCount, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, turn_count, frontend, notes
		FROM sessions WHERE session_id = ?
	`, sessionID)
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, turn_count, frontend, notes
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAt string
	var endedAt *string
	if err := row.Scan(&s.SessionID, &startedAt, &endedAt, &s.TurnCount, &s.Frontend, &s.Notes); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("bad started_at %q: %w", startedAt, err)
	}
	s.StartedAt = t
	if endedAt != nil {
		e, err := time.Parse(time.RFC3339, *endedAt)
		if err != nil {
			return nil, fmt.Errorf("bad ended_at %q: %w", *endedAt, err)
		}
		s.EndedAt = &e
	}
	return &s, nil
}
