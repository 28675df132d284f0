// Package recorder manages a recording session: it assigns a session ID,
// journals finalized turns to storage as they happen, and closes the
// session with its final turn count.
package recorder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ederwin/spincube"
	"github.com/ederwin/spincube/internal/app/storage"
)

// Session journals one sitting's turns to the database.
type Session struct {
	db        *storage.DB
	sessionID string
	startTime time.Time
	seq       int

	sessionRepo *storage.SessionRepository
	turnRepo    *storage.TurnRepository
}

// Start creates and persists a new session.
func Start(db *storage.DB, frontend, notes string) (*Session, error) {
	s := &Session{
		db:          db,
		sessionID:   uuid.NewString(),
		startTime:   time.Now(),
		sessionRepo: storage.NewSessionRepository(db),
		turnRepo:    storage.NewTurnRepository(db),
	}
	if err := s.sessionRepo.Create(s.sessionID, s.startTime, frontend, notes); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.sessionID
}

// Record journals one finalized turn. Sequence numbers and timestamps are
// assigned here so frontends only hand over the move.
func (s *Session) Record(move spincube.Move) error {
	tsMs := time.Since(s.startTime).Milliseconds()
	if err := s.turnRepo.Append(s.sessionID, s.seq, move, tsMs); err != nil {
		return err
	}
	s.seq++
	return nil
}

// TurnCount returns the number of turns recorded so far.
func (s *Session) TurnCount() int {
	return s.seq
}

// End closes the session.
func (s *Session) End() error {
	return s.sessionRepo.End(s.sessionID, time.Now(), s.seq)
}
