package storage

import (
	"fmt"

	"github.com/ederwin/spincube"
)

// TurnRow is one recorded turn within a session.
type TurnRow struct {
	SessionID string
	Seq       int
	Face      string
	Turn      int
	TsMs      int64 // milliseconds since session start
}

// Move converts the row back to a core move.
func (t TurnRow) Move() spincube.Move {
	return spincube.Move{Face: spincube.Face(t.Face), Turn: spincube.Turn(t.Turn)}
}

// Notation returns the row's standard notation string.
func (t TurnRow) Notation() string {
	return t.Move().Notation()
}

// TurnRepository provides CRUD operations for recorded turns.
type TurnRepository struct {
	db *DB
}

// NewTurnRepository creates a new turn repository.
func NewTurnRepository(db *DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// Append stores the next turn of a session.
func (r *TurnRepository) Append(sessionID string, seq int, move spincube.Move, tsMs int64) error {
	_, err := r.db.Exec(`
		INSERT INTO turns (session_id, seq, face, turn, ts_ms)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, seq, string(move.Face), int(move.Turn), tsMs)
	if err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	return nil
}

// GetBySession retrieves all turns of a session in order.
func (r *TurnRepository) GetBySession(sessionID string) ([]TurnRow, error) {
	rows, err := r.db.Query(`
		SELECT session_id, seq, face, turn, ts_ms
		FROM turns
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get turns: %w", err)
	}
	defer rows.Close()

	var turns []TurnRow
	for rows.Next() {
		var t TurnRow
		if err := rows.Scan(&t.SessionID, &t.Seq, &t.Face, &t.Turn, &t.TsMs); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}
