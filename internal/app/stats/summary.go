// Package stats computes summaries of recorded sessions.
package stats

import (
	"time"

	"github.com/ederwin/spincube"
	"github.com/ederwin/spincube/internal/app/storage"
)

// Summary contains statistics for a single session.
type Summary struct {
	SessionID  string         `json:"session_id"`
	StartedAt  string         `json:"started_at"`
	EndedAt    string         `json:"ended_at,omitempty"`
	DurationMs int64          `json:"duration_ms"`
	TurnCount  int            `json:"turn_count"`
	TPS        float64        `json:"tps"`
	FaceCounts map[string]int `json:"face_counts"`
	Notation   string         `json:"notation"`
}

// Summarize builds a Summary from a session and its recorded turns.
func Summarize(session *storage.Session, turns []storage.TurnRow) Summary {
	s := Summary{
		SessionID:  session.SessionID,
		StartedAt:  session.StartedAt.Format(time.RFC3339),
		TurnCount:  len(turns),
		FaceCounts: make(map[string]int),
	}
	if session.EndedAt != nil {
		s.EndedAt = session.EndedAt.Format(time.RFC3339)
		s.DurationMs = session.EndedAt.Sub(session.StartedAt).Milliseconds()
	} else if len(turns) > 0 {
		s.DurationMs = turns[len(turns)-1].TsMs
	}

	moves := make([]spincube.Move, len(turns))
	for i, t := range turns {
		moves[i] = t.Move()
		s.FaceCounts[t.Face]++
	}
	s.Notation = spincube.FormatMoves(moves)
	s.TPS = CalculateTPS(turns, s.DurationMs)
	return s
}

// CalculateTPS calculates turns per second for a turn sequence.
func CalculateTPS(turns []storage.TurnRow, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(len(turns)) / (float64(durationMs) / 1000.0)
}

// LongestPause returns the longest gap between consecutive turns in
// milliseconds, or 0 with fewer than two turns.
func LongestPause(turns []storage.TurnRow) int64 {
	var longest int64
	for i := 1; i < len(turns); i++ {
		if gap := turns[i].TsMs - turns[i-1].TsMs; gap > longest {
			longest = gap
		}
	}
	return longest
}
