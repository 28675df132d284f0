package spincube

import "time"

// TurnRecord is one completed turn with the time its finalize ran.
type TurnRecord struct {
	Move Move
	At   time.Time
}

// Journal accumulates the history of completed turns. Turns are recorded
// at finalize time, not at input time, so a rejected input never appears
// in the history.
type Journal struct {
	enabled bool
	records []TurnRecord
}

func newJournal(enabled bool) *Journal {
	return &Journal{enabled: enabled}
}

func (j *Journal) add(m Move, at time.Time) {
	if !j.enabled {
		return
	}
	j.records = append(j.records, TurnRecord{Move: m.WithTime(at), At: at})
}

func (j *Journal) reset() {
	j.records = nil
}

// Len returns the number of recorded turns.
func (j *Journal) Len() int {
	return len(j.records)
}

// Records returns a copy of the recorded turns in completion order.
func (j *Journal) Records() []TurnRecord {
	out := make([]TurnRecord, len(j.records))
	copy(out, j.records)
	return out
}

// Notation returns the recorded turns as a space-separated notation string.
func (j *Journal) Notation() string {
	moves := make([]Move, len(j.records))
	for i, r := range j.records {
		moves[i] = r.Move
	}
	return FormatMoves(moves)
}

// TPS returns turns per second over the recorded span, or 0 with fewer
// than two recorded turns.
func (j *Journal) TPS() float64 {
	if len(j.records) < 2 {
		return 0
	}
	span := j.records[len(j.records)-1].At.Sub(j.records[0].At).Seconds()
	if span <= 0 {
		return 0
	}
	return float64(len(j.records)-1) / span
}
