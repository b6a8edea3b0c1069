package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// HistoryRecord describes one finished match. Records are never modified
// after they are written.
type HistoryRecord struct {
	ID          string    `json:"id"`
	Mode        string    `json:"mode"`
	Score       int       `json:"score"`
	SnakeLength int       `json:"snakeLength"`
	Duration    int       `json:"duration"` // Seconds
	Date        time.Time `json:"date"`
	Difficulty  int       `json:"difficulty"`
}

// NewHistoryRecord builds a record with a fresh id.
func NewHistoryRecord(mode string, score, length, durationSecs, difficulty int, date time.Time) HistoryRecord {
	return HistoryRecord{
		ID:          uuid.NewString(),
		Mode:        mode,
		Score:       score,
		SnakeLength: length,
		Duration:    durationSecs,
		Date:        date.UTC(),
		Difficulty:  difficulty,
	}
}

// History returns all records, newest first. Missing or corrupt history is
// logged and reported as empty.
func (s *Store) History() ([]HistoryRecord, error) {
	value, ok, err := s.Get(KeyGameHistory)
	if err != nil || !ok {
		return nil, err
	}

	var records []HistoryRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		s.logger.Error("corrupt game history, treating as empty", "err", err)
		return nil, nil
	}
	return records, nil
}

// AppendHistory prepends rec and trims the list to the history limit.
func (s *Store) AppendHistory(rec HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.History()
	if err != nil {
		return err
	}

	records = append([]HistoryRecord{rec}, records...)
	if len(records) > s.historyLimit {
		records = records[:s.historyLimit]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("storage: cannot encode history: %w", err)
	}
	return s.Set(KeyGameHistory, string(data))
}

// ClearHistory removes every history record.
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.Delete(KeyGameHistory)
}

// TopScores returns the best records for mode, highest score first.
// An empty mode includes every mode.
func (s *Store) TopScores(mode string, limit int) ([]HistoryRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	records, err := s.History()
	if err != nil {
		return nil, err
	}

	top := FilterHistory(records, mode)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score > top[j].Score
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

// FilterHistory returns the records for mode, preserving order.
// An empty mode or "all" returns a copy of every record.
func FilterHistory(records []HistoryRecord, mode string) []HistoryRecord {
	out := make([]HistoryRecord, 0, len(records))
	for _, r := range records {
		if mode == "" || mode == "all" || r.Mode == mode {
			out = append(out, r)
		}
	}
	return out
}
