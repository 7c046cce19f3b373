package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
)

// eventTables share one sequence so an analysis can be ordered against the
// LLM calls and the survey row it produced.
var eventTables = []string{"llm_request_events", "analysis_events", "survey_responses"}

// sequenceCounter hands out that shared sequence. The mutex serializes
// callers in this process; RETURNING keeps the increment atomic in SQLite.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates the counter row after the event tables exist.
// A missing row is seeded past the highest stored sequence, so a database
// copied without it does not reuse numbers.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`); err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	maxes := make([]string, len(eventTables))
	for i, t := range eventTables {
		maxes[i] = fmt.Sprintf("(SELECT COALESCE(MAX(sequence), 0) FROM %s)", t)
	}
	seed := fmt.Sprintf(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, MAX(%s) + 1)`,
		strings.Join(maxes, ", "))
	if _, err := db.Exec(seed); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	if err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
