package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoundRecord is one finished round of a digger game.
type RoundRecord struct {
	ID          int64
	RoundID     string // Generated on save when empty
	GameID      string
	Player      string // SSH user, empty for local play
	Level       int
	Score       int // Total score at round end
	RoundScore  int
	Target      int
	Cleared     bool
	ObjectsLeft int
	Duration    time.Duration
	CreatedAt   time.Time
}

// RoundStats summarizes the round history of a game.
type RoundStats struct {
	Rounds        int
	Cleared       int
	BestLevel     int // Highest level ever cleared, 0 if none
	BestRound     int // Highest single-round score
	AvgRoundScore float64
}

// SaveRound records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, game_id, player, level, score, round_score, target, cleared, objects_left, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID,
		r.GameID,
		r.Player,
		r.Level,
		r.Score,
		r.RoundScore,
		r.Target,
		r.Cleared,
		r.ObjectsLeft,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent rounds of a game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, game_id, player, level, score, round_score,
		        target, cleared, objects_left, duration_ms, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var durationMs int64
		var createdAt any

		if err := rows.Scan(
			&r.ID,
			&r.RoundID,
			&r.GameID,
			&r.Player,
			&r.Level,
			&r.Score,
			&r.RoundScore,
			&r.Target,
			&r.Cleared,
			&r.ObjectsLeft,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestLevel returns the highest level cleared in a game, or 0.
func (s *Store) BestLevel(gameID string) (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(level) FROM rounds WHERE game_id = ? AND cleared = 1",
		gameID,
	).Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best level: %w", err)
	}

	if !level.Valid {
		return 0, nil
	}
	return int(level.Int64), nil
}

// Stats aggregates the round history of a game.
func (s *Store) Stats(gameID string) (RoundStats, error) {
	var st RoundStats
	var cleared, best sql.NullInt64
	var avg sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(cleared), MAX(round_score), AVG(round_score)
		 FROM rounds
		 WHERE game_id = ?`,
		gameID,
	).Scan(&st.Rounds, &cleared, &best, &avg)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query round stats: %w", err)
	}

	st.Cleared = int(cleared.Int64)
	st.BestRound = int(best.Int64)
	st.AvgRoundScore = avg.Float64

	st.BestLevel, err = s.BestLevel(gameID)
	if err != nil {
		return st, err
	}
	return st, nil
}
