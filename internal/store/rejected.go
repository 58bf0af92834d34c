package store

import (
	"fmt"
	"time"

	"PriceSentinel/internal/model"
)

// BumpRejectedPattern inserts a pattern or increments its counter. The count
// is monotonic: a correct-but-rare name that gets flagged enough times stays
// blocked until the row is removed by hand. Known trade-off, kept on purpose.
func (s *Store) BumpRejectedPattern(pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO rejected_patterns (pattern, reject_count, last_seen)
		VALUES (?, 1, datetime('now','localtime'))
		ON CONFLICT(pattern) DO UPDATE SET
			reject_count = reject_count + 1,
			last_seen = datetime('now','localtime')`, pattern)
	if err != nil {
		return fmt.Errorf("bump rejected pattern: %w", err)
	}
	return nil
}

// ActiveRejectedPatterns returns patterns whose count has reached threshold.
func (s *Store) ActiveRejectedPatterns(threshold int) ([]string, error) {
	rows, err := s.db.Query(`SELECT pattern FROM rejected_patterns WHERE reject_count >= ?`, threshold)
	if err != nil {
		return nil, fmt.Errorf("query active rejected: %w", err)
	}
	defer rows.Close()

	var patterns []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan rejected pattern: %w", err)
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// ListRejectedPatterns returns all learned patterns, highest count first.
func (s *Store) ListRejectedPatterns() ([]model.RejectedPattern, error) {
	rows, err := s.db.Query(`SELECT pattern, reject_count, last_seen FROM rejected_patterns ORDER BY reject_count DESC`)
	if err != nil {
		return nil, fmt.Errorf("list rejected: %w", err)
	}
	defer rows.Close()

	var patterns []model.RejectedPattern
	for rows.Next() {
		var p model.RejectedPattern
		var lastSeen string
		if err := rows.Scan(&p.Pattern, &p.RejectCount, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan rejected: %w", err)
		}
		if ts, err := time.Parse("2006-01-02 15:04:05", lastSeen); err == nil {
			p.LastSeen = ts
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}
