package trade

import (
	"fmt"
	"log"
	"time"

	"PriceSentinel/internal/model"
)

const cleanupExampleLimit = 10

// CleanupTrades re-validates stored canonical names against the alias table
// and the known-item catalog, deleting every group that matches neither and
// bumping its rejection counter so the parser learns to discard it at intake.
// since limits the scan to records on or after that trade date; empty means
// the whole store. Running it twice in a row removes nothing the second time.
func (s *Service) CleanupTrades(since string) (model.CleanupResult, error) {
	var result model.CleanupResult

	if s.resolver.CatalogSize() == 0 {
		return result, fmt.Errorf("known-item catalog not loaded, refusing to cleanup")
	}

	groups, err := s.store.CanonicalGroups(since)
	if err != nil {
		return result, fmt.Errorf("list canonical groups: %w", err)
	}

	for name, count := range groups {
		if s.resolver.Valid(name) {
			result.Kept += count
			continue
		}
		removed, err := s.store.DeleteByCanonical(name)
		if err != nil {
			return result, fmt.Errorf("delete %q: %w", name, err)
		}
		if err := s.store.BumpRejectedPattern(name); err != nil {
			return result, fmt.Errorf("bump rejected %q: %w", name, err)
		}
		result.Removed += int(removed)
		if len(result.Examples) < cleanupExampleLimit {
			result.Examples = append(result.Examples, name)
		}
	}

	if err := s.reloadRejected(); err != nil {
		return result, fmt.Errorf("reload rejected patterns: %w", err)
	}

	if result.Removed > 0 {
		log.Printf("[INFO] cleanup removed %d trades across %d names, kept %d",
			result.Removed, len(result.Examples), result.Kept)
	}
	return result, nil
}

// RetentionSweep deletes trades older than the configured retention window.
func (s *Service) RetentionSweep() (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.Cleanup.RetentionDays).Format("2006-01-02")
	removed, err := s.store.DeleteOlderThan(cutoff)
	if err != nil {
		return 0, fmt.Errorf("retention sweep: %w", err)
	}
	if removed > 0 {
		log.Printf("[INFO] retention sweep removed %d trades older than %s", removed, cutoff)
	}
	return int(removed), nil
}
