package store

import (
	"fmt"

	"PriceSentinel/internal/model"
)

// SeedAliases inserts the startup alias list; rows already present win.
func (s *Store) SeedAliases(aliases []model.ItemAlias) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	for _, a := range aliases {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO item_aliases (alias, canonical_name, category) VALUES (?,?,?)`,
			a.Alias, a.CanonicalName, a.Category); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed alias %q: %w", a.Alias, err)
		}
	}
	return tx.Commit()
}

// PutAlias adds or overwrites one alias.
func (s *Store) PutAlias(a model.ItemAlias) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO item_aliases (alias, canonical_name, category) VALUES (?,?,?)`,
		a.Alias, a.CanonicalName, a.Category)
	if err != nil {
		return fmt.Errorf("put alias: %w", err)
	}
	return nil
}

// DeleteAlias removes one alias, reporting whether it existed.
func (s *Store) DeleteAlias(alias string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`DELETE FROM item_aliases WHERE alias = ?`, alias)
	if err != nil {
		return false, fmt.Errorf("delete alias: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListAliases returns the full alias table.
func (s *Store) ListAliases() ([]model.ItemAlias, error) {
	rows, err := s.db.Query(`SELECT alias, canonical_name, IFNULL(category,'') FROM item_aliases ORDER BY alias`)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	defer rows.Close()

	var aliases []model.ItemAlias
	for rows.Next() {
		var a model.ItemAlias
		if err := rows.Scan(&a.Alias, &a.CanonicalName, &a.Category); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		aliases = append(aliases, a)
	}
	return aliases, rows.Err()
}
