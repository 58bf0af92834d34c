// Package catalog loads the read-only known-item reference database. The
// catalog supplies canonical item names and the bundle flag; it is loaded once
// at startup and treated as an immutable snapshot for the process lifetime.
package catalog

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"PriceSentinel/internal/model"
)

// equipmentTypes are item types traded one piece at a time. Everything else
// (materials, consumables, misc) moves in multi-unit lots and is flagged as a
// bundle item.
var equipmentTypes = map[string]bool{
	"무기": true, "방패": true,
	"의상": true, "모자": true, "장갑": true, "신발": true, "각반": true, "망토": true,
	"목걸이": true, "반지": true, "귀걸이": true, "벨트": true, "악세서리": true, "액세서리": true,
}

// Load reads all known items from the reference database at path. A missing
// or unreadable reference DB is not fatal to the caller: it returns an error
// and canonicalization degrades to alias-only matching.
func Load(path string) ([]model.KnownItem, error) {
	if path == "" {
		return nil, fmt.Errorf("no catalog path configured")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT DisplayName, IFNULL(Type, '') FROM items WHERE DisplayName IS NOT NULL AND DisplayName != ''`)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	defer rows.Close()

	var items []model.KnownItem
	for rows.Next() {
		var it model.KnownItem
		if err := rows.Scan(&it.Name, &it.Type); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		it.Bundle = !equipmentTypes[it.Type]
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}

	log.Printf("[INFO] known-item catalog loaded: %d items from %s", len(items), path)
	return items, nil
}
