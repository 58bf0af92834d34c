package store

import (
	"fmt"
	"strings"

	"PriceSentinel/internal/model"
)

// InsertTrades writes a batch of trade records in one transaction.
func (s *Store) InsertTrades(trades []model.TradeRecord) error {
	if len(trades) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO trades
		(item_name, canonical_name, enhancement, item_level, item_options,
		 trade_type, price, price_unit, price_raw, seller_name, server,
		 trade_date, message_time, source, raw_message)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trades {
		if _, err := stmt.Exec(
			t.ItemName, t.CanonicalName, t.Enhancement, t.ItemLevel,
			strings.Join(t.Options, ","),
			string(t.TradeType), t.Price, string(t.PriceUnit), t.PriceRaw,
			t.SellerName, t.Server, t.TradeDate, t.MessageTime,
			string(t.Source), t.RawMessage,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert trade: %w", err)
		}
	}

	return tx.Commit()
}

// Samples returns all statistics inputs for a canonical name inside the
// lookback window. Exchange records carry no comparable price and are
// excluded at the source.
func (s *Store) Samples(canonical, sinceDate string) ([]model.PriceSample, error) {
	rows, err := s.db.Query(`SELECT enhancement, item_level, price_unit, IFNULL(item_options,''), price, trade_type, trade_date
		FROM trades
		WHERE canonical_name = ? AND trade_date >= ? AND trade_type != 'exchange' AND price > 0
		ORDER BY trade_date ASC, id ASC`, canonical, sinceDate)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var samples []model.PriceSample
	for rows.Next() {
		var sm model.PriceSample
		var unit, opts, tradeType string
		if err := rows.Scan(&sm.Enhancement, &sm.ItemLevel, &unit, &opts, &sm.Price, &tradeType, &sm.TradeDate); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		sm.Unit = model.PriceUnit(unit)
		sm.TradeType = model.TradeType(tradeType)
		if opts != "" {
			sm.Options = strings.Split(opts, ",")
		}
		samples = append(samples, sm)
	}
	return samples, rows.Err()
}

// RecentTrades returns the most recent trades for a canonical name, newest
// first. enhancement > 0 restricts to that enhancement level.
func (s *Store) RecentTrades(canonical string, enhancement int, sinceDate string, limit int) ([]model.TradeRecord, error) {
	query := `SELECT id, item_name, canonical_name, enhancement, item_level, IFNULL(item_options,''),
		trade_type, price, price_unit, IFNULL(price_raw,''), IFNULL(seller_name,''), IFNULL(server,''),
		trade_date, IFNULL(message_time,''), source, IFNULL(raw_message,'')
		FROM trades WHERE canonical_name = ? AND trade_date >= ?`
	args := []any{canonical, sinceDate}
	if enhancement > 0 {
		query += ` AND enhancement = ?`
		args = append(args, enhancement)
	}
	query += ` ORDER BY trade_date DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent trades: %w", err)
	}
	defer rows.Close()

	var trades []model.TradeRecord
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (model.TradeRecord, error) {
	var t model.TradeRecord
	var opts, tradeType, unit, source string
	err := row.Scan(&t.ID, &t.ItemName, &t.CanonicalName, &t.Enhancement, &t.ItemLevel, &opts,
		&tradeType, &t.Price, &unit, &t.PriceRaw, &t.SellerName, &t.Server,
		&t.TradeDate, &t.MessageTime, &source, &t.RawMessage)
	if err != nil {
		return t, fmt.Errorf("scan trade: %w", err)
	}
	t.TradeType = model.TradeType(tradeType)
	t.PriceUnit = model.PriceUnit(unit)
	t.Source = model.Source(source)
	if opts != "" {
		t.Options = strings.Split(opts, ",")
	}
	return t, nil
}

// Suggestions returns up to limit historical canonical names loosely matching
// the search term, most traded first.
func (s *Store) Suggestions(term string, limit int) ([]string, error) {
	like := "%" + term + "%"
	rows, err := s.db.Query(`SELECT canonical_name, COUNT(*) AS cnt FROM trades
		WHERE canonical_name LIKE ? OR item_name LIKE ?
		GROUP BY canonical_name ORDER BY cnt DESC LIMIT ?`, like, like, limit)
	if err != nil {
		return nil, fmt.Errorf("query suggestions: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		var cnt int
		if err := rows.Scan(&name, &cnt); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// HistoricalCanonical looks up the majority-vote canonical name among stored
// records matching the term. The winner is only accepted with at least
// minCount occurrences.
func (s *Store) HistoricalCanonical(term string, minCount int) (string, bool, error) {
	like := "%" + term + "%"
	var name string
	var cnt int
	err := s.db.QueryRow(`SELECT canonical_name, COUNT(*) AS cnt FROM trades
		WHERE canonical_name LIKE ? OR item_name LIKE ?
		GROUP BY canonical_name ORDER BY cnt DESC LIMIT 1`, like, like).Scan(&name, &cnt)
	if err != nil {
		if isNoRows(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query historical canonical: %w", err)
	}
	if cnt < minCount {
		return "", false, nil
	}
	return name, true, nil
}

// CanonicalGroups returns every stored canonical name with its record count,
// optionally restricted to trades on or after sinceDate.
func (s *Store) CanonicalGroups(sinceDate string) (map[string]int, error) {
	query := `SELECT IFNULL(canonical_name,''), COUNT(*) FROM trades`
	var args []any
	if sinceDate != "" {
		query += ` WHERE trade_date >= ?`
		args = append(args, sinceDate)
	}
	query += ` GROUP BY canonical_name`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query canonical groups: %w", err)
	}
	defer rows.Close()

	groups := make(map[string]int)
	for rows.Next() {
		var name string
		var cnt int
		if err := rows.Scan(&name, &cnt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups[name] = cnt
	}
	return groups, rows.Err()
}

// DeleteByCanonical removes every record carrying the canonical name.
func (s *Store) DeleteByCanonical(canonical string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`DELETE FROM trades WHERE canonical_name = ?`, canonical)
	if err != nil {
		return 0, fmt.Errorf("delete by canonical: %w", err)
	}
	return res.RowsAffected()
}

// DeleteOlderThan removes records with trade_date before cutoff (retention).
func (s *Store) DeleteOlderThan(cutoffDate string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`DELETE FROM trades WHERE trade_date < ?`, cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("delete older than: %w", err)
	}
	return res.RowsAffected()
}

// MarketOverview returns the most traded canonical names in the window.
func (s *Store) MarketOverview(sinceDate string, limit int) ([]model.MarketItem, error) {
	rows, err := s.db.Query(`SELECT canonical_name, COUNT(*) AS cnt FROM trades
		WHERE trade_date >= ? AND canonical_name != ''
		GROUP BY canonical_name ORDER BY cnt DESC LIMIT ?`, sinceDate, limit)
	if err != nil {
		return nil, fmt.Errorf("query market overview: %w", err)
	}
	defer rows.Close()

	var items []model.MarketItem
	for rows.Next() {
		var it model.MarketItem
		if err := rows.Scan(&it.CanonicalName, &it.Count); err != nil {
			return nil, fmt.Errorf("scan overview: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GlobalRecentTrades returns the latest records across all items.
func (s *Store) GlobalRecentTrades(limit int) ([]model.TradeRecord, error) {
	rows, err := s.db.Query(`SELECT id, item_name, canonical_name, enhancement, item_level, IFNULL(item_options,''),
		trade_type, price, price_unit, IFNULL(price_raw,''), IFNULL(seller_name,''), IFNULL(server,''),
		trade_date, IFNULL(message_time,''), source, IFNULL(raw_message,'')
		FROM trades ORDER BY trade_date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query global recent: %w", err)
	}
	defer rows.Close()

	var trades []model.TradeRecord
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// DailyVolume returns the per-date trade counts in the window, oldest first.
func (s *Store) DailyVolume(sinceDate string) ([]model.DailyVolume, error) {
	rows, err := s.db.Query(`SELECT trade_date, COUNT(*) FROM trades
		WHERE trade_date >= ? GROUP BY trade_date ORDER BY trade_date ASC`, sinceDate)
	if err != nil {
		return nil, fmt.Errorf("query daily volume: %w", err)
	}
	defer rows.Close()

	var vols []model.DailyVolume
	for rows.Next() {
		var v model.DailyVolume
		if err := rows.Scan(&v.Date, &v.Count); err != nil {
			return nil, fmt.Errorf("scan volume: %w", err)
		}
		vols = append(vols, v)
	}
	return vols, rows.Err()
}
