// Package trade wires the parsing, canonicalization, storage, and statistics
// pieces into the price-intelligence service consumed by the bot layer.
package trade

import (
	"fmt"
	"log"
	"time"

	"PriceSentinel/internal/canonical"
	"PriceSentinel/internal/catalog"
	"PriceSentinel/internal/config"
	"PriceSentinel/internal/model"
	"PriceSentinel/internal/parser"
	"PriceSentinel/internal/store"
)

// Service exposes the trade price intelligence operations. All writes funnel
// through the store's single-writer lock; the service itself holds no extra
// mutable state beyond the resolver snapshots.
type Service struct {
	cfg      *config.Config
	store    *store.Store
	resolver *canonical.Resolver
	parser   *parser.Parser
}

// NewService creates the service around an opened store.
func NewService(cfg *config.Config, st *store.Store) *Service {
	resolver := canonical.NewResolver()
	return &Service{
		cfg:      cfg,
		store:    st,
		resolver: resolver,
		parser:   parser.New(resolver),
	}
}

// Initialize seeds the alias table, loads the known-item catalog, and primes
// the active rejection set. A missing catalog degrades canonicalization to
// alias-only matching instead of failing.
func (s *Service) Initialize() error {
	if err := s.store.SeedAliases(canonical.SeedAliases()); err != nil {
		return fmt.Errorf("seed aliases: %w", err)
	}

	aliases, err := s.store.ListAliases()
	if err != nil {
		return fmt.Errorf("load aliases: %w", err)
	}
	s.resolver.SetAliases(aliases)

	items, err := catalog.Load(s.cfg.Catalog.Path)
	if err != nil {
		log.Printf("[WARN] known-item catalog not loaded, alias-only matching: %v", err)
	} else {
		s.resolver.SetCatalog(items)
	}

	if err := s.reloadRejected(); err != nil {
		return fmt.Errorf("load rejected patterns: %w", err)
	}

	log.Printf("[INFO] trade service initialized: %d aliases", len(aliases))
	return nil
}

func (s *Service) reloadRejected() error {
	patterns, err := s.store.ActiveRejectedPatterns(s.cfg.Cleanup.RejectThreshold)
	if err != nil {
		return err
	}
	s.resolver.SetRejected(patterns)
	return nil
}

// CollectMessage parses one realtime chat message and stores every trade it
// mentions. Messages that yield nothing are the normal case, not an error.
func (s *Service) CollectMessage(rawMsg string, sender model.SenderInfo, tradeDate, messageTime string) ([]model.TradeRecord, error) {
	trades := s.parser.ParseMessage(rawMsg, sender, tradeDate, messageTime)
	if len(trades) == 0 {
		return nil, nil
	}
	if err := s.store.InsertTrades(trades); err != nil {
		log.Printf("[ERROR] insert trades: %v", err)
		return nil, fmt.Errorf("store trades: %w", err)
	}
	return trades, nil
}

// AddAlias adds or overwrites an alias and keeps the resolver in sync.
func (s *Service) AddAlias(alias, canonicalName, category string) (bool, error) {
	if alias == "" || canonicalName == "" {
		return false, fmt.Errorf("alias and canonical name are required")
	}
	if err := s.store.PutAlias(model.ItemAlias{Alias: alias, CanonicalName: canonicalName, Category: category}); err != nil {
		return false, err
	}
	s.resolver.PutAlias(alias, canonicalName)
	return true, nil
}

// RemoveAlias deletes an alias.
func (s *Service) RemoveAlias(alias string) (bool, error) {
	existed, err := s.store.DeleteAlias(alias)
	if err != nil {
		return false, err
	}
	if existed {
		s.resolver.DropAlias(alias)
	}
	return existed, nil
}

// ListAliases returns the alias table.
func (s *Service) ListAliases() ([]model.ItemAlias, error) {
	return s.store.ListAliases()
}

// AddTradeRoom registers a room. collect=true makes it a collection source;
// false leaves it query-only.
func (s *Service) AddTradeRoom(roomID, roomName string, collect bool) (bool, error) {
	if roomID == "" {
		return false, fmt.Errorf("room id is required")
	}
	err := s.store.PutRoom(model.TradeRoom{RoomID: roomID, RoomName: roomName, Collect: collect, Enabled: true})
	if err != nil {
		return false, err
	}
	return true, nil
}

// RemoveTradeRoom unregisters a room.
func (s *Service) RemoveTradeRoom(roomID string) (bool, error) {
	return s.store.DeleteRoom(roomID)
}

// ListTradeRooms returns all configured rooms.
func (s *Service) ListTradeRooms() ([]model.TradeRoom, error) {
	return s.store.ListRooms()
}

// GetTradeRoom returns an enabled room's configuration.
func (s *Service) GetTradeRoom(roomID string) (model.TradeRoom, bool, error) {
	return s.store.GetRoom(roomID)
}

// IsCollectRoom reports whether messages from the room should be parsed.
func (s *Service) IsCollectRoom(roomID string) bool {
	room, ok, err := s.store.GetRoom(roomID)
	if err != nil {
		log.Printf("[ERROR] get room %s: %v", roomID, err)
		return false
	}
	return ok && room.Collect
}

// IsPriceRoom reports whether the room may run price queries.
func (s *Service) IsPriceRoom(roomID string) bool {
	_, ok, err := s.store.GetRoom(roomID)
	if err != nil {
		log.Printf("[ERROR] get room %s: %v", roomID, err)
		return false
	}
	return ok
}

// GetStats returns the store-wide summary.
func (s *Service) GetStats() (model.Stats, error) {
	return s.store.Stats(s.cfg.Cleanup.RejectThreshold)
}

// MarketOverview returns the most traded items in the lookback window.
func (s *Service) MarketOverview(days, limit int) ([]model.MarketItem, error) {
	return s.store.MarketOverview(sinceDate(days), limit)
}

// RecentTrades returns the latest records across all items.
func (s *Service) RecentTrades(limit int) ([]model.TradeRecord, error) {
	return s.store.GlobalRecentTrades(limit)
}

// DailyVolume returns per-date trade counts in the lookback window.
func (s *Service) DailyVolume(days int) ([]model.DailyVolume, error) {
	return s.store.DailyVolume(sinceDate(days))
}

// Checkpoint flushes the store's WAL (scheduler hook).
func (s *Service) Checkpoint() error {
	return s.store.Checkpoint()
}

func sinceDate(days int) string {
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}
