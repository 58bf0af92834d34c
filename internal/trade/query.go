package trade

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"PriceSentinel/internal/extractor"
	"PriceSentinel/internal/model"
	"PriceSentinel/internal/stats"
)

// bucketKey partitions samples so only like-for-like prices are aggregated.
type bucketKey struct {
	Enhancement int
	ItemLevel   int
	Unit        model.PriceUnit
	Multiplier  int
}

// QueryPrice answers a price question like "나겔반지" or "5강 나겔반지".
// Without an enhancement level the answer is a per-enhancement summary; with
// one it is a detail block plus recent trades.
func (s *Service) QueryPrice(query string, days int) (model.QueryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.QueryResult{}, fmt.Errorf("item name is required")
	}
	if days <= 0 {
		days = s.cfg.Query.DefaultDays
	}
	since := sinceDate(days)

	enhancement, term, _ := extractor.ExtractEnhancement(query)
	term = strings.TrimSpace(term)
	if term == "" {
		return model.QueryResult{}, fmt.Errorf("item name is required")
	}

	canonicalName, resolved := s.resolver.Resolve(term)
	samples, err := s.store.Samples(canonicalName, since)
	if err != nil {
		return model.QueryResult{}, fmt.Errorf("load samples: %w", err)
	}

	// Name unknown to aliases and catalog: fall back to the majority canonical
	// name among historical records mentioning the term.
	if len(samples) == 0 && !resolved {
		hist, ok, err := s.store.HistoricalCanonical(term, s.cfg.Query.FallbackMinCount)
		if err != nil {
			return model.QueryResult{}, fmt.Errorf("historical fallback: %w", err)
		}
		if ok && hist != canonicalName {
			log.Printf("[INFO] query %q resolved via historical records to %q", term, hist)
			canonicalName = hist
			samples, err = s.store.Samples(canonicalName, since)
			if err != nil {
				return model.QueryResult{}, fmt.Errorf("load samples: %w", err)
			}
		}
	}

	if len(samples) == 0 {
		suggestions, err := s.store.Suggestions(term, s.cfg.Query.SuggestionLimit)
		if err != nil {
			return model.QueryResult{}, fmt.Errorf("load suggestions: %w", err)
		}
		return model.QueryResult{Answer: formatNoData(canonicalName, days, suggestions)}, nil
	}

	for i := range samples {
		samples[i].Multiplier = extractor.LotMultiplier(samples[i].Options)
	}

	if enhancement > 0 {
		detail := samples[:0:0]
		for _, sm := range samples {
			if sm.Enhancement == enhancement {
				detail = append(detail, sm)
			}
		}
		if len(detail) == 0 {
			return model.QueryResult{Answer: formatNoEnhancementData(canonicalName, enhancement, days, s.availableEnhancements(samples))}, nil
		}
		return s.detailResult(canonicalName, enhancement, days, since, detail)
	}
	return s.summaryResult(canonicalName, days, since, samples)
}

func (s *Service) availableEnhancements(samples []model.PriceSample) []int {
	seen := make(map[int]bool)
	for _, sm := range samples {
		seen[sm.Enhancement] = true
	}
	levels := make([]int, 0, len(seen))
	for lvl := range seen {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}

func (s *Service) summaryResult(canonicalName string, days int, since string, samples []model.PriceSample) (model.QueryResult, error) {
	bucketStats, order := s.aggregate(canonicalName, samples)

	recent, err := s.store.RecentTrades(canonicalName, 0, since, s.cfg.Query.RecentTradeLimit)
	if err != nil {
		return model.QueryResult{}, fmt.Errorf("load recent trades: %w", err)
	}

	answer := formatSummary(canonicalName, days, len(samples), order, bucketStats)
	return model.QueryResult{Answer: answer, Sources: recent}, nil
}

func (s *Service) detailResult(canonicalName string, enhancement, days int, since string, samples []model.PriceSample) (model.QueryResult, error) {
	bucketStats, order := s.aggregate(canonicalName, samples)

	recent, err := s.store.RecentTrades(canonicalName, enhancement, since, s.cfg.Query.RecentTradeLimit)
	if err != nil {
		return model.QueryResult{}, fmt.Errorf("load recent trades: %w", err)
	}

	answer := formatDetail(canonicalName, enhancement, days, len(samples), order, bucketStats, recent)
	return model.QueryResult{Answer: answer, Sources: recent}, nil
}

// aggregate buckets the samples, computes trimmed statistics per bucket, and
// for bundle items replaces per-unit buckets the bulk-lot cross-check marks as
// noise with an estimate derived from the dominant bulk bucket. The returned
// order is deterministic: enhancement, then level, then unit, then lot size.
func (s *Service) aggregate(canonicalName string, samples []model.PriceSample) (map[bucketKey]model.BucketStats, []bucketKey) {
	buckets := make(map[bucketKey][]float64)
	for _, sm := range samples {
		k := bucketKey{sm.Enhancement, sm.ItemLevel, sm.Unit, sm.Multiplier}
		buckets[k] = append(buckets[k], sm.Price)
	}

	result := make(map[bucketKey]model.BucketStats, len(buckets))
	for k, prices := range buckets {
		st, ok := s.bucketStats(prices)
		if !ok {
			continue
		}
		result[k] = st
	}

	if s.resolver.Bundle(canonicalName) {
		s.crossValidateBundles(buckets, result)
	}

	order := make([]bucketKey, 0, len(result))
	for k := range result {
		order = append(order, k)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.Enhancement != b.Enhancement {
			return a.Enhancement < b.Enhancement
		}
		if a.ItemLevel != b.ItemLevel {
			return a.ItemLevel < b.ItemLevel
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return a.Multiplier < b.Multiplier
	})
	return result, order
}

func (s *Service) bucketStats(prices []float64) (model.BucketStats, bool) {
	avg, err := stats.TrimmedMean(prices, s.cfg.Stats.TrimPercent, s.cfg.Stats.TrimMinSamples)
	if err != nil {
		return model.BucketStats{}, false
	}
	lo, hi, err := stats.MinMax(prices)
	if err != nil {
		return model.BucketStats{}, false
	}
	return model.BucketStats{Count: len(prices), Avg: avg, Min: lo, Max: hi}, true
}

// crossValidateBundles runs the bulk-lot sanity check for bundle items. Within
// each (enhancement, level, unit) group the dominant bulk bucket implies a
// per-unit price; per-unit buckets whose average lands outside the configured
// ratio band of that implied price are dropped and replaced by an estimate.
func (s *Service) crossValidateBundles(buckets map[bucketKey][]float64, result map[bucketKey]model.BucketStats) {
	type groupKey struct {
		Enhancement int
		ItemLevel   int
		Unit        model.PriceUnit
	}

	dominant := make(map[groupKey]bucketKey)
	for k := range result {
		if k.Multiplier <= 1 {
			continue
		}
		g := groupKey{k.Enhancement, k.ItemLevel, k.Unit}
		best, ok := dominant[g]
		if !ok || result[k].Count > result[best].Count {
			dominant[g] = k
		}
	}

	for g, bulkKey := range dominant {
		implied := stats.ImpliedUnitPrice(result[bulkKey].Avg, bulkKey.Multiplier)
		if implied <= 0 {
			continue
		}

		noisy := false
		for _, mult := range []int{0, 1} {
			rawKey := bucketKey{g.Enhancement, g.ItemLevel, g.Unit, mult}
			raw, ok := result[rawKey]
			if !ok || raw.Estimated {
				continue
			}
			if stats.PerUnitIsNoise(raw.Avg, implied, s.cfg.Stats.BundleHighRatio, s.cfg.Stats.BundleLowRatio) {
				delete(result, rawKey)
				delete(buckets, rawKey)
				noisy = true
			}
		}
		if !noisy {
			continue
		}

		bulk := result[bulkKey]
		estKey := bucketKey{g.Enhancement, g.ItemLevel, g.Unit, 1}
		if _, taken := result[estKey]; taken {
			continue
		}
		result[estKey] = model.BucketStats{
			Count:     bulk.Count,
			Avg:       implied,
			Min:       stats.ImpliedUnitPrice(bulk.Min, bulkKey.Multiplier),
			Max:       stats.ImpliedUnitPrice(bulk.Max, bulkKey.Multiplier),
			Estimated: true,
		}
	}
}
