package model

// PriceSample is one statistics input row pulled from the store.
type PriceSample struct {
	Enhancement int
	ItemLevel   int
	Unit        PriceUnit
	Options     []string
	Multiplier  int // pricing lot size: 0 = untagged, 1 = explicit per-unit, N = bulk lot
	Price       float64
	TradeType   TradeType
	TradeDate   string
}

// BucketStats summarizes one (enhancement, level, unit, multiplier) bucket.
type BucketStats struct {
	Count     int
	Avg       float64 // outlier-trimmed
	Min       float64
	Max       float64
	Estimated bool // derived from bulk-lot pricing, not raw observations
}

// QueryResult is the answer to a price query.
type QueryResult struct {
	Answer  string
	Sources []TradeRecord
}

// ImportResult reports a finished chat-export import.
type ImportResult struct {
	MessagesParsed int
	TradesInserted int
}

// CleanupResult reports one cleanup/learning pass.
type CleanupResult struct {
	Removed  int
	Kept     int
	Examples []string // sample of removed canonical names
}

// Stats is the store-wide summary.
type Stats struct {
	Trades                 int
	Items                  int
	DateFrom               string
	DateTo                 string
	Aliases                int
	RejectedPatterns       int
	ActiveRejectedPatterns int
}

// MarketItem is one row of the market overview (most traded items).
type MarketItem struct {
	CanonicalName string
	Count         int
}

// DailyVolume is the trade count for one calendar date.
type DailyVolume struct {
	Date  string
	Count int
}
