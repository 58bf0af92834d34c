package model

import "time"

// ItemAlias maps a short user-typed phrase to one canonical item name.
type ItemAlias struct {
	Alias         string
	CanonicalName string
	Category      string
}

// RejectedPattern is a canonical name (or raw phrase) the cleanup loop has
// judged invalid. The count only ever goes up; once it reaches the configured
// threshold the pattern blocks future ingestion of matching lines.
type RejectedPattern struct {
	Pattern     string
	RejectCount int
	LastSeen    time.Time
}

// TradeRoom is per-chat-room configuration. Collect rooms feed the parser;
// query-only rooms may ask for prices but are never parsed.
type TradeRoom struct {
	RoomID    string
	RoomName  string
	Collect   bool
	Enabled   bool
	CreatedAt string
}
