package model

// TradeType indicates the direction of a trade mention.
type TradeType string

const (
	TradeSell     TradeType = "sell"
	TradeBuy      TradeType = "buy"
	TradeExchange TradeType = "exchange"
)

// PriceUnit is the currency unit a price was quoted in.
type PriceUnit string

const (
	UnitGj  PriceUnit = "gj"  // 검증서 (ㄱㅈ / 장)
	UnitWon PriceUnit = "won" // 만원 (real money)
	UnitEok PriceUnit = "eok" // 억 (in-game gold)
)

// Source marks how a trade record entered the store.
type Source string

const (
	SourceRealtime Source = "realtime"
	SourceImport   Source = "import"
)

// TradeRecord is one observed trade mention, extracted from a single chat line.
// Records are immutable once created; only the cleanup loop deletes them.
type TradeRecord struct {
	ID            int64
	ItemName      string // raw phrase left after extraction
	CanonicalName string
	Enhancement   int // 0~15, 0 = none / 노강
	ItemLevel     int // 0 if absent
	Options       []string
	TradeType     TradeType
	Price         float64 // always > 0
	PriceUnit     PriceUnit
	PriceRaw      string
	SellerName    string
	Server        string
	TradeDate     string // YYYY-MM-DD, always present
	MessageTime   string // free text, optional
	Source        Source
	RawMessage    string
}

// SenderInfo identifies the author of a chat message.
type SenderInfo struct {
	Name   string
	Level  int // 0 when unknown
	Server string
}
