package parser

import (
	"testing"

	"PriceSentinel/internal/model"
)

// identityCanon resolves every phrase to itself, with an optional reject set.
type identityCanon struct {
	rejected map[string]bool
}

func (c *identityCanon) Canonicalize(phrase string) string { return phrase }
func (c *identityCanon) Rejected(canonical, raw string) bool {
	return c.rejected[canonical] || c.rejected[raw]
}

func newTestParser() *Parser {
	return New(&identityCanon{rejected: map[string]bool{}})
}

func TestParseMessage_SingleLine(t *testing.T) {
	p := newTestParser()
	trades := p.ParseMessage("나겔반지 9강 50만원 팝니다", model.SenderInfo{Name: "상인"}, "2024-03-01", "오후 9:12")
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	tr := trades[0]
	if tr.CanonicalName != "나겔반지" {
		t.Errorf("canonical = %q", tr.CanonicalName)
	}
	if tr.Enhancement != 9 {
		t.Errorf("enhancement = %d, want 9", tr.Enhancement)
	}
	if tr.Price != 50 || tr.PriceUnit != model.UnitWon {
		t.Errorf("price = %.1f %s, want 50 won", tr.Price, tr.PriceUnit)
	}
	if tr.TradeType != model.TradeSell {
		t.Errorf("trade type = %s, want sell", tr.TradeType)
	}
	if tr.TradeDate != "2024-03-01" {
		t.Errorf("trade date = %q", tr.TradeDate)
	}
}

func TestParseMessage_SectionHeaders(t *testing.T) {
	p := newTestParser()
	msg := "[팝니다]\n나겔반지 50\n암셋 ㄱㅈ30\n[삽니다]\n주작반지 40"
	trades := p.ParseMessage(msg, model.SenderInfo{}, "2024-03-01", "")
	if len(trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(trades))
	}
	if trades[0].TradeType != model.TradeSell || trades[1].TradeType != model.TradeSell {
		t.Error("lines under [팝니다] must default to sell")
	}
	if trades[2].TradeType != model.TradeBuy {
		t.Error("lines under [삽니다] must default to buy")
	}
}

func TestParseMessage_InlineDirectionOverridesSection(t *testing.T) {
	p := newTestParser()
	msg := "[팝니다]\n주작반지 교환 원해요 6250:1\n암셋 삽니다 30"
	trades := p.ParseMessage(msg, model.SenderInfo{}, "2024-03-01", "")
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade (ratio line has no price), got %d", len(trades))
	}
	if trades[0].TradeType != model.TradeBuy {
		t.Errorf("inline 삽니다 must override the sell section, got %s", trades[0].TradeType)
	}
}

func TestParseMessage_OrSplit(t *testing.T) {
	p := newTestParser()
	trades := p.ParseMessage("나겔반지 50 or 주작반지 40", model.SenderInfo{}, "2024-03-01", "")
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
}

func TestParseMessage_NoiseSkipped(t *testing.T) {
	p := newTestParser()
	msg := "홍길동님이 들어왔습니다\nhttps://open.kakao.com/o/abc123\n■■■■■■\n쿨탐 30분\n나겔반지 50"
	trades := p.ParseMessage(msg, model.SenderInfo{}, "2024-03-01", "")
	if len(trades) != 1 {
		t.Fatalf("expected only the trade line to survive, got %d", len(trades))
	}
}

func TestParseMessage_NoPriceNoRecord(t *testing.T) {
	p := newTestParser()
	trades := p.ParseMessage("나겔반지 상태 좋아요", model.SenderInfo{}, "2024-03-01", "")
	if len(trades) != 0 {
		t.Fatalf("expected 0 trades, got %d", len(trades))
	}
}

func TestParseMessage_NoDateNoRecord(t *testing.T) {
	p := newTestParser()
	trades := p.ParseMessage("나겔반지 50", model.SenderInfo{}, "", "")
	if len(trades) != 0 {
		t.Fatalf("records without a resolvable date must not be created, got %d", len(trades))
	}
}

func TestParseMessage_RejectedPatternDiscardsLine(t *testing.T) {
	p := New(&identityCanon{rejected: map[string]bool{"쓰레기값": true}})
	trades := p.ParseMessage("쓰레기값 50\n나겔반지 40", model.SenderInfo{}, "2024-03-01", "")
	if len(trades) != 1 {
		t.Fatalf("expected rejected line to be dropped, got %d trades", len(trades))
	}
	if trades[0].CanonicalName != "나겔반지" {
		t.Errorf("surviving trade = %q", trades[0].CanonicalName)
	}
}

func TestShouldSkipLine(t *testing.T) {
	skip := []string{
		"홍길동님이 들어왔습니다",
		"메시지가 삭제되었습니다",
		"https://open.kakao.com/o/abc",
		"■■■■",
		"====공지====",
		"🚨 사기 주의",
		"쿨탐 30분 남음",
		"시무제공",
		"ㅇ",
	}
	for _, line := range skip {
		if !ShouldSkipLine(line) {
			t.Errorf("%q: expected skip", line)
		}
	}
	keep := []string{"나겔반지 9강 50만원", "[팝니다]", "암셋 ㄱㅈ30"}
	for _, line := range keep {
		if ShouldSkipLine(line) {
			t.Errorf("%q: must not skip", line)
		}
	}
}

func TestDetectSectionHeader(t *testing.T) {
	tests := []struct {
		line string
		want model.TradeType
		ok   bool
	}{
		{"[팝니다]", model.TradeSell, true},
		{"■삽니다■", model.TradeBuy, true},
		{"[교환]", model.TradeExchange, true},
		{"판매!", model.TradeSell, true},
		{"[구합니다]", model.TradeBuy, true},
		{"나겔반지 팝니다 50", "", false},
	}
	for _, tt := range tests {
		got, ok := DetectSectionHeader(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%q: got (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSender(t *testing.T) {
	tests := []struct {
		sender string
		name   string
		level  int
		server string
	}{
		{"어둠기사/120/세오", "어둠기사", 120, "세오"},
		{"어둠기사/세오/120", "어둠기사", 120, "세오"},
		{"어둠기사 120 베라", "어둠기사", 120, "베라"},
		{"어둠기사", "어둠기사", 0, ""},
	}
	for _, tt := range tests {
		got := ParseSender(tt.sender)
		if got.Name != tt.name || got.Level != tt.level || got.Server != tt.server {
			t.Errorf("%q: got %+v", tt.sender, got)
		}
	}
}
