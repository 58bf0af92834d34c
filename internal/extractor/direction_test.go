package extractor

import (
	"testing"

	"PriceSentinel/internal/model"
)

func TestDetectTradeType(t *testing.T) {
	tests := []struct {
		text string
		want model.TradeType
		ok   bool
	}{
		{"나겔반지 팝니다", model.TradeSell, true},
		{"나겔반지 판매합니다", model.TradeSell, true},
		{"ㅍ 나겔반지", model.TradeSell, true},
		{"나겔반지 삽니다", model.TradeBuy, true},
		{"나겔반지 구합니다", model.TradeBuy, true},
		{"ㅅ 나겔반지", model.TradeBuy, true},
		{"나겔반지 교환", model.TradeExchange, true},
		{"주작반지로 바꿔요", model.TradeExchange, true},
		{"암셋 ↔ 생셋", model.TradeExchange, true},
		{"나겔반지 50", "", false},
	}
	for _, tt := range tests {
		got, ok := DetectTradeType(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%q: got (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDetectTradeType_ExchangeWins(t *testing.T) {
	// Mixed sell+exchange listings must read as exchange.
	got, ok := DetectTradeType("나겔반지 팝니다 맞교도 가능")
	if !ok || got != model.TradeExchange {
		t.Errorf("got (%q, %v), want (exchange, true)", got, ok)
	}
}
