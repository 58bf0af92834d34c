package extractor

import (
	"regexp"
	"strings"

	"PriceSentinel/internal/model"
)

var (
	exchangeRe = regexp.MustCompile(`교환|맞교|↔|⇔|로\s*바꿔`)
	sellRe     = regexp.MustCompile(`팝니다|팜니다|판매합니다`)
	buyRe      = regexp.MustCompile(`삽니다|구매합니다|구합니다`)
	sellAbbrRe = regexp.MustCompile(`^ㅍ`)
	buyAbbrRe  = regexp.MustCompile(`^ㅅ[^ㅅ]`)
)

// DetectTradeType finds directional vocabulary inside a trade line. Exchange
// wording wins over sell/buy wording: mixed sell+exchange messages are common
// and an exchange listing has no comparable price.
func DetectTradeType(text string) (model.TradeType, bool) {
	trimmed := strings.TrimSpace(text)
	if exchangeRe.MatchString(trimmed) {
		return model.TradeExchange, true
	}
	if sellRe.MatchString(trimmed) {
		return model.TradeSell, true
	}
	if buyRe.MatchString(trimmed) {
		return model.TradeBuy, true
	}
	if sellAbbrRe.MatchString(trimmed) {
		return model.TradeSell, true
	}
	if buyAbbrRe.MatchString(trimmed) {
		return model.TradeBuy, true
	}
	return "", false
}
