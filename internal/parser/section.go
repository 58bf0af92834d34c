package parser

import (
	"regexp"
	"strings"

	"PriceSentinel/internal/model"
)

var (
	sellHeaderRe     = regexp.MustCompile(`^\[?\s*[■◆]*\s*(팝니다|판매|팜)\s*[■◆]*\s*\]?$`)
	buyHeaderRe      = regexp.MustCompile(`^\[?\s*[■◆]*\s*(삽니다|구매|구합니다)\s*[■◆]*\s*\]?$`)
	exchangeHeaderRe = regexp.MustCompile(`^\[?\s*[■◆]*\s*(교환|교환합니다)\s*[■◆]*\s*\]?$`)
	bareSellRe       = regexp.MustCompile(`^판매!?\s*$`)
)

// DetectSectionHeader recognizes a direction-section header line such as
// "[팝니다]" or "■삽니다■". Headers carry no trade of their own; they set the
// default direction for the lines that follow.
func DetectSectionHeader(line string) (model.TradeType, bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case sellHeaderRe.MatchString(trimmed), bareSellRe.MatchString(trimmed):
		return model.TradeSell, true
	case buyHeaderRe.MatchString(trimmed):
		return model.TradeBuy, true
	case exchangeHeaderRe.MatchString(trimmed):
		return model.TradeExchange, true
	}
	return "", false
}
