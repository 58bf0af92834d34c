package trade

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"PriceSentinel/internal/model"
)

const answerDivider = "━━━━━━━━━━━━"

// unitLabel maps a price unit to the label players use in chat.
func unitLabel(u model.PriceUnit) string {
	switch u {
	case model.UnitGj:
		return "ㄱㅈ"
	case model.UnitWon:
		return "만원"
	case model.UnitEok:
		return "억"
	}
	return string(u)
}

func tradeTypeLabel(t model.TradeType) string {
	switch t {
	case model.TradeSell:
		return "판매"
	case model.TradeBuy:
		return "구매"
	case model.TradeExchange:
		return "교환"
	}
	return string(t)
}

// fmtNum renders a price rounded to one decimal with no trailing zero.
func fmtNum(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}

// bucketLabel names a bucket the way a player would say it: "노강", "5강",
// "11쌍 1렙" style level tags, and the lot size when the price is per-lot.
func bucketLabel(k bucketKey) string {
	var parts []string
	switch {
	case k.Enhancement > 0:
		parts = append(parts, fmt.Sprintf("%d강", k.Enhancement))
	case k.ItemLevel == 0:
		parts = append(parts, "노강")
	}
	if k.ItemLevel > 0 {
		parts = append(parts, fmt.Sprintf("%d렙", k.ItemLevel))
	}
	if k.Multiplier > 1 {
		parts = append(parts, fmt.Sprintf("%d개당", k.Multiplier))
	} else if k.Multiplier == 1 {
		parts = append(parts, "개당")
	}
	return strings.Join(parts, " ")
}

func formatSummary(canonicalName string, days, total int, order []bucketKey, bucketStats map[bucketKey]model.BucketStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[시세] %s\n%s\n", canonicalName, answerDivider)
	fmt.Fprintf(&b, "최근 %d일 · %d건\n\n", days, total)

	for _, k := range order {
		st := bucketStats[k]
		label := bucketLabel(k)
		unit := unitLabel(k.Unit)
		if st.Estimated {
			fmt.Fprintf(&b, "· %s(추정): %s%s ※묶음 시세 환산\n", label, fmtNum(st.Avg), unit)
			continue
		}
		if st.Count == 1 || st.Min == st.Max {
			fmt.Fprintf(&b, "· %s: %s%s %d건\n", label, fmtNum(st.Avg), unit, st.Count)
			continue
		}
		fmt.Fprintf(&b, "· %s: 평균 %s%s (%s~%s) %d건\n",
			label, fmtNum(st.Avg), unit, fmtNum(st.Min), fmtNum(st.Max), st.Count)
	}

	fmt.Fprintf(&b, "\n💡 강화별 상세: !가격 5강 %s", canonicalName)
	return b.String()
}

func formatDetail(canonicalName string, enhancement, days, total int, order []bucketKey, bucketStats map[bucketKey]model.BucketStats, recent []model.TradeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[시세] %s %d강\n%s\n", canonicalName, enhancement, answerDivider)
	fmt.Fprintf(&b, "최근 %d일 · %d건\n\n", days, total)

	for _, k := range order {
		st := bucketStats[k]
		unit := unitLabel(k.Unit)
		label := ""
		if tag := bucketLabel(k); tag != fmt.Sprintf("%d강", enhancement) {
			label = " " + strings.TrimPrefix(tag, fmt.Sprintf("%d강 ", enhancement))
		}
		if st.Estimated {
			fmt.Fprintf(&b, "· 평균%s(추정): %s%s ※묶음 시세 환산\n", label, fmtNum(st.Avg), unit)
			continue
		}
		fmt.Fprintf(&b, "· 평균%s: %s%s\n", label, fmtNum(st.Avg), unit)
		if st.Count > 1 && st.Min != st.Max {
			fmt.Fprintf(&b, "· 범위%s: %s ~ %s%s\n", label, fmtNum(st.Min), fmtNum(st.Max), unit)
		}
	}

	if len(recent) > 0 {
		b.WriteString("\n최근 거래\n")
		for _, t := range recent {
			fmt.Fprintf(&b, "· %s %s%s (%s)\n",
				tradeTypeLabel(t.TradeType), fmtNum(t.Price), unitLabel(t.PriceUnit), t.TradeDate)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatNoData(canonicalName string, days int, suggestions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[시세] %s\n%s\n", canonicalName, answerDivider)
	fmt.Fprintf(&b, "최근 %d일 거래 기록이 없습니다.", days)
	if len(suggestions) > 0 {
		b.WriteString("\n\n혹시 이 아이템인가요?\n")
		for _, name := range suggestions {
			fmt.Fprintf(&b, "· %s\n", name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatNoEnhancementData(canonicalName string, enhancement, days int, available []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[시세] %s %d강\n%s\n", canonicalName, enhancement, answerDivider)
	fmt.Fprintf(&b, "최근 %d일 %d강 거래 기록이 없습니다.", days, enhancement)
	if len(available) > 0 {
		tags := make([]string, 0, len(available))
		for _, lvl := range available {
			if lvl == 0 {
				tags = append(tags, "노강")
			} else {
				tags = append(tags, fmt.Sprintf("%d강", lvl))
			}
		}
		fmt.Fprintf(&b, "\n기록 있는 강화: %s", strings.Join(tags, ", "))
	}
	return b.String()
}

// FormatStats renders the store-wide summary for the admin command.
func FormatStats(st model.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[수집 현황]\n%s\n", answerDivider)
	fmt.Fprintf(&b, "· 거래 기록: %d건\n", st.Trades)
	fmt.Fprintf(&b, "· 아이템 종류: %d개\n", st.Items)
	if st.DateFrom != "" {
		fmt.Fprintf(&b, "· 수집 기간: %s ~ %s\n", st.DateFrom, st.DateTo)
	}
	fmt.Fprintf(&b, "· 별칭: %d개\n", st.Aliases)
	fmt.Fprintf(&b, "· 차단 패턴: %d개 (활성 %d개)", st.RejectedPatterns, st.ActiveRejectedPatterns)
	return b.String()
}

// FormatMarketOverview renders the most-traded list.
func FormatMarketOverview(days int, items []model.MarketItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[거래 동향] 최근 %d일\n%s\n", days, answerDivider)
	if len(items) == 0 {
		b.WriteString("거래 기록이 없습니다.")
		return b.String()
	}
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s %d건\n", i+1, it.CanonicalName, it.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}
