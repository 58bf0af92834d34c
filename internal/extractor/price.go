// Package extractor pulls prices, enhancement levels, item levels, bonus
// options, and trade directions out of chat-line fragments. Every extractor is
// a pure function over the remaining text: it returns the extracted value plus
// the fragment with the matched substring removed, or reports no match and
// leaves the input untouched.
package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"PriceSentinel/internal/model"
)

// PriceMatch is one extracted price with its currency unit and source text.
type PriceMatch struct {
	Price float64
	Unit  model.PriceUnit
	Raw   string
}

// Bare trailing numbers outside this range are too ambiguous to read as prices.
const (
	bareMinPrice = 3
	bareMaxPrice = 9999
)

var (
	ratioRe    = regexp.MustCompile(`\d{3,}:\d`)
	odEokRe    = regexp.MustCompile(`ㅇㄷ\s*(\d+\.?\d*)\s*억`)
	gjPrefixRe = regexp.MustCompile(`ㄱㅈ\s*(\d+\.?\d*)`)
	gjSuffixRe = regexp.MustCompile(`(\d+\.?\d*)\s*ㄱㅈ`)
	manWonRe   = regexp.MustCompile(`(\d+\.?\d*)\s*만\s*원`)
	eokRe      = regexp.MustCompile(`(\d+\.?\d*)\s*억`)
	jangMidRe  = regexp.MustCompile(`(\d+\.?\d*)\s*장에?\s`)
	jangEndRe  = regexp.MustCompile(`(\d+\.?\d*)\s*장$`)
	bareTailRe = regexp.MustCompile(`\s(\d+\.?\d*)\s*$`)
)

// pricePatterns are tried in priority order; the first hit wins.
var pricePatterns = []struct {
	re   *regexp.Regexp
	unit model.PriceUnit
}{
	{odEokRe, model.UnitEok},
	{gjPrefixRe, model.UnitGj},
	{gjSuffixRe, model.UnitGj},
	{manWonRe, model.UnitWon},
	{eokRe, model.UnitEok},
	{jangMidRe, model.UnitGj}, // 장 ≡ ㄱㅈ
	{jangEndRe, model.UnitGj},
}

// ExtractPrice finds the first price mention in text. Exchange-ratio fragments
// like "6250:1" never yield a price.
func ExtractPrice(text string) (PriceMatch, string, bool) {
	if ratioRe.MatchString(text) {
		return PriceMatch{}, text, false
	}

	for _, p := range pricePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		price, err := strconv.ParseFloat(m[1], 64)
		if err != nil || price <= 0 {
			continue
		}
		remainder := strings.TrimSpace(strings.Replace(text, m[0], " ", 1))
		return PriceMatch{Price: price, Unit: p.unit, Raw: strings.TrimSpace(m[0])}, remainder, true
	}

	// Bare number at the end of the line, unit implied (ㄱㅈ omitted).
	if m := bareTailRe.FindStringSubmatch(text); m != nil {
		price, err := strconv.ParseFloat(m[1], 64)
		if err == nil && price >= bareMinPrice && price <= bareMaxPrice {
			remainder := strings.TrimSpace(bareTailRe.ReplaceAllString(text, ""))
			return PriceMatch{Price: price, Unit: model.UnitGj, Raw: m[1]}, remainder, true
		}
	}

	return PriceMatch{}, text, false
}
