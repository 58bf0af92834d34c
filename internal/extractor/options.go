package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	parenRe     = regexp.MustCompile(`\(([^)]+)\)`)
	condRe      = regexp.MustCompile(`흥정|제공|협의|선택|불가|가능|필수|포함`)
	lotCountRe  = regexp.MustCompile(`(\d+)\s*개당`)
	lotEachRe   = regexp.MustCompile(`개당|장당`)
	lotTagNumRe = regexp.MustCompile(`^(\d+)개당$`)
)

// provideTags are multi-word supply conditions normalized to a single tag.
var provideTags = []struct {
	re  *regexp.Regexp
	tag string
}{
	{regexp.MustCompile(`시무\s*제공`), "시무제공"},
	{regexp.MustCompile(`코어\s*제공`), "코어제공"},
	{regexp.MustCompile(`에테르?\s*제공`), "에테제공"},
	{regexp.MustCompile(`구매자\s*제공`), "구매자제공"},
}

// ExtractOptions strips bonus-condition phrases from text and returns them as
// ordered tags: parenthesised conditions, supply conditions, lot-size suffixes
// (개당 / N개당 / 장당), and the inline markers 쌍 / 일반 / 무형.
func ExtractOptions(text string) ([]string, string) {
	var options []string
	cleaned := text

	for _, pm := range parenRe.FindAllStringSubmatch(cleaned, -1) {
		if condRe.MatchString(pm[1]) {
			options = append(options, strings.TrimSpace(pm[1]))
			cleaned = strings.TrimSpace(strings.Replace(cleaned, pm[0], "", 1))
		}
	}

	for _, pt := range provideTags {
		if pt.re.MatchString(cleaned) {
			options = append(options, pt.tag)
			cleaned = strings.TrimSpace(pt.re.ReplaceAllString(cleaned, ""))
		}
	}

	// Numbered lot size first so "100개당" is not split into "100" + "개당".
	if m := lotCountRe.FindStringSubmatch(cleaned); m != nil {
		options = append(options, m[1]+"개당")
		cleaned = strings.TrimSpace(strings.Replace(cleaned, m[0], "", 1))
	}
	if m := lotEachRe.FindString(cleaned); m != "" {
		options = append(options, m)
		cleaned = strings.TrimSpace(strings.Replace(cleaned, m, "", 1))
	}

	if strings.Contains(cleaned, "쌍") {
		options = append(options, "쌍")
		cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "쌍", ""))
	}
	if strings.Contains(cleaned, "일반") {
		options = append(options, "일반")
		cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "일반", ""))
	}
	if strings.Contains(cleaned, "무형") {
		options = append(options, "무형")
		cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "무형", ""))
	}

	return options, cleaned
}

// LotMultiplier reads the pricing lot size out of extracted option tags:
// 0 = no lot tag, 1 = explicit per-unit (개당/장당), N = bulk lot ("100개당").
func LotMultiplier(options []string) int {
	mult := 0
	for _, opt := range options {
		if m := lotTagNumRe.FindStringSubmatch(opt); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > mult {
				mult = n
			}
			continue
		}
		if (opt == "개당" || opt == "장당") && mult == 0 {
			mult = 1
		}
	}
	return mult
}
