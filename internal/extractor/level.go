package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	lvlRe      = regexp.MustCompile(`(\d+)렙`)
	lvlSlashRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)
	lvlPairRe  = regexp.MustCompile(`(\d{1,2})\s+(\d{1,2})(쌍|셋)`)
	lvlStripRe = regexp.MustCompile(`\d+렙`)
	slashStrip = regexp.MustCompile(`\d{1,2}/\d{1,2}`)
)

// ExtractItemLevel finds an item level in text: "N렙", "N/M" (M wins, the
// later listing overrides the earlier), or an adjacent "N M쌍" pair where the
// pair suffix stays in place for the option extractor.
func ExtractItemLevel(text string) (int, string, bool) {
	if m := lvlRe.FindStringSubmatch(text); m != nil {
		level, _ := strconv.Atoi(m[1])
		remainder := strings.TrimSpace(lvlStripRe.ReplaceAllString(text, ""))
		return level, remainder, true
	}

	if m := lvlSlashRe.FindStringSubmatch(text); m != nil {
		level, _ := strconv.Atoi(m[2])
		remainder := strings.TrimSpace(slashStrip.ReplaceAllString(text, ""))
		return level, remainder, true
	}

	if loc := lvlPairRe.FindStringSubmatchIndex(text); loc != nil {
		level, _ := strconv.Atoi(text[loc[4]:loc[5]])
		// Drop both numbers, keep the 쌍/셋 suffix.
		remainder := strings.TrimSpace(text[:loc[2]] + text[loc[6]:])
		return level, remainder, true
	}

	return 0, text, false
}
