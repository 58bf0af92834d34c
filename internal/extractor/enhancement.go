package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxEnhancement is the highest enhancement level the game allows.
const MaxEnhancement = 15

var (
	enhRe     = regexp.MustCompile(`(\d{1,2})강`)
	noEnhRe   = regexp.MustCompile(`노강`)
	enhTailRe = regexp.MustCompile(`([가-힣]{2,})(\d{1,2})(\s|$)`)
	enhHeadRe = regexp.MustCompile(`(^|\s)(\d{1,2})([가-힣]{2,})`)
)

// ExtractEnhancement finds an enhancement level in text. "N강" and the explicit
// "노강" (level 0) are recognized first; a 1-2 digit number written directly
// against a Korean item token ("나겔반지8") is accepted as shorthand when it
// falls in [1, MaxEnhancement]. Longer digit runs are left alone so prices are
// never absorbed.
func ExtractEnhancement(text string) (int, string, bool) {
	if m := enhRe.FindStringSubmatch(text); m != nil {
		level, _ := strconv.Atoi(m[1])
		if level <= MaxEnhancement {
			remainder := strings.TrimSpace(strings.Replace(text, m[0], "", 1))
			return level, remainder, true
		}
	}

	if noEnhRe.MatchString(text) {
		remainder := strings.TrimSpace(noEnhRe.ReplaceAllString(text, ""))
		return 0, remainder, true
	}

	// Shorthand: digits glued to the end of an item token (나겔반지8).
	if loc := enhTailRe.FindStringSubmatchIndex(text); loc != nil {
		level, _ := strconv.Atoi(text[loc[4]:loc[5]])
		if level >= 1 && level <= MaxEnhancement {
			remainder := strings.TrimSpace(text[:loc[4]] + text[loc[5]:])
			return level, remainder, true
		}
	}

	// Shorthand: digits glued to the front of an item token (8나겔반지).
	if loc := enhHeadRe.FindStringSubmatchIndex(text); loc != nil {
		level, _ := strconv.Atoi(text[loc[4]:loc[5]])
		token := text[loc[6]:loc[7]]
		if level >= 1 && level <= MaxEnhancement && !isLotToken(token) {
			remainder := strings.TrimSpace(text[:loc[4]] + text[loc[5]:])
			return level, remainder, true
		}
	}

	return 0, text, false
}

// isLotToken reports words where a leading digit is a lot size, not an
// enhancement ("5개당", "2쌍팝니다").
func isLotToken(token string) bool {
	for _, prefix := range []string{"개당", "장당", "쌍"} {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}
