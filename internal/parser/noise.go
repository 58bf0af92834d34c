package parser

import (
	"regexp"
	"strings"
)

// skipPatterns is the chat-noise blocklist: system notices, scam warnings,
// open-chat boilerplate, decorative separators. Lines matching any pattern are
// dropped before extraction.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://`),
	regexp.MustCompile(`님이\s*(들어왔습니다|나갔습니다)`),
	regexp.MustCompile(`^메시지가\s*삭제되었습니다`),
	regexp.MustCompile(`^카카오톡\s*오픈채팅`),
	regexp.MustCompile(`^링크를\s*선택하면`),
	regexp.MustCompile(`^불법촬영물`),
	regexp.MustCompile(`^동영상\s*또는`),
	regexp.MustCompile(`^운영정책을`),
	regexp.MustCompile(`오픈톡\s*주세요`),
	regexp.MustCompile(`귓\s*(주세요|드렸|드림|말)`),
	regexp.MustCompile(`^본[캐케]거래`),
	regexp.MustCompile(`인게임.*귓`),
	regexp.MustCompile(`사기꾼`),
	regexp.MustCompile(`^🚨`),
	regexp.MustCompile(`^🔥`),
	regexp.MustCompile(`^\[오픈채팅봇\]`),
	regexp.MustCompile(`^[■□◆◇●○☆★\-=~_<>]{3,}`),
	regexp.MustCompile(`쿨탐\s*\d+분`),
	regexp.MustCompile(`^타인.*사칭`),
	regexp.MustCompile(`^3자사기`),
	regexp.MustCompile(`^[가-힣]+\s*제공$`), // standalone supply condition, no item
}

// ShouldSkipLine reports whether a line is noise.
func ShouldSkipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len([]rune(trimmed)) < 2 {
		return true
	}
	for _, p := range skipPatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}
