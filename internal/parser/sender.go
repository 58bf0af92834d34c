package parser

import (
	"regexp"
	"strconv"
	"strings"

	"PriceSentinel/internal/model"
)

// serverNames are the community's server tags as they appear in nicknames.
var serverNames = []string{"세오", "베라", "도가"}

var senderLevelRe = regexp.MustCompile(`^\d{1,3}$`)

// ParseSender splits a chat nickname like "어둠기사/120/세오" or "어둠기사 120 세오"
// into name, level, and server tag. Anything unrecognized stays in the name.
func ParseSender(sender string) model.SenderInfo {
	info := model.SenderInfo{Name: sender}

	if parts := splitTrim(sender, "/"); len(parts) >= 2 {
		info.Name = parts[0]
		fillLevelServer(&info, parts[1:])
		return info
	}

	if parts := strings.Fields(sender); len(parts) >= 2 {
		info.Name = parts[0]
		fillLevelServer(&info, parts[1:])
		return info
	}

	return info
}

func splitTrim(s, sep string) []string {
	if !strings.Contains(s, sep) {
		return nil
	}
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func fillLevelServer(info *model.SenderInfo, parts []string) {
	for _, part := range parts {
		if senderLevelRe.MatchString(part) {
			if n, err := strconv.Atoi(part); err == nil {
				info.Level = n
			}
			continue
		}
		for _, s := range serverNames {
			if strings.Contains(part, s) {
				info.Server = part
				break
			}
		}
	}
}
