package engine

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// NormTargetLanguage normalises a target-language field: empty → configured
// default ("English" unless overridden).
func NormTargetLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		if cfg.TargetLanguage != "" {
			return cfg.TargetLanguage
		}
		return "English"
	}
	return lang
}

// User-Agent string for plain (non-fingerprinted) HTTP calls.
const UserAgentBot = "GoStudy/1.0"

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}
