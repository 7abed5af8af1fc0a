package goquery

import (
	"regexp"
	"unicode/utf8"
)

// passwordPatterns pairs a label token with an optional separator and a
// trailing alphanumeric token of at least 4 characters. Patterns are tried
// in order and the first capture wins; Latin labels match
// case-insensitively. Share passwords are conventionally published as
// "提取码: abcd" or "密码：abcd" next to the link.
var passwordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`提取码[：:]\s*([A-Za-z0-9]{4,})`),
	regexp.MustCompile(`提取码\s+([A-Za-z0-9]{4,})`),
	regexp.MustCompile(`密码[：:]\s*([A-Za-z0-9]{4,})`),
	regexp.MustCompile(`密码\s+([A-Za-z0-9]{4,})`),
	regexp.MustCompile(`(?i)pwd[：:]\s*([A-Za-z0-9]{4,})`),
	regexp.MustCompile(`(?i)password[：:]\s*([A-Za-z0-9]{4,})`),
}

// contextWindow is the number of characters of raw text inspected on each
// side of a bare-text share link when resolving its password. Measured in
// runes, not bytes: CJK prose would otherwise shrink the window to a third
// of its size. Link and password are adjacent in the same or next block in
// the common author layout, so a bounded window avoids attaching an
// unrelated password when multiple links are interleaved.
const contextWindow = 200

// passwordFromText returns the first password capture across the ordered
// pattern list, or nil if no pattern matches.
func passwordFromText(text string) *string {
	for _, re := range passwordPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			pwd := m[1]
			return &pwd
		}
	}
	return nil
}

// passwordNearOffset applies the password patterns to a window of
// contextWindow runes around the byte range [start, end), clamped to the
// text bounds.
func passwordNearOffset(text string, start, end int) *string {
	from := start
	for i := 0; i < contextWindow && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}
	to := end
	for i := 0; i < contextWindow && to < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}
	return passwordFromText(text[from:to])
}
