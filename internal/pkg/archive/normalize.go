package archive

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9 _.\-]`)

var spaces = regexp.MustCompile(`\s+`)

// NormalizeQuery 去除变音符号并剔除不安全字符，产出可直接拼入检索语句的纯净查询串
func NormalizeQuery(q string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, q)
	if err != nil {
		stripped = q
	}
	cleaned := unsafeChars.ReplaceAllString(stripped, " ")
	cleaned = spaces.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
