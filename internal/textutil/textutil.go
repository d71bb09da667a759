package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ellipsis is appended by Truncate when text is cut.
const Ellipsis = "…"

var sentenceEnd = regexp.MustCompile(`[.!?。！？]\s+`)

// Clean collapses whitespace runs into single spaces and trims the result.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Sentences splits text after terminal punctuation followed by whitespace.
// Korean endings like "다." and "요." fall under the same rule.
func Sentences(text string) []string {
	text = Clean(text)
	if text == "" {
		return nil
	}

	var parts []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		_, size := utf8.DecodeRuneInString(text[loc[0]:])
		end := loc[0] + size
		parts = append(parts, text[start:end])
		start = loc[1]
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

// Truncate cuts s to limit runes and appends Ellipsis when anything was removed.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace) + Ellipsis
}

// RuneLen counts characters rather than bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// IsHangul reports whether r is a precomposed Hangul syllable.
func IsHangul(r rune) bool {
	return r >= '가' && r <= '힣'
}

// CountWordRunes counts Hangul syllables, ASCII letters and digits.
func CountWordRunes(s string) int {
	n := 0
	for _, r := range s {
		if IsHangul(r) || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			n++
		}
	}
	return n
}

// ContainsAny reports whether s contains one of needles.
func ContainsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
