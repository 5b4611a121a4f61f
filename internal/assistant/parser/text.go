package parser

import (
	"regexp"
	"strings"
)

// text pairs a lowercased matching copy with the original-case copy at the
// same byte offsets, so slot values can be sliced with the user's casing
// intact. Clause extraction works peel-and-replace style: match on lower,
// slice from orig, remove the clause, continue on the remainder.
type text struct {
	lower string
	orig  string
}

func newText(orig string) text {
	orig = strings.Join(strings.Fields(orig), " ")
	lower := strings.ToLower(orig)
	if len(lower) != len(orig) {
		orig = lower
	}
	return text{lower: lower, orig: orig}
}

func (t text) empty() bool { return t.orig == "" }

// cut removes [start, end) and returns the removed original-case substring
// and the re-normalized remainder.
func (t text) cut(start, end int) (string, text) {
	removed := strings.TrimSpace(t.orig[start:end])
	return removed, newText(t.orig[:start] + " " + t.orig[end:])
}

// peelMatch removes re's first match and returns the original-case text of
// capture group 1 (or of the whole match when the regex has no group).
func peelMatch(t text, re *regexp.Regexp) (string, text, bool) {
	loc := re.FindStringSubmatchIndex(t.lower)
	if loc == nil {
		return "", t, false
	}
	start, end := loc[0], loc[1]
	valStart, valEnd := start, end
	if len(loc) >= 4 && loc[2] >= 0 {
		valStart, valEnd = loc[2], loc[3]
	}
	value := strings.TrimSpace(t.orig[valStart:valEnd])
	_, rest := t.cut(start, end)
	return value, rest, true
}

// peelClause removes the first "<key> <value>" clause, where the value runs
// from just after the key to the earliest stop-keyword match or end of text.
func peelClause(t text, keyRe, stopRe *regexp.Regexp) (string, text, bool) {
	keyLoc := keyRe.FindStringIndex(t.lower)
	if keyLoc == nil {
		return "", t, false
	}

	valStart := keyLoc[1]
	valEnd := len(t.lower)
	if stopRe != nil {
		if stopLoc := stopRe.FindStringIndex(t.lower[valStart:]); stopLoc != nil {
			valEnd = valStart + stopLoc[0]
		}
	}

	value := strings.TrimSpace(t.orig[valStart:valEnd])
	_, rest := t.cut(keyLoc[0], valEnd)
	return value, rest, true
}

// firstRunes truncates s to at most n runes.
func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
