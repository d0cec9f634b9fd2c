package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var integerPattern = regexp.MustCompile(`^[+-]?\d+$`)

// normalize lower-cases s, folds non-breaking spaces and collapses whitespace so labels
// compare reliably. A trailing colon is dropped.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimSuffix(s, ":")
	return strings.ToLower(strings.TrimSpace(s))
}

// cleanText collapses whitespace without changing case.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// parseVolume strips thousands separators and whitespace and parses an integer.
// ok is false for anything that is not a plain signed integer.
func parseVolume(s string) (int64, bool) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '\u00a0', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	if s == "" || !integerPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func matchesExact(label string, aliases []string) bool {
	for _, a := range aliases {
		if label == a {
			return true
		}
	}
	return false
}

func matchesContains(label string, aliases []string) bool {
	if label == "" {
		return false
	}
	for _, a := range aliases {
		if strings.Contains(label, a) {
			return true
		}
	}
	return false
}
