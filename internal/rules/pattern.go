package rules

import "strings"

// Pattern is an excluded-file pattern compared against a file's base name,
// never its path. Three forms are recognized, determined structurally:
//
//   - "*suffix" matches any name ending with suffix
//   - "prefix*" matches any name starting with prefix
//   - anything else matches the name exactly
//
// A pattern that both starts and ends with "*" is evaluated as a suffix
// wildcard; the leading "*" is checked first and wins.
type Pattern string

// Matches reports whether name matches the pattern.
func (p Pattern) Matches(name string) bool {
	s := string(p)
	switch {
	case strings.HasPrefix(s, "*"):
		return strings.HasSuffix(name, s[1:])
	case strings.HasSuffix(s, "*"):
		return strings.HasPrefix(name, s[:len(s)-1])
	default:
		return name == s
	}
}

// PatternList is an ordered set of patterns. Order does not affect membership
// tests; a name excluded by any entry is excluded.
type PatternList []Pattern

// Matches reports whether name matches any pattern in the list.
func (l PatternList) Matches(name string) bool {
	for _, p := range l {
		if p.Matches(name) {
			return true
		}
	}
	return false
}
