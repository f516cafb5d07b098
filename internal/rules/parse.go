package rules

import "strings"

// ParseList splits a raw config value into trimmed, non-empty tokens. A value
// containing any comma is split on commas, otherwise on newlines. The comma
// check runs first on the whole value, so newline-delimited items inside a
// comma-delimited value stay part of their token.
func ParseList(text string) []string {
	if text == "" {
		return nil
	}
	sep := "\n"
	if strings.Contains(text, ",") {
		sep = ","
	}
	var items []string
	for _, item := range strings.Split(text, sep) {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
