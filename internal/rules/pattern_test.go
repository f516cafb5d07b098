package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		file    string
		want    bool
	}{
		{name: "Exact match", pattern: "Makefile", file: "Makefile", want: true},
		{name: "Exact mismatch", pattern: "Makefile", file: "makefile", want: false},
		{name: "Exact never matches substring", pattern: "app", file: "app.js", want: false},
		{name: "Suffix wildcard", pattern: "*.min.js", file: "app.min.js", want: true},
		{name: "Suffix wildcard mismatch", pattern: "*.min.js", file: "app.js", want: false},
		{name: "Prefix wildcard", pattern: "test_*", file: "test_main.py", want: true},
		{name: "Prefix wildcard mismatch", pattern: "test_*", file: "main_test.py", want: false},
		{name: "Bare star suffix-matches everything", pattern: "*", file: "anything.txt", want: true},
		{name: "Double wildcard treated as suffix", pattern: "*gen*", file: "autogen*", want: true},
		{name: "Double wildcard is not contains", pattern: "*gen*", file: "generated.go", want: false},
		{name: "Empty pattern only matches empty name", pattern: "", file: "a", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Matches(tt.file))
		})
	}
}

func TestPatternListMatches(t *testing.T) {
	list := PatternList{"*.pyc", "temp_*", "secrets.json"}

	assert.True(t, list.Matches("module.pyc"))
	assert.True(t, list.Matches("temp_data.csv"))
	assert.True(t, list.Matches("secrets.json"))
	assert.False(t, list.Matches("module.py"))

	// Membership is independent of list order.
	reversed := PatternList{"secrets.json", "temp_*", "*.pyc"}
	for _, name := range []string{"module.pyc", "temp_data.csv", "secrets.json", "module.py"} {
		assert.Equal(t, list.Matches(name), reversed.Matches(name), name)
	}
}
