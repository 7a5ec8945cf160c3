package logline

import (
	"regexp"
	"strings"
)

// Category is the severity bucket assigned to one raw line.
type Category string

const (
	CategoryError   Category = "error"
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
	CategoryDebug   Category = "debug"
	CategoryVerbose Category = "verbose"
	CategoryANSI    Category = "ansi"
	CategoryDefault Category = "default"
)

// levelTag matches the structured logging prefix many embedded SDKs emit,
// e.g. "I (1234) wifi: connected". The letter encodes the level and the
// parenthesized number is a millisecond counter.
var levelTag = regexp.MustCompile(`^\s*([IWEVD])\s*\(\d+\)`)

var levelTagCategories = map[string]Category{
	"I": CategoryInfo,
	"W": CategoryWarning,
	"E": CategoryError,
	"V": CategoryVerbose,
	"D": CategoryDebug,
}

// keywordRules are checked in priority order against the lowercased line.
// The single-letter forms (" e ", "[e]", " e/") cover Arduino and
// Android-style tags that lack the parenthesized counter.
var keywordRules = []struct {
	category Category
	tokens   []string
}{
	{CategoryError, []string{"error", "fatal", "fail", "exception", "assert", " e ", "[e]", " e/"}},
	{CategoryWarning, []string{"warn", " w ", "[w]", " w/"}},
	{CategoryInfo, []string{"info", " i ", "[i]", " i/"}},
	{CategoryDebug, []string{"debug", "dbg", " d ", "[d]", " d/"}},
	{CategoryVerbose, []string{"verb", "trace", " v ", "[v]", " v/"}},
}

// HasANSI reports whether the line contains the ANSI escape introducer.
// Callers use it to route lines between Classify and RenderANSI.
func HasANSI(line string) bool {
	return strings.Contains(line, "\x1b[")
}

// Classify assigns a severity category to one raw line. It never fails; a
// line matching none of the heuristics gets CategoryDefault.
func Classify(line string) Category {
	if m := levelTag.FindStringSubmatch(line); m != nil {
		return levelTagCategories[m[1]]
	}
	if HasANSI(line) {
		return CategoryANSI
	}
	lowered := strings.ToLower(strings.TrimSpace(line))
	for _, rule := range keywordRules {
		for _, token := range rule.tokens {
			if strings.Contains(lowered, token) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}
