// Package badge extracts the Teams badge count from log lines.
package badge

import (
	"regexp"
	"strconv"
)

// defaultPatterns are tried in order; the first capture that parses wins.
// The order matters: missedActivityCount is the authoritative field when a
// line carries more than one counter, and the loose "badge count" phrase is
// a last resort for older log formats.
var defaultPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)"missedActivityCount"\s*:\s*(\d+)`),
	regexp.MustCompile(`(?i)"badgeCount"\s*:\s*(\d+)`),
	regexp.MustCompile(`(?i)badge count[^0-9]*(\d+)`),
}

// Extractor applies an ordered pattern list to log lines. The list is fixed
// at construction; an Extractor holds no mutable state and is safe for
// concurrent use by multiple watch sessions.
type Extractor struct {
	patterns []*regexp.Regexp
}

// Default returns an Extractor with the standard Teams badge patterns.
func Default() *Extractor {
	return &Extractor{patterns: defaultPatterns}
}

// NewExtractor builds an Extractor from a custom pattern list. Each pattern
// must carry one capture group holding the digits to parse.
func NewExtractor(patterns []*regexp.Regexp) *Extractor {
	ps := make([]*regexp.Regexp, len(patterns))
	copy(ps, patterns)
	return &Extractor{patterns: ps}
}

// Extract returns the badge count embedded in line, or false if no pattern
// matches. A match whose capture fails to parse as a non-negative integer
// falls through to the next pattern instead of failing the call.
func (e *Extractor) Extract(line string) (int, bool) {
	for _, p := range e.patterns {
		m := p.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 0 {
			continue
		}
		return n, true
	}
	return 0, false
}
