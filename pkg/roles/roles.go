// Package roles pulls a coarse role token and an experience tier out of a free-text request.
package roles

import (
	"strings"
)

// Level is an experience tier.
type Level string

const (
	// Entry covers entry-level and junior roles.
	Entry Level = "entry"
	// Mid is the default tier.
	Mid Level = "mid"
	// Senior covers senior, lead and principal roles.
	Senior Level = "senior"
	// Executive covers director-level roles and above.
	Executive Level = "executive"
)

// DefaultRole is used when the request has no words at all.
const DefaultRole = "developer"

type tier struct {
	level    Level
	keywords []string
}

// Checked in order. The first tier with a matching keyword wins.
//
//nolint:gochecknoglobals // Fixed lookup table
var tiers = []tier{
	{level: Entry, keywords: []string{"entry", "junior", "fresh", "new graduate"}},
	{level: Mid, keywords: []string{"mid", "intermediate", "experienced"}},
	{level: Senior, keywords: []string{"senior", "lead", "principal"}},
	{level: Executive, keywords: []string{"executive", "director", "vp", "head", "chief"}},
}

// Levels returns every tier in lookup order.
func Levels() (levels []Level) {
	levels = make([]Level, 0, len(tiers))
	for _, t := range tiers {
		levels = append(levels, t.level)
	}
	return levels
}

// Extract returns the first word of text as the role token and the detected tier.
// Keywords match as substrings, so "leadership" counts as senior.
func Extract(text string) (role string, level Level) {
	role = DefaultRole
	fields := strings.Fields(text)
	if len(fields) > 0 {
		role = fields[0]
	}

	level = Mid
	lower := strings.ToLower(text)
	for _, t := range tiers {
		for _, keyword := range t.keywords {
			if strings.Contains(lower, keyword) {
				level = t.level
				return role, level
			}
		}
	}

	return role, level
}

// SalaryKey returns the tier's key in an organization's salary table.
func (l Level) SalaryKey() (key string) {
	key = string(l) + "_level"
	return key
}
