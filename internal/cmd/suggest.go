package cmd

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// suggestClosest returns the best fuzzy match for input among candidates,
// or "" when nothing ranks close enough to be a plausible typo.
func suggestClosest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(candidates) == 0 {
		return ""
	}

	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}

	matches := fuzzy.Find(input, lowered)
	if len(matches) == 0 {
		return ""
	}
	best := matches[0]
	// Require at least half the input to match to avoid absurd suggestions.
	if len(best.MatchedIndexes)*2 < len(input) {
		return ""
	}
	return candidates[best.Index]
}

// suggestCommand finds the closest command name to the unknown input.
func suggestCommand(unknown string, commands []string) string {
	return suggestClosest(unknown, commands)
}

// suggestFlag finds the closest flag name to the unknown input.
// Strips leading dashes from the input for comparison but returns the match
// with its original prefix.
func suggestFlag(unknown string, flagNames []string) string {
	stripped := strings.TrimLeft(unknown, "-")
	if stripped == "" {
		return ""
	}

	trimmed := make([]string, len(flagNames))
	for i, f := range flagNames {
		trimmed[i] = strings.TrimLeft(f, "-")
	}
	match := suggestClosest(stripped, trimmed)
	if match == "" {
		return ""
	}
	for i, t := range trimmed {
		if t == match {
			return flagNames[i]
		}
	}
	return ""
}

// suggestPlatform proposes a valid platform name for a typo, used in
// validation errors from --platform.
func suggestPlatform(input string, valid []string) string {
	return suggestClosest(input, valid)
}
