package rules

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/mlavigne/checkpipe/internal/rule"
)

var digitsOnlyPattern = regexp.MustCompile(`^\d+$`)

// NonEmpty rejects empty input.
func NonEmpty() rule.Rule[string] {
	return rule.Rule[string]{
		Name:      "non_empty",
		Message:   "Input is empty",
		Predicate: func(input string) bool { return len(input) > 0 },
	}
}

// DigitsOnly rejects input containing anything other than decimal digits.
// Empty input is rejected too; combine with NonEmpty to report emptiness
// separately.
func DigitsOnly() rule.Rule[string] {
	return rule.Rule[string]{
		Name:      "digits_only",
		Message:   "Input should only contain digits",
		Predicate: digitsOnlyPattern.MatchString,
	}
}

// MinLength rejects input shorter than n characters.
func MinLength(n int) rule.Rule[string] {
	return rule.Rule[string]{
		Name:      "min_length",
		Message:   fmt.Sprintf("Input must be at least %d characters", n),
		Predicate: func(input string) bool { return utf8.RuneCountInString(input) >= n },
	}
}

// MaxLength rejects input longer than n characters.
func MaxLength(n int) rule.Rule[string] {
	return rule.Rule[string]{
		Name:      "max_length",
		Message:   fmt.Sprintf("Input must be at most %d characters", n),
		Predicate: func(input string) bool { return utf8.RuneCountInString(input) <= n },
	}
}

// Matches rejects input the pattern does not match.
func Matches(pattern *regexp.Regexp) rule.Rule[string] {
	return rule.Rule[string]{
		Name:      "matches",
		Message:   fmt.Sprintf("Input must match %s", pattern.String()),
		Predicate: pattern.MatchString,
	}
}

// OneOf rejects input that is not one of the allowed values.
func OneOf(values ...string) rule.Rule[string] {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return rule.Rule[string]{
		Name:    "one_of",
		Message: "Input is not an allowed value",
		Predicate: func(input string) bool {
			_, ok := allowed[input]
			return ok
		},
	}
}
