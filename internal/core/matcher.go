package core

import (
	"fmt"
	"reflect"
)

// Matcher defines the interface for flexible value matching.
// Any gomega matcher satisfies it.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// MatchValue checks if actual matches expected.
// If expected implements the Matcher interface, uses its Match method.
// Otherwise, uses reflect.DeepEqual for comparison.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	if matcher, ok := expected.(Matcher); ok {
		success, err := matcher.Match(actual)
		if err != nil {
			return false, err.Error()
		}

		if !success {
			return false, matcher.FailureMessage(actual)
		}

		return true, ""
	}

	if reflect.DeepEqual(actual, expected) {
		return true, ""
	}

	return false, fmt.Sprintf("expected %#v, got %#v", expected, actual)
}

// MatchAny reports the index of the first value in actuals matching expected,
// or -1 if none does. A matcher error stops the search and is returned.
func MatchAny(actuals []any, expected any) (int, error) {
	for i, actual := range actuals {
		ok, err := Matches(actual, expected)
		if err != nil {
			return -1, err
		}

		if ok {
			return i, nil
		}
	}

	return -1, nil
}

// Matches is MatchValue for callers that need a matcher's error kept apart
// from an ordinary mismatch.
func Matches(actual, expected any) (bool, error) {
	if matcher, ok := expected.(Matcher); ok {
		return matcher.Match(actual)
	}

	return reflect.DeepEqual(actual, expected), nil
}
