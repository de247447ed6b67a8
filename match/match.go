// Package match provides matchers for mockfn mocks and the values they record.
// This package is designed to be dot-imported alongside gomega matchers:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/mockfn/match"
//	)
//
//	g.Expect(callback).To(HaveBeenNthCalledWith(1, BeNumerically(">", 0)))
package match

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/onsi/gomega/format"

	"github.com/toejough/mockfn/internal/core"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher = core.Matcher

// BeAny is a matcher that matches any value.
// Useful when you don't care about a particular argument or return value.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = anyMatcher{}

// BeCloseTo succeeds when actual is a number within half a unit of the
// given decimal precision of expected: |expected - actual| < 10^-precision / 2.
// Precision defaults to 2 digits. Infinities match only the same infinity.
func BeCloseTo(expected float64, precision ...int) *CloseToMatcher {
	digits := defaultPrecision
	if len(precision) > 0 {
		digits = precision[0]
	}

	return &CloseToMatcher{Expected: expected, Precision: digits}
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	g.Expect(args).To(Satisfies(func(x int) error {
//	    if x < 0 { return fmt.Errorf("expected positive, got %d", x) }
//	    return nil
//	}))
func Satisfies[T any](predicate func(T) error) Matcher {
	return &satisfyMatcher[T]{predicate: predicate}
}

// CloseToMatcher is the matcher returned by BeCloseTo.
type CloseToMatcher struct {
	Expected  float64
	Precision int
}

func (m *CloseToMatcher) FailureMessage(actual any) string {
	return format.Message(actual, m.describe())
}

func (m *CloseToMatcher) Match(actual any) (bool, error) {
	value, err := toFloat(actual)
	if err != nil {
		return false, err
	}

	if math.IsInf(value, 0) || math.IsInf(m.Expected, 0) {
		return value == m.Expected, nil
	}

	return math.Abs(m.Expected-value) < math.Pow(10, -float64(m.Precision))/2, nil
}

func (m *CloseToMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not "+m.describe())
}

func (m *CloseToMatcher) describe() string {
	return fmt.Sprintf("to be close to %v (%d decimal digits)", m.Expected, m.Precision)
}

// unexported constants.
const (
	defaultPrecision = 2
)

// unexported variables.
var (
	errNotNumeric   = errors.New("not a number")
	errTypeMismatch = errors.New("type mismatch")
)

// anyMatcher is the implementation of the BeAny matcher.
type anyMatcher struct{}

// FailureMessage returns an empty string since BeAny always matches.
func (anyMatcher) FailureMessage(any) string {
	return ""
}

// Match always returns true - matches any value.
func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
	lastErr   error
}

func (m *satisfyMatcher[T]) FailureMessage(actual any) string {
	if m.lastErr != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, m.lastErr)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (m *satisfyMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)

	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, *new(T), actual)
	}

	m.lastErr = m.predicate(val)

	return m.lastErr == nil, nil
}

func toFloat(actual any) (float64, error) {
	value := reflect.ValueOf(actual)

	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(value.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return value.Float(), nil
	default:
		return 0, fmt.Errorf("%w: %T", errNotNumeric, actual)
	}
}
