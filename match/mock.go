package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/toejough/mockfn/internal/core"
)

// HaveBeenCalled succeeds when the mock was called at least once.
func HaveBeenCalled() types.GomegaMatcher {
	return &recorderMatcher{
		expectation: "to have been called",
		describe:    describeCalls,
		match: func(rec core.Recorder) (bool, error) {
			return rec.CallCount() > 0, nil
		},
	}
}

// HaveBeenCalledTimes succeeds when the mock was called exactly times times.
func HaveBeenCalledTimes(times int) types.GomegaMatcher {
	return &recorderMatcher{
		expectation: fmt.Sprintf("to have been called %d times", times),
		describe:    describeCalls,
		match: func(rec core.Recorder) (bool, error) {
			return rec.CallCount() == times, nil
		},
	}
}

// HaveBeenCalledWith succeeds when any call's arguments match args.
// args may be a literal value or a matcher.
func HaveBeenCalledWith(args any) types.GomegaMatcher {
	return &recorderMatcher{
		expectation: "to have been called with\n" + format.Object(args, 1),
		describe:    describeCalls,
		match: func(rec core.Recorder) (bool, error) {
			all, err := allArgs(rec)
			if err != nil {
				return false, err
			}

			index, err := core.MatchAny(all, args)

			return index >= 0, err
		},
	}
}

// HaveBeenLastCalledWith succeeds when the most recent call's arguments match args.
func HaveBeenLastCalledWith(args any) types.GomegaMatcher {
	return &recorderMatcher{
		expectation: "to have been last called with\n" + format.Object(args, 1),
		describe:    describeCalls,
		match: func(rec core.Recorder) (bool, error) {
			return nthArgsMatch(rec, rec.CallCount(), args)
		},
	}
}

// HaveBeenNthCalledWith succeeds when the arguments of call nth match args.
// nth counts from 1: the first call is 1.
func HaveBeenNthCalledWith(nth int, args any) types.GomegaMatcher {
	return &recorderMatcher{
		expectation: fmt.Sprintf("call %d to have been made with\n%s", nth, format.Object(args, 1)),
		describe:    describeCalls,
		match: func(rec core.Recorder) (bool, error) {
			if nth < 1 {
				return false, fmt.Errorf("%w: %d", errNthNotPositive, nth)
			}

			return nthArgsMatch(rec, nth, args)
		},
	}
}

// HaveLastReturnedWith succeeds when the most recent call returned a value matching value.
func HaveLastReturnedWith(value any) types.GomegaMatcher {
	return &recorderMatcher{
		expectation: "to have last returned\n" + format.Object(value, 1),
		describe:    describeOutcomes,
		match: func(rec core.Recorder) (bool, error) {
			return nthOutcomeMatch(rec, rec.CallCount(), value)
		},
	}
}

// HaveNthReturnedWith succeeds when call nth (counting from 1) returned a value matching value.
func HaveNthReturnedWith(nth int, value any) types.GomegaMatcher {
	return &recorderMatcher{
		expectation: fmt.Sprintf("call %d to have returned\n%s", nth, format.Object(value, 1)),
		describe:    describeOutcomes,
		match: func(rec core.Recorder) (bool, error) {
			if nth < 1 {
				return false, fmt.Errorf("%w: %d", errNthNotPositive, nth)
			}

			return nthOutcomeMatch(rec, nth, value)
		},
	}
}

// HaveReturned succeeds when at least one call returned without panicking.
// Calls still running do not count.
func HaveReturned() types.GomegaMatcher {
	return &recorderMatcher{
		expectation: "to have returned",
		describe:    describeOutcomes,
		match: func(rec core.Recorder) (bool, error) {
			returned, err := returnedValues(rec)

			return len(returned) > 0, err
		},
	}
}

// HaveReturnedTimes succeeds when exactly times calls returned without panicking.
func HaveReturnedTimes(times int) types.GomegaMatcher {
	return &recorderMatcher{
		expectation: fmt.Sprintf("to have returned %d times", times),
		describe:    describeOutcomes,
		match: func(rec core.Recorder) (bool, error) {
			returned, err := returnedValues(rec)

			return len(returned) == times, err
		},
	}
}

// HaveReturnedWith succeeds when any call returned a value matching value.
func HaveReturnedWith(value any) types.GomegaMatcher {
	return &recorderMatcher{
		expectation: "to have returned\n" + format.Object(value, 1),
		describe:    describeOutcomes,
		match: func(rec core.Recorder) (bool, error) {
			returned, err := returnedValues(rec)
			if err != nil {
				return false, err
			}

			index, err := core.MatchAny(returned, value)

			return index >= 0, err
		},
	}
}

// unexported variables.
var (
	errNotRecorder    = errors.New("expected a mock recording its calls")
	errNthNotPositive = errors.New("call number must be 1 or more")
)

// recorderMatcher is the common shape of every mock matcher: a predicate over
// the call log and a description of the log for failure messages.
type recorderMatcher struct {
	expectation string
	describe    func(core.Recorder) string
	match       func(core.Recorder) (bool, error)
}

func (m *recorderMatcher) FailureMessage(actual any) string {
	return m.message(actual, "")
}

func (m *recorderMatcher) Match(actual any) (bool, error) {
	rec, ok := actual.(core.Recorder)
	if !ok {
		return false, fmt.Errorf("%w, got %T", errNotRecorder, actual)
	}

	return m.match(rec)
}

func (m *recorderMatcher) NegatedFailureMessage(actual any) string {
	return m.message(actual, "not ")
}

func (m *recorderMatcher) message(actual any, negation string) string {
	rec, ok := actual.(core.Recorder)
	if !ok {
		return format.Message(actual, negation+m.expectation)
	}

	return fmt.Sprintf("Expected %s %s%s\n%s", rec.Name(), negation, m.expectation, m.describe(rec))
}

func allArgs(rec core.Recorder) ([]any, error) {
	count := rec.CallCount()
	all := make([]any, 0, count)

	for i := range count {
		args, err := rec.RawArgs(i)
		if err != nil {
			return nil, err
		}

		all = append(all, args)
	}

	return all, nil
}

func describeCalls(rec core.Recorder) string {
	count := rec.CallCount()
	if count == 0 {
		return "but it was never called"
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "but it was called %d times:", count)

	for i := range count {
		args, err := rec.RawArgs(i)
		if err != nil {
			break
		}

		fmt.Fprintf(&builder, "\n  call %d:\n%s", i+1, format.Object(args, 2))
	}

	return builder.String()
}

func describeOutcomes(rec core.Recorder) string {
	count := rec.CallCount()
	if count == 0 {
		return "but it was never called"
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "but it was called %d times:", count)

	for i := range count {
		outcome, err := rec.RawOutcome(i)
		if err != nil {
			break
		}

		if !outcome.Completed {
			fmt.Fprintf(&builder, "\n  call %d has not completed", i+1)

			continue
		}

		if outcome.Panicked {
			fmt.Fprintf(&builder, "\n  call %d panicked with:\n%s", i+1, format.Object(outcome.PanicValue, 2))

			continue
		}

		fmt.Fprintf(&builder, "\n  call %d returned:\n%s", i+1, format.Object(outcome.Value, 2))
	}

	return builder.String()
}

// nthArgsMatch reports whether call nth (1-based) exists and its args match expected.
func nthArgsMatch(rec core.Recorder, nth int, expected any) (bool, error) {
	if nth < 1 || nth > rec.CallCount() {
		return false, nil
	}

	args, err := rec.RawArgs(nth - 1)
	if err != nil {
		return false, err
	}

	return core.Matches(args, expected)
}

// nthOutcomeMatch reports whether call nth (1-based) exists, has returned,
// and its value matches expected.
func nthOutcomeMatch(rec core.Recorder, nth int, expected any) (bool, error) {
	if nth < 1 || nth > rec.CallCount() {
		return false, nil
	}

	outcome, err := rec.RawOutcome(nth - 1)
	if err != nil {
		return false, err
	}

	if !outcome.Completed || outcome.Panicked {
		return false, nil
	}

	return core.Matches(outcome.Value, expected)
}

// returnedValues collects the values of every completed call that did not panic.
func returnedValues(rec core.Recorder) ([]any, error) {
	count := rec.CallCount()
	values := make([]any, 0, count)

	for i := range count {
		outcome, err := rec.RawOutcome(i)
		if err != nil {
			return nil, err
		}

		if outcome.Completed && !outcome.Panicked {
			values = append(values, outcome.Value)
		}
	}

	return values, nil
}
