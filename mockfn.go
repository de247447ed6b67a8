// Package mockfn provides mock functions for Go tests.
// A mock records every invocation and can be programmed with one-shot
// implementations and return values consumed in FIFO order.
//
// This is the public API entry point. Implementation lives in internal/core.
package mockfn

import (
	"github.com/toejough/mockfn/internal/core"
)

// Types re-exported from internal/core.

// Call is the record of a single invocation of a Func.
type Call[A, R any] = core.Call[A, R]

// ErrCallIndex is wrapped by every IndexError.
var ErrCallIndex = core.ErrCallIndex //nolint:gochecknoglobals // re-exported sentinel

// Func is a mock function taking an argument tuple A and producing R.
type Func[A, R any] = core.Func[A, R]

// IndexError reports an attempt to inspect a call that was never recorded.
type IndexError = core.IndexError

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// Option configures a Func at construction time.
type Option = core.Option

// Outcome is a type-erased Result.
type Outcome = core.Outcome

// Recorder is the type-erased view of a Func's call log.
type Recorder = core.Recorder

// Result is what an invocation produced.
type Result[R any] = core.Result[R]

// Functions re-exported from internal/core.

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// New creates a mock that falls back to impl once all queued overrides are used.
// A nil impl makes the fallback result the zero value of R.
func New[A, R any](impl func(A) R, opts ...Option) *Func[A, R] {
	return core.New(impl, opts...)
}

// WithName sets the name a mock reports in errors and matcher failure messages.
func WithName(name string) Option {
	return core.WithName(name)
}
