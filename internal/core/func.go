// Package core provides the internal implementation of mockfn's mock
// functions and the value matching they are inspected with.
package core

import (
	"sync"
)

// Func is a mock function taking an argument tuple A and producing R.
// It records every invocation and can be programmed with one-shot
// implementations and return values that are consumed in FIFO order.
//
// Multi-argument callables use a struct for A.
type Func[A, R any] struct {
	name string

	mu             sync.Mutex // Protects everything below
	impl           func(A) R
	implQueue      []func(A) R
	valueQueue     []R
	returnValue    R
	hasReturnValue bool
	calls          []Call[A, R]
}

// New creates a Func that falls back to impl once all queued overrides are used.
// A nil impl makes the fallback result the zero value of R.
func New[A, R any](impl func(A) R, opts ...Option) *Func[A, R] {
	o := newOptions(opts)

	return &Func[A, R]{
		name: o.name,
		impl: impl,
	}
}

// ArgsOfCall returns the arguments of call n (0-based).
func (f *Func[A, R]) ArgsOfCall(n int) (A, error) {
	call, err := f.Call(n)

	return call.Args, err
}

// Call returns the full record of call n (0-based).
func (f *Func[A, R]) Call(n int) (Call[A, R], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n < 0 || n >= len(f.calls) {
		return Call[A, R]{}, &IndexError{Name: f.name, Index: n, Len: len(f.calls)}
	}

	return f.calls[n], nil
}

// CallCount returns the number of times the mock has been invoked.
func (f *Func[A, R]) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.calls)
}

// Calls returns a copy of the call log, oldest first.
func (f *Func[A, R]) Calls() []Call[A, R] {
	f.mu.Lock()
	defer f.mu.Unlock()

	calls := make([]Call[A, R], len(f.calls))
	copy(calls, f.calls)

	return calls
}

// Fn returns the mock as a plain function, for injecting into code under test.
func (f *Func[A, R]) Fn() func(A) R {
	return f.Invoke
}

// Implementation replaces the default implementation.
// It also discards any value set with ReturnValue, so the latest of the two wins.
func (f *Func[A, R]) Implementation(impl func(A) R) *Func[A, R] {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero R

	f.impl = impl
	f.returnValue = zero
	f.hasReturnValue = false

	return f
}

// ImplementationOnce queues impl to handle exactly one future call.
// Queued implementations are used before queued return values.
func (f *Func[A, R]) ImplementationOnce(impl func(A) R) *Func[A, R] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.implQueue = append(f.implQueue, impl)

	return f
}

// Invoke calls the mock, recording args and the result.
//
// The result comes from, in order: the next queued implementation, the next
// queued return value, the value set with ReturnValue, the default
// implementation, or the zero value of R.
//
// The call is logged before the implementation runs and marked completed
// when it returns. A panicking implementation is recorded as such and its
// panic value is re-raised unchanged.
func (f *Func[A, R]) Invoke(args A) R {
	f.mu.Lock()
	index := len(f.calls)
	f.calls = append(f.calls, Call[A, R]{Args: args})
	impl := f.next()
	f.mu.Unlock()

	returned := false

	defer func() {
		if returned {
			return
		}

		// nil here means runtime.Goexit (e.g. t.FailNow), not a panic.
		panicValue := recover()
		if panicValue == nil {
			return
		}

		f.setResult(index, Result[R]{Completed: true, Panicked: true, PanicValue: panicValue})

		panic(panicValue)
	}()

	result := impl(args)
	returned = true

	f.setResult(index, Result[R]{Value: result, Completed: true})

	return result
}

// LastCall returns the record of the most recent call.
func (f *Func[A, R]) LastCall() (Call[A, R], error) {
	return f.Call(f.CallCount() - 1)
}

// Name returns the name given with WithName.
func (f *Func[A, R]) Name() string {
	return f.name
}

// Pending returns the number of queued overrides not yet consumed.
func (f *Func[A, R]) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.implQueue) + len(f.valueQueue)
}

// RawArgs returns the arguments of call n as an any.
func (f *Func[A, R]) RawArgs(n int) (any, error) {
	call, err := f.Call(n)
	if err != nil {
		return nil, err
	}

	return call.Args, nil
}

// RawOutcome returns the result of call n with its value as an any.
func (f *Func[A, R]) RawOutcome(n int) (Outcome, error) {
	call, err := f.Call(n)
	if err != nil {
		return Outcome{}, err
	}

	return call.Result.outcome(), nil
}

// ResultOfCall returns the value produced by call n (0-based).
// A call that panicked reports the zero value; see Call for the panic value.
func (f *Func[A, R]) ResultOfCall(n int) (R, error) {
	call, err := f.Call(n)

	return call.Result.Value, err
}

// ReturnValue sets the value returned once all queued overrides are used,
// ahead of the default implementation. Later calls overwrite it.
func (f *Func[A, R]) ReturnValue(value R) *Func[A, R] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.returnValue = value
	f.hasReturnValue = true

	return f
}

// ReturnValueOnce queues value to be returned by exactly one future call.
func (f *Func[A, R]) ReturnValueOnce(value R) *Func[A, R] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.valueQueue = append(f.valueQueue, value)

	return f
}

// next pops the behavior for the current call.
// Must be called with f.mu held.
func (f *Func[A, R]) next() func(A) R {
	switch {
	case len(f.implQueue) > 0:
		impl := f.implQueue[0]
		f.implQueue = f.implQueue[1:]

		if impl == nil {
			return zeroImpl[A, R]
		}

		return impl
	case len(f.valueQueue) > 0:
		value := f.valueQueue[0]
		f.valueQueue = f.valueQueue[1:]

		return constImpl[A](value)
	case f.hasReturnValue:
		return constImpl[A](f.returnValue)
	case f.impl != nil:
		return f.impl
	default:
		return zeroImpl[A, R]
	}
}

func (f *Func[A, R]) setResult(index int, result Result[R]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[index].Result = result
}

func constImpl[A, R any](value R) func(A) R {
	return func(A) R {
		return value
	}
}

func zeroImpl[A, R any](A) R {
	var zero R

	return zero
}
