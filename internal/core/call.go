package core

// Call is the record of a single invocation of a Func.
type Call[A, R any] struct {
	Args   A
	Result Result[R]
}

// Result is what an invocation produced.
// Completed is false while the call is still running. Once it is true,
// exactly one of Value or PanicValue is meaningful, depending on Panicked.
type Result[R any] struct {
	Value      R
	Completed  bool
	Panicked   bool
	PanicValue any
}

// Outcome is a type-erased Result, for inspection through Recorder.
type Outcome struct {
	Value      any
	Completed  bool
	Panicked   bool
	PanicValue any
}

// Recorder is the type-erased view of a Func's call log.
// Matchers in the match package operate on it so they work for any Func[A, R].
type Recorder interface {
	Name() string
	CallCount() int
	RawArgs(n int) (any, error)
	RawOutcome(n int) (Outcome, error)
}

func (r Result[R]) outcome() Outcome {
	return Outcome{
		Value:      r.Value,
		Completed:  r.Completed,
		Panicked:   r.Panicked,
		PanicValue: r.PanicValue,
	}
}
