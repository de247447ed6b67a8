package core_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/toejough/mockfn/internal/core"
)

func TestFunc_DefaultImplementation(t *testing.T) {
	t.Parallel()

	mock := core.New(func(x int) int { return 42 + x })

	if got := mock.Invoke(0); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	if got := mock.Invoke(1); got != 43 {
		t.Errorf("expected 43, got %d", got)
	}

	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}

	args, err := mock.ArgsOfCall(0)
	if err != nil || args != 0 {
		t.Errorf("expected args 0 with no error, got %d, %v", args, err)
	}

	result, err := mock.ResultOfCall(0)
	if err != nil || result != 42 {
		t.Errorf("expected result 42 with no error, got %d, %v", result, err)
	}
}

func TestFunc_NoImplementationReturnsZero(t *testing.T) {
	t.Parallel()

	mock := core.New[string, *int](nil)

	if got := mock.Invoke("anything"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}

	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestFunc_ReturnValueSequence(t *testing.T) {
	t.Parallel()

	mock := core.New[struct{}, any](nil)
	mock.ReturnValueOnce(10).ReturnValueOnce("x").ReturnValue(true)

	got := make([]any, 0, 6)
	for range 6 {
		got = append(got, mock.Invoke(struct{}{}))
	}

	want := []any{10, "x", true, true, true, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestFunc_ImplementationSequence(t *testing.T) {
	t.Parallel()

	mock := core.New(func(struct{}) string { return "default" })
	mock.
		ImplementationOnce(func(struct{}) string { return "first call" }).
		ImplementationOnce(func(struct{}) string { return "second call" })

	got := make([]string, 0, 4)
	for range 4 {
		got = append(got, mock.Invoke(struct{}{}))
	}

	want := []string{"first call", "second call", "default", "default"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestFunc_Precedence(t *testing.T) {
	t.Parallel()

	// Queued return values are added first, but queued implementations still win.
	mock := core.New(func(int) string { return "default" })
	mock.ReturnValueOnce("value 1")
	mock.ReturnValueOnce("value 2")
	mock.ImplementationOnce(func(int) string { return "impl 1" })
	mock.ReturnValue("fallback")

	var got []string
	for i := range 5 {
		got = append(got, mock.Invoke(i))
	}

	want := []string{"impl 1", "value 1", "value 2", "fallback", "fallback"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestFunc_QueuedImplementationReceivesArgs(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }

	mock := core.New[pair, int](nil)
	mock.ImplementationOnce(func(p pair) int { return p.A * p.B })

	if got := mock.Invoke(pair{A: 6, B: 7}); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	if got := mock.Invoke(pair{A: 6, B: 7}); got != 0 {
		t.Errorf("expected the queued implementation to be used once, got %d", got)
	}
}

func TestFunc_NilQueuedImplementationReturnsZero(t *testing.T) {
	t.Parallel()

	mock := core.New(func(int) int { return 1 })
	mock.ImplementationOnce(nil)

	if got := mock.Invoke(0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}

	if got := mock.Invoke(0); got != 1 {
		t.Errorf("expected default 1, got %d", got)
	}
}

func TestFunc_ReturnValueOverwrite(t *testing.T) {
	t.Parallel()

	mock := core.New(func(int) int { return -1 })
	mock.ReturnValue(1)
	first := mock.Invoke(0)

	mock.ReturnValue(2)
	second := mock.Invoke(0)

	if first != 1 || second != 2 {
		t.Errorf("expected 1 then 2, got %d then %d", first, second)
	}
}

func TestFunc_ImplementationDiscardsReturnValue(t *testing.T) {
	t.Parallel()

	mock := core.New[int, int](nil)
	mock.ReturnValue(7)
	mock.Implementation(func(x int) int { return x * 2 })

	if got := mock.Invoke(5); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}

	mock.ReturnValue(3)

	if got := mock.Invoke(5); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestFunc_ArgsOfCallOutOfRange(t *testing.T) {
	t.Parallel()

	mock := core.New(func(int) int { return 0 }, core.WithName("callback"))
	mock.Invoke(1)
	mock.Invoke(2)

	for _, index := range []int{5, 2, -1} {
		_, err := mock.ArgsOfCall(index)
		if !errors.Is(err, core.ErrCallIndex) {
			t.Errorf("index %d: expected ErrCallIndex, got %v", index, err)
		}

		var indexErr *core.IndexError
		if !errors.As(err, &indexErr) {
			t.Fatalf("index %d: expected *IndexError, got %T", index, err)
		}

		if indexErr.Index != index || indexErr.Len != 2 || indexErr.Name != "callback" {
			t.Errorf("index %d: unexpected error fields %+v", index, *indexErr)
		}

		if !strings.Contains(err.Error(), "callback") {
			t.Errorf("expected the mock name in %q", err.Error())
		}
	}

	if _, err := mock.ResultOfCall(2); !errors.Is(err, core.ErrCallIndex) {
		t.Errorf("expected ErrCallIndex from ResultOfCall, got %v", err)
	}
}

func TestFunc_LastCall(t *testing.T) {
	t.Parallel()

	mock := core.New(func(s string) int { return len(s) })

	if _, err := mock.LastCall(); !errors.Is(err, core.ErrCallIndex) {
		t.Errorf("expected ErrCallIndex before any call, got %v", err)
	}

	mock.Invoke("a")
	mock.Invoke("abc")

	last, err := mock.LastCall()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := core.Call[string, int]{Args: "abc", Result: core.Result[int]{Value: 3, Completed: true}}
	if diff := cmp.Diff(want, last); diff != "" {
		t.Errorf("unexpected last call (-want +got):\n%s", diff)
	}
}

func TestFunc_CallsIsACopy(t *testing.T) {
	t.Parallel()

	mock := core.New(func(x int) int { return x })
	mock.Invoke(1)

	calls := mock.Calls()
	calls[0].Args = 99

	if args, _ := mock.ArgsOfCall(0); args != 1 {
		t.Errorf("expected the log to be unaffected, got %d", args)
	}
}

func TestFunc_Pending(t *testing.T) {
	t.Parallel()

	mock := core.New[int, int](nil)
	mock.ReturnValueOnce(1).ImplementationOnce(func(int) int { return 2 })

	if mock.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", mock.Pending())
	}

	mock.Invoke(0)

	if mock.Pending() != 1 {
		t.Errorf("expected 1 pending, got %d", mock.Pending())
	}
}

func TestFunc_Fn(t *testing.T) {
	t.Parallel()

	mock := core.New(func(x int) int { return x + 1 })

	apply := func(f func(int) int, x int) int { return f(x) }

	if got := apply(mock.Fn(), 1); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	if mock.CallCount() != 1 {
		t.Errorf("expected the injected function to be recorded, got %d calls", mock.CallCount())
	}
}

func TestFunc_Name(t *testing.T) {
	t.Parallel()

	if name := core.New[int, int](nil).Name(); name != "mock" {
		t.Errorf("expected default name mock, got %q", name)
	}

	if name := core.New[int, int](nil, core.WithName("fetch")).Name(); name != "fetch" {
		t.Errorf("expected fetch, got %q", name)
	}
}

func TestFunc_PanicPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	mock := core.New(func(int) int { panic(boom) })

	func() {
		defer func() {
			if r := recover(); r != boom { //nolint:errorlint // identity is the point
				t.Errorf("expected the original panic value, got %v", r)
			}
		}()

		mock.Invoke(3)
	}()

	call, err := mock.Call(0)
	if err != nil {
		t.Fatalf("expected the panicking call to be recorded: %v", err)
	}

	if call.Args != 3 || !call.Result.Completed || !call.Result.Panicked || call.Result.PanicValue != boom { //nolint:errorlint
		t.Errorf("unexpected record %+v", call)
	}

	if result, err := mock.ResultOfCall(0); result != 0 || err != nil {
		t.Errorf("expected zero result with no error, got %d, %v", result, err)
	}
}

func TestFunc_ReentrantCallsKeepInvocationOrder(t *testing.T) {
	t.Parallel()

	var mock *core.Func[int, int]

	mock = core.New(func(x int) int {
		if x == 0 {
			return 0
		}

		return x + mock.Invoke(x-1)
	})

	if got := mock.Invoke(3); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}

	var args, results []int
	for _, call := range mock.Calls() {
		args = append(args, call.Args)
		results = append(results, call.Result.Value)
	}

	if diff := cmp.Diff([]int{3, 2, 1, 0}, args); diff != "" {
		t.Errorf("unexpected args order (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{6, 3, 1, 0}, results); diff != "" {
		t.Errorf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestFunc_ConcurrentInvocations(t *testing.T) {
	t.Parallel()

	const callers = 50

	mock := core.New(func(x int) int { return x })
	for i := range callers / 2 {
		mock.ReturnValueOnce(-i)
	}

	var wg sync.WaitGroup

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			mock.Invoke(i)
		}()
	}

	wg.Wait()

	if mock.CallCount() != callers {
		t.Errorf("expected %d calls, got %d", callers, mock.CallCount())
	}

	if mock.Pending() != 0 {
		t.Errorf("expected every queued value to be consumed, %d left", mock.Pending())
	}
}

func TestFunc_RunningCallIsNotCompleted(t *testing.T) {
	t.Parallel()

	var (
		mock   *core.Func[int, int]
		during core.Result[int]
	)

	mock = core.New(func(x int) int {
		call, err := mock.LastCall()
		if err != nil {
			t.Errorf("expected the running call to be logged: %v", err)
		}

		during = call.Result

		return x
	})

	mock.Invoke(5)

	if during.Completed {
		t.Error("expected the running call to be reported as not completed")
	}

	after, err := mock.Call(0)
	if err != nil || !after.Result.Completed || after.Result.Value != 5 {
		t.Errorf("expected a completed result of 5, got %+v, %v", after.Result, err)
	}
}
