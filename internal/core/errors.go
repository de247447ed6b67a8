package core

import (
	"errors"
	"fmt"
)

// ErrCallIndex is the sentinel wrapped by every IndexError.
var ErrCallIndex = errors.New("call index out of range")

// IndexError reports an attempt to inspect a call that was never recorded.
type IndexError struct {
	Name  string // name of the mock being inspected
	Index int    // requested call index
	Len   int    // number of recorded calls at the time of the request
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %v: index %d, recorded calls %d", e.Name, ErrCallIndex, e.Index, e.Len)
}

// Unwrap lets errors.Is match ErrCallIndex.
func (e *IndexError) Unwrap() error {
	return ErrCallIndex
}
