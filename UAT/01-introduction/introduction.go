// Package introduction contains the subjects of the introductory matcher
// tutorial: a sum helper, a shopping list, and a build step that always fails.
package introduction

import (
	"errors"
	"fmt"
)

// ErrWrongJDK is the failure reported by CompileAndroidCode.
var ErrWrongJDK = errors.New("you are using the wrong JDK")

// JDKError describes a JDK mismatch.
type JDKError struct {
	Want string
	Got  string
}

func (e *JDKError) Error() string {
	return fmt.Sprintf("%v: want %s, got %s", ErrWrongJDK, e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrWrongJDK.
func (e *JDKError) Unwrap() error {
	return ErrWrongJDK
}

// CompileAndroidCode always fails with a *JDKError.
func CompileAndroidCode() error {
	return &JDKError{Want: "17", Got: "8"}
}

// MustCompileAndroidCode is CompileAndroidCode for callers that panic on failure.
func MustCompileAndroidCode() {
	if err := CompileAndroidCode(); err != nil {
		panic(err)
	}
}

// ShoppingList returns the items on the list, in order.
func ShoppingList() []string {
	return []string{"diapers", "kleenex", "trash bags", "paper towels", "beer"}
}

// ShoppingSet returns the items on the list as a set.
func ShoppingSet() map[string]struct{} {
	set := map[string]struct{}{}

	for _, item := range ShoppingList() {
		set[item] = struct{}{}
	}

	return set
}

// Sum adds a and b.
func Sum(a, b int) int {
	return a + b
}
