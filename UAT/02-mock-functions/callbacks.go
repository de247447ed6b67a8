// Package mockfunctions contains callback-taking functions used to
// demonstrate mock functions.
package mockfunctions

// Filter returns the items keep reports true for, in order.
func Filter[T any](items []T, keep func(T) bool) []T {
	kept := []T{}

	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}

	return kept
}

// ForEach calls callback once per item, in order.
func ForEach[T any](items []T, callback func(T)) {
	for _, item := range items {
		callback(item)
	}
}

// Map returns the result of transform applied to each item.
func Map[T, U any](items []T, transform func(T) U) []U {
	mapped := make([]U, 0, len(items))

	for _, item := range items {
		mapped = append(mapped, transform(item))
	}

	return mapped
}

// Reduce folds items into an accumulator, starting from initial.
func Reduce[T, U any](items []T, initial U, step func(Step[T, U]) U) U {
	acc := initial

	for index, item := range items {
		acc = step(Step[T, U]{Acc: acc, Item: item, Index: index})
	}

	return acc
}

// Step is the argument tuple passed to a Reduce step function.
type Step[T, U any] struct {
	Acc   U
	Item  T
	Index int
}
