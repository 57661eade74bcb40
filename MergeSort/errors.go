package MergeSort

import (
	"fmt"

	"GoMergeSort/MergeSort/fork_join"
)

var (
	// ErrInvalidConcurrency is returned when the task budget K is below 1.
	ErrInvalidConcurrency = &SortError{msg: "max concurrency must be >= 1"}

	// ErrNilComparator is returned when no comparator is supplied.
	ErrNilComparator = &SortError{msg: "comparator is nil"}
)

// SortError is an error detected before any element is moved.
type SortError struct {
	msg string
	err error
}

func (e *SortError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("mergesort: %s: %v", e.msg, e.err)
	}
	return "mergesort: " + e.msg
}

func (e *SortError) Unwrap() error {
	return e.err
}

// PanicError is returned by the sort functions when the comparator panicked,
// either on the calling goroutine or inside a forked task. The slice holds
// an unspecified permutation of its elements afterwards.
type PanicError = fork_join.PanicError

// InvariantError is the panic value raised on a synchronization defect. It is
// never turned into a returned error.
type InvariantError = fork_join.InvariantError

func errInvalidConcurrency(k int) error {
	return &SortError{msg: fmt.Sprintf("invalid max concurrency %d", k), err: ErrInvalidConcurrency}
}
