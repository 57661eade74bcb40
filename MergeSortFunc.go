package MergeSort2

import (
	"GoMergeSort/MergeSort"
)

// Comparable is implemented by record types that know how to order
// themselves. CompareTo returns a negative number, zero or a positive number
// when the receiver is less than, equal to or greater than o.
type Comparable[T any] interface {
	CompareTo(o T) int
}

func compareTo[T Comparable[T]](a, b T) int {
	return a.CompareTo(b)
}

// ParallelSortFunc sorts a by CompareTo with at most k concurrently running
// sort tasks.
func ParallelSortFunc[T Comparable[T]](a []T, k int, opts ...MergeSort.Option) error {
	return MergeSort.SortFunc(a, compareTo[T], k, opts...)
}

// IsSortedFunc reports whether a is ordered by CompareTo.
func IsSortedFunc[T Comparable[T]](a []T) bool {
	return MergeSort.IsSortedFunc(a, compareTo[T])
}
