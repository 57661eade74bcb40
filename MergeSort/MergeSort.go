package MergeSort

import (
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/exp/constraints"

	"GoMergeSort/MergeSort/fork_join"
)

// Sort sorts a in ascending order using at most k concurrently running sort
// tasks, the calling goroutine included.
func Sort[T constraints.Ordered](a []T, k int, opts ...Option) error {
	return SortFunc(a, compareOrdered[T], k, opts...)
}

// SortFunc sorts a in place so that cmp(a[i], a[i+1]) <= 0 for every i,
// using at most k concurrently running sort tasks. k == 1 sorts on the
// calling goroutine only.
//
// cmp must return a negative number when a < b, a positive number when
// a > b and zero otherwise. The sort is not stable: the relative order of
// elements that compare equal is unspecified.
//
// A panic raised by cmp, on any goroutine, is returned as a *PanicError.
func SortFunc[T any](a []T, cmp func(a, b T) int, k int, opts ...Option) (err error) {
	if cmp == nil {
		return ErrNilComparator
	}
	if k < 1 {
		return errInvalidConcurrency(k)
	}
	cfg := buildConfig(opts)

	pool := fork_join.NewForkJoinPool(k)
	ms := &mergeSort[T]{
		cmp:   cmp,
		pool:  pool,
		log:   cfg.logger,
		debug: cfg.logger.V(1).Enabled(),
		trace: cfg.logger.V(2).Enabled(),
	}

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			err = toError(p)
		}
		stats := pool.Stats()
		if cfg.stats != nil {
			*cfg.stats = stats
		}
		if err == nil && cfg.observer != nil {
			cfg.observer.ObserveSort(len(a), stats, time.Since(start))
		}
	}()

	ms.sort(a, 0)
	return nil
}

// toError turns a recovered panic into the error returned to the caller.
// Invariant violations keep unwinding.
func toError(p interface{}) error {
	v := fork_join.Recover(p)
	if perr, ok := v.(*PanicError); ok {
		return perr
	}
	panic(v)
}

type mergeSort[T any] struct {
	cmp   func(a, b T) int
	pool  *fork_join.ForkJoinPool
	log   logr.Logger
	debug bool
	trace bool
}

// sort 递归排序 base, 右半部分优先尝试并发执行, 左半部分始终在当前 goroutine 执行
func (ms *mergeSort[T]) sort(base []T, depth int) {
	n := len(base)
	if n <= 1 {
		return
	}
	if ms.trace {
		ms.log.V(2).Info("enter", "len", n, "depth", depth)
	}

	len1 := n / 2
	arr1 := make([]T, len1)
	copy(arr1, base[:len1])
	arr2 := make([]T, n-len1)
	copy(arr2, base[len1:])

	// The right half is dispatched first so that its task, if any, overlaps
	// with the left half sorted below.
	var task *fork_join.ForkJoinTask
	if len(arr2) > 1 {
		task = ms.fork(arr2, depth)
	}

	ms.sortLeft(arr1, task, depth)

	merge(arr1, arr2, base, ms.cmp)

	if ms.trace {
		ms.log.V(2).Info("exit", "len", n, "depth", depth)
	}
}

// fork sorts half on a new task when the budget allows and returns its
// handle, otherwise sorts it inline and returns nil.
func (ms *mergeSort[T]) fork(half []T, depth int) *fork_join.ForkJoinTask {
	if !ms.pool.TryAcquire() {
		ms.sort(half, depth+1)
		return nil
	}
	task := ms.pool.Fork(func() {
		ms.sort(half, depth+1)
	})
	if ms.debug {
		ms.log.V(1).Info("task forked", "task", task.ID(), "len", len(half), "depth", depth+1, "active", ms.pool.Active())
	}
	return task
}

// sortLeft sorts the left half and joins task, if any, even when the left
// half panics.
func (ms *mergeSort[T]) sortLeft(half []T, task *fork_join.ForkJoinTask, depth int) {
	if task != nil {
		defer ms.join(task)
	}
	if len(half) > 1 {
		ms.sort(half, depth+1)
	}
}

func (ms *mergeSort[T]) join(task *fork_join.ForkJoinTask) {
	p := task.Join()
	ms.pool.Release()
	if ms.debug {
		ms.log.V(1).Info("task joined", "task", task.ID(), "active", ms.pool.Active())
	}
	if p != nil {
		panic(p)
	}
}

// merge 合并两个有序数组 a 和 b 到 out, 要求 len(out) >= len(a)+len(b).
// 相等时先取 b 的元素.
func merge[T any](a, b, out []T, cmp func(a, b T) int) {
	if len(out) < len(a)+len(b) {
		panic(fork_join.Invariant("merge output too short: %d < %d+%d", len(out), len(a), len(b)))
	}
	ia, ib, iout := 0, 0, 0
	for ia < len(a) && ib < len(b) {
		if cmp(a[ia], b[ib]) < 0 {
			out[iout] = a[ia]
			ia++
		} else {
			out[iout] = b[ib]
			ib++
		}
		iout++
	}
	iout += copy(out[iout:], a[ia:])
	copy(out[iout:], b[ib:])
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareFloat64 orders two float64 values by the sign of their difference.
// NaN compares equal to everything.
func CompareFloat64(a, b float64) int {
	diff := a - b
	if diff < 0 {
		return -1
	} else if diff > 0 {
		return 1
	}
	return 0
}

// IsSorted reports whether a is in ascending order.
func IsSorted[T constraints.Ordered](a []T) bool {
	return IsSortedFunc(a, compareOrdered[T])
}

// IsSortedFunc reports whether cmp(a[i-1], a[i]) <= 0 for every i.
func IsSortedFunc[T any](a []T, cmp func(a, b T) int) bool {
	for i := len(a) - 1; i > 0; i-- {
		if cmp(a[i-1], a[i]) > 0 {
			return false
		}
	}
	return true
}
