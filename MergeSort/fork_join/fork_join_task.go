package fork_join

import (
	"runtime/debug"
	"sync/atomic"
)

// ForkJoinTask is the handle of one forked sort task. Exactly one goroutine,
// the one that forked it, joins it.
type ForkJoinTask struct {
	id     int32
	done   chan struct{}
	err    interface{} // recovered panic value, nil on success
	joined atomic.Bool
}

// ID returns the pool-local id of the task, starting at 1.
func (t *ForkJoinTask) ID() int32 {
	return t.id
}

func (t *ForkJoinTask) run(fn func()) {
	defer close(t.done)
	defer func() {
		if p := recover(); p != nil {
			t.err = wrapPanic(p)
		}
	}()
	fn()
}

// Join blocks until the task has finished and returns the value it panicked
// with, or nil. A panic is returned rather than raised so the caller can give
// back its slot before propagating it.
func (t *ForkJoinTask) Join() interface{} {
	if t == nil {
		panic(Invariant("join of a task that was never forked"))
	}
	if !t.joined.CompareAndSwap(false, true) {
		panic(Invariant("task %d joined twice", t.id))
	}
	<-t.done
	return t.err
}

// wrapPanic keeps errors raised by this package as they are and wraps any
// other value together with the stack of the goroutine that panicked.
func wrapPanic(p interface{}) interface{} {
	switch p.(type) {
	case *PanicError, *InvariantError:
		return p
	}
	return &PanicError{Value: p, Stack: string(debug.Stack())}
}

// Recover converts a value obtained from recover on the calling goroutine
// into the form a task Join would report.
func Recover(p interface{}) interface{} {
	if p == nil {
		return nil
	}
	return wrapPanic(p)
}
