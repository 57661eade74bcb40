package fork_join

import (
	"math"
	"sync"
)

// ForkJoinPool is the concurrency budget of one top-level sort. It counts the
// sort tasks that are currently running, the calling goroutine included, and
// decides whether one more task may be forked.
//
// The pool never makes a caller wait for a slot: TryAcquire either grants one
// immediately or denies it, and a denied caller does the work itself.
type ForkJoinPool struct {
	cap         int32 // 最大同时运行的任务数 K
	active      int32 // 当前正在运行的任务数(包括调用者)
	pending     int32 // 已获得但尚未 Fork 的名额
	lock        sync.Mutex
	goroutineID int32

	forked int64
	inline int64
	joined int64
	peak   int32
}

// NewForkJoinPool creates a pool that allows at most workerCap tasks to run at
// once. The caller of the sort already occupies one slot. Values below 1 are
// treated as 1, which makes every sort fully sequential.
func NewForkJoinPool(workerCap int) *ForkJoinPool {
	if workerCap < 1 {
		workerCap = 1
	}
	if workerCap > math.MaxInt32 {
		workerCap = math.MaxInt32
	}
	return &ForkJoinPool{
		cap:    int32(workerCap),
		active: 1,
		peak:   1,
	}
}

// Cap returns the maximum number of concurrently running tasks.
func (fp *ForkJoinPool) Cap() int {
	return int(fp.cap)
}

// Active returns the number of tasks running right now.
func (fp *ForkJoinPool) Active() int {
	fp.lock.Lock()
	defer fp.lock.Unlock()
	return int(fp.active)
}

// TryAcquire takes a slot for a new task if the budget allows it. A denied
// acquire is recorded as an inline execution.
func (fp *ForkJoinPool) TryAcquire() bool {
	fp.lock.Lock()
	defer fp.lock.Unlock()

	if fp.active >= fp.cap {
		fp.inline++
		return false
	}
	fp.active++
	fp.pending++
	fp.forked++
	if fp.active > fp.peak {
		fp.peak = fp.active
	}
	return true
}

// Release gives back a slot obtained from TryAcquire. It must only be called
// once the task that used the slot has been joined.
func (fp *ForkJoinPool) Release() {
	fp.lock.Lock()
	defer fp.lock.Unlock()

	// active 不能低于 1, 调用者自己始终占用一个
	if fp.active <= 1 {
		panic(Invariant("release without a matching acquire (active=%d)", fp.active))
	}
	fp.active--
	fp.joined++
}

// Fork starts fn on a new goroutine and returns the handle the caller must
// Join before it returns. Fork does not consult the budget; each call uses
// up exactly one granted TryAcquire.
func (fp *ForkJoinPool) Fork(fn func()) *ForkJoinTask {
	fp.lock.Lock()
	if fp.pending <= 0 {
		fp.lock.Unlock()
		panic(Invariant("fork without an acquired slot"))
	}
	fp.pending--
	fp.goroutineID++
	id := fp.goroutineID
	fp.lock.Unlock()

	t := &ForkJoinTask{id: id, done: make(chan struct{})}
	go t.run(fn)
	return t
}

// Stats returns a snapshot of the pool counters.
func (fp *ForkJoinPool) Stats() Stats {
	fp.lock.Lock()
	defer fp.lock.Unlock()
	return Stats{
		Cap:    int(fp.cap),
		Active: int(fp.active),
		Peak:   int(fp.peak),
		Forked: fp.forked,
		Inline: fp.inline,
		Joined: fp.joined,
	}
}
