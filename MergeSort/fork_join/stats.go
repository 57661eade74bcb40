package fork_join

import "fmt"

// Stats is a point-in-time view of a ForkJoinPool.
type Stats struct {
	Cap    int   // budget K
	Active int   // tasks running when the snapshot was taken
	Peak   int   // highest Active ever observed
	Forked int64 // tasks started on a new goroutine
	Inline int64 // halves run on the caller because the budget was exhausted
	Joined int64 // forked tasks that have been joined and released
}

// Outstanding returns the number of forked tasks not joined yet.
func (s Stats) Outstanding() int64 {
	return s.Forked - s.Joined
}

func (s Stats) String() string {
	return fmt.Sprintf("cap=%d active=%d peak=%d forked=%d inline=%d joined=%d",
		s.Cap, s.Active, s.Peak, s.Forked, s.Inline, s.Joined)
}
