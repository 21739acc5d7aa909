package clock

import (
	"sort"
	"time"
)

// Task is a handle to a deferred callback owned by a Scheduler.
// The zero value is not usable; tasks come from Scheduler.After and Scheduler.Every.
type Task struct {
	deadline  time.Duration
	interval  time.Duration // 0 for one-shot tasks
	seq       uint64
	fn        func()
	cancelled bool
	done      bool
}

// Cancel stops the task from firing again. Cancelling a nil, finished or
// already cancelled task is a no-op.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Pending reports whether the task will still fire.
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.done
}

// Deadline returns the next time the task fires.
func (t *Task) Deadline() time.Duration {
	return t.deadline
}

// Scheduler runs deferred callbacks against deadlines checked by the frame
// loop. It never starts goroutines: callbacks execute synchronously inside
// Run, on the caller's goroutine, between frame updates.
type Scheduler struct {
	tasks []*Task
	seq   uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once, delay after now.
func (s *Scheduler) After(now, delay time.Duration, fn func()) *Task {
	return s.add(&Task{deadline: now + delay, fn: fn})
}

// Every schedules fn to run every interval, first at now+interval.
func (s *Scheduler) Every(now, interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(&Task{deadline: now + interval, interval: interval, fn: fn})
}

func (s *Scheduler) add(t *Task) *Task {
	s.seq++
	t.seq = s.seq
	s.tasks = append(s.tasks, t)
	return t
}

// Run fires every task whose deadline is at or before now, in deadline order
// (ties in scheduling order). A repeating task fires once per elapsed interval.
// Callbacks may schedule or cancel tasks; new tasks due by now also fire.
// Returns the number of callbacks executed.
func (s *Scheduler) Run(now time.Duration) int {
	fired := 0
	for {
		t := s.nextDue(now)
		if t == nil {
			break
		}
		if t.interval > 0 {
			t.deadline += t.interval
		} else {
			t.done = true
		}
		t.fn()
		fired++
	}
	s.compact()
	return fired
}

// nextDue returns the earliest live task due by now.
func (s *Scheduler) nextDue(now time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if !t.Pending() || t.deadline > now {
			continue
		}
		if best == nil || t.deadline < best.deadline || (t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops finished and cancelled tasks.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Pending() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Pending returns the live tasks ordered by deadline.
func (s *Scheduler) Pending() []*Task {
	out := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Pending() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].deadline == out[j].deadline {
			return out[i].seq < out[j].seq
		}
		return out[i].deadline < out[j].deadline
	})
	return out
}

// Clear cancels every task.
func (s *Scheduler) Clear() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = s.tasks[:0]
}
