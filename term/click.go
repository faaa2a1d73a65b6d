package term

import "time"

// clickTracker counts consecutive clicks on one widget to detect double
// clicks.
type clickTracker struct {
	maxTime time.Duration

	last      Widget
	lastTime  time.Time
	lastCount int
}

func newClickTracker(maxTime time.Duration) *clickTracker {
	return &clickTracker{maxTime: maxTime}
}

// record registers a click on w at timestamp and returns the click count,
// 1 or 2. The count wraps back to 1 after a double click.
func (t *clickTracker) record(w Widget, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(w, timestamp) {
		t.lastCount++
		if t.lastCount > 2 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.last = w
	t.lastTime = timestamp
	return t.lastCount
}

func (t *clickTracker) isPartOfSequence(w Widget, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() || t.last != w {
		return false
	}
	// Clock skew starts a new sequence.
	elapsed := timestamp.Sub(t.lastTime)
	return elapsed >= 0 && elapsed <= t.maxTime
}
