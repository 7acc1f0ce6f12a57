package runner

import "time"

// SetClock replaces the clock used for build records.
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}
