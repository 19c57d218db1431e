package bench

import (
	"fmt"
	"time"
)

const nsPerSec = 1_000_000_000

// Timespec is a point in time or a duration, split into seconds and
// nanoseconds. Nsec is always in [0, 1e9).
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Elapsed returns stop − start, borrowing a second if the nanoseconds of
// stop are less than those of start.
func Elapsed(stop, start Timespec) Timespec {
	if stop.Nsec < start.Nsec {
		return Timespec{
			Sec:  stop.Sec - start.Sec - 1,
			Nsec: stop.Nsec - start.Nsec + nsPerSec,
		}
	}
	return Timespec{
		Sec:  stop.Sec - start.Sec,
		Nsec: stop.Nsec - start.Nsec,
	}
}

// String formats t as seconds with nine fractional digits.
func (t Timespec) String() string {
	return fmt.Sprintf("%d.%09d", t.Sec, t.Nsec)
}

// Duration converts t to a time.Duration.
func (t Timespec) Duration() time.Duration {
	return time.Duration(t.Sec)*time.Second + time.Duration(t.Nsec)
}

// IsNegative is true for durations below zero.
func (t Timespec) IsNegative() bool {
	return t.Sec < 0
}
