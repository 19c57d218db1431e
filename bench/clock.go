package bench

import "time"

// epoch anchors Timespecs taken from Go's monotonic clock reading.
var epoch = time.Now()

func fallbackNow() Timespec {
	d := time.Since(epoch)
	return Timespec{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
}
