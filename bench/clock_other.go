//go:build !linux && !darwin && !freebsd

package bench

// Now reads Go's monotonic clock, relative to process start.
func Now() Timespec {
	return fallbackNow()
}
