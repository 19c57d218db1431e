//go:build linux || darwin || freebsd

package bench

import "golang.org/x/sys/unix"

// Now reads the monotonic system clock.
func Now() Timespec {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return fallbackNow()
	}
	sec, nsec := ts.Unix()
	return Timespec{Sec: sec, Nsec: nsec}
}
