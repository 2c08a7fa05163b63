package stream

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp splits a textual consensus timestamp ("seconds.nanoseconds")
// into its components. The nanosecond field must be exactly nine digits.
func ParseTimestamp(ts string) (seconds int64, nanos int32, err error) {
	dot := strings.IndexByte(ts, '.')
	if dot < 0 {
		return 0, 0, fmt.Errorf("invalid consensus timestamp %q: missing nanosecond field", ts)
	}
	secPart, nanoPart := ts[:dot], ts[dot+1:]
	if len(nanoPart) != 9 {
		return 0, 0, fmt.Errorf("invalid consensus timestamp %q: nanosecond field must be nine digits", ts)
	}
	seconds, err = strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid consensus timestamp %q: %w", ts, err)
	}
	n, err := strconv.ParseInt(nanoPart, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid consensus timestamp %q: %w", ts, err)
	}
	return seconds, int32(n), nil
}

// FormatTimestamp renders a consensus instant in the canonical textual form,
// nanoseconds zero-padded to nine digits so lexicographic order equals
// chronological order.
func FormatTimestamp(seconds int64, nanos int32) string {
	return fmt.Sprintf("%d.%09d", seconds, nanos)
}

// addNanosecond advances an instant by exactly one nanosecond, carrying
// into seconds at the boundary.
func addNanosecond(seconds int64, nanos int32) (int64, int32) {
	nanos++
	if nanos >= 1_000_000_000 {
		return seconds + 1, 0
	}
	return seconds, nanos
}
