package typedheader

import (
	"math"
	"strconv"
	"time"
)

// MaxSeconds is the largest count that Seconds can hold, chosen so that
// every Seconds converts to a time.Duration exactly.
const MaxSeconds = uint64(math.MaxInt64 / int64(time.Second))

// Seconds is a whole, non-negative number of seconds, as carried by
// delta-seconds fields (RFC 7234 Section 1.2.1). The zero value is 0s.
type Seconds struct {
	n uint64
}

// NewSeconds returns n seconds, or a *RangeError if n exceeds MaxSeconds.
func NewSeconds(n uint64) (Seconds, error) {
	if n > MaxSeconds {
		return Seconds{}, &RangeError{Value: strconv.FormatUint(n, 10), Max: MaxSeconds}
	}
	return Seconds{n}, nil
}

// SecondsFromDuration truncates d to whole seconds.
// Negative durations yield a *RangeError.
func SecondsFromDuration(d time.Duration) (Seconds, error) {
	if d < 0 {
		return Seconds{}, &RangeError{Value: d.String(), Max: MaxSeconds}
	}
	return Seconds{uint64(d / time.Second)}, nil
}

// ParseSeconds parses 1*DIGIT, surrounded by optional whitespace.
// Anything else yields ErrMalformed, and a count above MaxSeconds
// yields a *RangeError.
func ParseSeconds(v string) (Seconds, error) {
	v = trimOWS(v)
	if !isDigits(v) {
		return Seconds{}, ErrMalformed
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n > MaxSeconds {
		// Only strconv.ErrRange is possible on a digit string.
		return Seconds{}, &RangeError{Value: v, Max: MaxSeconds}
	}
	return Seconds{n}, nil
}

// Duration returns s as a time.Duration. It is exact.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s.n) * time.Second
}

func (s Seconds) Uint64() uint64 {
	return s.n
}

// String returns the delta-seconds wire form.
func (s Seconds) String() string {
	return strconv.FormatUint(s.n, 10)
}

func decodeSeconds(values *Values) (Seconds, error) {
	v, ok := values.One()
	if !ok {
		return Seconds{}, ErrMalformed
	}
	return ParseSeconds(v)
}
