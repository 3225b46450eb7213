package typedheader

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrMalformed is returned when a header field is absent, has the wrong
// number of values, or cannot be parsed. These cases are not distinguished.
var ErrMalformed = errors.New("missing or malformed header value")

// A RangeError reports a number of seconds that Seconds cannot represent.
type RangeError struct {
	Value string // as found on the wire or passed by the caller
	Max   uint64
}

func (e *RangeError) Error() string {
	return "seconds value " + strconv.Quote(e.Value) +
		" out of range [0, " + strconv.FormatUint(e.Max, 10) + "]"
}
