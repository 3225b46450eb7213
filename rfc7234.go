package typedheader

import "time"

// Age is the Age response header (RFC 7234 Section 5.1): the sender's
// estimate of the time since the response was generated at the origin.
type Age struct {
	Seconds Seconds
}

// NewAge truncates d to whole seconds. It fails only for negative d.
func NewAge(d time.Duration) (Age, error) {
	s, err := SecondsFromDuration(d)
	if err != nil {
		return Age{}, err
	}
	return Age{s}, nil
}

func (a Age) Duration() time.Duration {
	return a.Seconds.Duration()
}

func (Age) Name() string { return "Age" }

func (a *Age) Decode(values *Values) error {
	s, err := decodeSeconds(values)
	if err != nil {
		return err
	}
	a.Seconds = s
	return nil
}

func (a Age) Encode(values *ToValues) {
	values.Append(a.Seconds.String())
}
