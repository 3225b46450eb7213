package typedheader

import "time"

// AccessControlMaxAge is the Access-Control-Max-Age response header
// (Fetch Standard, CORS protocol): how long the results of a preflight
// request can be cached.
type AccessControlMaxAge struct {
	Seconds Seconds
}

// NewAccessControlMaxAge truncates d to whole seconds.
// It fails only for negative d.
func NewAccessControlMaxAge(d time.Duration) (AccessControlMaxAge, error) {
	s, err := SecondsFromDuration(d)
	if err != nil {
		return AccessControlMaxAge{}, err
	}
	return AccessControlMaxAge{s}, nil
}

func (a AccessControlMaxAge) Duration() time.Duration {
	return a.Seconds.Duration()
}

func (AccessControlMaxAge) Name() string { return "Access-Control-Max-Age" }

func (a *AccessControlMaxAge) Decode(values *Values) error {
	s, err := decodeSeconds(values)
	if err != nil {
		return err
	}
	a.Seconds = s
	return nil
}

func (a AccessControlMaxAge) Encode(values *ToValues) {
	values.Append(a.Seconds.String())
}
