package typedheader

import (
	"net/http"

	"github.com/pkg/errors"
)

// A Header is a typed representation of one HTTP header field.
//
// Name returns the field name. It must be a constant and must work on the
// zero value.
//
// Decode replaces the receiver's value with one parsed from values, which
// holds only the raw values found under Name. On failure it returns
// ErrMalformed or a *RangeError and leaves the receiver unchanged.
//
// Encode appends the raw values representing the current value. Decoding
// what Encode produced must give back the same value.
type Header interface {
	Name() string
	Decode(values *Values) error
	Encode(values *ToValues)
}

// Values is a cursor over the raw values of one header field.
// It is not safe for concurrent use.
type Values struct {
	vs []string
}

// NewValues returns a cursor over vs. The slice is never modified.
func NewValues(vs []string) *Values {
	return &Values{vs: vs}
}

// Next consumes the next raw value.
func (v *Values) Next() (string, bool) {
	if len(v.vs) == 0 {
		return "", false
	}
	s := v.vs[0]
	v.vs = v.vs[1:]
	return s, true
}

// One consumes the value of a single-valued field.
// It fails without consuming anything unless exactly one value remains.
func (v *Values) One() (string, bool) {
	if len(v.vs) != 1 {
		return "", false
	}
	return v.Next()
}

// Len returns the number of values not yet consumed.
func (v *Values) Len() int {
	return len(v.vs)
}

// ToValues collects the raw values produced by Header.Encode.
type ToValues struct {
	vs []string
}

// Append adds one raw value.
func (t *ToValues) Append(v string) {
	t.vs = append(t.vs, v)
}

// Values returns the values appended so far.
func (t *ToValues) Values() []string {
	return t.vs
}

// Decode parses the dst.Name() field of h into dst.
// The returned error wraps ErrMalformed or a *RangeError;
// test for them with errors.Is and errors.As.
func Decode(h http.Header, dst Header) error {
	name := dst.Name()
	if err := dst.Decode(NewValues(h[http.CanonicalHeaderKey(name)])); err != nil {
		return errors.WithMessage(err, name)
	}
	return nil
}

// Encode replaces the src.Name() field in h with the values of src.
func Encode(h http.Header, src Header) {
	var out ToValues
	src.Encode(&out)
	key := http.CanonicalHeaderKey(src.Name())
	if len(out.vs) == 0 {
		delete(h, key)
		return
	}
	h[key] = out.vs
}

// Has reports whether h contains the hdr.Name() field, valid or not.
func Has(h http.Header, hdr Header) bool {
	return len(h[http.CanonicalHeaderKey(hdr.Name())]) > 0
}
