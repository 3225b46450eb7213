package typedheader

import (
	"strings"

	"github.com/pkg/errors"
)

// Credentials is implemented by authentication schemes that can be carried
// in Authorization and Proxy-Authorization. C is the implementing type.
//
// Scheme and DecodeCredentials are called on the zero value of C.
// Scheme must return the same token every time.
// DecodeCredentials parses one whole raw value, scheme included, and reports
// whether it belongs to this scheme and is well-formed. Schemes are matched
// case-insensitively (RFC 7235 Section 2.1).
// Encode returns Scheme(), a single space, and the payload.
type Credentials[C any] interface {
	Scheme() string
	DecodeCredentials(value string) (C, bool)
	Encode() string
}

// VerifyCredentials checks that c encodes to its scheme, a space, and a
// payload free of control characters. It is meant for the unit tests of
// new Credentials implementations.
func VerifyCredentials[C Credentials[C]](c C) error {
	return verifyEncoded(c.Scheme(), c.Encode())
}

func verifyEncoded(scheme, encoded string) error {
	if !isToken(scheme) {
		return errors.Errorf("credentials scheme %q is not a token", scheme)
	}
	if !strings.HasPrefix(encoded, scheme+" ") {
		return errors.Errorf("credentials %q do not start with scheme %q and a space",
			encoded, scheme)
	}
	if hasCtl(encoded) {
		return errors.Errorf("credentials %q contain control characters", encoded)
	}
	return nil
}

// checkEncodedCredentials is compiled out unless built with typedheader_debug.
func checkEncodedCredentials(scheme, encoded string) {
	if !debugChecks {
		return
	}
	if err := verifyEncoded(scheme, encoded); err != nil {
		panic(errors.Wrap(err, "Credentials.Encode"))
	}
}

// splitScheme returns the payload of v if v starts with scheme
// followed by whitespace and a non-empty payload.
func splitScheme(v, scheme string) (string, bool) {
	v = trimOWS(v)
	if len(v) <= len(scheme) || !strings.EqualFold(v[:len(scheme)], scheme) {
		return "", false
	}
	rest := v[len(scheme):]
	if rest[0] != ' ' {
		return "", false
	}
	payload := trimOWS(rest)
	return payload, payload != ""
}
