package typedheader

import (
	"encoding/base64"
	"strings"
)

// Authorization is the Authorization request header (RFC 7235 Section 4.2)
// holding credentials of scheme C. It is single-valued.
type Authorization[C Credentials[C]] struct {
	Credentials C
}

func (Authorization[C]) Name() string { return "Authorization" }

func (a *Authorization[C]) Decode(values *Values) error {
	v, ok := values.One()
	if !ok {
		return ErrMalformed
	}
	var zero C
	c, ok := zero.DecodeCredentials(v)
	if !ok {
		return ErrMalformed
	}
	a.Credentials = c
	return nil
}

func (a Authorization[C]) Encode(values *ToValues) {
	values.Append(encodeCredentials(a.Credentials))
}

// ProxyAuthorization is the Proxy-Authorization request header
// (RFC 7235 Section 4.4). It has the same syntax as Authorization
// but is addressed to the next proxy.
type ProxyAuthorization[C Credentials[C]] struct {
	Credentials C
}

func (ProxyAuthorization[C]) Name() string { return "Proxy-Authorization" }

func (p *ProxyAuthorization[C]) Decode(values *Values) error {
	var auth Authorization[C]
	if err := auth.Decode(values); err != nil {
		return err
	}
	p.Credentials = auth.Credentials
	return nil
}

func (p ProxyAuthorization[C]) Encode(values *ToValues) {
	values.Append(encodeCredentials(p.Credentials))
}

func encodeCredentials[C Credentials[C]](c C) string {
	v := c.Encode()
	checkEncodedCredentials(c.Scheme(), v)
	return v
}

// Basic holds credentials of the Basic scheme (RFC 7617).
// Username must not contain a colon.
type Basic struct {
	Username string
	Password string
}

func (Basic) Scheme() string { return "Basic" }

// Payload returns the base64-encoded user-pass that follows the scheme.
func (c Basic) Payload() string {
	return base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
}

func (c Basic) Encode() string {
	return c.Scheme() + " " + c.Payload()
}

// DecodeCredentials accepts only canonical, padded base64, so that
// re-encoding reproduces the original value.
func (Basic) DecodeCredentials(v string) (Basic, bool) {
	payload, ok := splitScheme(v, Basic{}.Scheme())
	if !ok {
		return Basic{}, false
	}
	raw, err := base64.StdEncoding.Strict().DecodeString(payload)
	if err != nil {
		return Basic{}, false
	}
	user, pass, found := strings.Cut(string(raw), ":")
	if !found {
		return Basic{}, false
	}
	return Basic{Username: user, Password: pass}, true
}

// Bearer holds an OAuth 2.0 bearer token (RFC 6750 Section 2.1).
// Token must be a token68.
type Bearer struct {
	Token string
}

func (Bearer) Scheme() string { return "Bearer" }

func (c Bearer) Encode() string {
	return c.Scheme() + " " + c.Token
}

func (Bearer) DecodeCredentials(v string) (Bearer, bool) {
	payload, ok := splitScheme(v, Bearer{}.Scheme())
	if !ok || !isToken68(payload) {
		return Bearer{}, false
	}
	return Bearer{Token: payload}, true
}
