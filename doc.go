/*
Package typedheader converts HTTP header fields between their raw wire values
and typed Go values.

Every typed header implements Header: it knows its field name, decodes
itself from a cursor over the raw values found under that name, and encodes
itself back into raw values. Decode and Encode adapt this to http.Header:

	var maxAge typedheader.AccessControlMaxAge
	if err := typedheader.Decode(h, &maxAge); err == nil {
		fmt.Println(maxAge.Duration())
	}

A field that is missing and a field that cannot be parsed are reported the
same way, as ErrMalformed. Numbers too large for Seconds are reported as
a *RangeError instead of being truncated.

Authorization and Proxy-Authorization are generic over the credentials
scheme. Basic and Bearer are provided; other schemes can be added by
implementing Credentials.

Build with the typedheader_debug tag to make encoding panic when a
Credentials implementation produces a value that does not start with
its own scheme.
*/
package typedheader
