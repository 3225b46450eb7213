package typedheader

type charClass uint8

const (
	cTchar   charClass = 1 << iota // RFC 7230 Section 3.2.6
	cToken68                       // RFC 7235 Section 2.1, excluding trailing "="
	cDigit
	cCtl // CTL and DEL, never allowed in a generated value
)

var byteClass [256]charClass

func init() {
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		alnum := (b >= '0' && b <= '9') ||
			(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		if alnum || contains("!#$%&'*+-.^_`|~", b) {
			byteClass[b] |= cTchar
		}
		if alnum || contains("-._~+/", b) {
			byteClass[b] |= cToken68
		}
		if b >= '0' && b <= '9' {
			byteClass[b] |= cDigit
		}
		if (b < 0x20 && b != '\t') || b == 0x7F {
			byteClass[b] |= cCtl
		}
	}
}

func contains(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

func isToken(s string) bool {
	return s != "" && allOf(s, cTchar)
}

func isDigits(s string) bool {
	return s != "" && allOf(s, cDigit)
}

// isToken68 reports whether s matches
// 1*( ALPHA / DIGIT / "-" / "." / "_" / "~" / "+" / "/" ) *"=".
func isToken68(s string) bool {
	i := 0
	for ; i < len(s) && byteClass[s[i]]&cToken68 != 0; i++ {
	}
	if i == 0 {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] != '=' {
			return false
		}
	}
	return true
}

func hasCtl(s string) bool {
	for i := 0; i < len(s); i++ {
		if byteClass[s[i]]&cCtl != 0 {
			return true
		}
	}
	return false
}

func allOf(s string, class charClass) bool {
	for i := 0; i < len(s); i++ {
		if byteClass[s[i]]&class == 0 {
			return false
		}
	}
	return true
}

func trimOWS(v string) string {
	for v != "" && (v[0] == ' ' || v[0] == '\t') {
		v = v[1:]
	}
	for v != "" && (v[len(v)-1] == ' ' || v[len(v)-1] == '\t') {
		v = v[:len(v)-1]
	}
	return v
}
