package typedheader

import (
	"math/rand"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkDecode(t *testing.T, header http.Header, expected, dst Header) {
	t.Helper()
	require.NoError(t, Decode(header, dst), "decoding: %#v", header)
	assert.Equal(t, expected, dst, "decoding: %#v", header)
}

func checkReject(t *testing.T, header http.Header, dst Header) {
	t.Helper()
	assert.ErrorIs(t, Decode(header, dst), ErrMalformed, "decoding: %#v", header)
}

func checkEncode(t *testing.T, input Header, expected http.Header) {
	t.Helper()
	actual := http.Header{}
	Encode(actual, input)
	assert.Equal(t, expected, actual, "encoding: %#v", input)
}

// checkRoundTrip is a property-based test: encoding and then decoding
// a valid value must give back the same value.
// Generator returns a random value to encode, and a fresh zero value
// of the same type to decode into.
func checkRoundTrip(t *testing.T, generator func(*rand.Rand) (input, output Header)) {
	t.Helper()
	for i := 0; i < 100; i++ {
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i)))
			input, output := generator(r)
			header := http.Header{}
			Encode(header, input)
			t.Logf("encoded: %#v", header)
			require.NoError(t, Decode(header, output))
			assert.Equal(t, input, output)
		})
	}
}

// checkFuzz is a simplistic fuzz test: on any input, decoding must not panic,
// and must either fail or produce something that encodes without panicking.
func checkFuzz(t *testing.T, newHeader func() Header) {
	t.Helper()
	for i := 0; i < 100; i++ {
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i)))
			dst := newHeader()
			header := http.Header{}
			for j := 0; j < 1+r.Intn(2); j++ {
				b := make([]byte, r.Intn(40))
				for k := range b {
					// Biased towards the alphabets we parse.
					const chars = "\x00 \t:=+/-Basic Bearer0123456789AZaz"
					b[k] = chars[r.Intn(len(chars))]
				}
				header.Add(dst.Name(), string(b))
			}
			t.Logf("header: %#v", header)
			if Decode(header, dst) == nil {
				Encode(http.Header{}, dst)
			}
		})
	}
}

func mkString(r *rand.Rand, alphabet string, min int) string {
	b := make([]byte, min+r.Intn(10))
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

const (
	alnum    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	token68  = alnum + "-._~+/"
	userPass = alnum + " !\"#$%&'()*+,-./;<=>?@[\\]^_`{|}~\x80\xff"
)

func mkToken68(r *rand.Rand) string {
	return mkString(r, token68, 1) + strings.Repeat("=", r.Intn(3))
}

func mkSeconds(r *rand.Rand) Seconds {
	var n uint64
	switch r.Intn(3) {
	case 0:
		n = uint64(r.Intn(1000))
	case 1:
		n = uint64(r.Int63n(int64(MaxSeconds) + 1))
	default:
		n = MaxSeconds
	}
	s, err := NewSeconds(n)
	if err != nil {
		panic(err)
	}
	return s
}
