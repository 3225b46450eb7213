package typedheader

import (
	"fmt"
	"math/rand"
	"net/http"
	"testing"
	"time"
)

func ExampleAge() {
	header := http.Header{"Age": {"86400"}}
	var age Age
	if err := Decode(header, &age); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(age.Duration())
	// Output: 24h0m0s
}

func ExampleNewAge() {
	age, _ := NewAge(90 * time.Second)
	header := http.Header{}
	Encode(header, &age)
	fmt.Println(header)
	// Output: map[Age:[90]]
}

func TestAge(t *testing.T) {
	tests := []struct {
		header http.Header
		result Age
	}{
		{http.Header{"Age": {"0"}}, Age{Seconds{0}}},
		{http.Header{"Age": {"3600"}}, Age{Seconds{3600}}},
		{http.Header{"Age": {" 12 "}}, Age{Seconds{12}}},
	}
	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			checkDecode(t, test.header, &test.result, &Age{})
		})
	}
}

func TestAgeReject(t *testing.T) {
	tests := []http.Header{
		{},
		{"Age": {"1", "2"}},
		{"Age": {"one"}},
		{"Age": {"Fri, 13 Sep 2019 13:00:00 GMT"}},
	}
	for _, header := range tests {
		t.Run("", func(t *testing.T) {
			checkReject(t, header, &Age{})
		})
	}
}

func TestAgeRoundTrip(t *testing.T) {
	checkRoundTrip(t, func(r *rand.Rand) (Header, Header) {
		return &Age{Seconds: mkSeconds(r)}, &Age{}
	})
}

func TestAgeFuzz(t *testing.T) {
	checkFuzz(t, func() Header { return &Age{} })
}
