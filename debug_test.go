//go:build typedheader_debug

package typedheader

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePanicsOnMisspelledScheme(t *testing.T) {
	assert.Panics(t, func() {
		Encode(http.Header{}, &Authorization[misspelled]{misspelled{"x"}})
	})
	assert.Panics(t, func() {
		Encode(http.Header{}, &ProxyAuthorization[misspelled]{misspelled{"x"}})
	})
	assert.NotPanics(t, func() {
		Encode(http.Header{}, &ProxyAuthorization[Basic]{Basic{"a", "b"}})
	})
}
