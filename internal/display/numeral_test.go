package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeral(t *testing.T) {
	cases := map[int]string{
		1: "I", 4: "IV", 5: "V", 9: "IX", 10: "X", 14: "XIV",
		40: "XL", 90: "XC", 255: "CCLV", 1994: "MCMXCIV", 3999: "MMMCMXCIX",
		0: "0", -3: "-3", 4000: "4000",
	}
	for n, want := range cases {
		assert.Equal(t, want, Numeral(n), "n=%d", n)
	}
}
