package normalize

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKnownFormats(t *testing.T) {
	want := "2025-04-07T00:00:00.000Z"
	cases := []string{
		"07-Apr-2025",
		"07/Apr/2025",
		"07-April-2025",
		"07/April/2025",
		"07-04-2025",
		"07/04/2025",
		"2025-04-07",
		"07.04.2025",
		"7 Apr 2025",
		"07 April 2025",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Date(in, zerolog.Nop()))
		})
	}
}

func TestDateCaseInsensitiveMonth(t *testing.T) {
	assert.Equal(t, "2025-04-07T00:00:00.000Z", Date("07-APR-2025", zerolog.Nop()))
	assert.Equal(t, "2025-04-08T00:00:00.000Z", Date("08/apr/2025", zerolog.Nop()))
}

func TestDateFallbackShape(t *testing.T) {
	// Unparsable and empty inputs both fall back to the current time; assert
	// the shape, not the clock value.
	shape := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)
	assert.Regexp(t, shape, Date("not-a-date", zerolog.Nop()))
	assert.Regexp(t, shape, Date("", zerolog.Nop()))
}

func TestDecimalCleaning(t *testing.T) {
	assert.Equal(t, 15736.17, Decimal("15,736.17"))
	assert.Equal(t, 1234567.5, Decimal("1,234, 567.5"))
	assert.Equal(t, 0.0, Decimal("abc"))
	assert.Equal(t, 0.0, Decimal(""))
	assert.Equal(t, -42.0, Decimal(" -42 "))
}

func TestDecimalIdempotent(t *testing.T) {
	for _, in := range []string{"15,736.17", "0", "abc", "  7.5 ", "1 000,5"} {
		once := Decimal(in)
		again := Decimal(strconv.FormatFloat(once, 'f', -1, 64))
		assert.Equal(t, once, again, "input %q", in)
	}
}

func TestDecimalOK(t *testing.T) {
	v, ok := DecimalOK("60.00")
	require.True(t, ok)
	assert.Equal(t, 60.0, v)

	_, ok = DecimalOK("n/a")
	assert.False(t, ok)
}

func TestIntegerTruncates(t *testing.T) {
	assert.Equal(t, 60, Integer("60.00"))
	assert.Equal(t, 1500, Integer("1,500.75"))
	assert.Equal(t, 0, Integer("sixty"))
}

func TestText(t *testing.T) {
	assert.Equal(t, "V P Traders", Text("  V P Traders "))
	assert.Equal(t, "", Text("   "))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 16523.0, Round2(16522.999999))
	assert.Equal(t, 0.1, Round2(0.10000000001))
}
