package units

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOctas(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1.25", 125_000_000},
		{"10", 1_000_000_000},
		{"2.5", 250_000_000},
		{"0", 0},
		{"0.00000001", 1},
		{"0.000000001", 0}, // 9th fractional digit truncates
		{"1.999999999", 199_999_999},
		{".5", 50_000_000},
		{"  3 ", 300_000_000},
		{"184467440737.09551615", 18_446_744_073_709_551_615},
	}
	for _, tt := range tests {
		got, err := ToOctas(tt.in)
		require.NoError(t, err, "ToOctas(%q)", tt.in)
		assert.Equal(t, tt.want, got.Uint64(), "ToOctas(%q)", tt.in)
	}
}

func TestToOctasRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "-1", "-0.5", "abc", "1.2.3", "1,5", "1e8"} {
		_, err := ToOctas(in)
		assert.Error(t, err, "ToOctas(%q)", in)
	}
}

func TestFromOctas(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{125_000_000, "1.25"},
		{1_000_000_000, "10"},
		{1, "0.00000001"},
		{0, "0"},
		{250_000_000, "2.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromOctas(uint256.NewInt(tt.in)), "FromOctas(%d)", tt.in)
	}
	assert.Equal(t, "0", FromOctas(nil))
}

func TestOctasRoundTrip(t *testing.T) {
	f := fuzz.New()
	for i := 0; i < 500; i++ {
		var raw uint64
		f.Fuzz(&raw)
		v := uint256.NewInt(raw)
		back, err := ToOctas(FromOctas(v))
		require.NoError(t, err)
		assert.True(t, v.Eq(back), "round trip of %d octas", raw)
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := ParseQuantity("4")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), q.Uint64())

	for _, in := range []string{"", "4.5", "-4", "four"} {
		_, err := ParseQuantity(in)
		assert.Error(t, err, "ParseQuantity(%q)", in)
	}
}
