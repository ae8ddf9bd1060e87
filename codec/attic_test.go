package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtticEncode(t *testing.T) {
	c := NewAttic()

	tests := []struct {
		n    int64
		want string
	}{
		{1, "Ι"},
		{4, "ΙΙΙΙ"},
		{5, "𐅃"},
		{6, "𐅃Ι"},
		{49, "ΔΔΔΔ𐅃ΙΙΙΙ"},
		{50, "𐅄"},
		{100, "Η"},
		{2019, "ΧΧΔ𐅃ΙΙΙΙ"},
		{50000, "𐅇"},
	}

	for _, tt := range tests {
		got, err := c.Encode(tt.n, Options{})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestAtticEncodeDomain(t *testing.T) {
	c := NewAttic()

	_, err := c.Encode(0, Options{})
	assert.True(t, IsCode(err, CodeNotPositive))

	_, err = c.Encode(-49, Options{})
	assert.True(t, IsCode(err, CodeNotPositive))
}

func TestAtticDecode(t *testing.T) {
	c := NewAttic()

	got, err := c.Decode("ΔΔΔΔ𐅃ΙΙΙΙ", Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(49), got)

	// Order-insensitive, unlike Roman.
	got, err = c.Decode("ΙΔ", Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got)
}

func TestAtticDecodeInvalid(t *testing.T) {
	c := NewAttic()

	for _, in := range []string{"", "IV", "Δx", "Ω"} {
		_, err := c.Decode(in, Options{})
		require.Error(t, err, "in=%q", in)
		assert.True(t, IsCode(err, CodeInvalidAtticNumeral), "in=%q", in)
	}
}

func TestAtticRoundTrip(t *testing.T) {
	c := NewAttic()

	for n := int64(1); n <= 200; n++ {
		s, err := c.Encode(n, Options{})
		require.NoError(t, err)
		got, err := c.Decode(s, Options{})
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, got, "encoded=%q", s)
	}

	for _, n := range []int64{999, 5555, 49999, 123456} {
		s, err := c.Encode(n, Options{})
		require.NoError(t, err)
		got, err := c.Decode(s, Options{})
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, got, "encoded=%q", s)
	}
}

func TestAtticDetect(t *testing.T) {
	c := NewAttic()

	assert.False(t, c.Detect(""))
	assert.True(t, c.Detect("ΔΔΔΔ𐅃ΙΙΙΙ"))
	// Latin I and V are Roman, not Attic.
	assert.False(t, c.Detect("IV"))
}
