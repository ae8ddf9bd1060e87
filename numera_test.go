package numera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numera/codec"
)

func TestEncodeDefaults(t *testing.T) {
	got, err := Encode(123, Arabic)
	require.NoError(t, err)
	assert.Equal(t, "123", got)

	got, err = Encode(-45, Arabic)
	require.NoError(t, err)
	assert.Equal(t, "-45", got)
}

func TestEncodeUnknownSystem(t *testing.T) {
	_, err := Encode(1, "klingon")
	require.Error(t, err)
	assert.True(t, codec.IsCode(err, codec.CodeUnknownSystem))
}

func TestEncodeSeparator(t *testing.T) {
	got, err := Encode(1234567, Arabic, WithSeparator(','))
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", got)

	n, err := Decode("1,234,567", WithFrom(Arabic), WithSeparator(','))
	require.NoError(t, err)
	assert.Equal(t, int64(1234567), n)
}

func TestDecodeSignHandling(t *testing.T) {
	plus, err := Decode("+123", WithFrom(Arabic))
	require.NoError(t, err)
	bare, err := Decode("123", WithFrom(Arabic))
	require.NoError(t, err)
	assert.Equal(t, int64(123), plus)
	assert.Equal(t, bare, plus)
}

func TestDecodeAuto(t *testing.T) {
	tests := []struct {
		in   string
		sys  System
		want int64
	}{
		{"MMXXVI", Roman, 2026},
		{"ΔΔΔΔ𐅃ΙΙΙΙ", Attic, 49},
		{"፲፱፻፺፮", Ethiopic, 1996},
		{"१९८४", "devanagari", 1984},
		{"๔๒", "thai", 42},
		{"42", Arabic, 42},
		{"↋↊", Base12, 142},
	}

	for _, tt := range tests {
		sys, ok := Detect(tt.in)
		require.True(t, ok, "in=%q", tt.in)
		assert.Equal(t, tt.sys, sys, "in=%q", tt.in)

		n, err := Decode(tt.in)
		require.NoError(t, err, "in=%q", tt.in)
		assert.Equal(t, tt.want, n, "in=%q", tt.in)
	}
}

func TestDecodeAutoNoClaimant(t *testing.T) {
	_, err := Decode("hello world")
	require.Error(t, err)
	assert.True(t, codec.IsCode(err, codec.CodeUnknownSystem))

	_, err = Decode("")
	require.Error(t, err)
	assert.True(t, codec.IsCode(err, codec.CodeUnknownSystem))

	// Whitespace alone is tolerated inside numerals as grouping or
	// placeholder characters but never claims a system by itself.
	for _, in := range []string{" ", "   "} {
		_, ok := Detect(in)
		assert.False(t, ok, "in=%q", in)

		_, err = Decode(in)
		require.Error(t, err, "in=%q", in)
		assert.True(t, codec.IsCode(err, codec.CodeUnknownSystem), "in=%q", in)
	}
}

func TestDecodeExplicitUnknownSystem(t *testing.T) {
	_, err := Decode("123", WithFrom("klingon"))
	require.Error(t, err)
	assert.True(t, codec.IsCode(err, codec.CodeUnknownSystem))
}

func TestTranslate(t *testing.T) {
	got, err := Translate("MMXXVI", Arabic)
	require.NoError(t, err)
	assert.Equal(t, "2026", got)

	got, err = Translate("49", Attic)
	require.NoError(t, err)
	assert.Equal(t, "ΔΔΔΔ𐅃ΙΙΙΙ", got)

	got, err = Translate("१९८४", "thai", WithFrom("devanagari"))
	require.NoError(t, err)
	assert.Equal(t, "๑๙๘๔", got)
}

func TestTranslateFailFast(t *testing.T) {
	// The decode half fails; the encode half must never run.
	_, err := Translate("hello", Roman)
	require.Error(t, err)
	assert.True(t, codec.IsCode(err, codec.CodeUnknownSystem))

	// The decode half succeeds but the value is outside the target
	// domain; the codec's own error is relayed unchanged.
	_, err = Translate("4000", Roman)
	require.Error(t, err)
	assert.True(t, codec.IsCode(err, codec.CodeOutOfRange))

	_, err = Translate("0", Roman)
	require.Error(t, err)
	assert.True(t, codec.IsCode(err, codec.CodeNotPositive))
}

func TestEncodeAll(t *testing.T) {
	got, err := EncodeAll([]int64{1, 2, 3}, Roman)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "II", "III"}, got)
}

func TestEncodeAllFailFast(t *testing.T) {
	// The first out-of-domain element aborts the batch; no partial
	// list comes back.
	got, err := EncodeAll([]int64{1, 4000, 3}, Roman)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, codec.IsCode(err, codec.CodeOutOfRange))

	got, err = EncodeAll([]int64{0, 4000}, Roman)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, codec.IsCode(err, codec.CodeNotPositive))
}

func TestEncodeAllEmpty(t *testing.T) {
	got, err := EncodeAll(nil, Arabic)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSystemsCoversRegistry(t *testing.T) {
	systems := Systems()
	assert.Len(t, systems, len(registry))

	seen := make(map[System]bool)
	for _, sys := range systems {
		assert.False(t, seen[sys], "duplicate system %q", sys)
		seen[sys] = true
		_, ok := registry[sys]
		assert.True(t, ok, "system %q not registered", sys)
	}
}

func TestLiteralFixtures(t *testing.T) {
	tests := []struct {
		sys  System
		n    int64
		want string
	}{
		{Aegean, 1000, string(rune(0x10122))},
		{Aegean, 10000, string(rune(0x1012B))},
		{Attic, 49, "ΔΔΔΔ𐅃ΙΙΙΙ"},
		{Ethiopic, 10000, "፼"},
		{Ethiopic, 20000, "፪፼"},
		{Cuneiform, 60, "𒁹   "},
		{Cuneiform, 23, "𒌋𒌋𒁹𒁹𒁹"},
		{Hanzi, 12345, "一万二千三百四十五"},
		{Hanzi, 0, "零"},
		{Hanzi, -123, "负一百二十三"},
		{Roman, 3999, "MMMCMXCIX"},
	}

	for _, tt := range tests {
		got, err := Encode(tt.n, tt.sys)
		require.NoError(t, err, "system=%s n=%d", tt.sys, tt.n)
		assert.Equal(t, tt.want, got, "system=%s n=%d", tt.sys, tt.n)
	}
}

func TestHanDecodeGapSurfacesThroughAPI(t *testing.T) {
	_, err := Decode("一万二千三百四十五", WithFrom(Hanzi))
	require.Error(t, err)
	assert.True(t, codec.IsCode(err, codec.CodeNotImplemented))
}
