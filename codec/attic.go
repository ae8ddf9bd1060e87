package codec

import (
	"fmt"
	"strings"
)

// Attic implements the acrophonic Greek system: a glyph per magnitude
// (1, 5, 10, 50, ... 50000), literally repeated for each unit
// consumed. Unlike Aegean, four tens are four delta glyphs; unlike
// Roman, there is no subtractive refinement, so decoding is
// order-insensitive.
type Attic struct{}

// NewAttic returns the Attic numeral codec.
func NewAttic() *Attic { return &Attic{} }

// atticTable is ordered descending for greedy encoding. The 5, 50,
// 500, 5000 and 50000 glyphs live in the Ancient Greek Numbers block;
// the others are plain Greek capitals.
var atticTable = []struct {
	value int64
	glyph rune
}{
	{50000, 0x10147},
	{10000, 'Μ'},
	{5000, 0x10146},
	{1000, 'Χ'},
	{500, 0x10145},
	{100, 'Η'},
	{50, 0x10144},
	{10, 'Δ'},
	{5, 0x10143},
	{1, 'Ι'},
}

// Encode greedily repeats the largest glyph whose value still fits the
// remainder.
func (c *Attic) Encode(n int64, opts Options) (string, error) {
	if n < 1 {
		return "", &Error{
			Code:    CodeNotPositive,
			System:  "attic",
			Message: fmt.Sprintf("%d is not representable; Attic numerals start at 1", n),
		}
	}

	var b strings.Builder
	for _, entry := range atticTable {
		for n >= entry.value {
			b.WriteRune(entry.glyph)
			n -= entry.value
		}
	}
	return b.String(), nil
}

// Decode looks up and sums each code point independently.
func (c *Attic) Decode(s string, opts Options) (int64, error) {
	var acc int64
	decoded := false
	for _, r := range s {
		v, ok := atticValue(r)
		if !ok {
			return 0, &Error{
				Code:    CodeInvalidAtticNumeral,
				System:  "attic",
				Message: fmt.Sprintf("%q is not an Attic numeral glyph", r),
			}
		}
		acc += v
		decoded = true
	}
	if !decoded {
		return 0, &Error{
			Code:    CodeInvalidAtticNumeral,
			System:  "attic",
			Message: "empty numeral",
		}
	}
	return acc, nil
}

// Detect reports whether s is a non-empty run of Attic glyphs.
func (c *Attic) Detect(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := atticValue(r); !ok {
			return false
		}
	}
	return true
}

func atticValue(r rune) (int64, bool) {
	for _, entry := range atticTable {
		if entry.glyph == r {
			return entry.value, true
		}
	}
	return 0, false
}
