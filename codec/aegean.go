package codec

import "fmt"

// Aegean implements the Linear A/B tally system: one glyph encodes a
// full (magnitude, count) pair, so 700 is a single code point rather
// than seven repeated hundreds. Purely additive, no positional carry.
type Aegean struct{}

// NewAegean returns the Aegean numeral codec.
func NewAegean() *Aegean { return &Aegean{} }

// aegeanRows maps each decimal magnitude to the code point of its
// count-1 glyph; counts 2..9 occupy the following eight code points.
var aegeanRows = []struct {
	magnitude int64
	base      rune
}{
	{10000, 0x1012B},
	{1000, 0x10122},
	{100, 0x10119},
	{10, 0x10110},
	{1, 0x10107},
}

// aegeanMax is the largest value expressible with one glyph per
// magnitude row: nine of each from ten-thousands down to units.
const aegeanMax = 99999

// Encode emits one glyph per non-zero decimal digit of n, descending
// by magnitude.
func (c *Aegean) Encode(n int64, opts Options) (string, error) {
	if n < 1 {
		return "", &Error{
			Code:    CodeNotPositive,
			System:  "aegean",
			Message: fmt.Sprintf("%d is not representable; Aegean numerals start at 1", n),
		}
	}
	if n > aegeanMax {
		return "", &Error{
			Code:    CodeOutOfRange,
			System:  "aegean",
			Message: fmt.Sprintf("%d exceeds the Aegean maximum of %d", n, aegeanMax),
		}
	}

	var out []rune
	for _, row := range aegeanRows {
		count := (n / row.magnitude) % 10
		if count > 0 {
			out = append(out, row.base+rune(count-1))
		}
	}
	return string(out), nil
}

// Decode sums the value of each code point independently; every glyph
// is self-contained, so order does not matter and there is no carry.
func (c *Aegean) Decode(s string, opts Options) (int64, error) {
	var acc int64
	decoded := false
	for _, r := range s {
		v, ok := aegeanValue(r)
		if !ok {
			return 0, &Error{
				Code:    CodeInvalidAegeanNumeral,
				System:  "aegean",
				Message: fmt.Sprintf("%q is not an Aegean numeral glyph", r),
			}
		}
		acc += v
		decoded = true
	}
	if !decoded {
		return 0, &Error{
			Code:    CodeInvalidAegeanNumeral,
			System:  "aegean",
			Message: "empty numeral",
		}
	}
	return acc, nil
}

// Detect reports whether s is a non-empty run of Aegean glyphs.
func (c *Aegean) Detect(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := aegeanValue(r); !ok {
			return false
		}
	}
	return true
}

func aegeanValue(r rune) (int64, bool) {
	for _, row := range aegeanRows {
		if r >= row.base && r < row.base+9 {
			return row.magnitude * int64(r-row.base+1), true
		}
	}
	return 0, false
}
