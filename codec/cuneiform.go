package codec

import (
	"fmt"
	"math"
	"strings"
)

// Cuneiform implements Babylonian segmented sexagesimal notation:
// base-60 positions rendered most significant first and joined by a
// double space, where each position is itself an additive run of tens
// and units wedges. A zero position is a single space placeholder; the
// script predates a zero glyph.
type Cuneiform struct{}

// NewCuneiform returns the Cuneiform numeral codec.
func NewCuneiform() *Cuneiform { return &Cuneiform{} }

const (
	cuneiformUnit = 0x12079 // 𒁹 DIŠ, one unit
	cuneiformTen  = 0x1230B // 𒌋 U, one ten

	// cuneiformSeparator joins base-60 positions; a lone
	// cuneiformPlaceholder stands for a zero position.
	cuneiformSeparator   = "  "
	cuneiformPlaceholder = " "
)

// Encode decomposes n into base-60 digits and renders each as repeated
// tens wedges followed by repeated unit wedges.
func (c *Cuneiform) Encode(n int64, opts Options) (string, error) {
	if n < 0 {
		return "", &Error{
			Code:    CodeNegative,
			System:  "cuneiform",
			Message: fmt.Sprintf("%d is negative; Cuneiform numerals are non-negative", n),
		}
	}

	var digits []int64
	for {
		digits = append(digits, n%60)
		n /= 60
		if n == 0 {
			break
		}
	}

	parts := make([]string, 0, len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		parts = append(parts, cuneiformDigit(digits[i]))
	}
	return strings.Join(parts, cuneiformSeparator), nil
}

func cuneiformDigit(d int64) string {
	if d == 0 {
		return cuneiformPlaceholder
	}
	var b strings.Builder
	for i := int64(0); i < d/10; i++ {
		b.WriteRune(cuneiformTen)
	}
	for i := int64(0); i < d%10; i++ {
		b.WriteRune(cuneiformUnit)
	}
	return b.String()
}

// Decode walks positions most significant first, separated by the
// literal double space, and folds each through the inner additive
// sub-decoder. Zero positions are a single space and separators are
// two, so segmentation proceeds part by part rather than by a naive
// split: a plain split would eat the placeholder spaces whenever two
// zero positions are adjacent. A blank or lone-space position is 0.
func (c *Cuneiform) Decode(s string, opts Options) (int64, error) {
	runes := []rune(s)
	var acc int64
	i := 0
	for i < len(runes) {
		d, next, err := cuneiformPart(runes, i)
		if err != nil {
			return 0, err
		}
		if acc > (math.MaxInt64-d)/60 {
			return 0, cuneiformOverflow()
		}
		acc = acc*60 + d
		i = next
		if i >= len(runes) {
			break
		}
		// Positions are joined by exactly two spaces.
		if i+1 >= len(runes) || runes[i] != ' ' || runes[i+1] != ' ' {
			return 0, &Error{
				Code:    CodeInvalidCuneiformNumeral,
				System:  "cuneiform",
				Message: "positions must be separated by a double space",
			}
		}
		i += 2
		if i == len(runes) {
			// Trailing separator closes a blank (zero) position.
			if acc > math.MaxInt64/60 {
				return 0, cuneiformOverflow()
			}
			acc = acc * 60
		}
	}
	return acc, nil
}

func cuneiformOverflow() *Error {
	return &Error{
		Code:    CodeOutOfRange,
		System:  "cuneiform",
		Message: "value overflows int64",
	}
}

// cuneiformPart decodes the position starting at i and returns its
// value and the index just past it. A lone space is the zero
// placeholder; anything else is a run of tens and unit wedges.
func cuneiformPart(runes []rune, i int) (int64, int, error) {
	if runes[i] == ' ' {
		return 0, i + 1, nil
	}
	var d int64
	for i < len(runes) && runes[i] != ' ' {
		switch runes[i] {
		case cuneiformTen:
			if d > math.MaxInt64-10 {
				return 0, 0, cuneiformOverflow()
			}
			d += 10
		case cuneiformUnit:
			if d == math.MaxInt64 {
				return 0, 0, cuneiformOverflow()
			}
			d++
		default:
			return 0, 0, &Error{
				Code:    CodeInvalidCuneiformNumeral,
				System:  "cuneiform",
				Message: fmt.Sprintf("%q is not a Cuneiform numeral glyph", runes[i]),
			}
		}
		i++
	}
	return d, i, nil
}

// Detect reports whether s consists solely of Cuneiform wedges and the
// space used for position separation and the zero placeholder. At
// least one wedge is required: whitespace alone does not claim the
// string.
func (c *Cuneiform) Detect(s string) bool {
	sawWedge := false
	for _, r := range s {
		switch r {
		case cuneiformTen, cuneiformUnit:
			sawWedge = true
		case ' ':
		default:
			return false
		}
	}
	return sawWedge
}
