package codec

import (
	"fmt"
	"math"
	"strings"
)

// Ethiopic implements the Ge'ez hierarchical multiplicative system.
// Digit glyphs cover 1..9 and the tens 10..90; two closer glyphs scale
// everything accumulated since the previous closer by 100 and by
// 10000 respectively, nesting to arbitrary depth.
type Ethiopic struct{}

// NewEthiopic returns the Ethiopic numeral codec.
func NewEthiopic() *Ethiopic { return &Ethiopic{} }

const (
	ethiopicOnesBase = 0x1369 // ፩..፱, values 1..9
	ethiopicTensBase = 0x1372 // ፲..፺, values 10..90
	ethiopicHundred  = '፻'    // multiplies the open group by 100
	ethiopicMyriad   = '፼'    // multiplies the open super-group by 10000
)

// Encode renders n by magnitude band: the quotient by 10000 (then by
// 100 on the remainder) is encoded recursively and closed by the
// matching multiplier glyph, with a coefficient of one left implicit.
func (c *Ethiopic) Encode(n int64, opts Options) (string, error) {
	if n < 1 {
		return "", &Error{
			Code:    CodeNotPositive,
			System:  "ethiopic",
			Message: fmt.Sprintf("%d is not representable; Ethiopic numerals start at 1", n),
		}
	}
	var b strings.Builder
	ethiopicEncode(&b, n)
	return b.String(), nil
}

func ethiopicEncode(b *strings.Builder, n int64) {
	switch {
	case n >= 10000:
		q, r := n/10000, n%10000
		if q > 1 {
			ethiopicEncode(b, q)
		}
		b.WriteRune(ethiopicMyriad)
		if r > 0 {
			ethiopicEncode(b, r)
		}
	case n >= 100:
		q, r := n/100, n%100
		if q > 1 {
			ethiopicEncode(b, q)
		}
		b.WriteRune(ethiopicHundred)
		if r > 0 {
			ethiopicEncode(b, r)
		}
	default:
		if tens := n / 10; tens > 0 {
			b.WriteRune(ethiopicTensBase + rune(tens-1))
		}
		if ones := n % 10; ones > 0 {
			b.WriteRune(ethiopicOnesBase + rune(ones-1))
		}
	}
}

// Decode folds the glyph stream through three accumulators: the open
// sub-99 value, the open 0..9999 segment, and the running total. A
// hundred closer folds the sub-99 value into the segment; a myriad
// closer folds segment plus current into the total and scales the
// whole total by 10000. A closer with nothing accumulated takes a
// coefficient of one, so adjacent myriad closers compound: "፼፼" is
// (0+1)*10000 followed by (10000+1)*10000, i.e. 100010000. That
// arithmetic is kept exactly as documented, unusual as the repeated
// case reads. Each fold step that grows an accumulator is guarded so
// glyph-valid input past the int64 range fails out_of_range instead of
// wrapping.
func (c *Ethiopic) Decode(s string, opts Options) (int64, error) {
	var curr, seg, total int64
	decoded := false
	for _, r := range s {
		switch {
		case r >= ethiopicOnesBase && r <= ethiopicOnesBase+8:
			v := int64(r-ethiopicOnesBase) + 1
			if curr > math.MaxInt64-v {
				return 0, ethiopicOverflow()
			}
			curr += v
		case r >= ethiopicTensBase && r <= ethiopicTensBase+8:
			v := (int64(r-ethiopicTensBase) + 1) * 10
			if curr > math.MaxInt64-v {
				return 0, ethiopicOverflow()
			}
			curr += v
		case r == ethiopicHundred:
			coeff := curr
			if coeff == 0 {
				coeff = 1
			}
			if coeff > (math.MaxInt64-seg)/100 {
				return 0, ethiopicOverflow()
			}
			seg += coeff * 100
			curr = 0
		case r == ethiopicMyriad:
			if seg > math.MaxInt64-curr {
				return 0, ethiopicOverflow()
			}
			coeff := seg + curr
			if coeff == 0 {
				coeff = 1
			}
			if total > math.MaxInt64-coeff || total+coeff > math.MaxInt64/10000 {
				return 0, ethiopicOverflow()
			}
			total = (total + coeff) * 10000
			seg, curr = 0, 0
		default:
			return 0, &Error{
				Code:    CodeInvalidEthiopicNumeral,
				System:  "ethiopic",
				Message: fmt.Sprintf("%q is not an Ethiopic numeral glyph", r),
			}
		}
		decoded = true
	}
	if !decoded {
		return 0, &Error{
			Code:    CodeInvalidEthiopicNumeral,
			System:  "ethiopic",
			Message: "empty numeral",
		}
	}
	if total > math.MaxInt64-seg || total+seg > math.MaxInt64-curr {
		return 0, ethiopicOverflow()
	}
	return total + seg + curr, nil
}

func ethiopicOverflow() *Error {
	return &Error{
		Code:    CodeOutOfRange,
		System:  "ethiopic",
		Message: "value overflows int64",
	}
}

// Detect reports whether s is a non-empty run of Ethiopic numeral
// glyphs.
func (c *Ethiopic) Detect(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= ethiopicOnesBase && r <= ethiopicTensBase+8:
		case r == ethiopicHundred || r == ethiopicMyriad:
		default:
			return false
		}
	}
	return true
}
