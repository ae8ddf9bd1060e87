package codec

import (
	"fmt"
	"strings"
)

// Roman implements the additive-subtractive Latin numeral system.
// The supported domain is 1..3999: four repetitions of M are not
// written, and there is no symbol for zero.
type Roman struct{}

// NewRoman returns the Roman numeral codec.
func NewRoman() *Roman { return &Roman{} }

const romanMax = 3999

// romanTable is ordered descending by value, interleaving the six
// subtractive pairs with the seven base symbols. Decode relies on this
// order: every subtractive pair precedes its leading single symbol, so
// greedy prefix matching checks "CM" before "C" and so on.
var romanTable = []struct {
	value  int64
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Encode renders n by greedily consuming the largest symbol that still
// fits the remainder. The greedy algorithm is optimal for this symbol
// set.
func (c *Roman) Encode(n int64, opts Options) (string, error) {
	if n < 1 {
		return "", &Error{
			Code:    CodeNotPositive,
			System:  "roman",
			Message: fmt.Sprintf("%d is not representable; Roman numerals start at 1", n),
		}
	}
	if n > romanMax {
		return "", &Error{
			Code:    CodeOutOfRange,
			System:  "roman",
			Message: fmt.Sprintf("%d exceeds the Roman maximum of %d", n, romanMax),
		}
	}

	var b strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			b.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return b.String(), nil
}

// Decode greedily matches symbol prefixes left to right, accumulating
// their values. Subtractive pairs are matched before their single
// leading letter by table order.
func (c *Roman) Decode(s string, opts Options) (int64, error) {
	rest := s
	var acc int64
	for len(rest) > 0 {
		matched := false
		for _, entry := range romanTable {
			if strings.HasPrefix(rest, entry.symbol) {
				acc += entry.value
				rest = rest[len(entry.symbol):]
				matched = true
				break
			}
		}
		if !matched {
			return 0, &Error{
				Code:    CodeInvalidRomanNumeral,
				System:  "roman",
				Message: fmt.Sprintf("unrecognized symbol run starting at %q", rest),
			}
		}
	}
	if acc == 0 {
		return 0, &Error{
			Code:    CodeInvalidRomanNumeral,
			System:  "roman",
			Message: "empty numeral",
		}
	}
	return acc, nil
}

// Detect reports whether s is a non-empty run of Roman symbols.
func (c *Roman) Detect(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case 'M', 'D', 'C', 'L', 'X', 'V', 'I':
		default:
			return false
		}
	}
	return true
}
