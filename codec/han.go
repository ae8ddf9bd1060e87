package codec

import (
	"fmt"
	"strings"
)

// Han implements myriad-grouped multiplicative-additive decimal
// notation as used by the Han-script systems: digits pair with unit
// glyphs (ten, hundred, thousand) inside each base-10000 group, and
// groups are closed by section glyphs (myriad, hundred-million, ...).
// One implementation serves the simplified, financial and Japanese
// variants through their glyph tables.
//
// Decode is a deliberate subset: only the zero constant and a signed
// zero are recognized. General myriad parsing is an acknowledged gap
// surfaced as a not_implemented error, not silently approximated.
type Han struct {
	system   string
	digits   [10]string // digit glyphs; digits[0] doubles as the zero/placeholder glyph
	units    [4]string  // intra-group multipliers: "", ten, hundred, thousand
	sections []string   // group closers, ascending powers of 10000
	negative string
	glyphs   map[rune]bool
}

// NewHan returns a myriad hybrid codec over the given glyph tables.
// sections lists the group closers for 10^4, 10^8, ... in ascending
// order.
func NewHan(system string, digits [10]string, units [4]string, sections []string, negative string) *Han {
	h := &Han{
		system:   system,
		digits:   digits,
		units:    units,
		sections: sections,
		negative: negative,
	}
	h.glyphs = make(map[rune]bool)
	for _, g := range digits {
		for _, r := range g {
			h.glyphs[r] = true
		}
	}
	for _, g := range units[1:] {
		for _, r := range g {
			h.glyphs[r] = true
		}
	}
	for _, g := range sections {
		for _, r := range g {
			h.glyphs[r] = true
		}
	}
	for _, r := range negative {
		h.glyphs[r] = true
	}
	return h
}

// Encode renders n in myriad groups, most significant first. A
// zero-valued group keeps its section glyph (with no group text) once
// something has been emitted before it, internal zero digit runs
// collapse to a single placeholder tracked across group boundaries,
// and a leading "one ten" contracts to the bare tens glyph.
func (h *Han) Encode(n int64, opts Options) (string, error) {
	if n == 0 {
		return h.digits[0], nil
	}
	negative := n < 0
	mag := uint64(n)
	if negative {
		mag = -mag
	}

	var groups []int64
	for mag > 0 {
		groups = append(groups, int64(mag%10000))
		mag /= 10000
	}
	if len(groups)-1 > len(h.sections) {
		return "", &Error{
			Code:    CodeOutOfRange,
			System:  h.system,
			Message: fmt.Sprintf("%d exceeds the largest section glyph", n),
		}
	}

	var b strings.Builder
	wrote := false
	pendingZero := false
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			if wrote {
				pendingZero = true
				if i > 0 {
					b.WriteString(h.sections[i-1])
				}
			}
			continue
		}
		h.writeGroup(&b, g, &wrote, &pendingZero)
		if i > 0 {
			b.WriteString(h.sections[i-1])
		}
	}

	s := b.String()
	if oneTen := h.digits[1] + h.units[1]; strings.HasPrefix(s, oneTen) {
		s = s[len(h.digits[1]):]
	}
	if negative {
		s = h.negative + s
	}
	return s, nil
}

// writeGroup renders a group value in 1..9999 as digit/unit pairs from
// the thousands position down. Zero runs collapse to one placeholder
// and trailing zeros drop entirely; wrote and pendingZero persist
// across groups so a lower group opening with zeros after emitted text
// still gets its placeholder.
func (h *Han) writeGroup(b *strings.Builder, g int64, wrote, pendingZero *bool) {
	for pos, pow := 3, int64(1000); pos >= 0; pos, pow = pos-1, pow/10 {
		d := g / pow % 10
		if d == 0 {
			if *wrote {
				*pendingZero = true
			}
			continue
		}
		if *pendingZero {
			b.WriteString(h.digits[0])
			*pendingZero = false
		}
		b.WriteString(h.digits[d])
		b.WriteString(h.units[pos])
		*wrote = true
	}
}

// Decode recognizes the zero constant and a negative-signed zero;
// every other well-formed numeral is an acknowledged gap.
func (h *Han) Decode(s string, opts Options) (int64, error) {
	switch s {
	case "":
		return 0, &Error{
			Code:    CodeInvalidHanNumeral,
			System:  h.system,
			Message: "empty numeral",
		}
	case h.digits[0], h.negative + h.digits[0]:
		return 0, nil
	}
	return 0, &Error{
		Code:    CodeNotImplemented,
		System:  h.system,
		Message: "general myriad decoding is not implemented; only the zero forms are recognized",
	}
}

// Detect reports whether s is a non-empty run of this variant's digit,
// unit, section, zero and sign glyphs.
func (h *Han) Detect(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !h.glyphs[r] {
			return false
		}
	}
	return true
}
