// Package codec implements encoders and decoders for numeral systems.
//
// Every numeral system is a stateless Codec value backed by immutable
// glyph tables. The bulk of the supported systems are plain positional
// scripts served by a single parametrized Positional codec; the
// structurally distinct historical systems (Roman, Aegean, Attic,
// Ethiopic, Cuneiform, and the Han myriad family) each get their own
// implementation because their grammars do not reduce to a base offset
// and a radix.
//
// Key design constraints:
//   - All conversions are pure functions over int64 and string; no
//     codec holds mutable state, so concurrent use needs no locking.
//   - Decode consumes the entire input. An unrecognized code point
//     anywhere aborts with a coded error; nothing is skipped silently.
//   - Encode never produces partial output. Out-of-domain inputs fail
//     with a coded error before any glyph is emitted.
//   - Detect is a pure predicate and is always false for "".
package codec

// Options carries per-call conversion settings.
//
// Separator is a single-rune digit-group separator honored only by
// positional codecs: Encode interleaves it every three digits counting
// from the least-significant end, Decode strips every occurrence
// before folding. The zero value means no separator.
type Options struct {
	Separator rune
}

// Codec is the capability contract every numeral system implements.
//
// Implementations are registered once at startup and never mutated;
// each method is an independent pure computation.
type Codec interface {
	// Encode renders n in this system. Inputs outside the system's
	// supported range fail with a coded error.
	Encode(n int64, opts Options) (string, error)

	// Decode parses s, which must consist entirely of this system's
	// glyphs, into its integer value.
	Decode(s string, opts Options) (int64, error)

	// Detect reports whether every constituent unit of s belongs to
	// this system's glyph set, after stripping an optional leading
	// sign and tolerated separator punctuation. Always false for "".
	Detect(s string) bool
}

// detectSeparators are the punctuation runes tolerated during
// detection of positional strings: a string may carry any of these as
// grouping marks without disqualifying the system.
var detectSeparators = map[rune]bool{
	',': true,
	'.': true,
	' ': true,
}

// stripSign removes a single leading "+" or "-" and reports whether
// the value was negative.
func stripSign(s string) (rest string, negative bool) {
	if len(s) > 0 {
		switch s[0] {
		case '+':
			return s[1:], false
		case '-':
			return s[1:], true
		}
	}
	return s, false
}
