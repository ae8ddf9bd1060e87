// Package numera converts integers to and from textual numerals in
// dozens of numeral systems: positional scripts from Arabic to Adlam,
// the historical Roman, Aegean, Attic, Ethiopic and Cuneiform systems,
// the Han myriad family, and specialized bases such as Kaktovik and
// base-12. When the source system of a string is unknown, Decode
// resolves it by walking a fixed priority order of detectors.
//
// Every operation is a pure function over immutable glyph tables, so
// the package is safe for concurrent use without synchronization. All
// failures are ordinary returned errors carrying a machine-readable
// code; see the codec subpackage.
package numera

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/numera/codec"
)

// Encode renders n in the target system. It fails with
// unknown_system for an unregistered identifier and relays the
// codec's own error for out-of-domain values.
func Encode(n int64, to System, opts ...Option) (string, error) {
	o := newOptions(opts)
	c, ok := registry[to]
	if !ok {
		return "", unknownSystem(to)
	}
	return c.Encode(n, codec.Options{Separator: o.separator})
}

// EncodeAll encodes each element of ns independently, in input order.
// The first element-level failure aborts the batch; no partial list is
// returned.
func EncodeAll(ns []int64, to System, opts ...Option) ([]string, error) {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		s, err := Encode(n, to, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Decode parses s into its integer value. The source system defaults
// to Auto, resolving via the detection priority order; name it
// explicitly with WithFrom. Input is NFC-normalized before anything
// looks at it.
func Decode(s string, opts ...Option) (int64, error) {
	o := newOptions(opts)
	s = norm.NFC.String(s)
	c, err := resolveSource(s, o.from)
	if err != nil {
		return 0, err
	}
	return c.Decode(s, codec.Options{Separator: o.separator})
}

// Translate decodes s (source per WithFrom, default Auto) and
// re-encodes the value in the target system. Either half failing
// aborts the chain with that half's error, unchanged.
func Translate(s string, to System, opts ...Option) (string, error) {
	n, err := Decode(s, opts...)
	if err != nil {
		return "", err
	}
	return Encode(n, to, opts...)
}

// Detect resolves the numeral system of s by trying each registered
// system's detector in priority order, returning the first claimant.
func Detect(s string) (System, bool) {
	s = norm.NFC.String(s)
	if s == "" {
		return "", false
	}
	for _, id := range detectionOrder {
		if registry[id].Detect(s) {
			return id, true
		}
	}
	return "", false
}

// Systems returns every registered identifier in detection priority
// order.
func Systems() []System {
	out := make([]System, len(detectionOrder))
	copy(out, detectionOrder)
	return out
}

// resolveSource picks the codec for an explicit source system, or the
// first detector in priority order to claim s.
func resolveSource(s string, from System) (codec.Codec, error) {
	if from != Auto {
		c, ok := registry[from]
		if !ok {
			return nil, unknownSystem(from)
		}
		return c, nil
	}
	if id, ok := Detect(s); ok {
		return registry[id], nil
	}
	return nil, &codec.Error{
		Code:    codec.CodeUnknownSystem,
		Message: fmt.Sprintf("no registered numeral system claims %q", s),
	}
}

func unknownSystem(sys System) *codec.Error {
	return &codec.Error{
		Code:    codec.CodeUnknownSystem,
		Message: fmt.Sprintf("%q is not a registered numeral system", sys),
	}
}
