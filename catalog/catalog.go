// Package catalog carries human-readable metadata for every supported
// numeral system. The data lives in an embedded CUE file and is
// compiled at load; the engine itself never consults it — the catalog
// exists for listing surfaces like the CLI.
package catalog

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/numera"
)

//go:embed systems.cue
var systemsCUE []byte

// Entry describes one numeral system.
type Entry struct {
	System      numera.System `json:"system"`
	Title       string        `json:"title"`
	Kind        string        `json:"kind"` // positional | additive | hybrid
	Description string        `json:"description"`
	Example     string        `json:"example"` // 1984 rendered in the system, where its domain allows
}

// Load compiles the embedded CUE catalog and returns one entry per
// registered system, in detection priority order. The catalog and the
// registry must cover exactly the same closed set: a registered system
// without an entry, or an entry naming an unregistered system, is a
// load error.
func Load() ([]Entry, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(systemsCUE)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile systems catalog: %w", err)
	}

	root := v.LookupPath(cue.ParsePath("systems"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("systems catalog has no systems struct: %w", err)
	}

	registered := make(map[numera.System]bool)
	entries := make([]Entry, 0, len(numera.Systems()))
	for _, sys := range numera.Systems() {
		registered[sys] = true
		ev := root.LookupPath(cue.MakePath(cue.Str(string(sys))))
		if !ev.Exists() {
			return nil, fmt.Errorf("catalog entry missing for system %q", sys)
		}
		var e Entry
		if err := ev.Decode(&e); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", sys, err)
		}
		e.System = sys
		entries = append(entries, e)
	}

	it, err := root.Fields()
	if err != nil {
		return nil, fmt.Errorf("iterate systems catalog: %w", err)
	}
	for it.Next() {
		if name := it.Selector().Unquoted(); !registered[numera.System(name)] {
			return nil, fmt.Errorf("catalog names unregistered system %q", name)
		}
	}

	return entries, nil
}
