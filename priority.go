package numera

// detectionOrder is the total order auto-detection walks. The standing
// invariant, pinned by a test: structurally distinct and
// narrow-glyph-set systems come before generic ones. The historical
// scripts lead, every non-Arabic positional script follows, plain
// Arabic digits come second to last, and base-12 is strictly last
// because its digit set deliberately overlaps 0-9.
//
// Review this order whenever a system is added.
var detectionOrder = buildDetectionOrder()

func buildDetectionOrder() []System {
	order := []System{
		Roman,
		Aegean,
		Attic,
		Ethiopic,
		Cuneiform,
		Hanzi,
		HanziFinancial,
		Japanese,
	}
	for _, ps := range positionalScripts {
		if ps.id == Arabic {
			continue
		}
		order = append(order, ps.id)
	}
	return append(order, Arabic, Base12)
}
