package otface

// HmtxTable holds per-glyph metrics, horizontal (hmtx) or vertical (vmtx);
// both tables share one layout. The first NumberOfMetrics glyphs carry a
// long metric (advance + side bearing); glyphs beyond that repeat the last
// advance and read their side bearing from a trailing bearing array.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
//
// Dependencies: the number of long metrics comes from the hhea (or vhea)
// table, the glyph count from maxp. Fonts that lack an hhea table must not
// have an hmtx table.
type HmtxTable struct {
	metrics         fontBinSegm // NumberOfMetrics × (advance u16 + bearing i16)
	bearings        fontBinSegm // trailing side bearings, may be empty
	numberOfMetrics uint16
	numGlyphs       uint16
}

const longMetricSize = 4

// parseHmtx parses an hmtx or vmtx table against the metric count declared
// by the corresponding header table and the font's glyph count.
func parseHmtx(b fontBinSegm, numberOfMetrics, numGlyphs uint16) (*HmtxTable, error) {
	if numberOfMetrics == 0 {
		return nil, errFontFormat("metrics table without long metrics")
	}
	if numberOfMetrics > numGlyphs {
		numberOfMetrics = numGlyphs
	}
	metrics, err := b.view(0, int(numberOfMetrics)*longMetricSize)
	if err != nil {
		return nil, errFontFormat("metrics array bounds")
	}
	t := &HmtxTable{
		metrics:         metrics,
		numberOfMetrics: numberOfMetrics,
		numGlyphs:       numGlyphs,
	}
	// The trailing bearing array is optional; a short table simply has
	// fewer addressable glyphs.
	extra := int(numGlyphs) - int(numberOfMetrics)
	if extra > 0 {
		if bearings, err := b.view(int(numberOfMetrics)*longMetricSize, extra*2); err == nil {
			t.bearings = bearings
		}
	}
	return t, nil
}

// Advance returns the advance of glyph gid. Glyphs beyond the long-metric
// array repeat the last declared advance.
func (t *HmtxTable) Advance(gid GlyphId) (uint16, bool) {
	if uint16(gid) >= t.numGlyphs {
		return 0, false
	}
	i := int(gid)
	if uint16(gid) >= t.numberOfMetrics {
		if t.bearings == nil {
			return 0, false
		}
		i = int(t.numberOfMetrics) - 1
	}
	a, err := t.metrics.u16(i * longMetricSize)
	if err != nil {
		return 0, false
	}
	return a, true
}

// SideBearing returns the side bearing of glyph gid.
func (t *HmtxTable) SideBearing(gid GlyphId) (int16, bool) {
	if uint16(gid) >= t.numGlyphs {
		return 0, false
	}
	if uint16(gid) < t.numberOfMetrics {
		sb, err := t.metrics.i16(int(gid)*longMetricSize + 2)
		if err != nil {
			return 0, false
		}
		return sb, true
	}
	sb, err := t.bearings.i16((int(gid) - int(t.numberOfMetrics)) * 2)
	if err != nil {
		return 0, false
	}
	return sb, true
}
