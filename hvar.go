package otface

// HvarTable is the HVAR (or VVAR, which shares the layout) metrics
// variation table. It yields per-glyph deltas for advances and side
// bearings at the current design-space coordinates.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hvar
type HvarTable struct {
	store          itemVariationStore
	advanceMapping fontBinSegm // optional
	bearingMapping fontBinSegm // optional
}

func parseHvar(b fontBinSegm) (*HvarTable, error) {
	version, err := b.u32(0)
	if err != nil || version != 0x00010000 {
		return nil, errFontFormat("HVAR table version")
	}
	storeOffset, _ := b.u32(4)
	advanceOffset, _ := b.u32(8)
	bearingOffset, _ := b.u32(12)
	storeData, err := b.view(int(storeOffset), b.Size()-int(storeOffset))
	if err != nil {
		return nil, errFontFormat("HVAR variation store offset")
	}
	store, err := parseItemVariationStore(storeData)
	if err != nil {
		return nil, err
	}
	t := &HvarTable{store: store}
	if advanceOffset != 0 {
		t.advanceMapping, _ = b.view(int(advanceOffset), b.Size()-int(advanceOffset))
	}
	if bearingOffset != 0 {
		t.bearingMapping, _ = b.view(int(bearingOffset), b.Size()-int(bearingOffset))
	}
	return t, nil
}

// AdvanceOffset returns the advance delta of glyph gid. Without an
// advance mapping, delta-set rows are indexed directly by glyph ID.
func (t *HvarTable) AdvanceOffset(gid GlyphId, coords []NormalizedCoordinate) (float32, bool) {
	outer, inner := uint16(0), uint16(gid)
	if t.advanceMapping != nil {
		var ok bool
		outer, inner, ok = deltaSetIndexMap{data: t.advanceMapping}.mapIndex(gid)
		if !ok {
			return 0, false
		}
	}
	return t.store.Delta(outer, inner, coords)
}

// SideBearingOffset returns the side-bearing delta of glyph gid. Unlike
// advances, side bearings always require an explicit mapping.
func (t *HvarTable) SideBearingOffset(gid GlyphId, coords []NormalizedCoordinate) (float32, bool) {
	if t.bearingMapping == nil {
		return 0, false
	}
	outer, inner, ok := deltaSetIndexMap{data: t.bearingMapping}.mapIndex(gid)
	if !ok {
		return 0, false
	}
	return t.store.Delta(outer, inner, coords)
}
