package otface

// LocaTable is the index-to-location table. It maps glyph IDs to byte
// ranges inside the glyf table. Entries are 16 bit (halved offsets) or
// 32 bit, depending on head.indexToLocFormat.
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
type LocaTable struct {
	data      fontBinSegm
	longFmt   bool
	numRanges int // number of addressable offsets, i.e. glyph count + 1
}

// parseLoca parses a loca table. A well-formed table has numGlyphs+1
// entries; shorter tables are accepted with the glyph range clamped to
// what the data covers.
func parseLoca(b fontBinSegm, numGlyphs uint16, format uint16) (*LocaTable, error) {
	total := int(numGlyphs) + 1
	entrySize := 2
	if format == 1 {
		entrySize = 4
	}
	avail := b.Size() / entrySize
	if avail < total {
		total = avail
	}
	if total < 2 {
		return nil, errFontFormat("loca table too short")
	}
	return &LocaTable{
		data:      b,
		longFmt:   format == 1,
		numRanges: total,
	}, nil
}

func (t *LocaTable) offset(i int) (uint32, bool) {
	if t.longFmt {
		n, err := t.data.u32(i * 4)
		return n, err == nil
	}
	n, err := t.data.u16(i * 2)
	return uint32(n) * 2, err == nil
}

// Range returns the glyf byte range of glyph gid. An empty or inverted
// range means the glyph has no outline.
func (t *LocaTable) Range(gid GlyphId) (start, end uint32, ok bool) {
	i := int(gid)
	if i+1 >= t.numRanges {
		return 0, 0, false
	}
	start, ok1 := t.offset(i)
	end, ok2 := t.offset(i + 1)
	if !ok1 || !ok2 || start > end {
		return 0, 0, false
	}
	return start, end, true
}
