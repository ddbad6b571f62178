package otface

import "sort"

// CmapTable maps Unicode code-points to glyph IDs. Of the many historic
// subtable formats only 0, 4, 6 and 12 are interpreted; these cover the
// fonts in circulation today.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type CmapTable struct {
	data      fontBinSegm
	subtables []cmapSubtable
}

type cmapSubtable struct {
	platformID uint16
	encodingID uint16
	data       fontBinSegm
}

// isUnicode reports whether the subtable holds a Unicode encoding.
// Platform 0 is Unicode proper; on the Windows platform (3) encodings
// 0 (symbol), 1 (BMP) and 10 (full repertoire) are Unicode as well.
func (s cmapSubtable) isUnicode() bool {
	if s.platformID == 0 {
		return true
	}
	if s.platformID == 3 {
		return s.encodingID == 0 || s.encodingID == 1 || s.encodingID == 10
	}
	return false
}

func parseCmap(b fontBinSegm) (*CmapTable, error) {
	numTables, err := b.u16(2)
	if err != nil {
		return nil, errFontFormat("size of cmap table")
	}
	t := &CmapTable{data: b}
	for i := 0; i < int(numTables); i++ {
		rec, err := b.view(4+i*8, 8)
		if err != nil {
			return nil, errFontFormat("cmap encoding records incomplete")
		}
		platformID, _ := rec.u16(0)
		encodingID, _ := rec.u16(2)
		offset, _ := rec.u32(4)
		if int(offset) >= b.Size() {
			continue
		}
		t.subtables = append(t.subtables, cmapSubtable{
			platformID: platformID,
			encodingID: encodingID,
			data:       b[offset:],
		})
	}
	if len(t.subtables) == 0 {
		return nil, errFontFormat("cmap without encoding records")
	}
	return t, nil
}

// GlyphIndex looks up the glyph for a code-point, trying each Unicode
// subtable in turn. Glyph 0 (.notdef) counts as a miss.
func (t *CmapTable) GlyphIndex(codepoint rune) (GlyphId, bool) {
	for _, s := range t.subtables {
		if !s.isUnicode() {
			continue
		}
		if gid, ok := s.lookup(uint32(codepoint)); ok && gid != 0 {
			return gid, true
		}
	}
	return 0, false
}

func (s cmapSubtable) lookup(c uint32) (GlyphId, bool) {
	format, err := s.data.u16(0)
	if err != nil {
		return 0, false
	}
	switch format {
	case 0:
		return s.lookupFormat0(c)
	case 4:
		return s.lookupFormat4(c)
	case 6:
		return s.lookupFormat6(c)
	case 12:
		return s.lookupFormat12(c)
	}
	return 0, false
}

// Format 0, a plain byte-indexed table. Only the old Macintosh platform
// uses it.
func (s cmapSubtable) lookupFormat0(c uint32) (GlyphId, bool) {
	if c > 255 {
		return 0, false
	}
	gid, err := s.data.u8(6 + int(c))
	if err != nil {
		return 0, false
	}
	return GlyphId(gid), true
}

// Format 4 covers the BMP with sorted segments of code-point ranges.
func (s cmapSubtable) lookupFormat4(c uint32) (GlyphId, bool) {
	if c > 0xFFFF {
		return 0, false
	}
	segCountX2, err := s.data.u16(6)
	if err != nil || segCountX2 < 2 {
		return 0, false
	}
	segCount := int(segCountX2 / 2)
	endCodes := 14
	startCodes := endCodes + segCount*2 + 2 // +2 for reservedPad
	idDeltas := startCodes + segCount*2
	idRangeOffsets := idDeltas + segCount*2
	// Segments are sorted by end code; find the first segment that could
	// contain c.
	seg := sort.Search(segCount, func(i int) bool {
		end, err := s.data.u16(endCodes + i*2)
		return err != nil || uint32(end) >= c
	})
	if seg == segCount {
		return 0, false
	}
	start, err := s.data.u16(startCodes + seg*2)
	if err != nil || uint32(start) > c {
		return 0, false
	}
	delta, _ := s.data.u16(idDeltas + seg*2)
	rangeOffset, err := s.data.u16(idRangeOffsets + seg*2)
	if err != nil {
		return 0, false
	}
	if rangeOffset == 0 {
		return GlyphId(uint16(c) + delta), true
	}
	// The range offset is relative to its own position in the table.
	pos := idRangeOffsets + seg*2 + int(rangeOffset) + int(c-uint32(start))*2
	gid, err := s.data.u16(pos)
	if err != nil || gid == 0 {
		return 0, false
	}
	return GlyphId(gid + delta), true
}

// Format 6 is a dense table for a single contiguous range.
func (s cmapSubtable) lookupFormat6(c uint32) (GlyphId, bool) {
	first, err1 := s.data.u16(6)
	count, err2 := s.data.u16(8)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	if c < uint32(first) || c >= uint32(first)+uint32(count) {
		return 0, false
	}
	gid, err := s.data.u16(10 + int(c-uint32(first))*2)
	if err != nil {
		return 0, false
	}
	return GlyphId(gid), true
}

// Format 12 holds sorted groups of sequential code-points and covers the
// full Unicode range.
func (s cmapSubtable) lookupFormat12(c uint32) (GlyphId, bool) {
	numGroups, err := s.data.u32(12)
	if err != nil {
		return 0, false
	}
	n := int(numGroups)
	if n < 0 || 16+n*12 > s.data.Size() {
		n = (s.data.Size() - 16) / 12
		if n <= 0 {
			return 0, false
		}
	}
	grp := sort.Search(n, func(i int) bool {
		end, err := s.data.u32(16 + i*12 + 4)
		return err != nil || end >= c
	})
	if grp == n {
		return 0, false
	}
	start, err1 := s.data.u32(16 + grp*12)
	gid, err2 := s.data.u32(16 + grp*12 + 8)
	if err1 != nil || err2 != nil || start > c {
		return 0, false
	}
	return GlyphId(gid + (c - start)), true
}
