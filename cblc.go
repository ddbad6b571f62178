package otface

// CblcTable is the color-bitmap locator table. It only holds strike
// records and index subtables; the image bytes live in the companion
// CBDT table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cblc
type CblcTable struct {
	data     fontBinSegm
	numSizes int
}

const bitmapSizeRecordSize = 48

func parseCblc(b fontBinSegm) (*CblcTable, error) {
	numSizes, err := b.u32(4)
	if err != nil {
		return nil, errFontFormat("size of CBLC table")
	}
	if _, err := b.view(8, int(numSizes)*bitmapSizeRecordSize); err != nil {
		return nil, errFontFormat("CBLC size records bounds")
	}
	return &CblcTable{data: b, numSizes: int(numSizes)}, nil
}

// bitmapLocation points at one glyph's image data inside CBDT. Index
// subtable format 2 carries glyph metrics here, which image format 19
// relies on.
type bitmapLocation struct {
	imageFormat   uint16
	offset        int
	ppem          uint16
	metricsX      int8
	metricsY      int8
	metricsWidth  uint8
	metricsHeight uint8
	hasMetrics    bool
}

type bitmapSize struct {
	arrayOffset  uint32
	numSubTables uint32
	firstGlyph   uint16
	lastGlyph    uint16
	ppem         uint16
}

func (t *CblcTable) sizeRecord(i int) (bitmapSize, bool) {
	rec, err := t.data.view(8+i*bitmapSizeRecordSize, bitmapSizeRecordSize)
	if err != nil {
		return bitmapSize{}, false
	}
	s := bitmapSize{}
	s.arrayOffset, _ = rec.u32(0)
	s.numSubTables, _ = rec.u32(8)
	s.firstGlyph, _ = rec.u16(40)
	s.lastGlyph, _ = rec.u16(42)
	ppemY, _ := rec.u8(45)
	s.ppem = uint16(ppemY)
	return s, true
}

// location finds glyph gid in the strike best matching pixelsPerEm.
func (t *CblcTable) location(gid GlyphId, pixelsPerEm uint16) (bitmapLocation, bool) {
	chosen := bitmapSize{}
	found := false
	for i := 0; i < t.numSizes; i++ {
		s, ok := t.sizeRecord(i)
		if !ok || uint16(gid) < s.firstGlyph || uint16(gid) > s.lastGlyph {
			continue
		}
		if !found || betterStrikePpem(s.ppem, chosen.ppem, pixelsPerEm) {
			chosen = s
			found = true
		}
	}
	if !found {
		return bitmapLocation{}, false
	}
	return t.subTableLocation(chosen, gid)
}

func (t *CblcTable) subTableLocation(size bitmapSize, gid GlyphId) (bitmapLocation, bool) {
	// The index subtable array narrows the strike's glyph range further.
	for i := 0; i < int(size.numSubTables); i++ {
		rec, err := t.data.view(int(size.arrayOffset)+i*8, 8)
		if err != nil {
			return bitmapLocation{}, false
		}
		first, _ := rec.u16(0)
		last, _ := rec.u16(2)
		if uint16(gid) < first || uint16(gid) > last {
			continue
		}
		additional, _ := rec.u32(4)
		sub, err := t.data.view(int(size.arrayOffset)+int(additional), t.data.Size()-int(size.arrayOffset)-int(additional))
		if err != nil {
			return bitmapLocation{}, false
		}
		return glyphLocation(sub, GlyphId(first), gid, size.ppem)
	}
	return bitmapLocation{}, false
}

func glyphLocation(sub fontBinSegm, first, gid GlyphId, ppem uint16) (bitmapLocation, bool) {
	indexFormat, err1 := sub.u16(0)
	imageFormat, err2 := sub.u16(2)
	imageDataOffset, err3 := sub.u32(4)
	if err1 != nil || err2 != nil || err3 != nil {
		return bitmapLocation{}, false
	}
	loc := bitmapLocation{imageFormat: imageFormat, ppem: ppem}
	rel := int(gid) - int(first)
	switch indexFormat {
	case 1: // 32-bit offsets per glyph
		start, err1 := sub.u32(8 + rel*4)
		end, err2 := sub.u32(8 + rel*4 + 4)
		if err1 != nil || err2 != nil || start == end {
			return bitmapLocation{}, false
		}
		loc.offset = int(imageDataOffset) + int(start)
	case 2: // constant image size, metrics shared by all glyphs
		imageSize, err := sub.u32(8)
		if err != nil {
			return bitmapLocation{}, false
		}
		metrics, err := sub.view(12, 4)
		if err != nil {
			return bitmapLocation{}, false
		}
		loc.metricsHeight = metrics[0]
		loc.metricsWidth = metrics[1]
		loc.metricsX = int8(metrics[2])
		loc.metricsY = int8(metrics[3])
		loc.hasMetrics = true
		loc.offset = int(imageDataOffset) + rel*int(imageSize)
	case 3: // 16-bit offsets per glyph
		start, err1 := sub.u16(8 + rel*2)
		end, err2 := sub.u16(8 + rel*2 + 2)
		if err1 != nil || err2 != nil || start == end {
			return bitmapLocation{}, false
		}
		loc.offset = int(imageDataOffset) + int(start)
	default:
		return bitmapLocation{}, false
	}
	return loc, true
}
