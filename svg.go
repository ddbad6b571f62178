package otface

// SvgTable maps glyph ranges to embedded SVG documents. A document may be
// gzip-compressed; the data is handed out as stored.
// https://docs.microsoft.com/en-us/typography/opentype/spec/svg
type SvgTable struct {
	documents fontBinSegm // document list
	count     int
}

func parseSvg(b fontBinSegm) (*SvgTable, error) {
	docListOffset, err := b.u32(2)
	if err != nil {
		return nil, errFontFormat("size of SVG table")
	}
	documents, err := b.view(int(docListOffset), b.Size()-int(docListOffset))
	if err != nil {
		return nil, errFontFormat("SVG document list offset")
	}
	count, err := documents.u16(0)
	if err != nil {
		return nil, errFontFormat("SVG document list header")
	}
	if _, err := documents.view(2, int(count)*12); err != nil {
		return nil, errFontFormat("SVG document records bounds")
	}
	return &SvgTable{documents: documents, count: int(count)}, nil
}

// GlyphDocument returns the SVG document covering glyph gid, if any.
func (t *SvgTable) GlyphDocument(gid GlyphId) ([]byte, bool) {
	for i := 0; i < t.count; i++ {
		rec, err := t.documents.view(2+i*12, 12)
		if err != nil {
			return nil, false
		}
		first, _ := rec.u16(0)
		last, _ := rec.u16(2)
		if uint16(gid) < first || uint16(gid) > last {
			continue
		}
		offset, _ := rec.u32(4)
		length, _ := rec.u32(8)
		doc, err := t.documents.view(int(offset), int(length))
		if err != nil {
			return nil, false
		}
		return doc, true
	}
	return nil, false
}
