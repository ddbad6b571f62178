package otface

// MaxpTable is the maximum-profile table. Only the glyph count is
// interpreted; a valid table never declares zero glyphs.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
type MaxpTable struct {
	NumGlyphs uint16
}

// parseMaxp parses the maxp table. Fonts with CFF data use version 0.5,
// fonts with TrueType outlines version 1.0; both carry numGlyphs at the
// same offset.
func parseMaxp(b fontBinSegm) (MaxpTable, error) {
	if b.Size() < 6 {
		return MaxpTable{}, errFontFormat("size of maxp table")
	}
	version, _ := b.u32(0)
	if version != 0x00005000 && version != 0x00010000 {
		return MaxpTable{}, errFontFormat("maxp table version")
	}
	n, _ := b.u16(4)
	if n == 0 {
		return MaxpTable{}, errFontFormat("maxp declares zero glyphs")
	}
	return MaxpTable{NumGlyphs: n}, nil
}
