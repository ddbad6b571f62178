package otface

// HeadTable is the font header table. It gives global information about
// the font face.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type HeadTable struct {
	UnitsPerEm            uint16
	GlobalBBox            Rect
	IndexToLocationFormat uint16
}

const headMagic = 0x5F0F3CF5 // magicNumber field, fixed by the spec

// parseHead parses the head table. Units per em outside 16..16384 and a
// wrong magic number are rejected.
func parseHead(b fontBinSegm) (HeadTable, error) {
	if b.Size() < 54 {
		return HeadTable{}, errFontFormat("size of head table")
	}
	if magic, _ := b.u32(12); magic != headMagic {
		return HeadTable{}, errFontFormat("head table magic number")
	}
	t := HeadTable{}
	t.UnitsPerEm, _ = b.u16(18)
	if t.UnitsPerEm < 16 || t.UnitsPerEm > 16384 {
		return HeadTable{}, errFontFormat("units per em out of range")
	}
	t.GlobalBBox.XMin, _ = b.i16(36)
	t.GlobalBBox.YMin, _ = b.i16(38)
	t.GlobalBBox.XMax, _ = b.i16(40)
	t.GlobalBBox.YMax, _ = b.i16(42)
	// IndexToLocationFormat is needed to interpret the loca table:
	// 0 for short offsets, 1 for long.
	t.IndexToLocationFormat, _ = b.u16(50)
	if t.IndexToLocationFormat > 1 {
		return HeadTable{}, errFontFormat("head index-to-location format")
	}
	return t, nil
}
