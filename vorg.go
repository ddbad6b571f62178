package otface

import "sort"

// VorgTable is the vertical-origin table of CFF-flavoured fonts. It maps
// glyphs to the y coordinate of their vertical origin, with a default for
// glyphs not listed.
// https://docs.microsoft.com/en-us/typography/opentype/spec/vorg
type VorgTable struct {
	defaultY int16
	metrics  fontBinSegm // (glyph u16, y i16) pairs, sorted by glyph
	count    int
}

func parseVorg(b fontBinSegm) (*VorgTable, error) {
	if b.Size() < 8 {
		return nil, errFontFormat("size of VORG table")
	}
	version, _ := b.u32(0)
	if version != 0x00010000 {
		return nil, errFontFormat("VORG table version")
	}
	t := &VorgTable{}
	t.defaultY, _ = b.i16(4)
	count, _ := b.u16(6)
	metrics, err := b.view(8, int(count)*4)
	if err != nil {
		return nil, errFontFormat("VORG metrics array bounds")
	}
	t.metrics = metrics
	t.count = int(count)
	return t, nil
}

// GlyphYOrigin returns the vertical origin of glyph gid.
func (t *VorgTable) GlyphYOrigin(gid GlyphId) int16 {
	i := sort.Search(t.count, func(i int) bool {
		g, err := t.metrics.u16(i * 4)
		return err != nil || GlyphId(g) >= gid
	})
	if i < t.count {
		if g, err := t.metrics.u16(i * 4); err == nil && GlyphId(g) == gid {
			y, _ := t.metrics.i16(i*4 + 2)
			return y
		}
	}
	return t.defaultY
}
