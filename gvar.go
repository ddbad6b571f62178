package otface

// GvarTable is the glyph-variation table of TrueType-flavoured variable
// fonts. Once present, it owns the glyph outline resolution for the face,
// whether or not deltas can actually be applied.
// https://docs.microsoft.com/en-us/typography/opentype/spec/gvar
type GvarTable struct {
	data       fontBinSegm
	axisCount  uint16
	glyphCount uint16
}

func parseGvar(b fontBinSegm) (*GvarTable, error) {
	version, err := b.u32(0)
	if err != nil || version != 0x00010000 {
		return nil, errFontFormat("gvar table version")
	}
	if b.Size() < 20 {
		return nil, errFontFormat("size of gvar table")
	}
	axisCount, _ := b.u16(4)
	glyphCount, _ := b.u16(12)
	if axisCount == 0 || glyphCount == 0 {
		return nil, errFontFormat("gvar table counts")
	}
	return &GvarTable{data: b, axisCount: axisCount, glyphCount: glyphCount}, nil
}

// Outline resolves the outline of glyph gid at the given coordinates.
// At the default position the deltas all cancel and the outline equals
// the static one from glyf. Applying point deltas at non-default
// positions is not implemented; such requests fail, and by the outline
// source precedence that failure is final.
func (t *GvarTable) Outline(glyf *GlyfTable, coords []NormalizedCoordinate, gid GlyphId, builder OutlineBuilder) (Rect, error) {
	for _, c := range coords {
		if c != 0 {
			return Rect{}, errFontFormat("glyph variation deltas not supported")
		}
	}
	return glyf.Outline(gid, builder)
}
