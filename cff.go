package otface

// CffTable marks the presence of PostScript (CFF or CFF2) outline data.
// Charstring interpretation is left to rasterization layers; the table
// only takes part in the outline-source precedence order and keeps the
// raw data accessible.
type CffTable struct {
	data fontBinSegm
}

// parseCff checks the CFF header. The embedded font set of an OpenType
// font always has major version 1.
func parseCff(b fontBinSegm) (*CffTable, error) {
	major, err := b.u8(0)
	if err != nil || major != 1 {
		return nil, errFontFormat("CFF header")
	}
	return &CffTable{data: b}, nil
}

// parseCff2 checks the CFF2 header (major version 2).
func parseCff2(b fontBinSegm) (*CffTable, error) {
	major, err := b.u8(0)
	if err != nil || major != 2 {
		return nil, errFontFormat("CFF2 header")
	}
	return &CffTable{data: b}, nil
}

// Outline is the outline hook of the PostScript tables. Charstring
// interpretation is not implemented, so every glyph reports as having no
// extractable outline. Because of the strict precedence between outline
// sources this failure is final for faces whose first outline source is
// CFF or CFF2.
func (t *CffTable) Outline(gid GlyphId, builder OutlineBuilder) (Rect, error) {
	return Rect{}, errFontFormat("charstring outlines not supported")
}

// Bytes returns the raw table data.
func (t *CffTable) Bytes() []byte {
	return t.data
}
