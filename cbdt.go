package otface

// CbdtTable holds the image bytes for the strikes indexed by CBLC. Only
// the PNG image formats 17, 18 and 19 are supported.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cbdt
type CbdtTable struct {
	data fontBinSegm
	cblc *CblcTable
}

func parseCbdt(b fontBinSegm, cblc *CblcTable) *CbdtTable {
	return &CbdtTable{data: b, cblc: cblc}
}

// GlyphImage returns the embedded PNG of glyph gid from the strike best
// matching pixelsPerEm.
func (t *CbdtTable) GlyphImage(gid GlyphId, pixelsPerEm uint16) (RasterGlyphImage, bool) {
	loc, ok := t.cblc.location(gid, pixelsPerEm)
	if !ok {
		return RasterGlyphImage{}, false
	}
	rec, err := t.data.view(loc.offset, t.data.Size()-loc.offset)
	if err != nil {
		return RasterGlyphImage{}, false
	}
	switch loc.imageFormat {
	case 17: // small glyph metrics, PNG data
		return pngImage(rec, 5, loc.ppem, glyphMetricsAt(rec, 0))
	case 18: // big glyph metrics, PNG data
		return pngImage(rec, 8, loc.ppem, glyphMetricsAt(rec, 0))
	case 19: // metrics come from the index subtable
		if !loc.hasMetrics {
			return RasterGlyphImage{}, false
		}
		m := bitmapMetrics{
			height:   loc.metricsHeight,
			width:    loc.metricsWidth,
			bearingX: loc.metricsX,
			bearingY: loc.metricsY,
		}
		return pngImage(rec, 0, loc.ppem, m)
	}
	return RasterGlyphImage{}, false
}

// bitmapMetrics is the shared prefix of small and big glyph metrics.
type bitmapMetrics struct {
	height   uint8
	width    uint8
	bearingX int8
	bearingY int8
}

func glyphMetricsAt(rec fontBinSegm, pos int) bitmapMetrics {
	m := bitmapMetrics{}
	if rec.Size() >= pos+4 {
		m.height = rec[pos]
		m.width = rec[pos+1]
		m.bearingX = int8(rec[pos+2])
		m.bearingY = int8(rec[pos+3])
	}
	return m
}

// pngImage reads a length-prefixed PNG at metricsSize bytes into rec.
// The y origin is the lower-left corner, so the bearing is shifted down
// by the image height.
func pngImage(rec fontBinSegm, metricsSize int, ppem uint16, m bitmapMetrics) (RasterGlyphImage, bool) {
	dataLen, err := rec.u32(metricsSize)
	if err != nil {
		return RasterGlyphImage{}, false
	}
	data, err := rec.view(metricsSize+4, int(dataLen))
	if err != nil {
		return RasterGlyphImage{}, false
	}
	return RasterGlyphImage{
		X:           int16(m.bearingX),
		Y:           int16(m.bearingY) - int16(m.height),
		Width:       uint16(m.width),
		Height:      uint16(m.height),
		PixelsPerEm: ppem,
		Format:      RasterImagePNG,
		Data:        data,
	}, true
}
