package otface

// SbixTable holds Apple-style bitmap strikes, one per pixels-per-em size.
// Only PNG glyph data is supported; Apple's 'jpg '/'tiff' types and glyph
// duplication records are skipped.
// https://docs.microsoft.com/en-us/typography/opentype/spec/sbix
type SbixTable struct {
	data      fontBinSegm
	strikes   []sbixStrike
	numGlyphs uint16
}

type sbixStrike struct {
	ppem    uint16
	offsets fontBinSegm // numGlyphs+1 offsets into the strike
	data    fontBinSegm // the strike, offsets are relative to it
}

var graphicTypePNG = T("png ")

func parseSbix(b fontBinSegm, numGlyphs uint16) (*SbixTable, error) {
	numStrikes, err := b.u32(4)
	if err != nil {
		return nil, errFontFormat("size of sbix table")
	}
	t := &SbixTable{data: b, numGlyphs: numGlyphs}
	for i := 0; i < int(numStrikes); i++ {
		strikeOffset, err := b.u32(8 + i*4)
		if err != nil {
			return nil, errFontFormat("sbix strike offsets incomplete")
		}
		strike, err := b.view(int(strikeOffset), b.Size()-int(strikeOffset))
		if err != nil {
			continue
		}
		ppem, err := strike.u16(0)
		if err != nil {
			continue
		}
		offsets, err := strike.view(4, (int(numGlyphs)+1)*4)
		if err != nil {
			continue
		}
		t.strikes = append(t.strikes, sbixStrike{ppem: ppem, offsets: offsets, data: strike})
	}
	if len(t.strikes) == 0 {
		return nil, errFontFormat("sbix without strikes")
	}
	return t, nil
}

// bestStrike picks the strike for a requested size: the smallest strike
// at least as large as the request, or the largest one overall.
func (t *SbixTable) bestStrike(pixelsPerEm uint16) sbixStrike {
	best := t.strikes[0]
	for _, s := range t.strikes[1:] {
		if betterStrikePpem(s.ppem, best.ppem, pixelsPerEm) {
			best = s
		}
	}
	return best
}

func betterStrikePpem(candidate, current, requested uint16) bool {
	if current < requested {
		return candidate > current
	}
	return candidate >= requested && candidate < current
}

// GlyphImage returns the embedded PNG of glyph gid from the best-matching
// strike. The strike's answer is final: a glyph missing from it is not
// looked up in other strikes.
func (t *SbixTable) GlyphImage(gid GlyphId, pixelsPerEm uint16) (RasterGlyphImage, bool) {
	if uint16(gid) >= t.numGlyphs {
		return RasterGlyphImage{}, false
	}
	strike := t.bestStrike(pixelsPerEm)
	start, err1 := strike.offsets.u32(int(gid) * 4)
	end, err2 := strike.offsets.u32(int(gid)*4 + 4)
	if err1 != nil || err2 != nil || start >= end {
		return RasterGlyphImage{}, false
	}
	rec, err := strike.data.view(int(start), int(end-start))
	if err != nil || rec.Size() < 8 {
		return RasterGlyphImage{}, false
	}
	if tag(rec[4:]) != graphicTypePNG {
		return RasterGlyphImage{}, false
	}
	png := rec[8:]
	width, height, ok := pngDimensions(png)
	if !ok {
		return RasterGlyphImage{}, false
	}
	img := RasterGlyphImage{
		Width:       width,
		Height:      height,
		PixelsPerEm: strike.ppem,
		Format:      RasterImagePNG,
		Data:        png,
	}
	img.X, _ = rec.i16(0)
	img.Y, _ = rec.i16(2)
	return img, true
}

// pngDimensions reads width and height from a PNG stream's IHDR chunk,
// which the format pins to the start of the file.
func pngDimensions(png fontBinSegm) (width, height uint16, ok bool) {
	w, err1 := png.u32(16)
	h, err2 := png.u32(20)
	if err1 != nil || err2 != nil || w > 0xFFFF || h > 0xFFFF {
		return 0, 0, false
	}
	return uint16(w), uint16(h), true
}
