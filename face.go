package otface

import (
	"github.com/npillmayer/otface/core"
)

// Face is a single font face, parsed from an in-memory font file. It
// borrows the input buffer; see the package documentation for the
// lifetime contract.
//
// All metric queries resolve through the same table precedence, so two
// faces built from the same bytes always answer identically. The only
// mutable state is the variation coordinate vector.
type Face struct {
	raw    RawFace
	tables FaceTables
	cfg    Config
	coords varCoords
}

// Parse parses face number index out of a font file. For plain (non
// collection) fonts only index 0 is valid.
func Parse(data []byte, index int) (*Face, error) {
	return ParseWithConfig(data, index, DefaultConfig())
}

// ParseWithConfig parses a face, interpreting only the table families
// enabled in cfg.
func ParseWithConfig(data []byte, index int, cfg Config) (*Face, error) {
	rf, err := parseRawFace(data, index)
	if err != nil {
		return nil, err
	}
	tables, err := assembleTables(classifyTables(rf, cfg))
	if err != nil {
		return nil, err
	}
	f := &Face{raw: rf, tables: tables, cfg: cfg}
	if tables.Fvar != nil {
		n := tables.Fvar.NumAxes()
		if n > maxVarCoords {
			n = maxVarCoords
		}
		f.coords.length = n
	}
	trace().Debugf("parsed font face with %d tables, %d glyphs", rf.NumTables(),
		tables.Maxp.NumGlyphs)
	return f, nil
}

// RawFace returns the face's table directory, for access to tables this
// package does not interpret.
func (f *Face) RawFace() RawFace {
	return f.raw
}

// Tables returns the face's typed tables.
func (f *Face) Tables() FaceTables {
	return f.tables
}

// NumberOfGlyphs returns the glyph count, which is always positive.
func (f *Face) NumberOfGlyphs() uint16 {
	return f.tables.Maxp.NumGlyphs
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Face) UnitsPerEm() uint16 {
	return f.tables.Head.UnitsPerEm
}

// Names returns the face's naming table, or nil.
func (f *Face) Names() *NameTable {
	return f.tables.Name
}

// --- Global metrics --------------------------------------------------------

// useTypographicMetrics reports whether the OS/2 table both exists and
// requests its typographic metric set to override hhea.
func (f *Face) useTypographicMetrics() bool {
	return f.tables.Os2 != nil && f.tables.Os2.UseTypographicMetrics()
}

// Ascender resolves the face's ascender. The hhea value is authoritative
// unless OS/2 claims the typographic set; a zero hhea value falls back to
// the OS/2 typographic or, failing that, Windows metrics.
func (f *Face) Ascender() int16 {
	if f.useTypographicMetrics() {
		return f.applyMetricsVariation(f.tables.Os2.TypographicAscender(), tagHorizontalAscender)
	}
	value := f.tables.Hhea.Ascender
	if value == 0 && f.tables.Os2 != nil {
		value = f.tables.Os2.TypographicAscender()
		if value == 0 {
			value = f.applyMetricsVariation(f.tables.Os2.WindowsAscender(), tagHorizontalClipAsc)
		} else {
			value = f.applyMetricsVariation(value, tagHorizontalAscender)
		}
	}
	return value
}

// Descender resolves the face's descender, typically negative. The
// fallback chain mirrors Ascender.
func (f *Face) Descender() int16 {
	if f.useTypographicMetrics() {
		return f.applyMetricsVariation(f.tables.Os2.TypographicDescender(), tagHorizontalDescender)
	}
	value := f.tables.Hhea.Descender
	if value == 0 && f.tables.Os2 != nil {
		value = f.tables.Os2.TypographicDescender()
		if value == 0 {
			value = f.applyMetricsVariation(f.tables.Os2.WindowsDescender(), tagHorizontalClipDesc)
		} else {
			value = f.applyMetricsVariation(value, tagHorizontalDescender)
		}
	}
	return value
}

// LineGap resolves the face's line gap. When an OS/2 table is present,
// an hhea table with a zero ascender or descender is considered broken;
// its line gap is then replaced by the OS/2 typographic one, or
// suppressed entirely. Without OS/2 the hhea value stands as is.
func (f *Face) LineGap() int16 {
	if f.useTypographicMetrics() {
		return f.applyMetricsVariation(f.tables.Os2.TypographicLineGap(), tagHorizontalLineGap)
	}
	value := f.tables.Hhea.LineGap
	if f.tables.Os2 != nil &&
		(f.tables.Hhea.Ascender == 0 || f.tables.Hhea.Descender == 0) {
		if f.tables.Os2.TypographicAscender() != 0 || f.tables.Os2.TypographicDescender() != 0 {
			value = f.applyMetricsVariation(f.tables.Os2.TypographicLineGap(), tagHorizontalLineGap)
		} else {
			value = 0
		}
	}
	return value
}

// Height returns Ascender minus Descender.
func (f *Face) Height() int16 {
	return f.Ascender() - f.Descender()
}

// TypographicAscender returns the OS/2 typographic ascender, regardless
// of the USE_TYPO_METRICS flag.
func (f *Face) TypographicAscender() (int16, bool) {
	if f.tables.Os2 == nil {
		return 0, false
	}
	return f.applyMetricsVariation(f.tables.Os2.TypographicAscender(), tagHorizontalAscender), true
}

// TypographicDescender returns the OS/2 typographic descender.
func (f *Face) TypographicDescender() (int16, bool) {
	if f.tables.Os2 == nil {
		return 0, false
	}
	return f.applyMetricsVariation(f.tables.Os2.TypographicDescender(), tagHorizontalDescender), true
}

// TypographicLineGap returns the OS/2 typographic line gap.
func (f *Face) TypographicLineGap() (int16, bool) {
	if f.tables.Os2 == nil {
		return 0, false
	}
	return f.applyMetricsVariation(f.tables.Os2.TypographicLineGap(), tagHorizontalLineGap), true
}

// VerticalAscender returns the vhea ascender.
func (f *Face) VerticalAscender() (int16, bool) {
	if f.tables.Vhea == nil {
		return 0, false
	}
	return f.applyMetricsVariation(f.tables.Vhea.Ascender, tagVerticalAscender), true
}

// VerticalDescender returns the vhea descender.
func (f *Face) VerticalDescender() (int16, bool) {
	if f.tables.Vhea == nil {
		return 0, false
	}
	return f.applyMetricsVariation(f.tables.Vhea.Descender, tagVerticalDescender), true
}

// VerticalLineGap returns the vhea line gap.
func (f *Face) VerticalLineGap() (int16, bool) {
	if f.tables.Vhea == nil {
		return 0, false
	}
	return f.applyMetricsVariation(f.tables.Vhea.LineGap, tagVerticalLineGap), true
}

// VerticalHeight returns VerticalAscender minus VerticalDescender.
func (f *Face) VerticalHeight() (int16, bool) {
	asc, ok1 := f.VerticalAscender()
	desc, ok2 := f.VerticalDescender()
	if !ok1 || !ok2 {
		return 0, false
	}
	return asc - desc, true
}

// XHeight returns the height of lowercase letters, from OS/2 version 2+.
func (f *Face) XHeight() (int16, bool) {
	if f.tables.Os2 == nil {
		return 0, false
	}
	v, ok := f.tables.Os2.XHeight()
	if !ok {
		return 0, false
	}
	return f.applyMetricsVariation(v, tagXHeight), true
}

// CapitalHeight returns the height of capital letters, from OS/2
// version 2+.
func (f *Face) CapitalHeight() (int16, bool) {
	if f.tables.Os2 == nil {
		return 0, false
	}
	v, ok := f.tables.Os2.CapitalHeight()
	if !ok {
		return 0, false
	}
	return f.applyMetricsVariation(v, tagCapHeight), true
}

// UnderlineMetrics returns the underline decoration line from post.
func (f *Face) UnderlineMetrics() (LineMetrics, bool) {
	if f.tables.Post == nil {
		return LineMetrics{}, false
	}
	m := f.tables.Post.UnderlineMetrics()
	m.Position = f.applyMetricsVariation(m.Position, tagUnderlineOffset)
	m.Thickness = f.applyMetricsVariation(m.Thickness, tagUnderlineSize)
	return m, true
}

// StrikeoutMetrics returns the strikeout decoration line from OS/2.
func (f *Face) StrikeoutMetrics() (LineMetrics, bool) {
	if f.tables.Os2 == nil {
		return LineMetrics{}, false
	}
	m := f.tables.Os2.StrikeoutMetrics()
	m.Position = f.applyMetricsVariation(m.Position, tagStrikeoutOffset)
	m.Thickness = f.applyMetricsVariation(m.Thickness, tagStrikeoutSize)
	return m, true
}

// ItalicAngle returns the caret slant from post.
func (f *Face) ItalicAngle() (float32, bool) {
	if f.tables.Post == nil {
		return 0, false
	}
	return f.tables.Post.ItalicAngle(), true
}

// Weight returns the face's weight class, WeightNormal without OS/2.
func (f *Face) Weight() Weight {
	if f.tables.Os2 == nil {
		return WeightNormal
	}
	return f.tables.Os2.Weight()
}

// Width returns the face's width class, WidthNormal without OS/2.
func (f *Face) Width() Width {
	if f.tables.Os2 == nil {
		return WidthNormal
	}
	return f.tables.Os2.Width()
}

// Style returns the face's style classification.
func (f *Face) Style() Style {
	if f.tables.Os2 == nil {
		return StyleNormal
	}
	return f.tables.Os2.Style()
}

// IsItalic reports StyleItalic. Oblique faces are not italic.
func (f *Face) IsItalic() bool {
	return f.Style() == StyleItalic
}

// IsOblique reports StyleOblique.
func (f *Face) IsOblique() bool {
	return f.Style() == StyleOblique
}

// IsBold checks the OS/2 bold flag.
func (f *Face) IsBold() bool {
	return f.tables.Os2 != nil && f.tables.Os2.IsBold()
}

// IsRegular checks the OS/2 regular flag.
func (f *Face) IsRegular() bool {
	return f.tables.Os2 != nil && f.tables.Os2.IsRegular()
}

// GlobalBoundingBox returns the union of all glyph bounding boxes, as
// declared by head.
func (f *Face) GlobalBoundingBox() Rect {
	return f.tables.Head.GlobalBBox
}

// --- Glyph queries ---------------------------------------------------------

// GlyphIndex maps a code-point to a glyph via cmap.
func (f *Face) GlyphIndex(codepoint rune) (GlyphId, bool) {
	if f.tables.Cmap == nil {
		return 0, false
	}
	return f.tables.Cmap.GlyphIndex(codepoint)
}

// GlyphName returns the PostScript glyph name from post.
func (f *Face) GlyphName(gid GlyphId) (string, bool) {
	if !f.cfg.GlyphNames || f.tables.Post == nil {
		return "", false
	}
	return f.tables.Post.GlyphName(gid)
}

// GlyphIndexByName finds the glyph with the given PostScript name.
func (f *Face) GlyphIndexByName(name string) (GlyphId, bool) {
	if !f.cfg.GlyphNames || f.tables.Post == nil {
		return 0, false
	}
	return f.tables.Post.GlyphIndexByName(name)
}

// GlyphHorAdvance returns the horizontal advance of a glyph in font
// units, including the HVAR delta of a variable face.
func (f *Face) GlyphHorAdvance(gid GlyphId) (uint16, bool) {
	if f.tables.Hmtx == nil {
		return 0, false
	}
	base, ok := f.tables.Hmtx.Advance(gid)
	if !ok {
		return 0, false
	}
	advance := float32(base)
	if f.IsVariable() && f.tables.Hvar != nil {
		if offset, ok := f.tables.Hvar.AdvanceOffset(gid, f.coords.coords()); ok {
			// Deltas are fractional; round before narrowing.
			advance += offset + 0.5
		}
	}
	return u16FromF32(advance)
}

// GlyphHorSideBearing returns the left side bearing of a glyph.
func (f *Face) GlyphHorSideBearing(gid GlyphId) (int16, bool) {
	if f.tables.Hmtx == nil {
		return 0, false
	}
	base, ok := f.tables.Hmtx.SideBearing(gid)
	if !ok {
		return 0, false
	}
	bearing := float32(base)
	if f.IsVariable() && f.tables.Hvar != nil {
		if offset, ok := f.tables.Hvar.SideBearingOffset(gid, f.coords.coords()); ok {
			bearing += offset + 0.5
		}
	}
	return i16FromF32(bearing)
}

// GlyphVerAdvance returns the vertical advance of a glyph.
func (f *Face) GlyphVerAdvance(gid GlyphId) (uint16, bool) {
	if f.tables.Vmtx == nil {
		return 0, false
	}
	base, ok := f.tables.Vmtx.Advance(gid)
	if !ok {
		return 0, false
	}
	advance := float32(base)
	if f.IsVariable() && f.tables.Vvar != nil {
		if offset, ok := f.tables.Vvar.AdvanceOffset(gid, f.coords.coords()); ok {
			advance += offset + 0.5
		}
	}
	return u16FromF32(advance)
}

// GlyphVerSideBearing returns the top side bearing of a glyph.
func (f *Face) GlyphVerSideBearing(gid GlyphId) (int16, bool) {
	if f.tables.Vmtx == nil {
		return 0, false
	}
	base, ok := f.tables.Vmtx.SideBearing(gid)
	if !ok {
		return 0, false
	}
	bearing := float32(base)
	if f.IsVariable() && f.tables.Vvar != nil {
		if offset, ok := f.tables.Vvar.SideBearingOffset(gid, f.coords.coords()); ok {
			bearing += offset + 0.5
		}
	}
	return i16FromF32(bearing)
}

// GlyphYOrigin returns the vertical origin from VORG.
func (f *Face) GlyphYOrigin(gid GlyphId) (int16, bool) {
	if f.tables.Vorg == nil {
		return 0, false
	}
	return f.tables.Vorg.GlyphYOrigin(gid), true
}

// OutlineGlyph feeds the outline of glyph gid into builder and returns
// its tight bounding box.
//
// Outline sources are consulted in a strict precedence: gvar (when glyf
// is present too), glyf, CFF, CFF2. The first source present decides the
// outcome; a failure there is never papered over by a later source, so
// that a face cannot silently mix outlines of different flavors.
func (f *Face) OutlineGlyph(gid GlyphId, builder OutlineBuilder) (Rect, error) {
	t := f.tables
	switch {
	case t.Gvar != nil:
		// gvar claims the cascade by presence alone; lacking the glyf
		// data it varies, the face produces no outlines at all.
		if t.Glyf == nil {
			return Rect{}, errFontFormat("gvar table without glyf outlines")
		}
		return t.Gvar.Outline(t.Glyf, f.coords.coords(), gid, builder)
	case t.Glyf != nil:
		return t.Glyf.Outline(gid, builder)
	case t.Cff != nil:
		return t.Cff.Outline(gid, builder)
	case t.Cff2 != nil:
		return t.Cff2.Outline(gid, builder)
	}
	return Rect{}, errFontFormat("face has no outline source")
}

// GlyphBoundingBox returns the tight bounding box of a glyph's outline.
func (f *Face) GlyphBoundingBox(gid GlyphId) (Rect, error) {
	return f.OutlineGlyph(gid, discardOutline{})
}

// GlyphRasterImage returns the embedded bitmap of a glyph, picking the
// strike closest to pixelsPerEm. An sbix table owns the answer when
// present; only a face without sbix consults CBDT.
func (f *Face) GlyphRasterImage(gid GlyphId, pixelsPerEm uint16) (RasterGlyphImage, bool) {
	if f.tables.Sbix != nil {
		return f.tables.Sbix.GlyphImage(gid, pixelsPerEm)
	}
	if f.tables.Cbdt != nil {
		return f.tables.Cbdt.GlyphImage(gid, pixelsPerEm)
	}
	return RasterGlyphImage{}, false
}

// GlyphSvgImage returns the SVG document covering a glyph.
func (f *Face) GlyphSvgImage(gid GlyphId) ([]byte, bool) {
	if f.tables.Svg == nil {
		return nil, false
	}
	return f.tables.Svg.GlyphDocument(gid)
}

// --- Variations ------------------------------------------------------------

// IsVariable reports whether the face carries variation axes.
func (f *Face) IsVariable() bool {
	return f.tables.Fvar != nil
}

// VariationAxes returns the face's variation axes in table order.
func (f *Face) VariationAxes() []VariationAxis {
	if f.tables.Fvar == nil {
		return nil
	}
	axes := make([]VariationAxis, 0, f.tables.Fvar.NumAxes())
	for i := 0; i < f.tables.Fvar.NumAxes(); i++ {
		if a, ok := f.tables.Fvar.Axis(i); ok {
			axes = append(axes, a)
		}
	}
	return axes
}

// SetVariation moves the face along a variation axis. The user-space
// value is clamped to the axis range, normalized, and run through avar.
func (f *Face) SetVariation(axis Tag, value float32) error {
	if !f.IsVariable() {
		return core.Error(core.EMISSING, "face is not a variable font")
	}
	i, a, ok := f.tables.Fvar.AxisIndex(axis)
	if !ok {
		return core.Error(core.EMISSING, "face has no variation axis %s", axis)
	}
	if i >= maxVarCoords {
		return core.Error(core.EINVALID, "axis %s beyond the supported %d coordinates",
			axis, maxVarCoords)
	}
	f.coords.data[i] = normCoordFromF32(a.normalizedValue(value))
	if f.tables.Avar != nil {
		f.tables.Avar.mapCoordinates(f.coords.coords())
	}
	return nil
}

// VariationCoordinates returns the current normalized coordinates, one
// per axis. The slice aliases the face's state; do not hold on to it
// across SetVariation calls.
func (f *Face) VariationCoordinates() []NormalizedCoordinate {
	return f.coords.coords()
}

// HasNonDefaultVariationCoordinates reports whether any coordinate was
// moved off the axis default.
func (f *Face) HasNonDefaultVariationCoordinates() bool {
	return !f.coords.isDefault()
}

// metricsVarOffset returns the MVAR delta for a metric value tag, zero
// when no delta applies.
func (f *Face) metricsVarOffset(valueTag Tag) float32 {
	if f.tables.Mvar == nil {
		return 0
	}
	if d, ok := f.tables.Mvar.MetricOffset(valueTag, f.coords.coords()); ok {
		return d
	}
	return 0
}

// applyMetricsVariation adjusts a global metric by its MVAR delta. A
// delta that would overflow int16 leaves the metric unadjusted.
func (f *Face) applyMetricsVariation(value int16, valueTag Tag) int16 {
	if !f.IsVariable() {
		return value
	}
	if v, ok := i16FromF32(float32(value) + f.metricsVarOffset(valueTag)); ok {
		return v
	}
	return value
}
