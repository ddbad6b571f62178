package otface

// GlyphId is a glyph index in a font.
//
// https://www.microsoft.com/typography/OTSPEC/cmap.htm says that "Character
// codes that do not correspond to any glyph in the font should be mapped to
// glyph index 0. The glyph at this location must be a special glyph
// representing a missing character, commonly known as .notdef."
type GlyphId uint16

// Rect is a rectangle in font units.
//
// A font may legitimately declare XMin > XMax and/or YMin > YMax; values
// are reported as stored, never normalized.
type Rect struct {
	XMin int16
	YMin int16
	XMax int16
	YMax int16
}

// Width returns the rect's width.
func (r Rect) Width() int16 {
	return r.XMax - r.XMin
}

// Height returns the rect's height.
func (r Rect) Height() int16 {
	return r.YMax - r.YMin
}

// LineMetrics describes a decoration line, used for underline and strikeout.
type LineMetrics struct {
	Position  int16
	Thickness int16
}

// OutlineBuilder receives the segments of a glyph outline.
//
// Since this is a pull parser, segments may be emitted even when an outline
// turns out to be partially malformed; check the result of OutlineGlyph
// before using the builder's output.
type OutlineBuilder interface {
	// MoveTo starts a contour.
	MoveTo(x, y float32)
	// LineTo appends a line segment.
	LineTo(x, y float32)
	// QuadTo appends a quadratic bézier segment.
	QuadTo(x1, y1, x, y float32)
	// CurveTo appends a cubic bézier segment.
	CurveTo(x1, y1, x2, y2, x, y float32)
	// Close ends a contour.
	Close()
}

// discardOutline drops all segments; used when only the bounding box of an
// outline is of interest.
type discardOutline struct{}

func (discardOutline) MoveTo(x, y float32)                  {}
func (discardOutline) LineTo(x, y float32)                  {}
func (discardOutline) QuadTo(x1, y1, x, y float32)          {}
func (discardOutline) CurveTo(x1, y1, x2, y2, x, y float32) {}
func (discardOutline) Close()                               {}

// RasterImageFormat is the encoding of an embedded glyph image.
type RasterImageFormat int

// Only PNG images are supported.
const (
	RasterImagePNG RasterImageFormat = iota
)

// RasterGlyphImage is a glyph's embedded raster image. Metrics are in
// pixels, not font units. The image data is returned encoded; decoding is
// up to the caller.
type RasterGlyphImage struct {
	X           int16
	Y           int16
	Width       uint16
	Height      uint16
	PixelsPerEm uint16
	Format      RasterImageFormat
	Data        []byte
}

// bbox accumulates the tight bounding box of emitted outline points.
type bbox struct {
	xMin, yMin float32
	xMax, yMax float32
	dirty      bool
}

func newBBox() bbox {
	return bbox{
		xMin: 3.4e38, yMin: 3.4e38,
		xMax: -3.4e38, yMax: -3.4e38,
	}
}

func (b *bbox) extendBy(x, y float32) {
	b.dirty = true
	if x < b.xMin {
		b.xMin = x
	}
	if y < b.yMin {
		b.yMin = y
	}
	if x > b.xMax {
		b.xMax = x
	}
	if y > b.yMax {
		b.yMax = y
	}
}

func (b *bbox) toRect() (Rect, bool) {
	if !b.dirty {
		return Rect{}, false
	}
	xMin, ok1 := i16FromF32(b.xMin)
	yMin, ok2 := i16FromF32(b.yMin)
	xMax, ok3 := i16FromF32(b.xMax)
	yMax, ok4 := i16FromF32(b.yMax)
	if !(ok1 && ok2 && ok3 && ok4) {
		return Rect{}, false
	}
	return Rect{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}, true
}
