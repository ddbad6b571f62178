package otface

// GlyfTable holds TrueType glyph outlines. Glyph locations come from the
// loca table; a font carrying glyf without loca is treated as having no
// TrueType outlines at all.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
type GlyfTable struct {
	data fontBinSegm
	loca *LocaTable
}

func parseGlyf(b fontBinSegm, loca *LocaTable) *GlyfTable {
	return &GlyfTable{data: b, loca: loca}
}

// Simple glyph point flags.
const (
	glyfOnCurve = 0x01
	glyfXShort  = 0x02
	glyfYShort  = 0x04
	glyfRepeat  = 0x08
	glyfXSame   = 0x10 // with XShort: x delta is positive
	glyfYSame   = 0x20 // with YShort: y delta is positive
)

// Composite glyph component flags.
const (
	glyfArgsAreWords    = 0x0001
	glyfArgsAreXYValues = 0x0002
	glyfWeHaveAScale    = 0x0008
	glyfMoreComponents  = 0x0020
	glyfXAndYScale      = 0x0040
	glyfTwoByTwo        = 0x0080
)

// Composite glyphs may reference other composites. Deeper nesting than
// this is rejected to bound recursion on malformed fonts.
const maxCompositeDepth = 4

// Outline walks the outline of glyph gid, feeding segments to builder.
// The returned bounding box is computed from the emitted points, not from
// the values stored in the glyph header, which fonts routinely get wrong.
func (t *GlyfTable) Outline(gid GlyphId, builder OutlineBuilder) (Rect, error) {
	gb := &glyfBuilder{out: builder, box: newBBox()}
	if err := t.outlineGlyph(gid, gb, 0); err != nil {
		return Rect{}, err
	}
	r, ok := gb.box.toRect()
	if !ok {
		return Rect{}, errFontFormat("glyph has no outline")
	}
	return r, nil
}

func (t *GlyfTable) outlineGlyph(gid GlyphId, gb *glyfBuilder, depth int) error {
	if depth >= maxCompositeDepth {
		return errFontFormat("composite glyph nested too deeply")
	}
	start, end, ok := t.loca.Range(gid)
	if !ok || start == end {
		return errFontFormat("glyph has no outline")
	}
	data, err := t.data.view(int(start), int(end-start))
	if err != nil {
		return errFontFormat("glyph data out of bounds")
	}
	numContours, err := data.i16(0)
	if err != nil || data.Size() < 10 {
		return errFontFormat("glyph header incomplete")
	}
	switch {
	case numContours > 0:
		return t.simpleOutline(data[10:], int(numContours), gb)
	case numContours < 0:
		return t.compositeOutline(data[10:], gb, depth)
	}
	return errFontFormat("glyph has no outline")
}

type glyfPoint struct {
	x, y    float32
	onCurve bool
}

func (t *GlyfTable) simpleOutline(data fontBinSegm, numContours int, gb *glyfBuilder) error {
	c := glyfCursor{data: data}
	endPts := make([]uint16, numContours)
	for i := range endPts {
		endPts[i] = c.u16()
	}
	numPoints := int(endPts[numContours-1]) + 1
	c.skip(int(c.u16())) // instructions
	// First the flag runs, then all x deltas, then all y deltas.
	flags := make([]uint8, 0, numPoints)
	for len(flags) < numPoints {
		f := c.u8()
		flags = append(flags, f)
		if f&glyfRepeat != 0 {
			n := int(c.u8())
			for ; n > 0 && len(flags) < numPoints; n-- {
				flags = append(flags, f)
			}
		}
	}
	points := make([]glyfPoint, numPoints)
	var x int32
	for i, f := range flags {
		switch {
		case f&glyfXShort != 0:
			d := int32(c.u8())
			if f&glyfXSame == 0 {
				d = -d
			}
			x += d
		case f&glyfXSame == 0:
			x += int32(c.i16())
		}
		points[i].x = float32(x)
		points[i].onCurve = f&glyfOnCurve != 0
	}
	var y int32
	for i, f := range flags {
		switch {
		case f&glyfYShort != 0:
			d := int32(c.u8())
			if f&glyfYSame == 0 {
				d = -d
			}
			y += d
		case f&glyfYSame == 0:
			y += int32(c.i16())
		}
		points[i].y = float32(y)
	}
	if c.err != nil {
		return errFontFormat("simple glyph data incomplete")
	}
	prev := 0
	for _, e := range endPts {
		last := int(e) + 1
		if last <= prev || last > numPoints {
			return errFontFormat("glyph contour endpoints out of order")
		}
		emitContour(points[prev:last], gb)
		prev = last
	}
	return nil
}

// emitContour converts one contour's point list to segments. Off-curve
// points are quadratic control points; two adjacent off-curve points imply
// an on-curve point at their midpoint.
func emitContour(pts []glyfPoint, gb *glyfBuilder) {
	var first glyfPoint
	switch {
	case pts[0].onCurve:
		first = pts[0]
		pts = pts[1:]
	case pts[len(pts)-1].onCurve:
		first = pts[len(pts)-1]
		pts = pts[:len(pts)-1]
	default:
		first = midpoint(pts[0], pts[len(pts)-1])
	}
	gb.moveTo(first.x, first.y)
	var ctrl glyfPoint
	haveCtrl := false
	for _, p := range pts {
		if p.onCurve {
			if haveCtrl {
				gb.quadTo(ctrl.x, ctrl.y, p.x, p.y)
				haveCtrl = false
			} else {
				gb.lineTo(p.x, p.y)
			}
		} else {
			if haveCtrl {
				mid := midpoint(ctrl, p)
				gb.quadTo(ctrl.x, ctrl.y, mid.x, mid.y)
			}
			ctrl = p
			haveCtrl = true
		}
	}
	if haveCtrl {
		gb.quadTo(ctrl.x, ctrl.y, first.x, first.y)
	}
	gb.close()
}

func midpoint(a, b glyfPoint) glyfPoint {
	return glyfPoint{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2, onCurve: true}
}

func (t *GlyfTable) compositeOutline(data fontBinSegm, gb *glyfBuilder, depth int) error {
	c := glyfCursor{data: data}
	for {
		flags := c.u16()
		component := GlyphId(c.u16())
		ts := identityTransform()
		if flags&glyfArgsAreXYValues != 0 {
			if flags&glyfArgsAreWords != 0 {
				ts.e = float32(c.i16())
				ts.f = float32(c.i16())
			} else {
				ts.e = float32(int8(c.u8()))
				ts.f = float32(int8(c.u8()))
			}
		} else {
			// Point-matching positioning; the arguments are point
			// indices, which we skip, leaving the component unshifted.
			if flags&glyfArgsAreWords != 0 {
				c.skip(4)
			} else {
				c.skip(2)
			}
		}
		switch {
		case flags&glyfWeHaveAScale != 0:
			ts.a = c.f2dot14()
			ts.d = ts.a
		case flags&glyfXAndYScale != 0:
			ts.a = c.f2dot14()
			ts.d = c.f2dot14()
		case flags&glyfTwoByTwo != 0:
			ts.a = c.f2dot14()
			ts.b = c.f2dot14()
			ts.c = c.f2dot14()
			ts.d = c.f2dot14()
		}
		if c.err != nil {
			return errFontFormat("composite glyph data incomplete")
		}
		outer, outerHas := gb.trans, gb.hasTrans
		if outerHas {
			gb.trans = combineTransforms(outer, ts)
		} else {
			gb.trans = ts
		}
		gb.hasTrans = true
		err := t.outlineGlyph(component, gb, depth+1)
		gb.trans, gb.hasTrans = outer, outerHas
		if err != nil {
			return err
		}
		if flags&glyfMoreComponents == 0 {
			return nil
		}
	}
}

// transform is an affine 2D transform applied to composite components.
type transform struct {
	a, b, c, d, e, f float32
}

func identityTransform() transform {
	return transform{a: 1, d: 1}
}

func (ts transform) apply(x, y float32) (float32, float32) {
	return ts.a*x + ts.c*y + ts.e, ts.b*x + ts.d*y + ts.f
}

func combineTransforms(outer, inner transform) transform {
	return transform{
		a: outer.a*inner.a + outer.c*inner.b,
		b: outer.b*inner.a + outer.d*inner.b,
		c: outer.a*inner.c + outer.c*inner.d,
		d: outer.b*inner.c + outer.d*inner.d,
		e: outer.a*inner.e + outer.c*inner.f + outer.e,
		f: outer.b*inner.e + outer.d*inner.f + outer.f,
	}
}

// glyfBuilder routes segments through the active component transform to
// the caller's builder while accumulating the tight bounding box.
type glyfBuilder struct {
	out      OutlineBuilder
	trans    transform
	hasTrans bool
	box      bbox
}

func (gb *glyfBuilder) point(x, y float32) (float32, float32) {
	if gb.hasTrans {
		x, y = gb.trans.apply(x, y)
	}
	gb.box.extendBy(x, y)
	return x, y
}

func (gb *glyfBuilder) moveTo(x, y float32) {
	x, y = gb.point(x, y)
	gb.out.MoveTo(x, y)
}

func (gb *glyfBuilder) lineTo(x, y float32) {
	x, y = gb.point(x, y)
	gb.out.LineTo(x, y)
}

func (gb *glyfBuilder) quadTo(x1, y1, x, y float32) {
	x1, y1 = gb.point(x1, y1)
	x, y = gb.point(x, y)
	gb.out.QuadTo(x1, y1, x, y)
}

func (gb *glyfBuilder) close() {
	gb.out.Close()
}

// glyfCursor is a sequential reader over glyph data. The first failed
// read makes it sticky; callers check err once after a run of reads.
type glyfCursor struct {
	data fontBinSegm
	pos  int
	err  error
}

func (c *glyfCursor) u8() uint8 {
	if c.err != nil {
		return 0
	}
	n, err := c.data.u8(c.pos)
	if err != nil {
		c.err = err
		return 0
	}
	c.pos++
	return n
}

func (c *glyfCursor) u16() uint16 {
	if c.err != nil {
		return 0
	}
	n, err := c.data.u16(c.pos)
	if err != nil {
		c.err = err
		return 0
	}
	c.pos += 2
	return n
}

func (c *glyfCursor) i16() int16 {
	return int16(c.u16())
}

func (c *glyfCursor) f2dot14() float32 {
	return float32(c.i16()) / 16384
}

func (c *glyfCursor) skip(n int) {
	if c.err != nil {
		return
	}
	if c.pos+n > c.data.Size() {
		c.err = errBufferBounds
		return
	}
	c.pos += n
}
