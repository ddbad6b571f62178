package otface

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func TestFaceMandatoryTables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(minimalFont(), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.EqualValues(t, 1000, f.UnitsPerEm())
	assert.EqualValues(t, 1, f.NumberOfGlyphs())
	assert.Equal(t, Rect{XMin: -10, YMin: -20, XMax: 1000, YMax: 900}, f.GlobalBoundingBox())
}

func TestFaceMissingMandatoryTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	head := testTable{"head", headData(1000, 0)}
	hhea := testTable{"hhea", hheaData(800, -200, 90, 1)}
	maxp := testTable{"maxp", maxpData(1)}
	cases := []struct {
		tables []testTable
		want   error
	}{
		{[]testTable{hhea, maxp}, ErrNoHeadTable},
		{[]testTable{head, maxp}, ErrNoHheaTable},
		{[]testTable{head, hhea}, ErrNoMaxpTable},
		{[]testTable{{"head", []byte{1, 2, 3}}, hhea, maxp}, ErrNoHeadTable},
	}
	for _, c := range cases {
		if _, err := Parse(buildFont(c.tables...), 0); !errors.Is(err, c.want) {
			t.Errorf("expected %v, got %v", c.want, err)
		}
	}
}

func metricsFont(hhea []byte, os2 *os2Spec) []byte {
	tables := []testTable{
		{"head", headData(1000, 0)},
		{"hhea", hhea},
		{"maxp", maxpData(1)},
	}
	if os2 != nil {
		tables = append(tables, testTable{"OS/2", os2Data(*os2)})
	}
	return buildFont(tables...)
}

func TestAscenderFromHhea(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(metricsFont(hheaData(800, -200, 90, 1), nil), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.EqualValues(t, 800, f.Ascender())
	assert.EqualValues(t, -200, f.Descender())
	assert.EqualValues(t, 90, f.LineGap())
	assert.EqualValues(t, 1000, f.Height())
}

func TestAscenderHheaWinsOverOs2(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// Without USE_TYPO_METRICS the hhea values stay authoritative.
	f, err := Parse(metricsFont(hheaData(800, -200, 90, 1),
		&os2Spec{version: 4, typoAsc: 750, typoDesc: -250, typoGap: 50}), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.EqualValues(t, 800, f.Ascender())
	assert.EqualValues(t, -200, f.Descender())
	assert.EqualValues(t, 90, f.LineGap())
}

func TestAscenderUseTypographicMetrics(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(metricsFont(hheaData(800, -200, 90, 1),
		&os2Spec{version: 4, fsSelection: fsSelectionUseTypoMetrics,
			typoAsc: 750, typoDesc: -250, typoGap: 50}), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.EqualValues(t, 750, f.Ascender())
	assert.EqualValues(t, -250, f.Descender())
	assert.EqualValues(t, 50, f.LineGap())
	assert.EqualValues(t, 1000, f.Height())
}

func TestUseTypoMetricsFlagNeedsVersion4(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// The flag bit is set, but on an OS/2 version too old to define it.
	f, err := Parse(metricsFont(hheaData(800, -200, 90, 1),
		&os2Spec{version: 3, fsSelection: fsSelectionUseTypoMetrics,
			typoAsc: 750, typoDesc: -250}), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.EqualValues(t, 800, f.Ascender())
}

func TestAscenderZeroHheaFallsBackToOs2(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(metricsFont(hheaData(0, 0, 90, 1),
		&os2Spec{version: 4, typoAsc: 750, typoDesc: -250, typoGap: 50}), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.EqualValues(t, 750, f.Ascender())
	assert.EqualValues(t, -250, f.Descender())
	// A broken hhea pair also redirects the line gap to the typo set.
	assert.EqualValues(t, 50, f.LineGap())
}

func TestAscenderWindowsFallback(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(metricsFont(hheaData(0, 0, 90, 1),
		&os2Spec{version: 4, winAsc: 820, winDesc: 210}), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.EqualValues(t, 820, f.Ascender())
	// usWinDescent is stored positive and reported negative.
	assert.EqualValues(t, -210, f.Descender())
	// Neither typo value is set, so the line gap is suppressed.
	assert.EqualValues(t, 0, f.LineGap())
}

func TestLineGapGuardWithoutOs2(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// The broken-hhea guard is an OS/2 concern; with no OS/2 table the
	// raw hhea line gap stands even next to a zero ascender.
	f, err := Parse(metricsFont(hheaData(0, -200, 90, 1), nil), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.EqualValues(t, 90, f.LineGap())
}

func TestStyleClassification(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		spec os2Spec
		want Style
	}{
		{os2Spec{version: 4}, StyleNormal},
		{os2Spec{version: 4, fsSelection: fsSelectionItalic}, StyleItalic},
		{os2Spec{version: 4, fsSelection: fsSelectionOblique}, StyleOblique},
		{os2Spec{version: 4, fsSelection: fsSelectionOblique | fsSelectionItalic}, StyleOblique},
		// Oblique is undefined before version 4.
		{os2Spec{version: 3, fsSelection: fsSelectionOblique}, StyleNormal},
	}
	for _, c := range cases {
		f, err := Parse(metricsFont(hheaData(800, -200, 90, 1), &c.spec), 0)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, c.want, f.Style())
	}
}

func TestWeightWidthDefaults(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(minimalFont(), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, WeightNormal, f.Weight())
	assert.Equal(t, WidthNormal, f.Width())
	//
	f, err = Parse(metricsFont(hheaData(800, -200, 90, 1),
		&os2Spec{version: 4, weight: 700, width: 3}), 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, WeightBold, f.Weight())
	assert.Equal(t, WidthCondensed, f.Width())
}

func TestStrikeoutAndHeights(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(metricsFont(hheaData(800, -200, 90, 1),
		&os2Spec{version: 2, strikeSize: 50, strikePos: 300, xHeight: 450, capHeight: 650}), 0)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := f.StrikeoutMetrics()
	assert.True(t, ok)
	assert.Equal(t, LineMetrics{Position: 300, Thickness: 50}, m)
	x, ok := f.XHeight()
	assert.True(t, ok)
	assert.EqualValues(t, 450, x)
	c, ok := f.CapitalHeight()
	assert.True(t, ok)
	assert.EqualValues(t, 650, c)
	// Version 0 does not carry the height fields.
	f, err = Parse(metricsFont(hheaData(800, -200, 90, 1), &os2Spec{version: 0}), 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.XHeight(); ok {
		t.Error("version 0 OS/2 must not report an x-height")
	}
}

func TestHorizontalMetricsPerGlyph(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	hmtx := &binBuilder{}
	hmtx.u16(500).i16(10) // glyph 0
	hmtx.u16(600).i16(20) // glyph 1
	hmtx.i16(30) // trailing bearing for glyph 2
	f, err := Parse(buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 2)},
		testTable{"maxp", maxpData(3)},
		testTable{"hmtx", hmtx.buf},
	), 0)
	if err != nil {
		t.Fatal(err)
	}
	adv, ok := f.GlyphHorAdvance(0)
	assert.True(t, ok)
	assert.EqualValues(t, 500, adv)
	adv, ok = f.GlyphHorAdvance(2)
	assert.True(t, ok)
	assert.EqualValues(t, 600, adv, "glyphs beyond the long metrics repeat the last advance")
	sb, ok := f.GlyphHorSideBearing(2)
	assert.True(t, ok)
	assert.EqualValues(t, 30, sb)
	if _, ok := f.GlyphHorAdvance(3); ok {
		t.Error("glyph 3 is out of range")
	}
}

func TestVerticalMetricsNeedVhea(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(minimalFont(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.VerticalAscender(); ok {
		t.Error("no vhea, no vertical ascender")
	}
	vmtx := &binBuilder{}
	vmtx.u16(1000).i16(120)
	f, err = Parse(buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 1)},
		testTable{"maxp", maxpData(1)},
		testTable{"vhea", vheaData(500, -500, 0, 1)},
		testTable{"vmtx", vmtx.buf},
	), 0)
	if err != nil {
		t.Fatal(err)
	}
	asc, ok := f.VerticalAscender()
	assert.True(t, ok)
	assert.EqualValues(t, 500, asc)
	h, ok := f.VerticalHeight()
	assert.True(t, ok)
	assert.EqualValues(t, 1000, h)
	adv, ok := f.GlyphVerAdvance(0)
	assert.True(t, ok)
	assert.EqualValues(t, 1000, adv)
	sb, ok := f.GlyphVerSideBearing(0)
	assert.True(t, ok)
	assert.EqualValues(t, 120, sb)
}
