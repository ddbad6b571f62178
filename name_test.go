package otface

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func utf16be(s string) []byte {
	b := &binBuilder{}
	for _, r := range s {
		b.u16(uint16(r)) // test strings stay inside the BMP
	}
	return b.buf
}

func nameData() []byte {
	family := utf16be("Demo Sans")
	mac := []byte("Demo Sans Mac")
	b := &binBuilder{}
	b.u16(0) // format
	b.u16(2) // count
	b.u16(6 + 2*12)
	// Windows, Unicode BMP, en-US.
	b.u16(3).u16(1).u16(0x0409).u16(NameFamily)
	b.u16(uint16(len(family))).u16(0)
	// Macintosh Roman.
	b.u16(1).u16(0).u16(0).u16(NameFamily)
	b.u16(uint16(len(mac))).u16(uint16(len(family)))
	b.bytes(family)
	b.bytes(mac)
	return b.buf
}

func TestNameTableLookup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 1)},
		testTable{"maxp", maxpData(1)},
		testTable{"name", nameData()},
	), 0)
	if err != nil {
		t.Fatal(err)
	}
	names := f.Names()
	if names == nil {
		t.Fatal("name table should be present")
	}
	assert.Len(t, names.Records(), 2)
	s, ok := names.Name(NameFamily)
	assert.True(t, ok)
	assert.Equal(t, "Demo Sans", s, "the Unicode entry is preferred")
	if _, ok := names.Name(NamePostScriptName); ok {
		t.Error("missing name IDs must report absence")
	}
}

func TestNameRecordMacRoman(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	nt, err := parseName(nameData())
	if err != nil {
		t.Fatal(err)
	}
	var mac *NameRecord
	for i := range nt.Records() {
		if nt.Records()[i].PlatformID == 1 {
			mac = &nt.Records()[i]
		}
	}
	if mac == nil {
		t.Fatal("expected a Macintosh record")
	}
	s, ok := mac.String()
	assert.True(t, ok)
	assert.Equal(t, "Demo Sans Mac", s)
}

func postData() []byte {
	b := &binBuilder{}
	b.u32(0x00020000)
	b.i32(-12*65536 - 32768) // italic angle -12.5 in 16.16
	b.i16(-100)              // underlinePosition
	b.i16(50)                // underlineThickness
	b.pad(20)
	b.u16(2)          // numGlyphs
	b.u16(0).u16(258) // .notdef, first custom name
	b.u8(5).bytes([]byte("alpha"))
	return b.buf
}

func TestPostGlyphNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 1)},
		testTable{"maxp", maxpData(2)},
		testTable{"post", postData()},
	), 0)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := f.GlyphName(0)
	assert.True(t, ok)
	assert.Equal(t, ".notdef", n)
	n, ok = f.GlyphName(1)
	assert.True(t, ok)
	assert.Equal(t, "alpha", n)
	gid, ok := f.GlyphIndexByName("alpha")
	assert.True(t, ok)
	assert.EqualValues(t, 1, gid)
	if _, ok := f.GlyphIndexByName("beta"); ok {
		t.Error("unknown names must report absence")
	}
	//
	angle, ok := f.ItalicAngle()
	assert.True(t, ok)
	assert.InDelta(t, -12.5, angle, 1e-6)
	m, ok := f.UnderlineMetrics()
	assert.True(t, ok)
	assert.Equal(t, LineMetrics{Position: -100, Thickness: 50}, m)
}

func TestGlyphNamesConfigGate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cfg := DefaultConfig()
	cfg.GlyphNames = false
	f, err := ParseWithConfig(buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 1)},
		testTable{"maxp", maxpData(2)},
		testTable{"post", postData()},
	), 0, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.GlyphName(0); ok {
		t.Error("glyph names are disabled by configuration")
	}
	// The post table itself stays available for its metrics.
	if _, ok := f.UnderlineMetrics(); !ok {
		t.Error("underline metrics do not depend on the glyph-name gate")
	}
}

func vorgData() []byte {
	b := &binBuilder{}
	b.u32(0x00010000)
	b.i16(880) // default origin
	b.u16(1)
	b.u16(1).i16(700)
	return b.buf
}

func TestGlyphYOrigin(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 1)},
		testTable{"maxp", maxpData(3)},
		testTable{"VORG", vorgData()},
	), 0)
	if err != nil {
		t.Fatal(err)
	}
	y, ok := f.GlyphYOrigin(1)
	assert.True(t, ok)
	assert.EqualValues(t, 700, y)
	y, ok = f.GlyphYOrigin(2)
	assert.True(t, ok)
	assert.EqualValues(t, 880, y, "unlisted glyphs use the default origin")
}
