package otface

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

// cmapTable wraps one subtable in a cmap header for platform 3,
// encoding 1 (Windows, Unicode BMP).
func cmapTable(subtable []byte) []byte {
	b := &binBuilder{}
	b.u16(0) // version
	b.u16(1) // one encoding record
	b.u16(3).u16(1).u32(12)
	b.bytes(subtable)
	return b.buf
}

// cmapFormat4 maps 'A'..'D' to glyphs 1..4.
func cmapFormat4() []byte {
	b := &binBuilder{}
	b.u16(4)
	b.u16(40) // length
	b.u16(0)  // language
	b.u16(4)  // segCountX2: the real segment plus the 0xFFFF terminator
	b.u16(0).u16(0).u16(0) // searchRange etc., unused
	b.u16(0x44).u16(0xFFFF) // end codes
	b.u16(0)                // reservedPad
	b.u16(0x41).u16(0xFFFF) // start codes
	b.i16(1 - 0x41).i16(1)  // id deltas
	b.u16(0).u16(0)         // id range offsets
	return b.buf
}

// cmapFormat12 maps U+1F600..U+1F602 to glyphs 7..9.
func cmapFormat12() []byte {
	b := &binBuilder{}
	b.u16(12).u16(0)
	b.u32(28) // length
	b.u32(0)  // language
	b.u32(1)  // numGroups
	b.u32(0x1F600).u32(0x1F602).u32(7)
	return b.buf
}

func cmapFont(sub []byte) []byte {
	return buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 1)},
		testTable{"maxp", maxpData(10)},
		testTable{"cmap", cmapTable(sub)},
	)
}

func TestGlyphIndexFormat4(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(cmapFont(cmapFormat4()), 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range "ABCD" {
		gid, ok := f.GlyphIndex(c)
		assert.True(t, ok, "%c should be mapped", c)
		assert.EqualValues(t, i+1, gid)
	}
	if _, ok := f.GlyphIndex('E'); ok {
		t.Error("E is outside every segment")
	}
	if _, ok := f.GlyphIndex('0'); ok {
		t.Error("0 is below the first segment")
	}
	// The terminator segment maps 0xFFFF to glyph 0, which is a miss.
	if _, ok := f.GlyphIndex(0xFFFF); ok {
		t.Error("glyph 0 must never be reported")
	}
}

func TestGlyphIndexFormat12(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Parse(cmapFont(cmapFormat12()), 0)
	if err != nil {
		t.Fatal(err)
	}
	gid, ok := f.GlyphIndex(0x1F601)
	assert.True(t, ok)
	assert.EqualValues(t, 8, gid)
	if _, ok := f.GlyphIndex(0x1F603); ok {
		t.Error("code-point beyond the group must miss")
	}
	if _, ok := f.GlyphIndex('A'); ok {
		t.Error("BMP code-point outside all groups must miss")
	}
}

func TestGlyphIndexFormat6(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	sub := &binBuilder{}
	sub.u16(6).u16(20).u16(0)
	sub.u16(0x30) // first code
	sub.u16(3)    // entry count
	sub.u16(5).u16(6).u16(7)
	f, err := Parse(cmapFont(sub.buf), 0)
	if err != nil {
		t.Fatal(err)
	}
	gid, ok := f.GlyphIndex('1')
	assert.True(t, ok)
	assert.EqualValues(t, 6, gid)
	if _, ok := f.GlyphIndex('4'); ok {
		t.Error("code beyond the dense range must miss")
	}
}

func TestGlyphIndexSkipsNonUnicodeSubtables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// One Macintosh (platform 1) subtable only: no Unicode mapping at all.
	b := &binBuilder{}
	b.u16(0)
	b.u16(1)
	b.u16(1).u16(0).u32(12)
	b.u16(0).u16(262).u16(0)
	b.pad(256)
	f, err := Parse(buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 1)},
		testTable{"maxp", maxpData(10)},
		testTable{"cmap", b.buf},
	), 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.GlyphIndex('A'); ok {
		t.Error("non-Unicode subtables must be skipped")
	}
}
