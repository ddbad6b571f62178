package otface

import (
	"encoding/binary"
	"sort"
	"strconv"
)

// Test fonts are synthesized in memory, table by table. No fixture files;
// every test states the exact bytes it depends on.

type binBuilder struct {
	buf []byte
}

func (b *binBuilder) u8(v uint8) *binBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *binBuilder) u16(v uint16) *binBuilder {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	return b
}

func (b *binBuilder) i16(v int16) *binBuilder {
	return b.u16(uint16(v))
}

func (b *binBuilder) u32(v uint32) *binBuilder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
	return b
}

func (b *binBuilder) i32(v int32) *binBuilder {
	return b.u32(uint32(v))
}

func (b *binBuilder) tag(s string) *binBuilder {
	four := T(s).Bytes()
	b.buf = append(b.buf, four[:]...)
	return b
}

func (b *binBuilder) bytes(p []byte) *binBuilder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *binBuilder) pad(n int) *binBuilder {
	b.buf = append(b.buf, make([]byte, n)...)
	return b
}

type testTable struct {
	tag  string
	data []byte
}

// buildFontAt serializes a single-face font whose first byte will sit at
// offset base of the final buffer. Table offsets are absolute, so
// collection members need a non-zero base.
func buildFontAt(base int, tables []testTable) []byte {
	sorted := append([]testTable{}, tables...)
	sort.Slice(sorted, func(i, j int) bool { return T(sorted[i].tag) < T(sorted[j].tag) })
	b := &binBuilder{}
	b.u32(magicTrueType)
	b.u16(uint16(len(sorted)))
	b.pad(6) // searchRange, entrySelector, rangeShift
	offset := base + 12 + tableRecordSize*len(sorted)
	for _, tt := range sorted {
		b.tag(tt.tag)
		b.u32(0) // checksum, never validated
		b.u32(uint32(offset))
		b.u32(uint32(len(tt.data)))
		offset += len(tt.data)
	}
	for _, tt := range sorted {
		b.bytes(tt.data)
	}
	return b.buf
}

func buildFont(tables ...testTable) []byte {
	return buildFontAt(0, tables)
}

// buildCollection serializes a 'ttcf' file with one member font per
// table set.
func buildCollection(fonts ...[]testTable) []byte {
	b := &binBuilder{}
	b.tag("ttcf")
	b.u32(0x00010000)
	b.u32(uint32(len(fonts)))
	headerSize := 12 + 4*len(fonts)
	offset := headerSize
	bodies := make([][]byte, len(fonts))
	for i, tables := range fonts {
		bodies[i] = buildFontAt(offset, tables)
		b.u32(uint32(offset))
		offset += len(bodies[i])
	}
	for _, body := range bodies {
		b.bytes(body)
	}
	return b.buf
}

// --- Canned tables ---------------------------------------------------------

func headData(unitsPerEm uint16, indexToLoc uint16) []byte {
	b := &binBuilder{}
	b.u32(0x00010000) // version
	b.u32(0)          // fontRevision
	b.u32(0)          // checksumAdjustment
	b.u32(headMagic)
	b.u16(0)          // flags
	b.u16(unitsPerEm)
	b.pad(16)          // created, modified
	b.i16(-10)         // xMin
	b.i16(-20)         // yMin
	b.i16(1000)        // xMax
	b.i16(900)         // yMax
	b.u16(0)           // macStyle
	b.u16(8)           // lowestRecPPEM
	b.i16(2)           // fontDirectionHint
	b.u16(indexToLoc)
	b.i16(0) // glyphDataFormat
	return b.buf
}

func hheaData(ascender, descender, lineGap int16, numMetrics uint16) []byte {
	b := &binBuilder{}
	b.u32(0x00010000)
	b.i16(ascender)
	b.i16(descender)
	b.i16(lineGap)
	b.pad(24)
	b.u16(numMetrics)
	return b.buf
}

func vheaData(ascender, descender, lineGap int16, numMetrics uint16) []byte {
	return hheaData(ascender, descender, lineGap, numMetrics)
}

func maxpData(numGlyphs uint16) []byte {
	b := &binBuilder{}
	b.u32(0x00010000)
	b.u16(numGlyphs)
	return b.buf
}

// os2Spec collects the fields a test wants to pin; everything else is
// zero.
type os2Spec struct {
	version     uint16
	weight      uint16
	width       uint16
	fsSelection uint16
	typoAsc     int16
	typoDesc    int16
	typoGap     int16
	winAsc      uint16
	winDesc     uint16
	strikeSize  int16
	strikePos   int16
	xHeight     int16
	capHeight   int16
}

func os2Data(spec os2Spec) []byte {
	size := os2SizeV0
	if spec.version >= 2 {
		size = os2SizeV2
	}
	buf := make([]byte, size)
	put16 := func(pos int, v uint16) { binary.BigEndian.PutUint16(buf[pos:], v) }
	put16(0, spec.version)
	put16(4, spec.weight)
	put16(6, spec.width)
	put16(26, uint16(spec.strikeSize))
	put16(28, uint16(spec.strikePos))
	put16(62, spec.fsSelection)
	put16(68, uint16(spec.typoAsc))
	put16(70, uint16(spec.typoDesc))
	put16(72, uint16(spec.typoGap))
	put16(74, spec.winAsc)
	put16(76, spec.winDesc)
	if spec.version >= 2 {
		put16(86, uint16(spec.xHeight))
		put16(88, uint16(spec.capHeight))
	}
	return buf
}

// minimalFont is a font with just the three mandatory tables.
func minimalFont() []byte {
	return buildFont(
		testTable{"head", headData(1000, 0)},
		testTable{"hhea", hheaData(800, -200, 90, 1)},
		testTable{"maxp", maxpData(1)},
	)
}

// fakePNG is the 24-byte prefix of a PNG stream: signature, IHDR length
// and type, then the dimensions our readers pick up.
func fakePNG(width, height uint32) []byte {
	b := &binBuilder{}
	b.bytes([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'})
	b.u32(13)
	b.tag("IHDR")
	b.u32(width)
	b.u32(height)
	return b.buf
}

// recordingBuilder captures outline segments as readable strings.
type recordingBuilder struct {
	segments []string
}

func (rb *recordingBuilder) MoveTo(x, y float32) {
	rb.segments = append(rb.segments, sprintSeg("M", x, y))
}

func (rb *recordingBuilder) LineTo(x, y float32) {
	rb.segments = append(rb.segments, sprintSeg("L", x, y))
}

func (rb *recordingBuilder) QuadTo(x1, y1, x, y float32) {
	rb.segments = append(rb.segments, sprintSeg("Q", x1, y1, x, y))
}

func (rb *recordingBuilder) CurveTo(x1, y1, x2, y2, x, y float32) {
	rb.segments = append(rb.segments, sprintSeg("C", x1, y1, x2, y2, x, y))
}

func (rb *recordingBuilder) Close() {
	rb.segments = append(rb.segments, "Z")
}

func sprintSeg(op string, coords ...float32) string {
	s := op
	for _, c := range coords {
		s += " " + trimFloat(c)
	}
	return s
}

func trimFloat(f float32) string {
	if f == float32(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
