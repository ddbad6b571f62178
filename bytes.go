package otface

import "errors"

// Reading bytes from a font's binary representation.

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler.
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler.
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// fontBinSegm is a segment of byte data. We use it throughout this module to
// navigate the font's binary data. A nil segment denotes an absent table.
type fontBinSegm []byte

func (b fontBinSegm) Size() int {
	return len(b)
}

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b fontBinSegm) view(offset, n int) (fontBinSegm, error) {
	if offset < 0 || n < 0 || offset+n < 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// u8 returns the byte in b at offset i.
func (b fontBinSegm) u8(i int) (byte, error) {
	if i < 0 || i >= len(b) {
		return 0, errBufferBounds
	}
	return b[i], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b fontBinSegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// i16 returns the int16 in b at the relative offset i.
func (b fontBinSegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	return int16(n), err
}

// u32 returns the uint32 in b at the relative offset i.
func (b fontBinSegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// glyphID returns the glyph ID in b at the relative offset i.
func (b fontBinSegm) glyphID(i int) (GlyphId, error) {
	n, err := b.u16(i)
	return GlyphId(n), err
}

// f2dot14 returns the 2.14 fixed-point value in b at the relative offset i.
func (b fontBinSegm) f2dot14(i int) (int16, error) {
	return b.i16(i)
}

// fixed returns the 16.16 fixed-point value in b at the relative offset i,
// converted to float32.
func (b fontBinSegm) fixed(i int) (float32, error) {
	n, err := b.u32(i)
	if err != nil {
		return 0, err
	}
	return float32(int32(n)) / 65536.0, nil
}

// --- Checked numeric narrowing ---------------------------------------------

// Float-to-integer narrowing must never wrap or trap. Conversions outside
// the target range (and NaN) report failure instead.

func i16FromF32(v float32) (int16, bool) {
	if !(v >= -32768.0 && v <= 32767.0) { // negated to catch NaN
		return 0, false
	}
	return int16(v), true
}

func u16FromF32(v float32) (uint16, bool) {
	if !(v >= 0.0 && v <= 65535.0) {
		return 0, false
	}
	return uint16(v), true
}

// addU32 is a checked addition of two table-range components.
func addU32(a, b uint32) (uint32, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}

func f32Bound(min, v, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func i16Bound(min, v, max int16) int16 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
