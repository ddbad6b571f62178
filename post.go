package otface

// Standard Macintosh glyph names, used by post format 2 for index
// values below 258.
var macGlyphNames = [258]string{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam", "quotedbl",
	"numbersign", "dollar", "percent", "ampersand", "quotesingle", "parenleft",
	"parenright", "asterisk", "plus", "comma", "hyphen", "period", "slash",
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "colon", "semicolon", "less", "equal", "greater", "question", "at",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "bracketleft",
	"backslash", "bracketright", "asciicircum", "underscore", "grave", "a",
	"b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p",
	"q", "r", "s", "t", "u", "v", "w", "x", "y", "z", "braceleft", "bar",
	"braceright", "asciitilde", "Adieresis", "Aring", "Ccedilla", "Eacute",
	"Ntilde", "Odieresis", "Udieresis", "aacute", "agrave", "acircumflex",
	"adieresis", "atilde", "aring", "ccedilla", "eacute", "egrave",
	"ecircumflex", "edieresis", "iacute", "igrave", "icircumflex", "idieresis",
	"ntilde", "oacute", "ograve", "ocircumflex", "odieresis", "otilde",
	"uacute", "ugrave", "ucircumflex", "udieresis", "dagger", "degree", "cent",
	"sterling", "section", "bullet", "paragraph", "germandbls", "registered",
	"copyright", "trademark", "acute", "dieresis", "notequal", "AE", "Oslash",
	"infinity", "plusminus", "lessequal", "greaterequal", "yen", "mu",
	"partialdiff", "summation", "product", "pi", "integral", "ordfeminine",
	"ordmasculine", "Omega", "ae", "oslash", "questiondown", "exclamdown",
	"logicalnot", "radical", "florin", "approxequal", "Delta", "guillemotleft",
	"guillemotright", "ellipsis", "nonbreakingspace", "Agrave", "Atilde",
	"Otilde", "OE", "oe", "endash", "emdash", "quotedblleft", "quotedblright",
	"quoteleft", "quoteright", "divide", "lozenge", "ydieresis", "Ydieresis",
	"fraction", "currency", "guilsinglleft", "guilsinglright", "fi", "fl",
	"daggerdbl", "periodcentered", "quotesinglbase", "quotedblbase",
	"perthousand", "Acircumflex", "Ecircumflex", "Aacute", "Edieresis",
	"Egrave", "Iacute", "Icircumflex", "Idieresis", "Igrave", "Oacute",
	"Ocircumflex", "apple", "Ograve", "Uacute", "Ucircumflex", "Ugrave",
	"dotlessi", "circumflex", "tilde", "macron", "breve", "dotaccent", "ring",
	"cedilla", "hungarumlaut", "ogonek", "caron", "Lslash", "lslash",
	"Scaron", "scaron", "Zcaron", "zcaron", "brokenbar", "Eth", "eth",
	"Yacute", "yacute", "Thorn", "thorn", "minus", "multiply",
	"onesuperior", "twosuperior", "threesuperior", "onehalf", "onequarter",
	"threequarters", "franc", "Gbreve", "gbreve", "Idotaccent", "Scedilla",
	"scedilla", "Cacute", "cacute", "Ccaron", "ccaron", "dcroat",
}

// PostTable carries PostScript-related data: the italic angle, underline
// decoration and, for format 2, per-glyph names.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
type PostTable struct {
	italicAngle       float32
	underlinePosition int16
	underlineThick    int16
	glyphIndexes      fontBinSegm // format 2 only
	names             fontBinSegm // pascal strings, format 2 only
}

func parsePost(b fontBinSegm, numGlyphs uint16) (*PostTable, error) {
	if b.Size() < 32 {
		return nil, errFontFormat("size of post table")
	}
	version, _ := b.u32(0)
	t := &PostTable{}
	t.italicAngle, _ = b.fixed(4)
	t.underlinePosition, _ = b.i16(8)
	t.underlineThick, _ = b.i16(10)
	if version != 0x00020000 {
		return t, nil
	}
	declared, err := b.u16(32)
	if err != nil {
		return t, nil
	}
	if declared > numGlyphs {
		declared = numGlyphs
	}
	indexes, err := b.view(34, int(declared)*2)
	if err != nil {
		return t, nil
	}
	t.glyphIndexes = indexes
	t.names, _ = b.view(34+int(declared)*2, b.Size()-34-int(declared)*2)
	return t, nil
}

// ItalicAngle is the caret slant in degrees, counter-clockwise from
// vertical; zero for upright fonts.
func (t *PostTable) ItalicAngle() float32 {
	return t.italicAngle
}

// UnderlineMetrics returns the underline decoration line.
func (t *PostTable) UnderlineMetrics() LineMetrics {
	return LineMetrics{Position: t.underlinePosition, Thickness: t.underlineThick}
}

// GlyphName returns the PostScript name of glyph gid. Only format 2
// tables carry names.
func (t *PostTable) GlyphName(gid GlyphId) (string, bool) {
	idx, err := t.glyphIndexes.u16(int(gid) * 2)
	if err != nil {
		return "", false
	}
	if idx < 258 {
		return macGlyphNames[idx], true
	}
	// Names beyond the standard set are stored as consecutive pascal
	// strings; we have to walk them.
	target := int(idx) - 258
	pos := 0
	for i := 0; ; i++ {
		length, err := t.names.u8(pos)
		if err != nil {
			return "", false
		}
		if i == target {
			s, err := t.names.view(pos+1, int(length))
			if err != nil {
				return "", false
			}
			return string(s), true
		}
		pos += 1 + int(length)
	}
}

// GlyphIndexByName is the inverse of GlyphName.
func (t *PostTable) GlyphIndexByName(name string) (GlyphId, bool) {
	if t.glyphIndexes == nil {
		return 0, false
	}
	numGlyphs := t.glyphIndexes.Size() / 2
	for gid := 0; gid < numGlyphs; gid++ {
		if n, ok := t.GlyphName(GlyphId(gid)); ok && n == name {
			return GlyphId(gid), true
		}
	}
	return 0, false
}
