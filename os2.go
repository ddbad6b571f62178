package otface

// Style is a face style, as declared by the OS/2 table's fsSelection field.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	// StyleOblique is only expressible by OS/2 versions ≥ 4.
	StyleOblique
)

// Weight is a visual weight class (1..1000), e.g. 400 for normal, 700 for
// bold.
type Weight uint16

// Common weight classes.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Width is a face width class (1..9), 5 being normal.
type Width uint16

// Width classes.
const (
	WidthUltraCondensed Width = 1 + iota
	WidthExtraCondensed
	WidthCondensed
	WidthSemiCondensed
	WidthNormal
	WidthSemiExpanded
	WidthExpanded
	WidthExtraExpanded
	WidthUltraExpanded
)

// ScriptMetrics describes subscript or superscript positioning.
type ScriptMetrics struct {
	XSize   int16
	YSize   int16
	XOffset int16
	YOffset int16
}

// fsSelection flags.
const (
	fsSelectionItalic         = 0x0001
	fsSelectionBold           = 0x0020
	fsSelectionRegular        = 0x0040
	fsSelectionUseTypoMetrics = 0x0080
	fsSelectionOblique        = 0x0200
)

// Os2Table is the OS/2 and Windows metrics table. It carries the
// typographic ("typo") and legacy Windows ("win") metric sets competing
// with the hhea values, plus style classification.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
type Os2Table struct {
	version uint16
	data    fontBinSegm
}

// OS/2 table sizes per version.
const (
	os2SizeV0 = 78
	os2SizeV2 = 96
)

func parseOs2(b fontBinSegm) (*Os2Table, error) {
	version, err := b.u16(0)
	if err != nil {
		return nil, errFontFormat("size of OS/2 table")
	}
	if version > 5 {
		return nil, errFontFormat("OS/2 table version")
	}
	minSize := os2SizeV0
	if version >= 2 {
		minSize = os2SizeV2
	}
	if b.Size() < minSize {
		return nil, errFontFormat("size of OS/2 table")
	}
	return &Os2Table{version: version, data: b}, nil
}

func (t *Os2Table) fsSelection() uint16 {
	n, _ := t.data.u16(62)
	return n
}

// UseTypographicMetrics checks the USE_TYPO_METRICS flag. The flag is
// defined for OS/2 versions ≥ 4 only.
func (t *Os2Table) UseTypographicMetrics() bool {
	if t.version < 4 {
		return false
	}
	return t.fsSelection()&fsSelectionUseTypoMetrics != 0
}

// TypographicAscender returns the sTypoAscender field.
func (t *Os2Table) TypographicAscender() int16 {
	n, _ := t.data.i16(68)
	return n
}

// TypographicDescender returns the sTypoDescender field.
func (t *Os2Table) TypographicDescender() int16 {
	n, _ := t.data.i16(70)
	return n
}

// TypographicLineGap returns the sTypoLineGap field.
func (t *Os2Table) TypographicLineGap() int16 {
	n, _ := t.data.i16(72)
	return n
}

// WindowsAscender returns the usWinAscent field.
func (t *Os2Table) WindowsAscender() int16 {
	n, _ := t.data.u16(74)
	return int16(n)
}

// WindowsDescender returns the usWinDescent field, negated: the table
// stores it as a positive distance below the baseline.
func (t *Os2Table) WindowsDescender() int16 {
	n, _ := t.data.u16(76)
	return -int16(n)
}

// Weight returns the usWeightClass field.
func (t *Os2Table) Weight() Weight {
	n, _ := t.data.u16(4)
	return Weight(n)
}

// Width returns the usWidthClass field, or WidthNormal when out of range.
func (t *Os2Table) Width() Width {
	n, _ := t.data.u16(6)
	if n < 1 || n > 9 {
		return WidthNormal
	}
	return Width(n)
}

// Style classifies the face from fsSelection.
func (t *Os2Table) Style() Style {
	sel := t.fsSelection()
	if t.version >= 4 && sel&fsSelectionOblique != 0 {
		return StyleOblique
	}
	if sel&fsSelectionItalic != 0 {
		return StyleItalic
	}
	return StyleNormal
}

// IsBold checks the BOLD flag.
func (t *Os2Table) IsBold() bool {
	return t.fsSelection()&fsSelectionBold != 0
}

// IsRegular checks the REGULAR flag.
func (t *Os2Table) IsRegular() bool {
	return t.fsSelection()&fsSelectionRegular != 0
}

// XHeight returns sxHeight; defined for versions ≥ 2 only.
func (t *Os2Table) XHeight() (int16, bool) {
	if t.version < 2 {
		return 0, false
	}
	n, err := t.data.i16(86)
	return n, err == nil
}

// CapitalHeight returns sCapHeight; defined for versions ≥ 2 only.
func (t *Os2Table) CapitalHeight() (int16, bool) {
	if t.version < 2 {
		return 0, false
	}
	n, err := t.data.i16(88)
	return n, err == nil
}

// StrikeoutMetrics returns the strikeout decoration line.
func (t *Os2Table) StrikeoutMetrics() LineMetrics {
	size, _ := t.data.i16(26)
	pos, _ := t.data.i16(28)
	return LineMetrics{Position: pos, Thickness: size}
}

// SubscriptMetrics returns the subscript positioning set.
func (t *Os2Table) SubscriptMetrics() ScriptMetrics {
	m := ScriptMetrics{}
	m.XSize, _ = t.data.i16(10)
	m.YSize, _ = t.data.i16(12)
	m.XOffset, _ = t.data.i16(14)
	m.YOffset, _ = t.data.i16(16)
	return m
}

// SuperscriptMetrics returns the superscript positioning set.
func (t *Os2Table) SuperscriptMetrics() ScriptMetrics {
	m := ScriptMetrics{}
	m.XSize, _ = t.data.i16(18)
	m.YSize, _ = t.data.i16(20)
	m.XOffset, _ = t.data.i16(22)
	m.YOffset, _ = t.data.i16(24)
	return m
}
