package otface

// VariationAxis is one axis of a variable font, e.g. weight ('wght') or
// width ('wdth').
type VariationAxis struct {
	Tag          Tag
	MinValue     float32
	DefaultValue float32
	MaxValue     float32
	NameID       uint16
	Hidden       bool
}

// normalizedValue maps a user-space value onto the axis to [-1, 1],
// piecewise linear around the default value. The result still has to be
// run through the avar table, if present.
func (a VariationAxis) normalizedValue(v float32) float32 {
	v = f32Bound(a.MinValue, v, a.MaxValue)
	switch {
	case v == a.DefaultValue:
		return 0
	case v < a.DefaultValue:
		if a.DefaultValue == a.MinValue {
			return 0
		}
		return (v - a.DefaultValue) / (a.DefaultValue - a.MinValue)
	default:
		if a.MaxValue == a.DefaultValue {
			return 0
		}
		return (v - a.DefaultValue) / (a.MaxValue - a.DefaultValue)
	}
}

// FvarTable lists the variation axes of a variable font. Its presence is
// what makes a font variable; a table declaring zero axes is rejected.
// https://docs.microsoft.com/en-us/typography/opentype/spec/fvar
type FvarTable struct {
	axes      fontBinSegm
	axisCount uint16
	axisSize  uint16
}

const fvarAxisHidden = 0x0001

func parseFvar(b fontBinSegm) (*FvarTable, error) {
	if b.Size() < 16 {
		return nil, errFontFormat("size of fvar table")
	}
	axesOffset, _ := b.u16(4)
	axisCount, _ := b.u16(8)
	axisSize, _ := b.u16(10)
	if axisCount == 0 || axisSize < 20 {
		return nil, errFontFormat("fvar axis layout")
	}
	axes, err := b.view(int(axesOffset), int(axisCount)*int(axisSize))
	if err != nil {
		return nil, errFontFormat("fvar axes array bounds")
	}
	return &FvarTable{axes: axes, axisCount: axisCount, axisSize: axisSize}, nil
}

// NumAxes returns the number of variation axes.
func (t *FvarTable) NumAxes() int {
	return int(t.axisCount)
}

// Axis returns axis number i.
func (t *FvarTable) Axis(i int) (VariationAxis, bool) {
	if i < 0 || i >= int(t.axisCount) {
		return VariationAxis{}, false
	}
	rec, err := t.axes.view(i*int(t.axisSize), 20)
	if err != nil {
		return VariationAxis{}, false
	}
	a := VariationAxis{Tag: tag(rec)}
	a.MinValue, _ = rec.fixed(4)
	a.DefaultValue, _ = rec.fixed(8)
	a.MaxValue, _ = rec.fixed(12)
	flags, _ := rec.u16(16)
	a.Hidden = flags&fvarAxisHidden != 0
	a.NameID, _ = rec.u16(18)
	return a, true
}

// AxisIndex finds the axis with the given tag.
func (t *FvarTable) AxisIndex(tag Tag) (int, VariationAxis, bool) {
	for i := 0; i < int(t.axisCount); i++ {
		if a, ok := t.Axis(i); ok && a.Tag == tag {
			return i, a, true
		}
	}
	return 0, VariationAxis{}, false
}
