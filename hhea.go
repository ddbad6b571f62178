package otface

// MetricsHeader is a horizontal (hhea) or vertical (vhea) metrics header
// table. Both tables share the same layout for the fields interpreted here.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
type MetricsHeader struct {
	Ascender        int16
	Descender       int16
	LineGap         int16
	NumberOfMetrics uint16
}

// parseHhea parses the horizontal header table.
func parseHhea(b fontBinSegm) (MetricsHeader, error) {
	if b.Size() < 36 {
		return MetricsHeader{}, errFontFormat("hhea table incomplete")
	}
	return parseMetricsHeader(b)
}

// parseVhea parses the vertical header table. The vhea ascender/descender/
// line-gap fields sit at the same offsets as their hhea counterparts; only
// the version differs (1.0 or 1.1).
func parseVhea(b fontBinSegm) (MetricsHeader, error) {
	if b.Size() < 36 {
		return MetricsHeader{}, errFontFormat("vhea table incomplete")
	}
	version, _ := b.u32(0)
	if version != 0x00010000 && version != 0x00011000 {
		return MetricsHeader{}, errFontFormat("vhea table version")
	}
	return parseMetricsHeader(b)
}

func parseMetricsHeader(b fontBinSegm) (MetricsHeader, error) {
	t := MetricsHeader{}
	t.Ascender, _ = b.i16(4)
	t.Descender, _ = b.i16(6)
	t.LineGap, _ = b.i16(8)
	t.NumberOfMetrics, _ = b.u16(34)
	return t, nil
}
