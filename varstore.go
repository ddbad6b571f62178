package otface

// itemVariationStore is the shared delta storage of HVAR, VVAR and MVAR.
// Deltas are addressed by an (outer, inner) index pair and scaled by
// region scalars evaluated at the current design-space coordinates.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otvarcommonformats
type itemVariationStore struct {
	data        fontBinSegm // the whole store
	regions     fontBinSegm // region records, axisCount axes each
	axisCount   uint16
	regionCount uint16
	dataCount   uint16
}

const varRegionAxisSize = 6 // start, peak, end as 2.14 each

func parseItemVariationStore(b fontBinSegm) (itemVariationStore, error) {
	format, err := b.u16(0)
	if err != nil || format != 1 {
		return itemVariationStore{}, errFontFormat("item variation store format")
	}
	regionListOffset, _ := b.u32(2)
	dataCount, _ := b.u16(6)
	regionList, err := b.view(int(regionListOffset), b.Size()-int(regionListOffset))
	if err != nil {
		return itemVariationStore{}, errFontFormat("variation region list offset")
	}
	axisCount, err1 := regionList.u16(0)
	regionCount, err2 := regionList.u16(2)
	if err1 != nil || err2 != nil {
		return itemVariationStore{}, errFontFormat("variation region list header")
	}
	regions, err := regionList.view(4, int(regionCount)*int(axisCount)*varRegionAxisSize)
	if err != nil {
		return itemVariationStore{}, errFontFormat("variation region list bounds")
	}
	return itemVariationStore{
		data:        b,
		regions:     regions,
		axisCount:   axisCount,
		regionCount: regionCount,
		dataCount:   dataCount,
	}, nil
}

// regionScalar evaluates one region's contribution at coords. Coordinates
// beyond the vector read as zero; a degenerate axis tent contributes a
// factor of one.
func (s itemVariationStore) regionScalar(region int, coords []NormalizedCoordinate) (float32, bool) {
	if region >= int(s.regionCount) {
		return 0, false
	}
	base := region * int(s.axisCount) * varRegionAxisSize
	v := float32(1)
	for axis := 0; axis < int(s.axisCount); axis++ {
		rec, err := s.regions.view(base+axis*varRegionAxisSize, varRegionAxisSize)
		if err != nil {
			return 0, false
		}
		s14, _ := rec.f2dot14(0)
		p14, _ := rec.f2dot14(2)
		e14, _ := rec.f2dot14(4)
		start := float32(s14) / 16384
		peak := float32(p14) / 16384
		end := float32(e14) / 16384
		var coord float32
		if axis < len(coords) {
			coord = coords[axis].Float()
		}
		if start > peak || peak > end {
			continue
		}
		if start < 0 && end > 0 && peak != 0 {
			continue
		}
		if peak == 0 || coord == peak {
			continue
		}
		if coord <= start || end <= coord {
			return 0, true
		}
		if coord < peak {
			v *= (coord - start) / (peak - start)
		} else {
			v *= (end - coord) / (end - peak)
		}
	}
	return v, true
}

// Delta resolves the delta set addressed by (outer, inner) and blends it
// over the region scalars at coords.
func (s itemVariationStore) Delta(outer, inner uint16, coords []NormalizedCoordinate) (float32, bool) {
	if outer >= s.dataCount {
		return 0, false
	}
	dataOffset, err := s.data.u32(8 + int(outer)*4)
	if err != nil {
		return 0, false
	}
	set, err := s.data.view(int(dataOffset), s.data.Size()-int(dataOffset))
	if err != nil {
		return 0, false
	}
	itemCount, err1 := set.u16(0)
	shortDeltaCount, err2 := set.u16(2)
	regionIndexCount, err3 := set.u16(4)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	if inner >= itemCount || shortDeltaCount > regionIndexCount {
		return 0, false
	}
	rowSize := int(shortDeltaCount)*2 + int(regionIndexCount) - int(shortDeltaCount)
	rowsStart := 6 + int(regionIndexCount)*2
	row, err := set.view(rowsStart+int(inner)*rowSize, rowSize)
	if err != nil {
		return 0, false
	}
	var delta float32
	for i := 0; i < int(regionIndexCount); i++ {
		regionIdx, err := set.u16(6 + i*2)
		if err != nil {
			return 0, false
		}
		scalar, ok := s.regionScalar(int(regionIdx), coords)
		if !ok {
			return 0, false
		}
		var value int16
		if i < int(shortDeltaCount) {
			value, _ = row.i16(i * 2)
		} else {
			n, _ := row.u8(int(shortDeltaCount)*2 + i - int(shortDeltaCount))
			value = int16(int8(n))
		}
		delta += scalar * float32(value)
	}
	return delta, true
}

// deltaSetIndexMap maps glyph IDs to (outer, inner) delta-set indexes.
// Glyphs beyond the map repeat the last entry.
type deltaSetIndexMap struct {
	data fontBinSegm
}

func (m deltaSetIndexMap) mapIndex(gid GlyphId) (outer, inner uint16, ok bool) {
	entryFormat, err1 := m.data.u16(0)
	mapCount, err2 := m.data.u16(2)
	if err1 != nil || err2 != nil || mapCount == 0 {
		return 0, 0, false
	}
	idx := int(gid)
	if idx >= int(mapCount) {
		idx = int(mapCount) - 1
	}
	innerBits := uint(entryFormat&0x000F) + 1
	entrySize := int((entryFormat>>4)&0x0003) + 1
	entry, err := m.data.view(4+idx*entrySize, entrySize)
	if err != nil {
		return 0, 0, false
	}
	var n uint32
	for _, b := range entry {
		n = n<<8 | uint32(b)
	}
	return uint16(n >> innerBits), uint16(n & (1<<innerBits - 1)), true
}
