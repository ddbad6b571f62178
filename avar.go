package otface

// AvarTable holds per-axis piecewise-linear maps that warp normalized
// axis coordinates, letting designers make an axis non-linear without
// touching the variation deltas.
// https://docs.microsoft.com/en-us/typography/opentype/spec/avar
type AvarTable struct {
	segmentMaps [][]avarPair
}

type avarPair struct {
	from int16
	to   int16
}

func parseAvar(b fontBinSegm) (*AvarTable, error) {
	version, err := b.u32(0)
	if err != nil || version != 0x00010000 {
		return nil, errFontFormat("avar table version")
	}
	axisCount, err := b.u16(6)
	if err != nil {
		return nil, errFontFormat("size of avar table")
	}
	t := &AvarTable{segmentMaps: make([][]avarPair, axisCount)}
	pos := 8
	for i := range t.segmentMaps {
		count, err := b.u16(pos)
		if err != nil {
			return nil, errFontFormat("avar segment maps incomplete")
		}
		pos += 2
		pairs := make([]avarPair, count)
		for j := range pairs {
			from, err1 := b.i16(pos)
			to, err2 := b.i16(pos + 2)
			if err1 != nil || err2 != nil {
				return nil, errFontFormat("avar segment maps incomplete")
			}
			pairs[j] = avarPair{from: from, to: to}
			pos += 4
		}
		t.segmentMaps[i] = pairs
	}
	return t, nil
}

// mapCoordinates warps the whole coordinate vector in place. The vector
// length must match the table's axis count, otherwise nothing is changed.
func (t *AvarTable) mapCoordinates(coords []NormalizedCoordinate) bool {
	if len(coords) != len(t.segmentMaps) {
		return false
	}
	for i := range coords {
		coords[i] = normCoordFromI16(mapAvarValue(t.segmentMaps[i], int16(coords[i])))
	}
	return true
}

// mapAvarValue applies one axis map, interpolating between the two
// neighboring pairs and extrapolating by delta beyond the endpoints.
// Intermediate math is done in 32 bits with round-to-nearest.
func mapAvarValue(pairs []avarPair, value int16) int16 {
	if len(pairs) == 0 {
		return value
	}
	if len(pairs) == 1 {
		return value - pairs[0].from + pairs[0].to
	}
	if value <= pairs[0].from {
		return value - pairs[0].from + pairs[0].to
	}
	i := 1
	for i < len(pairs) && value > pairs[i].from {
		i++
	}
	if i == len(pairs) {
		last := pairs[len(pairs)-1]
		return value - last.from + last.to
	}
	curr, prev := pairs[i], pairs[i-1]
	if prev.from == curr.from {
		return prev.to
	}
	currFrom, currTo := int32(curr.from), int32(curr.to)
	prevFrom, prevTo := int32(prev.from), int32(prev.to)
	num := (currTo-prevTo)*(int32(value)-prevFrom) + (currFrom-prevFrom)>>1
	return int16(prevTo + num/(currFrom-prevFrom))
}
