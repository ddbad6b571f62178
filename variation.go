package otface

// NormalizedCoordinate is an axis position in normalized design space,
// stored as 2.14 fixed point and clamped to [-1, 1].
type NormalizedCoordinate int16

func normCoordFromI16(v int16) NormalizedCoordinate {
	return NormalizedCoordinate(i16Bound(-16384, v, 16384))
}

func normCoordFromF32(v float32) NormalizedCoordinate {
	v = f32Bound(-1, v, 1)
	return NormalizedCoordinate(v * 16384)
}

// Float returns the coordinate as a float in [-1, 1].
func (c NormalizedCoordinate) Float() float32 {
	return float32(c) / 16384
}

// Fonts with more variation axes than this are unusable for variations;
// axes beyond the cap cannot be set.
const maxVarCoords = 32

// varCoords is the face's current position in design space, one
// coordinate per axis. Fixed-size so that faces stay copyable without
// sharing mutable state.
type varCoords struct {
	data   [maxVarCoords]NormalizedCoordinate
	length int
}

func (vc *varCoords) coords() []NormalizedCoordinate {
	return vc.data[:vc.length]
}

func (vc *varCoords) isDefault() bool {
	for _, c := range vc.coords() {
		if c != 0 {
			return false
		}
	}
	return true
}
