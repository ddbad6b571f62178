package otface

// Tag is defined by the OpenType spec as an array of four uint8s (length =
// 32 bits) used to identify a table, design-variation axis, script, language
// system, feature, or baseline. Tag bytes are not required to be printable
// ASCII.
type Tag uint32

// T creates a tag from (the first 4 bytes of) a string.
// Strings shorter than 4 bytes are padded with spaces; an empty string
// yields the null tag.
func T(s string) Tag {
	return TagFromBytesLossy([]byte(s))
}

// MakeTag creates a tag from exactly 4 bytes.
func MakeTag(b [4]byte) Tag {
	return Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// TagFromBytesLossy creates a tag from bytes of arbitrary length.
// Empty input yields the null tag. Input shorter than 4 bytes is padded
// with ASCII spaces; bytes after the first 4 are ignored.
func TagFromBytesLossy(b []byte) Tag {
	if len(b) == 0 {
		return Tag(0)
	}
	var padded [4]byte
	padded = [4]byte{' ', ' ', ' ', ' '}
	copy(padded[:], b)
	return MakeTag(padded)
}

// Bytes returns the tag as a 4-element byte array.
func (t Tag) Bytes() [4]byte {
	return [4]byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
}

// IsNull checks if the tag is [0, 0, 0, 0].
func (t Tag) IsNull() bool {
	return t == 0
}

func (t Tag) String() string {
	b := t.Bytes()
	return string(b[:])
}

// tag reads a tag from the first 4 bytes of b. b must hold at least 4 bytes.
func tag(b []byte) Tag {
	return Tag(u32(b))
}
