package otface

import "sort"

// Code comments often cite passages from the OpenType specification
// version 1.9; see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// Font magic values.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#organization-of-an-opentype-font
const (
	magicTrueType       = 0x00010000
	magicAppleTrueType  = 0x74727565 // 'true'
	magicOpenType       = 0x4F54544F // 'OTTO'
	magicFontCollection = 0x74746366 // 'ttcf'
)

func isFontMagic(m uint32) bool {
	return m == magicTrueType || m == magicAppleTrueType || m == magicOpenType
}

// TableRecord is a raw entry of a face's table directory, with a fixed
// 16-byte layout: tag(4) + checksum(4) + offset(4) + length(4).
// The checksum is carried but never validated.
type TableRecord struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

const tableRecordSize = 16

// RawFace is a single face of a font file, reduced to its table directory.
// It does not interpret table contents; all you can get from it is the raw
// bytes of a requested table. RawFace borrows the input buffer and is only
// valid as long as that buffer is.
type RawFace struct {
	data    fontBinSegm
	records fontBinSegm // numTables raw table records, 16 bytes each
}

// parseRawFace locates the table directory of face number index inside data.
//
// A font collection carries a header with per-face offsets; a plain font is
// treated as a one-element collection, i.e. only index 0 is valid. A face
// inside a collection must not itself be a collection.
func parseRawFace(data fontBinSegm, index int) (RawFace, error) {
	magic, err := data.u32(0)
	if err != nil {
		return RawFace{}, ErrUnknownMagic
	}
	pos := 4
	if magic == magicFontCollection {
		// ttcf header: magic(4) + version(4) + numFonts(4) + numFonts × offset(4)
		numFonts, err := data.u32(8)
		if err != nil {
			return RawFace{}, ErrMalformedFont
		}
		offsets, err := data.view(12, 4*int(numFonts))
		if err != nil {
			return RawFace{}, ErrMalformedFont
		}
		if index < 0 || uint32(index) >= numFonts {
			return RawFace{}, ErrFaceIndexOutOfBounds
		}
		faceOffset := u32(offsets[4*index:])
		// The face offset counts from the start of the font data, so it must
		// not point back into the collection header we just walked.
		pos = 12 + 4*int(numFonts)
		if faceOffset < uint32(pos) {
			return RawFace{}, ErrMalformedFont
		}
		pos = int(faceOffset)
		// Each face in a collection starts with its own magic, and a face
		// cannot be another collection. An offset pointing past the end of
		// the buffer is a directory defect, not an unknown magic.
		magic, err = data.u32(pos)
		if err != nil {
			return RawFace{}, ErrMalformedFont
		}
		if magic == magicFontCollection || !isFontMagic(magic) {
			return RawFace{}, ErrUnknownMagic
		}
		pos += 4
	} else if !isFontMagic(magic) {
		return RawFace{}, ErrUnknownMagic
	} else if index != 0 {
		return RawFace{}, ErrFaceIndexOutOfBounds
	}
	numTables, err := data.u16(pos)
	if err != nil {
		return RawFace{}, ErrMalformedFont
	}
	pos += 2
	pos += 6 // searchRange (u16) + entrySelector (u16) + rangeShift (u16)
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each. An unsorted directory
	// is not rejected here; it simply makes Table lookups miss.
	records, err := data.view(pos, tableRecordSize*int(numTables))
	if err != nil {
		return RawFace{}, ErrMalformedFont
	}
	return RawFace{data: data, records: records}, nil
}

// NumTables returns the number of records in the face's table directory.
func (rf RawFace) NumTables() int {
	return len(rf.records) / tableRecordSize
}

// Record returns table record number i of the face's table directory.
func (rf RawFace) Record(i int) (TableRecord, bool) {
	b, err := rf.records.view(i*tableRecordSize, tableRecordSize)
	if err != nil {
		return TableRecord{}, false
	}
	return TableRecord{
		Tag:      tag(b),
		Checksum: u32(b[4:]),
		Offset:   u32(b[8:]),
		Length:   u32(b[12:]),
	}, true
}

// recordTag returns the tag of record i without materializing the record.
func (rf RawFace) recordTag(i int) Tag {
	return tag(rf.records[i*tableRecordSize:])
}

// Table returns the raw bytes of the table named by tag, or nil if the
// table is absent or its declared range does not fit the input buffer.
// The directory is searched binarily, relying on the spec-mandated tag
// ordering of the records.
func (rf RawFace) Table(t Tag) []byte {
	n := rf.NumTables()
	i := sort.Search(n, func(i int) bool {
		return rf.recordTag(i) >= t
	})
	if i >= n || rf.recordTag(i) != t {
		return nil
	}
	rec, _ := rf.Record(i)
	end, ok := addU32(rec.Offset, rec.Length)
	if !ok {
		return nil
	}
	b, err := rf.data.view(int(rec.Offset), int(end-rec.Offset))
	if err != nil {
		return nil
	}
	return b
}

// FontsInCollection returns the number of faces stored in a font collection.
// ok is false if data is not a font collection.
func FontsInCollection(data []byte) (n int, ok bool) {
	b := fontBinSegm(data)
	magic, err := b.u32(0)
	if err != nil || magic != magicFontCollection {
		return 0, false
	}
	numFonts, err := b.u32(8) // skipping the 4-byte version field
	if err != nil {
		return 0, false
	}
	return int(numFonts), true
}
