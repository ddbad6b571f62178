package otface

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Name IDs for the entries usually of interest.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
const (
	NameFamily               = 1
	NameSubfamily            = 2
	NameUniqueID             = 3
	NameFullName             = 4
	NameVersion              = 5
	NamePostScriptName       = 6
	NameTypographicFamily    = 16
	NameTypographicSubfamily = 17
)

// NameRecord is one localized entry of the name table.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	data       fontBinSegm
}

// NameTable holds the font's naming entries.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
type NameTable struct {
	records []NameRecord
}

func parseName(b fontBinSegm) (*NameTable, error) {
	count, err := b.u16(2)
	if err != nil {
		return nil, errFontFormat("size of name table")
	}
	storageOffset, _ := b.u16(4)
	storage, err := b.view(int(storageOffset), b.Size()-int(storageOffset))
	if err != nil {
		return nil, errFontFormat("name table storage offset")
	}
	t := &NameTable{}
	for i := 0; i < int(count); i++ {
		rec, err := b.view(6+i*12, 12)
		if err != nil {
			return nil, errFontFormat("name records incomplete")
		}
		length, _ := rec.u16(8)
		offset, _ := rec.u16(10)
		data, err := storage.view(int(offset), int(length))
		if err != nil {
			continue
		}
		r := NameRecord{data: data}
		r.PlatformID, _ = rec.u16(0)
		r.EncodingID, _ = rec.u16(2)
		r.LanguageID, _ = rec.u16(4)
		r.NameID, _ = rec.u16(6)
		t.records = append(t.records, r)
	}
	return t, nil
}

// Records returns all naming entries in table order.
func (t *NameTable) Records() []NameRecord {
	return t.records
}

// Name returns the first decodable entry for nameID, preferring Unicode
// encodings over the legacy Macintosh Roman one.
func (t *NameTable) Name(nameID uint16) (string, bool) {
	for _, r := range t.records {
		if r.NameID == nameID && r.isUnicode() {
			if s, ok := r.String(); ok {
				return s, true
			}
		}
	}
	for _, r := range t.records {
		if r.NameID == nameID {
			if s, ok := r.String(); ok {
				return s, true
			}
		}
	}
	return "", false
}

func (r NameRecord) isUnicode() bool {
	if r.PlatformID == 0 {
		return true
	}
	return r.PlatformID == 3 && (r.EncodingID == 0 || r.EncodingID == 1 || r.EncodingID == 10)
}

// String decodes the record's raw bytes. Unicode entries are UTF-16BE,
// Macintosh entries Mac Roman; other platform encodings are not decoded.
func (r NameRecord) String() (string, bool) {
	switch {
	case r.isUnicode():
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		s, err := dec.Bytes(r.data)
		if err != nil {
			return "", false
		}
		return string(s), true
	case r.PlatformID == 1 && r.EncodingID == 0:
		s, err := charmap.Macintosh.NewDecoder().Bytes(r.data)
		if err != nil {
			return "", false
		}
		return string(s), true
	}
	return "", false
}
