package otface

import "sort"

// Value tags of the metrics adjusted by MVAR.
var (
	tagHorizontalAscender  = T("hasc")
	tagHorizontalDescender = T("hdsc")
	tagHorizontalLineGap   = T("hlgp")
	tagHorizontalClipAsc   = T("hcla")
	tagHorizontalClipDesc  = T("hcld")
	tagVerticalAscender    = T("vasc")
	tagVerticalDescender   = T("vdsc")
	tagVerticalLineGap     = T("vlgp")
	tagUnderlineOffset     = T("undo")
	tagUnderlineSize       = T("unds")
	tagStrikeoutOffset     = T("stro")
	tagStrikeoutSize       = T("strs")
	tagXHeight             = T("xhgt")
	tagCapHeight           = T("cpht")
)

// MvarTable is the metrics-variation table. It maps four-byte value tags
// to delta-set indexes in an item variation store, adjusting the global
// metrics of a variable font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/mvar
type MvarTable struct {
	store      itemVariationStore
	records    fontBinSegm
	recordSize int
	count      int
}

func parseMvar(b fontBinSegm) (*MvarTable, error) {
	version, err := b.u32(0)
	if err != nil || version != 0x00010000 {
		return nil, errFontFormat("MVAR table version")
	}
	recordSize, _ := b.u16(6)
	count, _ := b.u16(8)
	storeOffset, _ := b.u16(10)
	if recordSize < 8 || count == 0 {
		return nil, errFontFormat("MVAR value records")
	}
	storeData, err := b.view(int(storeOffset), b.Size()-int(storeOffset))
	if err != nil {
		return nil, errFontFormat("MVAR variation store offset")
	}
	store, err := parseItemVariationStore(storeData)
	if err != nil {
		return nil, err
	}
	records, err := b.view(12, int(count)*int(recordSize))
	if err != nil {
		return nil, errFontFormat("MVAR value records bounds")
	}
	return &MvarTable{
		store:      store,
		records:    records,
		recordSize: int(recordSize),
		count:      int(count),
	}, nil
}

// MetricOffset returns the delta for a metric value tag at coords.
// Records are sorted by tag, so a binary search finds the entry.
func (t *MvarTable) MetricOffset(valueTag Tag, coords []NormalizedCoordinate) (float32, bool) {
	i := sort.Search(t.count, func(i int) bool {
		return tag(t.records[i*t.recordSize:]) >= valueTag
	})
	if i == t.count || tag(t.records[i*t.recordSize:]) != valueTag {
		return 0, false
	}
	outer, err1 := t.records.u16(i*t.recordSize + 4)
	inner, err2 := t.records.u16(i*t.recordSize + 6)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return t.store.Delta(outer, inner, coords)
}
