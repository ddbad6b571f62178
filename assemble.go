package otface

// FaceTables holds the typed views over a face's tables. The three
// mandatory tables are values and always present; every other table is a
// pointer, nil when absent or unusable. Layout tables are kept as raw
// bytes for shaping engines to interpret.
type FaceTables struct {
	Head HeadTable
	Hhea MetricsHeader
	Maxp MaxpTable

	Cbdt *CbdtTable
	Cblc *CblcTable
	Cff  *CffTable
	Cmap *CmapTable
	Glyf *GlyfTable
	Hmtx *HmtxTable
	Loca *LocaTable
	Name *NameTable
	Os2  *Os2Table
	Post *PostTable
	Sbix *SbixTable
	Svg  *SvgTable
	Vhea *MetricsHeader
	Vmtx *HmtxTable
	Vorg *VorgTable

	// OpenType layout and math tables, raw.
	Gdef []byte
	Gpos []byte
	Gsub []byte
	Math []byte

	// Legacy and AAT layout tables, raw.
	Kern []byte
	Ankr []byte
	Feat []byte
	Kerx []byte
	Morx []byte
	Trak []byte

	Avar *AvarTable
	Cff2 *CffTable
	Fvar *FvarTable
	Gvar *GvarTable
	Hvar *HvarTable
	Mvar *MvarTable
	Vvar *HvarTable
}

// assembleTables turns classified raw tables into typed views, honoring
// the dependencies between tables. The mandatory head, hhea and maxp
// tables are parsed first; any failure aborts with a table-named error
// and no partially assembled result. An optional table that fails to
// parse is logged and treated as absent, as are optional tables whose
// prerequisite is absent (vmtx needs vhea, glyf needs loca, CBDT needs
// CBLC).
func assembleTables(raw RawTables) (FaceTables, error) {
	t := FaceTables{}
	var err error
	if t.Head, err = parseHead(raw.Head); err != nil {
		return FaceTables{}, ErrNoHeadTable
	}
	if t.Hhea, err = parseHhea(raw.Hhea); err != nil {
		return FaceTables{}, ErrNoHheaTable
	}
	if t.Maxp, err = parseMaxp(raw.Maxp); err != nil {
		return FaceTables{}, ErrNoMaxpTable
	}
	numGlyphs := t.Maxp.NumGlyphs
	if raw.Hmtx != nil {
		t.Hmtx = optional(parseHmtx(raw.Hmtx, t.Hhea.NumberOfMetrics, numGlyphs))
	}
	if raw.Vhea != nil {
		if vhea, err := parseVhea(raw.Vhea); err == nil {
			t.Vhea = &vhea
			if raw.Vmtx != nil {
				t.Vmtx = optional(parseHmtx(raw.Vmtx, vhea.NumberOfMetrics, numGlyphs))
			}
		} else {
			trace().Debugf("face has no usable vhea table")
		}
	}
	if raw.Loca != nil {
		t.Loca = optional(parseLoca(raw.Loca, numGlyphs, t.Head.IndexToLocationFormat))
		if t.Loca != nil && raw.Glyf != nil {
			t.Glyf = parseGlyf(raw.Glyf, t.Loca)
		}
	}
	if raw.Cff != nil {
		t.Cff = optional(parseCff(raw.Cff))
	}
	if raw.Cff2 != nil {
		t.Cff2 = optional(parseCff2(raw.Cff2))
	}
	if raw.Cmap != nil {
		t.Cmap = optional(parseCmap(raw.Cmap))
	}
	if raw.Name != nil {
		t.Name = optional(parseName(raw.Name))
	}
	if raw.Os2 != nil {
		t.Os2 = optional(parseOs2(raw.Os2))
	}
	if raw.Post != nil {
		t.Post = optional(parsePost(raw.Post, numGlyphs))
	}
	if raw.Vorg != nil {
		t.Vorg = optional(parseVorg(raw.Vorg))
	}
	if raw.Cblc != nil {
		t.Cblc = optional(parseCblc(raw.Cblc))
		if t.Cblc != nil && raw.Cbdt != nil {
			t.Cbdt = parseCbdt(raw.Cbdt, t.Cblc)
		}
	}
	if raw.Sbix != nil {
		t.Sbix = optional(parseSbix(raw.Sbix, numGlyphs))
	}
	if raw.Svg != nil {
		t.Svg = optional(parseSvg(raw.Svg))
	}
	if raw.Fvar != nil {
		t.Fvar = optional(parseFvar(raw.Fvar))
	}
	if raw.Avar != nil {
		t.Avar = optional(parseAvar(raw.Avar))
	}
	if raw.Gvar != nil {
		t.Gvar = optional(parseGvar(raw.Gvar))
	}
	if raw.Hvar != nil {
		t.Hvar = optional(parseHvar(raw.Hvar))
	}
	if raw.Vvar != nil {
		t.Vvar = optional(parseHvar(raw.Vvar))
	}
	if raw.Mvar != nil {
		t.Mvar = optional(parseMvar(raw.Mvar))
	}
	t.Gdef = raw.Gdef
	t.Gpos = raw.Gpos
	t.Gsub = raw.Gsub
	t.Math = raw.Math
	t.Kern = raw.Kern
	t.Ankr = raw.Ankr
	t.Feat = raw.Feat
	t.Kerx = raw.Kerx
	t.Morx = raw.Morx
	t.Trak = raw.Trak
	return t, nil
}

// optional discards the error of an optional table parse, logging it and
// reporting the table as absent.
func optional[T any](table *T, err error) *T {
	if err != nil {
		trace().Debugf("optional table dropped: %v", err)
		return nil
	}
	return table
}
