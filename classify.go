package otface

// Config enumerates the optional table families a Face will interpret.
// A disabled family's tables are never classified, so the assembler never
// sees them and the corresponding queries report absence.
type Config struct {
	OpenTypeLayout bool // GDEF, GPOS, GSUB, MATH (raw access only)
	AppleLayout    bool // ankr, feat, kerx, morx, trak (raw access only)
	VariableFonts  bool // avar, CFF2, fvar, gvar, HVAR, MVAR, VVAR
	GlyphNames     bool // glyph names via post
	ColorFonts     bool // sbix, CBLC, CBDT, SVG
}

// DefaultConfig enables every optional table family.
func DefaultConfig() Config {
	return Config{
		OpenTypeLayout: true,
		AppleLayout:    true,
		VariableFonts:  true,
		GlyphNames:     true,
		ColorFonts:     true,
	}
}

// RawTables is the classified table directory of a face: one raw byte slice
// per supported tag. Optional slots are nil when the table is absent or its
// range is invalid. The three mandatory slots default to an empty slice
// instead, so that a missing or broken head/hhea/maxp surfaces as its own
// table-named error at assembly rather than a generic one here.
type RawTables struct {
	// Mandatory tables.
	Head fontBinSegm
	Hhea fontBinSegm
	Maxp fontBinSegm

	Cbdt fontBinSegm
	Cblc fontBinSegm
	Cff  fontBinSegm
	Cmap fontBinSegm
	Glyf fontBinSegm
	Hmtx fontBinSegm
	Kern fontBinSegm
	Loca fontBinSegm
	Name fontBinSegm
	Os2  fontBinSegm
	Post fontBinSegm
	Sbix fontBinSegm
	Svg  fontBinSegm
	Vhea fontBinSegm
	Vmtx fontBinSegm
	Vorg fontBinSegm

	Gdef fontBinSegm
	Gpos fontBinSegm
	Gsub fontBinSegm
	Math fontBinSegm

	Ankr fontBinSegm
	Feat fontBinSegm
	Kerx fontBinSegm
	Morx fontBinSegm
	Trak fontBinSegm

	Avar fontBinSegm
	Cff2 fontBinSegm
	Fvar fontBinSegm
	Gvar fontBinSegm
	Hvar fontBinSegm
	Mvar fontBinSegm
	Vvar fontBinSegm
}

// classifyTables walks the table directory exactly once and sorts every
// record's byte range into its named slot. A record whose range overflows
// or does not fit the buffer is treated as absent, not as fatal: a broken
// optional table must not prevent use of the rest of the font.
func classifyTables(rf RawFace, cfg Config) RawTables {
	tables := RawTables{}
	n := rf.NumTables()
	for i := 0; i < n; i++ {
		rec, _ := rf.Record(i)
		end, ok := addU32(rec.Offset, rec.Length)
		if !ok {
			continue
		}
		data, err := rf.data.view(int(rec.Offset), int(end-rec.Offset))
		if err != nil {
			data = nil
		}
		switch rec.Tag {
		case T("CBDT"):
			if cfg.ColorFonts {
				tables.Cbdt = data
			}
		case T("CBLC"):
			if cfg.ColorFonts {
				tables.Cblc = data
			}
		case T("CFF "):
			tables.Cff = data
		case T("CFF2"):
			if cfg.VariableFonts {
				tables.Cff2 = data
			}
		case T("GDEF"):
			if cfg.OpenTypeLayout {
				tables.Gdef = data
			}
		case T("GPOS"):
			if cfg.OpenTypeLayout {
				tables.Gpos = data
			}
		case T("GSUB"):
			if cfg.OpenTypeLayout {
				tables.Gsub = data
			}
		case T("MATH"):
			if cfg.OpenTypeLayout {
				tables.Math = data
			}
		case T("HVAR"):
			if cfg.VariableFonts {
				tables.Hvar = data
			}
		case T("MVAR"):
			if cfg.VariableFonts {
				tables.Mvar = data
			}
		case T("OS/2"):
			tables.Os2 = data
		case T("SVG "):
			if cfg.ColorFonts {
				tables.Svg = data
			}
		case T("VORG"):
			tables.Vorg = data
		case T("VVAR"):
			if cfg.VariableFonts {
				tables.Vvar = data
			}
		case T("ankr"):
			if cfg.AppleLayout {
				tables.Ankr = data
			}
		case T("avar"):
			if cfg.VariableFonts {
				tables.Avar = data
			}
		case T("cmap"):
			tables.Cmap = data
		case T("feat"):
			if cfg.AppleLayout {
				tables.Feat = data
			}
		case T("fvar"):
			if cfg.VariableFonts {
				tables.Fvar = data
			}
		case T("glyf"):
			tables.Glyf = data
		case T("gvar"):
			if cfg.VariableFonts {
				tables.Gvar = data
			}
		case T("head"):
			tables.Head = orEmpty(data)
		case T("hhea"):
			tables.Hhea = orEmpty(data)
		case T("hmtx"):
			tables.Hmtx = data
		case T("kern"):
			tables.Kern = data
		case T("kerx"):
			if cfg.AppleLayout {
				tables.Kerx = data
			}
		case T("loca"):
			tables.Loca = data
		case T("maxp"):
			tables.Maxp = orEmpty(data)
		case T("morx"):
			if cfg.AppleLayout {
				tables.Morx = data
			}
		case T("name"):
			tables.Name = data
		case T("post"):
			tables.Post = data
		case T("sbix"):
			if cfg.ColorFonts {
				tables.Sbix = data
			}
		case T("trak"):
			if cfg.AppleLayout {
				tables.Trak = data
			}
		case T("vhea"):
			tables.Vhea = data
		case T("vmtx"):
			tables.Vmtx = data
		default:
			// Unrecognized tags stay reachable through RawFace.Table.
		}
	}
	return tables
}

func orEmpty(b fontBinSegm) fontBinSegm {
	if b == nil {
		return fontBinSegm{}
	}
	return b
}
