/*
Package otface provides pull-style access to TrueType, OpenType and AAT
font containers.

Font access starts with a Face, created by Parse. A Face locates a single
font face inside a (possibly collection) font file, classifies the face's
binary tables, assembles typed views over them, and answers metric, outline
and image queries by combining the optional tables deterministically.

The intended audience for this package are:

▪︎ text shapers and glyph rasterizers that need validated access to a font's
tables and metrics

▪︎ any application needing the internal structure of a font file available
without copying it

This package is *not* intended for font manipulation applications: the input
bytes are never modified and never copied. All typed views borrow from the
buffer handed to Parse, so that buffer must outlive the Face and everything
derived from it. The one piece of mutable state is the in-memory variation
coordinate vector, see Face.SetVariation.
*/
package otface

import (
	"github.com/npillmayer/otface/core"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces to a global core-tracer.
func trace() tracing.Trace {
	return gtrace.CoreTracer
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(x string) error {
	return core.Error(core.EINVALID, "font format: %s", x)
}

// Face parsing error kinds. Directory-level failures are reported with one
// of these; a malformed *optional* table never produces an error but
// degrades to an absent table instead.
var (
	// ErrMalformedFont flags a structural violation: a truncated table
	// directory, bad collection offsets, or arithmetic overflow while
	// computing a byte range.
	ErrMalformedFont = core.Error(core.EINVALID, "malformed font")

	// ErrUnknownMagic flags an unrecognized font magic, or a collection
	// nested inside a collection.
	ErrUnknownMagic = core.Error(core.EINVALID, "unknown magic")

	// ErrFaceIndexOutOfBounds flags a face index not present in the font.
	ErrFaceIndexOutOfBounds = core.Error(core.EMISSING, "face index is out of bounds")

	// ErrNoHeadTable flags a missing or malformed head table.
	ErrNoHeadTable = core.Error(core.EINVALID, "the head table is missing or malformed")

	// ErrNoHheaTable flags a missing or malformed hhea table.
	ErrNoHheaTable = core.Error(core.EINVALID, "the hhea table is missing or malformed")

	// ErrNoMaxpTable flags a missing or malformed maxp table.
	ErrNoMaxpTable = core.Error(core.EINVALID, "the maxp table is missing or malformed")
)
