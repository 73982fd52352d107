// seehuhn.de/go/pdfdraw - generate PDF content streams from drawing calls
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package font describes the fonts used by the content stream writer.
//
// The writer does not parse font files.  Glyph lookup, advance widths,
// vertical metrics and colour layers are obtained through the [Face]
// interface.  [seehuhn.de/go/pdfdraw/font/sfntface] implements Face for
// TrueType and OpenType fonts.
package font

import (
	"strconv"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdraw/color"
)

// Glyph pairs a code point with the glyph used to show it.
type Glyph struct {
	Text rune
	GID  glyph.ID
}

// ForegroundPalette is the palette index which stands for the colour of
// the brush used to draw the text.
const ForegroundPalette = 0xFFFF

// Layer is one layer of a colour glyph.
type Layer struct {
	GID          glyph.ID
	PaletteIndex uint16
}

// ColorRecord describes a colour glyph as a stack of layers.
// The first layer is painted first.
type ColorRecord struct {
	Layers []Layer
}

// Metrics holds the vertical metrics of a face, in the same units as the
// glyph widths.  Descent is positive for glyph parts below the baseline.
// UnderlinePosition is normally negative.
type Metrics struct {
	UnitsPerEm float64
	Ascent     float64
	Descent    float64
	LineGap    float64

	UnderlinePosition  float64
	UnderlineThickness float64
	StrikeoutPosition  float64
	StrikeoutSize      float64
}

// CellSpace returns the distance between consecutive baselines.
func (m *Metrics) CellSpace() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Face gives access to the glyphs and metrics of a font.
//
// Implementations are used as map keys by resource dictionaries and must
// be comparable, typically by being pointer types.
type Face interface {
	// GlyphIndices maps code points to glyphs.  Code points without a glyph
	// are mapped to glyph 0.
	GlyphIndices(text []rune) []Glyph

	// GlyphWidth returns the advance width of a glyph.
	GlyphWidth(gid glyph.ID) float64

	// ColorRecords returns the colour record for each glyph, or nil for
	// glyphs without colour layers.  The result is either nil or has the
	// same length as glyphs.
	ColorRecords(glyphs []Glyph) []*ColorRecord

	// PaletteColor returns an entry of the colour palette.
	PaletteColor(index uint16) color.Color

	Metrics() *Metrics

	// IsSymbol reports whether the font uses the symbol character set,
	// where code points are found in the range U+F000 to U+F0FF.
	IsSymbol() bool
}

// Style selects text decorations.
type Style int

// These are the supported text decorations.
const (
	Underline Style = 1 << iota
	Strikeout
)

// Simulations selects effects which are simulated when the font face
// does not provide them.
type Simulations int

// The supported simulations.
const (
	BoldSimulation Simulations = 1 << iota
	ItalicSimulation
)

// Font is a face at a given size.
type Font struct {
	Face        Face
	Size        float64 // em size, in user space units
	Style       Style
	Simulations Simulations
}

// Height returns the line spacing of the font in user space units.
func (f *Font) Height() float64 {
	m := f.Face.Metrics()
	return m.CellSpace() * f.Size / m.UnitsPerEm
}

// Type describes how glyphs are selected in the content stream.
type Type int

// These are the supported font types.
const (
	// TrueTypeWinAnsi is a simple TrueType font with WinAnsiEncoding.
	// Text is written as single bytes.
	TrueTypeWinAnsi Type = iota + 1

	// Type0Unicode is a composite font with Identity-H encoding.
	// Text is written as two-byte glyph indices.
	Type0Unicode
)

func (t Type) String() string {
	switch t {
	case TrueTypeWinAnsi:
		return "TrueTypeWinAnsi"
	case Type0Unicode:
		return "Type0Unicode"
	default:
		return "font.Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Handle records which glyphs of an embedded font are used, so that the
// owner of the font can subset it.
type Handle interface {
	UseGlyphs(glyphs []Glyph)
}
