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

// Package sfntface implements [font.Face] for TrueType and OpenType fonts,
// using [seehuhn.de/go/sfnt] to read the font tables.
//
// All widths and metrics are given in PDF glyph space units, i.e. 1000
// units per em.
package sfntface

import (
	"bytes"
	"errors"
	"io"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdfdraw/color"
	"seehuhn.de/go/pdfdraw/font"
)

// Options allows to customize how a font is presented to the writer.
type Options struct {
	// Symbol marks fonts which use the symbol character set.
	Symbol bool
}

var defaultOptions = &Options{}

// Face is a [font.Face] backed by an sfnt font.
type Face struct {
	Font *sfnt.Font

	lookup  func(rune) glyph.ID
	symbol  bool
	metrics *font.Metrics
}

var _ font.Face = (*Face)(nil)

// Read reads a TrueType or OpenType font from r.
//
// The strikeout metrics are taken from the OS/2 table, where present.
func Read(r io.Reader, opt *Options) (*Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fd := bytes.NewReader(data)

	info, err := sfnt.Read(fd)
	if err != nil {
		return nil, err
	}
	face, err := New(info, opt)
	if err != nil {
		return nil, err
	}

	// A missing or malformed OS/2 table leaves the estimated values in place.
	dir, err := header.Read(fd)
	if err != nil || !dir.Has("OS/2") {
		return face, nil
	}
	tableFd, err := dir.TableReader(fd, "OS/2")
	if err != nil {
		return face, nil
	}
	os2Info, err := os2.Read(tableFd)
	if err != nil {
		return face, nil
	}
	setStrikeout(face.metrics, os2Info, info.FontMatrix[3]*1000)

	return face, nil
}

// New wraps a font which has already been loaded.
// The font must have a usable cmap table.
//
// The parsed font does not carry the OS/2 strikeout fields, so New
// estimates them from the cap height.  Use [Read] to get the values
// stored in the font file.
func New(info *sfnt.Font, opt *Options) (*Face, error) {
	if opt == nil {
		opt = defaultOptions
	}
	if info.CMapTable == nil {
		return nil, errNoCMap
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}

	q := info.FontMatrix[3] * 1000
	m := &font.Metrics{
		UnitsPerEm:         1000,
		Ascent:             float64(info.Ascent) * q,
		Descent:            -float64(info.Descent) * q,
		LineGap:            float64(info.LineGap) * q,
		UnderlinePosition:  float64(info.UnderlinePosition) * q,
		UnderlineThickness: float64(info.UnderlineThickness) * q,
	}
	// Center the line on the capital letters.
	m.StrikeoutSize = m.UnderlineThickness
	m.StrikeoutPosition = float64(info.CapHeight)*q/2 + m.StrikeoutSize/2
	if m.StrikeoutPosition <= m.StrikeoutSize {
		m.StrikeoutPosition = m.Ascent / 3
	}

	return &Face{
		Font:    info,
		lookup:  subtable.Lookup,
		symbol:  opt.Symbol,
		metrics: m,
	}, nil
}

// setStrikeout overrides the strikeout metrics in m with the non-zero
// values from the OS/2 table.  q converts font design units to PDF glyph
// space units.
func setStrikeout(m *font.Metrics, info *os2.Info, q float64) {
	if info.StrikeoutSize > 0 {
		m.StrikeoutSize = float64(info.StrikeoutSize) * q
	}
	if info.StrikeoutPosition > 0 {
		m.StrikeoutPosition = float64(info.StrikeoutPosition) * q
	}
}

// GlyphIndices implements the [font.Face] interface.
func (f *Face) GlyphIndices(text []rune) []font.Glyph {
	res := make([]font.Glyph, len(text))
	for i, r := range text {
		res[i] = font.Glyph{Text: r, GID: f.lookup(r)}
	}
	return res
}

// GlyphWidth implements the [font.Face] interface.
func (f *Face) GlyphWidth(gid glyph.ID) float64 {
	return f.Font.GlyphWidthPDF(gid)
}

// ColorRecords implements the [font.Face] interface.
// Colour layers are not read from sfnt fonts, so this always returns nil.
func (f *Face) ColorRecords([]font.Glyph) []*font.ColorRecord {
	return nil
}

// PaletteColor implements the [font.Face] interface.
func (f *Face) PaletteColor(uint16) color.Color {
	return color.Black
}

// Metrics implements the [font.Face] interface.
func (f *Face) Metrics() *font.Metrics {
	return f.metrics
}

// IsSymbol implements the [font.Face] interface.
func (f *Face) IsSymbol() bool {
	return f.symbol
}

var errNoCMap = errors.New("sfntface: font has no cmap table")
