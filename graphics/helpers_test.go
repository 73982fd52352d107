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

package graphics

import (
	"fmt"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/color"
	"seehuhn.de/go/pdfdraw/font"
)

// testResources hands out consecutive names and records what was
// requested.
type testResources struct {
	extGStates   []ExtGState
	patterns     []*Pattern
	fonts        map[fontKey]pdfdraw.Name
	images       []*Image
	transparency bool
	used         []font.Glyph
}

type fontKey struct {
	face font.Face
	typ  font.Type
}

func (r *testResources) ExtGState(gs ExtGState) (pdfdraw.Name, error) {
	for i, old := range r.extGStates {
		if old == gs {
			return pdfdraw.Name(fmt.Sprintf("GS%d", i+1)), nil
		}
	}
	r.extGStates = append(r.extGStates, gs)
	return pdfdraw.Name(fmt.Sprintf("GS%d", len(r.extGStates))), nil
}

func (r *testResources) Pattern(p *Pattern) (pdfdraw.Name, error) {
	r.patterns = append(r.patterns, p)
	return pdfdraw.Name(fmt.Sprintf("P%d", len(r.patterns))), nil
}

func (r *testResources) Font(face font.Face, typ font.Type) (pdfdraw.Name, font.Handle, error) {
	if r.fonts == nil {
		r.fonts = make(map[fontKey]pdfdraw.Name)
	}
	key := fontKey{face, typ}
	name, ok := r.fonts[key]
	if !ok {
		name = pdfdraw.Name(fmt.Sprintf("F%d", len(r.fonts)+1))
		r.fonts[key] = name
	}
	return name, r, nil
}

func (r *testResources) UseGlyphs(glyphs []font.Glyph) {
	r.used = append(r.used, glyphs...)
}

func (r *testResources) XObject(img *Image) (pdfdraw.Name, error) {
	r.images = append(r.images, img)
	return pdfdraw.Name(fmt.Sprintf("X%d", len(r.images))), nil
}

func (r *testResources) MarkTransparency() {
	r.transparency = true
}

// testFace maps every code point to the glyph with the same number.
// All glyphs are 500 units wide.
type testFace struct {
	colors  map[rune]*font.ColorRecord
	palette []color.Color
	symbol  bool
}

var testMetrics = font.Metrics{
	UnitsPerEm:         1000,
	Ascent:             800,
	Descent:            200,
	UnderlinePosition:  -100,
	UnderlineThickness: 50,
	StrikeoutPosition:  300,
	StrikeoutSize:      50,
}

func (f *testFace) GlyphIndices(text []rune) []font.Glyph {
	res := make([]font.Glyph, len(text))
	for i, r := range text {
		res[i] = font.Glyph{Text: r, GID: glyph.ID(r)}
	}
	return res
}

func (f *testFace) GlyphWidth(glyph.ID) float64 { return 500 }

func (f *testFace) ColorRecords(glyphs []font.Glyph) []*font.ColorRecord {
	if f.colors == nil {
		return nil
	}
	res := make([]*font.ColorRecord, len(glyphs))
	for i, g := range glyphs {
		res[i] = f.colors[g.Text]
	}
	return res
}

func (f *testFace) PaletteColor(idx uint16) color.Color {
	if int(idx) < len(f.palette) {
		return f.palette[idx]
	}
	return color.Black
}

func (f *testFace) Metrics() *font.Metrics {
	m := testMetrics
	return &m
}

func (f *testFace) IsSymbol() bool { return f.symbol }

var pageBox100 = rect.Rect{URx: 100, URy: 100}

// upwards returns options for a 100x100 page with the PDF orientation.
func upwards() *Options {
	return &Options{
		Direction: DirectionUpwards,
		PageBox:   pageBox100,
	}
}

// finish closes w and returns the content stream.
func finish(t testing.TB, w *Writer) string {
	t.Helper()
	data, err := w.Close()
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
