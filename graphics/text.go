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
	"io"

	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/color"
	"seehuhn.de/go/pdfdraw/font"
	"seehuhn.de/go/pdfdraw/internal/float"
)

// italicSkew is the shear used to simulate italic text, sin(20°).
const italicSkew = 0.34202014332566873

// Alignment is the horizontal alignment of text in its layout box.
type Alignment uint8

// The horizontal alignments.
const (
	AlignNear Alignment = iota
	AlignCenter
	AlignFar
)

// LineAlignment is the vertical alignment of text in its layout box.
type LineAlignment uint8

// The vertical alignments.  With LineAlignBaseline, the y coordinate of
// the layout box gives the position of the baseline.
const (
	LineAlignBaseline LineAlignment = iota
	LineAlignNear
	LineAlignCenter
	LineAlignFar
)

// StringFormat describes how text is placed in its layout box.
// The zero value places the start of the baseline at the given point.
type StringFormat struct {
	Alignment     Alignment
	LineAlignment LineAlignment
}

type textObject interface {
	PDF(w io.Writer) error
}

// DrawString draws a single line of text, starting at (x, y).
func (w *Writer) DrawString(s string, F *font.Font, brush Brush, x, y float64, format *StringFormat) {
	w.DrawStringRect(s, F, brush, x, y, 0, 0, format)
}

// DrawStringRect draws a single line of text, aligned within the box with
// top-left corner (x, y) and the given size.
func (w *Writer) DrawStringRect(s string, F *font.Font, brush Brush, x, y, width, height float64, format *StringFormat) {
	if w.Err != nil {
		return
	}
	if F == nil || F.Face == nil || brush == nil {
		w.Err = ErrNilArgument
		return
	}
	if s == "" {
		return
	}
	if format == nil {
		format = &StringFormat{}
	}

	face := F.Face
	runes := textRunes(s, face)
	glyphs := face.GlyphIndices(runes)
	records := face.ColorRecords(glyphs)
	hasColor := false
	for _, rec := range records {
		if rec != nil {
			hasColor = true
			break
		}
	}

	// Layers of colour glyphs are only accessible by glyph index.
	typ := w.fontType(face, runes)
	if hasColor {
		typ = font.Type0Unicode
	}

	mode := TextRenderingModeFill
	if F.Simulations&font.BoldSimulation != 0 {
		mode = TextRenderingModeFillStroke
	}
	italic := F.Simulations&font.ItalicSimulation != 0

	m := face.Metrics()
	lineSpace := F.Height()
	cellSpace := m.CellSpace()
	cyAscent := lineSpace * m.Ascent / cellSpace
	cyDescent := lineSpace * m.Descent / cellSpace
	textWidth := measure(F, glyphs)

	handle := w.realizeFont(face, F.Size, brush, mode, typ)
	if w.Err != nil {
		return
	}

	switch format.Alignment {
	case AlignCenter:
		x += (width - textWidth) / 2
	case AlignFar:
		x += width - textWidth
	}
	down := w.opt.Direction == DirectionDownwards
	var dy float64
	switch format.LineAlignment {
	case LineAlignNear:
		dy = cyAscent
	case LineAlignCenter:
		dy = cyAscent*3/4/2 + height/2
	case LineAlignFar:
		dy = -cyDescent + height
	}
	if down {
		y += dy
	} else {
		y -= dy
	}

	if !hasColor {
		w.useGlyphs(handle, glyphs)
		w.showText(encodeText(typ, glyphs), vec.Vec2{X: x, Y: y}, italic)
	} else {
		w.showColorRun(F, brush, mode, typ, handle, glyphs, records, x, y, italic)
	}
	if w.Err != nil {
		return
	}

	scale := lineSpace / cellSpace
	if F.Style&font.Underline != 0 {
		pos := m.UnderlinePosition * scale
		thickness := m.UnderlineThickness * scale
		uy := y + pos - thickness
		if down {
			uy = y - pos
		}
		w.DrawRectangle(nil, brush, x, uy, textWidth, thickness)
	}
	if F.Style&font.Strikeout != 0 {
		pos := m.StrikeoutPosition * scale
		size := m.StrikeoutSize * scale
		sy := y + pos - size
		if down {
			sy = y - pos
		}
		w.DrawRectangle(nil, brush, x, sy, textWidth, size)
	}
}

// showColorRun shows a run of glyphs where some glyphs have colour
// layers.  Each colour glyph is shown once per layer, all other glyphs are
// grouped into ordinary runs.
func (w *Writer) showColorRun(F *font.Font, brush Brush, mode TextRenderingMode, typ font.Type, handle font.Handle,
	glyphs []font.Glyph, records []*font.ColorRecord, x, y float64, italic bool) {
	face := F.Face

	showPlain := func(run []font.Glyph) {
		if len(run) == 0 {
			return
		}
		w.realizeFont(face, F.Size, brush, mode, typ)
		if w.Err != nil {
			return
		}
		w.useGlyphs(handle, run)
		w.showText(encodeText(typ, run), vec.Vec2{X: x, Y: y}, italic)
		x += measure(F, run)
	}

	start := 0
	for i, rec := range records {
		if rec == nil {
			continue
		}
		showPlain(glyphs[start:i])
		start = i + 1
		if w.Err != nil {
			return
		}

		for j, layer := range rec.Layers {
			var c color.Color
			if layer.PaletteIndex == font.ForegroundPalette {
				c = brushColor(brush)
			} else {
				c = face.PaletteColor(layer.PaletteIndex)
			}
			w.realizeFont(face, F.Size, &SolidBrush{Color: c}, mode, typ)
			if w.Err != nil {
				return
			}
			lg := []font.Glyph{{GID: layer.GID}}
			w.useGlyphs(handle, lg)
			if j == 0 {
				w.showText(encodeText(typ, lg), vec.Vec2{X: x, Y: y}, italic)
			} else {
				w.emit("0 0 Td")
				w.setErr(encodeText(typ, lg).PDF(&w.content))
				w.content.WriteString(" Tj\n")
			}
		}
		x += measure(F, glyphs[i:i+1])
	}
	showPlain(glyphs[start:])
}

// showText positions the text cursor at pos (in user space) and shows the
// encoded text.  Positions are written relative to the previous text run,
// except when italic simulation is switched on or off.
func (w *Writer) showText(text textObject, pos vec.Vec2, italic bool) {
	p := w.WorldToView(pos)
	s := &w.state
	switch {
	case italic && !s.ItalicOn:
		w.emit(1, 0, float.Format(italicSkew, float.MatrixDigits), 1, coord(p.X), coord(p.Y), "Tm")
		s.ItalicOn = true
		s.TextPos = p
	case !italic && s.ItalicOn:
		w.emit(1, 0, 0, 1, coord(p.X), coord(p.Y), "Tm")
		s.ItalicOn = false
		s.TextPos = p
	default:
		d := p.Sub(s.TextPos)
		if italic {
			// Td moves along the sheared axes of the text matrix.
			d.X -= italicSkew * d.Y
		}
		s.TextPos = p
		w.emit(coord(d.X), coord(d.Y), "Td")
	}
	w.setErr(text.PDF(&w.content))
	w.content.WriteString(" Tj\n")
}

func (w *Writer) useGlyphs(handle font.Handle, glyphs []font.Glyph) {
	if handle != nil {
		handle.UseGlyphs(glyphs)
	}
}

// MeasureString returns the width and the line height of s, in user space
// units.
func (w *Writer) MeasureString(s string, F *font.Font) (width, height float64) {
	if F == nil || F.Face == nil {
		return 0, 0
	}
	glyphs := F.Face.GlyphIndices(textRunes(s, F.Face))
	return measure(F, glyphs), F.Height()
}

// fontType selects single-byte encoding if every character can be
// represented in WinAnsiEncoding.
func (w *Writer) fontType(face font.Face, runes []rune) font.Type {
	if face.IsSymbol() || w.opt.Encoding != EncodingAutomatic {
		return font.Type0Unicode
	}
	for _, r := range runes {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return font.Type0Unicode
		}
	}
	return font.TrueTypeWinAnsi
}

// textRunes converts s to code points.  Symbol fonts expect the characters
// in the range U+F000 to U+F0FF.
func textRunes(s string, face font.Face) []rune {
	runes := []rune(s)
	if face.IsSymbol() {
		for i, r := range runes {
			if r < 0x100 {
				runes[i] = 0xF000 | r
			}
		}
	}
	return runes
}

// measure returns the advance width of a glyph run in user space units.
func measure(F *font.Font, glyphs []font.Glyph) float64 {
	upem := F.Face.Metrics().UnitsPerEm
	var width float64
	for _, g := range glyphs {
		width += F.Face.GlyphWidth(g.GID)
	}
	width = width * F.Size / upem
	if F.Simulations&font.BoldSimulation != 0 {
		width += float64(len(glyphs)) * F.Size * BoldEmphasis
	}
	return width
}

// encodeText returns the string operand of the "Tj" operator.
func encodeText(typ font.Type, glyphs []font.Glyph) textObject {
	if typ == font.TrueTypeWinAnsi {
		res := make(pdfdraw.String, len(glyphs))
		for i, g := range glyphs {
			res[i], _ = charmap.Windows1252.EncodeRune(g.Text)
		}
		return res
	}
	res := make(pdfdraw.HexString, 0, 2*len(glyphs))
	for _, g := range glyphs {
		res = append(res, byte(g.GID>>8), byte(g.GID))
	}
	return res
}

func brushColor(brush Brush) color.Color {
	if b, ok := brush.(*SolidBrush); ok {
		return b.Color
	}
	return color.Black
}
