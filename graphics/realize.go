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
	"strings"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/color"
	"seehuhn.de/go/pdfdraw/font"
	"seehuhn.de/go/pdfdraw/internal/float"
)

// BoldEmphasis is the stroke width used to simulate bold text, as a
// fraction of the font size.
const BoldEmphasis = 0.02

const solidDash = "[]0 d"

// realize prepares the graphics state for drawing a path with the given
// pen and brush.  Either may be nil.
func (w *Writer) realize(pen *Pen, brush Brush) {
	w.beginPage()
	w.beginGraphics()
	w.realizeTransform()
	if pen != nil {
		w.realizePen(pen)
	}
	if brush != nil {
		w.realizeBrush(brush, TextRenderingModeFill, 0)
	}
}

// realizePen writes all stroking parameters of pen which differ from the
// current graphics state.
func (w *Writer) realizePen(pen *Pen) {
	s := &w.state

	if s.LineWidth != pen.Width {
		w.emit(float.Format(pen.Width, float.WidthDigits), "w")
		s.LineWidth = pen.Width
	}
	if s.LineCap != pen.LineCap {
		w.emit(int(pen.LineCap), "J")
		s.LineCap = pen.LineCap
	}
	if s.LineJoin != pen.LineJoin {
		w.emit(int(pen.LineJoin), "j")
		s.LineJoin = pen.LineJoin
	}
	if pen.LineJoin == LineJoinMiter && pen.MiterLimit != 0 && s.MiterLimit != pen.MiterLimit {
		w.emit(float.Format(pen.MiterLimit, float.WidthDigits), "M")
		s.MiterLimit = pen.MiterLimit
	}

	if dash := dashPattern(pen); dash != s.DashPattern {
		w.emit(dash)
		s.DashPattern = dash
	}

	mode := w.opt.ColorMode
	c := pen.Color
	if !color.Equal(s.StrokeColor, c, mode) {
		w.setErr(c.SetStroke(&w.content, mode))
	}
	if s.StrokeAlpha != c.Alpha || s.StrokeOverprint != pen.Overprint {
		w.setExtGState(ExtGState{Stroke: true, Alpha: c.Alpha, Overprint: pen.Overprint})
	}
	s.StrokeColor = c
	s.StrokeAlpha = c.Alpha
	s.StrokeOverprint = pen.Overprint
}

// dashPattern returns the "d" operator which sets the dash pattern of pen.
// Lengths are scaled by the line width.  A pen of width 0 always draws
// solid lines.
func dashPattern(pen *Pen) string {
	dot := pen.Width
	dash := 3 * dot
	style := pen.DashStyle
	if dot == 0 {
		style = DashSolid
	}

	f := func(x float64) string {
		return float.Format(x, float.DashDigits)
	}
	switch style {
	case DashDash:
		return "[" + f(dash) + " " + f(dot) + "]0 d"
	case DashDotted:
		return "[" + f(dot) + "]0 d"
	case DashDashDot:
		return "[" + f(dash) + " " + f(dot) + " " + f(dot) + " " + f(dot) + "]0 d"
	case DashDashDotDot:
		return "[" + f(dash) + " " + f(dot) + " " + f(dot) + " " + f(dot) + " " + f(dot) + " " + f(dot) + "]0 d"
	case DashCustom:
		var parts []string
		for _, x := range pen.DashPattern {
			parts = append(parts, float.Format(x*pen.Width, float.WidthDigits))
		}
		if len(parts)%2 == 1 {
			parts = append(parts, float.Format(0.2*pen.Width, float.WidthDigits))
		}
		phase := float.Format(pen.DashOffset*pen.Width, float.WidthDigits)
		return "[" + strings.Join(parts, " ") + "]" + phase + " d"
	default:
		return solidDash
	}
}

// realizeBrush writes the fill parameters for brush.  For text rendering
// mode 2, a pen of width emSize*BoldEmphasis is realized as well.
func (w *Writer) realizeBrush(brush Brush, mode TextRenderingMode, emSize float64) {
	switch b := brush.(type) {
	case *SolidBrush:
		switch mode {
		case TextRenderingModeFill:
			w.realizeFillColor(b.Color, b.Overprint)
		case TextRenderingModeFillStroke:
			w.realizeFillColor(b.Color, false)
			w.realizePen(NewPen(b.Color, emSize*BoldEmphasis))
		default:
			w.Err = ErrRenderingMode
		}
	case *LinearGradientBrush, *RadialGradientBrush, *ImageBrush:
		if mode != TextRenderingModeFill {
			w.Err = ErrRenderingMode
			return
		}
		if err := pdfdraw.CheckVersion(w.opt.Version, "pattern fill", pdfdraw.V1_3); err != nil {
			w.Err = err
			return
		}
		pat := &Pattern{
			Brush:  brush,
			Matrix: w.state.EffectiveCTM.Mul(w.defaultView),
		}
		name, err := w.res.Pattern(pat)
		if err != nil {
			w.Err = fmt.Errorf("pattern: %w", err)
			return
		}
		w.emit("/Pattern cs")
		w.emitName(name, "scn")
		w.state.FillValid = false
	default:
		w.Err = ErrNilArgument
	}
}

// realizeFillColor writes the fill color and, if needed, the fill opacity.
func (w *Writer) realizeFillColor(c color.Color, overprint bool) {
	s := &w.state
	mode := w.opt.ColorMode
	if !s.FillValid || !color.Equal(s.FillColor, c, mode) {
		w.setErr(c.SetFill(&w.content, mode))
	}
	if s.FillAlpha != c.Alpha || s.FillOverprint != overprint {
		w.setExtGState(ExtGState{Alpha: c.Alpha, Overprint: overprint})
	}
	s.FillColor = c
	s.FillValid = true
	s.FillAlpha = c.Alpha
	s.FillOverprint = overprint
}

// setExtGState selects an extended graphics state.  Opacity and overprint
// are only available from PDF 1.4 onwards; for older versions the change
// is not written.
func (w *Writer) setExtGState(gs ExtGState) {
	if w.opt.Version < pdfdraw.V1_4 {
		w.log.Debug("opacity not supported", "version", w.opt.Version, "alpha", gs.Alpha)
		return
	}
	name, err := w.res.ExtGState(gs)
	if err != nil {
		w.Err = fmt.Errorf("ExtGState: %w", err)
		return
	}
	w.emitName(name, "gs")
	if gs.Alpha < 1 {
		w.res.MarkTransparency()
	}
}

// realizeFont prepares the text state for showing text with the given
// face, size, brush and rendering mode.  The returned handle is used to
// record the glyphs shown.
func (w *Writer) realizeFont(face font.Face, emSize float64, brush Brush, mode TextRenderingMode, typ font.Type) font.Handle {
	w.beginPage()
	w.realizeTransform()
	w.beginText()

	w.realizeBrush(brush, mode, emSize)
	if w.Err != nil {
		return nil
	}

	s := &w.state
	if s.RenderingMode != mode {
		w.emit(int(mode), "Tr")
		s.RenderingMode = mode
	}

	var charSpacing float64
	if mode != TextRenderingModeFill {
		charSpacing = emSize * BoldEmphasis
	}
	if s.CharSpacing != charSpacing {
		w.emit(float.Format(charSpacing, float.WidthDigits), "Tc")
		s.CharSpacing = charSpacing
	}

	name, handle, err := w.res.Font(face, typ)
	if err != nil {
		w.Err = fmt.Errorf("font: %w", err)
		return nil
	}
	if name != s.FontName || emSize != s.FontSize {
		w.emitName(name, float.Format(emSize, float.WidthDigits), "Tf")
		s.FontName = name
		s.FontSize = emSize
	}
	return handle
}
