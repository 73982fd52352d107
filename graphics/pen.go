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
	"slices"

	"seehuhn.de/go/pdfdraw/color"
)

// LineCapStyle is the style of the end of a line.
type LineCapStyle uint8

// Possible values for LineCapStyle.
// See section 8.4.3.3 of ISO 32000-2:2020.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the corner of a line.
type LineJoinStyle uint8

// Possible values for LineJoinStyle.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// DashStyle selects the dash pattern of a [Pen].
type DashStyle uint8

// The predefined dash styles scale with the line width: a dot is as long
// as the line is wide, a dash is three times as long.
const (
	DashSolid DashStyle = iota
	DashDash
	DashDotted
	DashDashDot
	DashDashDotDot
	DashCustom // use Pen.DashPattern and Pen.DashOffset
)

// Pen describes how lines are stroked.
type Pen struct {
	Color      color.Color
	Width      float64
	LineCap    LineCapStyle
	LineJoin   LineJoinStyle
	MiterLimit float64

	DashStyle DashStyle

	// DashPattern and DashOffset are used for DashCustom.  Both are given
	// in multiples of the line width.
	DashPattern []float64
	DashOffset  float64

	Overprint bool
}

// NewPen returns a solid pen with the given color and width.
func NewPen(c color.Color, width float64) *Pen {
	return &Pen{
		Color:      c,
		Width:      width,
		MiterLimit: 10,
	}
}

// Clone returns a copy of the pen which does not share the dash pattern.
func (p *Pen) Clone() *Pen {
	res := *p
	res.DashPattern = slices.Clone(p.DashPattern)
	return &res
}
