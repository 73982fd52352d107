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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw/color"
)

// Brush describes how areas are filled.
//
// The possible brushes are [*SolidBrush], [*LinearGradientBrush],
// [*RadialGradientBrush] and [*ImageBrush].
type Brush interface {
	isBrush()
}

// SolidBrush fills with a single color.
type SolidBrush struct {
	Color     color.Color
	Overprint bool
}

// NewSolidBrush returns a brush which fills with c.
func NewSolidBrush(c color.Color) *SolidBrush {
	return &SolidBrush{Color: c}
}

// LinearGradientBrush fills with an axial shading between two points.
type LinearGradientBrush struct {
	From, To               vec.Vec2
	FromColor, ToColor     color.Color
	ExtendStart, ExtendEnd bool
}

// RadialGradientBrush fills with a radial shading between two circles.
type RadialGradientBrush struct {
	Center0, Center1       vec.Vec2
	Radius0, Radius1       float64
	Color0, Color1         color.Color
	ExtendStart, ExtendEnd bool
}

// ImageBrush tiles the area with an image.
type ImageBrush struct {
	Image         *Image
	Width, Height float64 // size of one tile
}

func (*SolidBrush) isBrush()          {}
func (*LinearGradientBrush) isBrush() {}
func (*RadialGradientBrush) isBrush() {}
func (*ImageBrush) isBrush()          {}

// Pattern is a pattern fill, as registered with [Resources.Pattern].
// Brush is a gradient or image brush.  Matrix maps pattern space to the
// default coordinate space of the page.
type Pattern struct {
	Brush  Brush
	Matrix matrix.Matrix
}

// Image is an image or a form XObject.
type Image struct {
	// Key identifies the image to the resource dictionary.
	Key string

	// IsForm marks form XObjects.  Forms are scaled from their natural
	// size, given by Width and Height, to the destination size.
	IsForm        bool
	Width, Height float64
}

// ExtGState describes an extended graphics state dictionary which sets
// opacity and overprint for either stroking or filling.
type ExtGState struct {
	Stroke    bool
	Alpha     float64
	Overprint bool
}
