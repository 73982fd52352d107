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

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/color"
)

// StateToken identifies a state saved by [Writer.Save] or
// [Writer.BeginContainer].
type StateToken int

// TextRenderingMode is the PDF text rendering mode, see section 9.3.6 of
// ISO 32000-2:2020.  Only fill (0) and fill-then-stroke (2) are used.
type TextRenderingMode uint8

// The text rendering modes used by the writer.
const (
	TextRenderingModeFill       TextRenderingMode = 0
	TextRenderingModeFillStroke TextRenderingMode = 2
)

// State is the graphics state which has been written to the content
// stream, for one level of the save/restore stack.
//
// A State is plain data.  All operators are written by the [Writer].
type State struct {
	LineWidth   float64
	LineCap     LineCapStyle
	LineJoin    LineJoinStyle
	MiterLimit  float64
	DashPattern string // the complete "d" operator line, without newline

	StrokeColor     color.Color
	StrokeAlpha     float64
	StrokeOverprint bool

	// FillColor is only meaningful if FillValid is set.  Selecting a
	// pattern invalidates the fill color.
	FillColor     color.Color
	FillValid     bool
	FillAlpha     float64
	FillOverprint bool

	FontName      pdfdraw.Name
	FontSize      float64
	RenderingMode TextRenderingMode
	CharSpacing   float64

	// TextPos is the start of the last text run, in stream coordinates,
	// relative to the start of the text object.
	TextPos  vec.Vec2
	ItalicOn bool

	// RealizedCTM is the part of the transformation which has been
	// written to the stream, UnrealizedCTM is the pending part.
	// EffectiveCTM is always UnrealizedCTM.Mul(RealizedCTM).
	// InverseEffectiveCTM is only valid while UnrealizedCTM is the
	// identity.
	RealizedCTM         matrix.Matrix
	UnrealizedCTM       matrix.Matrix
	EffectiveCTM        matrix.Matrix
	InverseEffectiveCTM matrix.Matrix

	// WorldTransform accumulates all transformations as given by the
	// caller, before the page direction is taken into account.
	WorldTransform matrix.Matrix

	Level int
	Token StateToken
}

// NewState returns the initial graphics state of a content stream, as
// defined by the PDF specification.
func NewState() State {
	return State{
		LineWidth:   1,
		LineCap:     LineCapButt,
		LineJoin:    LineJoinMiter,
		MiterLimit:  10,
		DashPattern: solidDash,

		StrokeColor: color.Black,
		StrokeAlpha: 1,

		FillColor: color.Black,
		FillValid: true,
		FillAlpha: 1,

		RealizedCTM:         matrix.Identity,
		UnrealizedCTM:       matrix.Identity,
		EffectiveCTM:        matrix.Identity,
		InverseEffectiveCTM: matrix.Identity,
		WorldTransform:      matrix.Identity,
	}
}

// mustRealizeCTM reports whether there is a pending transformation.
func (s *State) mustRealizeCTM() bool {
	return s.UnrealizedCTM != matrix.Identity
}

// updateEffective recomputes EffectiveCTM and, if the transformation is
// fully realized, its inverse.
func (s *State) updateEffective() {
	s.EffectiveCTM = s.UnrealizedCTM.Mul(s.RealizedCTM)
	if !s.mustRealizeCTM() {
		s.InverseEffectiveCTM = s.EffectiveCTM.Inv()
	}
}
