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

	"seehuhn.de/go/pdfdraw/internal/float"
)

// MatrixOrder selects on which side a transformation is composed with the
// current transformation.
type MatrixOrder uint8

// The possible matrix orders.  Only MatrixOrderPrepend is supported.
const (
	MatrixOrderPrepend MatrixOrder = iota
	MatrixOrderAppend
)

// Levels of the save/restore stack with a fixed meaning.
const (
	levelInitial    = 0 // nothing written yet
	levelPageSpace  = 1 // after the "q" which brackets the whole stream
	levelWorldSpace = 2 // after the "q" which brackets all transformations
)

// AddTransform composes m with the current transformation.  The new
// transformation applies m first, followed by the previous transformation.
//
// The transformation is written to the content stream lazily, before the
// next drawing operation.
func (w *Writer) AddTransform(m matrix.Matrix, order MatrixOrder) {
	if w.Err != nil {
		return
	}
	if order != MatrixOrderPrepend {
		w.Err = ErrAppendOrder
		return
	}

	t := m
	if w.opt.Direction == DirectionDownwards {
		// Coordinates are mirrored in WorldToView, so the direction of
		// rotation must be inverted here.
		t[1] = -m[1]
		t[2] = -m[2]
	}

	s := &w.state
	s.UnrealizedCTM = t.Mul(s.UnrealizedCTM)
	s.WorldTransform = m.Mul(s.WorldTransform)
	s.updateEffective()
}

// TranslateTransform moves the origin of user space to (dx, dy).
func (w *Writer) TranslateTransform(dx, dy float64) {
	w.AddTransform(matrix.Translate(dx, dy), MatrixOrderPrepend)
}

// ScaleTransform scales user space.
func (w *Writer) ScaleTransform(sx, sy float64) {
	w.AddTransform(matrix.Scale(sx, sy), MatrixOrderPrepend)
}

// RotateTransform rotates user space by the given angle in degrees.
func (w *Writer) RotateTransform(angle float64) {
	w.AddTransform(matrix.RotateDeg(angle), MatrixOrderPrepend)
}

// MultiplyTransform composes m with the current transformation.
func (w *Writer) MultiplyTransform(m matrix.Matrix) {
	w.AddTransform(m, MatrixOrderPrepend)
}

// Transform returns the transformation from user space to the
// coordinates of the page, as set by the caller.
func (w *Writer) Transform() matrix.Matrix {
	return w.state.WorldTransform
}

// WorldToView maps a point from user space to the coordinate system
// currently used in the content stream.
//
// WorldToView panics if there is a pending transformation which has not
// been written to the stream.
func (w *Writer) WorldToView(p vec.Vec2) vec.Vec2 {
	s := &w.state
	if s.mustRealizeCTM() {
		panic("graphics: WorldToView called with unrealized transformation")
	}
	x, y := s.WorldTransform.Apply(p.X, p.Y)
	if w.opt.Direction == DirectionDownwards {
		y = w.pageHeight/w.defaultView[3] - y
	}
	x, y = s.InverseEffectiveCTM.Apply(x, y)
	return vec.Vec2{X: x, Y: y}
}

// realizeCTM writes the pending transformation to the stream.
func (w *Writer) realizeCTM() {
	s := &w.state
	if !s.mustRealizeCTM() {
		return
	}
	w.writeMatrix(s.UnrealizedCTM, "cm")
	s.RealizedCTM = s.UnrealizedCTM.Mul(s.RealizedCTM)
	s.UnrealizedCTM = matrix.Identity
	s.updateEffective()
}

// realizeTransform makes sure that the page has started, that all
// transformations are enclosed in a save/restore pair of their own, and
// that there is no pending transformation.
func (w *Writer) realizeTransform() {
	w.beginPage()
	if w.state.Level == levelPageSpace {
		w.beginGraphics()
		w.saveState()
	}
	if w.state.mustRealizeCTM() {
		w.beginGraphics()
		w.realizeCTM()
	}
}

// pageMatrix returns the default view matrix, which maps user space units
// to PDF points and places the origin.
func pageMatrix(opt *Options) (m matrix.Matrix, pageHeight float64) {
	u := opt.Unit.Factor()
	m = matrix.Scale(u, u)

	box := opt.PageBox
	pageHeight = box.URy - box.LLy
	dx, dy := box.LLx, box.LLy
	if opt.Direction == DirectionDownwards {
		tm := opt.TrimMargins
		pageHeight += tm.Top + tm.Bottom
		dx += tm.Left
		dy -= tm.Top
	}
	if dx != 0 || dy != 0 {
		m = m.Mul(matrix.Translate(dx, dy))
	}
	return m, pageHeight
}

func (w *Writer) writeMatrix(m matrix.Matrix, op string) {
	w.emit(
		float.Format(m[0], float.MatrixDigits),
		float.Format(m[1], float.MatrixDigits),
		float.Format(m[2], float.MatrixDigits),
		float.Format(m[3], float.MatrixDigits),
		float.Format(m[4], float.MatrixDigits),
		float.Format(m[5], float.MatrixDigits),
		op)
}
