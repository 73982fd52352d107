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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw/curve"
)

// DrawLine draws a straight line from (x1, y1) to (x2, y2).
func (w *Writer) DrawLine(pen *Pen, x1, y1, x2, y2 float64) {
	w.DrawLines(pen, []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}})
}

// DrawLines draws a polyline through the given points.
func (w *Writer) DrawLines(pen *Pen, points []vec.Vec2) {
	if w.Err != nil {
		return
	}
	if pen == nil {
		w.Err = ErrNilArgument
		return
	}
	if len(points) == 0 {
		return
	}

	w.realize(pen, nil)
	if w.Err != nil {
		return
	}
	w.moveTo(points[0])
	for _, p := range points[1:] {
		w.lineTo(p)
	}
	w.emit("S")
}

// DrawBezier draws a cubic Bézier curve.
func (w *Writer) DrawBezier(pen *Pen, p0, p1, p2, p3 vec.Vec2) {
	w.DrawBeziers(pen, []vec.Vec2{p0, p1, p2, p3})
}

// DrawBeziers draws a sequence of connected cubic Bézier curves.
// The number of points must be 3n+1.
func (w *Writer) DrawBeziers(pen *Pen, points []vec.Vec2) {
	if w.Err != nil {
		return
	}
	if pen == nil {
		w.Err = ErrNilArgument
		return
	}
	if len(points) == 0 {
		return
	}
	if (len(points)-1)%3 != 0 {
		w.Err = ErrBezierPoints
		return
	}

	w.realize(pen, nil)
	if w.Err != nil {
		return
	}
	w.moveTo(points[0])
	for i := 1; i < len(points); i += 3 {
		w.curveTo(curve.Bezier{C1: points[i], C2: points[i+1], P: points[i+2]})
	}
	w.emit("S")
}

// DrawCurve draws a cardinal spline through the given points.
// A tension of 0.5 gives a natural looking curve.
func (w *Writer) DrawCurve(pen *Pen, points []vec.Vec2, tension float64) {
	if w.Err != nil {
		return
	}
	if pen == nil {
		w.Err = ErrNilArgument
		return
	}
	if len(points) == 0 {
		return
	}
	if len(points) < 2 {
		w.Err = ErrNotEnoughPoints
		return
	}

	w.realize(pen, nil)
	if w.Err != nil {
		return
	}
	w.moveTo(points[0])
	for _, s := range curve.Cardinal(points, tension) {
		w.curveTo(s)
	}
	w.strokeFill(pen, nil, FillEvenOdd, false)
}

// DrawArc draws an arc of the ellipse inscribed in the given rectangle.
// Angles are in degrees.
func (w *Writer) DrawArc(pen *Pen, x, y, width, height, startAngle, sweepAngle float64) {
	if w.Err != nil {
		return
	}
	if pen == nil {
		w.Err = ErrNilArgument
		return
	}

	w.realize(pen, nil)
	if w.Err != nil {
		return
	}
	start, segs := curve.Arc(x, y, width, height, startAngle, sweepAngle)
	w.moveTo(start)
	for _, s := range segs {
		w.curveTo(s)
	}
	w.strokeFill(pen, nil, FillEvenOdd, false)
}

// DrawRectangle draws a rectangle.  At least one of pen and brush must be
// given.
func (w *Writer) DrawRectangle(pen *Pen, brush Brush, x, y, width, height float64) {
	w.DrawRectangles(pen, brush, []rect.Rect{{LLx: x, LLy: y, URx: x + width, URy: y + height}})
}

// DrawRectangles draws a series of rectangles, given by their corners in
// user space.
func (w *Writer) DrawRectangles(pen *Pen, brush Brush, rects []rect.Rect) {
	if w.Err != nil {
		return
	}
	if pen == nil && brush == nil {
		w.Err = ErrNoPenOrBrush
		return
	}
	if len(rects) == 0 {
		return
	}

	w.realize(pen, brush)
	if w.Err != nil {
		return
	}
	for _, r := range rects {
		w.rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
	}
	w.strokeFill(pen, brush, FillWinding, false)
}

// rectangle writes an "re" operator.  The corner which is at the bottom
// of the page is used as the origin.
func (w *Writer) rectangle(x, y, width, height float64) {
	if w.opt.Direction == DirectionDownwards {
		y += height
	}
	px, py := w.point(vec.Vec2{X: x, Y: y})
	w.emit(px, py, coord(width), coord(height), "re")
}

// DrawRoundedRectangle draws a rectangle with rounded corners.  The
// corners are quarters of an ellipse of the given size.
func (w *Writer) DrawRoundedRectangle(pen *Pen, brush Brush, x, y, width, height, ellipseWidth, ellipseHeight float64) {
	path := &Path{}
	path.AddRoundedRectangle(x, y, width, height, ellipseWidth, ellipseHeight)
	w.DrawPath(pen, brush, path)
}

// DrawEllipse draws the ellipse inscribed in the given rectangle.
func (w *Writer) DrawEllipse(pen *Pen, brush Brush, x, y, width, height float64) {
	if w.Err != nil {
		return
	}
	if pen == nil && brush == nil {
		w.Err = ErrNoPenOrBrush
		return
	}

	w.realize(pen, brush)
	if w.Err != nil {
		return
	}
	start, segs := curve.Ellipse(x, y, width, height)
	w.moveTo(start)
	for _, s := range segs {
		w.curveTo(s)
	}
	w.strokeFill(pen, brush, FillWinding, true)
}

// DrawPolygon draws a closed polygon.
func (w *Writer) DrawPolygon(pen *Pen, brush Brush, points []vec.Vec2, mode FillMode) {
	if w.Err != nil {
		return
	}
	if pen == nil && brush == nil {
		w.Err = ErrNoPenOrBrush
		return
	}
	if len(points) == 0 {
		return
	}
	if len(points) < 2 {
		w.Err = ErrNotEnoughPoints
		return
	}

	w.realize(pen, brush)
	if w.Err != nil {
		return
	}
	w.moveTo(points[0])
	for _, p := range points[1:] {
		w.lineTo(p)
	}
	w.strokeFill(pen, brush, mode, true)
}

// DrawPie draws a sector of the ellipse inscribed in the given rectangle.
// Angles are in degrees.
func (w *Writer) DrawPie(pen *Pen, brush Brush, x, y, width, height, startAngle, sweepAngle float64) {
	if w.Err != nil {
		return
	}
	if pen == nil && brush == nil {
		w.Err = ErrNoPenOrBrush
		return
	}

	w.realize(pen, brush)
	if w.Err != nil {
		return
	}
	w.moveTo(vec.Vec2{X: x + width/2, Y: y + height/2})
	start, segs := curve.Arc(x, y, width, height, startAngle, sweepAngle)
	w.lineTo(start)
	for _, s := range segs {
		w.curveTo(s)
	}
	w.strokeFill(pen, brush, FillEvenOdd, true)
}

// DrawClosedCurve draws a closed cardinal spline through the given points.
func (w *Writer) DrawClosedCurve(pen *Pen, brush Brush, points []vec.Vec2, tension float64, mode FillMode) {
	if w.Err != nil {
		return
	}
	if pen == nil && brush == nil {
		w.Err = ErrNoPenOrBrush
		return
	}
	if len(points) == 0 {
		return
	}
	if len(points) < 2 {
		w.Err = ErrNotEnoughPoints
		return
	}

	w.realize(pen, brush)
	if w.Err != nil {
		return
	}
	w.moveTo(points[0])
	for _, s := range curve.ClosedCardinal(points, tension) {
		w.curveTo(s)
	}
	w.strokeFill(pen, brush, mode, true)
}

// DrawPath draws a path, using the fill rule of the path.
func (w *Writer) DrawPath(pen *Pen, brush Brush, path *Path) {
	if w.Err != nil {
		return
	}
	if path == nil {
		w.Err = ErrNilArgument
		return
	}
	if pen == nil && brush == nil {
		w.Err = ErrNoPenOrBrush
		return
	}
	if path.IsEmpty() {
		return
	}

	w.realize(pen, brush)
	if w.Err != nil {
		return
	}
	w.appendPath(path)
	w.strokeFill(pen, brush, path.FillMode, false)
}

// DrawImage draws an image or form so that it fills the given rectangle.
func (w *Writer) DrawImage(img *Image, x, y, width, height float64) {
	if w.Err != nil {
		return
	}
	if img == nil {
		w.Err = ErrNilArgument
		return
	}

	w.beginPage()
	w.beginGraphics()
	w.realizeTransform()
	name, err := w.res.XObject(img)
	if err != nil {
		w.Err = fmt.Errorf("XObject: %w", err)
		return
	}

	sx, sy := width, height
	if img.IsForm {
		if img.Width == 0 || img.Height == 0 {
			return
		}
		sx = width / img.Width
		sy = height / img.Height
		if sx == 0 || sy == 0 {
			return
		}
	}

	if w.opt.Direction == DirectionDownwards {
		y += height
	}
	px, py := w.point(vec.Vec2{X: x, Y: y})
	w.emit("q")
	w.emit(coord(sx), 0, 0, coord(sy), px, py, "cm")
	w.emitName(name, "Do")
	w.emit("Q")
}
