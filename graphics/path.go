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
	"iter"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw/curve"
)

// FillMode is the rule which decides whether a point is inside a path.
type FillMode uint8

// These are the supported fill rules.
const (
	FillEvenOdd FillMode = iota
	FillWinding
)

// PathOp is the kind of a path segment.
type PathOp uint8

// These are the path segment types.  The number of points of a segment is
// given in parentheses.
const (
	OpMoveTo  PathOp = iota // start a new subpath (1)
	OpLineTo                // straight line (1)
	OpCubicTo               // cubic Bézier curve (3)
	OpClose                 // close the current subpath (0)
)

func (op PathOp) numPoints() int {
	switch op {
	case OpMoveTo, OpLineTo:
		return 1
	case OpCubicTo:
		return 3
	default:
		return 0
	}
}

// Path is a sequence of subpaths, built from lines and curves in user
// space.  The zero value is an empty path with the even-odd fill rule.
//
// Lines and curves added to a path continue the current figure: if they
// do not start at the current point, a straight line is inserted.  Closed
// shapes like rectangles and ellipses always form a figure of their own.
type Path struct {
	FillMode FillMode

	ops []PathOp
	pts []vec.Vec2

	inFigure bool
	current  vec.Vec2
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.ops) == 0
}

// All iterates over the segments of the path.  The slice of points is only
// valid until the next iteration step.
func (p *Path) All() iter.Seq2[PathOp, []vec.Vec2] {
	return func(yield func(PathOp, []vec.Vec2) bool) {
		j := 0
		for _, op := range p.ops {
			n := op.numPoints()
			if !yield(op, p.pts[j:j+n]) {
				return
			}
			j += n
		}
	}
}

// StartFigure makes the next segment start a new subpath.
func (p *Path) StartFigure() {
	p.inFigure = false
}

// CloseFigure closes the current subpath.
func (p *Path) CloseFigure() {
	if !p.inFigure {
		return
	}
	p.ops = append(p.ops, OpClose)
	p.inFigure = false
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.moveTo(vec.Vec2{X: x, Y: y})
}

// LineTo appends a straight line from the current point to (x, y).
// If there is no current figure, a new subpath is started at (x, y).
func (p *Path) LineTo(x, y float64) {
	p.lineOrMove(vec.Vec2{X: x, Y: y})
}

// AddLine appends a straight line from (x1, y1) to (x2, y2).
func (p *Path) AddLine(x1, y1, x2, y2 float64) {
	p.lineOrMove(vec.Vec2{X: x1, Y: y1})
	p.lineTo(vec.Vec2{X: x2, Y: y2})
}

// AddLines appends a polyline.
func (p *Path) AddLines(points []vec.Vec2) {
	if len(points) == 0 {
		return
	}
	p.lineOrMove(points[0])
	for _, pt := range points[1:] {
		p.lineTo(pt)
	}
}

// AddBezier appends a cubic Bézier curve.
func (p *Path) AddBezier(p0, p1, p2, p3 vec.Vec2) {
	p.lineOrMove(p0)
	p.cubicTo(curve.Bezier{C1: p1, C2: p2, P: p3})
}

// AddBeziers appends a sequence of connected Bézier curves.  The number of
// points must be 3n+1.
func (p *Path) AddBeziers(points []vec.Vec2) error {
	if len(points) == 0 {
		return nil
	}
	if (len(points)-1)%3 != 0 {
		return ErrBezierPoints
	}
	p.lineOrMove(points[0])
	for i := 1; i < len(points); i += 3 {
		p.cubicTo(curve.Bezier{C1: points[i], C2: points[i+1], P: points[i+2]})
	}
	return nil
}

// AddQuadratic appends a quadratic Bézier curve, converted to a cubic one.
func (p *Path) AddQuadratic(p0, p1, p2 vec.Vec2) {
	p.lineOrMove(p0)
	p.cubicTo(curve.QuadToCubic(p0, p1, p2))
}

// AddArc appends an arc of the ellipse inscribed in the given rectangle.
// Angles are in degrees.
func (p *Path) AddArc(x, y, width, height, startAngle, sweepAngle float64) {
	start, segs := curve.Arc(x, y, width, height, startAngle, sweepAngle)
	p.lineOrMove(start)
	for _, s := range segs {
		p.cubicTo(s)
	}
}

// AddRectangle appends a rectangle as a closed subpath.
func (p *Path) AddRectangle(x, y, width, height float64) {
	p.moveTo(vec.Vec2{X: x, Y: y})
	p.lineTo(vec.Vec2{X: x + width, Y: y})
	p.lineTo(vec.Vec2{X: x + width, Y: y + height})
	p.lineTo(vec.Vec2{X: x, Y: y + height})
	p.CloseFigure()
}

// AddRoundedRectangle appends a rectangle with rounded corners as a closed
// subpath.  The corners are quarters of an ellipse of the given size.
func (p *Path) AddRoundedRectangle(x, y, width, height, ellipseWidth, ellipseHeight float64) {
	ew, eh := ellipseWidth, ellipseHeight
	p.StartFigure()
	p.AddArc(x+width-ew, y, ew, eh, -90, 90)
	p.AddArc(x+width-ew, y+height-eh, ew, eh, 0, 90)
	p.AddArc(x, y+height-eh, ew, eh, 90, 90)
	p.AddArc(x, y, ew, eh, 180, 90)
	p.CloseFigure()
}

// AddEllipse appends the ellipse inscribed in the given rectangle as a
// closed subpath.
func (p *Path) AddEllipse(x, y, width, height float64) {
	start, segs := curve.Ellipse(x, y, width, height)
	p.moveTo(start)
	for _, s := range segs {
		p.cubicTo(s)
	}
	p.CloseFigure()
}

// AddPolygon appends a closed polygon.
func (p *Path) AddPolygon(points []vec.Vec2) {
	if len(points) == 0 {
		return
	}
	p.moveTo(points[0])
	for _, pt := range points[1:] {
		p.lineTo(pt)
	}
	p.CloseFigure()
}

// AddCurve appends a cardinal spline through the given points.
func (p *Path) AddCurve(points []vec.Vec2, tension float64) {
	if len(points) == 0 {
		return
	}
	p.lineOrMove(points[0])
	for _, s := range curve.Cardinal(points, tension) {
		p.cubicTo(s)
	}
}

// AddClosedCurve appends a closed cardinal spline through the given points.
func (p *Path) AddClosedCurve(points []vec.Vec2, tension float64) {
	if len(points) == 0 {
		return
	}
	p.moveTo(points[0])
	for _, s := range curve.ClosedCardinal(points, tension) {
		p.cubicTo(s)
	}
	p.CloseFigure()
}

func (p *Path) moveTo(pt vec.Vec2) {
	p.ops = append(p.ops, OpMoveTo)
	p.pts = append(p.pts, pt)
	p.inFigure = true
	p.current = pt
}

func (p *Path) lineTo(pt vec.Vec2) {
	p.ops = append(p.ops, OpLineTo)
	p.pts = append(p.pts, pt)
	p.current = pt
}

func (p *Path) cubicTo(b curve.Bezier) {
	p.ops = append(p.ops, OpCubicTo)
	p.pts = append(p.pts, b.C1, b.C2, b.P)
	p.current = b.P
}

func (p *Path) lineOrMove(pt vec.Vec2) {
	if !p.inFigure {
		p.moveTo(pt)
	} else if pt != p.current {
		p.lineTo(pt)
	}
}
