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

// Package curve approximates arcs, ellipses and cardinal splines by cubic
// Bézier segments.
//
// All functions in this package are pure computations on points; writing
// the corresponding path operators is left to the caller.
package curve

import "seehuhn.de/go/geom/vec"

// Bezier is a cubic Bézier segment.
// The start point is the end point of the preceding segment.
type Bezier struct {
	C1, C2 vec.Vec2 // control points
	P      vec.Vec2 // end point
}

// QuadToCubic converts the quadratic Bézier curve with control points p0,
// p1, p2 into the equivalent cubic segment starting at p0.
func QuadToCubic(p0, p1, p2 vec.Vec2) Bezier {
	return Bezier{
		C1: p0.Mul(1.0 / 3).Add(p1.Mul(2.0 / 3)),
		C2: p2.Mul(1.0 / 3).Add(p1.Mul(2.0 / 3)),
		P:  p2,
	}
}

// circleFactor is the distance of the control points from the end points of
// a quarter circle with radius 1.
const circleFactor = 0.552284749

// Ellipse returns a closed approximation of the ellipse inscribed in the
// rectangle with corner (x, y) and the given width and height.
// The curve starts at the point with the largest x coordinate and runs
// through angles 0°, 90°, 180°, 270° back to 0°.
func Ellipse(x, y, width, height float64) (vec.Vec2, [4]Bezier) {
	dx := width / 2
	dy := height / 2
	fx := dx * circleFactor
	fy := dy * circleFactor
	x0 := x + dx
	y0 := y + dy

	start := vec.Vec2{X: x0 + dx, Y: y0}
	segs := [4]Bezier{
		{C1: vec.Vec2{X: x0 + dx, Y: y0 + fy}, C2: vec.Vec2{X: x0 + fx, Y: y0 + dy}, P: vec.Vec2{X: x0, Y: y0 + dy}},
		{C1: vec.Vec2{X: x0 - fx, Y: y0 + dy}, C2: vec.Vec2{X: x0 - dx, Y: y0 + fy}, P: vec.Vec2{X: x0 - dx, Y: y0}},
		{C1: vec.Vec2{X: x0 - dx, Y: y0 - fy}, C2: vec.Vec2{X: x0 - fx, Y: y0 - dy}, P: vec.Vec2{X: x0, Y: y0 - dy}},
		{C1: vec.Vec2{X: x0 + fx, Y: y0 - dy}, C2: vec.Vec2{X: x0 + dx, Y: y0 - fy}, P: vec.Vec2{X: x0 + dx, Y: y0}},
	}
	return start, segs
}
