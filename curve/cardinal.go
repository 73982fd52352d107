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

package curve

import "seehuhn.de/go/geom/vec"

// CardinalSegment returns the Bézier segment from p1 to p2 of the cardinal
// spline through p0, p1, p2, p3.  The tension t is applied as given;
// callers using the conventional tension scale divide by 3 first.
func CardinalSegment(p0, p1, p2, p3 vec.Vec2, t float64) Bezier {
	return Bezier{
		C1: p1.Add(p2.Sub(p0).Mul(t)),
		C2: p2.Sub(p3.Sub(p1).Mul(t)),
		P:  p2,
	}
}

// Cardinal returns the segments of an open cardinal spline through all
// points.  The curve starts at points[0].  A tension of 0 gives straight
// lines, 0.5 is the usual default.  At least two points are required,
// otherwise nil is returned.
func Cardinal(points []vec.Vec2, tension float64) []Bezier {
	n := len(points)
	if n < 2 {
		return nil
	}
	t := tension / 3

	if n == 2 {
		return []Bezier{CardinalSegment(points[0], points[0], points[1], points[1], t)}
	}

	segs := make([]Bezier, 0, n-1)
	segs = append(segs, CardinalSegment(points[0], points[0], points[1], points[2], t))
	for i := 1; i < n-2; i++ {
		segs = append(segs, CardinalSegment(points[i-1], points[i], points[i+1], points[i+2], t))
	}
	segs = append(segs, CardinalSegment(points[n-3], points[n-2], points[n-1], points[n-1], t))
	return segs
}

// ClosedCardinal returns the segments of a closed cardinal spline through
// all points.  The curve starts and ends at points[0].  At least two
// points are required, otherwise nil is returned.
func ClosedCardinal(points []vec.Vec2, tension float64) []Bezier {
	n := len(points)
	if n < 2 {
		return nil
	}
	t := tension / 3

	segs := make([]Bezier, 0, n)
	for i := range n {
		segs = append(segs, CardinalSegment(
			points[(i+n-1)%n],
			points[i],
			points[(i+1)%n],
			points[(i+2)%n],
			t))
	}
	return segs
}
