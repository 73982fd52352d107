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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Arc approximates an arc of the ellipse inscribed in the rectangle with
// corner (x, y) and the given width and height.
//
// Angles are in degrees, measured from the positive x-axis towards the
// positive y-axis.  The start angle may have any value, the sweep is
// clamped to [-360, 360].  The function returns the start point of the arc
// and one Bézier segment for every quadrant the arc touches.  For a sweep
// of zero, no segments are returned.
func Arc(x, y, width, height, startAngle, sweepAngle float64) (vec.Vec2, []Bezier) {
	a := &arc{
		dx: width / 2,
		dy: height / 2,
	}
	a.x0 = x + a.dx
	a.y0 = y + a.dy
	a.circle = width == height

	α := startAngle
	if α < 0 {
		α += (1 + math.Floor(math.Abs(α)/360)) * 360
	} else if α > 360 {
		α -= math.Floor(α/360) * 360
	}

	β := math.Max(-360, math.Min(360, sweepAngle))
	if β == 0 {
		return a.point(α), nil
	}

	if α == 0 && β < 0 {
		α = 360
	} else if α == 360 && β > 0 {
		α = 0
	}

	// An arc of at most 90° may still start and end in the same quadrant
	// after going almost all the way round, so the sweep matters as well.
	smallAngle := math.Abs(β) <= 90

	β = α + β
	if β < 0 {
		β += (1 + math.Floor(math.Abs(β)/360)) * 360
	}

	clockwise := sweepAngle > 0
	startQuadrant := quadrant(α, true, clockwise)
	endQuadrant := quadrant(β, false, clockwise)

	if startQuadrant == endQuadrant && smallAngle {
		a.segment(α, β)
		return a.start, a.segs
	}

	current := startQuadrant
	first := true
	for {
		switch {
		case current == startQuadrant && first:
			ξ := float64(current) * 90
			if clockwise {
				ξ += 90
			}
			a.segment(α, ξ)
		case current == endQuadrant:
			ξ := float64(current) * 90
			if !clockwise {
				ξ += 90
			}
			a.segment(ξ, β)
		default:
			ξ1 := float64(current) * 90
			ξ2 := ξ1
			if clockwise {
				ξ2 += 90
			} else {
				ξ1 += 90
			}
			a.segment(ξ1, ξ2)
		}

		// Arcs of more than 270° start and end in the same quadrant; do not
		// stop on the first visit in this case.
		if current == endQuadrant && smallAngle {
			break
		}
		smallAngle = true

		if clockwise {
			current = (current + 1) % 4
		} else {
			current = (current + 3) % 4
		}
		first = false
	}
	return a.start, a.segs
}

// quadrant returns the quadrant (0 to 3) which contains the angle φ.
// Angles on a quadrant boundary are attributed to the quadrant in which
// the arc runs.
func quadrant(φ float64, start, clockwise bool) int {
	if φ > 360 {
		φ -= math.Floor(φ/360) * 360
	}
	q := int(φ / 90)
	if float64(q*90) == φ {
		if (start && !clockwise) || (!start && clockwise) {
			q = (q + 3) % 4
		}
	} else if clockwise {
		q %= 4
	}
	return q
}

type arc struct {
	x0, y0 float64 // center
	dx, dy float64 // radii
	circle bool

	started bool
	start   vec.Vec2
	segs    []Bezier
}

// point returns the point of the ellipse in direction α (degrees).
func (a *arc) point(α float64) vec.Vec2 {
	sign := 1.0
	if α >= 180 {
		α -= 180
		sign = -1
	}
	rad := a.correct(α * math.Pi / 180)
	return vec.Vec2{
		X: a.x0 + sign*a.dx*math.Cos(rad),
		Y: a.y0 + sign*a.dy*math.Sin(rad),
	}
}

// correct maps a geometric angle to the parameter angle of the ellipse, so
// that the resulting point lies on the ray with the original angle.
func (a *arc) correct(φ float64) float64 {
	if a.circle {
		return φ
	}
	sinφ := math.Sin(φ)
	if math.Abs(sinφ) > 1e-10 {
		φ = math.Pi/2 - math.Atan(a.dy*math.Cos(φ)/(a.dx*sinφ))
	}
	return φ
}

// segment appends the Bézier segment for the arc from α to β.  Both angles
// must lie in the same quadrant.
func (a *arc) segment(α, β float64) {
	if β > 360 {
		β -= math.Floor(β/360) * 360
	}
	if α == β {
		return
	}

	// Arcs in quadrants 2 and 3 are computed as arcs in quadrants 0 and 1,
	// reflected at the center.
	sign := 1.0
	if α >= 180 && β >= 180 {
		α -= 180
		β -= 180
		sign = -1
	}

	α = a.correct(α * math.Pi / 180)
	β = a.correct(β * math.Pi / 180)

	κ := 4 * (1 - math.Cos((α-β)/2)) / (3 * math.Sin((β-α)/2))
	sinα, cosα := math.Sin(α), math.Cos(α)
	sinβ, cosβ := math.Sin(β), math.Cos(β)

	dx := sign * a.dx
	dy := sign * a.dy
	if !a.started {
		a.start = vec.Vec2{X: a.x0 + dx*cosα, Y: a.y0 + dy*sinα}
		a.started = true
	}
	a.segs = append(a.segs, Bezier{
		C1: vec.Vec2{X: a.x0 + dx*(cosα-κ*sinα), Y: a.y0 + dy*(sinα+κ*cosα)},
		C2: vec.Vec2{X: a.x0 + dx*(cosβ+κ*sinβ), Y: a.y0 + dy*(sinβ-κ*cosβ)},
		P:  vec.Vec2{X: a.x0 + dx*cosβ, Y: a.y0 + dy*sinβ},
	})
}
