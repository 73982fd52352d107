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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/curve"
	"seehuhn.de/go/pdfdraw/internal/float"
)

// emit writes one operator line to the content stream.
func (w *Writer) emit(args ...any) {
	fmt.Fprintln(&w.content, args...)
}

// emitName writes an operator line which starts with a name operand.
func (w *Writer) emitName(name pdfdraw.Name, args ...any) {
	w.setErr(name.PDF(&w.content))
	w.content.WriteByte(' ')
	w.emit(args...)
}

func (w *Writer) setErr(err error) {
	if err != nil && w.Err == nil {
		w.Err = err
	}
}

func coord(x float64) string {
	return float.Format(x, float.CoordDigits)
}

// point maps p from user space to stream coordinates and formats the
// result.
func (w *Writer) point(p vec.Vec2) (string, string) {
	q := w.WorldToView(p)
	return coord(q.X), coord(q.Y)
}

func (w *Writer) moveTo(p vec.Vec2) {
	x, y := w.point(p)
	w.emit(x, y, "m")
}

func (w *Writer) lineTo(p vec.Vec2) {
	x, y := w.point(p)
	w.emit(x, y, "l")
}

func (w *Writer) curveTo(b curve.Bezier) {
	x1, y1 := w.point(b.C1)
	x2, y2 := w.point(b.C2)
	x3, y3 := w.point(b.P)
	w.emit(x1, y1, x2, y2, x3, y3, "c")
}

// appendPath writes the segments of path.
func (w *Writer) appendPath(path *Path) {
	for op, pts := range path.All() {
		switch op {
		case OpMoveTo:
			w.moveTo(pts[0])
		case OpLineTo:
			w.lineTo(pts[0])
		case OpCubicTo:
			w.curveTo(curve.Bezier{C1: pts[0], C2: pts[1], P: pts[2]})
		case OpClose:
			w.emit("h")
		}
	}
}

// strokeFill writes the path painting operator for the given combination
// of pen and brush.  If closePath is set, the current subpath is closed
// first.
func (w *Writer) strokeFill(pen *Pen, brush Brush, mode FillMode, closePath bool) {
	if closePath {
		w.emit("h")
	}
	switch {
	case pen != nil && brush != nil && mode == FillWinding:
		w.emit("B")
	case pen != nil && brush != nil:
		w.emit("B*")
	case pen != nil:
		w.emit("S")
	case mode == FillWinding:
		w.emit("f")
	default:
		w.emit("f*")
	}
}
