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

// CombineMode selects how a new clipping path is combined with the
// current one.
type CombineMode uint8

// The supported combine modes.
const (
	CombineReplace CombineMode = iota
	CombineIntersect
)

// SetClip restricts drawing to the inside of path.
//
// With CombineReplace, the previous clipping path is discarded.  This is
// only possible at the save level where the first clipping path was set;
// at other levels ErrClipLevel is reported.  With CombineIntersect, the
// new path is intersected with the current clipping region.
//
// An empty path leaves the clipping region unchanged.
func (w *Writer) SetClip(path *Path, mode CombineMode) {
	if w.Err != nil {
		return
	}
	if path == nil {
		w.Err = ErrNilArgument
		return
	}
	if path.IsEmpty() {
		w.log.Warn("empty clipping path ignored")
		return
	}

	// Clipping paths must live inside the world space level, so that
	// they can be removed again.
	if w.state.Level < levelWorldSpace {
		w.realizeTransform()
	}

	switch mode {
	case CombineReplace:
		if w.clipLevel != 0 {
			if w.clipLevel != w.state.Level {
				w.Err = ErrClipLevel
				return
			}
			w.ResetClip()
			if w.Err != nil {
				return
			}
		}
		w.clipLevel = w.state.Level
	case CombineIntersect:
		if w.clipLevel == 0 {
			w.clipLevel = w.state.Level
		}
	}

	w.beginGraphics()
	w.realizeCTM()
	w.appendPath(path)
	if path.FillMode == FillWinding {
		w.emit("W n")
	} else {
		w.emit("W* n")
	}
}

// SetClipRect restricts drawing to the given rectangle.
func (w *Writer) SetClipRect(x, y, width, height float64, mode CombineMode) {
	p := &Path{}
	p.AddRectangle(x, y, width, height)
	w.SetClip(p, mode)
}

// IntersectClip intersects the clipping region with path.
func (w *Writer) IntersectClip(path *Path) {
	w.SetClip(path, CombineIntersect)
}

// ResetClip removes the clipping path.  This must be called at the save
// level where the clipping path was set.
//
// The clipping path is removed by restoring the enclosing graphics state.
// The pen, brush and font settings are kept, but the transformation is
// the one of the restored state: transformations applied after the
// clipping path was set must be applied again.
func (w *Writer) ResetClip() {
	if w.Err != nil || w.clipLevel == 0 {
		return
	}
	if w.clipLevel != w.state.Level {
		w.Err = ErrClipLevel
		return
	}

	w.beginGraphics()
	tok := w.restoreState().Token
	w.state.Token = tok
	w.saveState()
	w.state.Token = 0
	w.clipLevel = 0
}
