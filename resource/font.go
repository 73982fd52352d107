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

package resource

import (
	"cmp"
	"slices"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdraw/font"
)

// Font is a font resource.  It records the glyphs shown with the font, so
// that the font can be subsetted when it is embedded.
type Font struct {
	Face font.Face
	Type font.Type

	used map[glyph.ID]rune
}

// UseGlyphs implements the [font.Handle] interface.
func (f *Font) UseGlyphs(glyphs []font.Glyph) {
	for _, g := range glyphs {
		if _, seen := f.used[g.GID]; !seen || g.Text != 0 {
			f.used[g.GID] = g.Text
		}
	}
}

// Glyphs returns the glyphs used so far, ordered by glyph ID.
// For colour layers, which are not reached through a character, Text
// is 0.
func (f *Font) Glyphs() []font.Glyph {
	res := make([]font.Glyph, 0, len(f.used))
	for gid, r := range f.used {
		res = append(res, font.Glyph{Text: r, GID: gid})
	}
	slices.SortFunc(res, func(a, b font.Glyph) int {
		return cmp.Compare(a.GID, b.GID)
	})
	return res
}
