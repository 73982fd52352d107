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

// Package resource keeps the resource dictionary of a page or form in
// memory.
//
// A [Dict] implements [graphics.Resources].  Every resource is given a
// name the first time it is used, and the same name is returned for all
// later uses.
package resource

import (
	"errors"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/font"
	"seehuhn.de/go/pdfdraw/graphics"
)

// Category is a sub-dictionary of a resource dictionary.
type Category int

// The resource categories used by the content stream writer.
const (
	CatExtGState Category = iota + 1
	CatPattern
	CatFont
	CatXObject
)

func (c Category) String() string {
	switch c {
	case CatExtGState:
		return "ExtGState"
	case CatPattern:
		return "Pattern"
	case CatFont:
		return "Font"
	case CatXObject:
		return "XObject"
	default:
		return "resource.Category(" + strconv.Itoa(int(c)) + ")"
	}
}

func (c Category) prefix() pdfdraw.Name {
	switch c {
	case CatExtGState:
		return "E"
	case CatPattern:
		return "P"
	case CatFont:
		return "F"
	case CatXObject:
		return "X"
	default:
		panic("invalid resource category")
	}
}

// Dict is an in-memory resource dictionary.
// The zero value is not usable, use [New] to allocate a Dict.
type Dict struct {
	ExtGStates map[pdfdraw.Name]graphics.ExtGState
	Patterns   map[pdfdraw.Name]*graphics.Pattern
	Fonts      map[pdfdraw.Name]*Font
	XObjects   map[pdfdraw.Name]*graphics.Image

	// Transparency is set if the content uses opacity less than one.
	// Pages with transparency need a transparency group.
	Transparency bool

	gsName   map[graphics.ExtGState]pdfdraw.Name
	patName  map[patternKey]pdfdraw.Name
	fontName map[fontKey]pdfdraw.Name
	xobjName map[*graphics.Image]pdfdraw.Name
}

type patternKey struct {
	brush  graphics.Brush
	matrix matrix.Matrix
}

type fontKey struct {
	face font.Face
	typ  font.Type
}

var _ graphics.Resources = (*Dict)(nil)

// New allocates an empty resource dictionary.
func New() *Dict {
	return &Dict{
		ExtGStates: make(map[pdfdraw.Name]graphics.ExtGState),
		Patterns:   make(map[pdfdraw.Name]*graphics.Pattern),
		Fonts:      make(map[pdfdraw.Name]*Font),
		XObjects:   make(map[pdfdraw.Name]*graphics.Image),

		gsName:   make(map[graphics.ExtGState]pdfdraw.Name),
		patName:  make(map[patternKey]pdfdraw.Name),
		fontName: make(map[fontKey]pdfdraw.Name),
		xobjName: make(map[*graphics.Image]pdfdraw.Name),
	}
}

// ExtGState implements the [graphics.Resources] interface.
func (d *Dict) ExtGState(gs graphics.ExtGState) (pdfdraw.Name, error) {
	if name, ok := d.gsName[gs]; ok {
		return name, nil
	}
	name := generateName(CatExtGState, d.ExtGStates)
	d.ExtGStates[name] = gs
	d.gsName[gs] = name
	return name, nil
}

// Pattern implements the [graphics.Resources] interface.
// Patterns are shared if both the brush and the pattern matrix agree.
func (d *Dict) Pattern(p *graphics.Pattern) (pdfdraw.Name, error) {
	if p == nil || p.Brush == nil {
		return "", errMissing
	}
	key := patternKey{p.Brush, p.Matrix}
	if name, ok := d.patName[key]; ok {
		return name, nil
	}
	name := generateName(CatPattern, d.Patterns)
	d.Patterns[name] = p
	d.patName[key] = name
	return name, nil
}

// Font implements the [graphics.Resources] interface.
func (d *Dict) Font(face font.Face, typ font.Type) (pdfdraw.Name, font.Handle, error) {
	if face == nil {
		return "", nil, errMissing
	}
	key := fontKey{face, typ}
	if name, ok := d.fontName[key]; ok {
		return name, d.Fonts[name], nil
	}
	name := generateName(CatFont, d.Fonts)
	f := &Font{
		Face: face,
		Type: typ,
		used: make(map[glyph.ID]rune),
	}
	d.Fonts[name] = f
	d.fontName[key] = name
	return name, f, nil
}

// XObject implements the [graphics.Resources] interface.
func (d *Dict) XObject(img *graphics.Image) (pdfdraw.Name, error) {
	if img == nil {
		return "", errMissing
	}
	if name, ok := d.xobjName[img]; ok {
		return name, nil
	}
	name := generateName(CatXObject, d.XObjects)
	d.XObjects[name] = img
	d.xobjName[img] = name
	return name, nil
}

// MarkTransparency implements the [graphics.Resources] interface.
func (d *Dict) MarkTransparency() {
	d.Transparency = true
}

// Names returns the names used in the given category, in sorted order.
func (d *Dict) Names(cat Category) []pdfdraw.Name {
	switch cat {
	case CatExtGState:
		return sortedNames(d.ExtGStates)
	case CatPattern:
		return sortedNames(d.Patterns)
	case CatFont:
		return sortedNames(d.Fonts)
	case CatXObject:
		return sortedNames(d.XObjects)
	default:
		return nil
	}
}

// IsEmpty reports whether no resources have been allocated.
func (d *Dict) IsEmpty() bool {
	return len(d.ExtGStates) == 0 && len(d.Patterns) == 0 &&
		len(d.Fonts) == 0 && len(d.XObjects) == 0
}

func sortedNames[T any](dict map[pdfdraw.Name]T) []pdfdraw.Name {
	names := maps.Keys(dict)
	slices.Sort(names)
	return names
}

// generateName returns the first unused name of the form prefix+number,
// starting with the number of entries plus one.
func generateName[T any](cat Category, dict map[pdfdraw.Name]T) pdfdraw.Name {
	var name pdfdraw.Name

	prefix := cat.prefix()
	numUsed := len(dict)
	for k := numUsed + 1; ; k-- {
		name = prefix + pdfdraw.Name(strconv.Itoa(k))
		if _, isUsed := dict[name]; !isUsed {
			break
		}
	}

	return name
}

var errMissing = errors.New("resource: missing argument")
