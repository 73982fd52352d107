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
	"log/slog"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/color"
)

// PageDirection gives the direction of the y-axis in user space.
type PageDirection uint8

// These are the supported page directions.
const (
	// DirectionDownwards makes y grow from the top of the page downwards.
	DirectionDownwards PageDirection = iota + 1

	// DirectionUpwards uses the PDF convention, where y grows upwards.
	DirectionUpwards
)

// Unit is the unit of measurement for user space coordinates.
type Unit uint8

// These are the supported units.
const (
	UnitPoint Unit = iota + 1
	UnitInch
	UnitMillimeter
	UnitCentimeter
	UnitPresentation // 1/96 inch
)

// Factor returns the size of the unit in PDF points.
func (u Unit) Factor() float64 {
	switch u {
	case UnitInch:
		return 72
	case UnitMillimeter:
		return 72 / 25.4
	case UnitCentimeter:
		return 72 / 2.54
	case UnitPresentation:
		return 72.0 / 96
	default:
		return 1
	}
}

// TextEncoding selects how text is written to the content stream.
type TextEncoding uint8

// These are the supported text encodings.
const (
	// EncodingAutomatic uses single-byte WinAnsi encoded strings where this
	// is possible, and glyph indices otherwise.
	EncodingAutomatic TextEncoding = iota + 1

	// EncodingGlyphIndex always writes two-byte glyph indices.
	EncodingGlyphIndex
)

// Margins describes the distance between the media box and the trim box of
// a page, in PDF points.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// A4 is the size of an A4 page in PDF points.
var A4 = rect.Rect{URx: 210 / 25.4 * 72, URy: 297 / 25.4 * 72}

// Options controls how a [Writer] generates a content stream.
type Options struct {
	Version   pdfdraw.Version
	ColorMode color.Mode
	Direction PageDirection
	Unit      Unit

	// PageBox is the visible area of the page or the bounding box of the
	// form, in PDF points.  On downward pages, the media box extends
	// beyond PageBox by TrimMargins.
	PageBox     rect.Rect
	TrimMargins Margins

	Encoding TextEncoding

	// Logger overrides the package logger, see [pdfdraw.SetLogger].
	Logger *slog.Logger
}

var defaultOptions = &Options{
	Version:   pdfdraw.V1_7,
	ColorMode: color.ModeRGB,
	Direction: DirectionDownwards,
	Unit:      UnitPoint,
	PageBox:   A4,
	Encoding:  EncodingAutomatic,
}

// MergeOptions takes an options struct and a default values struct and
// returns a new options struct with all fields set to the values from the
// options struct, except for the fields which are set to the zero value in
// the options struct.
// `opt` can be nil in which case the default values are returned.
// `defaultValues` must not be nil.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		return defaultValues
	}

	res := &Options{}
	if opt.Version != 0 {
		res.Version = opt.Version
	} else {
		res.Version = defaultValues.Version
	}
	if opt.ColorMode != 0 {
		res.ColorMode = opt.ColorMode
	} else {
		res.ColorMode = defaultValues.ColorMode
	}
	if opt.Direction != 0 {
		res.Direction = opt.Direction
	} else {
		res.Direction = defaultValues.Direction
	}
	if opt.Unit != 0 {
		res.Unit = opt.Unit
	} else {
		res.Unit = defaultValues.Unit
	}
	if opt.PageBox != (rect.Rect{}) {
		res.PageBox = opt.PageBox
	} else {
		res.PageBox = defaultValues.PageBox
	}
	if opt.TrimMargins != (Margins{}) {
		res.TrimMargins = opt.TrimMargins
	} else {
		res.TrimMargins = defaultValues.TrimMargins
	}
	if opt.Encoding != 0 {
		res.Encoding = opt.Encoding
	} else {
		res.Encoding = defaultValues.Encoding
	}
	if opt.Logger != nil {
		res.Logger = opt.Logger
	} else {
		res.Logger = defaultValues.Logger
	}
	return res
}
