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

// Package pdfdraw contains the basic types shared by the content stream
// generator: PDF versions, names and string literals, and the package
// logger.
//
// Drawing happens through [seehuhn.de/go/pdfdraw/graphics.Writer], which
// turns high-level calls (lines, arcs, ellipses, paths, images, text) into
// the operators of a PDF content stream.  Only graphics state which actually
// changed is written to the stream.
//
// The writer does not own the PDF document.  Fonts, patterns, images and
// extended graphics states are registered through the
// [seehuhn.de/go/pdfdraw/graphics.Resources] interface;
// [seehuhn.de/go/pdfdraw/resource.Dict] is an in-memory implementation.
package pdfdraw
