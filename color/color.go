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

// Package color implements the device colors used by the content stream
// writer.
//
// Colors are stored in the space they were created in and converted to
// the output color mode ([ModeRGB] or [ModeCMYK]) when they are written.
package color

import (
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/pdfdraw/internal/float"
)

// Space is the color space a [Color] was specified in.
type Space uint8

// These are the supported color spaces.
const (
	SpaceGray Space = iota
	SpaceRGB
	SpaceCMYK
)

// Mode selects the device color space used in the content stream.
type Mode uint8

// These are the supported output color modes.
const (
	ModeRGB Mode = iota
	ModeCMYK
)

func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "RGB"
	case ModeCMYK:
		return "CMYK"
	default:
		return fmt.Sprintf("color.Mode(%d)", m)
	}
}

// Color is a device color together with an opacity.
//
// Use the constructor functions to obtain a Color; these set Alpha to 1.
type Color struct {
	Space  Space
	Values [4]float64

	// Alpha is the opacity, from 0 (fully transparent) to 1 (opaque).
	Alpha float64
}

// Gray returns an opaque gray level between 0 (black) and 1 (white).
func Gray(g float64) Color {
	return Color{Space: SpaceGray, Values: [4]float64{g}, Alpha: 1}
}

// RGB returns an opaque color in the RGB color space.
// Each component must be in the range [0, 1].
func RGB(r, g, b float64) Color {
	return Color{Space: SpaceRGB, Values: [4]float64{r, g, b}, Alpha: 1}
}

// RGB8 returns an opaque color from 8-bit RGB components.
func RGB8(r, g, b uint8) Color {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// CMYK returns an opaque color in the CMYK color space.
// Each component must be in the range [0, 1].
func CMYK(c, m, y, k float64) Color {
	return Color{Space: SpaceCMYK, Values: [4]float64{c, m, y, k}, Alpha: 1}
}

// Black is opaque black.
var Black = Gray(0)

// WithAlpha returns a copy of c with the given opacity.
func (c Color) WithAlpha(alpha float64) Color {
	c.Alpha = alpha
	return c
}

// RGB returns the color as red, green and blue components.
func (c Color) RGB() (r, g, b float64) {
	v := c.Values
	switch c.Space {
	case SpaceGray:
		return v[0], v[0], v[0]
	case SpaceCMYK:
		return (1 - v[0]) * (1 - v[3]), (1 - v[1]) * (1 - v[3]), (1 - v[2]) * (1 - v[3])
	default:
		return v[0], v[1], v[2]
	}
}

// CMYK returns the color as cyan, magenta, yellow and black components.
func (c Color) CMYK() (cyan, magenta, yellow, black float64) {
	v := c.Values
	switch c.Space {
	case SpaceGray:
		return 0, 0, 0, 1 - v[0]
	case SpaceCMYK:
		return v[0], v[1], v[2], v[3]
	default:
		k := 1 - math.Max(v[0], math.Max(v[1], v[2]))
		if k >= 1 {
			return 0, 0, 0, 1
		}
		return (1 - v[0] - k) / (1 - k), (1 - v[1] - k) / (1 - k), (1 - v[2] - k) / (1 - k), k
	}
}

// InMode converts c to the color space used by the given output mode.
// The opacity is preserved.
func (c Color) InMode(m Mode) Color {
	var res Color
	switch m {
	case ModeCMYK:
		cc, mm, yy, kk := c.CMYK()
		res = CMYK(cc, mm, yy, kk)
	default:
		r, g, b := c.RGB()
		res = RGB(r, g, b)
	}
	res.Alpha = c.Alpha
	return res
}

// Equal reports whether a and b select the same device color in mode m.
// Opacity is not compared.
//
// In CMYK mode the four components are compared exactly; otherwise the
// derived RGB values are compared.
func Equal(a, b Color, m Mode) bool {
	if m == ModeCMYK {
		a1, a2, a3, a4 := a.CMYK()
		b1, b2, b3, b4 := b.CMYK()
		return a1 == b1 && a2 == b2 && a3 == b3 && a4 == b4
	}
	a1, a2, a3 := a.RGB()
	b1, b2, b3 := b.RGB()
	return a1 == b1 && a2 == b2 && a3 == b3
}

// SetStroke writes the operator which makes c the stroking color.
//
// This implements the PDF graphics operators "RG" and "K".
func (c Color) SetStroke(w io.Writer, m Mode) error {
	return c.write(w, m, "RG", "K")
}

// SetFill writes the operator which makes c the non-stroking color.
//
// This implements the PDF graphics operators "rg" and "k".
func (c Color) SetFill(w io.Writer, m Mode) error {
	return c.write(w, m, "rg", "k")
}

func (c Color) write(w io.Writer, m Mode, opRGB, opCMYK string) error {
	var err error
	if m == ModeCMYK {
		cc, mm, yy, kk := c.CMYK()
		_, err = fmt.Fprintln(w,
			float.Format(cc, float.WidthDigits), float.Format(mm, float.WidthDigits),
			float.Format(yy, float.WidthDigits), float.Format(kk, float.WidthDigits), opCMYK)
	} else {
		r, g, b := c.RGB()
		_, err = fmt.Fprintln(w,
			float.Format(r, float.WidthDigits), float.Format(g, float.WidthDigits),
			float.Format(b, float.WidthDigits), opRGB)
	}
	return err
}
