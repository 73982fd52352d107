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

// Package float formats numbers for use in PDF content streams.
package float

import (
	"regexp"
	"strconv"
	"strings"
)

// Number of decimal places used for the different kinds of operands.
const (
	CoordDigits  = 4 // coordinates and lengths
	WidthDigits  = 3 // line widths, character spacing, font sizes, colors
	MatrixDigits = 7 // matrix coefficients of "cm" and "Tm"
	DashDigits   = 2 // elements of the predefined dash patterns
)

// Format formats x using at most the given number of decimal places.
// Trailing zeros and a leading zero before the decimal point are
// removed.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		return "0"
	}
	if strings.HasPrefix(out, "0.") {
		out = out[1:]
	}
	return out
}

// Round rounds x to the given number of decimal places.
func Round(x float64, digits int) float64 {
	s := Format(x, digits)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return y
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
