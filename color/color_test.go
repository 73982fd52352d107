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

package color

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSetStroke(t *testing.T) {
	cases := []struct {
		col  Color
		mode Mode
		out  string
	}{
		{Black, ModeRGB, "0 0 0 RG\n"},
		{Gray(0.5), ModeRGB, ".5 .5 .5 RG\n"},
		{RGB(1, 0, 0.25), ModeRGB, "1 0 .25 RG\n"},
		{RGB(1, 0, 0), ModeCMYK, "0 1 1 0 K\n"},
		{CMYK(0.1, 0.2, 0.3, 0.4), ModeCMYK, ".1 .2 .3 .4 K\n"},
		{Gray(1), ModeCMYK, "0 0 0 0 K\n"},
	}
	for _, test := range cases {
		buf := &bytes.Buffer{}
		if err := test.col.SetStroke(buf, test.mode); err != nil {
			t.Fatal(err)
		}
		if buf.String() != test.out {
			t.Errorf("%v in %s: expected %q, got %q", test.col, test.mode, test.out, buf.String())
		}
	}
}

func TestSetFill(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := RGB(0, 0.5, 1).SetFill(buf, ModeRGB); err != nil {
		t.Fatal(err)
	}
	if err := CMYK(0, 0, 0, 1).SetFill(buf, ModeCMYK); err != nil {
		t.Fatal(err)
	}
	expected := "0 .5 1 rg\n0 0 0 1 k\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestRoundTrip(t *testing.T) {
	in := RGB(0.2, 0.4, 0.6)
	cmyk := in.InMode(ModeCMYK)
	out := cmyk.InMode(ModeRGB)

	r1, g1, b1 := in.RGB()
	r2, g2, b2 := out.RGB()
	opt := cmpopts.EquateApprox(0, 1e-12)
	if d := cmp.Diff([]float64{r1, g1, b1}, []float64{r2, g2, b2}, opt); d != "" {
		t.Error(d)
	}
}

func TestInModeKeepsAlpha(t *testing.T) {
	c := RGB(1, 1, 0).WithAlpha(0.5).InMode(ModeCMYK)
	if c.Alpha != 0.5 {
		t.Errorf("alpha lost: %g", c.Alpha)
	}
	if c.Space != SpaceCMYK {
		t.Errorf("wrong space %d", c.Space)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Gray(0), RGB(0, 0, 0), ModeRGB) {
		t.Error("gray black and RGB black should be equal in RGB mode")
	}
	if Equal(RGB(1, 0, 0), RGB(1, 0, 0.001), ModeRGB) {
		t.Error("different colors compare equal")
	}
	if !Equal(CMYK(0, 0, 0, 1), Gray(0), ModeCMYK) {
		t.Error("CMYK black and gray black should be equal in CMYK mode")
	}
	if !Equal(RGB(1, 0, 0).WithAlpha(0.1), RGB(1, 0, 0), ModeRGB) {
		t.Error("alpha must not be compared")
	}
}
