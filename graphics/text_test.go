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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfdraw/color"
	"seehuhn.de/go/pdfdraw/font"
)

func TestDrawStringDelta(t *testing.T) {
	res := &testResources{}
	w := NewWriter(res, upwards())
	F := &font.Font{Face: &testFace{}, Size: 12}
	black := NewSolidBrush(color.Black)
	w.DrawString("AB", F, black, 100, 200, nil)
	w.DrawString("CD", F, black, 100, 215, nil)
	got := finish(t, w)

	want := "q\nq\nBT\n/F1 12 Tf\n100 200 Td\n(AB) Tj\n0 15 Td\n(CD) Tj\nET\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	var text string
	for _, g := range res.used {
		text += string(g.Text)
	}
	if text != "ABCD" {
		t.Errorf("used glyphs for %q, want \"ABCD\"", text)
	}
}

func TestDrawStringEncoding(t *testing.T) {
	face := &testFace{}
	F := &font.Font{Face: face, Size: 10}
	black := NewSolidBrush(color.Black)

	w := NewWriter(&testResources{}, upwards())
	w.DrawString("A", F, black, 0, 0, nil)
	w.DrawString("Ω", F, black, 0, 0, nil)
	got := finish(t, w)
	want := "q\nq\nBT\n/F1 10 Tf\n0 0 Td\n(A) Tj\n/F2 10 Tf\n0 0 Td\n<03A9> Tj\nET\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("automatic (-want +got):\n%s", d)
	}

	opt := upwards()
	opt.Encoding = EncodingGlyphIndex
	w = NewWriter(&testResources{}, opt)
	w.DrawString("A", F, black, 0, 0, nil)
	got = finish(t, w)
	want = "q\nq\nBT\n/F1 10 Tf\n0 0 Td\n<0041> Tj\nET\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("glyph index (-want +got):\n%s", d)
	}

	symbol := &font.Font{Face: &testFace{symbol: true}, Size: 10}
	w = NewWriter(&testResources{}, upwards())
	w.DrawString("A", symbol, black, 0, 0, nil)
	got = finish(t, w)
	want = "q\nq\nBT\n/F1 10 Tf\n0 0 Td\n<F041> Tj\nET\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("symbol (-want +got):\n%s", d)
	}
}

func TestDrawStringItalic(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	italic := &font.Font{Face: &testFace{}, Size: 10, Simulations: font.ItalicSimulation}
	regular := &font.Font{Face: italic.Face, Size: 10}
	black := NewSolidBrush(color.Black)
	w.DrawString("A", italic, black, 10, 20, nil)
	w.DrawString("A", italic, black, 10, 30, nil)
	w.DrawString("A", regular, black, 10, 40, nil)
	got := finish(t, w)

	want := "q\nq\nBT\n/F1 10 Tf\n" +
		"1 0 .3420201 1 10 20 Tm\n(A) Tj\n" +
		"-3.4202 10 Td\n(A) Tj\n" +
		"1 0 0 1 10 40 Tm\n(A) Tj\n" +
		"ET\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDrawStringBold(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	F := &font.Font{Face: &testFace{}, Size: 12, Simulations: font.BoldSimulation}
	w.DrawString("A", F, NewSolidBrush(color.Black), 10, 20, nil)
	got := finish(t, w)

	want := "q\nq\nBT\n.24 w\n2 Tr\n.24 Tc\n/F1 12 Tf\n10 20 Td\n(A) Tj\nET\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	width, _ := w.MeasureString("AB", F)
	if want := 12 + 2*12*BoldEmphasis; math.Abs(width-want) > 1e-9 {
		t.Errorf("bold width: got %g, want %g", width, want)
	}
}

func TestDrawStringAlignment(t *testing.T) {
	F := &font.Font{Face: &testFace{}, Size: 10}
	black := NewSolidBrush(color.Black)

	type testCase struct {
		format *StringFormat
		td     string
	}
	cases := []testCase{
		{&StringFormat{}, "0 100 Td"},
		{&StringFormat{Alignment: AlignNear, LineAlignment: LineAlignNear}, "0 92 Td"},
		{&StringFormat{Alignment: AlignCenter, LineAlignment: LineAlignCenter}, "45 72 Td"},
		{&StringFormat{Alignment: AlignFar, LineAlignment: LineAlignFar}, "90 52 Td"},
	}
	for _, c := range cases {
		w := NewWriter(&testResources{}, upwards())
		w.DrawStringRect("AB", F, black, 0, 100, 100, 50, c.format)
		got := finish(t, w)
		want := "q\nq\nBT\n/F1 10 Tf\n" + c.td + "\n(AB) Tj\nET\nQ\nQ"
		if got != want {
			t.Errorf("%v: got %q, want %q", *c.format, got, want)
		}
	}

	w := NewWriter(&testResources{}, &Options{PageBox: pageBox100})
	w.DrawStringRect("AB", F, black, 0, 10, 100, 50, &StringFormat{LineAlignment: LineAlignNear})
	got := finish(t, w)
	if want := "q\nq\nBT\n/F1 10 Tf\n0 82 Td\n(AB) Tj\nET\nQ\nQ"; got != want {
		t.Errorf("downwards: got %q, want %q", got, want)
	}
}

func TestDrawStringDecorations(t *testing.T) {
	F := &font.Font{Face: &testFace{}, Size: 10, Style: font.Underline | font.Strikeout}
	w := NewWriter(&testResources{}, upwards())
	w.DrawString("AB", F, NewSolidBrush(color.Black), 100, 200, nil)
	got := finish(t, w)

	want := "q\nq\nBT\n/F1 10 Tf\n100 200 Td\n(AB) Tj\nET\n" +
		"100 198.5 10 .5 re\nf\n" +
		"100 202.5 10 .5 re\nf\n" +
		"Q\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

// TestDecorationsDownwards checks that underline and strikeout keep their
// position relative to the glyphs when the y-axis points down.
func TestDecorationsDownwards(t *testing.T) {
	F := &font.Font{Face: &testFace{}, Size: 10, Style: font.Underline | font.Strikeout}
	w := NewWriter(&testResources{}, &Options{PageBox: pageBox100})
	w.DrawString("AB", F, NewSolidBrush(color.Black), 100, 50, nil)
	got := finish(t, w)

	// baseline at page y=50: underline spans 48.5 to 49, strikeout 52.5 to 53
	want := "q\nq\nBT\n/F1 10 Tf\n100 50 Td\n(AB) Tj\nET\n" +
		"100 48.5 10 .5 re\nf\n" +
		"100 52.5 10 .5 re\nf\n" +
		"Q\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDrawStringColorLayers(t *testing.T) {
	face := &testFace{
		colors: map[rune]*font.ColorRecord{
			'B': {Layers: []font.Layer{
				{GID: 200, PaletteIndex: 0},
				{GID: 201, PaletteIndex: font.ForegroundPalette},
			}},
		},
		palette: []color.Color{color.RGB(1, 0, 0)},
	}
	F := &font.Font{Face: face, Size: 10}

	w := NewWriter(&testResources{}, upwards())
	w.DrawString("AB", F, NewSolidBrush(color.Black), 10, 20, nil)
	got := finish(t, w)

	want := "q\nq\nBT\n/F1 10 Tf\n" +
		"10 20 Td\n<0041> Tj\n" +
		"1 0 0 rg\n5 0 Td\n<00C8> Tj\n" +
		"0 0 0 rg\n0 0 Td\n<00C9> Tj\n" +
		"ET\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDrawStringArguments(t *testing.T) {
	F := &font.Font{Face: &testFace{}, Size: 10}

	w := NewWriter(&testResources{}, upwards())
	w.DrawString("", F, NewSolidBrush(color.Black), 0, 0, nil)
	if got := finish(t, w); got != "" {
		t.Errorf("empty string: got %q", got)
	}

	w = NewWriter(&testResources{}, upwards())
	w.DrawString("A", nil, NewSolidBrush(color.Black), 0, 0, nil)
	if !errors.Is(w.Err, ErrNilArgument) {
		t.Errorf("got %v, want %v", w.Err, ErrNilArgument)
	}

	w = NewWriter(&testResources{}, upwards())
	w.DrawString("A", F, &LinearGradientBrush{}, 0, 0, nil)
	if w.Err != nil {
		t.Errorf("gradient text: %v", w.Err)
	}
	bold := &font.Font{Face: F.Face, Size: 10, Simulations: font.BoldSimulation}
	w.DrawString("A", bold, &LinearGradientBrush{}, 0, 0, nil)
	if !errors.Is(w.Err, ErrRenderingMode) {
		t.Errorf("got %v, want %v", w.Err, ErrRenderingMode)
	}
}

func TestMeasureString(t *testing.T) {
	w := NewWriter(&testResources{}, nil)
	width, height := w.MeasureString("AB", &font.Font{Face: &testFace{}, Size: 10})
	if width != 10 || height != 10 {
		t.Errorf("got %g x %g, want 10 x 10", width, height)
	}

	width, height = w.MeasureString("AB", nil)
	if width != 0 || height != 0 {
		t.Errorf("nil font: got %g x %g", width, height)
	}
	width, height = w.MeasureString("AB", &font.Font{Size: 10})
	if width != 0 || height != 0 {
		t.Errorf("font without face: got %g x %g", width, height)
	}
	if w.Err != nil {
		t.Errorf("MeasureString set error %v", w.Err)
	}
}
