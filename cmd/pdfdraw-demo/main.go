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

// Pdfdraw-demo prints the content stream of a small sample page.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/color"
	"seehuhn.de/go/pdfdraw/font"
	"seehuhn.de/go/pdfdraw/font/sfntface"
	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/resource"
)

func main() {
	versionArg := flag.String("pdf", "1.7", "PDF version of the output")
	upwards := flag.Bool("upwards", false, "use a y-axis which points upwards")
	cmyk := flag.Bool("cmyk", false, "write colors in CMYK")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		pdfdraw.SetLogger(slog.New(h))
	}

	ver, err := pdfdraw.ParseVersion(*versionArg)
	check(err)
	opt := &graphics.Options{Version: ver}
	if *upwards {
		opt.Direction = graphics.DirectionUpwards
	}
	if *cmyk {
		opt.ColorMode = color.ModeCMYK
	}

	face, err := sfntface.Read(bytes.NewReader(goregular.TTF), nil)
	check(err)

	res := resource.New()
	w := graphics.NewWriter(res, opt)
	drawSample(w, face)
	data, err := w.Close()
	check(err)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("% page size:", w.PageSize())
		for _, cat := range []resource.Category{resource.CatExtGState, resource.CatPattern, resource.CatFont, resource.CatXObject} {
			names := res.Names(cat)
			if len(names) > 0 {
				fmt.Printf("%% %s: %v\n", cat, names)
			}
		}
		if res.Transparency {
			fmt.Println("% page uses transparency")
		}
		fmt.Println()
	}
	os.Stdout.Write(data)
	fmt.Println()
}

func drawSample(w *graphics.Writer, face font.Face) {
	w.WriteComment("pdfdraw sample page")

	pen := graphics.NewPen(color.RGB(0, 0, 0.6), 2)
	w.DrawLine(pen, 72, 72, 500, 72)

	fill := graphics.NewSolidBrush(color.RGB8(255, 200, 0).WithAlpha(0.7))
	w.DrawEllipse(pen, fill, 100, 100, 200, 120)

	dashed := graphics.NewPen(color.Black, 1)
	dashed.DashStyle = graphics.DashDash
	star := make([]vec.Vec2, 5)
	for i := range star {
		φ := float64(i*144-90) * math.Pi / 180
		star[i] = vec.Vec2{X: 410 + 60*math.Cos(φ), Y: 160 + 60*math.Sin(φ)}
	}
	w.DrawPolygon(dashed, graphics.NewSolidBrush(color.Gray(0.8)), star, graphics.FillEvenOdd)

	tok := w.Save()
	w.TranslateTransform(72, 300)
	w.RotateTransform(-10)
	F := &font.Font{Face: face, Size: 24, Style: font.Underline}
	w.DrawString("Hello, world!", F, graphics.NewSolidBrush(color.Black), 0, 0, nil)
	w.Restore(tok)

	F = &font.Font{Face: face, Size: 12, Simulations: font.ItalicSimulation}
	w.DrawStringRect("centred in a box", F, graphics.NewSolidBrush(color.RGB(0.6, 0, 0)),
		72, 350, 300, 40, &graphics.StringFormat{
			Alignment:     graphics.AlignCenter,
			LineAlignment: graphics.LineAlignCenter,
		})
	w.DrawRectangle(graphics.NewPen(color.Gray(0.5), 0.5), nil, 72, 350, 300, 40)
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
