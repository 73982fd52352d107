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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdraw/color"
)

func TestSaveRestore(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	tok := w.Save()
	w.DrawLine(NewPen(color.RGB(1, 0, 0), 2), 0, 0, 1, 1)
	w.Restore(tok)
	w.DrawLine(NewPen(color.Black, 1), 0, 0, 1, 1)
	got := finish(t, w)

	want := "q\nq\nq\n2 w\n1 0 0 RG\n0 0 m\n1 1 l\nS\nQ\n0 0 m\n1 1 l\nS\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestRestoreNested(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	t1 := w.Save()
	t2 := w.Save()
	if t1 == t2 {
		t.Fatalf("tokens not unique: %d", t1)
	}
	w.Restore(t1)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if w.stack.Len() != levelWorldSpace {
		t.Errorf("got stack depth %d, want %d", w.stack.Len(), levelWorldSpace)
	}

	w.Restore(t2)
	if !errors.Is(w.Err, ErrUnknownToken) {
		t.Errorf("got %v, want %v", w.Err, ErrUnknownToken)
	}
}

func TestRestoreTwice(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	tok := w.Save()
	w.Restore(tok)
	w.Restore(tok)
	if !errors.Is(w.Err, ErrUnknownToken) {
		t.Errorf("got %v, want %v", w.Err, ErrUnknownToken)
	}
}

func TestBalanced(t *testing.T) {
	buf := &bytes.Buffer{}
	opt := upwards()
	opt.Logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	w := NewWriter(&testResources{}, opt)
	w.Save()
	w.TranslateTransform(10, 10)
	w.Save()
	w.DrawRectangle(nil, NewSolidBrush(color.Black), 0, 0, 1, 1)
	got := finish(t, w)

	lines := strings.Split(got, "\n")
	var q, Q int
	for _, l := range lines {
		switch l {
		case "q":
			q++
		case "Q":
			Q++
		}
	}
	if q != Q {
		t.Errorf("%d q and %d Q operators in %q", q, Q, got)
	}
	if !strings.Contains(buf.String(), "unbalanced save") {
		t.Errorf("missing log message: %q", buf.String())
	}
}

func TestBeginContainerRect(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	tok := w.BeginContainerRect(
		rect.Rect{LLx: 10, LLy: 10, URx: 30, URy: 30},
		rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})
	w.DrawLine(NewPen(color.Black, 1), 0, 0, 10, 0)
	w.EndContainer(tok)
	w.DrawLine(NewPen(color.Black, 1), 0, 0, 10, 0)
	got := finish(t, w)

	want := "q\nq\nq\n2 0 0 2 10 10 cm\n0 0 m\n10 0 l\nS\nQ\n0 0 m\n10 0 l\nS\nQ\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestClip(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	w.SetClipRect(0, 0, 10, 10, CombineReplace)
	w.SetClipRect(5, 5, 10, 10, CombineReplace)
	w.ResetClip()
	got := finish(t, w)

	want := "q\nq\n" +
		"0 0 m\n10 0 l\n10 10 l\n0 10 l\nh\nW* n\n" +
		"Q\nq\n" +
		"5 5 m\n15 5 l\n15 15 l\n5 15 l\nh\nW* n\n" +
		"Q\nq\n" +
		"Q\nQ"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestClipWinding(t *testing.T) {
	p := &Path{FillMode: FillWinding}
	p.AddRectangle(0, 0, 1, 1)
	w := NewWriter(&testResources{}, upwards())
	w.IntersectClip(p)
	got := finish(t, w)
	if !strings.Contains(got, "h\nW n\n") {
		t.Errorf("missing winding clip in %q", got)
	}
}

func TestClipLevel(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	w.SetClipRect(0, 0, 10, 10, CombineReplace)
	w.Save()
	w.SetClipRect(1, 1, 5, 5, CombineIntersect)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	w.SetClipRect(1, 1, 5, 5, CombineReplace)
	if !errors.Is(w.Err, ErrClipLevel) {
		t.Errorf("got %v, want %v", w.Err, ErrClipLevel)
	}

	w = NewWriter(&testResources{}, upwards())
	w.SetClipRect(0, 0, 10, 10, CombineReplace)
	w.Save()
	w.ResetClip()
	if !errors.Is(w.Err, ErrClipLevel) {
		t.Errorf("got %v, want %v", w.Err, ErrClipLevel)
	}
}

func TestClipRestore(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	tok := w.Save()
	w.SetClipRect(0, 0, 10, 10, CombineReplace)
	w.Restore(tok)

	// the clipping path was removed together with the saved state
	w.SetClipRect(0, 0, 20, 20, CombineReplace)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if w.clipLevel != levelWorldSpace {
		t.Errorf("got clip level %d, want %d", w.clipLevel, levelWorldSpace)
	}
}

func TestClipEmpty(t *testing.T) {
	w := NewWriter(&testResources{}, upwards())
	w.SetClip(&Path{}, CombineReplace)
	if got := finish(t, w); got != "" {
		t.Errorf("got %q, want empty stream", got)
	}

	w = NewWriter(&testResources{}, upwards())
	w.SetClip(nil, CombineReplace)
	if !errors.Is(w.Err, ErrNilArgument) {
		t.Errorf("got %v, want %v", w.Err, ErrNilArgument)
	}
}

func TestWriteComment(t *testing.T) {
	w := NewWriter(&testResources{}, nil)
	w.WriteComment("hello\nworld")
	got := finish(t, w)
	if want := "q\n% hello\n% world\nQ"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCloseTwice(t *testing.T) {
	w := NewWriter(&testResources{}, nil)
	if _, err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want %v", err, ErrClosed)
	}
}
