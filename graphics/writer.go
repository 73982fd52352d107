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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/font"
)

// Resources allocates the resource names used in a content stream.
// The implementation owns the resource dictionary of the page or form.
type Resources interface {
	// ExtGState returns the name of an extended graphics state.
	ExtGState(gs ExtGState) (pdfdraw.Name, error)

	// Pattern returns the name of a pattern.
	Pattern(p *Pattern) (pdfdraw.Name, error)

	// Font returns the name of the font for the given face and font type,
	// together with a handle which records the glyphs used.
	Font(face font.Face, typ font.Type) (pdfdraw.Name, font.Handle, error)

	// XObject returns the name of an image or form XObject.
	XObject(img *Image) (pdfdraw.Name, error)

	// MarkTransparency records that the content uses transparency.
	MarkTransparency()
}

// Errors reported by the Writer.
var (
	ErrAppendOrder     = errors.New("graphics: only prepended transformations are supported")
	ErrRenderingMode   = errors.New("graphics: unsupported text rendering mode for brush")
	ErrClipLevel       = errors.New("graphics: clipping path belongs to a different save level")
	ErrBezierPoints    = errors.New("graphics: number of Bézier points must be 3n+1")
	ErrNoPenOrBrush    = errors.New("graphics: need a pen or a brush")
	ErrNotEnoughPoints = errors.New("graphics: not enough points")
	ErrNilArgument     = errors.New("graphics: missing argument")
	ErrUnknownToken    = errors.New("graphics: unknown state token")
	ErrClosed          = errors.New("graphics: writer is closed")
)

type streamMode uint8

const (
	modeGraphics streamMode = iota
	modeText
)

// Writer generates a PDF content stream from drawing calls.
//
// Only the parts of the graphics state which change are written to the
// stream.  A Writer is used for a single page or form and must not be
// used concurrently.
//
// If an operation fails, Err is set and all further operations are
// ignored.  The error is also returned by [Writer.Close].
type Writer struct {
	Err error

	opt *Options
	res Resources
	log *slog.Logger

	content bytes.Buffer

	state     State
	stack     Stack
	mode      streamMode
	clipLevel int
	lastToken StateToken

	defaultView matrix.Matrix
	pageHeight  float64
}

// NewWriter allocates a new Writer.  Resource names are obtained from res.
// If opt is nil, default options are used.
func NewWriter(res Resources, opt *Options) *Writer {
	opt = MergeOptions(opt, defaultOptions)
	logger := opt.Logger
	if logger == nil {
		logger = pdfdraw.Logger()
	}
	dv, h := pageMatrix(opt)
	return &Writer{
		opt:         opt,
		res:         res,
		log:         logger,
		state:       NewState(),
		defaultView: dv,
		pageHeight:  h,
	}
}

// Options returns the effective options of the writer.
func (w *Writer) Options() *Options {
	return w.opt
}

// PageSize returns the size of the page in user space units.
func (w *Writer) PageSize() rect.Rect {
	u := w.defaultView[0]
	box := w.opt.PageBox
	return rect.Rect{URx: (box.URx - box.LLx) / u, URy: w.pageHeight / w.defaultView[3]}
}

// State returns the current graphics state.
func (w *Writer) State() State {
	return w.state
}

// Close finishes the content stream and returns its content.
// All outstanding save levels are closed.
func (w *Writer) Close() ([]byte, error) {
	if w.Err != nil {
		return nil, w.Err
	}

	if w.mode == modeText {
		w.emit("ET")
		w.mode = modeGraphics
	}
	if open := w.openScopes(); open > 0 {
		w.log.Warn("unbalanced save", "open", open)
	}
	for w.stack.Len() > 0 {
		w.restoreState()
	}

	res := bytes.TrimSuffix(w.content.Bytes(), []byte("\n"))
	w.log.Debug("content stream closed", "bytes", len(res))

	w.Err = ErrClosed
	return res, nil
}

// openScopes returns the number of states saved by the caller which have
// not been restored.
func (w *Writer) openScopes() int {
	n := 0
	for _, s := range w.stack.states {
		if s.Token != 0 {
			n++
		}
	}
	return n
}

// WriteComment writes a comment line to the content stream.
func (w *Writer) WriteComment(text string) {
	if w.Err != nil {
		return
	}
	w.beginPage()
	for line := range strings.Lines(text) {
		w.content.WriteString("% ")
		w.content.WriteString(strings.TrimRight(line, "\r\n"))
		w.content.WriteByte('\n')
	}
}

// Save saves the graphics state.  The state can be restored by passing
// the returned token to [Writer.Restore].
func (w *Writer) Save() StateToken {
	if w.Err != nil {
		return 0
	}
	w.beginGraphics()
	w.realizeTransform()

	w.lastToken++
	tok := w.lastToken
	w.state.Token = tok
	w.saveState()
	w.state.Token = 0
	return tok
}

// Restore restores the graphics state saved with the given token.  States
// saved after tok are restored as well.
func (w *Writer) Restore(tok StateToken) {
	if w.Err != nil {
		return
	}
	if tok == 0 || w.stack.find(tok) == 0 {
		w.Err = ErrUnknownToken
		return
	}
	w.beginGraphics()
	for {
		s := w.restoreState()
		if s.Token == tok {
			break
		}
	}
}

// BeginContainer opens a new container.  Within a container, changes to
// the graphics state are local.
func (w *Writer) BeginContainer() StateToken {
	return w.Save()
}

// BeginContainerRect opens a new container which maps the rectangle src
// to the rectangle dst.
func (w *Writer) BeginContainerRect(dst, src rect.Rect) StateToken {
	tok := w.Save()
	if w.Err != nil {
		return tok
	}
	sx := (dst.URx - dst.LLx) / (src.URx - src.LLx)
	sy := (dst.URy - dst.LLy) / (src.URy - src.LLy)
	m := matrix.Translate(-src.LLx, -src.LLy).Mul(matrix.Scale(sx, sy)).Mul(matrix.Translate(dst.LLx, dst.LLy))
	w.AddTransform(m, MatrixOrderPrepend)
	return tok
}

// EndContainer closes a container opened by [Writer.BeginContainer].
func (w *Writer) EndContainer(tok StateToken) {
	w.Restore(tok)
}

// beginPage writes the operators which start the content stream.
func (w *Writer) beginPage() {
	if w.state.Level != levelInitial {
		return
	}
	w.saveState()
	if w.defaultView != matrix.Identity {
		w.writeMatrix(w.defaultView, "cm")
	}
	w.log.Debug("page started", "defaultView", w.defaultView, "height", w.pageHeight)
}

// beginGraphics ends a text object, if needed.
func (w *Writer) beginGraphics() {
	if w.mode == modeText {
		w.emit("ET")
		w.mode = modeGraphics
	}
}

// beginText starts a text object, if needed.
func (w *Writer) beginText() {
	if w.mode == modeGraphics {
		w.emit("BT")
		w.mode = modeText
		w.state.TextPos.X = 0
		w.state.TextPos.Y = 0
		w.state.ItalicOn = false
	}
}

// saveState pushes the current state and writes "q".
func (w *Writer) saveState() {
	w.state.Level = w.stack.Push(w.state)
	w.emit("q")
}

// restoreState pops the top-most state and writes "Q".
// The popped state is returned.  Tokens are only kept on the stack, the
// current state never carries one.
func (w *Writer) restoreState() State {
	s := w.stack.Pop()
	w.state = s
	w.state.Token = 0
	if w.clipLevel > s.Level {
		w.clipLevel = 0
	}
	w.emit("Q")
	return s
}
