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

package pdfdraw

import (
	"bytes"
	"fmt"
	"io"
)

// Name is a PDF name object, as used for resource names in content
// streams.
type Name string

// PDF writes the name, including the leading slash, to w.
// Characters outside the regular printable range are written as
// "#xx" escapes.
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)

	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range l {
		if isSpace[c] || isDelimiter[c] || c < 0x21 || c > 0x7e || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (x Name) String() string {
	buf := &bytes.Buffer{}
	_ = x.PDF(buf)
	return buf.String()
}

// String is a PDF string object, written in literal form "(...)".
type String []byte

// PDF writes the string to w as a literal string.  Balanced parentheses
// are written unchanged, backslashes and control characters are escaped.
func (x String) PDF(w io.Writer) error {
	l := []byte(x)

	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	buf := &bytes.Buffer{}
	buf.WriteString("(")
	for _, c := range l {
		switch {
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c == '\b':
			buf.WriteString(`\b`)
		case c == '\f':
			buf.WriteString(`\f`)
		case c == '\\':
			buf.WriteString(`\\`)
		case !balanced && (c == '(' || c == ')'):
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c < 32:
			fmt.Fprintf(buf, `\%03o`, c)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteString(")")

	_, err := w.Write(buf.Bytes())
	return err
}

// HexString is a PDF string object, written in hexadecimal form "<...>".
// This is used for glyph-index encoded text.
type HexString []byte

// PDF writes the string to w, using upper case hex digits.
func (x HexString) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<%X>", []byte(x))
	return err
}

var (
	isSpace = map[byte]bool{
		0:  true,
		9:  true,
		10: true,
		12: true,
		13: true,
		32: true,
	}
	isDelimiter = map[byte]bool{
		'(': true,
		')': true,
		'<': true,
		'>': true,
		'[': true,
		']': true,
		'{': true,
		'}': true,
		'/': true,
		'%': true,
	}
)
