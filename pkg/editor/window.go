//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import (
	"github.com/mattn/go-runewidth"

	gott "github.com/comikx/comikx/pkg/types"
)

const tabStop = 8

// A Window manages the rectangular area of the screen that shows the buffer.
// Offsets are kept in rows and display columns, so tabs and wide
// characters scroll correctly.
type Window struct {
	editor *Editor
	origin gott.Point
	size   gott.Size
	offset gott.Size // display offset
}

func NewWindow(e *Editor) *Window {
	return &Window{editor: e}
}

func (w *Window) Layout(r gott.Rect) {
	w.origin = r.Origin
	w.size = r.Size
}

func (w *Window) GetSize() gott.Size {
	return w.size
}

func (w *Window) GetOffset() gott.Size {
	return w.offset
}

// cellWidth is the number of screen cells taken by c when it starts at display column x.
func cellWidth(c rune, x int) int {
	if c == '\t' {
		return tabStop - x%tabStop
	}
	if width := runewidth.RuneWidth(c); width > 0 {
		return width
	}
	return 1
}

// displayColumn converts a column in a row to a display column.
func displayColumn(text []rune, col int) int {
	x := 0
	for i := 0; i < col && i < len(text); i++ {
		x += cellWidth(text[i], x)
	}
	return x
}

// Render draws the visible rows of the buffer.
func (w *Window) Render(d gott.Display) {
	w.adjustDisplayOffsetForScrolling()

	b := w.editor.buffer
	from, to, selecting := w.editor.Selection()
	for i := 0; i < w.size.Rows; i++ {
		r := i + w.offset.Rows
		screenRow := w.origin.Row + i
		if r >= b.GetRowCount() {
			d.SetCell(w.origin.Col, screenRow, '~', gott.ColorBlue, gott.ColorDefault)
			continue
		}
		x := 0
		for col, c := range b.rows[r].Text {
			width := cellWidth(c, x)
			fg, bg := gott.ColorDefault, gott.ColorDefault
			p := gott.Point{Row: r, Col: col}
			if selecting && !p.Before(from) && p.Before(to) {
				fg, bg = gott.ColorBlack, gott.ColorWhite
			}
			sx := x - w.offset.Cols
			if c == '\t' {
				for k := 0; k < width; k++ {
					if sx+k >= 0 && sx+k < w.size.Cols {
						d.SetCell(w.origin.Col+sx+k, screenRow, ' ', fg, bg)
					}
				}
			} else if sx >= 0 && sx+width <= w.size.Cols {
				d.SetCell(w.origin.Col+sx, screenRow, c, fg, bg)
			}
			x += width
			if x-w.offset.Cols >= w.size.Cols {
				// truncate line to fit screen
				break
			}
		}
	}
}

// Recompute the display offset to keep the cursor onscreen.
func (w *Window) adjustDisplayOffsetForScrolling() {
	cursor := w.editor.cursor
	if cursor.Row < w.offset.Rows {
		// scroll up
		w.offset.Rows = cursor.Row
	}
	if w.size.Rows > 0 && cursor.Row-w.offset.Rows >= w.size.Rows {
		// scroll down
		w.offset.Rows = cursor.Row - w.size.Rows + 1
	}
	x := displayColumn(w.editor.buffer.rows[cursor.Row].Text, cursor.Col)
	if x < w.offset.Cols {
		// scroll left
		w.offset.Cols = x
	}
	if w.size.Cols > 0 && x-w.offset.Cols >= w.size.Cols {
		// scroll right
		w.offset.Cols = x - w.size.Cols + 1
	}
}

// SetCursorForDisplay places the display cursor over the editor cursor.
func (w *Window) SetCursorForDisplay(d gott.Display) {
	cursor := w.editor.cursor
	x := displayColumn(w.editor.buffer.rows[cursor.Row].Text, cursor.Col)
	d.SetCursor(gott.Point{
		Row: w.origin.Row + cursor.Row - w.offset.Rows,
		Col: w.origin.Col + x - w.offset.Cols,
	})
}

// PointAt returns the buffer position shown at a screen position.
func (w *Window) PointAt(col, row int) (gott.Point, bool) {
	if !(gott.Rect{Origin: w.origin, Size: w.size}).Contains(col, row) {
		return gott.Point{}, false
	}
	b := w.editor.buffer
	r := clipToRange(row-w.origin.Row+w.offset.Rows, 0, b.GetRowCount()-1)
	target := col - w.origin.Col + w.offset.Cols
	text := b.rows[r].Text
	x := 0
	for i, c := range text {
		width := cellWidth(c, x)
		if target < x+width {
			return gott.Point{Row: r, Col: i}, true
		}
		x += width
	}
	return gott.Point{Row: r, Col: len(text)}, true
}
