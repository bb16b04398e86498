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

package screen

import (
	"github.com/mattn/go-runewidth"

	"github.com/comikx/comikx/pkg/editor"
	gott "github.com/comikx/comikx/pkg/types"
)

// Colors of the window chrome.
const (
	barFg      = gott.ColorBlack
	barBg      = gott.ColorWhite
	selectedFg = gott.ColorWhite
	selectedBg = gott.ColorBlue
)

// Draw lays out and draws the menu bar, the toolbar, the text area and the
// status bar, then any open menu on top of them.
func Draw(d gott.Display, e *editor.Editor, c gott.Commander) {
	size := d.GetSize()
	if size.Rows <= 0 || size.Cols <= 0 {
		return
	}

	menu, item, open := c.GetOpenMenu()
	drawMenuBar(d, size, c.GetMenus(), c.GetTitle(), menu, open)
	drawToolbar(d, size, c.GetToolbar())

	textRows := size.Rows - gott.TextTopRow - 1
	if textRows < 0 {
		textRows = 0
	}
	w := e.GetWindow()
	w.Layout(gott.Rect{
		Origin: gott.Point{Row: gott.TextTopRow, Col: 0},
		Size:   gott.Size{Rows: textRows, Cols: size.Cols},
	})
	w.Render(d)

	drawStatusBar(d, size, c.GetStatusText())

	if open {
		drawDropdown(d, c.GetMenus(), menu, item)
		d.HideCursor()
	} else if textRows > 0 {
		w.SetCursorForDisplay(d)
	} else {
		d.HideCursor()
	}
}

// drawText writes text starting at col and returns the column after it.
// Nothing is drawn at or beyond limit.
func drawText(d gott.Display, col, row, limit int, text string, fg, bg gott.Color) int {
	for _, c := range text {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			w = 1
		}
		if col+w > limit {
			break
		}
		d.SetCell(col, row, c, fg, bg)
		col += w
	}
	return col
}

func fillRow(d gott.Display, row, from, to int, fg, bg gott.Color) {
	for x := from; x < to; x++ {
		d.SetCell(x, row, ' ', fg, bg)
	}
}

func drawMenuBar(d gott.Display, size gott.Size, menus []gott.Menu, title string, openMenu int, open bool) {
	row := gott.MenuBarRow
	fillRow(d, row, 0, size.Cols, barFg, barBg)
	spans := gott.MenuBarSpans(menus)
	end := 0
	for i, m := range menus {
		fg, bg := barFg, barBg
		if open && i == openMenu {
			fg, bg = selectedFg, selectedBg
		}
		fillRow(d, row, spans[i].Start, min(spans[i].Start+spans[i].Width, size.Cols), fg, bg)
		end = drawText(d, spans[i].Start+1, row, size.Cols, m.Title, fg, bg) + 1
	}
	// the window title sits at the right end when there is room for it
	width := runewidth.StringWidth(title)
	if start := size.Cols - width - 1; start > end {
		drawText(d, start, row, size.Cols, title, barFg, barBg)
	}
}

func drawToolbar(d gott.Display, size gott.Size, items []gott.ToolItem) {
	if size.Rows <= gott.ToolbarRow {
		return
	}
	for i, span := range gott.ToolbarSpans(items) {
		drawText(d, span.Start, gott.ToolbarRow, size.Cols, gott.ToolbarLabel(items[i]), gott.ColorDefault, gott.ColorDefault)
	}
}

func drawStatusBar(d gott.Display, size gott.Size, text string) {
	row := size.Rows - 1
	if row <= gott.ToolbarRow {
		return
	}
	fillRow(d, row, 0, size.Cols, barFg, barBg)
	drawText(d, 1, row, size.Cols, text, barFg, barBg)
}

func drawDropdown(d gott.Display, menus []gott.Menu, menu, item int) {
	if menu < 0 || menu >= len(menus) {
		return
	}
	r := gott.DropdownRect(menus, menu)
	right := r.Origin.Col + r.Size.Cols
	for i, mi := range menus[menu].Items {
		row := r.Origin.Row + i
		fg, bg := barFg, barBg
		if i == item && !mi.Separator {
			fg, bg = selectedFg, selectedBg
		}
		if mi.Separator {
			for x := r.Origin.Col; x < right; x++ {
				d.SetCell(x, row, '─', barFg, barBg)
			}
			continue
		}
		fillRow(d, row, r.Origin.Col, right, fg, bg)
		if mi.Command == "" && i != item {
			fg = gott.ColorCyan
		}
		drawText(d, r.Origin.Col+2, row, right, mi.Label, fg, bg)
	}
}
