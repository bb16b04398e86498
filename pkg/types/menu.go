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

package types

import "github.com/mattn/go-runewidth"

// Rows used by the window chrome. The status bar takes the last row.
const (
	MenuBarRow = 0
	ToolbarRow = 1
	TextTopRow = 2
)

// A MenuItem runs Command when activated. Items with an empty Command are inert.
type MenuItem struct {
	Label     string
	Command   string
	Separator bool
}

type Menu struct {
	Title string
	Items []MenuItem
}

type ToolItem struct {
	Label     string
	Command   string
	Tooltip   string
	Separator bool
}

// A Span is a horizontal run of cells on one row.
type Span struct {
	Start int
	Width int
}

func (s Span) Contains(col int) bool {
	return col >= s.Start && col < s.Start+s.Width
}

// MenuBarSpans returns the cells occupied by each menu title.
func MenuBarSpans(menus []Menu) []Span {
	spans := make([]Span, len(menus))
	x := 0
	for i, m := range menus {
		w := runewidth.StringWidth(m.Title) + 2
		spans[i] = Span{Start: x, Width: w}
		x += w
	}
	return spans
}

// ToolbarLabel is the text drawn for a toolbar entry.
func ToolbarLabel(item ToolItem) string {
	if item.Separator {
		return "|"
	}
	return "[" + item.Label + "]"
}

// ToolbarSpans returns the cells occupied by each toolbar entry.
func ToolbarSpans(items []ToolItem) []Span {
	spans := make([]Span, len(items))
	x := 1
	for i, item := range items {
		w := runewidth.StringWidth(ToolbarLabel(item))
		spans[i] = Span{Start: x, Width: w}
		x += w + 1
	}
	return spans
}

// DropdownRect is where the items of menus[index] are drawn when it is open.
func DropdownRect(menus []Menu, index int) Rect {
	spans := MenuBarSpans(menus)
	width := 0
	for _, item := range menus[index].Items {
		if w := runewidth.StringWidth(item.Label); w > width {
			width = w
		}
	}
	return Rect{
		Origin: Point{Row: MenuBarRow + 1, Col: spans[index].Start},
		Size:   Size{Rows: len(menus[index].Items), Cols: width + 4},
	}
}
