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
	"strings"

	gott "github.com/comikx/comikx/pkg/types"
)

type fakeDisplay struct {
	cells  map[gott.Point]rune
	colors map[gott.Point]gott.Color
	cursor gott.Point
	size   gott.Size
}

func newFakeDisplay(rows, cols int) *fakeDisplay {
	return &fakeDisplay{
		cells:  make(map[gott.Point]rune),
		colors: make(map[gott.Point]gott.Color),
		size:   gott.Size{Rows: rows, Cols: cols},
	}
}

func (d *fakeDisplay) SetCell(col, row int, c rune, fg, bg gott.Color) {
	d.cells[gott.Point{Row: row, Col: col}] = c
	d.colors[gott.Point{Row: row, Col: col}] = bg
}

func (d *fakeDisplay) SetCursor(p gott.Point) {
	d.cursor = p
}

func (d *fakeDisplay) HideCursor() {
	d.cursor = gott.Point{Row: -1, Col: -1}
}

func (d *fakeDisplay) GetSize() gott.Size {
	return d.size
}

// row returns the text of a screen row with trailing blanks removed.
func (d *fakeDisplay) row(row int) string {
	var b strings.Builder
	for col := 0; col < d.size.Cols; col++ {
		c, ok := d.cells[gott.Point{Row: row, Col: col}]
		if !ok {
			c = ' '
		}
		b.WriteRune(c)
	}
	return strings.TrimRight(b.String(), " ")
}

// fakeConsole replays scripted events. When the script runs out it
// reports an interrupt, which closes any dialog.
type fakeConsole struct {
	*fakeDisplay
	events  []*gott.Event
	flushes int
}

func newFakeConsole(events ...*gott.Event) *fakeConsole {
	return &fakeConsole{fakeDisplay: newFakeDisplay(24, 80), events: events}
}

func (c *fakeConsole) Clear() {
	c.cells = make(map[gott.Point]rune)
	c.colors = make(map[gott.Point]gott.Color)
}

func (c *fakeConsole) Flush() {
	c.flushes++
}

func (c *fakeConsole) GetNextEvent() *gott.Event {
	if len(c.events) == 0 {
		return &gott.Event{Type: gott.EventInterrupt}
	}
	event := c.events[0]
	c.events = c.events[1:]
	return event
}

func keyEvent(k gott.Key) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Key: k}
}

func charEvent(ch rune) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Key: gott.KeyNone, Ch: ch}
}

func typeEvents(text string) []*gott.Event {
	var events []*gott.Event
	for _, ch := range text {
		if ch == ' ' {
			events = append(events, keyEvent(gott.KeySpace))
		} else {
			events = append(events, charEvent(ch))
		}
	}
	return events
}

func clickEvent(col, row int) *gott.Event {
	return &gott.Event{Type: gott.EventMouse, Key: gott.KeyMouseLeft, Mouse: gott.Point{Row: row, Col: col}}
}
