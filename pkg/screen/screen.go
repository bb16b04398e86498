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
	"github.com/nsf/termbox-go"

	"github.com/comikx/comikx/pkg/editor"
	gott "github.com/comikx/comikx/pkg/types"
)

// The Screen draws the state of an Editor on the terminal.
type Screen struct {
	size gott.Size // screen size
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Render redraws the whole window.
func (s *Screen) Render(e *editor.Editor, c gott.Commander) {
	s.Clear()
	Draw(s, e, c)
	s.Flush()
}

func (s *Screen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()
}

func (s *Screen) Flush() {
	termbox.Flush()
}

func (s *Screen) GetSize() gott.Size {
	return s.size
}

func (s *Screen) SetCell(col, row int, c rune, fg, bg gott.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (s *Screen) SetCursor(p gott.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (s *Screen) HideCursor() {
	termbox.HideCursor()
}

// GetNextEvent blocks until the terminal reports something.
func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return convertEvent(event)
}

// Interrupt wakes up GetNextEvent with an EventInterrupt. It is safe to
// call from another goroutine.
func (s *Screen) Interrupt() {
	termbox.Interrupt()
}
