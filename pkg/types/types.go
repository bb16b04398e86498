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

import "fmt"

// Commander modes
const (
	ModeEdit = 0
	ModeMenu = 1
	ModeQuit = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

// Before reports whether p comes before other in reading order.
func (p Point) Before(other Point) bool {
	return p.Row < other.Row || (p.Row == other.Row && p.Col < other.Col)
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether the screen position (col, row) falls inside r.
func (r Rect) Contains(col, row int) bool {
	return row >= r.Origin.Row && row < r.Origin.Row+r.Size.Rows &&
		col >= r.Origin.Col && col < r.Origin.Col+r.Size.Cols
}

// Choice is the answer to the unsaved-changes prompt.
type Choice int

const (
	ChoiceSave Choice = iota
	ChoiceDiscard
	ChoiceCancel
)

func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	case ChoiceCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseChoice converts a choice name back into a Choice.
func ParseChoice(name string) (Choice, error) {
	for _, c := range []Choice{ChoiceSave, ChoiceDiscard, ChoiceCancel} {
		if c.String() == name {
			return c, nil
		}
	}
	return ChoiceCancel, fmt.Errorf("unknown choice %q", name)
}

// A Filter narrows the files offered by a file dialog.
type Filter struct {
	Name    string
	Pattern string
}

func (f Filter) String() string {
	return fmt.Sprintf("%s (%s)", f.Name, f.Pattern)
}

// TextBuffer is the part of the text widget that the document session uses.
type TextBuffer interface {
	Text() string
	SetText(text string)
	Clear()
	IsModified() bool
	SetModified(modified bool)
}

// Dialogs asks the user questions. Every method blocks until answered.
// An empty path means the user cancelled.
type Dialogs interface {
	AskSaveChanges() Choice
	OpenPath() string
	SavePath(suggested string, filters []Filter) (string, Filter)
	Warn(title, message string)
}

// FileStore reads and writes whole documents.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path, text string) error
}

// Editable is the set of primitives that operations use to change text.
type Editable interface {
	GetCursor() Point
	SetCursor(cursor Point)
	InsertTextAt(at Point, text string) Point
	DeleteRange(from, to Point) string
}

type Operation interface {
	Perform(e Editable) Operation // performs the operation and returns its inverse
}

type Display interface {
	SetCell(col, row int, c rune, fg, bg Color)
	SetCursor(p Point)
	HideCursor()
	GetSize() Size
}

// Commander is what the screen needs to draw the window chrome.
type Commander interface {
	GetMenus() []Menu
	GetToolbar() []ToolItem
	GetOpenMenu() (menu int, item int, open bool)
	GetStatusText() string
	GetTitle() string
}
