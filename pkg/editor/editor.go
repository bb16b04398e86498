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
	"github.com/comikx/comikx/pkg/operations"
	gott "github.com/comikx/comikx/pkg/types"
)

// The Editor manages text editing in a buffer and its window.
// It implements the TextBuffer that a document session reads and writes.
type Editor struct {
	buffer    *Buffer
	window    *Window
	cursor    gott.Point         // cursor position
	mark      gott.Point         // selection anchor, valid when marking is true
	marking   bool               // true while a selection is being made
	clipboard Clipboard          // used to cut/copy and paste
	insert    *operations.Insert // typing run that new characters extend
	undo      []gott.Operation   // stack of operations to undo
	redo      []gott.Operation   // stack of undone operations to redo
	modified  bool               // true after any edit since the text was last set
}

type Option func(*Editor)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(e *Editor) {
		e.clipboard = c
	}
}

// WithText sets the initial contents of the buffer.
func WithText(text string) Option {
	return func(e *Editor) {
		e.buffer.LoadText(text)
	}
}

func New(options ...Option) *Editor {
	e := &Editor{
		buffer:    NewBuffer(),
		clipboard: &SystemClipboard{},
	}
	e.window = NewWindow(e)
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Editor) GetWindow() *Window {
	return e.window
}

// text buffer

func (e *Editor) Text() string {
	return e.buffer.Text()
}

// SetText replaces the whole document. The undo history is discarded.
func (e *Editor) SetText(text string) {
	e.buffer.LoadText(text)
	e.cursor = gott.Point{}
	e.marking = false
	e.insert = nil
	e.undo = nil
	e.redo = nil
	e.modified = false
}

func (e *Editor) Clear() {
	e.SetText("")
}

func (e *Editor) IsModified() bool {
	return e.modified
}

func (e *Editor) SetModified(modified bool) {
	e.modified = modified
}

// editable

func (e *Editor) GetCursor() gott.Point {
	return e.cursor
}

func (e *Editor) SetCursor(cursor gott.Point) {
	e.cursor = e.buffer.Clip(cursor)
}

func (e *Editor) InsertTextAt(at gott.Point, text string) gott.Point {
	return e.buffer.InsertText(at, text)
}

func (e *Editor) DeleteRange(from, to gott.Point) string {
	return e.buffer.DeleteRange(from, to)
}

// Perform performs an operation and saves its inverse for undo.
func (e *Editor) Perform(op gott.Operation) {
	e.insert = nil
	inverse := op.Perform(e)
	e.undo = append(e.undo, inverse)
	e.redo = nil
	e.modified = true
}

func (e *Editor) CanUndo() bool {
	return len(e.undo) > 0
}

func (e *Editor) CanRedo() bool {
	return len(e.redo) > 0
}

func (e *Editor) Undo() bool {
	e.insert = nil
	e.marking = false
	if len(e.undo) == 0 {
		return false
	}
	last := len(e.undo) - 1
	op := e.undo[last]
	e.undo = e.undo[0:last]
	e.redo = append(e.redo, op.Perform(e))
	e.modified = true
	return true
}

func (e *Editor) Redo() bool {
	e.insert = nil
	e.marking = false
	if len(e.redo) == 0 {
		return false
	}
	last := len(e.redo) - 1
	op := e.redo[last]
	e.redo = e.redo[0:last]
	e.undo = append(e.undo, op.Perform(e))
	e.modified = true
	return true
}

// typing

func (e *Editor) InsertChar(c rune) {
	e.deleteSelection()
	if c != '\n' && e.insert != nil && e.insert.End() == e.cursor {
		e.insert.Extend(e, string(c))
		e.redo = nil
		e.modified = true
		return
	}
	op := &operations.Insert{At: e.cursor, Text: string(c)}
	e.Perform(op)
	if c != '\n' {
		e.insert = op
	}
}

func (e *Editor) InsertText(text string) {
	e.deleteSelection()
	if text == "" {
		return
	}
	e.Perform(&operations.Insert{At: e.cursor, Text: text})
}

// ReplaceText replaces the whole document as one undoable edit.
func (e *Editor) ReplaceText(text string) {
	e.marking = false
	last := e.buffer.GetRowCount() - 1
	end := gott.Point{Row: last, Col: e.buffer.GetRowLength(last)}
	if end != (gott.Point{}) {
		e.Perform(&operations.Delete{From: gott.Point{}, To: end})
	}
	e.InsertText(text)
}

// BackspaceChar deletes the selection or the character before the cursor.
func (e *Editor) BackspaceChar() {
	if e.deleteSelection() {
		return
	}
	from := e.cursor
	if from.Col > 0 {
		from.Col--
	} else if from.Row > 0 {
		from.Row--
		from.Col = e.buffer.GetRowLength(from.Row)
	} else {
		return
	}
	e.Perform(&operations.Delete{From: from, To: e.cursor})
}

// DeleteChar deletes the selection or the character under the cursor.
func (e *Editor) DeleteChar() {
	if e.deleteSelection() {
		return
	}
	to := e.cursor
	if to.Col < e.buffer.GetRowLength(to.Row) {
		to.Col++
	} else if to.Row < e.buffer.GetRowCount()-1 {
		to.Row++
		to.Col = 0
	} else {
		return
	}
	e.Perform(&operations.Delete{From: e.cursor, To: to})
}

// selection

// ToggleMark starts a selection at the cursor, or drops the current one.
func (e *Editor) ToggleMark() {
	if e.marking {
		e.marking = false
		return
	}
	e.mark = e.cursor
	e.marking = true
}

func (e *Editor) ClearMark() {
	e.marking = false
}

// Selection returns the selected region in reading order.
func (e *Editor) Selection() (from, to gott.Point, ok bool) {
	if !e.marking || e.mark == e.cursor {
		return e.cursor, e.cursor, false
	}
	from, to = e.mark, e.cursor
	if to.Before(from) {
		from, to = to, from
	}
	return from, to, true
}

func (e *Editor) deleteSelection() bool {
	from, to, ok := e.Selection()
	e.marking = false
	if !ok {
		return false
	}
	e.Perform(&operations.Delete{From: from, To: to})
	return true
}

// lineRange is the region removed when the current line is cut.
func (e *Editor) lineRange() (gott.Point, gott.Point) {
	row := e.cursor.Row
	if row < e.buffer.GetRowCount()-1 {
		return gott.Point{Row: row}, gott.Point{Row: row + 1}
	}
	if row > 0 {
		return gott.Point{Row: row - 1, Col: e.buffer.GetRowLength(row - 1)},
			gott.Point{Row: row, Col: e.buffer.GetRowLength(row)}
	}
	return gott.Point{}, gott.Point{Col: e.buffer.GetRowLength(row)}
}

// clipboard

// Copy puts the selection, or the current line when nothing is selected, on the clipboard.
func (e *Editor) Copy() error {
	from, to, ok := e.Selection()
	if ok {
		return e.clipboard.WriteAll(e.buffer.TextInRange(from, to))
	}
	return e.clipboard.WriteAll(e.buffer.GetRow(e.cursor.Row).String() + "\n")
}

// Cut is Copy followed by deleting what was copied.
func (e *Editor) Cut() error {
	if err := e.Copy(); err != nil {
		return err
	}
	from, to, ok := e.Selection()
	if !ok {
		from, to = e.lineRange()
	}
	e.marking = false
	if from == to {
		return nil
	}
	e.Perform(&operations.Delete{From: from, To: to})
	return nil
}

// Paste replaces the selection with the clipboard text.
func (e *Editor) Paste() error {
	text, err := e.clipboard.ReadAll()
	if err != nil {
		return err
	}
	e.InsertText(text)
	return nil
}

// cursor movement

func (e *Editor) MoveCursor(direction int) {
	b := e.buffer
	switch direction {
	case gott.MoveLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		} else if e.cursor.Row > 0 {
			e.cursor.Row--
			e.cursor.Col = b.GetRowLength(e.cursor.Row)
		}
	case gott.MoveRight:
		if e.cursor.Col < b.GetRowLength(e.cursor.Row) {
			e.cursor.Col++
		} else if e.cursor.Row < b.GetRowCount()-1 {
			e.cursor.Row++
			e.cursor.Col = 0
		}
	case gott.MoveUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
	case gott.MoveDown:
		if e.cursor.Row < b.GetRowCount()-1 {
			e.cursor.Row++
		}
	}
	// don't go past the end of the current line
	e.cursor = b.Clip(e.cursor)
}

func (e *Editor) MoveToBeginningOfLine() {
	e.cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.cursor.Col = e.buffer.GetRowLength(e.cursor.Row)
}

func (e *Editor) PageUp() {
	for i := 0; i < e.window.GetSize().Rows; i++ {
		e.MoveCursor(gott.MoveUp)
	}
}

func (e *Editor) PageDown() {
	for i := 0; i < e.window.GetSize().Rows; i++ {
		e.MoveCursor(gott.MoveDown)
	}
}

// MoveCursorToScreen moves the cursor to the text under a screen position.
func (e *Editor) MoveCursorToScreen(col, row int) bool {
	p, ok := e.window.PointAt(col, row)
	if ok {
		e.cursor = p
	}
	return ok
}
