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

package commander

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/comikx/comikx/pkg/editor"
	"github.com/comikx/comikx/pkg/fileio"
	"github.com/comikx/comikx/pkg/session"
	gott "github.com/comikx/comikx/pkg/types"
)

type fixture struct {
	fs      afero.Fs
	editor  *editor.Editor
	dialogs *ScriptDialogs
	session *session.Controller
	c       *Commander
}

func setup(t *testing.T) *fixture {
	logger := zaptest.NewLogger(t)
	f := &fixture{
		fs:      afero.NewMemMapFs(),
		editor:  editor.New(editor.WithClipboard(&editor.Pasteboard{})),
		dialogs: NewScriptDialogs(logger),
	}
	f.session = session.NewController(f.editor, f.dialogs, fileio.NewStore(f.fs), logger)
	f.c = NewCommander(f.editor, f.session, logger, WithScript(f.dialogs))
	f.editor.GetWindow().Layout(gott.Rect{
		Origin: gott.Point{Row: gott.TextTopRow, Col: 0},
		Size:   gott.Size{Rows: 20, Cols: 80},
	})
	return f
}

func (f *fixture) send(t *testing.T, events ...*gott.Event) {
	for _, event := range events {
		require.NoError(t, f.c.ProcessEvent(event))
	}
}

func (f *fixture) readFile(t *testing.T, path string) string {
	b, err := afero.ReadFile(f.fs, path)
	require.NoError(t, err)
	return string(b)
}

func keyEvent(k gott.Key) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Key: k}
}

func typeEvents(text string) []*gott.Event {
	var events []*gott.Event
	for _, ch := range text {
		switch ch {
		case ' ':
			events = append(events, keyEvent(gott.KeySpace))
		case '\n':
			events = append(events, keyEvent(gott.KeyEnter))
		default:
			events = append(events, &gott.Event{Type: gott.EventKey, Ch: ch})
		}
	}
	return events
}

func clickEvent(col, row int) *gott.Event {
	return &gott.Event{Type: gott.EventMouse, Key: gott.KeyMouseLeft, Mouse: gott.Point{Row: row, Col: col}}
}

func TestTypingAndStatus(t *testing.T) {
	f := setup(t)
	assert.Equal(t, "Ln 1, Col 1", f.c.GetStatusText())
	assert.Equal(t, session.AppTitle, f.c.GetTitle())

	f.send(t, typeEvents("hi there\nok")...)
	assert.Equal(t, "hi there\nok", f.editor.Text())
	assert.Equal(t, "Ln 2, Col 3  [modified]", f.c.GetStatusText())

	f.send(t, keyEvent(gott.KeyBackspace), keyEvent(gott.KeyTab))
	assert.Equal(t, "hi there\no\t", f.editor.Text())
}

func TestShortcutSaveAsksForPath(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("draft")...)
	f.dialogs.QueueSavePath("/docs/draft.txt")
	f.send(t, keyEvent(gott.KeyCtrlS))

	assert.Equal(t, "draft", f.readFile(t, "/docs/draft.txt"))
	assert.Equal(t, "draft.txt", f.c.GetTitle())
	assert.Equal(t, "Saved /docs/draft.txt", f.c.GetStatusText())

	// the message lasts until the next key
	f.send(t, keyEvent(gott.KeyArrowLeft))
	assert.Equal(t, "Ln 1, Col 5", f.c.GetStatusText())
}

func TestShortcutOpenShowsContentType(t *testing.T) {
	f := setup(t)
	require.NoError(t, afero.WriteFile(f.fs, "/docs/a.txt", []byte("plain words"), 0644))
	f.dialogs.QueueOpenPath("/docs/a.txt")
	f.send(t, keyEvent(gott.KeyCtrlO))

	assert.Equal(t, "plain words", f.editor.Text())
	assert.Equal(t, "Opened /docs/a.txt  text/plain; charset=utf-8", f.c.GetStatusText())

	f.send(t, keyEvent(gott.KeyCtrlN))
	assert.Equal(t, "", f.editor.Text())
	assert.Equal(t, "New document", f.c.GetStatusText())
}

func TestShortcutEditing(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("one\ntwo")...)
	f.send(t, keyEvent(gott.KeyArrowUp), keyEvent(gott.KeyCtrlX))
	assert.Equal(t, "two", f.editor.Text())
	f.send(t, keyEvent(gott.KeyCtrlV))
	assert.Equal(t, "one\ntwo", f.editor.Text())
	f.send(t, keyEvent(gott.KeyCtrlZ))
	assert.Equal(t, "two", f.editor.Text())
	f.send(t, keyEvent(gott.KeyCtrlR))
	assert.Equal(t, "one\ntwo", f.editor.Text())
}

func TestMarkAndCopy(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("abc")...)
	f.send(t, keyEvent(gott.KeyHome), keyEvent(gott.KeyCtrlB), keyEvent(gott.KeyArrowRight), keyEvent(gott.KeyArrowRight))
	f.send(t, keyEvent(gott.KeyCtrlC), keyEvent(gott.KeyEsc), keyEvent(gott.KeyEnd), keyEvent(gott.KeyCtrlV))
	assert.Equal(t, "abcab", f.editor.Text())
}

func TestExitShortcut(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("draft")...)
	f.dialogs.SetChoice(gott.ChoiceCancel)
	f.send(t, keyEvent(gott.KeyCtrlQ))
	assert.True(t, f.c.IsRunning())

	f.dialogs.SetChoice(gott.ChoiceDiscard)
	f.send(t, keyEvent(gott.KeyCtrlQ))
	assert.False(t, f.c.IsRunning())
}

func TestInterruptClosesWindow(t *testing.T) {
	f := setup(t)
	f.send(t, &gott.Event{Type: gott.EventInterrupt})
	assert.False(t, f.c.IsRunning())

	f = setup(t)
	f.send(t, typeEvents("draft")...)
	f.dialogs.SetChoice(gott.ChoiceCancel)
	f.send(t, &gott.Event{Type: gott.EventInterrupt})
	assert.True(t, f.c.IsRunning())
	assert.Equal(t, "draft", f.editor.Text())
}

func TestInterruptSavesWhenAsked(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("draft")...)
	f.dialogs.QueueSavePath("/draft.txt")
	f.send(t, &gott.Event{Type: gott.EventInterrupt})
	assert.False(t, f.c.IsRunning())
	assert.Equal(t, "draft", f.readFile(t, "/draft.txt"))
}

func TestMenuKeyboardNavigation(t *testing.T) {
	f := setup(t)
	f.send(t, keyEvent(gott.KeyF10))
	menu, item, open := f.c.GetOpenMenu()
	assert.True(t, open)
	assert.Equal(t, 0, menu)
	assert.Equal(t, 0, item)

	f.send(t, keyEvent(gott.KeyArrowUp))
	_, item, _ = f.c.GetOpenMenu()
	assert.Equal(t, 5, item)
	f.send(t, keyEvent(gott.KeyArrowUp))
	_, item, _ = f.c.GetOpenMenu()
	assert.Equal(t, 3, item, "separators are skipped")

	f.send(t, keyEvent(gott.KeyArrowLeft))
	menu, item, _ = f.c.GetOpenMenu()
	assert.Equal(t, 3, menu)
	assert.Equal(t, 0, item)

	f.send(t, keyEvent(gott.KeyEsc))
	_, _, open = f.c.GetOpenMenu()
	assert.False(t, open)
	assert.Equal(t, gott.ModeEdit, f.c.GetMode())
}

func TestMenuKeysDoNotEdit(t *testing.T) {
	f := setup(t)
	f.send(t, keyEvent(gott.KeyF10))
	f.send(t, typeEvents("abc")...)
	assert.Equal(t, "", f.editor.Text())
}

func TestInertMenuItems(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("text")...)
	f.send(t, keyEvent(gott.KeyF10), keyEvent(gott.KeyArrowRight), keyEvent(gott.KeyEnter))
	assert.Equal(t, gott.ModeEdit, f.c.GetMode())
	assert.Equal(t, "text", f.editor.Text())
	assert.True(t, f.c.IsRunning())
}

func TestMenuNewFromKeyboard(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("draft")...)
	f.dialogs.SetChoice(gott.ChoiceDiscard)
	f.send(t, keyEvent(gott.KeyF10), keyEvent(gott.KeyEnter))
	assert.Equal(t, "", f.editor.Text())
	assert.False(t, f.session.IsDirty())
}

func TestMouseOnMenus(t *testing.T) {
	f := setup(t)
	spans := gott.MenuBarSpans(f.c.GetMenus())

	f.send(t, clickEvent(spans[2].Start+1, gott.MenuBarRow))
	menu, _, open := f.c.GetOpenMenu()
	assert.True(t, open)
	assert.Equal(t, 2, menu)

	f.send(t, clickEvent(spans[2].Start+1, gott.MenuBarRow))
	_, _, open = f.c.GetOpenMenu()
	assert.False(t, open)

	// File > Exit on a clean document quits
	f.send(t, clickEvent(spans[0].Start, gott.MenuBarRow))
	r := gott.DropdownRect(f.c.GetMenus(), 0)
	f.send(t, clickEvent(r.Origin.Col+1, r.Origin.Row+5))
	assert.False(t, f.c.IsRunning())
}

func TestMouseOutsideMenuClosesIt(t *testing.T) {
	f := setup(t)
	f.send(t, keyEvent(gott.KeyF10))
	f.send(t, clickEvent(60, 10))
	_, _, open := f.c.GetOpenMenu()
	assert.False(t, open)
	assert.True(t, f.c.IsRunning())
}

func TestMouseOnToolbar(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("abc")...)
	items := f.c.GetToolbar()
	spans := gott.ToolbarSpans(items)
	for i, item := range items {
		if item.Label == "Undo" {
			f.send(t, clickEvent(spans[i].Start+1, gott.ToolbarRow))
		}
	}
	assert.Equal(t, "", f.editor.Text())
	assert.Equal(t, "Undo the last edit", f.c.GetStatusText())

	// separators do nothing
	for i, item := range items {
		if item.Separator {
			f.send(t, clickEvent(spans[i].Start, gott.ToolbarRow))
		}
	}
	assert.Equal(t, "Ln 1, Col 1", f.c.GetStatusText())
}

func TestMouseInTextMovesCursor(t *testing.T) {
	f := setup(t)
	f.send(t, typeEvents("first\nsecond")...)
	f.send(t, clickEvent(3, gott.TextTopRow))
	assert.Equal(t, gott.Point{Row: 0, Col: 3}, f.editor.GetCursor())
}

func TestDebugShowsEvents(t *testing.T) {
	f := setup(t)
	WithDebug(true)(f.c)
	f.send(t, keyEvent(gott.KeyArrowDown))
	assert.Contains(t, f.c.GetMessage(), "event=")
}

func TestTerminalErrorIsReported(t *testing.T) {
	f := setup(t)
	assert.Error(t, f.c.ProcessEvent(&gott.Event{Type: gott.EventError}))
	assert.NoError(t, f.c.ProcessEvent(&gott.Event{Type: gott.EventResize}))
}
