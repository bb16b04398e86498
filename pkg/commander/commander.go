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
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/comikx/comikx/pkg/editor"
	"github.com/comikx/comikx/pkg/fileio"
	"github.com/comikx/comikx/pkg/session"
	gott "github.com/comikx/comikx/pkg/types"
)

// The Commander converts user input into commands to the editor and the document session.
type Commander struct {
	editor      *editor.Editor
	session     *session.Controller
	script      *ScriptDialogs // set when running a script
	logger      *zap.Logger
	mode        int             // editor mode
	debug       bool            // debug mode displays information about events (key codes, etc)
	menus       []gott.Menu     // menu bar
	toolbar     []gott.ToolItem // toolbar buttons
	menu        int             // open menu, valid in menu mode
	item        int             // selected item of the open menu
	message     string          // status message
	hint        string          // tooltip of the last toolbar button pressed
	contentType string          // detected type of the last opened file
}

type Option func(*Commander)

// WithScript lets scripts queue dialog answers.
func WithScript(d *ScriptDialogs) Option {
	return func(c *Commander) {
		c.script = d
	}
}

// WithDebug shows every event in the status bar.
func WithDebug(debug bool) Option {
	return func(c *Commander) {
		c.debug = debug
	}
}

func NewCommander(e *editor.Editor, s *session.Controller, logger *zap.Logger, options ...Option) *Commander {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Commander{
		editor:  e,
		session: s,
		logger:  logger.Named("commander"),
		mode:    gott.ModeEdit,
		menus:   menus(),
		toolbar: toolbar(),
	}
	for _, option := range options {
		option(c)
	}
	s.Observe(c)
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

// session observer

func (c *Commander) DocumentCleared() {
	c.message = "New document"
	c.contentType = ""
}

func (c *Commander) DocumentLoaded(path, text string) {
	c.message = "Opened " + path
	c.contentType = fileio.ContentType(text)
}

func (c *Commander) DocumentSaved(path string) {
	c.message = "Saved " + path
}

// window chrome

func (c *Commander) GetMenus() []gott.Menu {
	return c.menus
}

func (c *Commander) GetToolbar() []gott.ToolItem {
	return c.toolbar
}

func (c *Commander) GetOpenMenu() (int, int, bool) {
	return c.menu, c.item, c.mode == gott.ModeMenu
}

func (c *Commander) GetTitle() string {
	return c.session.GetTitle()
}

func (c *Commander) GetStatusText() string {
	text := c.message
	if text == "" {
		text = c.hint
	}
	if text == "" {
		cursor := c.editor.GetCursor()
		text = fmt.Sprintf("Ln %d, Col %d", cursor.Row+1, cursor.Col+1)
	}
	if c.session.IsDirty() {
		text += "  [modified]"
	}
	if c.contentType != "" {
		text += "  " + c.contentType
	}
	return text
}

// events

var errTerminal = errors.New("terminal error")

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	} else if event.Type == gott.EventKey || event.Type == gott.EventMouse {
		c.message = ""
		c.hint = ""
	}
	switch event.Type {
	case gott.EventKey:
		return c.processKey(event)
	case gott.EventMouse:
		return c.processMouse(event)
	case gott.EventInterrupt:
		c.closeWindow()
		return nil
	case gott.EventError:
		return errTerminal
	default:
		return nil
	}
}

func (c *Commander) processKey(event *gott.Event) error {
	switch c.mode {
	case gott.ModeEdit:
		c.processKeyEditMode(event)
	case gott.ModeMenu:
		c.processKeyMenuMode(event)
	}
	return nil
}

func (c *Commander) processKeyEditMode(event *gott.Event) {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if command, ok := shortcuts[key]; ok {
		c.perform(command)
		return
	}
	if key != gott.KeyNone {
		switch key {
		case gott.KeyF10:
			c.openMenu(0)
		case gott.KeyEsc:
			e.ClearMark()
		case gott.KeyArrowUp:
			e.MoveCursor(gott.MoveUp)
		case gott.KeyArrowDown:
			e.MoveCursor(gott.MoveDown)
		case gott.KeyArrowLeft:
			e.MoveCursor(gott.MoveLeft)
		case gott.KeyArrowRight:
			e.MoveCursor(gott.MoveRight)
		case gott.KeyHome:
			e.MoveToBeginningOfLine()
		case gott.KeyEnd:
			e.MoveToEndOfLine()
		case gott.KeyPgup:
			e.PageUp()
		case gott.KeyPgdn:
			e.PageDown()
		case gott.KeyBackspace:
			e.BackspaceChar()
		case gott.KeyDelete:
			e.DeleteChar()
		case gott.KeyEnter:
			e.InsertChar('\n')
		case gott.KeyTab:
			e.InsertChar('\t')
		case gott.KeySpace:
			e.InsertChar(' ')
		}
		return
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
}

func (c *Commander) processKeyMenuMode(event *gott.Event) {
	items := c.menus[c.menu].Items
	switch event.Key {
	case gott.KeyEsc, gott.KeyF10:
		c.closeMenu()
	case gott.KeyArrowLeft:
		c.openMenu((c.menu + len(c.menus) - 1) % len(c.menus))
	case gott.KeyArrowRight:
		c.openMenu((c.menu + 1) % len(c.menus))
	case gott.KeyArrowUp:
		c.item = selectable(items, c.item, -1)
	case gott.KeyArrowDown:
		c.item = selectable(items, c.item, 1)
	case gott.KeyEnter, gott.KeySpace:
		c.activate(c.menu, c.item)
	}
}

func (c *Commander) openMenu(i int) {
	c.mode = gott.ModeMenu
	c.menu = i
	c.item = selectable(c.menus[i].Items, -1, 1)
}

func (c *Commander) closeMenu() {
	c.mode = gott.ModeEdit
}

// activate closes the menu and runs the command of one of its items.
func (c *Commander) activate(menu, item int) {
	c.closeMenu()
	mi := c.menus[menu].Items[item]
	if mi.Separator || mi.Command == "" {
		return
	}
	c.perform(mi.Command)
}

func (c *Commander) processMouse(event *gott.Event) error {
	if event.Key != gott.KeyMouseLeft {
		return nil
	}
	col, row := event.Mouse.Col, event.Mouse.Row
	if c.mode == gott.ModeMenu {
		r := gott.DropdownRect(c.menus, c.menu)
		if r.Contains(col, row) {
			c.activate(c.menu, row-r.Origin.Row)
			return nil
		}
		if row != gott.MenuBarRow {
			c.closeMenu()
			return nil
		}
	}
	switch row {
	case gott.MenuBarRow:
		for i, span := range gott.MenuBarSpans(c.menus) {
			if span.Contains(col) {
				if c.mode == gott.ModeMenu && c.menu == i {
					c.closeMenu()
				} else {
					c.openMenu(i)
				}
				return nil
			}
		}
		c.closeMenu()
	case gott.ToolbarRow:
		for i, span := range gott.ToolbarSpans(c.toolbar) {
			item := c.toolbar[i]
			if span.Contains(col) && !item.Separator {
				c.hint = item.Tooltip
				c.perform(item.Command)
				return nil
			}
		}
	default:
		c.editor.MoveCursorToScreen(col, row)
	}
	return nil
}

// perform evaluates a command and keeps its error, if any, as the status message.
func (c *Commander) perform(command string) {
	if _, err := c.parseEval(command); err != nil {
		c.message = err.Error()
	}
}

// commands

func (c *Commander) exit() bool {
	if c.session.Exit() {
		c.mode = gott.ModeQuit
	}
	return c.mode == gott.ModeQuit
}

func (c *Commander) closeWindow() {
	c.logger.Info("close requested")
	if c.session.OnWindowClose() {
		c.mode = gott.ModeQuit
	}
}
