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

package session

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	gott "github.com/comikx/comikx/pkg/types"
)

const (
	// AppTitle is the window title before any file is opened or saved.
	AppTitle = "CoMiKx Text Editor"

	// SuggestedFileName is offered by Save As.
	SuggestedFileName = "Untitled.txt"
)

// SaveFilters are offered by Save As, in order.
var SaveFilters = []gott.Filter{
	{Name: "Text Files", Pattern: "*.txt"},
	{Name: "Batch Files", Pattern: "*.bat"},
	{Name: "All Files", Pattern: "*.*"},
}

// Session is the state of the document that outlives any single command.
type Session struct {
	CurrentFilePath string // empty until the document is opened or saved
	LastSavedText   string // text as of the last load or save
}

// An Observer is told about completed lifecycle changes.
type Observer interface {
	DocumentCleared()
	DocumentLoaded(path, text string)
	DocumentSaved(path string)
}

// The Controller runs the document lifecycle against a text buffer,
// a dialog service and a file store.
type Controller struct {
	session   *Session
	buffer    gott.TextBuffer
	dialogs   gott.Dialogs
	files     gott.FileStore
	title     string
	observers []Observer
	logger    *zap.Logger
}

func NewController(buffer gott.TextBuffer, dialogs gott.Dialogs, files gott.FileStore, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		session: &Session{},
		buffer:  buffer,
		dialogs: dialogs,
		files:   files,
		title:   AppTitle,
		logger:  logger.Named("session"),
	}
}

func (c *Controller) Observe(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Controller) GetSession() *Session {
	return c.session
}

func (c *Controller) GetPath() string {
	return c.session.CurrentFilePath
}

func (c *Controller) GetTitle() string {
	return c.title
}

// IsDirty reports whether the buffer differs from the last loaded or saved text.
func (c *Controller) IsDirty() bool {
	return c.buffer.Text() != c.session.LastSavedText
}

// resolveUnsavedChanges asks about pending changes and returns false if
// the user cancelled. Choosing Save saves, and the caller proceeds
// whether or not the save worked.
func (c *Controller) resolveUnsavedChanges(intent string, pending bool) bool {
	if !pending {
		return true
	}
	choice := c.dialogs.AskSaveChanges()
	c.logger.Debug("unsaved changes", zap.String("intent", intent), zap.Stringer("choice", choice))
	switch choice {
	case gott.ChoiceSave:
		c.Save()
		return true
	case gott.ChoiceDiscard:
		return true
	default:
		return false
	}
}

// New replaces the document with an empty, untitled one. Like Open it asks
// first when the buffer has been edited since it was last loaded or
// written, even if the text has since been put back.
func (c *Controller) New() {
	if !c.resolveUnsavedChanges("new", c.buffer.IsModified()) {
		return
	}
	c.buffer.Clear()
	c.session.CurrentFilePath = ""
	c.session.LastSavedText = ""
	c.title = AppTitle
	c.logger.Info("new document")
	for _, o := range c.observers {
		o.DocumentCleared()
	}
}

// Open asks for a file and loads it. Cancelling at any point leaves the
// document as it was.
func (c *Controller) Open() error {
	if !c.resolveUnsavedChanges("open", c.buffer.IsModified()) {
		return nil
	}
	path := c.dialogs.OpenPath()
	if path == "" {
		c.logger.Debug("open cancelled")
		return nil
	}
	return c.OpenPath(path)
}

// OpenPath loads a file without asking about it first.
func (c *Controller) OpenPath(path string) error {
	text, err := c.files.ReadText(path)
	if err != nil {
		c.logger.Warn("open failed", zap.String("path", path), zap.Error(err))
		c.dialogs.Warn(noticeTitle, openFailedMessage)
		return fmt.Errorf("%w: %s: %w", ErrOpenRead, path, err)
	}
	c.buffer.SetText(text)
	c.buffer.SetModified(false)
	c.session.CurrentFilePath = path
	c.session.LastSavedText = text
	c.title = filepath.Base(path)
	c.logger.Info("document opened", zap.String("path", path), zap.Int("bytes", len(text)))
	for _, o := range c.observers {
		o.DocumentLoaded(path, text)
	}
	return nil
}

// Save writes the document to its path, asking for one if it has none.
func (c *Controller) Save() error {
	text := c.buffer.Text()
	// The saved text moves before the write is known to succeed.
	c.session.LastSavedText = text

	path := c.session.CurrentFilePath
	if path == "" {
		return c.SaveAs()
	}
	if err := c.files.WriteText(path, text); err != nil {
		c.logger.Warn("save failed", zap.String("path", path), zap.Error(err))
		c.dialogs.Warn(noticeTitle, saveFailedMessage)
		return fmt.Errorf("%w: %s: %w", ErrSaveWrite, path, err)
	}
	c.buffer.SetModified(false)
	c.logger.Info("document saved", zap.String("path", path), zap.Int("bytes", len(text)))
	for _, o := range c.observers {
		o.DocumentSaved(path)
	}
	return nil
}

// SaveAs asks for a destination, makes it the document's path and saves there.
func (c *Controller) SaveAs() error {
	path, filter := c.dialogs.SavePath(SuggestedFileName, SaveFilters)
	if path == "" {
		c.logger.Debug("save as cancelled")
		return nil
	}
	c.logger.Debug("save as", zap.String("path", path), zap.Stringer("filter", filter))
	c.session.CurrentFilePath = path
	err := c.Save()
	c.title = filepath.Base(path)
	return err
}

// Exit returns true if the application should terminate. It asks first
// only when the document is Dirty.
func (c *Controller) Exit() bool {
	return c.resolveUnsavedChanges("exit", c.IsDirty())
}

// OnWindowClose returns true if the window may close.
func (c *Controller) OnWindowClose() bool {
	return c.resolveUnsavedChanges("close", c.IsDirty())
}
