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
	"path/filepath"

	"go.uber.org/zap"

	gott "github.com/comikx/comikx/pkg/types"
)

// Console is the part of the terminal that modal dialogs use. Screen is one.
type Console interface {
	gott.Display
	Clear()
	Flush()
	GetNextEvent() *gott.Event
}

// A modal is a dialog that runs until HandleEvent reports it finished.
type modal interface {
	Draw(d gott.Display)
	HandleEvent(event *gott.Event) bool
}

// Choices offered by the unsaved-changes prompt, in button order.
var saveChoices = []gott.Choice{gott.ChoiceSave, gott.ChoiceDiscard, gott.ChoiceCancel}

// Dialogs implements gott.Dialogs with boxes drawn over the editor.
// Each dialog runs its own event loop until it is answered.
type Dialogs struct {
	console Console
	list    Lister
	redraw  func(d gott.Display)
	logger  *zap.Logger
}

// NewDialogs returns dialogs that draw on console. redraw paints the window
// underneath a dialog and may be nil.
func NewDialogs(console Console, list Lister, redraw func(d gott.Display), logger *zap.Logger) *Dialogs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dialogs{
		console: console,
		list:    list,
		redraw:  redraw,
		logger:  logger.Named("dialogs"),
	}
}

func (d *Dialogs) run(m modal) {
	for {
		d.console.Clear()
		if d.redraw != nil {
			d.redraw(d.console)
		}
		m.Draw(d.console)
		d.console.Flush()
		event := d.console.GetNextEvent()
		if event.Type == gott.EventError {
			d.logger.Warn("terminal error while a dialog was open, cancelling it")
		}
		if m.HandleEvent(event) {
			return
		}
	}
}

func (d *Dialogs) AskSaveChanges() gott.Choice {
	options := make([]string, len(saveChoices))
	for i, c := range saveChoices {
		options[i] = labelForChoice(c)
	}
	box := NewChoiceBox("Save Changes", "There are unsaved changes. Do you want to save?", options, 0, len(saveChoices)-1)
	d.run(box)
	choice := saveChoices[box.Selected]
	d.logger.Debug("unsaved changes", zap.Stringer("choice", choice))
	return choice
}

func labelForChoice(c gott.Choice) string {
	switch c {
	case gott.ChoiceSave:
		return "Save"
	case gott.ChoiceDiscard:
		return "Discard"
	default:
		return "Cancel"
	}
}

func (d *Dialogs) OpenPath() string {
	input := NewPathInput("Open File", "", nil, d.list)
	d.run(input)
	return d.absolute(input.Path())
}

func (d *Dialogs) SavePath(suggested string, filters []gott.Filter) (string, gott.Filter) {
	input := NewPathInput("Save File As", suggested, filters, d.list)
	d.run(input)
	return d.absolute(input.Path()), input.SelectedFilter()
}

func (d *Dialogs) Warn(title, message string) {
	d.logger.Warn(message, zap.String("title", title))
	d.run(NewChoiceBox(title, message, []string{"OK"}, 0, 0))
}

func (d *Dialogs) absolute(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		d.logger.Debug("path stays relative", zap.String("path", path), zap.Error(err))
		return path
	}
	return abs
}
