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
	"go.uber.org/zap"

	"github.com/comikx/comikx/pkg/fileio"
	gott "github.com/comikx/comikx/pkg/types"
)

// ScriptDialogs answers dialogs without a terminal. The Open and Save As
// dialogs each take paths from their own queue and are cancelled when it is
// empty. The unsaved-changes prompt gets the choice set with on-unsaved,
// Save by default.
type ScriptDialogs struct {
	openPaths []string
	savePaths []string
	choice    gott.Choice
	notices   []string
	logger    *zap.Logger
}

func NewScriptDialogs(logger *zap.Logger) *ScriptDialogs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScriptDialogs{
		choice: gott.ChoiceSave,
		logger: logger.Named("script"),
	}
}

// QueueOpenPath answers the next Open dialog.
func (d *ScriptDialogs) QueueOpenPath(path string) {
	d.openPaths = append(d.openPaths, path)
}

// QueueSavePath answers the next Save As dialog.
func (d *ScriptDialogs) QueueSavePath(path string) {
	d.savePaths = append(d.savePaths, path)
}

// DropPaths forgets queued paths that no dialog asked for.
func (d *ScriptDialogs) DropPaths() {
	d.openPaths = nil
	d.savePaths = nil
}

func (d *ScriptDialogs) SetChoice(choice gott.Choice) {
	d.choice = choice
}

// Notices returns the messages of the warnings shown so far.
func (d *ScriptDialogs) Notices() []string {
	return d.notices
}

func (d *ScriptDialogs) AskSaveChanges() gott.Choice {
	d.logger.Info("unsaved changes", zap.Stringer("choice", d.choice))
	return d.choice
}

func nextPath(queue *[]string) string {
	if len(*queue) == 0 {
		return ""
	}
	path := (*queue)[0]
	*queue = (*queue)[1:]
	return path
}

func (d *ScriptDialogs) OpenPath() string {
	return nextPath(&d.openPaths)
}

// SavePath returns the next queued save path and the first filter that
// accepts it.
func (d *ScriptDialogs) SavePath(suggested string, filters []gott.Filter) (string, gott.Filter) {
	path := nextPath(&d.savePaths)
	if path == "" {
		return "", gott.Filter{}
	}
	for _, f := range filters {
		if fileio.Match(f, path) {
			return path, f
		}
	}
	return path, gott.Filter{}
}

func (d *ScriptDialogs) Warn(title, message string) {
	d.logger.Warn(message, zap.String("title", title))
	d.notices = append(d.notices, message)
}
