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
	gott "github.com/comikx/comikx/pkg/types"
)

// Menus of the main window. Items without a command are shown but do nothing.
func menus() []gott.Menu {
	return []gott.Menu{
		{
			Title: "File",
			Items: []gott.MenuItem{
				{Label: "New", Command: "(new)"},
				{Label: "Open", Command: "(open)"},
				{Label: "Save", Command: "(save)"},
				{Label: "Save As", Command: "(save-as)"},
				{Separator: true},
				{Label: "Exit", Command: "(exit)"},
			},
		},
		{
			Title: "Edit",
			Items: []gott.MenuItem{
				{Label: "Find"},
				{Label: "Replace"},
			},
		},
		{
			Title: "View",
			Items: []gott.MenuItem{
				{Label: "Zoom In"},
				{Label: "Zoom Out"},
				{Separator: true},
				{Label: "Toggle Fullscreen"},
			},
		},
		{
			Title: "Help",
			Items: []gott.MenuItem{
				{Label: "About"},
			},
		},
	}
}

func toolbar() []gott.ToolItem {
	return []gott.ToolItem{
		{Label: "New", Command: "(new)", Tooltip: "Create a new file"},
		{Label: "Open", Command: "(open)", Tooltip: "Open an existing file"},
		{Label: "Save", Command: "(save)", Tooltip: "Save file"},
		{Separator: true},
		{Label: "Cut", Command: "(cut)", Tooltip: "Cut the selection"},
		{Label: "Copy", Command: "(copy)", Tooltip: "Copy the selection"},
		{Label: "Paste", Command: "(paste)", Tooltip: "Paste from the clipboard"},
		{Separator: true},
		{Label: "Undo", Command: "(undo)", Tooltip: "Undo the last edit"},
		{Label: "Redo", Command: "(redo)", Tooltip: "Redo the last undone edit"},
	}
}

// Shortcut keys and the commands they run.
var shortcuts = map[gott.Key]string{
	gott.KeyCtrlN: "(new)",
	gott.KeyCtrlO: "(open)",
	gott.KeyCtrlS: "(save)",
	gott.KeyCtrlW: "(save-as)",
	gott.KeyCtrlQ: "(exit)",
	gott.KeyCtrlX: "(cut)",
	gott.KeyCtrlC: "(copy)",
	gott.KeyCtrlV: "(paste)",
	gott.KeyCtrlZ: "(undo)",
	gott.KeyCtrlR: "(redo)",
	gott.KeyCtrlB: "(mark)",
}

// selectable returns the index of the next item after from, moving by step,
// that is not a separator. It returns from if there is none.
func selectable(items []gott.MenuItem, from, step int) int {
	n := len(items)
	for k := 1; k <= n; k++ {
		i := ((from+step*k)%n + n) % n
		if !items[i].Separator {
			return i
		}
	}
	return from
}
