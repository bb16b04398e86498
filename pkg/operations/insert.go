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

package operations

import (
	gott "github.com/comikx/comikx/pkg/types"
)

// Insert puts Text into the document at At.
type Insert struct {
	At      gott.Point
	Text    string
	Inverse *Delete
}

func (op *Insert) Perform(e gott.Editable) gott.Operation {
	end := e.InsertTextAt(op.At, op.Text)
	e.SetCursor(end)
	op.Inverse = &Delete{From: op.At, To: end}
	return op.Inverse
}

// End is the position just after the inserted text.
func (op *Insert) End() gott.Point {
	if op.Inverse == nil {
		return op.At
	}
	return op.Inverse.To
}

// Extend appends text to an insert that has already been performed,
// so that a run of typing is undone in one step.
func (op *Insert) Extend(e gott.Editable, text string) {
	end := e.InsertTextAt(op.End(), text)
	op.Text += text
	if op.Inverse != nil {
		op.Inverse.To = end
	}
	e.SetCursor(end)
}
