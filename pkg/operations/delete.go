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

// Delete removes the text between From and To.
type Delete struct {
	From gott.Point
	To   gott.Point
}

func (op *Delete) Perform(e gott.Editable) gott.Operation {
	from, to := op.From, op.To
	if to.Before(from) {
		from, to = to, from
	}
	text := e.DeleteRange(from, to)
	e.SetCursor(from)
	return &Insert{At: from, Text: text}
}
