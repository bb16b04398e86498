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

// A row of text in the editor
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) String() string {
	return string(r.Text)
}

// returns the text before a specified column
func (r *Row) TextBefore(col int) []rune {
	col = clipToRange(col, 0, len(r.Text))
	return append([]rune{}, r.Text[:col]...)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) []rune {
	col = clipToRange(col, 0, len(r.Text))
	return append([]rune{}, r.Text[col:]...)
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
