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
	"strings"

	gott "github.com/comikx/comikx/pkg/types"
)

// A Buffer holds the text being edited. It always has at least one row.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.LoadText("")
	return b
}

// LoadText replaces the contents of the buffer.
func (b *Buffer) LoadText(s string) {
	lines := strings.Split(s, "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// Text returns the contents of the buffer exactly as they were loaded or edited.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row.String())
	}
	return sb.String()
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRow(i int) *Row {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i]
	}
	return nil
}

// Clip moves p to the nearest valid position in the buffer.
func (b *Buffer) Clip(p gott.Point) gott.Point {
	p.Row = clipToRange(p.Row, 0, len(b.rows)-1)
	p.Col = clipToRange(p.Col, 0, b.rows[p.Row].Length())
	return p
}

// InsertText inserts text at a position and returns the position after it.
func (b *Buffer) InsertText(at gott.Point, text string) gott.Point {
	at = b.Clip(at)
	row := b.rows[at.Row]
	before := row.TextBefore(at.Col)
	after := row.TextAfter(at.Col)

	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		inserted := []rune(lines[0])
		row.Text = append(append(before, inserted...), after...)
		return gott.Point{Row: at.Row, Col: at.Col + len(inserted)}
	}

	row.Text = append(before, []rune(lines[0])...)
	added := make([]*Row, 0, len(lines)-1)
	for _, line := range lines[1 : len(lines)-1] {
		added = append(added, NewRow(line))
	}
	last := []rune(lines[len(lines)-1])
	added = append(added, &Row{Text: append(append([]rune{}, last...), after...)})

	rows := make([]*Row, 0, len(b.rows)+len(added))
	rows = append(rows, b.rows[:at.Row+1]...)
	rows = append(rows, added...)
	rows = append(rows, b.rows[at.Row+1:]...)
	b.rows = rows

	return gott.Point{Row: at.Row + len(lines) - 1, Col: len(last)}
}

// TextInRange returns the text between two positions.
func (b *Buffer) TextInRange(from, to gott.Point) string {
	from, to = b.order(from, to)
	if from.Row == to.Row {
		return string(b.rows[from.Row].Text[from.Col:to.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.rows[from.Row].Text[from.Col:]))
	for i := from.Row + 1; i < to.Row; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.rows[i].String())
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.rows[to.Row].Text[:to.Col]))
	return sb.String()
}

// DeleteRange removes the text between two positions and returns it.
func (b *Buffer) DeleteRange(from, to gott.Point) string {
	from, to = b.order(from, to)
	deleted := b.TextInRange(from, to)
	first := b.rows[from.Row]
	last := b.rows[to.Row]
	first.Text = append(first.TextBefore(from.Col), last.TextAfter(to.Col)...)
	if to.Row > from.Row {
		b.rows = append(b.rows[:from.Row+1], b.rows[to.Row+1:]...)
	}
	return deleted
}

func (b *Buffer) order(from, to gott.Point) (gott.Point, gott.Point) {
	from = b.Clip(from)
	to = b.Clip(to)
	if to.Before(from) {
		return to, from
	}
	return from, to
}
