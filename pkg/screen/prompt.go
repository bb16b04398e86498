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
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/comikx/comikx/pkg/fileio"
	gott "github.com/comikx/comikx/pkg/types"
)

// boxRect centers a box with the given interior size, border included.
func boxRect(screen gott.Size, cols, rows int) gott.Rect {
	cols += 2
	rows += 2
	if cols > screen.Cols {
		cols = screen.Cols
	}
	if rows > screen.Rows {
		rows = screen.Rows
	}
	return gott.Rect{
		Origin: gott.Point{Row: (screen.Rows - rows) / 2, Col: (screen.Cols - cols) / 2},
		Size:   gott.Size{Rows: rows, Cols: cols},
	}
}

// drawBox draws a bordered box with a title and clears its interior.
func drawBox(d gott.Display, r gott.Rect, title string) {
	top, left := r.Origin.Row, r.Origin.Col
	bottom, right := top+r.Size.Rows-1, left+r.Size.Cols-1
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			c := ' '
			switch {
			case row == top && col == left:
				c = '┌'
			case row == top && col == right:
				c = '┐'
			case row == bottom && col == left:
				c = '└'
			case row == bottom && col == right:
				c = '┘'
			case row == top || row == bottom:
				c = '─'
			case col == left || col == right:
				c = '│'
			}
			d.SetCell(col, row, c, barFg, barBg)
		}
	}
	if title != "" {
		drawText(d, left+2, top, right-1, " "+title+" ", barFg, barBg)
	}
}

// A ChoiceBox asks a question with a row of buttons.
type ChoiceBox struct {
	Title    string
	Message  string
	Options  []string
	Selected int // focused button, chosen by Enter
	Cancel   int // button chosen by Esc

	buttons   []gott.Span
	buttonRow int
	done      bool
}

func NewChoiceBox(title, message string, options []string, selected, cancel int) *ChoiceBox {
	return &ChoiceBox{
		Title:    title,
		Message:  message,
		Options:  options,
		Selected: selected,
		Cancel:   cancel,
	}
}

func (b *ChoiceBox) Done() bool {
	return b.done
}

func buttonLabel(option string) string {
	return "[ " + option + " ]"
}

func (b *ChoiceBox) Draw(d gott.Display) {
	buttonsWidth := 0
	for _, o := range b.Options {
		buttonsWidth += runewidth.StringWidth(buttonLabel(o)) + 1
	}
	width := max(runewidth.StringWidth(b.Message), buttonsWidth, runewidth.StringWidth(b.Title)+4) + 2
	r := boxRect(d.GetSize(), width, 3)
	drawBox(d, r, b.Title)

	left := r.Origin.Col + 2
	limit := r.Origin.Col + r.Size.Cols - 1
	drawText(d, left, r.Origin.Row+1, limit, b.Message, barFg, barBg)

	b.buttonRow = r.Origin.Row + 3
	b.buttons = b.buttons[:0]
	x := left + (r.Size.Cols-2-buttonsWidth)/2
	for i, o := range b.Options {
		fg, bg := barFg, barBg
		if i == b.Selected {
			fg, bg = selectedFg, selectedBg
		}
		label := buttonLabel(o)
		end := drawText(d, x, b.buttonRow, limit, label, fg, bg)
		b.buttons = append(b.buttons, gott.Span{Start: x, Width: end - x})
		x = end + 1
	}
	d.HideCursor()
}

// HandleEvent updates the box and reports whether a button was chosen.
func (b *ChoiceBox) HandleEvent(event *gott.Event) bool {
	n := len(b.Options)
	if n == 0 {
		b.done = true
		return true
	}
	switch event.Type {
	case gott.EventInterrupt, gott.EventError:
		b.choose(b.Cancel)
	case gott.EventMouse:
		if event.Key == gott.KeyMouseLeft && event.Mouse.Row == b.buttonRow {
			for i, span := range b.buttons {
				if span.Contains(event.Mouse.Col) {
					b.choose(i)
				}
			}
		}
	case gott.EventKey:
		switch event.Key {
		case gott.KeyArrowLeft:
			b.Selected = (b.Selected + n - 1) % n
		case gott.KeyArrowRight, gott.KeyTab:
			b.Selected = (b.Selected + 1) % n
		case gott.KeyEnter, gott.KeySpace:
			b.choose(b.Selected)
		case gott.KeyEsc:
			b.choose(b.Cancel)
		case gott.KeyNone:
			for i, o := range b.Options {
				if hotkey([]rune(o)) == unicode.ToLower(event.Ch) {
					b.choose(i)
					break
				}
			}
		}
	}
	return b.done
}

func hotkey(label []rune) rune {
	if len(label) == 0 {
		return 0
	}
	return unicode.ToLower(label[0])
}

func (b *ChoiceBox) choose(i int) {
	b.Selected = i
	b.done = true
}

// Lister returns the dialog entries of a directory. fileio.Store.List is one.
type Lister func(dir, prefix string, filter *gott.Filter) ([]fileio.Entry, error)

// Rows of directory listing shown under a path input.
const listingRows = 8

const pathInputWidth = 60

// A PathInput asks for a file path. Tab completes against the directory
// listing, and the arrow keys change the filter.
type PathInput struct {
	Title   string
	Text    []rune
	Filters []gott.Filter
	Filter  int // index of the selected filter

	list      Lister
	entries   []fileio.Entry
	listError string
	listTop   int
	done      bool
	cancelled bool
}

func NewPathInput(title, text string, filters []gott.Filter, list Lister) *PathInput {
	p := &PathInput{
		Title:   title,
		Text:    []rune(text),
		Filters: filters,
		list:    list,
	}
	p.refresh()
	return p
}

func (p *PathInput) Done() bool {
	return p.done
}

// Path is the accepted path, or "" if the input was cancelled.
func (p *PathInput) Path() string {
	if p.cancelled {
		return ""
	}
	return string(p.Text)
}

// SelectedFilter returns the filter in effect, or the zero Filter if there are none.
func (p *PathInput) SelectedFilter() gott.Filter {
	if len(p.Filters) == 0 {
		return gott.Filter{}
	}
	return p.Filters[p.Filter]
}

func (p *PathInput) Entries() []fileio.Entry {
	return p.entries
}

func (p *PathInput) split() (dir, prefix string) {
	dir, prefix = filepath.Split(string(p.Text))
	return dir, prefix
}

func (p *PathInput) refresh() {
	if p.list == nil {
		return
	}
	dir, prefix := p.split()
	listDir := dir
	if listDir == "" {
		listDir = "."
	}
	var filter *gott.Filter
	if len(p.Filters) > 0 {
		filter = &p.Filters[p.Filter]
	}
	entries, err := p.list(listDir, prefix, filter)
	if err != nil {
		p.entries = nil
		p.listError = err.Error()
		return
	}
	p.entries = entries
	p.listError = ""
}

// complete extends the text to the longest prefix shared by the listed entries.
func (p *PathInput) complete() {
	if len(p.entries) == 0 {
		return
	}
	dir, prefix := p.split()
	common := p.entries[0].String()
	for _, e := range p.entries[1:] {
		common = commonPrefix(common, e.String())
	}
	if len(common) > len(prefix) {
		p.Text = []rune(dir + common)
		p.refresh()
	}
}

func commonPrefix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	i := 0
	for i < len(ra) && i < len(rb) && ra[i] == rb[i] {
		i++
	}
	return string(ra[:i])
}

// accept finishes the input unless the text names a directory, in which
// case the listing moves into it.
func (p *PathInput) accept() {
	text := string(p.Text)
	if strings.TrimSpace(text) == "" {
		return
	}
	if strings.HasSuffix(text, string(filepath.Separator)) {
		p.refresh()
		return
	}
	dir, prefix := p.split()
	for _, e := range p.entries {
		if e.IsDir && e.Name == prefix {
			p.Text = []rune(dir + prefix + string(filepath.Separator))
			p.refresh()
			return
		}
	}
	p.done = true
}

func (p *PathInput) cancel() {
	p.cancelled = true
	p.done = true
}

// HandleEvent updates the input and reports whether it is finished.
func (p *PathInput) HandleEvent(event *gott.Event) bool {
	switch event.Type {
	case gott.EventInterrupt, gott.EventError:
		p.cancel()
	case gott.EventMouse:
		if event.Key != gott.KeyMouseLeft {
			break
		}
		i := event.Mouse.Row - p.listTop
		if i >= 0 && i < len(p.entries) && i < listingRows {
			dir, _ := p.split()
			entry := p.entries[i]
			p.Text = []rune(dir + entry.String())
			p.refresh()
			if !entry.IsDir {
				p.accept()
			}
		}
	case gott.EventKey:
		switch event.Key {
		case gott.KeyEsc:
			p.cancel()
		case gott.KeyEnter:
			p.accept()
		case gott.KeyTab:
			p.complete()
		case gott.KeyBackspace:
			if len(p.Text) > 0 {
				p.Text = p.Text[:len(p.Text)-1]
				p.refresh()
			}
		case gott.KeySpace:
			p.Text = append(p.Text, ' ')
			p.refresh()
		case gott.KeyArrowUp:
			if n := len(p.Filters); n > 0 {
				p.Filter = (p.Filter + n - 1) % n
				p.refresh()
			}
		case gott.KeyArrowDown:
			if n := len(p.Filters); n > 0 {
				p.Filter = (p.Filter + 1) % n
				p.refresh()
			}
		case gott.KeyNone:
			if event.Ch != 0 {
				p.Text = append(p.Text, event.Ch)
				p.refresh()
			}
		}
	}
	return p.done
}

func (p *PathInput) Draw(d gott.Display) {
	size := d.GetSize()
	rows := listingRows + 3
	if len(p.Filters) > 0 {
		rows++
	}
	r := boxRect(size, min(pathInputWidth, size.Cols-2), rows)
	drawBox(d, r, p.Title)

	left := r.Origin.Col + 1
	limit := r.Origin.Col + r.Size.Cols - 1
	row := r.Origin.Row + 1

	// the tail of the path stays visible while typing
	text := p.Text
	room := limit - left - 2
	for runewidth.StringWidth(string(text)) > room && len(text) > 0 {
		text = text[1:]
	}
	cursor := drawText(d, left+1, row, limit, string(text), barFg, barBg)
	row++

	if len(p.Filters) > 0 {
		drawText(d, left+1, row, limit, "Type: "+p.Filters[p.Filter].String(), barFg, barBg)
		row++
	}
	for x := left; x < limit; x++ {
		d.SetCell(x, row, '─', barFg, barBg)
	}
	row++

	p.listTop = row
	if p.listError != "" {
		drawText(d, left+1, row, limit, p.listError, gott.ColorRed, barBg)
	}
	for i, e := range p.entries {
		if i >= listingRows {
			break
		}
		fg := barFg
		if e.IsDir {
			fg = gott.ColorBlue
		}
		drawText(d, left+1, row+i, limit, e.String(), fg, barBg)
	}
	row += listingRows
	drawText(d, left+1, row, limit, "Enter accept  Tab complete  Esc cancel", gott.ColorCyan, barBg)

	d.SetCursor(gott.Point{Row: r.Origin.Row + 1, Col: cursor})
}
