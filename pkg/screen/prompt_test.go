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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comikx/comikx/pkg/fileio"
	gott "github.com/comikx/comikx/pkg/types"
)

func newSaveBox() *ChoiceBox {
	return NewChoiceBox("Save Changes", "Save?", []string{"Save", "Discard", "Cancel"}, 0, 2)
}

func TestChoiceBoxKeys(t *testing.T) {
	b := newSaveBox()
	assert.True(t, b.HandleEvent(keyEvent(gott.KeyEnter)))
	assert.Equal(t, 0, b.Selected)

	b = newSaveBox()
	assert.True(t, b.HandleEvent(keyEvent(gott.KeyEsc)))
	assert.Equal(t, 2, b.Selected)

	b = newSaveBox()
	assert.False(t, b.HandleEvent(keyEvent(gott.KeyArrowRight)))
	assert.False(t, b.HandleEvent(keyEvent(gott.KeyArrowRight)))
	assert.False(t, b.HandleEvent(keyEvent(gott.KeyArrowRight)))
	assert.Equal(t, 0, b.Selected)
	assert.False(t, b.HandleEvent(keyEvent(gott.KeyArrowLeft)))
	assert.Equal(t, 2, b.Selected)
	assert.True(t, b.HandleEvent(keyEvent(gott.KeySpace)))
	assert.True(t, b.Done())

	b = newSaveBox()
	assert.True(t, b.HandleEvent(charEvent('D')))
	assert.Equal(t, 1, b.Selected)

	b = newSaveBox()
	assert.False(t, b.HandleEvent(charEvent('x')))
	assert.True(t, b.HandleEvent(&gott.Event{Type: gott.EventInterrupt}))
	assert.Equal(t, 2, b.Selected)
}

func TestChoiceBoxDrawAndClick(t *testing.T) {
	d := newFakeDisplay(24, 80)
	b := newSaveBox()
	b.Draw(d)
	require.Len(t, b.buttons, 3)

	assert.Contains(t, d.row(b.buttonRow), "[ Save ] [ Discard ] [ Cancel ]")
	assert.Equal(t, selectedBg, d.colors[gott.Point{Row: b.buttonRow, Col: b.buttons[0].Start}])

	assert.False(t, b.HandleEvent(clickEvent(b.buttons[1].Start, b.buttonRow+1)))
	assert.True(t, b.HandleEvent(clickEvent(b.buttons[1].Start+2, b.buttonRow)))
	assert.Equal(t, 1, b.Selected)
}

func newDocsStore(t *testing.T) *fileio.Store {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/docs/nested", 0755))
	for _, name := range []string{"notes.txt", "novel.txt", "run.bat"} {
		require.NoError(t, afero.WriteFile(fs, "/docs/"+name, []byte(name), 0644))
	}
	return fileio.NewStore(fs)
}

func TestPathInputTypingAndCompletion(t *testing.T) {
	store := newDocsStore(t)
	p := NewPathInput("Open File", "/docs/no", nil, store.List)
	assert.Len(t, p.Entries(), 2)

	p.HandleEvent(keyEvent(gott.KeyTab))
	assert.Equal(t, "/docs/no", string(p.Text))

	p.HandleEvent(charEvent('v'))
	p.HandleEvent(keyEvent(gott.KeyTab))
	assert.Equal(t, "/docs/novel.txt", string(p.Text))

	p.HandleEvent(keyEvent(gott.KeyBackspace))
	assert.Equal(t, "/docs/novel.tx", string(p.Text))

	assert.True(t, p.HandleEvent(keyEvent(gott.KeyEnter)))
	assert.Equal(t, "/docs/novel.tx", p.Path())
}

func TestPathInputCompletesDirectories(t *testing.T) {
	store := newDocsStore(t)
	p := NewPathInput("Open File", "/docs/ne", nil, store.List)
	p.HandleEvent(keyEvent(gott.KeyTab))
	assert.Equal(t, "/docs/nested/", string(p.Text))
	assert.Empty(t, p.Entries())
}

func TestPathInputFilters(t *testing.T) {
	store := newDocsStore(t)
	filters := []gott.Filter{
		{Name: "Text Files", Pattern: "*.txt"},
		{Name: "Batch Files", Pattern: "*.bat"},
		{Name: "All Files", Pattern: "*.*"},
	}
	p := NewPathInput("Save File", "/docs/", filters, store.List)
	assert.Equal(t, []fileio.Entry{
		{Name: "nested", IsDir: true},
		{Name: "notes.txt"},
		{Name: "novel.txt"},
	}, p.Entries())

	p.HandleEvent(keyEvent(gott.KeyArrowDown))
	assert.Equal(t, filters[1], p.SelectedFilter())
	assert.Equal(t, []fileio.Entry{
		{Name: "nested", IsDir: true},
		{Name: "run.bat"},
	}, p.Entries())

	p.HandleEvent(keyEvent(gott.KeyArrowUp))
	p.HandleEvent(keyEvent(gott.KeyArrowUp))
	assert.Equal(t, filters[2], p.SelectedFilter())
	assert.Len(t, p.Entries(), 4)
}

func TestPathInputEnterNeedsText(t *testing.T) {
	p := NewPathInput("Open File", "", nil, nil)
	assert.False(t, p.HandleEvent(keyEvent(gott.KeyEnter)))
	for _, e := range typeEvents("my notes.txt") {
		p.HandleEvent(e)
	}
	assert.True(t, p.HandleEvent(keyEvent(gott.KeyEnter)))
	assert.Equal(t, "my notes.txt", p.Path())
}

func TestPathInputEnterOnDirectoryListsIt(t *testing.T) {
	store := newDocsStore(t)
	p := NewPathInput("Open File", "/docs/", nil, store.List)
	assert.False(t, p.HandleEvent(keyEvent(gott.KeyEnter)))
	assert.False(t, p.Done())
	assert.Len(t, p.Entries(), 4)

	p = NewPathInput("Open File", "/docs/nested", nil, store.List)
	assert.False(t, p.HandleEvent(keyEvent(gott.KeyEnter)))
	assert.Equal(t, "/docs/nested/", string(p.Text))
	assert.Empty(t, p.Entries())

	for _, e := range typeEvents("plan.txt") {
		p.HandleEvent(e)
	}
	assert.True(t, p.HandleEvent(keyEvent(gott.KeyEnter)))
	assert.Equal(t, "/docs/nested/plan.txt", p.Path())
}

func TestPathInputCancel(t *testing.T) {
	p := NewPathInput("Save File", "Untitled.txt", nil, nil)
	assert.True(t, p.HandleEvent(keyEvent(gott.KeyEsc)))
	assert.Equal(t, "", p.Path())
	assert.Equal(t, gott.Filter{}, p.SelectedFilter())
}

func TestPathInputClickOnEntry(t *testing.T) {
	store := newDocsStore(t)
	p := NewPathInput("Open File", "/docs/", nil, store.List)
	d := newFakeDisplay(24, 80)
	p.Draw(d)

	// entries are listed directories first
	assert.Contains(t, d.row(p.listTop), "nested/")
	assert.False(t, p.HandleEvent(clickEvent(10, p.listTop)))
	assert.Equal(t, "/docs/nested/", string(p.Text))

	p = NewPathInput("Open File", "/docs/", nil, store.List)
	p.Draw(d)
	assert.True(t, p.HandleEvent(clickEvent(10, p.listTop+1)))
	assert.Equal(t, "/docs/notes.txt", p.Path())
}

func TestPathInputShowsListingError(t *testing.T) {
	store := newDocsStore(t)
	p := NewPathInput("Open File", "/missing/", nil, store.List)
	d := newFakeDisplay(24, 80)
	p.Draw(d)
	assert.NotEqual(t, "", d.row(p.listTop))
	assert.Empty(t, p.Entries())
}
