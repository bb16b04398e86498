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

// Package fileio reads and writes documents and answers the questions
// that file dialogs ask about a directory.
package fileio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	gott "github.com/comikx/comikx/pkg/types"
)

// Documents are plain text, written with the usual permissions.
const filePermissions = 0644

// A Store reads and writes documents on a filesystem.
type Store struct {
	fs afero.Fs
}

func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOsStore returns a store for the real filesystem.
func NewOsStore() *Store {
	return NewStore(afero.NewOsFs())
}

// ReadText returns the contents of a file without any transformation.
func (s *Store) ReadText(path string) (string, error) {
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteText replaces the contents of a file, creating it if needed.
func (s *Store) WriteText(path, text string) error {
	return afero.WriteFile(s.fs, path, []byte(text), filePermissions)
}

// An Entry is one line of a file dialog listing.
type Entry struct {
	Name  string
	IsDir bool
}

func (e Entry) String() string {
	if e.IsDir {
		return e.Name + string(os.PathSeparator)
	}
	return e.Name
}

// List returns the directories in dir and the files that match filter
// and start with prefix. Directories come first.
func (s *Store) List(dir, prefix string, filter *gott.Filter) ([]Entry, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if !info.IsDir() && filter != nil && !Match(*filter, name) {
			continue
		}
		entries = append(entries, Entry{Name: name, IsDir: info.IsDir()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Match reports whether a file name is accepted by a dialog filter.
// "*.*" accepts every file, as it does in desktop file dialogs.
func Match(filter gott.Filter, name string) bool {
	if filter.Pattern == "*.*" || filter.Pattern == "" {
		return true
	}
	ok, err := doublestar.Match(filter.Pattern, filepath.Base(name))
	return err == nil && ok
}

// ContentType describes text for the status bar, e.g. "text/plain; charset=utf-8".
func ContentType(text string) string {
	return mimetype.Detect([]byte(text)).String()
}
