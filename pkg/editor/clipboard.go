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
	"github.com/atotto/clipboard"
)

// A Clipboard holds text for cut, copy and paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Pasteboard is an in-process clipboard.
type Pasteboard struct {
	text string
}

func (p *Pasteboard) ReadAll() (string, error) {
	return p.text, nil
}

func (p *Pasteboard) WriteAll(text string) error {
	p.text = text
	return nil
}

// SystemClipboard uses the clipboard of the desktop session when there is one
// and falls back to a pasteboard when there isn't (e.g. over ssh).
type SystemClipboard struct {
	fallback Pasteboard
}

func (s *SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return s.fallback.ReadAll()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return s.fallback.ReadAll()
	}
	return text, nil
}

func (s *SystemClipboard) WriteAll(text string) error {
	s.fallback.WriteAll(text)
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll(text)
}
