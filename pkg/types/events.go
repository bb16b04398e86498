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

package types

// Event types
const (
	EventKey = iota
	EventResize
	EventMouse
	EventError
	EventInterrupt
	EventNone
)

type Key int

// Keys that the commander understands. KeyNone marks events that carry a character.
const (
	KeyNone Key = iota
	KeyUnsupported
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyCtrlB
	KeyCtrlC
	KeyCtrlN
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlZ
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyF10
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
	KeyMouseLeft
	KeyMouseRelease
)

type Event struct {
	Type  int
	Key   Key
	Ch    rune
	Mouse Point // screen position of mouse events
}
