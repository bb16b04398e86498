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
	"github.com/nsf/termbox-go"

	gott "github.com/comikx/comikx/pkg/types"
)

func convertEvent(event termbox.Event) *gott.Event {
	e := &gott.Event{
		Type: eventType(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
	if event.Ch != 0 {
		e.Key = gott.KeyNone
	}
	if event.Type == termbox.EventMouse {
		e.Mouse = gott.Point{Row: event.MouseY, Col: event.MouseX}
	}
	return e
}

func eventType(t termbox.EventType) int {
	switch t {
	case termbox.EventKey:
		return gott.EventKey
	case termbox.EventResize:
		return gott.EventResize
	case termbox.EventMouse:
		return gott.EventMouse
	case termbox.EventError:
		return gott.EventError
	case termbox.EventInterrupt:
		return gott.EventInterrupt
	default:
		return gott.EventNone
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	case termbox.KeyCtrlN:
		return gott.KeyCtrlN
	case termbox.KeyCtrlO:
		return gott.KeyCtrlO
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlR:
		return gott.KeyCtrlR
	case termbox.KeyCtrlS:
		return gott.KeyCtrlS
	case termbox.KeyCtrlV:
		return gott.KeyCtrlV
	case termbox.KeyCtrlW:
		return gott.KeyCtrlW
	case termbox.KeyCtrlX:
		return gott.KeyCtrlX
	case termbox.KeyCtrlZ:
		return gott.KeyCtrlZ
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyF10:
		return gott.KeyF10
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	case termbox.MouseLeft:
		return gott.KeyMouseLeft
	case termbox.MouseRelease:
		return gott.KeyMouseRelease
	default:
		return gott.KeyUnsupported
	}
}
