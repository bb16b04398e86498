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

// Package commander converts user input and scripts into commands for comikx.
// Menu items, toolbar buttons and shortcuts name lisp expressions such as
// "(save)". Evaluating them runs the editor or document session primitives
// registered in lisp.go, so a script can do anything the keyboard can.
// Cursor movement and typing are handled directly by the editor.
package commander
