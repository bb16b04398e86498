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

// Package session implements the document lifecycle of comikx.
//
// A Controller owns a Session (the current file path and the text as of the
// last load or save) and reacts to the user's intents: New, Open, Save,
// Save As, Exit and window close. The document is Dirty when the buffer
// text differs from the saved text. Exit and window close ask the user to
// Save, Discard or Cancel when the document is Dirty. New and Open ask
// when the buffer has been edited since it was last loaded or written.
//
// Known issue: Save records the saved text before the write is attempted.
// If the write fails, the document reports Clean although the file on disk
// was not updated. Exit proceeds after choosing Save even when the save
// fails.
package session
