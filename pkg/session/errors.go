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

package session

import "errors"

var (
	// ErrOpenRead means the chosen file could not be read.
	ErrOpenRead = errors.New("failed to open the file")

	// ErrSaveWrite means the document could not be written to its path.
	ErrSaveWrite = errors.New("failed to save the file")
)

// Notices shown to the user for the two failure kinds.
const (
	noticeTitle       = "Error"
	openFailedMessage = "Failed to open the file."
	saveFailedMessage = "Failed to save the file."
)
