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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = "testdata/gettysburg-address.txt"

// runBatch runs comikx with a script and returns what it printed.
func runBatch(t *testing.T, script string, args ...string) (string, error) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.lisp")
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0644))

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--eval", scriptPath, "--log-file", filepath.Join(dir, "comikx.log")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	final := filepath.Join(t.TempDir(), "final.txt")
	_, err := runBatch(t, `(save-as "`+final+`")`, source)
	require.NoError(t, err)

	want, err := os.ReadFile(source)
	require.NoError(t, err)
	got, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestEditAndSaveInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("world"), 0644))

	_, err := runBatch(t, `
(insert "hello ")
(save)
`, path)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
}

func TestUndoRestoresFile(t *testing.T) {
	final := filepath.Join(t.TempDir(), "final.txt")
	_, err := runBatch(t, `
(set-text "scratch")
(undo)
(undo)
(save-as "`+final+`")
`, source)
	require.NoError(t, err)

	want, err := os.ReadFile(source)
	require.NoError(t, err)
	got, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestMissingStartupFileStartsEmpty(t *testing.T) {
	final := filepath.Join(t.TempDir(), "final.txt")
	_, err := runBatch(t, `(save-as "`+final+`")`, filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	got, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "", string(got))
}

func TestScriptErrors(t *testing.T) {
	_, err := runBatch(t, `(insert 42)`)
	assert.Error(t, err)

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--eval", filepath.Join(t.TempDir(), "none.lisp"), "--log-file", filepath.Join(t.TempDir(), "log")})
	assert.Error(t, cmd.Execute())
}

func TestTooManyFiles(t *testing.T) {
	_, err := runBatch(t, `(text)`, "a.txt", "b.txt")
	assert.Error(t, err)
}
