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

package commander

import (
	"errors"
	"fmt"

	"github.com/steelseries/golisp"
	"go.uber.org/zap"

	gott "github.com/comikx/comikx/pkg/types"
)

// active is the commander that primitives act on. It is set before each evaluation.
var active *Commander

func init() {
	golisp.MakePrimitiveFunction("new", "0", newImpl)
	golisp.MakePrimitiveFunction("open", "0|1", openImpl)
	golisp.MakePrimitiveFunction("save", "0", saveImpl)
	golisp.MakePrimitiveFunction("save-as", "0|1", saveAsImpl)
	golisp.MakePrimitiveFunction("exit", "0", exitImpl)
	golisp.MakePrimitiveFunction("text", "0", textImpl)
	golisp.MakePrimitiveFunction("set-text", "1", setTextImpl)
	golisp.MakePrimitiveFunction("insert", "1", insertImpl)
	golisp.MakePrimitiveFunction("undo", "0", undoImpl)
	golisp.MakePrimitiveFunction("redo", "0", redoImpl)
	golisp.MakePrimitiveFunction("cut", "0", cutImpl)
	golisp.MakePrimitiveFunction("copy", "0", copyImpl)
	golisp.MakePrimitiveFunction("paste", "0", pasteImpl)
	golisp.MakePrimitiveFunction("mark", "0", markImpl)
	golisp.MakePrimitiveFunction("dirty?", "0", dirtyImpl)
	golisp.MakePrimitiveFunction("modified?", "0", modifiedImpl)
	golisp.MakePrimitiveFunction("file-name", "0", fileNameImpl)
	golisp.MakePrimitiveFunction("title", "0", titleImpl)
	golisp.MakePrimitiveFunction("on-unsaved", "1", onUnsavedImpl)
}

// ParseEval evaluates a lisp expression and returns its printed value.
func (c *Commander) ParseEval(command string) (string, error) {
	return c.parseEval(command)
}

// RunScript evaluates every expression of a script in order.
func (c *Commander) RunScript(script string) (string, error) {
	return c.parseEval("(begin\n" + script + "\n)")
}

func (c *Commander) parseEval(command string) (string, error) {
	active = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		c.logger.Warn("evaluation failed", zap.String("command", command), zap.Error(err))
		return "", err
	}
	result := golisp.String(value)
	c.logger.Debug("evaluated", zap.String("command", command), zap.String("value", result))
	return result, nil
}

func current() (*Commander, error) {
	if active == nil {
		return nil, errors.New("no editor is running")
	}
	return active, nil
}

func stringArg(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

// queuePath answers the next Open or Save As dialog of a script with an
// explicit path.
func (c *Commander) queuePath(name string, args *golisp.Data, queue func(*ScriptDialogs, string)) error {
	if golisp.Length(args) == 0 {
		return nil
	}
	path, err := stringArg(name, args)
	if err != nil {
		return err
	}
	if c.script == nil {
		return fmt.Errorf("%s accepts a path only in scripts", name)
	}
	queue(c.script, path)
	return nil
}

func (c *Commander) dropPaths() {
	if c.script != nil {
		c.script.DropPaths()
	}
}

func newImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	c.session.New()
	return nil, nil
}

func openImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	if err = c.queuePath("open", args, (*ScriptDialogs).QueueOpenPath); err != nil {
		return nil, err
	}
	defer c.dropPaths()
	return golisp.BooleanWithValue(c.session.Open() == nil), nil
}

func saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.session.Save() == nil), nil
}

func saveAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	if err = c.queuePath("save-as", args, (*ScriptDialogs).QueueSavePath); err != nil {
		return nil, err
	}
	defer c.dropPaths()
	return golisp.BooleanWithValue(c.session.SaveAs() == nil), nil
}

func exitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.exit()), nil
}

func textImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.Text()), nil
}

func setTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	text, err := stringArg("set-text", args)
	if err != nil {
		return nil, err
	}
	c.editor.ReplaceText(text)
	return nil, nil
}

func insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	text, err := stringArg("insert", args)
	if err != nil {
		return nil, err
	}
	c.editor.InsertText(text)
	return nil, nil
}

func undoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.editor.Undo()), nil
}

func redoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.editor.Redo()), nil
}

func cutImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return nil, c.editor.Cut()
}

func copyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return nil, c.editor.Copy()
}

func pasteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return nil, c.editor.Paste()
}

func markImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	c.editor.ToggleMark()
	return nil, nil
}

func dirtyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.session.IsDirty()), nil
}

func modifiedImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.editor.IsModified()), nil
}

func fileNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.session.GetPath()), nil
}

func titleImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.session.GetTitle()), nil
}

func onUnsavedImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	name, err := stringArg("on-unsaved", args)
	if err != nil {
		return nil, err
	}
	choice, err := gott.ParseChoice(name)
	if err != nil {
		return nil, err
	}
	if c.script == nil {
		return nil, errors.New("on-unsaved is only available in scripts")
	}
	c.script.SetChoice(choice)
	return nil, nil
}
