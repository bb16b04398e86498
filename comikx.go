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
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comikx/comikx/pkg/commander"
	"github.com/comikx/comikx/pkg/editor"
	"github.com/comikx/comikx/pkg/fileio"
	"github.com/comikx/comikx/pkg/logging"
	"github.com/comikx/comikx/pkg/screen"
	"github.com/comikx/comikx/pkg/session"
	gott "github.com/comikx/comikx/pkg/types"
)

type options struct {
	eval    string // lisp script to run instead of the terminal
	logFile string
	debug   bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "comikx [file]",
		Short: "A minimal text editor",
		Long: `comikx edits one plain text document at a time in the terminal.
It asks before unsaved changes are lost by New, Open, Exit or closing the window.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.eval, "eval", "", "run a lisp script without a terminal and exit")
	cmd.Flags().StringVar(&opts.logFile, "log-file", logging.DefaultLogPath(), "file that receives the log")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log debug records and show events in the status bar")
	return cmd
}

func run(out io.Writer, opts options, args []string) error {
	cfg := logging.DefaultConfig()
	cfg.OutputPaths = []string{opts.logFile}
	if opts.debug {
		cfg.Level = "debug"
		cfg.Development = true
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logger.Sync()

	// The editor manages all text manipulation.
	e := editor.New()
	files := fileio.NewOsStore()

	if opts.eval != "" {
		return runScript(out, opts, args, e, files, logger)
	}
	return runTerminal(opts, args, e, files, logger)
}

// openStartupFile loads the file named on the command line. A failure has
// already been shown to the user, so the editor starts empty.
func openStartupFile(s *session.Controller, args []string, logger *zap.Logger) {
	if len(args) == 0 {
		return
	}
	if err := s.OpenPath(args[0]); err != nil {
		logger.Warn("starting with an empty document", zap.Error(err))
	}
}

// runScript runs a comikx script and exits.
func runScript(out io.Writer, opts options, args []string, e *editor.Editor, files *fileio.Store, logger *zap.Logger) error {
	script, err := files.ReadText(opts.eval)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	dialogs := commander.NewScriptDialogs(logger)
	s := session.NewController(e, dialogs, files, logger)
	c := commander.NewCommander(e, s, logger, commander.WithScript(dialogs), commander.WithDebug(opts.debug))

	openStartupFile(s, args, logger)
	value, err := c.RunScript(script)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", opts.eval, err)
	}
	fmt.Fprintln(out, value)
	return nil
}

func runTerminal(opts options, args []string, e *editor.Editor, files *fileio.Store, logger *zap.Logger) error {
	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer s.Close()

	// The commander converts user inputs into commands for the editor.
	var c *commander.Commander
	dialogs := screen.NewDialogs(s, files.List, func(d gott.Display) {
		screen.Draw(d, e, c)
	}, logger)
	controller := session.NewController(e, dialogs, files, logger)
	c = commander.NewCommander(e, controller, logger, commander.WithDebug(opts.debug))

	// Signals ask to close the window. The event loop handles them.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()
	go func() {
		for sig := range signals {
			logger.Info("signal", zap.Stringer("signal", sig))
			s.Interrupt()
		}
	}()

	openStartupFile(controller, args, logger)

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			logger.Warn("event", zap.Error(err))
		}
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
