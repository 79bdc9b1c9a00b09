package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"dropshell/core/config"
)

// RecallWord re-submits the most recently stored command line when entered
// as the entire line.
const RecallWord = "!!"

var motdColor = color.New(color.FgCyan, color.Bold)

// Shell owns all state that survives between prompt iterations: the history
// store, the background job set, and the stdio streams every dispatch path
// writes to. Nothing in the engine is package-level mutable state.
type Shell struct {
	Config  *config.Configuration
	History *History
	Jobs    *Tracker
	Log     *log.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	running bool
}

// NewShell builds a shell bound to the process stdio. Callers may swap the
// streams before Run; logger may be nil to discard engine events.
func NewShell(configuration *config.Configuration, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard, "", log.LstdFlags)
	}
	return &Shell{
		Config:  configuration,
		History: &History{},
		Jobs:    NewTracker(logger),
		Log:     logger,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run reads and executes commands interactively until an exit request or end
// of input. End of input is a clean termination, same as exit.
func (s *Shell) Run() error {
	if s.Config.Motd != "" {
		motdColor.Fprintln(s.Stdout, s.Config.Motd)
	}

	cfg := &readline.Config{
		Prompt: s.Config.Prompt,
		Stdin:  readline.NewCancelableStdin(s.Stdin),
		Stdout: s.Stdout,
		Stderr: s.Stderr,
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		s.Log.Printf("readline unavailable, using plain reader: %v", err)
		return s.runPlain()
	}
	defer rl.Close()

	s.running = true
	for s.running {
		s.Jobs.Reap()

		line, err := rl.Readline()
		switch {
		case err == io.EOF:
			return nil // Input closed, quit.
		case err == readline.ErrInterrupt:
			continue
		case err != nil:
			return err
		}

		s.interpret(line)
	}
	return nil
}

// runPlain is the prompt loop without line editing, used when readline can't
// take over the input stream.
func (s *Shell) runPlain() error {
	scanner := bufio.NewScanner(s.Stdin)

	s.running = true
	for s.running {
		s.Jobs.Reap()

		fmt.Fprint(s.Stdout, s.Config.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		s.interpret(scanner.Text())
	}
	return nil
}

// ExecuteReader runs every line from r through the shell engine without
// prompting. It is the batch-mode twin of Run.
func (s *Shell) ExecuteReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	s.running = true
	for s.running && scanner.Scan() {
		s.Jobs.Reap()
		s.interpret(scanner.Text())
	}
	return scanner.Err()
}

// interpret resolves history recall for one raw input line and dispatches
// it, reporting any user or resource error without stopping the loop.
func (s *Shell) interpret(line string) {
	if s.Config.MaxLine > 0 && len(line) > s.Config.MaxLine {
		line = line[:s.Config.MaxLine] // documented ceiling, not an error
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if line == RecallWord {
		recalled, err := s.History.Recall()
		if err != nil {
			fmt.Fprintln(s.Stdout, "No commands in history.")
			return
		}
		// Echo the substituted command, but do not re-record it.
		fmt.Fprintln(s.Stdout, recalled)
		line = recalled
	} else {
		s.History.Record(line)
	}

	if err := s.execute(line); err != nil {
		fmt.Fprintf(s.Stderr, "dropshell: %v\n", err)
	}
}

// execute tokenizes one command line and routes it to the builtin, pipeline,
// or external dispatch path.
func (s *Shell) execute(line string) error {
	args, background := Tokenize(line, s.Config.MaxArgs)
	if len(args) == 0 {
		return nil
	}

	if builtin, ok := AllBuiltins[args[0]]; ok {
		builtin.Main(s, args)
		return nil
	}

	pipeAt, err := findPipe(args)
	if err != nil {
		return err
	}
	if pipeAt >= 0 {
		if background {
			return errors.New("pipelines cannot run in the background")
		}
		left, right := args[:pipeAt], args[pipeAt+1:]
		if len(left) == 0 {
			return errors.New("empty command before '|'")
		}
		if len(right) == 0 {
			return errors.New("empty command after '|'")
		}
		return s.runPipeline(left, right)
	}

	return s.runExternal(args, background)
}
