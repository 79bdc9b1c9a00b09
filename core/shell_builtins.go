package core

import (
	"fmt"
	"os"

	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds every command the shell interprets in-process. Builtins
// are matched by exact name on the first token; they never fork and never
// join a pipeline.
var AllBuiltins = make(map[string]Builtin)

type Builtin interface {
	Main(s *Shell, args []string) int
}

type BuiltinFunc func(s *Shell, args []string) int

func (f BuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Exit requests loop termination. The rest of the line is ignored.
func Exit(s *Shell, args []string) int {
	s.running = false
	return 0
}

// Cd changes the shell's working directory, defaulting to $HOME when no path
// is given. An unset HOME is a reported error, not a crash.
func Cd(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		home := os.Getenv("HOME")
		if home == "" {
			fmt.Fprintf(s.Stderr, "%s: HOME not set\n", args[0])
			return 1
		}
		args = append(args, home)
		fallthrough
	case 2:
		if err := os.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.Stderr, "%s: %v\n", args[0], err)
			return 1
		}
	default:
		fmt.Fprintf(s.Stderr, "%s: too many arguments\n", args[0])
		return 1
	}
	return 0
}

// Pwd prints the working directory.
func Pwd(s *Shell, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.Stderr, "%s: %v\n", args[0], err)
		return 1
	}
	fmt.Fprintln(s.Stdout, wd)
	return 0
}

// HistoryBuiltin displays or clears the stored command.
func HistoryBuiltin(s *Shell, args []string) int {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting the stored entry")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.Stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "Display or clear the most recent command.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return 1
	}

	if *clear {
		s.History.Clear()
		return 0
	}

	line, err := s.History.Recall()
	if err != nil {
		fmt.Fprintln(s.Stdout, "No commands in history.")
		return 0
	}
	fmt.Fprintf(s.Stdout, "Last command: %s\n", line)
	return 0
}

// Help prints the static usage summary.
func Help(s *Shell, args []string) int {
	w := s.Stdout
	fmt.Fprintln(w, "dropshell, a small Unix command shell.")
	fmt.Fprintln(w, "Type program names and arguments, then hit enter.")
	fmt.Fprintln(w, "Append '&' to run a command in the background.")
	fmt.Fprintln(w, "Use '|' to pipe one command into another.")
	fmt.Fprintln(w, "Use '!!' to run the last command again.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Builtins:")
	fmt.Fprintln(w, "  cd [path]  change the working directory")
	fmt.Fprintln(w, "  pwd        print the working directory")
	fmt.Fprintln(w, "  history    show the last submitted command")
	fmt.Fprintln(w, "  help       show this message")
	fmt.Fprintln(w, "  exit       leave the shell")
	return 0
}

func init() {
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
	AllBuiltins["help"] = BuiltinFunc(Help)
	AllBuiltins["history"] = BuiltinFunc(HistoryBuiltin)
}
