package core

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// findPipe locates the pipeline separator in argv, returning -1 when absent.
// Lines with more than one separator are rejected: multi-stage pipelines are
// out of scope, and silently feeding the extra separators to the right-hand
// command as arguments would be worse than an error.
func findPipe(args []string) (int, error) {
	at := -1
	for i, arg := range args {
		if arg != PipeToken {
			continue
		}
		if at >= 0 {
			return -1, errors.New("pipelines are limited to a single '|'")
		}
		at = i
	}
	return at, nil
}

// startError converts a process-creation failure into the user-facing
// taxonomy: unresolvable names get the classic not-found diagnostic, anything
// else surfaces as a resource error.
func startError(name string, err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: command not found", name)
	}
	return fmt.Errorf("%s: %v", name, err)
}

// runExternal launches argv as a single child process sharing the shell's
// stdio. Foreground children are waited for synchronously; background
// children are handed to the job tracker and announced by job ID and PID.
func (s *Shell) runExternal(argv []string, background bool) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if background {
		// Detached children read from the null device and get their own
		// process group so they never compete for the terminal.
		cmd.SysProcAttr = &unix.SysProcAttr{Setpgid: true}
	} else {
		cmd.Stdin = s.Stdin
	}

	if err := cmd.Start(); err != nil {
		return startError(argv[0], err)
	}

	if background {
		job := s.Jobs.Add(cmd, argv)
		fmt.Fprintf(s.Stdout, "[%d] %d\n", job.ID, job.PID)
		return nil
	}

	// The foreground child's exit status is deliberately discarded; a
	// failing command is the user's business, not the shell's.
	_ = cmd.Wait()
	return nil
}

// runPipeline wires left's stdout to right's stdin through one pipe and
// waits for both sides in whatever order they finish. The parent must drop
// both pipe ends as soon as the children hold them: a write end retained
// here would keep the right side from ever seeing end-of-stream.
func (s *Shell) runPipeline(left, right []string) error {
	r, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("pipe: %v", err)
	}

	leftCmd := exec.Command(left[0], left[1:]...)
	leftCmd.Stdin = s.Stdin
	leftCmd.Stdout = w
	leftCmd.Stderr = s.Stderr

	rightCmd := exec.Command(right[0], right[1:]...)
	rightCmd.Stdin = r
	rightCmd.Stdout = s.Stdout
	rightCmd.Stderr = s.Stderr

	leftErr := leftCmd.Start()
	rightErr := rightCmd.Start()

	// The handoff is complete, or failed; either way the parent's copies
	// must go before anyone waits.
	w.Close()
	r.Close()

	if leftErr == nil {
		_ = leftCmd.Wait()
	}
	if rightErr == nil {
		_ = rightCmd.Wait()
	}

	if leftErr != nil {
		return startError(left[0], leftErr)
	}
	if rightErr != nil {
		return startError(right[0], rightErr)
	}
	return nil
}
