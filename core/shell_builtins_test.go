package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the process into a fresh directory for the duration of the
// test. Tests that change the working directory cannot run in parallel.
func chdirTemp(t *testing.T) string {
	t.Helper()

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return dir
}

func TestCd(t *testing.T) {
	dir := chdirTemp(t)
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0700))

	s, _, errOut := newTestShell(t)

	status := Cd(s, []string{"cd", sub})
	assert.Equal(t, 0, status)
	assert.Empty(t, errOut.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, sub, wd)
}

func TestCdHome(t *testing.T) {
	chdirTemp(t)
	home, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("HOME", home)

	s, _, errOut := newTestShell(t)

	status := Cd(s, []string{"cd"})
	assert.Equal(t, 0, status)
	assert.Empty(t, errOut.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, home, wd)
}

func TestCdHomeUnset(t *testing.T) {
	t.Setenv("HOME", "")

	s, _, errOut := newTestShell(t)

	status := Cd(s, []string{"cd"})
	assert.Equal(t, 1, status)
	assert.Contains(t, errOut.String(), "cd: HOME not set")
}

func TestCdBadTarget(t *testing.T) {
	s, _, errOut := newTestShell(t)

	status := Cd(s, []string{"cd", "/dropshell/does/not/exist"})
	assert.Equal(t, 1, status)
	assert.Contains(t, errOut.String(), "cd:")
}

func TestCdTooManyArguments(t *testing.T) {
	s, _, errOut := newTestShell(t)

	status := Cd(s, []string{"cd", "a", "b"})
	assert.Equal(t, 1, status)
	assert.Contains(t, errOut.String(), "too many arguments")
}

func TestPwd(t *testing.T) {
	dir := chdirTemp(t)

	s, out, _ := newTestShell(t)

	status := Pwd(s, []string{"pwd"})
	assert.Equal(t, 0, status)
	assert.Equal(t, dir+"\n", out.String())
}

func TestExitRequestsTermination(t *testing.T) {
	s, _, _ := newTestShell(t)
	s.running = true

	status := Exit(s, []string{"exit"})
	assert.Equal(t, 0, status)
	assert.False(t, s.running)
}

func TestHistoryBuiltinEmpty(t *testing.T) {
	s, out, _ := newTestShell(t)

	status := HistoryBuiltin(s, []string{"history"})
	assert.Equal(t, 0, status)
	assert.Equal(t, "No commands in history.\n", out.String())
}

func TestHistoryBuiltinShowsLast(t *testing.T) {
	s, out, _ := newTestShell(t)
	s.History.Record("echo hi")

	status := HistoryBuiltin(s, []string{"history"})
	assert.Equal(t, 0, status)
	assert.Equal(t, "Last command: echo hi\n", out.String())
}

func TestHistoryBuiltinClear(t *testing.T) {
	s, _, _ := newTestShell(t)
	s.History.Record("echo hi")

	status := HistoryBuiltin(s, []string{"history", "-c"})
	assert.Equal(t, 0, status)

	_, err := s.History.Recall()
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestHelp(t *testing.T) {
	s, out, _ := newTestShell(t)

	status := Help(s, []string{"help"})
	assert.Equal(t, 0, status)

	g := goldie.New(t)
	g.Assert(t, "help", out.Bytes())
}

func TestAllBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"exit", "cd", "pwd", "help", "history"} {
		assert.Contains(t, AllBuiltins, name)
	}
}
