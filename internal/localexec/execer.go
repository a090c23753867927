package localexec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"testing"

	"github.com/mkdrive-dev/mkdrive/pkg/logger"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
	"github.com/mkdrive-dev/mkdrive/pkg/procutil"
)

// OneShotResult holds everything a short-lived probe command produced.
type OneShotResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// RunIO is the stream wiring for a single Run invocation.
type RunIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Execer interface {
	// Run executes a command and waits for it to complete.
	//
	// If the context is canceled before the process terminates, the process
	// will be killed.
	Run(ctx context.Context, cmd model.Cmd, runIO RunIO) (int, error)
}

func OneShot(ctx context.Context, execer Execer, cmd model.Cmd) (OneShotResult, error) {
	var stdout, stderr bytes.Buffer
	runIO := RunIO{
		Stdout: &stdout,
		Stderr: &stderr,
	}
	exitCode, err := execer.Run(ctx, cmd, runIO)
	if err != nil {
		return OneShotResult{}, err
	}

	return OneShotResult{
		ExitCode: exitCode,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}, nil
}

// OneShotToLogger streams the command's combined output to the context
// logger and converts a non-zero exit into an error.
func OneShotToLogger(ctx context.Context, execer Execer, cmd model.Cmd) error {
	l := logger.Get(ctx)
	out := l.Writer(logger.InfoLvl)

	runIO := RunIO{Stdout: out, Stderr: out}

	l.Infof("Running cmd: %s", cmd.String())
	exitCode, err := execer.Run(ctx, cmd, runIO)
	if err == nil && exitCode != 0 {
		err = fmt.Errorf("exit status %d", exitCode)
	}
	return err
}

type ProcessExecer struct {
	env *Env
}

var _ Execer = &ProcessExecer{}

func NewProcessExecer(env *Env) *ProcessExecer {
	return &ProcessExecer{env: env}
}

func (p ProcessExecer) Run(ctx context.Context, cmd model.Cmd, runIO RunIO) (int, error) {
	osCmd, err := p.env.ExecCmd(cmd, logger.Get(ctx))
	if err != nil {
		return -1, err
	}

	osCmd.SysProcAttr = &syscall.SysProcAttr{}
	procutil.SetOptNewProcessGroup(osCmd.SysProcAttr)

	osCmd.Stdin = runIO.Stdin
	osCmd.Stdout = runIO.Stdout
	osCmd.Stderr = runIO.Stderr

	if err := osCmd.Start(); err != nil {
		return -1, err
	}

	// A goroutine watches for context cancellation and kills the whole
	// process group. The exit code is pinned to 137 in that path: once the
	// children are gone the leader may still exit 0, which would make a
	// canceled build look successful. The sync.Once arbitrates between this
	// goroutine and the Wait below.
	var exitCode int
	var handleProcessExit sync.Once
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		handleProcessExit.Do(
			func() {
				procutil.KillProcessGroup(osCmd)
				exitCode = 137
			})
	}()

	// Wait blocks until every child holding the output pipes has exited,
	// which is what we want: the cancellation goroutine handles runaway
	// processes, and by the time Wait returns all output has been flushed.
	err = osCmd.Wait()
	if exitErr, ok := err.(*exec.ExitError); ok {
		handleProcessExit.Do(
			func() {
				exitCode = exitErr.ExitCode()
			})
		err = nil
	} else if err != nil {
		handleProcessExit.Do(
			func() {
				exitCode = -1
			})
	} else {
		// Burn the sync.Once so the cancellation goroutine cannot rewrite
		// the exit code of a process that already finished cleanly.
		handleProcessExit.Do(func() {})
	}
	return exitCode, err
}

type fakeCmdResult struct {
	exitCode int
	err      error
	stdout   []byte
	stderr   []byte
}

type FakeCall struct {
	Cmd      model.Cmd
	ExitCode int
	Error    error
}

func (f FakeCall) String() string {
	return fmt.Sprintf("cmd=%q exitCode=%d err=%v", f.Cmd.String(), f.ExitCode, f.Error)
}

type FakeExecer struct {
	t  testing.TB
	mu sync.Mutex

	cmds map[string]fakeCmdResult

	calls []FakeCall
}

var _ Execer = &FakeExecer{}

func NewFakeExecer(t testing.TB) *FakeExecer {
	return &FakeExecer{
		t:    t,
		cmds: make(map[string]fakeCmdResult),
	}
}

func (f *FakeExecer) Run(ctx context.Context, cmd model.Cmd, runIO RunIO) (exitCode int, err error) {
	f.t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	defer func() {
		f.calls = append(f.calls, FakeCall{
			Cmd:      cmd,
			ExitCode: exitCode,
			Error:    err,
		})
	}()

	ctxErr := ctx.Err()
	if ctxErr != nil {
		return -1, ctxErr
	}

	if r, ok := f.cmds[cmd.String()]; ok {
		if r.err != nil {
			return -1, r.err
		}

		if runIO.Stdout != nil && len(r.stdout) != 0 {
			if _, err := runIO.Stdout.Write(r.stdout); err != nil {
				return -1, fmt.Errorf("error writing to stdout: %v", err)
			}
		}

		if runIO.Stderr != nil && len(r.stderr) != 0 {
			if _, err := runIO.Stderr.Write(r.stderr); err != nil {
				return -1, fmt.Errorf("error writing to stderr: %v", err)
			}
		}

		return r.exitCode, nil
	}

	return 0, nil
}

func (f *FakeExecer) RegisterCommandError(cmd string, err error) {
	f.t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmds[cmd] = fakeCmdResult{
		err: err,
	}
}

// RegisterCommandBytes registers a canned result, writing the output
// byte-for-byte. Useful for tools whose output has no trailing newline.
func (f *FakeExecer) RegisterCommandBytes(cmd string, exitCode int, stdout []byte, stderr []byte) {
	f.registerCommand(cmd, exitCode, stdout, stderr)
}

// RegisterCommand registers a canned result for a command, keyed by its
// shell-quoted string. Output is newline terminated if it isn't already;
// use RegisterCommandBytes for exact bytes.
func (f *FakeExecer) RegisterCommand(cmd string, exitCode int, stdout string, stderr string) {
	if stdout != "" && !strings.HasSuffix(stdout, "\n") {
		stdout += "\n"
	}

	if stderr != "" && !strings.HasSuffix(stderr, "\n") {
		stderr += "\n"
	}

	f.registerCommand(cmd, exitCode, []byte(stdout), []byte(stderr))
}

// Calls returns a snapshot of every command Run so far.
func (f *FakeExecer) Calls() []FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]FakeCall, len(f.calls))
	copy(calls, f.calls)
	return calls
}

func (f *FakeExecer) registerCommand(cmd string, exitCode int, stdout []byte, stderr []byte) {
	f.t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cmds[cmd] = fakeCmdResult{
		exitCode: exitCode,
		stdout:   stdout,
		stderr:   stderr,
	}
}
