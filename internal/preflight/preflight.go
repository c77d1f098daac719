// Where: internal/preflight/preflight.go
// What: Privilege and engine-group checks before any destructive work.
// Why: Refuse root, verify process credentials, repair membership without logout.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"strconv"
	"strings"

	"github.com/poruru/dockfresh/internal/execute"
	"github.com/poruru/dockfresh/internal/meta"
)

var ErrRunAsRoot = errors.New("refusing to run as root: invoke as a regular user, elevation happens per command")

// LookPath resolves binaries on PATH; swapped in tests.
var LookPath = exec.LookPath

// Deps injects host credentials and process control for tests.
type Deps struct {
	Geteuid     func() int
	Getegid     func() int
	Getgroups   func() ([]int, error)
	LookupGroup func(name string) (*user.Group, error)
	Username    func() (string, error)
	Executable  func() (string, error)
	Runner      execute.CommandRunner
	Notify      func(string)
}

// DefaultDeps wires the real process credentials.
func DefaultDeps(runner execute.CommandRunner, notify func(string)) Deps {
	return Deps{
		Geteuid:     os.Geteuid,
		Getegid:     os.Getegid,
		Getgroups:   os.Getgroups,
		LookupGroup: user.LookupGroup,
		Username:    currentUsername,
		Executable:  os.Executable,
		Runner:      runner,
		Notify:      notify,
	}
}

// EnsureUnprivileged fails when the effective UID is the superuser.
func EnsureUnprivileged(deps Deps) error {
	if deps.Geteuid() == 0 {
		return ErrRunAsRoot
	}
	return nil
}

// EnsureEngineInstalled fails when the engine CLI is not on PATH.
func EnsureEngineInstalled() error {
	if _, err := LookPath(meta.EngineBinary); err != nil {
		return fmt.Errorf("%s is not installed: %w", meta.EngineName, err)
	}
	return nil
}

// EnsureGroup verifies that the running process carries the engine group.
// Membership is read from the process credentials, not /etc/group, because
// a grant from an earlier run is invisible to getgroups until re-login.
// A missing membership is repaired with usermod and a supervised relaunch
// of the same executable under sg, which applies the fix without logout.
// When a relaunch happened, the child's exit code comes back with
// relaunched=true and the caller must exit with it.
func EnsureGroup(ctx context.Context, args []string, deps Deps) (relaunched bool, exitCode int, err error) {
	gid, err := engineGroupID(deps)
	if err != nil {
		return false, 0, err
	}

	member, err := isMember(deps, gid)
	if err != nil {
		return false, 0, err
	}
	if member {
		return false, 0, nil
	}

	username, err := deps.Username()
	if err != nil {
		return false, 0, fmt.Errorf("resolve current user: %w", err)
	}

	notify(deps, fmt.Sprintf("adding %s to the %s group", username, meta.EngineGroup))
	if err := deps.Runner.Run(ctx, "sudo", "usermod", "-aG", meta.EngineGroup, username); err != nil {
		return false, 0, fmt.Errorf("add %s to the %s group: %w", username, meta.EngineGroup, err)
	}

	exe, err := deps.Executable()
	if err != nil {
		return false, 0, fmt.Errorf("resolve executable: %w", err)
	}

	notify(deps, fmt.Sprintf("relaunching with %s group credentials", meta.EngineGroup))
	runErr := deps.Runner.Run(ctx, "sg", meta.EngineGroup, "-c", shellCommand(exe, args))
	if runErr == nil {
		return true, 0, nil
	}
	code := execute.ExitCode(runErr)
	if code < 0 {
		return false, 0, fmt.Errorf("relaunch under %s group: %w", meta.EngineGroup, runErr)
	}
	return true, code, nil
}

func engineGroupID(deps Deps) (int, error) {
	group, err := deps.LookupGroup(meta.EngineGroup)
	if err != nil {
		return 0, fmt.Errorf("%s group not found, is the engine installed: %w", meta.EngineGroup, err)
	}
	gid, err := strconv.Atoi(group.Gid)
	if err != nil {
		return 0, fmt.Errorf("parse %s group id %q: %w", meta.EngineGroup, group.Gid, err)
	}
	return gid, nil
}

func isMember(deps Deps, gid int) (bool, error) {
	if deps.Getegid() == gid {
		return true, nil
	}
	groups, err := deps.Getgroups()
	if err != nil {
		return false, fmt.Errorf("read process groups: %w", err)
	}
	for _, g := range groups {
		if g == gid {
			return true, nil
		}
	}
	return false, nil
}

func currentUsername() (string, error) {
	if name := strings.TrimSpace(os.Getenv("USER")); name != "" {
		return name, nil
	}
	current, err := user.Current()
	if err != nil {
		return "", err
	}
	return current.Username, nil
}

func notify(deps Deps, msg string) {
	if deps.Notify != nil {
		deps.Notify(msg)
	}
}

// shellCommand rebuilds the invocation as a single sh command line for
// sg -c, quoting anything the shell would otherwise split or expand.
func shellCommand(exe string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellQuote(exe))
	for _, arg := range args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$&|;<>(){}[]*?#~`") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
