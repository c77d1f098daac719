// Where: internal/app/helpers_test.go
// What: Shared fakes and rig setup for app package tests.
// Why: One engine/confirmer/remover fake serves every pipeline test.
package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"testing"
	"time"

	"github.com/poruru/dockfresh/internal/engine"
	"github.com/poruru/dockfresh/internal/execute"
	"github.com/poruru/dockfresh/internal/interaction"
	"github.com/poruru/dockfresh/internal/pkgmgr"
	"github.com/poruru/dockfresh/internal/preflight"
)

// callLog records structural operations across fakes so tests can assert
// ordering between engine calls and filesystem removals.
type callLog struct {
	calls []string
}

func (l *callLog) add(entry string) {
	l.calls = append(l.calls, entry)
}

func (l *callLog) index(entry string) int {
	for i, call := range l.calls {
		if call == entry {
			return i
		}
	}
	return -1
}

type fakeEngine struct {
	log *callLog

	pingCalls   int
	pingErrs    []error
	pingDefault error

	info    engine.Info
	infoErr error

	pruneOpts   []engine.PruneOptions
	pruneReport engine.PruneReport
	pruneErr    error

	cacheAlls  []bool
	cacheSpace uint64
	cacheErr   error

	containers []engine.ContainerRow
	images     []engine.ImageRow
	volumes    []engine.VolumeRow
	networks   []engine.NetworkRow
	listErr    error

	stopCalls  int
	startCalls int
	startErr   error
}

func (f *fakeEngine) Ping(context.Context) error {
	f.pingCalls++
	if len(f.pingErrs) > 0 {
		err := f.pingErrs[0]
		f.pingErrs = f.pingErrs[1:]
		return err
	}
	return f.pingDefault
}

func (f *fakeEngine) Info(context.Context) (engine.Info, error) {
	return f.info, f.infoErr
}

func (f *fakeEngine) PruneAll(_ context.Context, opts engine.PruneOptions) (engine.PruneReport, error) {
	f.log.add("prune-all")
	f.pruneOpts = append(f.pruneOpts, opts)
	return f.pruneReport, f.pruneErr
}

func (f *fakeEngine) PruneBuildCache(_ context.Context, all bool) (uint64, error) {
	f.log.add("prune-cache")
	f.cacheAlls = append(f.cacheAlls, all)
	return f.cacheSpace, f.cacheErr
}

func (f *fakeEngine) ListContainers(context.Context) ([]engine.ContainerRow, error) {
	return f.containers, f.listErr
}

func (f *fakeEngine) ListImages(context.Context) ([]engine.ImageRow, error) {
	return f.images, f.listErr
}

func (f *fakeEngine) ListVolumes(context.Context) ([]engine.VolumeRow, error) {
	return f.volumes, f.listErr
}

func (f *fakeEngine) ListNetworks(context.Context) ([]engine.NetworkRow, error) {
	return f.networks, f.listErr
}

func (f *fakeEngine) Stop(_ context.Context, _ func(string)) {
	f.log.add("stop")
	f.stopCalls++
}

func (f *fakeEngine) Start(context.Context) error {
	f.log.add("start")
	f.startCalls++
	return f.startErr
}

// fakeConfirmer answers prompts from a scripted list. An exhausted list
// answers no, which mirrors the real confirmer's EOF behavior.
type fakeConfirmer struct {
	prompts []string
	answers []bool
	err     error
}

func (f *fakeConfirmer) Confirm(message string) (bool, error) {
	f.prompts = append(f.prompts, message)
	if f.err != nil {
		return false, f.err
	}
	if len(f.answers) == 0 {
		return false, nil
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	return answer, nil
}

type fakeRemover struct {
	log       *callLog
	failPaths map[string]error
}

func (f *fakeRemover) Remove(_ context.Context, path string, elevated bool) error {
	if elevated {
		f.log.add("remove-sudo " + path)
		return nil
	}
	f.log.add("remove " + path)
	if err, ok := f.failPaths[path]; ok {
		return err
	}
	return nil
}

type fakeRunner struct {
	commands []string
	errFor   map[string]error
}

func (f *fakeRunner) record(name string, args []string) error {
	command := name + " " + strings.Join(args, " ")
	f.commands = append(f.commands, command)
	for prefix, err := range f.errFor {
		if strings.HasPrefix(command, prefix) {
			return err
		}
	}
	return nil
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	return f.record(name, args)
}

func (f *fakeRunner) RunQuiet(_ context.Context, name string, args ...string) error {
	return f.record(name, args)
}

func (f *fakeRunner) RunOutput(_ context.Context, name string, args ...string) ([]byte, error) {
	return nil, f.record(name, args)
}

type fakePrompter struct {
	title string
	value string
	err   error
}

func (f *fakePrompter) SelectValue(title string, _ []interaction.SelectOption) (string, error) {
	f.title = title
	if f.err != nil {
		return "", f.err
	}
	return f.value, nil
}

func passingPreflight(runner execute.CommandRunner) preflight.Deps {
	return preflight.Deps{
		Geteuid:     func() int { return 1000 },
		Getegid:     func() int { return 999 },
		Getgroups:   func() ([]int, error) { return []int{999}, nil },
		LookupGroup: func(string) (*user.Group, error) { return &user.Group{Name: "docker", Gid: "999"}, nil },
		Username:    func() (string, error) { return "op", nil },
		Executable:  func() (string, error) { return "/usr/local/bin/dockfresh", nil },
		Runner:      runner,
		Notify:      func(string) {},
	}
}

// testRig wires a full Dependencies value out of fakes. The home
// directory doubles as HOME so the config layer stays inside the
// test sandbox.
type testRig struct {
	home      string
	log       *callLog
	engine    *fakeEngine
	confirmer *fakeConfirmer
	remover   *fakeRemover
	runner    *fakeRunner
	out       *bytes.Buffer
	sleeps    int
	deps      Dependencies
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DOCKFRESH_CONFIG", "")

	rig := &testRig{
		home:      home,
		log:       &callLog{},
		confirmer: &fakeConfirmer{},
		runner:    &fakeRunner{},
		out:       &bytes.Buffer{},
	}
	rig.engine = &fakeEngine{log: rig.log}
	rig.remover = &fakeRemover{log: rig.log}
	rig.deps = Dependencies{
		Out:        rig.out,
		Home:       home,
		Engine:     rig.engine,
		Confirmer:  rig.confirmer,
		Remover:    rig.remover,
		Runner:     rig.runner,
		Preflight:  passingPreflight(rig.runner),
		Sleep:      func(time.Duration) { rig.sleeps++ },
		ReviewRoot: t.TempDir(),
	}
	return rig
}

func stubTerminal(t *testing.T, interactive bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(*os.File) bool { return interactive }
	t.Cleanup(func() { isTerminal = orig })
}

func stubEnginePath(t *testing.T, installed bool) {
	t.Helper()
	orig := preflight.LookPath
	preflight.LookPath = func(name string) (string, error) {
		if !installed {
			return "", exec.ErrNotFound
		}
		return "/usr/bin/" + name, nil
	}
	t.Cleanup(func() { preflight.LookPath = orig })
}

func stubPackageManagers(t *testing.T, available ...string) {
	t.Helper()
	orig := pkgmgr.LookPath
	pkgmgr.LookPath = func(name string) (string, error) {
		for _, entry := range available {
			if entry == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { pkgmgr.LookPath = orig })
}

// childExitError harvests a real exec.ExitError carrying the given code.
func childExitError(t *testing.T, code int) error {
	t.Helper()
	err := exec.Command("sh", "-c", fmt.Sprintf("exit %d", code)).Run()
	if err == nil {
		t.Fatalf("expected child to fail")
	}
	return err
}
