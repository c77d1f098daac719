// Where: internal/app/app_test.go
// What: Tests for argument dispatch and the bare invocation.
// Why: The no-argument path must stay safe without a terminal.
package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/huh"

	"github.com/poruru/dockfresh/internal/engine"
)

func TestRunVersionCommand(t *testing.T) {
	rig := newTestRig(t)

	code := Run([]string{"version"}, rig.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if strings.TrimSpace(rig.out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	rig := newTestRig(t)

	code := Run([]string{"bogus"}, rig.deps)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if strings.TrimSpace(rig.out.String()) == "" {
		t.Fatalf("expected a parse error message")
	}
}

func TestRunNoArgsRequiresTerminal(t *testing.T) {
	stubTerminal(t, false)
	rig := newTestRig(t)

	code := Run(nil, rig.deps)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	out := rig.out.String()
	if !strings.Contains(out, "no terminal attached") || !strings.Contains(out, "dockfresh reset") {
		t.Fatalf("output missing guidance:\n%s", out)
	}
}

func TestRunNoArgsSelectorDispatchesStatus(t *testing.T) {
	stubTerminal(t, true)
	rig := newTestRig(t)
	rig.engine.info = engine.Info{ServerVersion: "27.1.1", OperatingSystem: "Ubuntu 24.04.2 LTS"}
	prompter := &fakePrompter{value: "status"}
	rig.deps.Prompter = prompter

	code := Run(nil, rig.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\noutput:\n%s", code, rig.out.String())
	}
	if prompter.title != "What should dockfresh do?" {
		t.Fatalf("selector title = %q", prompter.title)
	}
	if !strings.Contains(rig.out.String(), "Docker 27.1.1") {
		t.Fatalf("status output missing:\n%s", rig.out.String())
	}
}

func TestRunNoArgsSelectorAborted(t *testing.T) {
	stubTerminal(t, true)
	rig := newTestRig(t)
	rig.deps.Prompter = &fakePrompter{err: huh.ErrUserAborted}

	code := Run(nil, rig.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 on ctrl-c", code)
	}
	if !strings.Contains(rig.out.String(), "Aborted.") {
		t.Fatalf("output missing abort notice:\n%s", rig.out.String())
	}
}
