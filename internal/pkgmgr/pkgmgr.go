// Where: internal/pkgmgr/pkgmgr.go
// What: Host package manager detection and engine package upgrade.
// Why: Offer an engine upgrade after a reset without guessing the distro.
package pkgmgr

import (
	"context"
	"os/exec"

	"github.com/poruru/dockfresh/internal/execute"
)

// EnginePackages are upgraded together: daemon, CLI, container runtime.
var EnginePackages = []string{"docker-ce", "docker-ce-cli", "containerd.io"}

// Manager is one supported package manager with its upgrade verb.
type Manager struct {
	Name string
	args []string
}

// Probe order matters: apt first, then yum, then dnf. First hit wins.
var managers = []Manager{
	{Name: "apt", args: []string{"install", "--only-upgrade", "-y"}},
	{Name: "yum", args: []string{"update", "-y"}},
	{Name: "dnf", args: []string{"upgrade", "-y"}},
}

// LookPath resolves binaries on PATH; swapped in tests.
var LookPath = exec.LookPath

// Detect returns the first available package manager, or ok=false when
// none of the supported ones is installed.
func Detect() (Manager, bool) {
	for _, mgr := range managers {
		if _, err := LookPath(mgr.Name); err == nil {
			return mgr, true
		}
	}
	return Manager{}, false
}

// Upgrade runs the manager's native upgrade for the engine packages,
// elevated per-command.
func (m Manager) Upgrade(ctx context.Context, runner execute.CommandRunner) error {
	args := append([]string{m.Name}, m.args...)
	args = append(args, EnginePackages...)
	return runner.Run(ctx, "sudo", args...)
}
