// Where: internal/purge/purge.go
// What: Best-effort recursive removal of engine data locations.
// Why: A missing path is already clean; a failing one must not stop the sweep.
package purge

import (
	"context"
	"os"

	"github.com/poruru/dockfresh/internal/execute"
)

// Remover deletes one location. Implementations decide how elevation
// happens.
type Remover interface {
	Remove(ctx context.Context, path string, elevated bool) error
}

// HostRemover removes paths directly, shelling out to sudo rm -rf for
// elevated locations.
type HostRemover struct {
	Runner execute.CommandRunner
}

// Remove deletes path recursively. Elevated locations are checked first
// so an absent path never spawns a pointless sudo.
func (r HostRemover) Remove(ctx context.Context, path string, elevated bool) error {
	if !elevated {
		return os.RemoveAll(path)
	}
	if _, err := os.Stat(path); err != nil && os.IsNotExist(err) {
		return nil
	}
	return r.Runner.RunQuiet(ctx, "sudo", "rm", "-rf", path)
}

// Run sweeps every target path in order. Each removal is independent:
// the outcome is handed to report and the sweep continues regardless.
func Run(ctx context.Context, remover Remover, targets []Target, report func(subsystem, path string, err error)) {
	for _, target := range targets {
		for _, p := range target.Paths {
			err := remover.Remove(ctx, p.Location, p.Elevated)
			if report != nil {
				report(target.Subsystem, p.Location, err)
			}
		}
	}
}
